package model

import (
	"strings"
)

// AttributePath locates a value inside a bound object, outermost segment
// first (for example ["address", "city"]).
type AttributePath []string

// Path builds an AttributePath from segments.
func Path(segments ...string) AttributePath {
	return AttributePath(segments)
}

// ParsePath splits dotted ("address.city") or bracketed ("address[city]")
// notation into segments. Validation is left to Validate so malformed input
// still surfaces as ErrInvalidPath.
func ParsePath(raw string) AttributePath {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	replacer := strings.NewReplacer("[", ".", "]", "")
	parts := strings.Split(replacer.Replace(trimmed), ".")
	out := make(AttributePath, 0, len(parts))
	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

// Validate reports ErrInvalidPath for an empty path or an empty segment.
func (p AttributePath) Validate() error {
	if len(p) == 0 {
		return &PathError{Path: p, Reason: "path is empty"}
	}
	for idx, segment := range p {
		if strings.TrimSpace(segment) == "" {
			return &PathError{Path: p, Index: idx, Reason: "segment is empty"}
		}
	}
	return nil
}

// String renders the path in dotted form.
func (p AttributePath) String() string {
	return strings.Join(p, ".")
}

// Last returns the final segment, or "" for an empty path.
func (p AttributePath) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}
