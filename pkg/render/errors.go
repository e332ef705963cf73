package render

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// ErrorMapping splits a validation payload into field-level messages keyed by
// dotted attribute path and form-level messages.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MapErrors normalises a validation payload against the supplied fields.
// Keys may use dotted ("address.city"), bracketed ("person[address][city]")
// or JSON pointer ("/address/city") notation, optionally prefixed with the
// model name. Keys that match no field become form-level errors so messages
// are never lost.
func MapErrors(modelName string, fields []model.FieldSpec, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}
	if len(payload) == 0 {
		mapping.Fields = nil
		return mapping
	}

	known := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if len(field.Path) == 0 {
			continue
		}
		known[field.Path.String()] = struct{}{}
	}

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, rawKey := range keys {
		messages := normalizeMessages(payload[rawKey])
		if len(messages) == 0 {
			continue
		}
		path, ok := matchErrorPath(modelName, rawKey, known)
		if !ok {
			mapping.Form = append(mapping.Form, messages...)
			continue
		}
		mapping.Fields[path] = append(mapping.Fields[path], messages...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

func matchErrorPath(modelName, raw string, known map[string]struct{}) (string, bool) {
	segments := parseErrorSegments(raw)
	if len(segments) == 0 {
		return "", false
	}
	if modelName != "" && len(segments) > 1 && segments[0] == modelName {
		segments = segments[1:]
	}
	for _, candidate := range [][]string{segments, stripNumericSegments(segments)} {
		for end := len(candidate); end > 0; end-- {
			path := strings.Join(candidate[:end], ".")
			if _, ok := known[path]; ok {
				return path, true
			}
		}
	}
	return "", false
}

func parseErrorSegments(raw string) []string {
	clean := strings.TrimSpace(raw)
	switch strings.ToLower(clean) {
	case "", "base", "form", "__all__", "non_field_errors":
		return nil
	}
	clean = strings.TrimLeft(clean, "#$/.")
	clean = strings.NewReplacer("[", ".", "]", "", "/", ".").Replace(clean)

	parts := strings.Split(clean, ".")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, strings.ReplaceAll(strings.ReplaceAll(part, "~1", "/"), "~0", "~"))
	}
	return out
}

func stripNumericSegments(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
