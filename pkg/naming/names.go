package naming

import (
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// ResolveName returns the bracket-nested name attribute for path. A bound
// model prefixes every segment ("article[title]"); without a model the first
// segment stands alone ("q", "address[city]").
func ResolveName(modelName string, path model.AttributePath) (string, error) {
	if err := path.Validate(); err != nil {
		return "", err
	}

	var builder strings.Builder
	segments := []string(path)
	if modelName = strings.TrimSpace(modelName); modelName != "" {
		builder.WriteString(modelName)
	} else {
		builder.WriteString(strings.TrimSpace(segments[0]))
		segments = segments[1:]
	}
	for _, segment := range segments {
		builder.WriteByte('[')
		builder.WriteString(strings.TrimSpace(segment))
		builder.WriteByte(']')
	}
	return builder.String(), nil
}

// ResolveID returns the underscore-joined id attribute for path. Characters
// outside [A-Za-z0-9_-] are replaced with "_" so ids never contain brackets.
func ResolveID(modelName string, path model.AttributePath) (string, error) {
	if err := path.Validate(); err != nil {
		return "", err
	}

	parts := make([]string, 0, len(path)+1)
	if modelName = strings.TrimSpace(modelName); modelName != "" {
		parts = append(parts, sanitizeID(modelName))
	}
	for _, segment := range path {
		parts = append(parts, sanitizeID(strings.TrimSpace(segment)))
	}
	return strings.Join(parts, "_"), nil
}

// SanitizeIDValue cleans a value so it can be appended to an id, as radio
// buttons do with their tag value.
func SanitizeIDValue(value string) string {
	return strings.ToLower(sanitizeID(strings.TrimSpace(value)))
}

func sanitizeID(value string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, value)
}
