package naming

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// ResourceNamingStrategy maps a model name to the URL segment of its
// resource collection ("article" -> "articles").
type ResourceNamingStrategy func(modelName string) string

// DefaultStrategy pluralises the model name with English suffix rules and a
// short irregular table.
var DefaultStrategy ResourceNamingStrategy = Pluralize

var irregularPlurals = map[string]string{
	"person": "people",
	"man":    "men",
	"woman":  "women",
	"child":  "children",
	"mouse":  "mice",
	"foot":   "feet",
	"tooth":  "teeth",
	"goose":  "geese",
	"leaf":   "leaves",
	"knife":  "knives",
	"life":   "lives",
}

var uncountable = map[string]struct{}{
	"equipment":   {},
	"information": {},
	"news":        {},
	"series":      {},
	"species":     {},
	"sheep":       {},
	"fish":        {},
	"metadata":    {},
}

// Pluralize returns the plural of a snake_case model name. Only the last word
// is inflected ("line_item" -> "line_items").
func Pluralize(modelName string) string {
	name := strings.TrimSpace(modelName)
	if name == "" {
		return ""
	}

	prefix, word := "", name
	if idx := strings.LastIndex(name, "_"); idx >= 0 {
		prefix, word = name[:idx+1], name[idx+1:]
	}
	lower := strings.ToLower(word)

	if _, ok := uncountable[lower]; ok {
		return name
	}
	if plural, ok := irregularPlurals[lower]; ok {
		return prefix + plural
	}

	switch {
	case hasAnySuffix(lower, "s", "x", "z", "ch", "sh"):
		return prefix + word + "es"
	case strings.HasSuffix(lower, "y") && len(lower) > 1 && !isVowel(lower[len(lower)-2]):
		return prefix + word[:len(word)-1] + "ies"
	default:
		return prefix + word + "s"
	}
}

// Wrapper is implemented by adapters that present another value as a
// BoundObject. The adapter's own type never names a model; the wrapped value
// does.
type Wrapper interface {
	WrappedValue() any
}

// ModelName returns the param key for v: the value of BoundObject.ModelName
// when non-empty, otherwise the runtime type name in snake_case
// ("BlogPost" -> "blog_post"). Wrappers fall back to the wrapped value, so an
// adapter over an unnamed map yields "".
func ModelName(v any) string {
	if bound, ok := v.(model.BoundObject); ok {
		if name := strings.TrimSpace(bound.ModelName()); name != "" {
			return name
		}
	}
	if wrapper, ok := v.(Wrapper); ok {
		return TypeModelName(wrapper.WrappedValue())
	}
	return TypeModelName(v)
}

// TypeModelName snake-cases the runtime type name of v, dereferencing
// pointers. Unnamed types yield "".
func TypeModelName(v any) string {
	if v == nil {
		return ""
	}
	typ := reflect.TypeOf(v)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	name := typ.Name()
	if idx := strings.IndexByte(name, '['); idx >= 0 {
		name = name[:idx]
	}
	if name == "" {
		return ""
	}
	return strcase.ToSnake(name)
}

func hasAnySuffix(value string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(value, suffix) {
			return true
		}
	}
	return false
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}
