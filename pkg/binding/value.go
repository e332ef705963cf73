package binding

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// ResolveValue returns the current value for spec. An explicit value wins
// unconditionally; otherwise the bound object (when present) is consulted. A
// missing attribute yields (nil, false) rather than an error.
func ResolveValue(spec model.FieldSpec, obj model.AttributeReadable) (any, bool) {
	if spec.HasValue {
		return spec.Value, true
	}
	if obj == nil {
		return nil, false
	}
	value, err := Lookup(obj, spec.Path)
	if err != nil {
		return nil, false
	}
	return value, true
}

// Lookup walks path through obj. Intermediate values are adapted with Adapt
// so nested structs and maps resolve without extra wiring. A missing segment
// reports model.ErrAttributeNotFound.
func Lookup(obj model.AttributeReadable, path model.AttributePath) (any, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, fmt.Errorf("binding: lookup %q: %w", path.String(), model.ErrAttributeNotFound)
	}

	current := obj
	for idx, segment := range path {
		value, ok := current.ReadAttribute(strings.TrimSpace(segment))
		if !ok {
			return nil, fmt.Errorf("binding: lookup %q: %w", path.String(), model.ErrAttributeNotFound)
		}
		if idx == len(path)-1 {
			return value, nil
		}
		next, ok := Adapt(value)
		if !ok {
			return nil, fmt.Errorf("binding: lookup %q: segment %q is not readable: %w", path.String(), segment, model.ErrAttributeNotFound)
		}
		current = next
	}
	return nil, fmt.Errorf("binding: lookup %q: %w", path.String(), model.ErrAttributeNotFound)
}

// IsChecked reports whether a resolved value switches a checkbox or radio on.
// Booleans compare as "1"/"0" so a true attribute checks a default checkbox.
func IsChecked(value any, onValue string) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		if b {
			return onValue == "1" || strings.EqualFold(onValue, "true")
		}
		return onValue == "0" || strings.EqualFold(onValue, "false")
	}
	return Stringify(value) == onValue
}
