package render

import (
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// FieldOption customises a FieldSpec built with Spec.
type FieldOption func(*model.FieldSpec)

// Spec builds a FieldSpec for an attribute given in dotted or bracketed
// notation.
func Spec(kind model.FieldKind, attribute string, opts ...FieldOption) model.FieldSpec {
	spec := model.FieldSpec{Kind: kind, Path: model.ParsePath(attribute)}
	for _, opt := range opts {
		if opt != nil {
			opt(&spec)
		}
	}
	return spec
}

// WithValue sets an explicit value that overrides the bound record.
func WithValue(value any) FieldOption {
	return func(spec *model.FieldSpec) {
		spec.Value = value
		spec.HasValue = true
	}
}

// WithOptionSource attaches the options of a select.
func WithOptionSource(source model.OptionSource) FieldOption {
	return func(spec *model.FieldSpec) {
		spec.Options = &source
	}
}

// WithAttr adds an extra attribute to the control.
func WithAttr(name, value string) FieldOption {
	return func(spec *model.FieldSpec) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		if spec.Attrs == nil {
			spec.Attrs = make(map[string]string)
		}
		spec.Attrs[name] = value
	}
}

// WithLabel sets label or submit caption text.
func WithLabel(text string) FieldOption {
	return func(spec *model.FieldSpec) {
		spec.Label = text
	}
}

// WithLabelHTML sets label markup; it is sanitised before rendering.
func WithLabelHTML(markup string) FieldOption {
	return func(spec *model.FieldSpec) {
		spec.LabelHTML = markup
	}
}

// WithPrompt prepends a prompt option to a select.
func WithPrompt(prompt string) FieldOption {
	return func(spec *model.FieldSpec) {
		spec.Prompt = prompt
	}
}

// WithIncludeBlank prepends an empty option to a select.
func WithIncludeBlank() FieldOption {
	return func(spec *model.FieldSpec) {
		spec.IncludeBlank = true
	}
}

// WithMultiple turns a select into a multi-select.
func WithMultiple() FieldOption {
	return func(spec *model.FieldSpec) {
		spec.Multiple = true
	}
}

// WithCheckedValue changes the value a checkbox submits when checked.
func WithCheckedValue(value string) FieldOption {
	return func(spec *model.FieldSpec) {
		spec.CheckedValue = value
	}
}

// WithoutUncheckedValue drops the hidden "0" input ahead of a checkbox.
func WithoutUncheckedValue() FieldOption {
	return func(spec *model.FieldSpec) {
		spec.SkipUncheckedValue = true
	}
}
