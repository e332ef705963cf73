package model

import "strings"

// FieldKind enumerates the controls the field builder knows how to emit.
type FieldKind string

const (
	FieldKindText     FieldKind = "text"
	FieldKindTextArea FieldKind = "textarea"
	FieldKindCheckbox FieldKind = "checkbox"
	FieldKindRadio    FieldKind = "radio"
	FieldKindHidden   FieldKind = "hidden"
	FieldKindPassword FieldKind = "password"
	FieldKindSelect   FieldKind = "select"
	FieldKindEmail    FieldKind = "email"
	FieldKindNumber   FieldKind = "number"
	FieldKindURL      FieldKind = "url"
	FieldKindSearch   FieldKind = "search"
	FieldKindTel      FieldKind = "tel"
	FieldKindDate     FieldKind = "date"
	FieldKindColor    FieldKind = "color"
	FieldKindFile     FieldKind = "file"
	FieldKindLabel    FieldKind = "label"
	FieldKindSubmit   FieldKind = "submit"
)

// ParseFieldKind normalises a kind name. Unknown names report false.
func ParseFieldKind(raw string) (FieldKind, bool) {
	kind := FieldKind(strings.ToLower(strings.TrimSpace(raw)))
	switch kind {
	case FieldKindText, FieldKindTextArea, FieldKindCheckbox, FieldKindRadio,
		FieldKindHidden, FieldKindPassword, FieldKindSelect, FieldKindEmail,
		FieldKindNumber, FieldKindURL, FieldKindSearch, FieldKindTel,
		FieldKindDate, FieldKindColor, FieldKindFile, FieldKindLabel,
		FieldKindSubmit:
		return kind, true
	case "":
		return FieldKindText, true
	default:
		return "", false
	}
}

// IsInput reports whether the kind renders as a plain <input type=kind>.
func (k FieldKind) IsInput() bool {
	switch k {
	case FieldKindText, FieldKindHidden, FieldKindPassword, FieldKindEmail,
		FieldKindNumber, FieldKindURL, FieldKindSearch, FieldKindTel,
		FieldKindDate, FieldKindColor, FieldKindFile:
		return true
	default:
		return false
	}
}

// FieldSpec describes one control bound to an attribute path. Value is only
// consulted when HasValue is set so an explicit empty value still overrides
// the bound record; use WithValue to set both.
type FieldSpec struct {
	Path     AttributePath
	Kind     FieldKind
	Value    any
	HasValue bool
	Options  *OptionSource

	// Multiple turns a select into a multi-select; the name gains a trailing
	// "[]" and every member of the resolved value is pre-selected.
	Multiple bool
	// IncludeBlank prepends an empty option to a select. Prompt does the same
	// with a label and takes precedence.
	IncludeBlank bool
	Prompt       string

	Label string
	// LabelHTML is sanitised markup used instead of Label when present.
	LabelHTML string

	// CheckedValue overrides the "on" value of a checkbox (default "1").
	CheckedValue string
	// SkipUncheckedValue suppresses the hidden "0" input emitted ahead of a
	// checkbox.
	SkipUncheckedValue bool

	Attrs map[string]string
}

// WithValue returns a copy of the field carrying an explicit value.
func (s FieldSpec) WithValue(value any) FieldSpec {
	s.Value = value
	s.HasValue = true
	return s
}

// WithOptions returns a copy of the field bound to an option source.
func (s FieldSpec) WithOptions(source OptionSource) FieldSpec {
	s.Options = &source
	return s
}

// Validate checks the field invariants: a valid path, and options present on
// (and only on) select fields. Submit buttons are the only kind that may
// omit the path.
func (s FieldSpec) Validate() error {
	if s.Kind != FieldKindSubmit || len(s.Path) > 0 {
		if err := s.Path.Validate(); err != nil {
			return err
		}
	}
	if s.Kind == FieldKindSelect && s.Options == nil {
		return &FieldError{Path: s.Path.String(), Err: ErrMissingOptionsForSelect}
	}
	if s.Kind != FieldKindSelect && s.Options != nil {
		return &FieldError{Path: s.Path.String(), Err: ErrUnexpectedOptions}
	}
	return nil
}

// OptionPair is a (label, value) entry of a pair-based option source.
type OptionPair struct {
	Label any
	Value any
}

// OptionSource is either a sequence of scalars (label == value) or a sequence
// of label/value pairs. Order is the render order; values need not be unique.
type OptionSource struct {
	Scalars []any
	Pairs   []OptionPair
}

// Scalars builds a scalar option source.
func Scalars(values ...any) OptionSource {
	return OptionSource{Scalars: values}
}

// Pairs builds a pair option source.
func Pairs(pairs ...OptionPair) OptionSource {
	return OptionSource{Pairs: pairs}
}

// IsPairs reports whether the source carries label/value pairs.
func (s OptionSource) IsPairs() bool {
	return s.Pairs != nil
}

// Len returns the number of entries in the source.
func (s OptionSource) Len() int {
	if s.IsPairs() {
		return len(s.Pairs)
	}
	return len(s.Scalars)
}

// OptionDescriptor is one renderable <option>.
type OptionDescriptor struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

// FormTarget is the submission URL and HTTP verb of a form.
type FormTarget struct {
	URL    string `json:"url"`
	Method Method `json:"method"`
}
