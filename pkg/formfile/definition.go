package formfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/binding"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// ErrNoTarget is returned when a definition names neither an action, a route
// symbol nor a record to identify.
var ErrNoTarget = errors.New("formfile: definition has no action, symbol or record")

// Definition is one form described in YAML.
type Definition struct {
	Model  string              `yaml:"model"`
	Action string              `yaml:"action"`
	Symbol string              `yaml:"symbol"`
	Method string              `yaml:"method"`
	Record *Record             `yaml:"record"`
	Values map[string]any      `yaml:"values"`
	Token  string              `yaml:"token"`
	Locale string              `yaml:"locale"`
	Attrs  map[string]string   `yaml:"attrs"`
	Errors map[string][]string `yaml:"errors"`
	Fields []Field             `yaml:"fields"`
}

// Record declares the persistence state of the bound values. When omitted,
// a non-zero values.id marks the record persisted.
type Record struct {
	New      *bool  `yaml:"new"`
	ID       any    `yaml:"id"`
	Resource string `yaml:"resource"`
}

// Field is one control in a definition. Kind defaults to text.
type Field struct {
	Path          string            `yaml:"path"`
	Kind          string            `yaml:"kind"`
	Value         any               `yaml:"value"`
	Label         string            `yaml:"label"`
	LabelHTML     string            `yaml:"label_html"`
	Options       *OptionList       `yaml:"options"`
	Prompt        string            `yaml:"prompt"`
	IncludeBlank  bool              `yaml:"include_blank"`
	Multiple      bool              `yaml:"multiple"`
	CheckedValue  string            `yaml:"checked_value"`
	SkipUnchecked bool              `yaml:"skip_unchecked"`
	Attrs         map[string]string `yaml:"attrs"`

	hasValue bool
}

// UnmarshalYAML records whether a value key was present so an explicit
// `value: ~` still overrides the bound record.
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	type plain Field
	var decoded plain
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	*f = Field(decoded)
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "value" {
				f.hasValue = true
				break
			}
		}
	}
	return nil
}

// HasValue reports whether the field declares an explicit value.
func (f Field) HasValue() bool {
	return f.hasValue
}

// Parse decodes a YAML definition. Unknown keys are rejected.
func Parse(data []byte) (Definition, error) {
	var def Definition
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&def); err != nil {
		return Definition{}, fmt.Errorf("formfile: decode: %w", err)
	}
	return def, nil
}

// Load reads and parses a definition file.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("formfile: read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadFS reads and parses a definition from fsys.
func LoadFS(fsys fs.FS, name string) (Definition, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Definition{}, fmt.Errorf("formfile: read %s: %w", name, err)
	}
	return Parse(data)
}

// Object returns the record the fields bind to, or nil when the definition
// carries no values and no record block.
func (d Definition) Object() model.BoundObject {
	if d.Values == nil && d.Record == nil {
		return nil
	}
	var options []binding.Option
	if d.Record != nil {
		if d.Record.New != nil {
			options = append(options, binding.WithNew(*d.Record.New))
		}
		if d.Record.ID != nil {
			options = append(options, binding.WithID(d.Record.ID))
		}
		if d.Record.Resource != "" {
			options = append(options, binding.WithResourceType(d.Record.Resource))
		}
	}
	return binding.Map(d.Model, d.Values, options...)
}

// Target resolves where the form submits. An explicit action wins, then a
// route symbol, then record identification. The bound record stays attached
// in every case, and a declared method overrides the identified verb.
func (d Definition) Target() (render.Target, error) {
	method := model.Method(strings.ToUpper(strings.TrimSpace(d.Method)))
	action := strings.TrimSpace(d.Action)
	symbol := strings.TrimSpace(d.Symbol)
	obj := d.Object()

	switch {
	case action != "" && obj != nil:
		return render.ForObject(obj).WithURL(action, method), nil
	case action != "":
		return render.ForURL(action, method), nil
	case symbol != "" && obj != nil:
		return render.ForObject(obj).WithSymbol(symbol, method), nil
	case symbol != "":
		return render.ForSymbol(symbol, method), nil
	case obj != nil:
		return render.ForObject(obj).WithMethod(method), nil
	default:
		return render.Target{}, ErrNoTarget
	}
}

// FieldSpecs converts the field list, validating each entry.
func (d Definition) FieldSpecs() ([]model.FieldSpec, error) {
	specs := make([]model.FieldSpec, 0, len(d.Fields))
	for idx, field := range d.Fields {
		spec, err := field.Spec()
		if err != nil {
			return nil, fmt.Errorf("formfile: fields[%d]: %w", idx, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// RenderOptions returns the per-render options the definition declares.
func (d Definition) RenderOptions() render.RenderOptions {
	return render.RenderOptions{
		ModelName:        strings.TrimSpace(d.Model),
		AntiForgeryToken: d.Token,
		Attrs:            d.Attrs,
		Errors:           d.Errors,
		Locale:           d.Locale,
	}
}

// Render renders the definition, applying overrides on top of the options
// the file declares. Non-empty override fields win.
func (d Definition) Render(overrides render.RenderOptions) (render.RenderedForm, error) {
	target, err := d.Target()
	if err != nil {
		return render.RenderedForm{}, err
	}
	fields, err := d.FieldSpecs()
	if err != nil {
		return render.RenderedForm{}, err
	}
	return render.Render(target, fields, mergeOptions(d.RenderOptions(), overrides))
}

// Spec converts the field into a model.FieldSpec.
func (f Field) Spec() (model.FieldSpec, error) {
	kind, ok := model.ParseFieldKind(f.Kind)
	if !ok {
		return model.FieldSpec{}, fmt.Errorf("unknown field kind %q for %q", f.Kind, f.Path)
	}

	options := []render.FieldOption{
		render.WithLabel(f.Label),
		render.WithLabelHTML(f.LabelHTML),
		render.WithPrompt(f.Prompt),
		render.WithCheckedValue(f.CheckedValue),
	}
	if f.hasValue {
		options = append(options, render.WithValue(f.Value))
	}
	if f.Options != nil {
		options = append(options, render.WithOptionSource(f.Options.Source()))
	}
	if f.IncludeBlank {
		options = append(options, render.WithIncludeBlank())
	}
	if f.Multiple {
		options = append(options, render.WithMultiple())
	}
	if f.SkipUnchecked {
		options = append(options, render.WithoutUncheckedValue())
	}
	for name, value := range f.Attrs {
		options = append(options, render.WithAttr(name, value))
	}

	spec := render.Spec(kind, f.Path, options...)
	if err := spec.Validate(); err != nil {
		return model.FieldSpec{}, err
	}
	return spec, nil
}

// SetValue stores value at a dotted or bracketed path inside Values,
// creating intermediate maps as needed.
func (d *Definition) SetValue(path string, value any) error {
	segments := model.ParsePath(path)
	if err := segments.Validate(); err != nil {
		return err
	}
	if d.Values == nil {
		d.Values = make(map[string]any)
	}

	current := d.Values
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			if existing, exists := current[segment]; exists && existing != nil {
				return fmt.Errorf("formfile: set %q: segment %q holds %T", path, segment, existing)
			}
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}
	current[segments.Last()] = value
	return nil
}

func mergeOptions(base, overrides render.RenderOptions) render.RenderOptions {
	if overrides.ModelName != "" {
		base.ModelName = overrides.ModelName
	}
	if overrides.AntiForgeryToken != "" {
		base.AntiForgeryToken = overrides.AntiForgeryToken
	}
	if overrides.TokenSource != nil {
		base.TokenSource = overrides.TokenSource
	}
	if overrides.AntiForgeryFieldName != "" {
		base.AntiForgeryFieldName = overrides.AntiForgeryFieldName
	}
	if overrides.URLResolver != nil {
		base.URLResolver = overrides.URLResolver
	}
	if len(overrides.Attrs) > 0 {
		merged := make(map[string]string, len(base.Attrs)+len(overrides.Attrs))
		for name, value := range base.Attrs {
			merged[name] = value
		}
		for name, value := range overrides.Attrs {
			merged[name] = value
		}
		base.Attrs = merged
	}
	if len(overrides.Errors) > 0 {
		base.Errors = overrides.Errors
	}
	if overrides.Locale != "" {
		base.Locale = overrides.Locale
	}
	if overrides.Translator != nil {
		base.Translator = overrides.Translator
	}
	if overrides.OnMissing != nil {
		base.OnMissing = overrides.OnMissing
	}
	return base
}
