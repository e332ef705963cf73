package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"

	"github.com/goliatone/go-formbuilder/pkg/binding"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/naming"
	"github.com/goliatone/go-formbuilder/pkg/options"
)

const (
	defaultCheckedValue   = "1"
	defaultUncheckedValue = "0"
	submitFieldName       = "commit"
)

// FieldNode is one rendered field: the resolved naming and value data plus
// the markup elements emitted for it.
type FieldNode struct {
	Kind           model.FieldKind          `json:"kind"`
	Path           string                   `json:"path,omitempty"`
	Name           string                   `json:"name"`
	ID             string                   `json:"id,omitempty"`
	Value          string                   `json:"value"`
	HasValue       bool                     `json:"hasValue"`
	Checked        bool                     `json:"checked,omitempty"`
	UncheckedValue string                   `json:"uncheckedValue,omitempty"`
	Multiple       bool                     `json:"multiple,omitempty"`
	Label          string                   `json:"label,omitempty"`
	LabelHTML      string                   `json:"labelHtml,omitempty"`
	Options        []model.OptionDescriptor `json:"options,omitempty"`
	Attrs          []Attr                   `json:"attrs,omitempty"`
	Errors         []string                 `json:"errors,omitempty"`
	Elements       []Element                `json:"elements"`
}

// HTML serialises the field elements.
func (n FieldNode) HTML() string {
	var builder strings.Builder
	for _, element := range n.Elements {
		element.writeHTML(&builder)
	}
	return builder.String()
}

// FieldBuilder emits fields scoped to one model name and bound record so
// callers do not repeat the model name per field. It holds no state beyond
// that binding.
type FieldBuilder struct {
	modelName string
	object    model.BoundObject
	prefix    model.AttributePath
	opts      RenderOptions
	errors    map[string][]string
}

// NewFieldBuilder binds a builder to modelName and (optionally) a record.
// An empty model name produces bare field names ("q").
func NewFieldBuilder(modelName string, obj model.BoundObject) *FieldBuilder {
	return &FieldBuilder{
		modelName: strings.TrimSpace(modelName),
		object:    obj,
	}
}

// FieldsFor binds a builder to a record using its derived model name.
func FieldsFor(obj model.BoundObject) *FieldBuilder {
	return NewFieldBuilder(naming.ModelName(obj), obj)
}

// WithOptions returns a copy that localises labels and attaches validation
// errors using opts.
func (b *FieldBuilder) WithOptions(opts RenderOptions) *FieldBuilder {
	clone := *b
	clone.opts = opts
	clone.errors = opts.Errors
	return &clone
}

// Nested returns a builder whose paths are rooted at attribute, mirroring
// nested attribute forms ("person[address][city]").
func (b *FieldBuilder) Nested(attribute string) *FieldBuilder {
	clone := *b
	clone.prefix = append(append(model.AttributePath{}, b.prefix...), model.ParsePath(attribute)...)
	return &clone
}

// ModelName returns the bound model name.
func (b *FieldBuilder) ModelName() string {
	return b.modelName
}

// Object returns the bound record.
func (b *FieldBuilder) Object() model.BoundObject {
	return b.object
}

// Text emits a text input.
func (b *FieldBuilder) Text(attribute string, opts ...FieldOption) (FieldNode, error) {
	return b.Field(Spec(model.FieldKindText, attribute, opts...))
}

// TextArea emits a textarea.
func (b *FieldBuilder) TextArea(attribute string, opts ...FieldOption) (FieldNode, error) {
	return b.Field(Spec(model.FieldKindTextArea, attribute, opts...))
}

// Password emits a password input. The bound value is never echoed.
func (b *FieldBuilder) Password(attribute string, opts ...FieldOption) (FieldNode, error) {
	return b.Field(Spec(model.FieldKindPassword, attribute, opts...))
}

// Hidden emits a hidden input.
func (b *FieldBuilder) Hidden(attribute string, opts ...FieldOption) (FieldNode, error) {
	return b.Field(Spec(model.FieldKindHidden, attribute, opts...))
}

// Checkbox emits a checkbox preceded by its unchecked hidden value.
func (b *FieldBuilder) Checkbox(attribute string, opts ...FieldOption) (FieldNode, error) {
	return b.Field(Spec(model.FieldKindCheckbox, attribute, opts...))
}

// Radio emits a radio button for tagValue.
func (b *FieldBuilder) Radio(attribute string, tagValue any, opts ...FieldOption) (FieldNode, error) {
	return b.Field(Spec(model.FieldKindRadio, attribute, append([]FieldOption{WithValue(tagValue)}, opts...)...))
}

// Select emits a select with options built from source.
func (b *FieldBuilder) Select(attribute string, source model.OptionSource, opts ...FieldOption) (FieldNode, error) {
	return b.Field(Spec(model.FieldKindSelect, attribute, append([]FieldOption{WithOptionSource(source)}, opts...)...))
}

// Label emits a label pointing at the attribute's control.
func (b *FieldBuilder) Label(attribute string, opts ...FieldOption) (FieldNode, error) {
	return b.Field(Spec(model.FieldKindLabel, attribute, opts...))
}

// Submit emits a submit button. Without a caption the button reads
// "Create <Model>" or "Update <Model>" depending on the record state.
func (b *FieldBuilder) Submit(opts ...FieldOption) (FieldNode, error) {
	return b.Field(Spec(model.FieldKindSubmit, "", opts...))
}

// Field builds the node for spec.
func (b *FieldBuilder) Field(spec model.FieldSpec) (FieldNode, error) {
	if spec.Kind == "" {
		spec.Kind = model.FieldKindText
	}
	if len(b.prefix) > 0 && len(spec.Path) > 0 {
		spec.Path = append(append(model.AttributePath{}, b.prefix...), spec.Path...)
	}
	if err := spec.Validate(); err != nil {
		return FieldNode{}, err
	}

	if spec.Kind == model.FieldKindSubmit {
		return b.submit(spec), nil
	}

	name, err := naming.ResolveName(b.modelName, spec.Path)
	if err != nil {
		return FieldNode{}, err
	}
	id, err := naming.ResolveID(b.modelName, spec.Path)
	if err != nil {
		return FieldNode{}, err
	}

	node := FieldNode{
		Kind:   spec.Kind,
		Path:   spec.Path.String(),
		Name:   name,
		ID:     id,
		Attrs:  appendExtraAttrs(nil, spec.Attrs),
		Errors: normalizeMessages(b.errors[spec.Path.String()]),
	}

	switch {
	case spec.Kind.IsInput():
		b.buildInput(&node, spec)
	case spec.Kind == model.FieldKindTextArea:
		b.buildTextArea(&node, spec)
	case spec.Kind == model.FieldKindCheckbox:
		b.buildCheckbox(&node, spec)
	case spec.Kind == model.FieldKindRadio:
		b.buildRadio(&node, spec)
	case spec.Kind == model.FieldKindSelect:
		b.buildSelect(&node, spec)
	case spec.Kind == model.FieldKindLabel:
		b.buildLabel(&node, spec)
	}

	if len(node.Errors) > 0 && spec.Kind != model.FieldKindHidden {
		node.Elements = []Element{{
			Tag:      "div",
			Attrs:    []Attr{{Name: "class", Value: "field_with_errors"}},
			Children: node.Elements,
		}}
	}
	return node, nil
}

func (b *FieldBuilder) resolve(spec model.FieldSpec) (string, bool) {
	value, ok := binding.ResolveValue(spec, b.object)
	if !ok || value == nil {
		return "", false
	}
	return binding.Stringify(value), true
}

func (b *FieldBuilder) buildInput(node *FieldNode, spec model.FieldSpec) {
	value, has := b.resolve(spec)
	switch spec.Kind {
	case model.FieldKindPassword:
		if !spec.HasValue {
			value, has = "", false
		}
	case model.FieldKindFile:
		value, has = "", false
	}
	node.Value, node.HasValue = value, has

	attrs := []Attr{
		{Name: "type", Value: string(spec.Kind)},
		{Name: "id", Value: node.ID},
		{Name: "name", Value: node.Name},
	}
	if has {
		attrs = append(attrs, Attr{Name: "value", Value: value})
	}
	node.Elements = []Element{input(append(attrs, node.Attrs...)...)}
}

func (b *FieldBuilder) buildTextArea(node *FieldNode, spec model.FieldSpec) {
	node.Value, node.HasValue = b.resolve(spec)
	attrs := []Attr{
		{Name: "id", Value: node.ID},
		{Name: "name", Value: node.Name},
	}
	node.Elements = []Element{{
		Tag:   "textarea",
		Attrs: append(attrs, node.Attrs...),
		Text:  node.Value,
	}}
}

func (b *FieldBuilder) buildCheckbox(node *FieldNode, spec model.FieldSpec) {
	onValue := strings.TrimSpace(spec.CheckedValue)
	if onValue == "" {
		onValue = defaultCheckedValue
	}

	value, has := binding.ResolveValue(spec, b.object)
	node.Checked = has && binding.IsChecked(value, onValue)
	node.Value, node.HasValue = onValue, true

	attrs := []Attr{
		{Name: "type", Value: "checkbox"},
		{Name: "id", Value: node.ID},
		{Name: "name", Value: node.Name},
		{Name: "value", Value: onValue},
	}
	if node.Checked {
		attrs = append(attrs, Attr{Name: "checked", Value: "checked"})
	}

	if !spec.SkipUncheckedValue {
		node.UncheckedValue = defaultUncheckedValue
		node.Elements = append(node.Elements, HiddenField{Name: node.Name, Value: node.UncheckedValue}.Element())
	}
	node.Elements = append(node.Elements, input(append(attrs, node.Attrs...)...))
}

func (b *FieldBuilder) buildRadio(node *FieldNode, spec model.FieldSpec) {
	tagValue := binding.Stringify(spec.Value)

	bound := spec
	bound.Value, bound.HasValue = nil, false
	current, has := b.resolve(bound)
	node.Checked = has && current == tagValue
	node.Value, node.HasValue = tagValue, true

	if suffix := naming.SanitizeIDValue(tagValue); suffix != "" {
		node.ID = node.ID + "_" + suffix
	}

	attrs := []Attr{
		{Name: "type", Value: "radio"},
		{Name: "id", Value: node.ID},
		{Name: "name", Value: node.Name},
		{Name: "value", Value: tagValue},
	}
	if node.Checked {
		attrs = append(attrs, Attr{Name: "checked", Value: "checked"})
	}
	node.Elements = []Element{input(append(attrs, node.Attrs...)...)}
}

func (b *FieldBuilder) buildSelect(node *FieldNode, spec model.FieldSpec) {
	value, has := binding.ResolveValue(spec, b.object)
	var selection any
	if has {
		selection = value
		node.Value, node.HasValue = binding.Stringify(value), true
	}

	var descriptors []model.OptionDescriptor
	switch {
	case strings.TrimSpace(spec.Prompt) != "":
		descriptors = append(descriptors, model.OptionDescriptor{Label: spec.Prompt})
	case spec.IncludeBlank:
		descriptors = append(descriptors, model.OptionDescriptor{})
	}
	descriptors = append(descriptors, options.Collect(*spec.Options, selection)...)
	node.Options = descriptors

	if spec.Multiple {
		node.Multiple = true
		node.Name += "[]"
		node.Value = ""
	}

	attrs := []Attr{
		{Name: "id", Value: node.ID},
		{Name: "name", Value: node.Name},
	}
	if node.Multiple {
		attrs = append(attrs, Attr{Name: "multiple", Value: "multiple"})
	}

	children := make([]Element, 0, len(descriptors))
	for _, descriptor := range descriptors {
		optionAttrs := []Attr{{Name: "value", Value: descriptor.Value}}
		if descriptor.Selected {
			optionAttrs = append(optionAttrs, Attr{Name: "selected", Value: "selected"})
		}
		children = append(children, Element{Tag: "option", Attrs: optionAttrs, Text: descriptor.Label})
	}

	if node.Multiple {
		node.Elements = append(node.Elements, HiddenField{Name: node.Name, Value: ""}.Element())
	}
	node.Elements = append(node.Elements, Element{
		Tag:      "select",
		Attrs:    append(attrs, node.Attrs...),
		Children: children,
	})
}

func (b *FieldBuilder) buildLabel(node *FieldNode, spec model.FieldSpec) {
	attribute := spec.Path.Last()
	node.Label = strings.TrimSpace(spec.Label)
	if node.Label == "" {
		node.Label = b.opts.translate(labelKey(b.modelName, attribute), Humanize(attribute))
	}
	node.LabelHTML = SanitizeLabelHTML(spec.LabelHTML)

	label := Element{
		Tag:   "label",
		Attrs: append([]Attr{{Name: "for", Value: node.ID}}, node.Attrs...),
	}
	if node.LabelHTML != "" {
		label.RawHTML = node.LabelHTML
	} else {
		label.Text = node.Label
	}
	node.Elements = []Element{label}
}

func (b *FieldBuilder) submit(spec model.FieldSpec) FieldNode {
	caption := strings.TrimSpace(spec.Label)
	if caption == "" {
		caption = b.submitCaption()
	}
	node := FieldNode{
		Kind:     model.FieldKindSubmit,
		Name:     submitFieldName,
		Value:    caption,
		HasValue: true,
		Label:    caption,
		Attrs:    appendExtraAttrs(nil, spec.Attrs),
	}
	attrs := []Attr{
		{Name: "type", Value: "submit"},
		{Name: "name", Value: submitFieldName},
		{Name: "value", Value: caption},
	}
	node.Elements = []Element{input(append(attrs, node.Attrs...)...)}
	return node
}

func (b *FieldBuilder) submitCaption() string {
	human := Humanize(b.modelName)
	switch {
	case b.object == nil && human == "":
		return b.opts.translate(submitKeySubmit, "Save changes")
	case b.object == nil:
		return b.opts.translate(submitKeySubmit, "Save "+human, human)
	case b.object.IsNew():
		return b.opts.translate(submitKeyCreate, "Create "+human, human)
	default:
		return b.opts.translate(submitKeyUpdate, "Update "+human, human)
	}
}

// Humanize turns an attribute or model name into label text:
// "first_name" -> "First name", "author_id" -> "Author", "BlogPost" -> "Blog post".
func Humanize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	words := strcase.ToDelimited(name, ' ')
	words = strings.TrimSuffix(words, " id")
	if words == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(words)
	return string(unicode.ToUpper(first)) + words[size:]
}
