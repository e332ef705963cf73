package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/method"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/naming"
)

// RenderedForm is the complete markup tree of one form. Method is always the
// wire method (GET or POST); Declared keeps the verb the target asked for.
type RenderedForm struct {
	Action    string        `json:"action"`
	Method    model.Method  `json:"method"`
	Declared  model.Method  `json:"declaredMethod"`
	ModelName string        `json:"modelName,omitempty"`
	Attrs     []Attr        `json:"attrs,omitempty"`
	Hidden    []HiddenField `json:"hidden,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
	Fields    []FieldNode   `json:"fields"`
}

// Render assembles a form for target. The method override field, when
// needed, precedes the anti-forgery field; both precede the fields. Any
// failure aborts the render and no partial form is returned.
func Render(target Target, fields []model.FieldSpec, opts RenderOptions) (RenderedForm, error) {
	resolved, err := target.resolve(opts)
	if err != nil {
		return RenderedForm{}, err
	}

	plan, err := method.PlanMethod(resolved.Method)
	if err != nil {
		return RenderedForm{}, fmt.Errorf("render: %w", err)
	}

	modelName := strings.TrimSpace(opts.ModelName)
	if modelName == "" && target.object != nil {
		modelName = naming.ModelName(target.object)
	}

	mapping := MapErrors(modelName, fields, opts.Errors)
	builder := NewFieldBuilder(modelName, target.object).WithOptions(opts)
	builder.errors = mapping.Fields

	nodes := make([]FieldNode, 0, len(fields))
	multipart := false
	for _, spec := range fields {
		node, err := builder.Field(spec)
		if err != nil {
			return RenderedForm{}, fmt.Errorf("render: %w", err)
		}
		if node.Kind == model.FieldKindFile {
			multipart = true
		}
		nodes = append(nodes, node)
	}

	var hidden []HiddenField
	if plan.Override != nil {
		hidden = append(hidden, HiddenField{Name: plan.Override.Name, Value: plan.Override.Value})
	}
	if plan.Wire != model.MethodGet {
		if token := opts.antiForgeryToken(); token != "" {
			hidden = append(hidden, AntiForgeryField(opts.antiForgeryFieldName(), token))
		}
	}

	var attrs []Attr
	if multipart {
		attrs = append(attrs, Attr{Name: "enctype", Value: "multipart/form-data"})
	}
	attrs = appendExtraAttrs(attrs, withoutReserved(opts.Attrs))

	return RenderedForm{
		Action:    resolved.URL,
		Method:    plan.Wire,
		Declared:  plan.Declared,
		ModelName: modelName,
		Attrs:     attrs,
		Hidden:    hidden,
		Errors:    mapping.Form,
		Fields:    nodes,
	}, nil
}

// Tree returns the form element with all hidden controls, the error summary
// and every field as children.
func (f RenderedForm) Tree() Element {
	form := Element{Tag: "form", Attrs: f.formAttrs()}
	for _, field := range f.Hidden {
		form.Children = append(form.Children, field.Element())
	}
	if summary, ok := f.errorSummary(); ok {
		form.Children = append(form.Children, summary)
	}
	for _, field := range f.Fields {
		form.Children = append(form.Children, field.Elements...)
	}
	return form
}

// HTML serialises the form with one top-level child per line. Identical
// inputs always produce identical output.
func (f RenderedForm) HTML() string {
	tree := f.Tree()
	var builder strings.Builder
	tree.writeOpenTag(&builder)
	builder.WriteByte('\n')
	for _, child := range tree.Children {
		child.writeHTML(&builder)
		builder.WriteByte('\n')
	}
	builder.WriteString("</form>\n")
	return builder.String()
}

// Field returns the node rendered for a dotted attribute path.
func (f RenderedForm) Field(path string) (FieldNode, bool) {
	for _, field := range f.Fields {
		if field.Path == path {
			return field, true
		}
	}
	return FieldNode{}, false
}

func (f RenderedForm) formAttrs() []Attr {
	attrs := []Attr{
		{Name: "action", Value: f.Action},
		{Name: "method", Value: strings.ToLower(string(f.Method))},
		{Name: "accept-charset", Value: "UTF-8"},
	}
	return append(attrs, f.Attrs...)
}

func (f RenderedForm) errorSummary() (Element, bool) {
	if len(f.Errors) == 0 {
		return Element{}, false
	}
	list := Element{Tag: "ul"}
	for _, message := range f.Errors {
		list.Children = append(list.Children, Element{Tag: "li", Text: message})
	}
	return Element{
		Tag:      "div",
		Attrs:    []Attr{{Name: "class", Value: "error_explanation"}},
		Children: []Element{list},
	}, true
}

func withoutReserved(attrs map[string]string) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(attrs))
	for name, value := range attrs {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "action", "method", "accept-charset":
			continue
		}
		out[name] = value
	}
	return out
}
