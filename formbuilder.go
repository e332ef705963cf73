// Package formbuilder renders HTML forms bound to records. It re-exports the
// common entry points of pkg/render and wires the built-in renderers so
// callers can start from a single import.
package formbuilder

import (
	"github.com/goliatone/go-formbuilder/pkg/identify"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// RenderedForm aliases render.RenderedForm.
type RenderedForm = render.RenderedForm

// Target aliases render.Target.
type Target = render.Target

// Render assembles a form for target. See render.Render.
func Render(target Target, fields []model.FieldSpec, opts RenderOptions) (RenderedForm, error) {
	return render.Render(target, fields, opts)
}

// FormFor renders a form whose action and method are derived from obj.
func FormFor(obj model.BoundObject, fields []model.FieldSpec, opts RenderOptions) (RenderedForm, error) {
	return render.Render(render.ForObject(obj), fields, opts)
}

// FieldsFor returns a builder for controls scoped to obj without a
// surrounding form element.
func FieldsFor(obj model.BoundObject) *render.FieldBuilder {
	return render.FieldsFor(obj)
}

// Identify derives the conventional submission target for obj.
func Identify(obj model.BoundObject, options ...identify.Option) (model.FormTarget, error) {
	return identify.Identify(obj, options...)
}
