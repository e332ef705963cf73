// Package render assembles forms. Render resolves the submission target
// (explicitly, through a URL resolver, or by identifying a bound record),
// plans method emulation, emits the hidden method and anti-forgery controls,
// and builds every field through a FieldBuilder. The result is a RenderedForm
// tree that serialises deterministically; Renderer implementations (see the
// vanilla package) offer alternate serialisations of the same tree.
//
// Rendering is all-or-nothing: any invalid field, method or target fails the
// call before a RenderedForm is returned.
package render
