// Package template defines the template engine seam used by template-driven
// form renderers. The gotemplate subpackage provides the pongo2 backed
// implementation.
package template
