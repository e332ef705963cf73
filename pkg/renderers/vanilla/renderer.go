package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-formbuilder/pkg/render"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
	gotemplate "github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
)

const formTemplate = "templates/form.tmpl"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	goTemplate       bool
	goTemplateOpts   []gotemplatepkg.Option
	stylesheets      []string
	inlineStyles     bool
	classes          Classes
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide templates/form.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithGoTemplateEngine renders through a github.com/goliatone/go-template
// engine instead of the built-in pongo2 set. Options such as pre and post
// hooks pass through to the engine. WithTemplateRenderer takes precedence.
func WithGoTemplateEngine(options ...gotemplatepkg.Option) Option {
	return func(cfg *config) {
		cfg.goTemplate = true
		cfg.goTemplateOpts = append(cfg.goTemplateOpts, options...)
	}
}

// WithStylesheet links an external stylesheet ahead of the form.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		if href = strings.TrimSpace(href); href != "" {
			cfg.stylesheets = append(cfg.stylesheets, href)
		}
	}
}

// WithDefaultStyles inlines the embedded stylesheet ahead of the form.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

// WithClasses overrides the chrome classes.
func WithClasses(classes Classes) Option {
	return func(cfg *config) {
		cfg.classes = classes
	}
}

// Renderer serialises a RenderedForm through the embedded templates, adding
// field wrappers and inline messages around the core markup. Names, ids,
// values and hidden field order are taken from the form unchanged.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	stylesheets  []string
	inlineStyles string
	classes      Classes
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	switch {
	case renderer != nil:
	case cfg.goTemplate:
		engine, err := gotemplate.NewGoTemplate(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithGoTemplateOptions(cfg.goTemplateOpts...),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	default:
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	r := &Renderer{
		templates:   renderer,
		stylesheets: append([]string(nil), cfg.stylesheets...),
		classes:     cfg.classes.withDefaults(),
	}
	if cfg.inlineStyles {
		r.inlineStyles = defaultStylesheet()
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, form render.RenderedForm) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := r.templates.RenderTemplate(formTemplate, r.view(form))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

type formView struct {
	Form         render.RenderedForm `json:"form"`
	FormClass    string              `json:"form_class"`
	FormAttrs    []render.Attr       `json:"form_attrs"`
	Classes      Classes             `json:"classes"`
	Stylesheets  []string            `json:"stylesheets"`
	InlineStyles string              `json:"inline_styles"`
}

// view merges a caller supplied class attribute into the chrome form class so
// the form element never carries two class attributes.
func (r *Renderer) view(form render.RenderedForm) formView {
	class := r.classes.Form
	attrs := make([]render.Attr, 0, len(form.Attrs))
	for _, attr := range form.Attrs {
		if attr.Name == "class" {
			if value := strings.TrimSpace(attr.Value); value != "" {
				class += " " + value
			}
			continue
		}
		attrs = append(attrs, attr)
	}
	return formView{
		Form:         form,
		FormClass:    class,
		FormAttrs:    attrs,
		Classes:      r.classes,
		Stylesheets:  r.stylesheets,
		InlineStyles: r.inlineStyles,
	}
}
