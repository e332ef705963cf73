package formbuilder

import (
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
	"github.com/goliatone/go-formbuilder/pkg/renderers/vanilla"
)

// RegistryOption configures NewRegistry.
type RegistryOption func(*registryConfig)

type registryConfig struct {
	vanilla []vanilla.Option
	tui     []tui.Option
	skipTUI bool
	extra   []render.Renderer
}

// WithVanillaOptions forwards options to the vanilla renderer.
func WithVanillaOptions(options ...vanilla.Option) RegistryOption {
	return func(cfg *registryConfig) {
		cfg.vanilla = append(cfg.vanilla, options...)
	}
}

// WithTUIOptions forwards options to the terminal renderer.
func WithTUIOptions(options ...tui.Option) RegistryOption {
	return func(cfg *registryConfig) {
		cfg.tui = append(cfg.tui, options...)
	}
}

// WithoutTUI leaves the interactive terminal renderer out of the registry.
// Servers should use it since the renderer reads from stdin.
func WithoutTUI() RegistryOption {
	return func(cfg *registryConfig) {
		cfg.skipTUI = true
	}
}

// WithRenderer registers an additional renderer.
func WithRenderer(renderer render.Renderer) RegistryOption {
	return func(cfg *registryConfig) {
		cfg.extra = append(cfg.extra, renderer)
	}
}

// NewRegistry returns a registry holding the html, json and vanilla
// renderers, plus tui unless WithoutTUI is given.
func NewRegistry(options ...RegistryOption) (*render.Registry, error) {
	var cfg registryConfig
	for _, option := range options {
		if option != nil {
			option(&cfg)
		}
	}

	vanillaRenderer, err := vanilla.New(cfg.vanilla...)
	if err != nil {
		return nil, fmt.Errorf("formbuilder: vanilla renderer: %w", err)
	}

	renderers := []render.Renderer{render.HTMLRenderer{}, render.JSONRenderer{}, vanillaRenderer}
	if !cfg.skipTUI {
		tuiRenderer, err := tui.New(cfg.tui...)
		if err != nil {
			return nil, fmt.Errorf("formbuilder: tui renderer: %w", err)
		}
		renderers = append(renderers, tuiRenderer)
	}
	renderers = append(renderers, cfg.extra...)

	return render.NewRegistry(renderers...)
}
