package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder"
	"github.com/goliatone/go-formbuilder/pkg/formfile"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
	"github.com/goliatone/go-formbuilder/pkg/renderers/vanilla"
)

func renderCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [flags] <definition.yaml>",
		Short: "Render a form definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), *cfg, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&cfg.Renderer, "renderer", "r", "html", "Renderer to use (html, json, vanilla, tui)")
	cmd.Flags().StringVarP(&cfg.Output, "output", "o", "", "Write output to a file instead of stdout")
	cmd.Flags().StringVar(&cfg.Token, "token", "", "Anti-forgery token to embed, overriding the definition")
	cmd.Flags().StringToStringVar(&cfg.Routes, "route", nil, "Route symbol mapping such as search=/search (repeatable)")
	cmd.Flags().StringArrayVar(&cfg.Sets, "set", nil, "Override a bound value such as author[name]=Ada (repeatable)")
	cmd.Flags().StringVar(&cfg.Stylesheet, "stylesheet", "", "Stylesheet href linked by the vanilla renderer")
	cmd.Flags().BoolVar(&cfg.DefaultStyles, "default-styles", false, "Inline the bundled stylesheet in vanilla output")
	cmd.Flags().StringVar(&cfg.Engine, "template-engine", "pongo2", "Template engine for the vanilla renderer (pongo2, go-template)")
	cmd.Flags().StringVar(&cfg.SubmitFormat, "submit-format", string(tui.OutputFormatFormURLEncoded), "Submission format for the tui renderer (form, json, pretty)")

	return cmd
}

func runRender(ctx context.Context, cfg Config, path string, stdout io.Writer) error {
	def, err := formfile.Load(path)
	if err != nil {
		return err
	}
	for _, assignment := range cfg.Sets {
		name, value, ok := strings.Cut(assignment, "=")
		if !ok {
			return fmt.Errorf("--set %q: expected path=value", assignment)
		}
		if err := def.SetValue(strings.TrimSpace(name), value); err != nil {
			return fmt.Errorf("--set %q: %w", assignment, err)
		}
	}

	overrides := render.RenderOptions{AntiForgeryToken: cfg.Token}
	if len(cfg.Routes) > 0 {
		overrides.URLResolver = routeTable(cfg.Routes)
	}

	form, err := def.Render(overrides)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	slog.Debug("form resolved",
		"path", path,
		"action", form.Action,
		"method", form.Declared,
		"fields", len(form.Fields),
	)

	registry, err := newRegistry(cfg)
	if err != nil {
		return err
	}
	output, contentType, err := registry.Write(ctx, cfg.Renderer, form)
	if err != nil {
		return err
	}
	slog.Debug("form rendered", "renderer", cfg.Renderer, "contentType", contentType, "bytes", len(output))

	return writeOutput(stdout, cfg.Output, output)
}

func newRegistry(cfg Config) (*render.Registry, error) {
	var vanillaOptions []vanilla.Option
	if cfg.Stylesheet != "" {
		vanillaOptions = append(vanillaOptions, vanilla.WithStylesheet(cfg.Stylesheet))
	}
	if cfg.DefaultStyles {
		vanillaOptions = append(vanillaOptions, vanilla.WithDefaultStyles())
	}
	switch cfg.Engine {
	case "", "pongo2":
	case "go-template":
		vanillaOptions = append(vanillaOptions, vanilla.WithGoTemplateEngine())
	default:
		return nil, fmt.Errorf("unknown template engine %q", cfg.Engine)
	}

	return formbuilder.NewRegistry(
		formbuilder.WithVanillaOptions(vanillaOptions...),
		formbuilder.WithTUIOptions(tui.WithOutputFormat(tui.OutputFormat(cfg.SubmitFormat))),
	)
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	slog.Info("wrote form", "path", path)
	return nil
}

// routeTable resolves route symbols from the --route flags.
type routeTable map[string]string

func (t routeTable) ResolveURL(symbol string) (string, error) {
	url, ok := t[symbol]
	if !ok {
		return "", fmt.Errorf("no route for symbol %q", symbol)
	}
	return url, nil
}
