package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/goliatone/go-formbuilder"
	"github.com/goliatone/go-formbuilder/pkg/formfile"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/vanilla"
)

func main() {
	var (
		definitionPath = flag.String("definition", "pkg/formfile/testdata/edit_article.yaml", "Form definition to render")
		rendererName   = flag.String("renderer", "vanilla", "Renderer name")
		outputPath     = flag.String("output", "article-form.html", "Output file")
	)
	flag.Parse()

	def, err := formfile.Load(*definitionPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load definition: %v\n", err)
		os.Exit(1)
	}

	form, err := def.Render(render.RenderOptions{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build form: %v\n", err)
		os.Exit(1)
	}

	registry, err := formbuilder.NewRegistry(
		formbuilder.WithoutTUI(),
		formbuilder.WithVanillaOptions(vanilla.WithDefaultStyles()),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build registry: %v\n", err)
		os.Exit(1)
	}

	html, _, err := registry.Write(context.Background(), *rendererName, form)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to render form: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputPath, html, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated article form HTML (%d bytes) -> %s\n", len(html), *outputPath)
}
