package gotemplate_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

//go:embed testdata/templates/*.tmpl
var embeddedTemplates embed.FS

func TestEngineRenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "hello.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestEngineGlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, _ := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global.tmpl", nil, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "use-global.golden"))
	if result != want {
		t.Fatalf("render template mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestEngineRenderStringEscapes(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.Render(`<b>{{ value }}</b>`, map[string]any{"value": "<script>"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "<b>&lt;script&gt;</b>" {
		t.Fatalf("expected autoescaped output, got %q", result)
	}
}

func TestEngineAttrsFilter(t *testing.T) {
	engine := newEngine(t)

	data := map[string]any{
		"attrs": []render.Attr{
			{Name: "type", Value: "text"},
			{Name: "data-note", Value: `say "hi" & bye`},
			{Name: " ", Value: "skipped"},
			{Name: `x" onclick="alert(1)`, Value: "skipped"},
			{Name: "a>b", Value: "skipped"},
		},
	}
	result, err := engine.RenderTemplate("use-attrs", data)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	want := "<input type=\"text\" data-note=\"say &#34;hi&#34; &amp; bye\">\n"
	if result != want {
		t.Fatalf("attrs mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestEngineRegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("formbuilder_shout", func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("formbuilder_shout", func(input any, _ any) (any, error) { return input, nil }); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}

	result, err := engine.RenderString(`{{ name|formbuilder_shout }}`, map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("expected filtered output, got %q", result)
	}
}

func TestEngineStructData(t *testing.T) {
	engine := newEngine(t)

	type view struct {
		Title string `json:"title"`
	}
	result, err := engine.RenderString(`{{ title }}`, view{Title: "Edit"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "Edit" {
		t.Fatalf("expected json tagged field, got %q", result)
	}

	if _, err := engine.RenderString(`{{ title }}`, []string{"not", "an", "object"}); err == nil {
		t.Fatalf("expected non-object data to fail")
	}
}

func TestNewRequiresTemplateSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
