package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/binding"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// Article is the sample record shared by renderer and CLI tests.
type Article struct {
	ID         int      `form:"id"`
	Title      string   `form:"title"`
	Body       string   `form:"body"`
	CategoryID int      `form:"category_id"`
	Published  bool     `form:"published"`
	Tags       []string `form:"tags"`
}

// NewArticle returns an unsaved article bound for rendering.
func NewArticle(title string) model.BoundObject {
	return binding.Struct(&Article{Title: title})
}

// PersistedArticle returns a saved article bound for rendering.
func PersistedArticle(id int, title string) model.BoundObject {
	return binding.Struct(&Article{
		ID:         id,
		Title:      title,
		Body:       "First paragraph.",
		CategoryID: 2,
		Published:  true,
		Tags:       []string{"go"},
	})
}

// Cities is the option source used by select fixtures.
func Cities() model.OptionSource {
	return model.Pairs(
		model.OptionPair{Label: "Lisabon", Value: 1},
		model.OptionPair{Label: "Madrid", Value: 2},
	)
}

// ArticleFields covers every control kind the article form uses.
func ArticleFields() []model.FieldSpec {
	return []model.FieldSpec{
		render.Spec(model.FieldKindLabel, "title"),
		render.Spec(model.FieldKindText, "title", render.WithAttr("autofocus", "autofocus")),
		render.Spec(model.FieldKindTextArea, "body"),
		render.Spec(model.FieldKindSelect, "category_id", render.WithOptionSource(Cities()), render.WithPrompt("Choose a category")),
		render.Spec(model.FieldKindSelect, "tags", render.WithOptionSource(model.Scalars("go", "html", "http")), render.WithMultiple()),
		render.Spec(model.FieldKindCheckbox, "published"),
		render.Spec(model.FieldKindSubmit, ""),
	}
}

// MustRender renders fields against target and fails the test on error.
func MustRender(t *testing.T, target render.Target, fields []model.FieldSpec, opts render.RenderOptions) render.RenderedForm {
	t.Helper()

	form, err := render.Render(target, fields, opts)
	if err != nil {
		t.Fatalf("render form: %v", err)
	}
	return form
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
