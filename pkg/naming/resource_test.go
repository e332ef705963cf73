package naming_test

import (
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/binding"
	"github.com/goliatone/go-formbuilder/pkg/naming"
)

type BlogPost struct{}

type namedRecord struct{ name string }

func (r namedRecord) ReadAttribute(string) (any, bool) { return nil, false }
func (r namedRecord) IsNew() bool                      { return true }
func (r namedRecord) ModelName() string                { return r.name }

func TestPluralize(t *testing.T) {
	cases := map[string]string{
		"article":      "articles",
		"category":     "categories",
		"day":          "days",
		"box":          "boxes",
		"address":      "addresses",
		"match":        "matches",
		"person":       "people",
		"line_item":    "line_items",
		"sales_person": "sales_people",
		"news":         "news",
		"":             "",
	}
	for in, want := range cases {
		if got := naming.Pluralize(in); got != want {
			t.Fatalf("Pluralize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestModelName(t *testing.T) {
	if got := naming.ModelName(BlogPost{}); got != "blog_post" {
		t.Fatalf("expected blog_post, got %q", got)
	}
	if got := naming.ModelName(&BlogPost{}); got != "blog_post" {
		t.Fatalf("expected pointer to resolve to blog_post, got %q", got)
	}
	if got := naming.ModelName(namedRecord{name: "entry"}); got != "entry" {
		t.Fatalf("expected declared model name, got %q", got)
	}
	if got := naming.ModelName(namedRecord{}); got != "named_record" {
		t.Fatalf("expected type name fallback, got %q", got)
	}
	if got := naming.ModelName(nil); got != "" {
		t.Fatalf("expected empty name for nil, got %q", got)
	}
}

func TestModelNameNeverNamesTheAdapter(t *testing.T) {
	if got := naming.ModelName(binding.Map("", map[string]any{"title": "Hello"})); got != "" {
		t.Fatalf("expected unnamed map adapter to yield an empty name, got %q", got)
	}
	if got := naming.ModelName(binding.Struct(&BlogPost{})); got != "blog_post" {
		t.Fatalf("expected struct adapter to name the wrapped type, got %q", got)
	}
}
