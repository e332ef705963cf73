package model_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

func TestParsePath(t *testing.T) {
	cases := map[string]model.AttributePath{
		"title":             {"title"},
		"address.city":      {"address", "city"},
		"address[city]":     {"address", "city"},
		"a[b][c]":           {"a", "b", "c"},
		"  spaced . name  ": {"spaced", "name"},
	}
	for raw, want := range cases {
		if diff := cmp.Diff(want, model.ParsePath(raw)); diff != "" {
			t.Fatalf("ParsePath(%q) mismatch (-want +got):\n%s", raw, diff)
		}
	}
	if got := model.ParsePath("   "); got != nil {
		t.Fatalf("expected nil path for blank input, got %v", got)
	}
}

func TestAttributePathValidate(t *testing.T) {
	if err := model.Path("address", "city").Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, path := range []model.AttributePath{nil, {}, {""}, {"address", " "}, model.ParsePath("a..b")} {
		err := path.Validate()
		if !errors.Is(err, model.ErrInvalidPath) {
			t.Fatalf("expected ErrInvalidPath for %#v, got %v", path, err)
		}
	}
}

func TestFieldSpecValidate(t *testing.T) {
	selectSpec := model.FieldSpec{Path: model.Path("city"), Kind: model.FieldKindSelect}
	if err := selectSpec.Validate(); !errors.Is(err, model.ErrMissingOptionsForSelect) {
		t.Fatalf("expected ErrMissingOptionsForSelect, got %v", err)
	}

	var fieldErr *model.FieldError
	if err := selectSpec.Validate(); !errors.As(err, &fieldErr) || fieldErr.Path != "city" {
		t.Fatalf("expected FieldError for city, got %v", err)
	}

	withOptions := selectSpec.WithOptions(model.Scalars("a", "b"))
	if err := withOptions.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := model.FieldSpec{Path: model.Path("title"), Kind: model.FieldKindText}.WithOptions(model.Scalars("x"))
	if err := text.Validate(); !errors.Is(err, model.ErrUnexpectedOptions) {
		t.Fatalf("expected ErrUnexpectedOptions, got %v", err)
	}
}

func TestParseMethod(t *testing.T) {
	got, err := model.ParseMethod(" patch ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != model.MethodPatch {
		t.Fatalf("expected PATCH, got %q", got)
	}

	if _, err := model.ParseMethod("TRACE"); !errors.Is(err, model.ErrUnsupportedMethod) {
		t.Fatalf("expected ErrUnsupportedMethod, got %v", err)
	}
}

func TestParseFieldKind(t *testing.T) {
	if kind, ok := model.ParseFieldKind("TextArea"); !ok || kind != model.FieldKindTextArea {
		t.Fatalf("expected textarea, got %q (%v)", kind, ok)
	}
	if kind, ok := model.ParseFieldKind(""); !ok || kind != model.FieldKindText {
		t.Fatalf("expected default text kind, got %q (%v)", kind, ok)
	}
	if _, ok := model.ParseFieldKind("slider"); ok {
		t.Fatalf("expected unknown kind to be rejected")
	}
}
