package render_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/binding"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

func TestRegistryWrite(t *testing.T) {
	registry, err := render.NewRegistry(render.HTMLRenderer{}, render.JSONRenderer{})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if diff := cmp.Diff([]string{"html", "json"}, registry.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	form, err := render.Render(
		render.ForObject(binding.Struct(Article{ID: 5, Title: "Hello"})),
		[]model.FieldSpec{render.Spec(model.FieldKindText, "title")},
		render.RenderOptions{AntiForgeryToken: "abc"},
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html, contentType, err := registry.Write(context.Background(), "html", form)
	if err != nil {
		t.Fatalf("write html: %v", err)
	}
	if contentType != "text/html; charset=utf-8" || string(html) != form.HTML() {
		t.Fatalf("unexpected html output %q (%s)", html, contentType)
	}

	payload, contentType, err := registry.Write(context.Background(), "json", form)
	if err != nil {
		t.Fatalf("write json: %v", err)
	}
	if contentType != "application/json" {
		t.Fatalf("unexpected content type %q", contentType)
	}
	var decoded struct {
		Action         string `json:"action"`
		Method         string `json:"method"`
		DeclaredMethod string `json:"declaredMethod"`
		Fields         []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"fields"`
	}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if decoded.Action != "/articles/5" || decoded.Method != "POST" || decoded.DeclaredMethod != "PUT" {
		t.Fatalf("unexpected json header %+v", decoded)
	}
	if len(decoded.Fields) != 1 || decoded.Fields[0].Name != "article[title]" || decoded.Fields[0].Value != "Hello" {
		t.Fatalf("unexpected json fields %+v", decoded.Fields)
	}

	if _, _, err := registry.Write(context.Background(), "pdf", form); err == nil {
		t.Fatalf("expected unknown renderer to fail")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	if _, err := render.NewRegistry(render.HTMLRenderer{}, render.HTMLRenderer{}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	registry, err := render.NewRegistry()
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer to fail")
	}
	if registry.Has("html") {
		t.Fatalf("expected empty registry")
	}
}
