package render

import (
	"context"
	"encoding/json"
	"fmt"
)

// Renderer serialises a RenderedForm (HTML, JSON, templated markup).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form RenderedForm) ([]byte, error)
}

// HTMLRenderer writes the form with the built-in serialiser.
type HTMLRenderer struct{}

var _ Renderer = HTMLRenderer{}

func (HTMLRenderer) Name() string {
	return "html"
}

func (HTMLRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (HTMLRenderer) Render(_ context.Context, form RenderedForm) ([]byte, error) {
	return []byte(form.HTML()), nil
}

// JSONRenderer exposes the form tree to client-side renderers.
type JSONRenderer struct {
	Indent string
}

var _ Renderer = JSONRenderer{}

func (JSONRenderer) Name() string {
	return "json"
}

func (JSONRenderer) ContentType() string {
	return "application/json"
}

func (r JSONRenderer) Render(_ context.Context, form RenderedForm) ([]byte, error) {
	var (
		payload []byte
		err     error
	)
	if r.Indent != "" {
		payload, err = json.MarshalIndent(form, "", r.Indent)
	} else {
		payload, err = json.Marshal(form)
	}
	if err != nil {
		return nil, fmt.Errorf("render: encode json: %w", err)
	}
	return payload, nil
}
