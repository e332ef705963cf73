package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/binding"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	multiIdx     [][]int
	confirm      []bool
	textAreas    []string
	passwords    []string
	infoMessages []string
	defaults     []string
	inputPos     int
	selectPos    int
	multiPos     int
	confirmPos   int
	textPos      int
	passPos      int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	s.defaults = append(s.defaults, cfg.Default)
	val := s.inputs[s.inputPos]
	s.inputPos++
	if cfg.Validator != nil {
		if err := cfg.Validator(val); err != nil {
			return "", err
		}
	}
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, _ InputConfig) (string, error) {
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, _ SelectConfig) ([]int, error) {
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

type post struct {
	ID        int
	Title     string
	Body      string
	Status    string
	Tags      []string
	Published bool
	Password  string
}

func renderPost(t *testing.T, opts render.RenderOptions) render.RenderedForm {
	t.Helper()

	obj := binding.Struct(post{ID: 3, Title: "Hello", Status: "draft", Tags: []string{"go"}, Published: true})
	fields := []model.FieldSpec{
		render.Spec(model.FieldKindLabel, "title"),
		render.Spec(model.FieldKindText, "title"),
		render.Spec(model.FieldKindTextArea, "body"),
		render.Spec(model.FieldKindSelect, "status", render.WithOptionSource(model.Scalars("draft", "live")), render.WithIncludeBlank()),
		render.Spec(model.FieldKindSelect, "tags", render.WithOptionSource(model.Scalars("go", "web")), render.WithMultiple()),
		render.Spec(model.FieldKindRadio, "status", render.WithValue("draft")),
		render.Spec(model.FieldKindRadio, "status", render.WithValue("live")),
		render.Spec(model.FieldKindCheckbox, "published"),
		render.Spec(model.FieldKindPassword, "password"),
		render.Spec(model.FieldKindSubmit, ""),
	}
	form, err := render.Render(render.ForObject(obj), fields, opts)
	if err != nil {
		t.Fatalf("render form: %v", err)
	}
	return form
}

func TestCollectWalksEveryControl(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Hello again"},
		textAreas: []string{"Body text"},
		selectIdx: []int{2, 1},
		multiIdx:  [][]int{{0, 1}},
		confirm:   []bool{false},
		passwords: []string{"s3cret"},
	}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	submission, err := r.Collect(context.Background(), renderPost(t, render.RenderOptions{AntiForgeryToken: "tok"}))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := []Param{
		{Name: "_method", Value: "put"},
		{Name: "authenticity_token", Value: "tok"},
		{Name: "post[title]", Value: "Hello again"},
		{Name: "post[body]", Value: "Body text"},
		{Name: "post[status]", Value: "live"},
		{Name: "post[tags][]", Value: ""},
		{Name: "post[tags][]", Value: "go"},
		{Name: "post[tags][]", Value: "web"},
		{Name: "post[status]", Value: "live"},
		{Name: "post[published]", Value: "0"},
		{Name: "post[password]", Value: "s3cret"},
		{Name: "commit", Value: "Update Post"},
	}
	if diff := cmp.Diff(want, submission.Params); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
	if submission.Action != "/posts/3" || submission.Method != "POST" {
		t.Fatalf("unexpected target %s %s", submission.Method, submission.Action)
	}
	if diff := cmp.Diff([]string{"Hello"}, driver.defaults); diff != "" {
		t.Fatalf("input defaults mismatch (-want +got):\n%s", diff)
	}
	if driver.selectPos != 2 {
		t.Fatalf("expected radio group to be prompted once, got %d selects", driver.selectPos)
	}
}

func TestRenderSerialisesFormBody(t *testing.T) {
	form, err := render.Render(
		render.ForURL("/search", model.MethodGet),
		[]model.FieldSpec{render.Spec(model.FieldKindSearch, "q"), render.Spec(model.FieldKindNumber, "page")},
		render.RenderOptions{},
	)
	if err != nil {
		t.Fatalf("render form: %v", err)
	}

	r, err := New(WithPromptDriver(&stubDriver{inputs: []string{"go & html", "2"}}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := r.Render(context.Background(), form)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := string(out); got != "q=go+%26+html&page=2" {
		t.Fatalf("unexpected body %q", got)
	}
	if r.ContentType() != "application/x-www-form-urlencoded" {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}
}

func TestRenderNumberValidation(t *testing.T) {
	form, err := render.Render(render.ForURL("/a", ""), []model.FieldSpec{render.Spec(model.FieldKindNumber, "count")}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render form: %v", err)
	}
	r, err := New(WithPromptDriver(&stubDriver{inputs: []string{"ten"}}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := r.Render(context.Background(), form); err == nil {
		t.Fatalf("expected number validation to fail")
	}
}

func TestRenderJSONAndPretty(t *testing.T) {
	form, err := render.Render(render.ForURL("/a", model.MethodDelete), nil, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render form: %v", err)
	}

	jsonRenderer, err := New(WithPromptDriver(&stubDriver{}), WithOutputFormat(OutputFormatJSON))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := jsonRenderer.Render(context.Background(), form)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `{"action":"/a","method":"POST","params":[{"name":"_method","value":"delete"}]}`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", diff)
	}

	pretty, err := New(WithPromptDriver(&stubDriver{}), WithOutputFormat(OutputFormatPrettyText))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err = pretty.Render(context.Background(), form)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff("POST /a\n_method=delete\n", string(out)); diff != "" {
		t.Fatalf("pretty mismatch (-want +got):\n%s", diff)
	}

	if _, err := New(WithOutputFormat("xml")); err == nil {
		t.Fatalf("expected unsupported format to fail")
	}
}

func TestCollectReportsErrorsAndSkipsFiles(t *testing.T) {
	obj := binding.Map("upload", map[string]any{"name": ""})
	form, err := render.Render(render.ForObject(obj), []model.FieldSpec{
		render.Spec(model.FieldKindText, "name"),
		render.Spec(model.FieldKindFile, "attachment"),
	}, render.RenderOptions{Errors: map[string][]string{"name": {"can't be blank"}, "base": {"Upload failed"}}})
	if err != nil {
		t.Fatalf("render form: %v", err)
	}

	driver := &stubDriver{inputs: []string{"report.pdf"}}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	submission, err := r.Collect(context.Background(), form)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if diff := cmp.Diff([]string{"report.pdf"}, submission.Get("upload[name]")); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	joined := strings.Join(driver.infoMessages, "\n")
	for _, fragment := range []string{"Upload failed", "can't be blank", "skipping Attachment"} {
		if !strings.Contains(joined, fragment) {
			t.Fatalf("expected %q in info messages:\n%s", fragment, joined)
		}
	}
}

func TestSubmitTransformer(t *testing.T) {
	form, err := render.Render(render.ForURL("/a", ""), nil, render.RenderOptions{AntiForgeryToken: "tok"})
	if err != nil {
		t.Fatalf("render form: %v", err)
	}
	r, err := New(WithPromptDriver(&stubDriver{}), WithSubmitTransformer(func(s Submission) (Submission, error) {
		s.Add("source", "cli")
		return s, nil
	}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	submission, err := r.Collect(context.Background(), form)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if got := submission.Values().Get("source"); got != "cli" {
		t.Fatalf("expected transformer param, got %q", got)
	}
}

func TestCollectAborts(t *testing.T) {
	form, err := render.Render(render.ForURL("/a", ""), []model.FieldSpec{render.Spec(model.FieldKindText, "q")}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render form: %v", err)
	}
	r, err := New(WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := r.Collect(context.Background(), form); err == nil {
		t.Fatalf("expected exhausted driver to surface an error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Collect(ctx, form); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
