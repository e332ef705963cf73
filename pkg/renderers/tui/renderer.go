package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

const blankOptionLabel = "(none)"

// Renderer implements render.Renderer for terminal sessions. It walks the
// rendered fields, prompts for each control using the rendered value as the
// default, and serialises the submission the form would send.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, urlencoded
// output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatFormURLEncoded,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	switch r.outputFormat {
	case OutputFormatFormURLEncoded, OutputFormatJSON, OutputFormatPrettyText:
	default:
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatJSON:
		return "application/json"
	case OutputFormatPrettyText:
		return "text/plain; charset=utf-8"
	default:
		return "application/x-www-form-urlencoded"
	}
}

// Render prompts for every visible field and returns the serialised
// submission.
func (r *Renderer) Render(ctx context.Context, form render.RenderedForm) ([]byte, error) {
	submission, err := r.Collect(ctx, form)
	if err != nil {
		return nil, err
	}
	return r.serialize(submission)
}

// Collect prompts for every visible field and returns the submission without
// serialising it. Hidden controls are copied as-is; labels are skipped and
// file inputs are reported as unsupported.
func (r *Renderer) Collect(ctx context.Context, form render.RenderedForm) (Submission, error) {
	if ctx == nil {
		return Submission{}, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Submission{}, err
	}
	if r.driver == nil {
		return Submission{}, errors.New("tui: prompt driver is nil")
	}

	submission := Submission{Action: form.Action, Method: string(form.Method)}
	for _, hidden := range form.Hidden {
		submission.Add(hidden.Name, hidden.Value)
	}
	for _, message := range form.Errors {
		if err := r.driver.Info(ctx, "! "+message); err != nil {
			return Submission{}, err
		}
	}

	radios := radioGroups(form.Fields)
	prompted := make(map[string]struct{})

	for _, field := range form.Fields {
		for _, message := range field.Errors {
			if err := r.driver.Info(ctx, fmt.Sprintf("! %s %s", displayLabel(field), message)); err != nil {
				return Submission{}, err
			}
		}
		if field.Kind == model.FieldKindRadio {
			if _, done := prompted[field.Name]; done {
				continue
			}
			prompted[field.Name] = struct{}{}
			if err := r.promptRadio(ctx, radios[field.Name], &submission); err != nil {
				return Submission{}, err
			}
			continue
		}
		if err := r.promptField(ctx, field, &submission); err != nil {
			return Submission{}, err
		}
	}

	if r.submitTransformer != nil {
		transformed, err := r.submitTransformer(submission)
		if err != nil {
			return Submission{}, fmt.Errorf("tui: submit transformer: %w", err)
		}
		submission = transformed
	}
	return submission, nil
}

func (r *Renderer) promptField(ctx context.Context, field render.FieldNode, submission *Submission) error {
	switch field.Kind {
	case model.FieldKindLabel:
		return nil
	case model.FieldKindHidden, model.FieldKindSubmit:
		if field.HasValue {
			submission.Add(field.Name, field.Value)
		}
		return nil
	case model.FieldKindFile:
		return r.driver.Info(ctx, fmt.Sprintf("skipping %s: file uploads are not supported in the terminal", displayLabel(field)))
	case model.FieldKindCheckbox:
		return r.promptCheckbox(ctx, field, submission)
	case model.FieldKindSelect:
		if field.Multiple {
			return r.promptMultiSelect(ctx, field, submission)
		}
		return r.promptSelect(ctx, field, submission)
	case model.FieldKindTextArea:
		value, err := r.driver.TextArea(ctx, TextAreaConfig{
			Message: displayLabel(field),
			Default: field.Value,
		})
		if err != nil {
			return err
		}
		submission.Add(field.Name, value)
		return nil
	case model.FieldKindPassword:
		value, err := r.driver.Password(ctx, InputConfig{Message: displayLabel(field)})
		if err != nil {
			return err
		}
		submission.Add(field.Name, value)
		return nil
	default:
		cfg := InputConfig{Message: displayLabel(field)}
		if field.HasValue {
			cfg.Default = field.Value
		}
		if field.Kind == model.FieldKindNumber {
			cfg.Validator = validateNumber
		}
		value, err := r.driver.Input(ctx, cfg)
		if err != nil {
			return err
		}
		submission.Add(field.Name, value)
		return nil
	}
}

func (r *Renderer) promptCheckbox(ctx context.Context, field render.FieldNode, submission *Submission) error {
	checked, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: displayLabel(field),
		Default: field.Checked,
	})
	if err != nil {
		return err
	}
	if field.UncheckedValue != "" {
		submission.Add(field.Name, field.UncheckedValue)
	}
	if checked {
		submission.Add(field.Name, field.Value)
	}
	return nil
}

func (r *Renderer) promptSelect(ctx context.Context, field render.FieldNode, submission *Submission) error {
	labels := optionLabels(field.Options)
	defaultIdx := -1
	for idx, option := range field.Options {
		if option.Selected {
			defaultIdx = idx
			break
		}
	}

	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      displayLabel(field),
			Options:      labels,
			DefaultIndex: defaultIdx,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(field.Options) {
			if err := r.driver.Info(ctx, fmt.Sprintf("Invalid %s selection", displayLabel(field))); err != nil {
				return err
			}
			continue
		}
		submission.Add(field.Name, field.Options[idx].Value)
		return nil
	}
}

// promptMultiSelect mirrors a browser: the empty hidden value is always sent
// so clearing every option still reaches the server.
func (r *Renderer) promptMultiSelect(ctx context.Context, field render.FieldNode, submission *Submission) error {
	var defaults []int
	for idx, option := range field.Options {
		if option.Selected {
			defaults = append(defaults, idx)
		}
	}

	indices, err := r.driver.MultiSelect(ctx, SelectConfig{
		Message:  displayLabel(field),
		Options:  optionLabels(field.Options),
		Defaults: defaults,
	})
	if err != nil {
		return err
	}

	submission.Add(field.Name, "")
	for _, idx := range indices {
		if idx >= 0 && idx < len(field.Options) {
			submission.Add(field.Name, field.Options[idx].Value)
		}
	}
	return nil
}

func (r *Renderer) promptRadio(ctx context.Context, group []render.FieldNode, submission *Submission) error {
	if len(group) == 0 {
		return nil
	}
	labels := make([]string, 0, len(group))
	defaultIdx := -1
	for idx, radio := range group {
		labels = append(labels, radio.Value)
		if radio.Checked && defaultIdx < 0 {
			defaultIdx = idx
		}
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      displayLabel(group[0]),
		Options:      labels,
		DefaultIndex: defaultIdx,
	})
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(group) {
		submission.Add(group[idx].Name, group[idx].Value)
	}
	return nil
}

func (r *Renderer) serialize(submission Submission) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatJSON:
		payload, err := submission.json()
		if err != nil {
			return nil, fmt.Errorf("tui: encode json: %w", err)
		}
		return payload, nil
	case OutputFormatPrettyText:
		return []byte(submission.pretty()), nil
	default:
		return []byte(submission.Encode()), nil
	}
}

func radioGroups(fields []render.FieldNode) map[string][]render.FieldNode {
	groups := make(map[string][]render.FieldNode)
	for _, field := range fields {
		if field.Kind == model.FieldKindRadio {
			groups[field.Name] = append(groups[field.Name], field)
		}
	}
	return groups
}

func displayLabel(field render.FieldNode) string {
	if field.Label != "" {
		return field.Label
	}
	if field.Path != "" {
		return render.Humanize(lastSegment(field.Path))
	}
	return field.Name
}

func lastSegment(path string) string {
	if idx := strings.LastIndex(path, "."); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

func optionLabels(options []model.OptionDescriptor) []string {
	labels := make([]string, 0, len(options))
	for _, option := range options {
		label := option.Label
		if label == "" && option.Value == "" {
			label = blankOptionLabel
		}
		labels = append(labels, label)
	}
	return labels
}

func validateNumber(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return fmt.Errorf("%q is not a number", raw)
	}
	return nil
}
