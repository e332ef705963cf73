// Package identify infers a form target from a bound record: new records post
// to the resource collection, persisted records put to their member URL.
package identify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/binding"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/naming"
)

// Option configures a single Identify call.
type Option func(*config)

type config struct {
	strategy naming.ResourceNamingStrategy
	prefix   string
	resource string
}

// WithNaming overrides the model-name to URL-segment strategy.
func WithNaming(strategy naming.ResourceNamingStrategy) Option {
	return func(cfg *config) {
		if strategy != nil {
			cfg.strategy = strategy
		}
	}
}

// WithPrefix mounts the resource under a namespace such as "/admin".
func WithPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.prefix = "/" + strings.Trim(strings.TrimSpace(prefix), "/")
		if cfg.prefix == "/" {
			cfg.prefix = ""
		}
	}
}

// WithResource names the resource explicitly, which also resolves records
// that would otherwise be ambiguous.
func WithResource(modelName string) Option {
	return func(cfg *config) {
		cfg.resource = strings.TrimSpace(modelName)
	}
}

// Identify derives the URL and verb for obj. It performs no I/O; routing
// conventions come from the naming strategy.
func Identify(obj model.BoundObject, options ...Option) (model.FormTarget, error) {
	cfg := config{strategy: naming.DefaultStrategy}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	if obj == nil {
		return model.FormTarget{}, fmt.Errorf("identify: record is nil: %w", model.ErrInvalidRecord)
	}

	modelName := naming.ModelName(obj)
	resource := cfg.resource
	if resource == "" {
		if typed, ok := obj.(model.ResourceTyped); ok {
			declared := strings.TrimSpace(typed.ResourceType())
			if declared != "" && declared != modelName {
				return model.FormTarget{}, fmt.Errorf("identify: %q is a specialisation of %q: %w", modelName, declared, model.ErrAmbiguousResource)
			}
		}
		resource = modelName
	}
	if resource == "" {
		return model.FormTarget{}, fmt.Errorf("identify: cannot derive a resource name for %T: %w", obj, model.ErrAmbiguousResource)
	}

	segment := strings.Trim(cfg.strategy(resource), "/")
	if segment == "" {
		return model.FormTarget{}, fmt.Errorf("identify: naming strategy returned an empty segment for %q: %w", resource, model.ErrAmbiguousResource)
	}
	collection := cfg.prefix + "/" + segment

	if obj.IsNew() {
		return model.FormTarget{URL: collection, Method: model.MethodPost}, nil
	}

	identifiable, ok := obj.(model.Identifiable)
	if !ok {
		return model.FormTarget{}, fmt.Errorf("identify: persisted %q does not expose an id: %w", modelName, model.ErrInvalidRecord)
	}
	id := strings.TrimSpace(binding.Stringify(identifiable.RecordID()))
	if id == "" {
		return model.FormTarget{}, fmt.Errorf("identify: persisted %q has an empty id: %w", modelName, model.ErrInvalidRecord)
	}

	return model.FormTarget{
		URL:    collection + "/" + url.PathEscape(id),
		Method: model.MethodPut,
	}, nil
}
