package method

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// OverrideOption configures Override.
type OverrideOption func(*overrideConfig)

type overrideConfig struct {
	fieldName   string
	allowHeader bool
}

// WithFieldName changes the form field read by Override.
func WithFieldName(name string) OverrideOption {
	return func(cfg *overrideConfig) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.fieldName = trimmed
		}
	}
}

// WithHeader toggles support for the X-HTTP-Method-Override header.
func WithHeader(enabled bool) OverrideOption {
	return func(cfg *overrideConfig) {
		cfg.allowHeader = enabled
	}
}

// Override rewrites the method of POST requests that carry an emulated verb
// in the _method form field (or, when enabled, the override header). Only
// verbs that PlanFor would emulate are honoured; anything else leaves the
// request untouched.
func Override(next http.Handler, options ...OverrideOption) http.Handler {
	cfg := overrideConfig{fieldName: FieldName, allowHeader: true}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if verb, ok := requestedOverride(r, cfg); ok {
				r.Method = verb
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Resolve reports the verb a request should be dispatched as, applying the
// same rules as Override without mutating the request.
func Resolve(r *http.Request) string {
	if r.Method != http.MethodPost {
		return r.Method
	}
	if verb, ok := requestedOverride(r, overrideConfig{fieldName: FieldName, allowHeader: true}); ok {
		return verb
	}
	return r.Method
}

func requestedOverride(r *http.Request, cfg overrideConfig) (string, bool) {
	raw := ""
	if cfg.allowHeader {
		raw = r.Header.Get(HeaderName)
	}
	if raw == "" && isFormEncoded(r) {
		raw = r.PostFormValue(cfg.fieldName)
	}
	if strings.TrimSpace(raw) == "" {
		return "", false
	}

	declared, err := model.ParseMethod(raw)
	if err != nil {
		return "", false
	}
	plan := planParsed(declared)
	if !plan.Emulated() {
		return "", false
	}
	return string(plan.Declared), true
}

func isFormEncoded(r *http.Request) bool {
	contentType := strings.ToLower(r.Header.Get("Content-Type"))
	return strings.HasPrefix(contentType, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(contentType, "multipart/form-data")
}
