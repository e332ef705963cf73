package timezones

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// StatusError lets a Guard choose the response status.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

// StatusCode returns Code, defaulting to 500.
func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// GuardFunc authorises a request before any search runs.
type GuardFunc func(r *http.Request) error

// Config drives the search handler.
type Config struct {
	SearchParam   string
	SelectedParam string
	LimitParam    string
	DefaultLimit  int
	MaxLimit      int
	// ListOnEmpty returns the first zones for an empty query instead of
	// nothing.
	ListOnEmpty bool
	Guard       GuardFunc
	// Zones replaces the embedded list when non-nil.
	Zones []string
}

// Option configures the handler.
type Option func(*Config)

// WithParams renames the query parameters. Empty names keep the default.
func WithParams(search, selected, limit string) Option {
	return func(cfg *Config) {
		if search = strings.TrimSpace(search); search != "" {
			cfg.SearchParam = search
		}
		if selected = strings.TrimSpace(selected); selected != "" {
			cfg.SelectedParam = selected
		}
		if limit = strings.TrimSpace(limit); limit != "" {
			cfg.LimitParam = limit
		}
	}
}

// WithLimits sets the default and maximum result counts.
func WithLimits(defaultLimit, maxLimit int) Option {
	return func(cfg *Config) {
		if defaultLimit > 0 {
			cfg.DefaultLimit = defaultLimit
		}
		if maxLimit > 0 {
			cfg.MaxLimit = maxLimit
		}
	}
}

// WithListOnEmpty toggles listing zones for an empty query.
func WithListOnEmpty(enabled bool) Option {
	return func(cfg *Config) {
		cfg.ListOnEmpty = enabled
	}
}

// WithGuard installs an authorisation check.
func WithGuard(guard GuardFunc) Option {
	return func(cfg *Config) {
		cfg.Guard = guard
	}
}

// WithZones searches zones instead of the embedded list.
func WithZones(zones []string) Option {
	return func(cfg *Config) {
		if zones == nil {
			cfg.Zones = nil
			return
		}
		cfg.Zones = append([]string{}, zones...)
	}
}

// NewConfig returns the defaults with options applied.
func NewConfig(options ...Option) Config {
	cfg := Config{
		SearchParam:   "q",
		SelectedParam: "selected",
		LimitParam:    "limit",
		DefaultLimit:  50,
		MaxLimit:      200,
	}
	for _, option := range options {
		if option != nil {
			option(&cfg)
		}
	}
	return cfg
}

func (c Config) clampLimit(limit int) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = c.DefaultLimit
	}
	if c.MaxLimit > 0 && limit > c.MaxLimit {
		return c.MaxLimit
	}
	return limit
}

type optionsResponse struct {
	Data []model.OptionDescriptor `json:"data"`
}

// NewHandler returns a handler answering ?q=<query>&selected=<zone>&limit=<n>
// with {"data": [{"label", "value", "selected"}]}.
func NewHandler(options ...Option) http.Handler {
	cfg := NewConfig(options...)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if cfg.Guard != nil {
			if err := cfg.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		zones := cfg.Zones
		if zones == nil {
			loaded, err := DefaultZones()
			if err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			zones = loaded
		}

		query := r.URL.Query()
		limit, _ := strconv.Atoi(query.Get(cfg.LimitParam))
		results := SearchOptions(zones, query.Get(cfg.SearchParam), query.Get(cfg.SelectedParam), limit, cfg)
		if results == nil {
			results = []model.OptionDescriptor{}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_ = json.NewEncoder(w).Encode(optionsResponse{Data: results})
	})
}

func writeGuardError(w http.ResponseWriter, err error) {
	code := http.StatusForbidden
	var status interface{ StatusCode() int }
	if errors.As(err, &status) {
		code = status.StatusCode()
	}
	http.Error(w, http.StatusText(code), code)
}
