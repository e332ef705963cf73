package render

import "strings"

// DefaultAntiForgeryFieldName is the hidden input carrying the CSRF token.
const DefaultAntiForgeryFieldName = "authenticity_token"

// TokenSource issues the current anti-forgery token. Issuance and
// verification stay with the host application.
type TokenSource interface {
	CurrentToken() string
}

// TokenSourceFunc adapts a function into a TokenSource.
type TokenSourceFunc func() string

// CurrentToken calls the underlying function.
func (fn TokenSourceFunc) CurrentToken() string {
	return fn()
}

// URLResolver resolves symbolic targets (route names) into URLs.
type URLResolver interface {
	ResolveURL(symbol string) (string, error)
}

// URLResolverFunc adapts a function into a URLResolver.
type URLResolverFunc func(symbol string) (string, error)

// ResolveURL calls the underlying function.
func (fn URLResolverFunc) ResolveURL(symbol string) (string, error) {
	return fn(symbol)
}

// RenderOptions carries per-render configuration. Nothing here is retained
// after Render returns.
type RenderOptions struct {
	// ModelName overrides the param key derived from the bound record. Use
	// it to bind fields to a model name without a record (for example a
	// search form scoped to "filter").
	ModelName string

	// AntiForgeryToken is embedded as a hidden field on non-GET forms. When
	// empty, TokenSource is consulted.
	AntiForgeryToken string
	TokenSource      TokenSource
	// AntiForgeryFieldName defaults to DefaultAntiForgeryFieldName.
	AntiForgeryFieldName string

	// URLResolver resolves targets created with ForSymbol.
	URLResolver URLResolver

	// Attrs adds attributes to the form element (class, id, data-*).
	Attrs map[string]string

	// Errors surfaces server-side validation feedback keyed by dotted field
	// path. Keys that match no field are rendered as form-level errors.
	Errors map[string][]string

	// Locale and Translator localise labels and submit captions using the
	// helpers.label.<model>.<attribute> and helpers.submit.<action> keys.
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
}

// The token is opaque and embedded exactly as given.
func (o RenderOptions) antiForgeryToken() string {
	if o.AntiForgeryToken != "" {
		return o.AntiForgeryToken
	}
	if o.TokenSource != nil {
		return o.TokenSource.CurrentToken()
	}
	return ""
}

func (o RenderOptions) antiForgeryFieldName() string {
	if name := strings.TrimSpace(o.AntiForgeryFieldName); name != "" {
		return name
	}
	return DefaultAntiForgeryFieldName
}
