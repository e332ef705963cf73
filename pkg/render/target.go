package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/identify"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

type targetKind int

const (
	targetNone targetKind = iota
	targetURL
	targetSymbol
	targetObject
)

// Target is what a form submits to: a URL, a symbolic route, or a bound
// record whose URL and verb are inferred.
type Target struct {
	kind     targetKind
	url      string
	symbol   string
	method   model.Method
	explicit bool
	object   model.BoundObject
	identify []identify.Option
}

// ForURL targets an explicit URL and verb.
func ForURL(url string, method model.Method) Target {
	return Target{kind: targetURL, url: url, method: method, explicit: true}
}

// ForTarget wraps a precomputed FormTarget.
func ForTarget(target model.FormTarget) Target {
	return ForURL(target.URL, target.Method)
}

// ForSymbol targets a named route resolved through RenderOptions.URLResolver.
func ForSymbol(symbol string, method model.Method) Target {
	return Target{kind: targetSymbol, symbol: strings.TrimSpace(symbol), method: method, explicit: true}
}

// ForObject binds a record and infers the target through record
// identification.
func ForObject(obj model.BoundObject, options ...identify.Option) Target {
	return Target{kind: targetObject, object: obj, identify: options}
}

// WithURL keeps the bound record but replaces the inferred target, as needed
// for records identify reports as ambiguous.
func (t Target) WithURL(url string, method model.Method) Target {
	t.url = url
	t.method = method
	t.explicit = true
	return t
}

// WithSymbol keeps the bound record but submits to a named route resolved
// through RenderOptions.URLResolver.
func (t Target) WithSymbol(symbol string, method model.Method) Target {
	t.symbol = strings.TrimSpace(symbol)
	t.method = method
	t.explicit = true
	return t
}

// WithMethod replaces the verb of an identified record while keeping the URL
// identification derives, e.g. DELETE on a member route. It is a no-op for
// an empty method.
func (t Target) WithMethod(method model.Method) Target {
	if strings.TrimSpace(string(method)) != "" {
		t.method = method
	}
	return t
}

// Object returns the bound record, if any.
func (t Target) Object() model.BoundObject {
	return t.object
}

func (t Target) resolve(opts RenderOptions) (model.FormTarget, error) {
	switch {
	case t.kind == targetSymbol || t.symbol != "":
		if opts.URLResolver == nil {
			return model.FormTarget{}, fmt.Errorf("render: no url resolver configured for %q", t.symbol)
		}
		url, err := opts.URLResolver.ResolveURL(t.symbol)
		if err != nil {
			return model.FormTarget{}, fmt.Errorf("render: resolve %q: %w", t.symbol, err)
		}
		return model.FormTarget{URL: url, Method: defaultMethod(t.method)}, nil
	case t.explicit:
		return model.FormTarget{URL: t.url, Method: defaultMethod(t.method)}, nil
	case t.kind == targetObject:
		target, err := identify.Identify(t.object, t.identify...)
		if err != nil {
			return model.FormTarget{}, fmt.Errorf("render: %w", err)
		}
		if t.method != "" {
			target.Method = t.method
		}
		return target, nil
	default:
		return model.FormTarget{}, fmt.Errorf("render: form target is required")
	}
}

func defaultMethod(method model.Method) model.Method {
	if strings.TrimSpace(string(method)) == "" {
		return model.MethodPost
	}
	return method
}
