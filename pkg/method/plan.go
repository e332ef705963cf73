package method

import (
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// FieldName is the hidden input carrying the emulated verb.
const FieldName = "_method"

// HeaderName is the request header honoured by Override as an alternative to
// the hidden field.
const HeaderName = "X-HTTP-Method-Override"

// OverrideField is the hidden control emitted for an emulated verb.
type OverrideField struct {
	Name  string
	Value string
}

// Plan is the wire-level submission for a declared method.
type Plan struct {
	Declared model.Method
	Wire     model.Method
	Override *OverrideField
}

// Emulated reports whether the plan disguises the declared verb.
func (p Plan) Emulated() bool {
	return p.Override != nil
}

// PlanFor maps a declared verb to its wire method. GET and POST pass through;
// PUT, PATCH and DELETE become POST plus a lower-cased _method override. Any
// other verb fails with model.ErrUnsupportedMethod.
func PlanFor(raw string) (Plan, error) {
	declared, err := model.ParseMethod(raw)
	if err != nil {
		return Plan{}, err
	}
	return planParsed(declared), nil
}

// PlanMethod is PlanFor for an already typed method.
func PlanMethod(m model.Method) (Plan, error) {
	return PlanFor(string(m))
}

func planParsed(declared model.Method) Plan {
	switch declared {
	case model.MethodGet, model.MethodPost:
		return Plan{Declared: declared, Wire: declared}
	default:
		return Plan{
			Declared: declared,
			Wire:     model.MethodPost,
			Override: &OverrideField{
				Name:  FieldName,
				Value: strings.ToLower(string(declared)),
			},
		}
	}
}
