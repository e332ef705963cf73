package model

import "strings"

// Method is an HTTP verb as declared by a form target.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodPatch  Method = "PATCH"
	MethodDelete Method = "DELETE"
)

// ParseMethod upper-cases and validates a verb. Only the five verbs the form
// engine understands are accepted.
func ParseMethod(raw string) (Method, error) {
	method := Method(strings.ToUpper(strings.TrimSpace(raw)))
	switch method {
	case MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete:
		return method, nil
	default:
		return "", &MethodError{Method: raw}
	}
}

func (m Method) String() string {
	return string(m)
}
