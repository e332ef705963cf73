package render

import (
	"fmt"
	"strings"
)

// HiddenField is a hidden input emitted ahead of the visible fields: the
// method override, the anti-forgery token, or caller supplied extras.
type HiddenField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// AntiForgeryField constructs the anti-forgery hidden field. An empty name
// falls back to DefaultAntiForgeryFieldName.
func AntiForgeryField(name, token string) HiddenField {
	if strings.TrimSpace(name) == "" {
		name = DefaultAntiForgeryFieldName
	}
	return Hidden(name, token)
}

// Element converts the hidden field into its markup node.
func (h HiddenField) Element() Element {
	return input(
		Attr{Name: "type", Value: "hidden"},
		Attr{Name: "name", Value: h.Name},
		Attr{Name: "value", Value: h.Value},
	)
}
