package gotemplate

import (
	"html"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formbuilder/pkg/render"
)

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("attrs") {
		_ = pongo2.RegisterFilter("attrs", filterAttrs)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterAttrs renders a list of {"name","value"} objects as escaped HTML
// attributes, each preceded by a space. Entries whose name is not a valid
// attribute name are skipped.
func filterAttrs(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	list, ok := in.Interface().([]any)
	if !ok || len(list) == 0 {
		return pongo2.AsSafeValue(""), nil
	}

	var builder strings.Builder
	for _, entry := range list {
		attr, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name, _ := attr["name"].(string)
		name = strings.TrimSpace(name)
		if !render.ValidAttrName(name) {
			continue
		}
		value, _ := attr["value"].(string)
		builder.WriteByte(' ')
		builder.WriteString(name)
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(value))
		builder.WriteByte('"')
	}
	return pongo2.AsSafeValue(builder.String()), nil
}
