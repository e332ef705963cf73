package render

import (
	"html"
	"sort"
	"strings"
	"unicode/utf8"
)

// Attr is a single element attribute. Attributes render in slice order.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Element is a node of the rendered markup tree. Text is escaped on output;
// RawHTML is emitted verbatim and must already be safe.
type Element struct {
	Tag      string    `json:"tag"`
	Attrs    []Attr    `json:"attrs,omitempty"`
	Text     string    `json:"text,omitempty"`
	RawHTML  string    `json:"rawHtml,omitempty"`
	Children []Element `json:"children,omitempty"`
	Void     bool      `json:"void,omitempty"`
}

// Attr returns the value of the named attribute.
func (e Element) Attr(name string) (string, bool) {
	for _, attr := range e.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// HTML serialises the element and its children.
func (e Element) HTML() string {
	var builder strings.Builder
	e.writeHTML(&builder)
	return builder.String()
}

func (e Element) writeOpenTag(builder *strings.Builder) {
	builder.WriteByte('<')
	builder.WriteString(e.Tag)
	for _, attr := range e.Attrs {
		if !ValidAttrName(attr.Name) {
			continue
		}
		builder.WriteByte(' ')
		builder.WriteString(attr.Name)
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(attr.Value))
		builder.WriteByte('"')
	}
	builder.WriteByte('>')
}

func (e Element) writeHTML(builder *strings.Builder) {
	e.writeOpenTag(builder)
	if e.Void {
		return
	}
	if e.Text != "" {
		builder.WriteString(html.EscapeString(e.Text))
	}
	builder.WriteString(e.RawHTML)
	for _, child := range e.Children {
		child.writeHTML(builder)
	}
	builder.WriteString("</")
	builder.WriteString(e.Tag)
	builder.WriteByte('>')
}

// ValidAttrName reports whether name can be written as an attribute name
// without escaping: non-empty and free of whitespace, control characters,
// quotes, '<', '>', '/', '=' and '&'.
func ValidAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r <= ' ', r == 0x7f, r >= 0x80 && r <= 0x9f:
			return false
		case strings.ContainsRune("\"'<>/=&`", r):
			return false
		case r == utf8.RuneError:
			return false
		}
	}
	return true
}

func input(attrs ...Attr) Element {
	return Element{Tag: "input", Attrs: attrs, Void: true}
}

// appendExtraAttrs adds caller attributes in name order, skipping names the
// element already carries.
func appendExtraAttrs(attrs []Attr, extra map[string]string) []Attr {
	if len(extra) == 0 {
		return attrs
	}
	taken := make(map[string]struct{}, len(attrs))
	for _, attr := range attrs {
		taken[attr.Name] = struct{}{}
	}
	names := make([]string, 0, len(extra))
	for name := range extra {
		name = strings.TrimSpace(name)
		if !ValidAttrName(name) {
			continue
		}
		if _, exists := taken[name]; exists {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		attrs = append(attrs, Attr{Name: name, Value: extraValue(extra, name)})
	}
	return attrs
}

func extraValue(extra map[string]string, trimmed string) string {
	if value, ok := extra[trimmed]; ok {
		return value
	}
	for name, value := range extra {
		if strings.TrimSpace(name) == trimmed {
			return value
		}
	}
	return ""
}
