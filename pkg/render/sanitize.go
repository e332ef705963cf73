package render

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// SanitizeLabelHTML strips everything but inline formatting from label
// markup supplied through FieldSpec.LabelHTML.
func SanitizeLabelHTML(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(labelSanitizer().Sanitize(trimmed))
}

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("b", "strong", "em", "i", "u", "small", "sub", "sup", "span", "abbr", "code", "br")
		policy.AllowAttrs("title").OnElements("abbr")
		policy.AllowAttrs("class").OnElements("span", "abbr", "small", "code")
		labelPolicy = policy
	})
	return labelPolicy
}
