package render

import (
	"errors"
	"strings"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when a key is
// looked up without a configured Translator.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves localized strings. Arguments are positional values
// substituted by the implementation (the model name for submit captions).
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler chooses the string used when a key cannot be
// translated. The default returns the untranslated fallback.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

const (
	labelKeyPrefix  = "helpers.label."
	submitKeyCreate = "helpers.submit.create"
	submitKeyUpdate = "helpers.submit.update"
	submitKeySubmit = "helpers.submit.submit"
)

func missingTranslationDefault(_ string, key, fallback string, _ error) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

// translate looks key up only when a translator is configured; without one
// the fallback is used as-is so untranslated renders never route through the
// missing handler.
func (o RenderOptions) translate(key, fallback string, args ...any) string {
	key = strings.TrimSpace(key)
	if key == "" || o.Translator == nil {
		return fallback
	}

	onMissing := o.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	result, err := o.Translator.Translate(o.Locale, key, args...)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(o.Locale, key, fallback, err)
}

func labelKey(modelName, attribute string) string {
	if modelName == "" {
		return labelKeyPrefix + attribute
	}
	return labelKeyPrefix + modelName + "." + attribute
}
