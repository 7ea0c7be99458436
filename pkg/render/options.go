package render

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/goliatone/go-formtree/pkg/keys"
)

// ErrMissingTranslator is passed to the missing handler when no Translator is
// configured.
var ErrMissingTranslator = errors.New("render: translator is not configured")

// Translator resolves a translation key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler picks the text used when a key cannot be
// translated. args carries a map with the untranslated "default" text.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// Options describe a single localisation pass.
type Options struct {
	Locale     string
	Translator Translator
	// OnMissing defaults to returning the existing text, or the key when the
	// field has no text.
	OnMissing MissingTranslationHandler
	// Keys shapes derived keys; nil uses keys.DefaultOptions.
	Keys *keys.Builder
	// Suffixes lists the attributes to localise; empty means label,
	// description, placeholder and help.
	Suffixes []string
	Logger   *slog.Logger
}

var defaultSuffixes = []string{
	keys.SuffixLabel,
	keys.SuffixDescription,
	keys.SuffixPlaceholder,
	keys.SuffixHelp,
}

func (o Options) keyBuilder() *keys.Builder {
	if o.Keys != nil {
		return o.Keys
	}
	return keys.NewBuilder(keys.DefaultOptions())
}

func (o Options) suffixes() []string {
	if len(o.Suffixes) == 0 {
		return defaultSuffixes
	}
	return o.Suffixes
}

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	for _, arg := range args {
		params, ok := arg.(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := params["default"].(string); ok && strings.TrimSpace(fallback) != "" {
			return fallback
		}
	}
	return key
}
