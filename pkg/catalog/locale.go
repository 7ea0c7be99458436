package catalog

import (
	"strings"

	"golang.org/x/text/language"
)

// CanonicalLocale normalises a locale identifier ("pt_br" becomes "pt-BR").
// Identifiers that are not valid BCP 47 tags are lower-cased and kept.
func CanonicalLocale(locale string) string {
	raw := strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if raw == "" {
		return ""
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return strings.ToLower(raw)
	}
	return tag.String()
}

// baseLocale returns the language subtag of locale, or "" when locale has
// no region/script to strip.
func baseLocale(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return ""
	}
	if b := base.String(); b != locale {
		return b
	}
	return ""
}

// fallbackChain lists the locales consulted for locale, most specific first.
func fallbackChain(locale, defaultLocale string) []string {
	var chain []string
	seen := make(map[string]struct{}, 4)
	push := func(candidate string) {
		if candidate == "" {
			return
		}
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}
		chain = append(chain, candidate)
	}

	for _, loc := range []string{CanonicalLocale(locale), CanonicalLocale(defaultLocale)} {
		push(loc)
		push(baseLocale(loc))
	}
	return chain
}
