package model

import (
	"sort"
	"strconv"
	"strings"
)

// ExtensionNamespace is the vendor extension carrying per-schema hints.
const ExtensionNamespace = "x-formtree"

var allowedHintKeys = map[string]struct{}{
	"labelKey":       {},
	"helpTextKey":    {},
	"placeholderKey": {},
	"descriptionKey": {},
	"helpText":       {},
	"placeholder":    {},
}

// AllowedHintKeys lists the keys accepted inside the x-formtree extension.
func AllowedHintKeys() []string {
	out := make([]string, 0, len(allowedHintKeys))
	for key := range allowedHintKeys {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// IsAllowedHintKey reports whether key is a supported x-formtree hint.
func IsAllowedHintKey(key string) bool {
	_, ok := allowedHintKeys[key]
	return ok
}

// CanonicalizeExtensionValue renders a scalar extension value as a string.
// Blank strings and non-scalar values are rejected.
func CanonicalizeExtensionValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		v = strings.TrimSpace(v)
		return v, v != ""
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 64), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

// HintsFromExtensions flattens the x-formtree extension into string hints.
// Unknown keys are kept so renderers can read them; values that cannot be
// canonicalized are dropped.
func HintsFromExtensions(ext map[string]any) map[string]string {
	raw, ok := ext[ExtensionNamespace].(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		if s, ok := CanonicalizeExtensionValue(value); ok {
			out[key] = s
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
