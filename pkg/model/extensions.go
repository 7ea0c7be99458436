package model

import internalmodel "github.com/goliatone/go-formtree/internal/model"

// ExtensionNamespace is the vendor extension read for per-schema hints.
const ExtensionNamespace = internalmodel.ExtensionNamespace

// HintsFromExtensions flattens the x-formtree extension of a schema into the
// string hints stored on fields. It returns nil when nothing usable is found.
func HintsFromExtensions(ext map[string]any) map[string]string {
	return internalmodel.HintsFromExtensions(ext)
}

// AllowedHintKeys lists the hint names the builder and the key layer act on.
func AllowedHintKeys() []string {
	return internalmodel.AllowedHintKeys()
}

// IsAllowedHintKey reports whether key is listed by AllowedHintKeys.
func IsAllowedHintKey(key string) bool {
	return internalmodel.IsAllowedHintKey(key)
}

// CanonicalizeExtensionValue renders a scalar extension value as a string.
func CanonicalizeExtensionValue(value any) (string, bool) {
	return internalmodel.CanonicalizeExtensionValue(value)
}

// ValidateForm reports fields that cannot be addressed by a key path.
func ValidateForm(form FormModel) error {
	return internalmodel.ValidateForm(form)
}
