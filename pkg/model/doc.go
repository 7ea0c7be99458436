// Package model defines the typed form model that translation keys are
// derived from. Builders reside in internal/model but return the types
// defined here. Keys may be pinned per field through the `x-formtree` schema
// extension, whose string entries surface in Field.UIHints (for example
// `labelKey`, `helpKey`, `placeholderKey` and `descriptionKey`).
package model
