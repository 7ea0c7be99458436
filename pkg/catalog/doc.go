// Package catalog stores translated form strings.
//
// Catalog files follow the `<domain>.<locale>.<ext>` naming convention
// (forms.en.yaml, forms.pt-BR.json). Nested mappings are flattened into dotted
// keys on load and nested again on Export, so a catalog written by the
// extractor can be edited by hand and reloaded.
package catalog
