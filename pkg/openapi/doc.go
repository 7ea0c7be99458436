// Package openapi exposes the loader and parser contracts used to obtain form
// definitions from OpenAPI documents. Implementations live under
// internal/openapi so kin-openapi types never leak into the public API.
package openapi
