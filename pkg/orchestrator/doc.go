// Package orchestrator wires the loader → parser → model builder → key
// builder pipeline behind a single entry point. Each stage can be swapped
// through an Option; the defaults load local files, parse with kin-openapi
// and derive keys with keys.DefaultOptions.
package orchestrator
