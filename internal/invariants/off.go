//go:build !invariants && !race

// Package invariants gates internal consistency checks that are too
// expensive to run in regular builds.
package invariants

// Enabled is true if we were built with the "invariants" or "race" build tags.
const Enabled = false
