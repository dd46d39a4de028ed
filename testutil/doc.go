// Package testutil provides seeded deterministic byte-buffer generators for
// tests and benchmarks.
//
// All generators are driven by an explicit seed so failures reproduce
// exactly. The RNG is safe for concurrent use.
package testutil
