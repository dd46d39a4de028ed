// Package distance provides similarity metrics over signature vectors.
//
// Signature vectors are short (13 components) float64 slices, so plain
// scalar loops are used throughout; there is no SIMD dispatch. All
// functions assume equal-length inputs unless documented otherwise.
package distance
