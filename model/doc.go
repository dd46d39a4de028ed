// Package model defines the core result types shared across the engine.
//
// # Analysis Types
//
//   - Config: normalized window/stride/precision parameters (bit units)
//   - WindowRecord: one window's offsets, quantized signature, local stats
//   - Manifold: the full result of one analysis call
//
// # Aggregate Types
//
//   - SimilarityLink: relation between consecutive windows
//   - SignatureFrequency: distinct-signature distribution entry
//   - HazardSummary, Totals, Aggregate: buffer-wide statistics
//
// All types are plain immutable values: an analysis call builds them once and
// never mutates them afterwards, so results are safe to share across
// goroutines without synchronization.
package model
