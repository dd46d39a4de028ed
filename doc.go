// Package manifold turns a byte buffer into a structural manifold: a set of
// overlapping windows, one fixed-shape signature per window, and buffer-wide
// aggregates over those signatures.
//
// The pipeline has four stages. A slicer walks the buffer with a fixed
// window length and stride, keeping a final truncated window so the tail is
// always covered. A rolling extractor computes a 13-component signature per
// window (coherence, stability, entropy, mean, spread and an 8-bucket byte
// histogram, all in the unit interval) in amortized O(1) work per buffer
// byte. A quantizer truncates every component onto a decimal grid so that
// coarser precisions are exact prefixes of finer ones. An aggregator folds
// the records into coverage, signature frequencies, consecutive-window
// similarity and a hazard summary.
//
// Basic usage:
//
//	a := manifold.New()
//	m, err := a.Analyze(ctx, data, manifold.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, _ := a.Export(ctx, document.Build(m))
//
// Analysis is deterministic: the same buffer and config always produce the
// same manifold, and exporting the same manifold twice yields identical
// bytes.
package manifold
