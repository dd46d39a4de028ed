// Package signature computes the fixed-shape structural signature of a byte
// window.
//
// A RawSignature has 13 components, all mapped into the unit interval so
// that windows of different sizes stay comparable:
//
//   - coherence: index of coincidence over the byte histogram (sum of
//     squared bucket probabilities)
//   - stability: 1 - transitions/(n-1), where a transition is a pair of
//     adjacent unequal bytes
//   - entropy: Shannon entropy of the byte distribution, normalized to 8 bits
//   - mean: mean byte value / 255
//   - spread: population standard deviation / 127.5, clamped to [0, 1]
//   - histogram: fraction of bytes in each of 8 coarse 32-value buckets
//
// The component set and its order are a versioned contract (Version);
// downstream consumers depend on the structural stability of the exported
// document, so changing the layout requires a version bump.
//
// Extraction is a pure function of the window contents. For a full analysis
// pass use Roller, which maintains the histogram and transition count
// incrementally as the window slides, so total work stays O(L) instead of
// O(L*W/S).
package signature
