package model

// Config describes one analysis pass. Units are bits: the boundary layer
// converts caller-facing byte counts via NewConfig in the root package and
// the normalized form is echoed back in the exported document.
type Config struct {
	// WindowBits is the bit-length of one window (bytes * 8).
	WindowBits int
	// StepBits is the bit-length of the stride between window starts.
	// Always >= 8 after normalization (a zero stride would not advance).
	StepBits int
	// SignaturePrecision is the number of decimal digits kept per
	// signature component. 0 collapses every component to one bucket.
	SignaturePrecision int
}

// WindowBytes returns the window length in bytes, minimum 1.
func (c Config) WindowBytes() int {
	w := c.WindowBits / 8
	if w < 1 {
		w = 1
	}
	return w
}

// StepBytes returns the stride in bytes, minimum 1.
func (c Config) StepBytes() int {
	s := c.StepBits / 8
	if s < 1 {
		s = 1
	}
	return s
}

// LocalStats holds the per-window statistics carried on a WindowRecord.
// All float fields live in the unit interval.
type LocalStats struct {
	MinByte   byte
	MaxByte   byte
	Entropy   float64
	Coherence float64
	Stability float64
	Mean      float64
	Spread    float64
	// Hazard is the per-window rupture estimate entropy*(1-coherence).
	Hazard float64
}

// WindowRecord pairs one window with its quantized signature and local
// statistics. Records are immutable once built and ordered by offset.
type WindowRecord struct {
	Index  int
	Offset int
	Length int
	// Key is the canonical string over all quantized components. Two
	// windows share a Key iff their quantized signatures are equal.
	Key string
	// Signature is the compact headline form "c..._s..._e...".
	Signature string
	// Quantized is the full signature vector after precision reduction.
	Quantized []float64
	Stats     LocalStats
}

// End returns the exclusive end offset of the record's window.
func (r WindowRecord) End() int { return r.Offset + r.Length }

// SimilarityLink relates two consecutive windows.
type SimilarityLink struct {
	From int
	To   int
	// Equal is true when both windows quantize to the same signature.
	Equal bool
	// Distance is the Euclidean distance between the quantized vectors.
	Distance float64
}

// SignatureFrequency is one entry of the distinct-signature distribution,
// ordered by first appearance in the window sequence.
type SignatureFrequency struct {
	Key       string
	Signature string
	Count     int
	// Windows lists the indices of the windows carrying this signature.
	Windows []uint32
}

// HazardSummary aggregates the per-window hazards of one analysis.
type HazardSummary struct {
	Mean float64
	Max  float64
	// Percentile echoes the configured gate percentile.
	Percentile float64
	// Threshold is the hazard value at that percentile; windows above it
	// are considered structurally unstable.
	Threshold float64
}

// Totals holds the buffer-wide counters of one analysis.
type Totals struct {
	WindowCount        int
	DistinctSignatures int
	BufferLength       int
	// CoveredBytes counts bytes touched by at least one window.
	CoveredBytes int
	// Coverage is CoveredBytes / BufferLength, 0 for an empty buffer.
	Coverage float64
}

// Aggregate combines the window records of one analysis into buffer-wide
// statistics. A zero-window analysis yields zeroed totals, never an error.
type Aggregate struct {
	Totals      Totals
	Similarity  []SimilarityLink
	Frequencies []SignatureFrequency
	Hazard      HazardSummary
}

// Manifold is the full structured result of one analysis call: the ordered
// window records plus aggregates and the normalized config echo. It holds no
// reference to the analyzed buffer and is immutable once returned.
type Manifold struct {
	Config       Config
	BufferLength int
	Windows      []WindowRecord
	Aggregate    Aggregate
}
