package signature

import "math"

// Version identifies the feature layout of RawSignature. It is embedded in
// exported documents; bump it when the component set or order changes.
const Version = 1

const (
	// HistogramBuckets is the number of coarse byte-value buckets.
	HistogramBuckets = 8

	// Dim is the fixed dimensionality of a RawSignature vector.
	Dim = 5 + HistogramBuckets

	bucketWidth = 256 / HistogramBuckets
)

// RawSignature is the fixed-shape feature vector of one window. All
// components live in the unit interval.
type RawSignature struct {
	Coherence float64
	Stability float64
	Entropy   float64
	Mean      float64
	Spread    float64
	Histogram [HistogramBuckets]float64
}

// Vector returns the components in canonical order:
// coherence, stability, entropy, mean, spread, histogram[0..7].
func (s RawSignature) Vector() []float64 {
	v := make([]float64, 0, Dim)
	v = append(v, s.Coherence, s.Stability, s.Entropy, s.Mean, s.Spread)
	v = append(v, s.Histogram[:]...)
	return v
}

// Hazard returns the rupture estimate entropy*(1-coherence): high for
// windows that are both disordered and structurally diffuse.
func (s RawSignature) Hazard() float64 {
	return s.Entropy * (1 - s.Coherence)
}

// Extract computes the RawSignature of a single window. It depends only on
// the byte contents, never on the window's position in the buffer.
func Extract(window []byte) RawSignature {
	r := NewRoller(window)
	return r.Move(0, len(window))
}

// Roller computes signatures over a sliding window in amortized O(1) work
// per buffer byte. It keeps the full 256-bin histogram and the adjacent
// transition count of the current window and updates both incrementally as
// the window advances.
//
// A Roller is bound to one buffer and one analysis pass; it is not safe for
// concurrent use.
type Roller struct {
	buf         []byte
	off         int
	end         int
	counts      [256]uint32
	transitions int
}

// NewRoller creates a Roller over buf. The Roller borrows buf read-only for
// the duration of the pass and must not outlive it.
func NewRoller(buf []byte) *Roller {
	return &Roller{buf: buf}
}

// Move positions the roller at the window [offset, offset+length) and
// returns its signature. Windows must be visited in ascending offset order
// with non-decreasing end offsets, which is exactly the order the slicer
// produces; any other movement falls back to a full rebuild.
func (r *Roller) Move(offset, length int) RawSignature {
	end := offset + length
	if offset < r.off || offset > r.end || end < r.end {
		r.rebuild(offset, end)
		return r.signature()
	}

	// Extend right, then shrink left.
	for r.end < end {
		if r.end > r.off && r.buf[r.end] != r.buf[r.end-1] {
			r.transitions++
		}
		r.counts[r.buf[r.end]]++
		r.end++
	}
	for r.off < offset {
		if r.off+1 < r.end && r.buf[r.off+1] != r.buf[r.off] {
			r.transitions--
		}
		r.counts[r.buf[r.off]]--
		r.off++
	}
	return r.signature()
}

// MinMax returns the smallest and largest byte value in the current window.
// Both are 0 when the window is empty.
func (r *Roller) MinMax() (minByte, maxByte byte) {
	found := false
	for v := 0; v < 256; v++ {
		if r.counts[v] == 0 {
			continue
		}
		if !found {
			minByte = byte(v)
			found = true
		}
		maxByte = byte(v)
	}
	return minByte, maxByte
}

func (r *Roller) rebuild(offset, end int) {
	r.counts = [256]uint32{}
	r.transitions = 0
	r.off = offset
	r.end = offset
	for r.end < end {
		if r.end > r.off && r.buf[r.end] != r.buf[r.end-1] {
			r.transitions++
		}
		r.counts[r.buf[r.end]]++
		r.end++
	}
}

func (r *Roller) signature() RawSignature {
	n := r.end - r.off
	if n <= 0 {
		return RawSignature{}
	}

	inv := 1 / float64(n)
	var sig RawSignature
	var mean, coherence, entropy float64

	for v := 0; v < 256; v++ {
		c := r.counts[v]
		if c == 0 {
			continue
		}
		p := float64(c) * inv
		coherence += p * p
		entropy -= p * math.Log2(p)
		mean += float64(v) * p
		sig.Histogram[v/bucketWidth] += p
	}

	var variance float64
	for v := 0; v < 256; v++ {
		c := r.counts[v]
		if c == 0 {
			continue
		}
		d := float64(v) - mean
		variance += d * d * float64(c) * inv
	}

	sig.Coherence = coherence
	sig.Entropy = entropy / 8
	sig.Mean = mean / 255
	sig.Spread = math.Min(math.Sqrt(variance)/127.5, 1)
	if n == 1 {
		sig.Stability = 1
	} else {
		sig.Stability = 1 - float64(r.transitions)/float64(n-1)
	}
	return sig
}
