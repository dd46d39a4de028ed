// Package quantize reduces raw signature vectors to a caller-chosen decimal
// precision.
//
// Quantization truncates each component to p decimal digits after clamping
// it into the half-open unit interval: q = floor(clamp(v) * 10^p) / 10^p.
// Truncation makes the precision levels a strict refinement hierarchy: the
// cell a value occupies at precision p+1 is nested inside its cell at
// precision p, so raising precision never merges previously distinct
// values. Precision 0 maps every component to the single cell 0.
//
// Quantization is a pure, total, deterministic function of (vector,
// precision); equal raw vectors always quantize to equal results.
package quantize

import (
	"strconv"
	"strings"
)

// MaxPrecision caps the decimal digit count. Cells are computed on an
// integer grid of 10^MaxPrecision levels, which must stay exactly
// representable in a float64.
const MaxPrecision = 12

// maxCells is 10^MaxPrecision.
const maxCells = 1_000_000_000_000

var pow10 = func() [MaxPrecision + 1]int64 {
	var p [MaxPrecision + 1]int64
	p[0] = 1
	for i := 1; i <= MaxPrecision; i++ {
		p[i] = p[i-1] * 10
	}
	return p
}()

// Quantizer reduces vectors to a fixed precision. The zero value quantizes
// at precision 0.
type Quantizer struct {
	precision int
}

// New creates a Quantizer for the given precision. Negative precision is
// rejected by config validation before this point; values above
// MaxPrecision are capped.
func New(precision int) Quantizer {
	if precision < 0 {
		precision = 0
	}
	if precision > MaxPrecision {
		precision = MaxPrecision
	}
	return Quantizer{precision: precision}
}

// Precision returns the effective precision.
func (q Quantizer) Precision() int { return q.precision }

// Cell returns the integer quantization cell of v: the index of the
// 10^-precision-wide interval that clamp(v) falls into. Cells are derived
// from a single base grid at MaxPrecision so refinement is exact:
// Cell(v) at precision p equals Cell(v) at p+1 divided by 10.
func (q Quantizer) Cell(v float64) int64 {
	return baseCell(v) / pow10[MaxPrecision-q.precision]
}

// baseCell maps v onto the integer grid at MaxPrecision. Inputs >= 1 land
// in the top cell, NaN and negatives in the bottom cell, keeping the
// function total.
func baseCell(v float64) int64 {
	switch {
	case v != v || v <= 0:
		return 0
	case v >= 1:
		return maxCells - 1
	}
	// The nudge absorbs binary representation error for values that sit
	// on a decimal grid boundary (0.301 * 1e12 may land a hair below
	// 301000000000). It moves cell boundaries by ~1e-15 in value space,
	// far below any meaningful component distinction.
	base := int64(v*float64(maxCells) + 1e-3)
	if base > maxCells-1 {
		base = maxCells - 1
	}
	return base
}

// Apply returns v truncated to the quantizer's precision.
func (q Quantizer) Apply(v float64) float64 {
	return float64(q.Cell(v)) / float64(pow10[q.precision])
}

// Vector returns a new slice with every component of src quantized.
func (q Quantizer) Vector(src []float64) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = q.Apply(v)
	}
	return out
}

// Key renders the canonical identity string of src at the quantizer's
// precision. Two vectors share a Key iff all their components fall in the
// same cells, so Key equality is exactly quantized-signature equality.
func (q Quantizer) Key(src []float64) string {
	var b strings.Builder
	b.Grow(len(src) * (q.precision + 3))
	for i, v := range src {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(q.format(v))
	}
	return b.String()
}

// Compact renders the original headline form "c<coherence>_s<stability>_
// e<entropy>" from the first three components of src. Downstream tooling
// parses this three-part shape; keep it stable.
func (q Quantizer) Compact(src []float64) string {
	var c, s, e string
	if len(src) > 0 {
		c = q.format(src[0])
	}
	if len(src) > 1 {
		s = q.format(src[1])
	}
	if len(src) > 2 {
		e = q.format(src[2])
	}
	return "c" + c + "_s" + s + "_e" + e
}

// format renders the quantized value of v as a fixed-point decimal with
// exactly precision fractional digits, built from the integer cell so the
// text never suffers float rounding.
func (q Quantizer) format(v float64) string {
	cell := q.Cell(v)
	if q.precision == 0 {
		return strconv.FormatInt(cell, 10)
	}
	digits := strconv.FormatInt(cell, 10)
	if pad := q.precision - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	whole := "0"
	if len(digits) > q.precision {
		whole = digits[:len(digits)-q.precision]
		digits = digits[len(digits)-q.precision:]
	}
	return whole + "." + digits
}

