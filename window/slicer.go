// Package window enumerates the overlapping byte windows of one analysis.
//
// A Slicer is built once per call from the normalized config and produces a
// lazy, finite, restartable sequence of windows in strictly increasing offset
// order. For a buffer of length L, window length W and stride S the offsets
// are 0, S, 2S, ... with ceil(max(L-W, 0)/S)+1 windows; the final window is
// truncated at the buffer end and always ends exactly at L.
package window

import "iter"

// Window is a read-only view into the analyzed buffer.
type Window struct {
	// Offset is the byte index of the first byte of the window.
	Offset int
	// Length is the byte count, always >= 1.
	Length int
}

// End returns the exclusive end offset of the window.
func (w Window) End() int { return w.Offset + w.Length }

// Slicer enumerates window offsets for a fixed window/stride geometry.
type Slicer struct {
	window int
	stride int
}

// New creates a Slicer for the given window and stride byte lengths.
// Both are clamped to a minimum of 1; the root package rejects invalid
// configs before a Slicer is ever constructed.
func New(windowBytes, strideBytes int) Slicer {
	if windowBytes < 1 {
		windowBytes = 1
	}
	if strideBytes < 1 {
		strideBytes = 1
	}
	return Slicer{window: windowBytes, stride: strideBytes}
}

// WindowBytes returns the configured window length.
func (s Slicer) WindowBytes() int { return s.window }

// StrideBytes returns the configured stride.
func (s Slicer) StrideBytes() int { return s.stride }

// Count returns the number of windows produced for a buffer of bufLen
// bytes: ceil(max(L-W, 0)/S)+1 for L > 0, and 0 for an empty buffer.
// Offsets that would land at or past the buffer end are dropped so a
// zero-length window is never produced.
func (s Slicer) Count(bufLen int) int {
	if bufLen <= 0 {
		return 0
	}
	if bufLen <= s.window {
		return 1
	}
	n := (bufLen-s.window+s.stride-1)/s.stride + 1
	for n > 1 && (n-1)*s.stride >= bufLen {
		n--
	}
	return n
}

// Windows returns the ordered window sequence for a buffer of bufLen bytes.
// The sequence is lazy and restartable: ranging over it twice yields the
// same windows in the same order.
func (s Slicer) Windows(bufLen int) iter.Seq[Window] {
	n := s.Count(bufLen)
	return func(yield func(Window) bool) {
		for k := range n {
			off := k * s.stride
			length := s.window
			if off+length > bufLen {
				length = bufLen - off
			}
			if !yield(Window{Offset: off, Length: length}) {
				return
			}
		}
	}
}
