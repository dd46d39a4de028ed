package testutil

import (
	"math/rand"
	"sync"
)

// RNG encapsulates a seeded random source. It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformBytes returns n bytes drawn uniformly from [0, 256).
func (r *RNG) UniformBytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	buf := make([]byte, n)
	r.rand.Read(buf)
	return buf
}

// ZipfBytes returns n bytes with a Zipfian value distribution (skew s).
// Low byte values dominate, which mimics real-world data such as text or
// serialized structures and produces signature variety across windows.
func (r *RNG) ZipfBytes(n int, s float64) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s <= 1 {
		s = 1.0001
	}
	z := rand.NewZipf(r.rand, s, 1, 255)
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(z.Uint64())
	}
	return buf
}

// TextBytes returns n bytes of printable-ASCII-like content with word
// boundaries, approximating natural text.
func (r *RNG) TextBytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	const letters = "etaoinshrdlcumwfgypbvkjxqz"
	buf := make([]byte, n)
	for i := range buf {
		if r.rand.Float64() < 0.18 {
			buf[i] = ' '
		} else {
			buf[i] = letters[r.rand.Intn(len(letters))]
		}
	}
	return buf
}

// RampBytes returns n bytes cycling through 0..255, a fully ordered stream
// with maximal local transitions.
func RampBytes(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i % 256)
	}
	return buf
}

// RepeatBytes returns n copies of the byte b, a maximally ordered buffer.
func RepeatBytes(n int, b byte) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = b
	}
	return buf
}

// Default is the shared package-level RNG behind the convenience helpers
// below. Tests that need isolated streams should use NewRNG instead.
var Default = NewRNG(42)

// Reset rewinds the package-level RNG to its initial seed.
func Reset() { Default.Reset() }

// UniformBytes draws n bytes from the package-level RNG.
func UniformBytes(n int) []byte { return Default.UniformBytes(n) }

// ZipfBytes draws n Zipf-distributed bytes from the package-level RNG.
func ZipfBytes(n int, s float64) []byte { return Default.ZipfBytes(n, s) }

// TextBytes draws n text-like bytes from the package-level RNG.
func TextBytes(n int) []byte { return Default.TextBytes(n) }
