// Package index maintains an inverted index from quantized signature keys
// to the analyzed buffers containing them. It answers containment-style
// questions: which known buffers share structure with this snippet, and how
// much of the snippet is covered.
//
// Documents are identified by dense uint32 ids, so posting lists compress
// well as roaring bitmaps.
package index

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/sepkit/manifold/model"
)

var (
	// ErrConfigMismatch is returned when a manifold was produced with
	// different parameters than the index. Keys from different configs are
	// not comparable.
	ErrConfigMismatch = errors.New("manifold config does not match index config")

	// ErrDuplicateDocument is returned when a document name is added twice.
	ErrDuplicateDocument = errors.New("document already indexed")
)

// DocumentSummary describes one indexed buffer.
type DocumentSummary struct {
	Name               string
	BufferLength       int
	WindowCount        int
	DistinctSignatures int
	HazardMax          float64
}

// Index is an inverted signature index over many analyzed buffers.
// Thread-safe for concurrent reads and writes.
type Index struct {
	mu       sync.RWMutex
	cfg      model.Config
	docs     []DocumentSummary
	byName   map[string]uint32
	postings map[string]*roaring.Bitmap
}

// New creates an empty Index for manifolds produced with cfg.
func New(cfg model.Config) *Index {
	return &Index{
		cfg:      cfg,
		byName:   make(map[string]uint32),
		postings: make(map[string]*roaring.Bitmap),
	}
}

// Config returns the analysis parameters the index was built for.
func (idx *Index) Config() model.Config { return idx.cfg }

// Add indexes one analyzed buffer under the given name and returns its
// document id. The manifold must have been produced with the index config.
func (idx *Index) Add(name string, m *model.Manifold) (uint32, error) {
	if m.Config != idx.cfg {
		return 0, fmt.Errorf("%w: got %+v, want %+v", ErrConfigMismatch, m.Config, idx.cfg)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, ok := idx.byName[name]; ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateDocument, name)
	}

	id := uint32(len(idx.docs))
	idx.docs = append(idx.docs, DocumentSummary{
		Name:               name,
		BufferLength:       m.BufferLength,
		WindowCount:        m.Aggregate.Totals.WindowCount,
		DistinctSignatures: m.Aggregate.Totals.DistinctSignatures,
		HazardMax:          m.Aggregate.Hazard.Max,
	})
	idx.byName[name] = id

	for _, freq := range m.Aggregate.Frequencies {
		bm, ok := idx.postings[freq.Key]
		if !ok {
			bm = roaring.New()
			idx.postings[freq.Key] = bm
		}
		bm.Add(id)
	}
	return id, nil
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.docs)
}

// Documents returns summaries of all indexed documents in insertion order.
func (idx *Index) Documents() []DocumentSummary {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]DocumentSummary, len(idx.docs))
	copy(out, idx.docs)
	return out
}

// Lookup returns the names of all documents containing the given signature
// key, in insertion order.
func (idx *Index) Lookup(key string) []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	bm, ok := idx.postings[key]
	if !ok {
		return nil
	}

	names := make([]string, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		names = append(names, idx.docs[it.Next()].Name)
	}
	return names
}

// DocumentMatch scores one indexed document against a verified snippet.
type DocumentMatch struct {
	Name string
	// MatchedKeys is the number of the snippet's distinct signatures that
	// also occur in this document.
	MatchedKeys int
	// KeyRatio is MatchedKeys over the snippet's distinct signature count.
	KeyRatio float64
	// MatchedWindows is the number of snippet windows whose signature
	// occurs in this document.
	MatchedWindows int
	// WindowRatio is MatchedWindows over the snippet's window count.
	WindowRatio float64
}

// VerificationResult reports how much of a snippet's structure is already
// known to the index.
type VerificationResult struct {
	WindowCount    int
	DistinctKeys   int
	MatchedKeys    int
	KeyRatio       float64
	MatchedWindows int
	WindowRatio    float64
	// Matches lists per-document scores, best WindowRatio first. Documents
	// sharing no signature with the snippet are omitted.
	Matches []DocumentMatch
}

// Verify checks a snippet manifold against the index. The snippet must have
// been analyzed with the index config.
func (idx *Index) Verify(snippet *model.Manifold) (VerificationResult, error) {
	if snippet.Config != idx.cfg {
		return VerificationResult{}, fmt.Errorf("%w: got %+v, want %+v", ErrConfigMismatch, snippet.Config, idx.cfg)
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	res := VerificationResult{
		WindowCount:  snippet.Aggregate.Totals.WindowCount,
		DistinctKeys: len(snippet.Aggregate.Frequencies),
	}

	type score struct {
		keys    int
		windows int
	}
	perDoc := make(map[uint32]*score)

	for _, freq := range snippet.Aggregate.Frequencies {
		bm, ok := idx.postings[freq.Key]
		if !ok || bm.IsEmpty() {
			continue
		}
		res.MatchedKeys++
		res.MatchedWindows += freq.Count

		it := bm.Iterator()
		for it.HasNext() {
			id := it.Next()
			s, ok := perDoc[id]
			if !ok {
				s = &score{}
				perDoc[id] = s
			}
			s.keys++
			s.windows += freq.Count
		}
	}

	if res.DistinctKeys > 0 {
		res.KeyRatio = float64(res.MatchedKeys) / float64(res.DistinctKeys)
	}
	if res.WindowCount > 0 {
		res.WindowRatio = float64(res.MatchedWindows) / float64(res.WindowCount)
	}

	res.Matches = make([]DocumentMatch, 0, len(perDoc))
	for id, s := range perDoc {
		m := DocumentMatch{
			Name:           idx.docs[id].Name,
			MatchedKeys:    s.keys,
			MatchedWindows: s.windows,
		}
		if res.DistinctKeys > 0 {
			m.KeyRatio = float64(s.keys) / float64(res.DistinctKeys)
		}
		if res.WindowCount > 0 {
			m.WindowRatio = float64(s.windows) / float64(res.WindowCount)
		}
		res.Matches = append(res.Matches, m)
	}
	sort.Slice(res.Matches, func(i, j int) bool {
		if res.Matches[i].WindowRatio != res.Matches[j].WindowRatio {
			return res.Matches[i].WindowRatio > res.Matches[j].WindowRatio
		}
		return res.Matches[i].Name < res.Matches[j].Name
	})

	return res, nil
}
