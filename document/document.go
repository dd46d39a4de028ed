// Package document renders a manifold into a portable, structured document.
//
// The document tree holds only ordered sequences, key-value groups and
// primitive values (integers, floats, strings), so it crosses process and
// language boundaries without interpretation. Key names and nesting are a
// compatibility contract: downstream consumers parse them by name, and the
// layout only changes together with FormatVersion.
package document

import (
	"github.com/sepkit/manifold/model"
	"github.com/sepkit/manifold/signature"
)

// FormatVersion identifies the document layout.
const FormatVersion = "1"

// Document is the exported form of one manifold.
type Document struct {
	FormatVersion    string    `json:"format_version"`
	SignatureVersion int       `json:"signature_version"`
	Config           Config    `json:"config"`
	Buffer           Buffer    `json:"buffer"`
	Windows          []Window  `json:"windows"`
	Aggregate        Aggregate `json:"aggregate"`
}

// Config echoes the normalized analysis parameters.
type Config struct {
	WindowBits         int `json:"window_bits"`
	StepBits           int `json:"step_bits"`
	SignaturePrecision int `json:"signature_precision"`
}

// Buffer describes the analyzed input.
type Buffer struct {
	LengthBytes int `json:"length_bytes"`
}

// Window is one exported window entry.
type Window struct {
	Index       int       `json:"index"`
	OffsetBytes int       `json:"offset_bytes"`
	LengthBytes int       `json:"length_bytes"`
	Signature   string    `json:"signature"`
	Quantized   []float64 `json:"quantized"`
	Metrics     Metrics   `json:"metrics"`
	LambdaHazard float64  `json:"lambda_hazard"`
}

// Metrics carries the per-window local statistics.
type Metrics struct {
	Entropy   float64 `json:"entropy"`
	Coherence float64 `json:"coherence"`
	Stability float64 `json:"stability"`
	Mean      float64 `json:"mean"`
	Spread    float64 `json:"spread"`
	MinByte   int     `json:"min_byte"`
	MaxByte   int     `json:"max_byte"`
}

// Aggregate carries the buffer-wide statistics.
type Aggregate struct {
	WindowCount        int          `json:"window_count"`
	DistinctSignatures int          `json:"distinct_signatures"`
	CoveredBytes       int          `json:"covered_bytes"`
	Coverage           float64      `json:"coverage"`
	Similarity         []Similarity `json:"similarity"`
	Frequencies        []Frequency  `json:"signature_frequencies"`
	Hazard             Hazard       `json:"hazard"`
}

// Similarity relates two consecutive windows.
type Similarity struct {
	From     int     `json:"from"`
	To       int     `json:"to"`
	Equal    bool    `json:"equal"`
	Distance float64 `json:"distance"`
}

// Frequency is one distinct-signature entry, ordered by first appearance.
type Frequency struct {
	Signature string   `json:"signature"`
	Key       string   `json:"key"`
	Count     int      `json:"count"`
	Windows   []uint32 `json:"windows"`
}

// Hazard summarizes the per-window hazards and the gate threshold.
type Hazard struct {
	Mean       float64 `json:"mean"`
	Max        float64 `json:"max"`
	Percentile float64 `json:"percentile"`
	Threshold  float64 `json:"threshold"`
}

// Build converts a manifold into its document form. Building is pure and
// lossless for all primitive fields; building the same manifold twice
// yields identical documents.
func Build(m *model.Manifold) Document {
	doc := Document{
		FormatVersion:    FormatVersion,
		SignatureVersion: signature.Version,
		Config: Config{
			WindowBits:         m.Config.WindowBits,
			StepBits:           m.Config.StepBits,
			SignaturePrecision: m.Config.SignaturePrecision,
		},
		Buffer:  Buffer{LengthBytes: m.BufferLength},
		Windows: make([]Window, 0, len(m.Windows)),
		Aggregate: Aggregate{
			WindowCount:        m.Aggregate.Totals.WindowCount,
			DistinctSignatures: m.Aggregate.Totals.DistinctSignatures,
			CoveredBytes:       m.Aggregate.Totals.CoveredBytes,
			Coverage:           m.Aggregate.Totals.Coverage,
			Similarity:         make([]Similarity, 0, len(m.Aggregate.Similarity)),
			Frequencies:        make([]Frequency, 0, len(m.Aggregate.Frequencies)),
			Hazard: Hazard{
				Mean:       m.Aggregate.Hazard.Mean,
				Max:        m.Aggregate.Hazard.Max,
				Percentile: m.Aggregate.Hazard.Percentile,
				Threshold:  m.Aggregate.Hazard.Threshold,
			},
		},
	}

	for _, rec := range m.Windows {
		doc.Windows = append(doc.Windows, Window{
			Index:       rec.Index,
			OffsetBytes: rec.Offset,
			LengthBytes: rec.Length,
			Signature:   rec.Signature,
			Quantized:   rec.Quantized,
			Metrics: Metrics{
				Entropy:   rec.Stats.Entropy,
				Coherence: rec.Stats.Coherence,
				Stability: rec.Stats.Stability,
				Mean:      rec.Stats.Mean,
				Spread:    rec.Stats.Spread,
				MinByte:   int(rec.Stats.MinByte),
				MaxByte:   int(rec.Stats.MaxByte),
			},
			LambdaHazard: rec.Stats.Hazard,
		})
	}

	for _, link := range m.Aggregate.Similarity {
		doc.Aggregate.Similarity = append(doc.Aggregate.Similarity, Similarity{
			From:     link.From,
			To:       link.To,
			Equal:    link.Equal,
			Distance: link.Distance,
		})
	}

	for _, freq := range m.Aggregate.Frequencies {
		doc.Aggregate.Frequencies = append(doc.Aggregate.Frequencies, Frequency{
			Signature: freq.Signature,
			Key:       freq.Key,
			Count:     freq.Count,
			Windows:   freq.Windows,
		})
	}

	return doc
}
