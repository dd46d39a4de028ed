// Package aggregate folds an ordered window-record sequence into the
// buffer-wide statistics of a manifold.
//
// Aggregation is a single deterministic pass: signature frequencies are
// tracked with roaring-bitmap posting lists over window indices, consecutive
// windows are related through a similarity link, and coverage is computed
// with an overlap-aware fold. An empty record sequence yields zeroed
// aggregates, never an error.
package aggregate

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/sepkit/manifold/distance"
	"github.com/sepkit/manifold/model"
)

// DefaultHazardPercentile is the gate percentile used when the caller does
// not override it.
const DefaultHazardPercentile = 0.8

// Compute aggregates records into the manifold-level statistics. records
// must be ordered by ascending offset; bufLen is the analyzed buffer length
// and hazardPercentile selects the hazard gate threshold (clamped to [0,1]).
func Compute(records []model.WindowRecord, bufLen int, hazardPercentile float64) model.Aggregate {
	if hazardPercentile < 0 {
		hazardPercentile = 0
	} else if hazardPercentile > 1 {
		hazardPercentile = 1
	}

	agg := model.Aggregate{
		Similarity:  make([]model.SimilarityLink, 0, max(len(records)-1, 0)),
		Frequencies: make([]model.SignatureFrequency, 0),
		Hazard:      model.HazardSummary{Percentile: hazardPercentile},
	}
	agg.Totals.BufferLength = bufLen
	agg.Totals.WindowCount = len(records)

	if len(records) == 0 {
		return agg
	}

	// Distinct-signature postings, ordered by first appearance.
	postings := make(map[string]*roaring.Bitmap, len(records))
	var order []string
	compact := make(map[string]string, len(records))

	covered := 0
	prevEnd := 0
	hazards := make([]float64, len(records))
	var hazardSum, hazardMax float64

	for i, rec := range records {
		bm, ok := postings[rec.Key]
		if !ok {
			bm = roaring.New()
			postings[rec.Key] = bm
			order = append(order, rec.Key)
			compact[rec.Key] = rec.Signature
		}
		bm.Add(uint32(rec.Index))

		if end := rec.End(); end > prevEnd {
			start := rec.Offset
			if start < prevEnd {
				start = prevEnd
			}
			covered += end - start
			prevEnd = end
		}

		h := rec.Stats.Hazard
		hazards[i] = h
		hazardSum += h
		if h > hazardMax {
			hazardMax = h
		}

		if i > 0 {
			prev := records[i-1]
			agg.Similarity = append(agg.Similarity, model.SimilarityLink{
				From:     prev.Index,
				To:       rec.Index,
				Equal:    prev.Key == rec.Key,
				Distance: distance.Euclidean(prev.Quantized, rec.Quantized),
			})
		}
	}

	for _, key := range order {
		bm := postings[key]
		agg.Frequencies = append(agg.Frequencies, model.SignatureFrequency{
			Key:       key,
			Signature: compact[key],
			Count:     int(bm.GetCardinality()),
			Windows:   bm.ToArray(),
		})
	}

	agg.Totals.DistinctSignatures = len(order)
	agg.Totals.CoveredBytes = covered
	if bufLen > 0 {
		agg.Totals.Coverage = float64(covered) / float64(bufLen)
	}

	agg.Hazard.Mean = hazardSum / float64(len(records))
	agg.Hazard.Max = hazardMax
	agg.Hazard.Threshold = percentile(hazards, hazardPercentile)

	return agg
}

// percentile returns the value at fraction p of the sorted sample, using
// the same floor-index rule as the original gating logic.
func percentile(sample []float64, p float64) float64 {
	if len(sample) == 0 {
		return 0
	}
	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)
	idx := int(p * float64(len(sorted)-1))
	return sorted[idx]
}
