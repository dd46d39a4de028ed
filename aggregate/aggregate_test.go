package aggregate

import (
	"math"
	"testing"

	"github.com/sepkit/manifold/model"
)

func record(index, offset, length int, key string, quantized []float64, hazard float64) model.WindowRecord {
	return model.WindowRecord{
		Index:     index,
		Offset:    offset,
		Length:    length,
		Key:       key,
		Signature: "c" + key + "_s_e",
		Quantized: quantized,
		Stats:     model.LocalStats{Hazard: hazard},
	}
}

func TestCompute_Empty(t *testing.T) {
	agg := Compute(nil, 0, DefaultHazardPercentile)

	if agg.Totals.WindowCount != 0 {
		t.Errorf("window count = %d, want 0", agg.Totals.WindowCount)
	}
	if agg.Totals.DistinctSignatures != 0 {
		t.Errorf("distinct signatures = %d, want 0", agg.Totals.DistinctSignatures)
	}
	if agg.Totals.Coverage != 0 {
		t.Errorf("coverage = %f, want 0", agg.Totals.Coverage)
	}
	if len(agg.Similarity) != 0 {
		t.Errorf("similarity links = %d, want 0", len(agg.Similarity))
	}
	if agg.Hazard.Threshold != 0 || agg.Hazard.Mean != 0 {
		t.Errorf("hazard summary not zeroed: %+v", agg.Hazard)
	}
}

func TestCompute_FrequenciesAndSimilarity(t *testing.T) {
	vecA := []float64{0.1, 0.2}
	vecB := []float64{0.4, 0.6}
	records := []model.WindowRecord{
		record(0, 0, 64, "a", vecA, 0.1),
		record(1, 48, 64, "a", vecA, 0.2),
		record(2, 96, 32, "b", vecB, 0.3),
	}

	agg := Compute(records, 128, DefaultHazardPercentile)

	if agg.Totals.DistinctSignatures != 2 {
		t.Fatalf("distinct signatures = %d, want 2", agg.Totals.DistinctSignatures)
	}
	if len(agg.Frequencies) != 2 {
		t.Fatalf("frequency entries = %d, want 2", len(agg.Frequencies))
	}

	// First-appearance order.
	if agg.Frequencies[0].Key != "a" || agg.Frequencies[1].Key != "b" {
		t.Errorf("frequencies out of order: %+v", agg.Frequencies)
	}
	if agg.Frequencies[0].Count != 2 {
		t.Errorf("count for signature a = %d, want 2", agg.Frequencies[0].Count)
	}
	if got := agg.Frequencies[0].Windows; len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("postings for signature a = %v, want [0 1]", got)
	}

	if len(agg.Similarity) != 2 {
		t.Fatalf("similarity links = %d, want 2 (one fewer than windows)", len(agg.Similarity))
	}
	if !agg.Similarity[0].Equal || agg.Similarity[0].Distance != 0 {
		t.Errorf("link 0 should be an exact match: %+v", agg.Similarity[0])
	}
	if agg.Similarity[1].Equal {
		t.Errorf("link 1 should not be equal: %+v", agg.Similarity[1])
	}
	wantDist := math.Sqrt(0.3*0.3 + 0.4*0.4)
	if math.Abs(agg.Similarity[1].Distance-wantDist) > 1e-12 {
		t.Errorf("link 1 distance = %f, want %f", agg.Similarity[1].Distance, wantDist)
	}
}

func TestCompute_CoverageWithOverlap(t *testing.T) {
	records := []model.WindowRecord{
		record(0, 0, 64, "a", nil, 0),
		record(1, 48, 64, "a", nil, 0),
		record(2, 96, 32, "a", nil, 0),
	}

	agg := Compute(records, 128, DefaultHazardPercentile)

	if agg.Totals.CoveredBytes != 128 {
		t.Errorf("covered bytes = %d, want 128 (overlap counted once)", agg.Totals.CoveredBytes)
	}
	if agg.Totals.Coverage != 1 {
		t.Errorf("coverage = %f, want 1", agg.Totals.Coverage)
	}
}

func TestCompute_CoverageWithGaps(t *testing.T) {
	// Stride larger than window leaves uncovered bytes.
	records := []model.WindowRecord{
		record(0, 0, 10, "a", nil, 0),
		record(1, 30, 10, "a", nil, 0),
	}

	agg := Compute(records, 40, DefaultHazardPercentile)

	if agg.Totals.CoveredBytes != 20 {
		t.Errorf("covered bytes = %d, want 20", agg.Totals.CoveredBytes)
	}
	if agg.Totals.Coverage != 0.5 {
		t.Errorf("coverage = %f, want 0.5", agg.Totals.Coverage)
	}
}

func TestCompute_HazardSummary(t *testing.T) {
	records := []model.WindowRecord{
		record(0, 0, 10, "a", nil, 0.4),
		record(1, 10, 10, "b", nil, 0.1),
		record(2, 20, 10, "c", nil, 0.3),
		record(3, 30, 10, "d", nil, 0.2),
	}

	agg := Compute(records, 40, 0.5)

	if math.Abs(agg.Hazard.Mean-0.25) > 1e-12 {
		t.Errorf("hazard mean = %f, want 0.25", agg.Hazard.Mean)
	}
	if agg.Hazard.Max != 0.4 {
		t.Errorf("hazard max = %f, want 0.4", agg.Hazard.Max)
	}
	// Sorted hazards: 0.1 0.2 0.3 0.4; index floor(0.5*3)=1.
	if agg.Hazard.Threshold != 0.2 {
		t.Errorf("hazard threshold = %f, want 0.2", agg.Hazard.Threshold)
	}
	if agg.Hazard.Percentile != 0.5 {
		t.Errorf("percentile echo = %f, want 0.5", agg.Hazard.Percentile)
	}
}

func TestCompute_PercentileClamped(t *testing.T) {
	records := []model.WindowRecord{record(0, 0, 10, "a", nil, 0.7)}
	agg := Compute(records, 10, 5)
	if agg.Hazard.Percentile != 1 {
		t.Errorf("percentile = %f, want clamped 1", agg.Hazard.Percentile)
	}
	if agg.Hazard.Threshold != 0.7 {
		t.Errorf("threshold = %f, want 0.7", agg.Hazard.Threshold)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	records := []model.WindowRecord{
		record(0, 0, 16, "x", []float64{0.5}, 0.2),
		record(1, 8, 16, "y", []float64{0.6}, 0.1),
	}

	a := Compute(records, 24, DefaultHazardPercentile)
	b := Compute(records, 24, DefaultHazardPercentile)

	if a.Totals != b.Totals || a.Hazard != b.Hazard {
		t.Error("aggregation is not deterministic")
	}
	for i := range a.Frequencies {
		if a.Frequencies[i].Key != b.Frequencies[i].Key || a.Frequencies[i].Count != b.Frequencies[i].Count {
			t.Error("frequency order is not deterministic")
		}
	}
}
