package distance

import (
	"math"
	"testing"
)

func TestSquaredL2(t *testing.T) {
	a := []float64{0, 0, 0}
	b := []float64{1, 2, 2}
	if got := SquaredL2(a, b); got != 9 {
		t.Errorf("SquaredL2 = %v, want 9", got)
	}
	if got := Euclidean(a, b); got != 3 {
		t.Errorf("Euclidean = %v, want 3", got)
	}
}

func TestChebyshev(t *testing.T) {
	a := []float64{0.1, 0.9, 0.5}
	b := []float64{0.2, 0.5, 0.5}
	if got := Chebyshev(a, b); math.Abs(got-0.4) > 1e-15 {
		t.Errorf("Chebyshev = %v, want 0.4", got)
	}
}

func TestCosine(t *testing.T) {
	a := []float64{1, 0}
	b := []float64{0, 1}
	if got := Cosine(a, b); got != 1 {
		t.Errorf("Cosine(orthogonal) = %v, want 1", got)
	}
	if got := Cosine(a, a); math.Abs(got) > 1e-15 {
		t.Errorf("Cosine(identical) = %v, want 0", got)
	}
	if got := Cosine(a, []float64{0, 0}); got != 1 {
		t.Errorf("Cosine(zero vector) = %v, want 1", got)
	}
}

func TestEqual(t *testing.T) {
	a := []float64{0.1, 0.2}
	if !Equal(a, []float64{0.1, 0.2}) {
		t.Error("identical vectors reported unequal")
	}
	if Equal(a, []float64{0.1, 0.3}) {
		t.Error("different vectors reported equal")
	}
	if Equal(a, []float64{0.1}) {
		t.Error("different lengths reported equal")
	}
}

func TestProvider(t *testing.T) {
	for _, m := range []Metric{MetricEuclidean, MetricSquaredL2, MetricChebyshev, MetricCosine} {
		fn, err := Provider(m)
		if err != nil {
			t.Fatalf("Provider(%v): %v", m, err)
		}
		if fn == nil {
			t.Fatalf("Provider(%v) returned nil func", m)
		}
	}
	if _, err := Provider(Metric(42)); err == nil {
		t.Error("expected error for unknown metric")
	}
}

func TestMetricString(t *testing.T) {
	if MetricEuclidean.String() != "Euclidean" {
		t.Errorf("unexpected name: %s", MetricEuclidean)
	}
	if Metric(42).String() != "Unknown(42)" {
		t.Errorf("unexpected name for unknown metric: %s", Metric(42))
	}
}
