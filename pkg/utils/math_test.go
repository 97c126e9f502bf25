package utils

import (
	"math"
	"testing"
)

func TestSumMeanVariance(t *testing.T) {
	values := []float64{1, 2, 3, 4}

	if got := Sum(values); got != 10 {
		t.Errorf("Sum = %v, want 10", got)
	}
	if got := Mean(values); got != 2.5 {
		t.Errorf("Mean = %v, want 2.5", got)
	}
	if got := Variance(values); got != 1.25 {
		t.Errorf("Variance = %v, want 1.25", got)
	}
	if got := StdDev(values); math.Abs(got-math.Sqrt(1.25)) > 1e-12 {
		t.Errorf("StdDev = %v, want %v", got, math.Sqrt(1.25))
	}
}

func TestEmptySlices(t *testing.T) {
	if got := Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %v, want 0", got)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %v, want 0", got)
	}
	if got := Variance(nil); got != 0 {
		t.Errorf("Variance(nil) = %v, want 0", got)
	}
	if got := Spread(nil); got != 0 {
		t.Errorf("Spread(nil) = %v, want 0", got)
	}
}

func TestClampFloat64(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		if got := ClampFloat64(tt.value, tt.min, tt.max); got != tt.want {
			t.Errorf("ClampFloat64(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestSpread(t *testing.T) {
	if got := Spread([]float64{3, 1, 4, 1, 5}); got != 4 {
		t.Errorf("Spread = %v, want 4", got)
	}
	if got := Spread([]float64{2}); got != 0 {
		t.Errorf("Spread of single value = %v, want 0", got)
	}
}

func TestAllFinite(t *testing.T) {
	if !AllFinite([]float64{1, 2, 3}) {
		t.Error("expected finite values to pass")
	}
	if AllFinite([]float64{1, math.NaN()}) {
		t.Error("expected NaN to fail")
	}
	if AllFinite([]float64{1, math.Inf(-1)}) {
		t.Error("expected -Inf to fail")
	}
	if !AllFinite(nil) {
		t.Error("expected empty slice to pass")
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize([]float64{1, 3})
	if got[0] != 0.25 || got[1] != 0.75 {
		t.Errorf("Normalize = %v, want [0.25 0.75]", got)
	}

	total := 0.0
	for _, v := range Normalize([]float64{0.2, 0.3, 0.7}) {
		total += v
	}
	if math.Abs(total-1) > 1e-12 {
		t.Errorf("normalized values sum to %v, want 1", total)
	}
}
