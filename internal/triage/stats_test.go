package triage

import (
	"math"
	"testing"
)

func TestComputeStats(t *testing.T) {
	s := ComputeStats([]float64{10, 20, 30})
	if s.Mean != 20 {
		t.Errorf("Mean = %v, want 20", s.Mean)
	}
	// Population stddev: sqrt(200/3), not the sample stddev 10.
	want := math.Sqrt(200.0 / 3.0)
	if math.Abs(s.StdDev-want) > 1e-12 {
		t.Errorf("StdDev = %v, want %v", s.StdDev, want)
	}
	if !s.Usable() {
		t.Error("stats over varying values must be usable")
	}
}

func TestComputeStatsFiltersNonFinite(t *testing.T) {
	s := ComputeStats([]float64{10, math.NaN(), 20, math.Inf(1), 30})
	if s.Mean != 20 {
		t.Errorf("Mean = %v, want 20 (non-finite entries filtered, not zeroed)", s.Mean)
	}
}

func TestComputeStatsDegenerate(t *testing.T) {
	for _, values := range [][]float64{nil, {}, {math.NaN(), math.Inf(-1)}} {
		s := ComputeStats(values)
		if !math.IsNaN(s.Mean) || !math.IsNaN(s.StdDev) {
			t.Errorf("ComputeStats(%v) = %+v, want NaN/NaN", values, s)
		}
		if s.Usable() {
			t.Errorf("ComputeStats(%v) must not be usable", values)
		}
	}

	// Identical values: stddev is exactly zero and classification is off.
	s := ComputeStats([]float64{5, 5, 5})
	if s.StdDev != 0 {
		t.Errorf("StdDev = %v, want 0", s.StdDev)
	}
	if s.Usable() {
		t.Error("zero stddev must not be usable")
	}
}
