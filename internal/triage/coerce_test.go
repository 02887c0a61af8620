package triage

import (
	"math"
	"testing"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"42", 42},
		{"3.14", 3.14},
		{"-7.5", -7.5},
		{"$1,234.50", 1234.5},
		{"$ 12.00", 12},
		{"12%", 12},
		{"0.89%", 0.89},
		{"1,234", 1234},
		{"1,234,567", 1234567},
		{"1,5", 1.5},
		{"12,50", 12.5},
		{" 100 ", 100},
		{"1e3", 1000},
	}

	for _, tt := range tests {
		if got := ToNumber(tt.in); got != tt.want {
			t.Errorf("ToNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToNumberSentinel(t *testing.T) {
	for _, in := range []string{"", "   ", "n/a", "abc", "--", "$", "1.2.3"} {
		got := ToNumber(in)
		if !math.IsNaN(got) {
			t.Errorf("ToNumber(%q) = %v, want NaN", in, got)
		}
	}
}

func TestIsFinite(t *testing.T) {
	if isFinite(math.NaN()) || isFinite(math.Inf(1)) || isFinite(math.Inf(-1)) {
		t.Error("NaN and infinities must not be finite")
	}
	if !isFinite(0) || !isFinite(-1.5) {
		t.Error("plain values must be finite")
	}
}
