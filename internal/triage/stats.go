package triage

import (
	"encoding/json"
	"math"
)

// MetricStats holds the population statistics for one metric across a batch.
// Both fields are NaN when no finite values were observed.
type MetricStats struct {
	Mean   float64
	StdDev float64
}

// MarshalJSON renders unavailable statistics as null.
func (s MetricStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Mean   Amount `json:"mean"`
		StdDev Amount `json:"std_dev"`
	}{Amount(s.Mean), Amount(s.StdDev)})
}

// Usable reports whether classification against these stats can produce a
// meaningful result. A zero stddev means every value was identical and no
// deviation can be measured.
func (s MetricStats) Usable() bool {
	return isFinite(s.Mean) && isFinite(s.StdDev) && s.StdDev != 0
}

// ComputeStats computes the mean and population standard deviation of the
// finite values in the input. Non-finite entries are filtered out, not
// treated as zero. The population denominator (count, not count-1) is used.
func ComputeStats(values []float64) MetricStats {
	var finite []float64
	for _, v := range values {
		if isFinite(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return MetricStats{Mean: notANumber(), StdDev: notANumber()}
	}

	sum := 0.0
	for _, v := range finite {
		sum += v
	}
	mean := sum / float64(len(finite))

	sumSquares := 0.0
	for _, v := range finite {
		sumSquares += (v - mean) * (v - mean)
	}
	stdDev := math.Sqrt(sumSquares / float64(len(finite)))

	return MetricStats{Mean: mean, StdDev: stdDev}
}
