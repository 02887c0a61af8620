package triage

// Direction states which side of the population mean is favorable for a
// metric.
type Direction int

const (
	// HigherIsBetter applies to CTR, ROAS and profit.
	HigherIsBetter Direction = iota
	// LowerIsBetter applies to cost metrics (CPM, CPC).
	LowerIsBetter
)

// Classify places a value relative to the batch population. Values within
// sigma standard deviations of the mean (boundary included) are normal;
// beyond that the label names the direction, with favorability decided by
// the metric's direction. Degenerate inputs (non-finite value or stats, zero
// stddev) yield LabelNotApplicable, never a failure.
func Classify(value float64, stats MetricStats, sigma float64, direction Direction) Label {
	if !isFinite(value) || !stats.Usable() {
		return LabelNotApplicable
	}

	z := (value - stats.Mean) / stats.StdDev

	if direction == HigherIsBetter {
		switch {
		case z > sigma:
			return LabelVeryHigh
		case z < -sigma:
			return LabelVeryLow
		default:
			return LabelNormal
		}
	}

	switch {
	case z > sigma:
		return LabelHigh
	case z < -sigma:
		return LabelLow
	default:
		return LabelNormal
	}
}
