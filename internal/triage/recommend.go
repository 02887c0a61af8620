package triage

// Scale thresholds for the recommendation rules.
const (
	scaleMinROAS  = 1.8
	reviewMaxROAS = 1.0
)

// Recommend maps a campaign's metric classifications and raw profitability
// into an action. Rules are evaluated in order, first match wins:
//
//  1. Scale: ROAS at or above 1.8, non-negative profit, and no unfavorable
//     class on CPM, CPC or CTR.
//  2. Review: ROAS below 1, negative profit, or any unfavorable class.
//  3. Otherwise keep running.
//
// An unavailable ROAS or profit fails the scale check (treated as 0 and -1
// there) but does not by itself trigger a review: rule 2 compares the raw
// values, and NaN comparisons are false.
func Recommend(cpmClass, cpcClass, ctrClass Label, roas, profit float64) Action {
	scaleROAS := roas
	if !isFinite(scaleROAS) {
		scaleROAS = 0
	}
	scaleProfit := profit
	if !isFinite(scaleProfit) {
		scaleProfit = -1
	}

	if scaleROAS >= scaleMinROAS && scaleProfit >= 0 &&
		cpmClass != LabelHigh && cpcClass != LabelHigh && ctrClass != LabelVeryLow {
		return ActionScaleBudget
	}

	if roas < reviewMaxROAS || profit < 0 ||
		cpmClass == LabelHigh || cpcClass == LabelHigh || ctrClass == LabelVeryLow {
		return ActionReviewOrPause
	}

	return ActionKeepRunning
}
