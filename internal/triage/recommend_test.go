package triage

import (
	"math"
	"testing"
)

func TestRecommend(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name          string
		cpm, cpc, ctr Label
		roas, profit  float64
		want          Action
	}{
		{"healthy scale", LabelNormal, LabelNormal, LabelNormal, 2.0, 5, ActionScaleBudget},
		{"scale at exact roas threshold", LabelNormal, LabelNormal, LabelNormal, 1.8, 0, ActionScaleBudget},
		{"low roas forces review", LabelNormal, LabelNormal, LabelNormal, 0.5, 5, ActionReviewOrPause},
		{"negative profit forces review", LabelNormal, LabelNormal, LabelNormal, 2.0, -1, ActionReviewOrPause},
		{"high cpm blocks scale and forces review", LabelHigh, LabelNormal, LabelNormal, 2.0, 5, ActionReviewOrPause},
		{"high cpc blocks scale and forces review", LabelNormal, LabelHigh, LabelNormal, 2.0, 5, ActionReviewOrPause},
		{"very low ctr blocks scale and forces review", LabelNormal, LabelNormal, LabelVeryLow, 2.0, 5, ActionReviewOrPause},
		{"middling roas keeps running", LabelNormal, LabelNormal, LabelNormal, 1.2, 5, ActionKeepRunning},
		{"favorable low cpm still scales", LabelLow, LabelNormal, LabelNormal, 2.0, 5, ActionScaleBudget},
		{"not-applicable classes keep running", LabelNotApplicable, LabelNotApplicable, LabelNotApplicable, 1.2, 5, ActionKeepRunning},

		// Missing roas/profit fails the scale check but does not by itself
		// force a review.
		{"missing roas keeps running", LabelNormal, LabelNormal, LabelNormal, nan, 5, ActionKeepRunning},
		{"missing profit keeps running", LabelNormal, LabelNormal, LabelNormal, 1.2, nan, ActionKeepRunning},
		{"missing roas with high cpm reviews", LabelHigh, LabelNormal, LabelNormal, nan, 5, ActionReviewOrPause},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommend(tt.cpm, tt.cpc, tt.ctr, tt.roas, tt.profit)
			if got != tt.want {
				t.Errorf("Recommend = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRecommendRuleOrderIndependence(t *testing.T) {
	// Rule 2 fires on low roas even when every other scale condition holds.
	got := Recommend(LabelNormal, LabelNormal, LabelNormal, 0.5, 5)
	if got != ActionReviewOrPause {
		t.Errorf("Recommend = %s, want %s", got, ActionReviewOrPause)
	}
}
