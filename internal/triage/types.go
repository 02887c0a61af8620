package triage

import (
	"encoding/json"
	"math"
)

// Label classifies a metric value against the batch population.
type Label string

const (
	LabelVeryHigh      Label = "very_high"
	LabelVeryLow       Label = "very_low"
	LabelNormal        Label = "normal"
	LabelHigh          Label = "high"
	LabelLow           Label = "low"
	LabelNotApplicable Label = "not_applicable"
)

// Display returns the human-readable form of a label for rendering and
// export. Control flow must branch on the Label constants, never on this
// text.
func (l Label) Display() string {
	switch l {
	case LabelVeryHigh:
		return "Very high"
	case LabelVeryLow:
		return "Very low"
	case LabelNormal:
		return "Normal"
	case LabelHigh:
		return "High"
	case LabelLow:
		return "Low"
	default:
		return "N/A"
	}
}

// Action is the recommended next step for a campaign.
type Action string

const (
	ActionScaleBudget   Action = "scale_budget"
	ActionKeepRunning   Action = "keep_running"
	ActionReviewOrPause Action = "review_or_pause"
)

// Display returns the human-readable form of an action.
func (a Action) Display() string {
	switch a {
	case ActionScaleBudget:
		return "Scale budget"
	case ActionReviewOrPause:
		return "Review or pause"
	default:
		return "Keep running"
	}
}

// CTRPreference selects which exported CTR column variant is preferred.
type CTRPreference string

const (
	CTRLink CTRPreference = "ctr_link"
	CTRAll  CTRPreference = "ctr_all"
)

// Valid reports whether the preference is one of the recognized variants.
func (p CTRPreference) Valid() bool {
	return p == CTRLink || p == CTRAll
}

// Amount is a metric value that may be unavailable. Unavailable values are
// carried as NaN internally and marshal to JSON null, never to NaN on the
// wire.
type Amount float64

// MarshalJSON renders unavailable amounts as null.
func (a Amount) MarshalJSON() ([]byte, error) {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// Available reports whether the amount holds a finite value.
func (a Amount) Available() bool {
	return isFinite(float64(a))
}
