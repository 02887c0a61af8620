package triage

import (
	"math"
	"testing"
)

func eligibleFrom(fields NormalizedRecord) EligibleRecord {
	return EligibleRecord{Fields: fields, ResultsKey: "results"}
}

func TestDeriveFormulas(t *testing.T) {
	d := Derive(eligibleFrom(NormalizedRecord{
		"campaign_name":              "[ON] Full",
		"amount_spent_usd":           "100",
		"impressions":                "10000",
		"clicks_all":                 "200",
		"results":                    "10",
		"purchases_conversion_value": "250",
	}), CTRLink)

	if d.CPM != 10 {
		t.Errorf("CPM = %v, want 10", d.CPM)
	}
	if d.CPC != 0.5 {
		t.Errorf("CPC = %v, want 0.5 (spend/clicks fallback)", d.CPC)
	}
	if d.Revenue != 250 {
		t.Errorf("Revenue = %v, want 250", d.Revenue)
	}
	if d.ROAS != 2.5 {
		t.Errorf("ROAS = %v, want 2.5 (revenue/spend fallback)", d.ROAS)
	}
	if d.Profit != 150 {
		t.Errorf("Profit = %v, want 150", d.Profit)
	}
}

func TestDeriveColumnPreference(t *testing.T) {
	fields := NormalizedRecord{
		"amount_spent_usd":            "100",
		"clicks_all":                  "200",
		"cpc_cost_per_link_click_usd": "0.75",
		"purchase_roas_return_on_ad_spend": "3.1",
		"purchases_conversion_value":       "50",
		"results":                          "1",
	}
	d := Derive(eligibleFrom(fields), CTRLink)

	// Exported columns beat computed fallbacks.
	if d.CPC != 0.75 {
		t.Errorf("CPC = %v, want exported 0.75", d.CPC)
	}
	if d.ROAS != 3.1 {
		t.Errorf("ROAS = %v, want exported 3.1", d.ROAS)
	}
}

func TestDeriveCTRVariants(t *testing.T) {
	fields := NormalizedRecord{
		"ctr_link_click_through_rate": "1.2",
		"ctr_all":                     "2.4",
		"results":                     "1",
	}

	if d := Derive(eligibleFrom(fields), CTRLink); d.CTR != 1.2 {
		t.Errorf("CTR with link preference = %v, want 1.2", d.CTR)
	}
	if d := Derive(eligibleFrom(fields), CTRAll); d.CTR != 2.4 {
		t.Errorf("CTR with all preference = %v, want 2.4", d.CTR)
	}

	// Preferred variant absent: the other one is used.
	linkOnly := NormalizedRecord{"ctr_link_click_through_rate": "1.2", "results": "1"}
	if d := Derive(eligibleFrom(linkOnly), CTRAll); d.CTR != 1.2 {
		t.Errorf("CTR fallback to link variant = %v, want 1.2", d.CTR)
	}
}

func TestDeriveDegradesToNaN(t *testing.T) {
	d := Derive(eligibleFrom(NormalizedRecord{
		"campaign_name": "[ON] Sparse",
		"results":       "2",
	}), CTRLink)

	for name, v := range map[string]float64{
		"CPM": d.CPM, "CPC": d.CPC, "CTR": d.CTR, "Revenue": d.Revenue, "ROAS": d.ROAS,
	} {
		if !math.IsNaN(v) {
			t.Errorf("%s = %v, want NaN", name, v)
		}
	}
	// Missing revenue and spend both count as zero for profit.
	if d.Profit != 0 {
		t.Errorf("Profit = %v, want 0", d.Profit)
	}
	if d.Analyzable() {
		t.Error("sparse record must not be analyzable")
	}
}

func TestDeriveZeroImpressions(t *testing.T) {
	d := Derive(eligibleFrom(NormalizedRecord{
		"amount_spent_usd": "100",
		"impressions":      "0",
		"results":          "1",
	}), CTRLink)
	if !math.IsNaN(d.CPM) {
		t.Errorf("CPM with zero impressions = %v, want NaN", d.CPM)
	}
}

func TestAnalyzable(t *testing.T) {
	full := DerivedRecord{CPM: 1, CPC: 1, CTR: 1, Results: 1}
	if !full.Analyzable() {
		t.Error("record with all finite metrics must be analyzable")
	}

	tests := []struct {
		name string
		rec  DerivedRecord
	}{
		{"NaN cpm", DerivedRecord{CPM: math.NaN(), CPC: 1, CTR: 1, Results: 1}},
		{"NaN cpc", DerivedRecord{CPM: 1, CPC: math.NaN(), CTR: 1, Results: 1}},
		{"NaN ctr", DerivedRecord{CPM: 1, CPC: 1, CTR: math.NaN(), Results: 1}},
		{"zero results", DerivedRecord{CPM: 1, CPC: 1, CTR: 1, Results: 0}},
		{"negative results", DerivedRecord{CPM: 1, CPC: 1, CTR: 1, Results: -2}},
	}
	for _, tt := range tests {
		if tt.rec.Analyzable() {
			t.Errorf("%s: record must not be analyzable", tt.name)
		}
	}
}
