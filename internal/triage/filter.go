package triage

import "strings"

// OnMarker is the literal campaign-name prefix that flags a campaign as
// eligible for analysis. Comparison is case-sensitive, no trimming.
const OnMarker = "[ON]"

// EligibleRecord is a normalized record that passed the eligibility filter,
// together with the results key resolved for the whole batch.
type EligibleRecord struct {
	Fields     NormalizedRecord
	ResultsKey string
}

// ResolveResultsKey picks the canonical key holding the "results" count for
// this batch. Exporters disagree on the column name, so candidates are probed
// in priority order: first against the first record, then across every
// record, finally defaulting to the first candidate even when absent (every
// record then coerces to NaN and drops out downstream).
func ResolveResultsKey(records []NormalizedRecord, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	if len(records) > 0 {
		for _, key := range candidates {
			if _, ok := records[0][key]; ok {
				return key
			}
		}
		for _, key := range candidates {
			for _, rec := range records {
				if _, ok := rec[key]; ok {
					return key
				}
			}
		}
	}
	return candidates[0]
}

// FilterEligible retains the records eligible for analysis: campaign name
// starts with the on-marker and the results value is a finite number greater
// than zero. Output order matches input order.
func FilterEligible(records []NormalizedRecord, resultsKeyCandidates []string) ([]EligibleRecord, string) {
	resultsKey := ResolveResultsKey(records, resultsKeyCandidates)

	var eligible []EligibleRecord
	for _, rec := range records {
		name, _ := firstPresent(rec, nameKeys)
		if !strings.HasPrefix(name, OnMarker) {
			continue
		}
		results := ToNumber(rec[resultsKey])
		if !isFinite(results) || results <= 0 {
			continue
		}
		eligible = append(eligible, EligibleRecord{Fields: rec, ResultsKey: resultsKey})
	}
	return eligible, resultsKey
}
