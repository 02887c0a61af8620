package triage

import (
	"regexp"
	"strings"
)

// RawRecord is one parsed CSV row keyed by the original header text.
type RawRecord map[string]string

// NormalizedRecord is one row keyed by canonical field keys.
type NormalizedRecord map[string]string

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	underscoreRun = regexp.MustCompile(`__+`)

	bracketStripper = strings.NewReplacer("(", "", ")", "", "[", "", "]", "", "%", "")
	separatorSpacer = strings.NewReplacer("-", " ", "/", " ", ":", " ")
)

// NormalizeHeader canonicalizes an exported column header into a stable
// lookup key: "CTR (link click-through rate)" -> "ctr_link_click_through_rate".
// Idempotent: normalizing an already-canonical key returns it unchanged.
func NormalizeHeader(header string) string {
	s := strings.ToLower(strings.TrimSpace(header))
	s = bracketStripper.Replace(s)
	s = separatorSpacer.Replace(s)
	s = whitespaceRun.ReplaceAllString(s, "_")
	s = underscoreRun.ReplaceAllString(s, "_")
	return s
}

// NormalizeRecord rekeys a raw row by canonical header keys. When two raw
// headers normalize to the same key, the later column wins.
func NormalizeRecord(raw RawRecord) NormalizedRecord {
	rec := make(NormalizedRecord, len(raw))
	for header, val := range raw {
		key := NormalizeHeader(header)
		if key == "" {
			continue
		}
		rec[key] = val
	}
	return rec
}

// Candidate canonical keys per logical field, in priority order. Exporters
// vary column naming between account locales and report templates, so every
// lookup probes the full list rather than assuming a key exists.
var (
	nameKeys        = []string{"campaign_name", "campaign", "name"}
	spendKeys       = []string{"amount_spent_usd", "amount_spent", "spend"}
	impressionsKeys = []string{"impressions"}
	clicksAllKeys   = []string{"clicks_all", "clicks"}
	cpcKeys         = []string{"cpc_cost_per_link_click_usd", "cpc_cost_per_link_click", "cpc_all_usd", "cpc"}
	ctrLinkKeys     = []string{"ctr_link_click_through_rate", "ctr_link"}
	ctrAllKeys      = []string{"ctr_all", "ctr"}
	resultsKeys     = []string{"results", "purchases", "conversions"}
	revenueKeys     = []string{"purchases_conversion_value", "purchase_conversion_value", "website_purchase_conversion_value", "conversion_value", "revenue"}
	roasKeys        = []string{"purchase_roas_return_on_ad_spend", "purchase_roas", "roas"}
)

// firstPresent returns the value of the first candidate key present in the
// record, and whether any was found.
func firstPresent(rec NormalizedRecord, candidates []string) (string, bool) {
	for _, key := range candidates {
		if val, ok := rec[key]; ok {
			return val, true
		}
	}
	return "", false
}

// firstFinite coerces candidate keys in order and returns the first finite
// value, or the NaN sentinel when none parses.
func firstFinite(rec NormalizedRecord, candidates []string) float64 {
	for _, key := range candidates {
		if val, ok := rec[key]; ok {
			if n := ToNumber(val); isFinite(n) {
				return n
			}
		}
	}
	return notANumber()
}
