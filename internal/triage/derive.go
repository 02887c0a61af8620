package triage

// DerivedRecord carries the computed per-campaign metrics. Unavailable
// metrics hold the NaN sentinel.
type DerivedRecord struct {
	Name        string
	Spend       float64
	Impressions float64
	ClicksAll   float64
	CPM         float64
	CPC         float64
	CTR         float64
	Revenue     float64
	ROAS        float64
	Profit      float64
	Results     float64
}

// Derive computes the metric set for one eligible record. Each metric falls
// back through exporter column variants before computing from raw fields, and
// degrades to NaN when no source is usable.
func Derive(rec EligibleRecord, ctrColumn CTRPreference) DerivedRecord {
	fields := rec.Fields

	d := DerivedRecord{
		Spend:       firstFinite(fields, spendKeys),
		Impressions: firstFinite(fields, impressionsKeys),
		ClicksAll:   firstFinite(fields, clicksAllKeys),
		Results:     ToNumber(fields[rec.ResultsKey]),
	}
	d.Name, _ = firstPresent(fields, nameKeys)

	// CPM: cost per thousand impressions.
	d.CPM = notANumber()
	if isFinite(d.Spend) && isFinite(d.Impressions) && d.Impressions > 0 {
		d.CPM = d.Spend / d.Impressions * 1000
	}

	// CPC: exported column first, then spend over total clicks.
	d.CPC = firstFinite(fields, cpcKeys)
	if !isFinite(d.CPC) && isFinite(d.Spend) && isFinite(d.ClicksAll) && d.ClicksAll > 0 {
		d.CPC = d.Spend / d.ClicksAll
	}

	// CTR: preferred variant, then the other one.
	preferred, fallback := ctrLinkKeys, ctrAllKeys
	if ctrColumn == CTRAll {
		preferred, fallback = ctrAllKeys, ctrLinkKeys
	}
	d.CTR = firstFinite(fields, preferred)
	if !isFinite(d.CTR) {
		d.CTR = firstFinite(fields, fallback)
	}

	// Revenue: first finite exporter variant. Kept as NaN for display when
	// absent, but treated as zero for profit.
	d.Revenue = firstFinite(fields, revenueKeys)

	// ROAS: exported column first, then revenue over spend.
	d.ROAS = firstFinite(fields, roasKeys)
	if !isFinite(d.ROAS) && isFinite(d.Revenue) && isFinite(d.Spend) && d.Spend > 0 {
		d.ROAS = d.Revenue / d.Spend
	}

	d.Profit = orZero(d.Revenue) - orZero(d.Spend)

	return d
}

// Analyzable reports whether the record contributes to population statistics
// and classification. Records missing any classified metric are dropped
// silently rather than reported.
func (d DerivedRecord) Analyzable() bool {
	return isFinite(d.CPM) && isFinite(d.CPC) && isFinite(d.CTR) &&
		isFinite(d.Results) && d.Results > 0
}

func orZero(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return v
}
