package triage

import "math"

// DefaultSigma is the classification threshold used when none is configured.
const DefaultSigma = 1.0

// Sigma bounds for the interactive threshold control.
const (
	MinSigma = 0.5
	MaxSigma = 2.0
)

// Options are the live configuration inputs to an evaluation.
type Options struct {
	Sigma     float64
	CTRColumn CTRPreference
}

// normalized clamps sigma into its allowed range and defaults the CTR column
// preference. A zero or non-finite sigma falls back to DefaultSigma.
func (o Options) normalized() Options {
	if !isFinite(o.Sigma) || o.Sigma == 0 {
		o.Sigma = DefaultSigma
	}
	o.Sigma = math.Min(math.Max(o.Sigma, MinSigma), MaxSigma)
	if !o.CTRColumn.Valid() {
		o.CTRColumn = CTRLink
	}
	return o
}

// Batch is the filtered record set for one uploaded dataset. Filtering does
// not depend on sigma or the CTR column preference, so a Batch can be
// evaluated repeatedly with different options.
type Batch struct {
	eligible   []EligibleRecord
	resultsKey string
	total      int
}

// Prepare normalizes and filters raw records into an evaluatable batch.
func Prepare(records []RawRecord) *Batch {
	normalized := make([]NormalizedRecord, 0, len(records))
	for _, raw := range records {
		normalized = append(normalized, NormalizeRecord(raw))
	}
	eligible, resultsKey := FilterEligible(normalized, resultsKeys)
	return &Batch{eligible: eligible, resultsKey: resultsKey, total: len(records)}
}

// EligibleCount returns the number of records that passed the filter.
func (b *Batch) EligibleCount() int { return len(b.eligible) }

// TotalRecords returns the number of raw records the batch was prepared from.
func (b *Batch) TotalRecords() int { return b.total }

// ResultsKey returns the canonical key resolved for the results column.
func (b *Batch) ResultsKey() string { return b.resultsKey }

// ClassifiedRow is one output row: identifying fields, rounded metric
// values, per-metric classifications, and the recommended action.
type ClassifiedRow struct {
	CampaignName string `json:"campaign_name"`
	Results      Amount `json:"results"`
	Spend        Amount `json:"spend"`
	Revenue      Amount `json:"revenue"`
	Profit       Amount `json:"profit"`
	ProfitClass  Label  `json:"profit_class"`
	ROAS         Amount `json:"roas"`
	ROASClass    Label  `json:"roas_class"`
	CPM          Amount `json:"cpm"`
	CPMClass     Label  `json:"cpm_class"`
	CPC          Amount `json:"cpc"`
	CPCClass     Label  `json:"cpc_class"`
	CTR          Amount `json:"ctr"`
	CTRClass     Label  `json:"ctr_class"`
	Action       Action `json:"action"`
}

// Report is the full output of one evaluation.
type Report struct {
	Rows          []ClassifiedRow        `json:"rows"`
	Stats         map[string]MetricStats `json:"stats"`
	TotalRecords  int                    `json:"total_records"`
	EligibleCount int                    `json:"eligible_count"`
	AnalyzedCount int                    `json:"analyzed_count"`
	ExcludedCount int                    `json:"excluded_count"`
	ResultsKey    string                 `json:"results_key"`
	Sigma         float64                `json:"sigma"`
	CTRColumn     CTRPreference          `json:"ctr_column"`
}

// Metric names used as keys in Report.Stats.
const (
	MetricCPM    = "cpm"
	MetricCPC    = "cpc"
	MetricCTR    = "ctr"
	MetricROAS   = "roas"
	MetricProfit = "profit"
)

// Evaluate runs derivation, population statistics, classification and
// recommendation over the batch. It is a pure function of the batch and the
// options: nothing is cached and repeated calls with the same inputs produce
// the same report.
func (b *Batch) Evaluate(opts Options) *Report {
	opts = opts.normalized()

	// Derive first, then exclude: derivability depends on which fallback
	// column succeeded, so the validity check cannot run on raw fields.
	var analyzed []DerivedRecord
	excluded := 0
	for _, rec := range b.eligible {
		d := Derive(rec, opts.CTRColumn)
		if !d.Analyzable() {
			excluded++
			continue
		}
		analyzed = append(analyzed, d)
	}

	collect := func(pick func(DerivedRecord) float64) []float64 {
		values := make([]float64, len(analyzed))
		for i, d := range analyzed {
			values[i] = pick(d)
		}
		return values
	}

	stats := map[string]MetricStats{
		MetricCPM:    ComputeStats(collect(func(d DerivedRecord) float64 { return d.CPM })),
		MetricCPC:    ComputeStats(collect(func(d DerivedRecord) float64 { return d.CPC })),
		MetricCTR:    ComputeStats(collect(func(d DerivedRecord) float64 { return d.CTR })),
		MetricROAS:   ComputeStats(collect(func(d DerivedRecord) float64 { return d.ROAS })),
		MetricProfit: ComputeStats(collect(func(d DerivedRecord) float64 { return d.Profit })),
	}

	rows := make([]ClassifiedRow, 0, len(analyzed))
	for _, d := range analyzed {
		cpmClass := Classify(d.CPM, stats[MetricCPM], opts.Sigma, LowerIsBetter)
		cpcClass := Classify(d.CPC, stats[MetricCPC], opts.Sigma, LowerIsBetter)
		ctrClass := Classify(d.CTR, stats[MetricCTR], opts.Sigma, HigherIsBetter)
		roasClass := Classify(d.ROAS, stats[MetricROAS], opts.Sigma, HigherIsBetter)
		profitClass := Classify(d.Profit, stats[MetricProfit], opts.Sigma, HigherIsBetter)

		rows = append(rows, ClassifiedRow{
			CampaignName: d.Name,
			Results:      Amount(d.Results),
			Spend:        Amount(round2(d.Spend)),
			Revenue:      Amount(round2(d.Revenue)),
			Profit:       Amount(round2(d.Profit)),
			ProfitClass:  profitClass,
			ROAS:         Amount(round2(d.ROAS)),
			ROASClass:    roasClass,
			CPM:          Amount(round2(d.CPM)),
			CPMClass:     cpmClass,
			CPC:          Amount(round2(d.CPC)),
			CPCClass:     cpcClass,
			CTR:          Amount(round2(d.CTR)),
			CTRClass:     ctrClass,
			Action:       Recommend(cpmClass, cpcClass, ctrClass, d.ROAS, d.Profit),
		})
	}

	return &Report{
		Rows:          rows,
		Stats:         stats,
		TotalRecords:  b.total,
		EligibleCount: len(b.eligible),
		AnalyzedCount: len(analyzed),
		ExcludedCount: excluded,
		ResultsKey:    b.resultsKey,
		Sigma:         opts.Sigma,
		CTRColumn:     opts.CTRColumn,
	}
}

// Analyze runs the full pipeline in one call: normalize, filter, evaluate.
func Analyze(records []RawRecord, opts Options) *Report {
	return Prepare(records).Evaluate(opts)
}

// round2 rounds to two decimals for display; NaN passes through.
func round2(v float64) float64 {
	if !isFinite(v) {
		return v
	}
	return math.Round(v*100) / 100
}
