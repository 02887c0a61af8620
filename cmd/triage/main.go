// Command triage classifies one exported campaign CSV against its own batch
// statistics and writes the classified rows as CSV.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ignite/campaign-triage/internal/config"
	"github.com/ignite/campaign-triage/internal/export"
	"github.com/ignite/campaign-triage/internal/ingest"
	"github.com/ignite/campaign-triage/internal/pkg/logger"
	"github.com/ignite/campaign-triage/internal/triage"
)

func main() {
	var (
		inputPath  = flag.String("input", "", "campaign CSV export to analyze (required)")
		outputPath = flag.String("output", "", "write classified CSV here (default stdout)")
		sigma      = flag.Float64("sigma", 0, "classification threshold in [0.5, 2.0] (default from config)")
		ctrColumn  = flag.String("ctr-column", "", "preferred CTR column: ctr_link or ctr_all (default from config)")
		configPath = flag.String("config", "config/config.yaml", "configuration file")
	)
	flag.Parse()

	if *inputPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadFromEnv(*configPath)
	if err != nil {
		fatal("load config", err)
	}

	opts := triage.Options{
		Sigma:     cfg.Analysis.DefaultSigma,
		CTRColumn: triage.CTRPreference(cfg.Analysis.CTRColumn),
	}
	if *sigma != 0 {
		if *sigma < triage.MinSigma || *sigma > triage.MaxSigma {
			fatal("parse flags", fmt.Errorf("sigma %g outside [%g, %g]", *sigma, triage.MinSigma, triage.MaxSigma))
		}
		opts.Sigma = *sigma
	}
	if *ctrColumn != "" {
		pref := triage.CTRPreference(*ctrColumn)
		if !pref.Valid() {
			fatal("parse flags", fmt.Errorf("ctr-column must be %q or %q", triage.CTRLink, triage.CTRAll))
		}
		opts.CTRColumn = pref
	}

	in, err := os.Open(*inputPath)
	if err != nil {
		fatal("open input", err)
	}
	defer in.Close()

	ds, err := ingest.ReadDataset(in)
	if err != nil {
		fatal("parse CSV", err)
	}

	report := triage.Analyze(ds.Records, opts)

	logger.Info("analysis complete",
		"input", *inputPath,
		"total", report.TotalRecords,
		"eligible", report.EligibleCount,
		"analyzed", report.AnalyzedCount,
		"excluded", report.ExcludedCount,
		"skipped_rows", ds.SkippedRows,
		"results_key", report.ResultsKey,
		"sigma", report.Sigma,
	)

	var out io.Writer = os.Stdout
	if *outputPath != "" {
		f, err := os.Create(*outputPath)
		if err != nil {
			fatal("create output", err)
		}
		defer f.Close()
		out = f
	}

	if err := export.WriteCSV(out, report.Rows); err != nil {
		fatal("write output", err)
	}
}

func fatal(stage string, err error) {
	logger.Error(stage, "error", err)
	os.Exit(1)
}
