package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ignite/campaign-triage/internal/config"
	"github.com/ignite/campaign-triage/internal/export"
	"github.com/ignite/campaign-triage/internal/ingest"
	"github.com/ignite/campaign-triage/internal/pkg/httputil"
	"github.com/ignite/campaign-triage/internal/pkg/logger"
	"github.com/ignite/campaign-triage/internal/triage"
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	cfg       *config.Config
	registry  *BatchRegistry
	startTime time.Time
}

// NewHandlers creates the handler set.
func NewHandlers(cfg *config.Config, registry *BatchRegistry) *Handlers {
	return &Handlers{cfg: cfg, registry: registry, startTime: time.Now()}
}

// HealthCheck reports liveness.
//
//	GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]string{
		"status": "healthy",
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
	})
}

// batchResponse summarizes an uploaded batch.
type batchResponse struct {
	BatchID       string `json:"batch_id"`
	Filename      string `json:"filename"`
	TotalRecords  int    `json:"total_records"`
	EligibleCount int    `json:"eligible_count"`
	SkippedRows   int    `json:"skipped_rows"`
	ResultsKey    string `json:"results_key"`
}

// CreateBatch ingests a CSV upload and prepares it for evaluation.
// Content-Type: multipart/form-data with a "file" field.
//
//	POST /api/batches
func (h *Handlers) CreateBatch(w http.ResponseWriter, r *http.Request) {
	stored, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	h.registry.Put(stored)

	logger.Info("batch uploaded",
		"batch_id", stored.ID.String(),
		"filename", stored.Filename,
		"eligible", stored.Batch.EligibleCount(),
		"results_key", stored.Batch.ResultsKey(),
	)

	httputil.Created(w, batchResponse{
		BatchID:       stored.ID.String(),
		Filename:      stored.Filename,
		TotalRecords:  stored.Batch.TotalRecords(),
		EligibleCount: stored.Batch.EligibleCount(),
		SkippedRows:   stored.SkippedRows,
		ResultsKey:    stored.Batch.ResultsKey(),
	})
}

// GetReport evaluates a stored batch with the requested parameters. The full
// pipeline downstream of the filter reruns on every call, so changing sigma
// or the CTR column needs no server-side state beyond the batch itself.
//
//	GET /api/batches/{batchID}/report?sigma=1.2&ctr_column=ctr_all
func (h *Handlers) GetReport(w http.ResponseWriter, r *http.Request) {
	stored := h.lookupBatch(w, r)
	if stored == nil {
		return
	}
	opts, ok := h.parseOptions(w, r)
	if !ok {
		return
	}
	httputil.OK(w, stored.Batch.Evaluate(opts))
}

// ExportReport evaluates a stored batch and returns the rows as a CSV
// attachment.
//
//	GET /api/batches/{batchID}/export?sigma=1.2&ctr_column=ctr_all
func (h *Handlers) ExportReport(w http.ResponseWriter, r *http.Request) {
	stored := h.lookupBatch(w, r)
	if stored == nil {
		return
	}
	opts, ok := h.parseOptions(w, r)
	if !ok {
		return
	}

	report := stored.Batch.Evaluate(opts)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "triage-"+stored.ID.String()+".csv"))
	if err := export.WriteCSV(w, report.Rows); err != nil {
		logger.Error("export write failed", "batch_id", stored.ID.String(), "error", err)
	}
}

// Analyze runs upload and evaluation in one call without retaining the
// batch.
//
//	POST /api/analyze?sigma=1.2&ctr_column=ctr_all
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	opts, ok := h.parseOptions(w, r)
	if !ok {
		return
	}
	stored, ok := h.readUpload(w, r)
	if !ok {
		return
	}
	httputil.OK(w, stored.Batch.Evaluate(opts))
}

// readUpload parses the multipart CSV upload into a prepared batch. Writes
// the error response itself and returns ok=false on failure.
func (h *Handlers) readUpload(w http.ResponseWriter, r *http.Request) (*StoredBatch, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.Upload.MaxFileBytes())

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.BadRequest(w, "missing or unreadable \"file\" upload field")
		return nil, false
	}
	defer file.Close()

	ds, err := ingest.ReadDataset(file)
	if err != nil {
		httputil.BadRequest(w, "unparseable CSV: "+err.Error())
		return nil, false
	}

	batch := triage.Prepare(ds.Records)
	if batch.EligibleCount() == 0 {
		// Not an error: an upload with no [ON]-marked campaigns evaluates to
		// an empty report.
		logger.Warn("no eligible records in upload",
			"filename", header.Filename,
			"total", len(ds.Records),
			"results_key", batch.ResultsKey(),
		)
	}

	return &StoredBatch{
		ID:          ds.ID,
		Filename:    header.Filename,
		Batch:       batch,
		SkippedRows: ds.SkippedRows,
		CreatedAt:   time.Now(),
	}, true
}

// lookupBatch resolves the {batchID} URL parameter. Writes the error
// response itself and returns nil on failure.
func (h *Handlers) lookupBatch(w http.ResponseWriter, r *http.Request) *StoredBatch {
	id, err := uuid.Parse(chi.URLParam(r, "batchID"))
	if err != nil {
		httputil.BadRequest(w, "invalid batch id")
		return nil
	}
	stored := h.registry.Get(id)
	if stored == nil {
		httputil.NotFound(w, "batch not found")
		return nil
	}
	return stored
}

// parseOptions reads sigma and ctr_column from the query, falling back to
// the configured defaults. Malformed or out-of-range values are a client
// error rather than being silently clamped.
func (h *Handlers) parseOptions(w http.ResponseWriter, r *http.Request) (triage.Options, bool) {
	opts := triage.Options{
		Sigma:     h.cfg.Analysis.DefaultSigma,
		CTRColumn: triage.CTRPreference(h.cfg.Analysis.CTRColumn),
	}

	if raw := r.URL.Query().Get("sigma"); raw != "" {
		sigma, err := strconv.ParseFloat(raw, 64)
		if err != nil || sigma < triage.MinSigma || sigma > triage.MaxSigma {
			httputil.BadRequest(w, fmt.Sprintf("sigma must be a number in [%g, %g]", triage.MinSigma, triage.MaxSigma))
			return triage.Options{}, false
		}
		opts.Sigma = sigma
	}

	if raw := r.URL.Query().Get("ctr_column"); raw != "" {
		pref := triage.CTRPreference(raw)
		if !pref.Valid() {
			httputil.BadRequest(w, fmt.Sprintf("ctr_column must be %q or %q", triage.CTRLink, triage.CTRAll))
			return triage.Options{}, false
		}
		opts.CTRColumn = pref
	}

	return opts, true
}
