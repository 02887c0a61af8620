// Package ingest parses uploaded campaign-performance CSV exports into the
// raw record maps consumed by the triage pipeline. Parsing is forgiving:
// exported CSVs routinely carry BOMs, ragged rows, and sloppy quoting, and a
// bad row should cost one row, not the whole upload.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/ignite/campaign-triage/internal/triage"
)

// Dataset is one parsed upload.
type Dataset struct {
	ID          uuid.UUID
	Headers     []string
	Records     []triage.RawRecord
	SkippedRows int
}

// ReadDataset reads a CSV stream, treating the first row as the header.
// Rows shorter than the header leave the trailing fields absent; extra cells
// beyond the header are dropped. Malformed rows are counted and skipped.
// An error is returned only when the header itself cannot be read.
func ReadDataset(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(stripBOM(r))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return &Dataset{ID: uuid.New()}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	ds := &Dataset{ID: uuid.New(), Headers: header}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			ds.SkippedRows++
			continue
		}

		rec := make(triage.RawRecord, len(header))
		for i, h := range header {
			if i >= len(row) {
				break
			}
			rec[h] = row[i]
		}
		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}

// stripBOM wraps a reader to strip a UTF-8 BOM if present.
func stripBOM(r io.Reader) io.Reader {
	buf := make([]byte, 3)
	n, err := r.Read(buf)
	if err != nil || n < 3 {
		return io.MultiReader(strings.NewReader(string(buf[:n])), r)
	}
	if buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF {
		return r
	}
	return io.MultiReader(strings.NewReader(string(buf[:n])), r)
}
