// Package export serializes classified campaign rows to delimited text for
// download and spreadsheet import. Rendering of labels and actions to
// human-readable text happens here, at the presentation boundary, and
// nowhere else.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ignite/campaign-triage/internal/triage"
)

var header = []string{
	"campaign_name",
	"results",
	"spend",
	"revenue",
	"profit",
	"profit_class",
	"roas",
	"roas_class",
	"cpm",
	"cpm_class",
	"cpc",
	"cpc_class",
	"ctr",
	"ctr_class",
	"action",
}

// WriteCSV writes the classified rows as CSV. Unavailable metrics render as
// empty cells. An empty row set produces just the header, which downstream
// tooling treats as a normal empty result.
func WriteCSV(w io.Writer, rows []triage.ClassifiedRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.CampaignName,
			cell(row.Results),
			cell(row.Spend),
			cell(row.Revenue),
			cell(row.Profit),
			row.ProfitClass.Display(),
			cell(row.ROAS),
			row.ROASClass.Display(),
			cell(row.CPM),
			row.CPMClass.Display(),
			cell(row.CPC),
			row.CPCClass.Display(),
			cell(row.CTR),
			row.CTRClass.Display(),
			row.Action.Display(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func cell(a triage.Amount) string {
	if !a.Available() {
		return ""
	}
	return strconv.FormatFloat(float64(a), 'f', -1, 64)
}
