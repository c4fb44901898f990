package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/disktools/smartreport/model"
)

// WriteJSON writes the aggregated report as indented JSON. Valid
// metrics appear as numbers; absent ones as the "N/A" string.
func WriteJSON(w io.Writer, rep model.Report, now time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		GeneratedAt time.Time `json:"generated_at"`
		model.Report
	}{
		GeneratedAt: now,
		Report:      rep,
	})
}
