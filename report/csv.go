package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/disktools/smartreport/model"
)

// csvHeader matches the column order of the rows WriteCSV emits.
var csvHeader = []string{"# Device", "Type", "Power-on Hours", "Temperature", "Reallocated Sectors"}

// WriteCSV writes the full view as CSV: the header, then one row per
// device in load order. Sentinels are written verbatim.
func WriteCSV(w io.Writer, rep model.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rep.All {
		row := []string{
			strconv.Itoa(r.Seq),
			r.Family.String(),
			r.PowerOnHours.String(),
			r.Temperature.String(),
			r.Reallocated.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the CSV report to path, overwriting any existing file,
// and prints a confirmation on success.
func SaveCSV(path string, rep model.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CSV report: %w", err)
	}
	if err := WriteCSV(f, rep); err != nil {
		f.Close()
		return fmt.Errorf("cannot write CSV report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write CSV report: %w", err)
	}
	fmt.Printf("Report saved to %s!\n", path)
	return nil
}
