// Package report renders the aggregated device report: console tables,
// the CSV file, the HTML document, and machine-readable JSON.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/disktools/smartreport/analyze"
	"github.com/disktools/smartreport/model"
)

// Console table styling. The palette mirrors the HTML report classes:
// warnings yellow, danger red.
var (
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	headerStyle = cellStyle.Bold(true)
	warnStyle   = cellStyle.Foreground(lipgloss.Color("#F1FA8C"))
	dangerStyle = cellStyle.Foreground(lipgloss.Color("#FF5555"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
)

// familyHeaders returns the column headers for a family table. The NVMe
// table has no reallocated-sectors column.
func familyHeaders(fam model.Family) []string {
	h := []string{"Type", "Power-on Hours", "Temperature", "Reallocated Sectors"}
	if fam == model.FamilyNVMe {
		return h[:3]
	}
	return h
}

func noDevices(fam model.Family) string {
	return fmt.Sprintf("No %s devices found.", fam)
}

// Console prints the two family tables to w, or a "no devices" line for
// a family without rows.
func Console(w io.Writer, rep model.Report, th analyze.Thresholds) {
	fmt.Fprintf(w, "\n### ATA DEVICES ###\n")
	if len(rep.ATA) == 0 {
		fmt.Fprintln(w, noDevices(model.FamilyATA))
	} else {
		fmt.Fprintln(w, FamilyTable(rep.ATA, model.FamilyATA, th))
	}

	fmt.Fprintf(w, "\n### NVMe DEVICES ###\n")
	if len(rep.NVMe) == 0 {
		fmt.Fprintln(w, noDevices(model.FamilyNVMe))
	} else {
		fmt.Fprintln(w, FamilyTable(rep.NVMe, model.FamilyNVMe, th))
	}
}

// FamilyTable renders one family's rows as a bordered table with
// threshold coloring applied per cell.
func FamilyTable(rows []model.DeviceRow, fam model.Family, th analyze.Thresholds) string {
	cells := make([][]string, len(rows))
	flags := make([][]analyze.Severity, len(rows))
	for i, r := range rows {
		cells[i] = []string{r.Family.String(), r.PowerOnHours.String(), r.Temperature.String()}
		flags[i] = []analyze.Severity{
			analyze.SeverityNone,
			th.FlagPowerOnHours(r.PowerOnHours),
			th.FlagTemperature(r.Temperature),
		}
		if fam != model.FamilyNVMe {
			cells[i] = append(cells[i], r.Reallocated.String())
			flags[i] = append(flags[i], th.FlagReallocated(r.Reallocated))
		}
	}
	return renderTable(familyHeaders(fam), cells, flags)
}

// AllTable renders the combined view with the device sequence column,
// mirroring the CSV layout.
func AllTable(rows []model.DeviceRow, th analyze.Thresholds) string {
	headers := []string{"Device", "Type", "Power-on Hours", "Temperature", "Reallocated Sectors"}
	cells := make([][]string, len(rows))
	flags := make([][]analyze.Severity, len(rows))
	for i, r := range rows {
		cells[i] = []string{
			fmt.Sprintf("%d", r.Seq),
			r.Family.String(),
			r.PowerOnHours.String(),
			r.Temperature.String(),
			r.Reallocated.String(),
		}
		flags[i] = []analyze.Severity{
			analyze.SeverityNone,
			analyze.SeverityNone,
			th.FlagPowerOnHours(r.PowerOnHours),
			th.FlagTemperature(r.Temperature),
			th.FlagReallocated(r.Reallocated),
		}
	}
	return renderTable(headers, cells, flags)
}

func renderTable(headers []string, cells [][]string, flags [][]analyze.Severity) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(flags) && col < len(flags[row]) {
				switch flags[row][col] {
				case analyze.SeverityWarning:
					return warnStyle
				case analyze.SeverityDanger:
					return dangerStyle
				}
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(cells...)
	return t.Render()
}
