package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"github.com/disktools/smartreport/analyze"
	"github.com/disktools/smartreport/model"
)

const htmlFooter = "Report generated by smartreport"

type htmlCell struct {
	Text  string
	Class string // "", "warning" or "danger"
}

type htmlSection struct {
	Title   string
	Empty   string // shown instead of a table when there are no rows
	Headers []string
	Rows    [][]htmlCell
}

type htmlReport struct {
	Generated string
	Sections  []htmlSection
	Footer    string
}

var htmlTmpl = template.Must(template.New("report").Parse(htmlTemplate))

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Disk Status Report</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; margin: 20px; color: #212529; }
h1, h2 { color: #343a40; }
table { border-collapse: collapse; width: 100%; margin-bottom: 24px; }
th, td { border: 1px solid #dee2e6; padding: 8px; text-align: left; }
th { background-color: #343a40; color: #ffffff; }
tr:nth-child(even) { background-color: #f8f9fa; }
.warning { background-color: #fff3cd; }
.danger { background-color: #f8d7da; }
.footer { margin-top: 24px; font-size: 12px; color: #6c757d; }
</style>
</head>
<body>
<h1>Disk Status Report</h1>
<p>Generated on {{.Generated}}</p>
{{range .Sections}}<h2>{{.Title}}</h2>
{{if .Rows}}<table>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td{{with .Class}} class="{{.}}"{{end}}>{{.Text}}</td>{{end}}</tr>
{{end}}</table>
{{else}}<p>{{.Empty}}</p>
{{end}}{{end}}<div class="footer">{{.Footer}}</div>
</body>
</html>
`

// RenderHTML writes the report as a self-contained document with inline
// CSS only. now anchors the generation timestamp (local time,
// day/month/year).
func RenderHTML(w io.Writer, rep model.Report, th analyze.Thresholds, now time.Time) error {
	data := htmlReport{
		Generated: now.Format("02/01/2006 15:04:05"),
		Footer:    htmlFooter,
		Sections: []htmlSection{
			htmlFamilySection(rep.ATA, model.FamilyATA, th),
			htmlFamilySection(rep.NVMe, model.FamilyNVMe, th),
		},
	}
	return htmlTmpl.Execute(w, data)
}

// htmlFamilySection precomputes one family's rows with their severity
// classes, so the template stays free of threshold logic.
func htmlFamilySection(rows []model.DeviceRow, fam model.Family, th analyze.Thresholds) htmlSection {
	sec := htmlSection{
		Title:   fam.String() + " Devices",
		Empty:   noDevices(fam),
		Headers: familyHeaders(fam),
	}
	for _, r := range rows {
		cells := []htmlCell{
			{Text: r.Family.String()},
			{Text: r.PowerOnHours.String(), Class: th.FlagPowerOnHours(r.PowerOnHours).Class()},
			{Text: r.Temperature.String(), Class: th.FlagTemperature(r.Temperature).Class()},
		}
		if fam != model.FamilyNVMe {
			cells = append(cells, htmlCell{
				Text:  r.Reallocated.String(),
				Class: th.FlagReallocated(r.Reallocated).Class(),
			})
		}
		sec.Rows = append(sec.Rows, cells)
	}
	return sec
}

// SaveHTML writes the HTML report to path, overwriting any existing
// file, and prints a confirmation on success.
func SaveHTML(path string, rep model.Report, th analyze.Thresholds) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create HTML report: %w", err)
	}
	if err := RenderHTML(f, rep, th, time.Now()); err != nil {
		f.Close()
		return fmt.Errorf("cannot write HTML report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write HTML report: %w", err)
	}
	fmt.Printf("HTML report saved to %s!\n", path)
	return nil
}
