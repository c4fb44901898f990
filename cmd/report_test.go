package cmd

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/disktools/smartreport/analyze"
)

const ataSnapshot = `{
  "device": {"name": "/dev/sda", "type": "ata"},
  "power_on_time": {"hours": 40000},
  "temperature": {"current": 55},
  "ata_smart_attributes": {
    "table": [
      {"id": 9, "name": "Power_On_Hours", "value": 98},
      {"id": 5, "name": "Reallocated_Sector_Ct", "value": 3}
    ]
  }
}`

const nvmeSnapshot = `{
  "device": {"name": "/dev/nvme0", "type": "nvme"},
  "nvme_smart_health_information_log": {
    "critical_warning": 0,
    "temperature": 30,
    "power_on_hours": 100
  }
}`

func writeSnap(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// loadOrder returns the snapshot names in the order the loader will see
// them. Directory enumeration order is platform-dependent.
func loadOrder(t *testing.T, dir string) []string {
	t.Helper()
	d, err := os.Open(dir)
	if err != nil {
		t.Fatalf("open %s: %v", dir, err)
	}
	defer d.Close()
	names, err := d.Readdirnames(-1)
	if err != nil {
		t.Fatalf("readdir %s: %v", dir, err)
	}
	return names
}

func testOptions(t *testing.T, dir string) options {
	t.Helper()
	out := t.TempDir()
	return options{
		directory:  dir,
		output:     filepath.Join(out, "report.csv"),
		htmlFile:   filepath.Join(out, "report.html"),
		logFile:    filepath.Join(out, "error_log.txt"),
		thresholds: analyze.DefaultThresholds(),
	}
}

func TestRunReport_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeSnap(t, dir, "sda.json", ataSnapshot)
	writeSnap(t, dir, "nvme0.json", nvmeSnapshot)

	opts := testOptions(t, dir)
	opts.writeHTML = true
	if err := runReport(opts); err != nil {
		t.Fatalf("runReport: %v", err)
	}

	// CSV rows follow enumeration order with 1-based sequence numbers.
	f, err := os.Open(opts.output)
	if err != nil {
		t.Fatalf("open CSV: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("CSV has %d rows, want header + 2", len(rows))
	}
	want := map[string]string{
		"sda.json":   "ATA,40000,55,3",
		"nvme0.json": "NVMe,100,30,N/A",
	}
	for i, name := range loadOrder(t, dir) {
		row := rows[i+1]
		if row[0] != strconv.Itoa(i+1) {
			t.Errorf("row %d seq = %s, want %d", i, row[0], i+1)
		}
		if got := strings.Join(row[1:], ","); got != want[name] {
			t.Errorf("row for %s = %s, want %s", name, got, want[name])
		}
	}

	// Only the three ATA values cross their thresholds.
	html, err := os.ReadFile(opts.htmlFile)
	if err != nil {
		t.Fatalf("read HTML: %v", err)
	}
	doc := string(html)
	for _, wantCell := range []string{
		`<td class="warning">40000</td>`,
		`<td class="danger">55</td>`,
		`<td class="warning">3</td>`,
	} {
		if !strings.Contains(doc, wantCell) {
			t.Errorf("HTML missing %q", wantCell)
		}
	}
	if n := strings.Count(doc, `class="warning"`); n != 2 {
		t.Errorf("HTML has %d warning cells, want 2", n)
	}
	if n := strings.Count(doc, `class="danger"`); n != 1 {
		t.Errorf("HTML has %d danger cells, want 1", n)
	}

	// Nothing failed, so the error log stays empty.
	logData, err := os.ReadFile(opts.logFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(logData) != 0 {
		t.Errorf("error log not empty:\n%s", logData)
	}
}

func TestRunReport_SkipsHTMLByDefault(t *testing.T) {
	dir := t.TempDir()
	writeSnap(t, dir, "sda.json", ataSnapshot)

	opts := testOptions(t, dir)
	if err := runReport(opts); err != nil {
		t.Fatalf("runReport: %v", err)
	}
	if _, err := os.Stat(opts.htmlFile); !os.IsNotExist(err) {
		t.Error("HTML report should only be written with --html")
	}
}

func TestRunReport_NoData(t *testing.T) {
	opts := testOptions(t, t.TempDir())
	err := runReport(opts)
	var ec ExitCodeError
	if !errors.As(err, &ec) || ec.Code != 1 {
		t.Fatalf("runReport = %v, want exit code 1", err)
	}
	if _, err := os.Stat(opts.output); !os.IsNotExist(err) {
		t.Error("no report should be written without data")
	}
}

func TestRunReport_MissingDirectoryLogged(t *testing.T) {
	opts := testOptions(t, filepath.Join(t.TempDir(), "nope"))
	err := runReport(opts)
	var ec ExitCodeError
	if !errors.As(err, &ec) || ec.Code != 1 {
		t.Fatalf("runReport = %v, want exit code 1", err)
	}
	logData, err := os.ReadFile(opts.logFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(logData), "not found") {
		t.Errorf("log missing directory error:\n%s", logData)
	}
}

func TestRunReport_BadSnapshotLogged(t *testing.T) {
	dir := t.TempDir()
	writeSnap(t, dir, "sda.json", ataSnapshot)
	writeSnap(t, dir, "broken.json", "{not json")

	opts := testOptions(t, dir)
	if err := runReport(opts); err != nil {
		t.Fatalf("runReport: %v", err)
	}
	logData, err := os.ReadFile(opts.logFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(logData), "broken.json") {
		t.Errorf("log should name the unparsable snapshot:\n%s", logData)
	}
}

func TestExitCodeError(t *testing.T) {
	if got := (ExitCodeError{Code: 2}).Error(); got != "exit 2" {
		t.Errorf("Error() = %q, want %q", got, "exit 2")
	}
}
