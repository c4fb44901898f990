package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/disktools/smartreport/analyze"
	"github.com/disktools/smartreport/model"
)

func testReport() model.Report {
	ata := model.DeviceRow{
		Seq:          1,
		Family:       model.FamilyATA,
		PowerOnHours: model.MetricOf(40000),
		Temperature:  model.MetricOf(55),
		Reallocated:  model.MetricOf(3),
	}
	nvme := model.DeviceRow{
		Seq:          2,
		Family:       model.FamilyNVMe,
		PowerOnHours: model.MetricOf(100),
		Temperature:  model.MetricOf(30),
	}
	return model.Report{
		ATA:  []model.DeviceRow{ata},
		NVMe: []model.DeviceRow{nvme},
		All:  []model.DeviceRow{ata, nvme},
	}
}

// stripANSI removes ESC[...m sequences so assertions see visible text
// regardless of the detected color profile.
func stripANSI(s string) string {
	var out strings.Builder
	for i := 0; i < len(s); {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && !((s[j] >= 'A' && s[j] <= 'Z') || (s[j] >= 'a' && s[j] <= 'z')) {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
			continue
		}
		out.WriteByte(s[i])
		i++
	}
	return out.String()
}

func TestConsole_Headings(t *testing.T) {
	var buf bytes.Buffer
	Console(&buf, testReport(), analyze.DefaultThresholds())
	out := stripANSI(buf.String())
	for _, want := range []string{"### ATA DEVICES ###", "### NVMe DEVICES ###"} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing heading %q", want)
		}
	}
}

func TestConsole_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	Console(&buf, model.Report{}, analyze.DefaultThresholds())
	out := stripANSI(buf.String())
	for _, want := range []string{"No ATA devices found.", "No NVMe devices found."} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q:\n%s", want, out)
		}
	}
}

func TestConsole_TableValues(t *testing.T) {
	var buf bytes.Buffer
	Console(&buf, testReport(), analyze.DefaultThresholds())
	out := stripANSI(buf.String())
	for _, want := range []string{"40000", "55", "3", "100", "30"} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing value %q", want)
		}
	}
	// Only the ATA table carries the reallocated-sectors column.
	if n := strings.Count(out, "Reallocated Sectors"); n != 1 {
		t.Errorf("reallocated column appears %d times, want 1", n)
	}
}

func TestFamilyTable_Headers(t *testing.T) {
	rep := testReport()
	ata := stripANSI(FamilyTable(rep.ATA, model.FamilyATA, analyze.DefaultThresholds()))
	for _, want := range []string{"Type", "Power-on Hours", "Temperature", "Reallocated Sectors"} {
		if !strings.Contains(ata, want) {
			t.Errorf("ATA table missing header %q", want)
		}
	}
	nvme := stripANSI(FamilyTable(rep.NVMe, model.FamilyNVMe, analyze.DefaultThresholds()))
	if strings.Contains(nvme, "Reallocated Sectors") {
		t.Error("NVMe table should omit the reallocated-sectors column")
	}
}

func TestFamilyTable_SentinelShown(t *testing.T) {
	rows := []model.DeviceRow{{Seq: 1, Family: model.FamilyATA}}
	out := stripANSI(FamilyTable(rows, model.FamilyATA, analyze.DefaultThresholds()))
	if !strings.Contains(out, model.NotAvailable) {
		t.Errorf("table should render absent metrics as %s:\n%s", model.NotAvailable, out)
	}
}

func TestAllTable(t *testing.T) {
	out := stripANSI(AllTable(testReport().All, analyze.DefaultThresholds()))
	for _, want := range []string{"Device", "Type", "ATA", "NVMe", "40000", "100", model.NotAvailable} {
		if !strings.Contains(out, want) {
			t.Errorf("combined table missing %q:\n%s", want, out)
		}
	}
}
