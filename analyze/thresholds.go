package analyze

import "github.com/disktools/smartreport/model"

// Severity is the styling level a cell earns from threshold evaluation.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWarning
	SeverityDanger
)

// Class returns the HTML class name for the severity, or "" for none.
func (s Severity) Class() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityDanger:
		return "danger"
	}
	return ""
}

// Thresholds holds the alert bounds the styled presenters apply. A valid
// metric strictly above its bound is flagged; absent metrics never are.
type Thresholds struct {
	PowerOnHours int `yaml:"power_on_hours"` // hours; above → warning
	Temperature  int `yaml:"temperature"`    // Celsius; above → danger
	Reallocated  int `yaml:"reallocated"`    // sectors; above → warning
}

// DefaultThresholds returns the stock alert bounds.
func DefaultThresholds() Thresholds {
	return Thresholds{PowerOnHours: 30000, Temperature: 50, Reallocated: 0}
}

// FlagPowerOnHours flags power-on hours above the bound as a warning.
func (t Thresholds) FlagPowerOnHours(m model.Metric) Severity {
	if v, ok := m.Int(); ok && v > t.PowerOnHours {
		return SeverityWarning
	}
	return SeverityNone
}

// FlagTemperature flags temperatures above the bound as danger.
func (t Thresholds) FlagTemperature(m model.Metric) Severity {
	if v, ok := m.Int(); ok && v > t.Temperature {
		return SeverityDanger
	}
	return SeverityNone
}

// FlagReallocated flags reallocated-sector counts above the bound as a
// warning.
func (t Thresholds) FlagReallocated(m model.Metric) Severity {
	if v, ok := m.Int(); ok && v > t.Reallocated {
		return SeverityWarning
	}
	return SeverityNone
}
