package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// NotAvailable is the placeholder rendered for a metric that is absent
// from the source snapshot or could not be read as an integer.
const NotAvailable = "N/A"

// Metric is an optional integer health indicator. The zero value is
// absent and renders as NotAvailable in every output format.
type Metric struct {
	val int
	ok  bool
}

// MetricOf returns a valid Metric holding v.
func MetricOf(v int) Metric { return Metric{val: v, ok: true} }

// MetricFrom converts a decoded JSON value into a Metric. Numbers and
// integer strings convert; anything else (null, bool, object, array,
// non-numeric string) is absent.
func MetricFrom(v any) Metric {
	switch n := v.(type) {
	case float64:
		return MetricOf(int(n))
	case int:
		return MetricOf(n)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return MetricOf(i)
		}
	}
	return Metric{}
}

// Valid reports whether the metric holds an integer.
func (m Metric) Valid() bool { return m.ok }

// Int returns the held value and whether it is valid.
func (m Metric) Int() (int, bool) { return m.val, m.ok }

// String renders the value, or NotAvailable when absent.
func (m Metric) String() string {
	if !m.ok {
		return NotAvailable
	}
	return strconv.Itoa(m.val)
}

// MarshalJSON writes valid metrics as numbers and absent ones as the
// NotAvailable string, so sentinels survive machine-readable output too.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.ok {
		return json.Marshal(NotAvailable)
	}
	return json.Marshal(m.val)
}
