package model

import "encoding/json"

// Family identifies the interface family a snapshot was classified as.
type Family int

const (
	FamilyUnknown Family = iota // unrecognized shape, excluded from reports
	FamilyATA
	FamilyNVMe
)

func (f Family) String() string {
	switch f {
	case FamilyATA:
		return "ATA"
	case FamilyNVMe:
		return "NVMe"
	}
	return "Unknown"
}

// MarshalJSON writes the family name rather than the enum value.
func (f Family) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// DeviceRow is the canonical extracted health record for one device.
// Rows are immutable once built. Seq is the 1-based position of the
// source snapshot in load order, stable only within a single run.
type DeviceRow struct {
	Seq          int    `json:"device"`
	Family       Family `json:"type"`
	PowerOnHours Metric `json:"power_on_hours"`
	Temperature  Metric `json:"temperature"` // Celsius
	Reallocated  Metric `json:"reallocated_sectors"`
}

// Report holds the three views the presenters consume: the per-family
// slices (shown without sequence numbers) and the full collection in
// load order (sequence numbers retained).
type Report struct {
	ATA  []DeviceRow `json:"ata"`
	NVMe []DeviceRow `json:"nvme"`
	All  []DeviceRow `json:"all"`
}

// Empty reports whether no device of any family was extracted.
func (r Report) Empty() bool { return len(r.All) == 0 }
