// Package analyze turns raw snapshots into device rows and aggregates
// them into the report the presenters consume.
package analyze

import "github.com/disktools/smartreport/model"

// Snapshot keys marking the device family. Classification checks them in
// order; the first present key wins.
const (
	keyATAAttributes = "ata_smart_attributes"
	keyNVMeHealth    = "nvme_smart_health_information"
	keyNVMeHealthLog = "nvme_smart_health_information_log" // name emitted by current smartctl
)

// reallocAttr is the ATA attribute carrying the reallocated sector count.
const reallocAttr = "Reallocated_Sector_Ct"

// Classify determines the device family from the snapshot shape. A
// record with neither family marker is FamilyUnknown and contributes to
// no output.
func Classify(rec model.Record) model.Family {
	switch {
	case rec.Has(keyATAAttributes):
		return model.FamilyATA
	case rec.Has(keyNVMeHealth), rec.Has(keyNVMeHealthLog):
		return model.FamilyNVMe
	}
	return model.FamilyUnknown
}

// Extract pulls the health indicators for the given family out of a
// snapshot. seq is the record's 1-based position in load order. Missing
// or non-numeric fields become absent metrics; Extract never fails.
func Extract(rec model.Record, fam model.Family, seq int) model.DeviceRow {
	row := model.DeviceRow{Seq: seq, Family: fam}
	switch fam {
	case model.FamilyATA:
		row.PowerOnHours = rec.Section("power_on_time").Metric("hours")
		row.Temperature = rec.Section("temperature").Metric("current")
		row.Reallocated = reallocatedSectors(rec.Section(keyATAAttributes).List("table"))
	case model.FamilyNVMe:
		health := rec.Section(keyNVMeHealth)
		if health == nil {
			health = rec.Section(keyNVMeHealthLog)
		}
		row.PowerOnHours = health.Metric("power_on_hours")
		row.Temperature = health.Metric("temperature")
		// Reallocated stays absent: the metric does not exist for NVMe.
	}
	return row
}

// reallocatedSectors scans an ATA attribute table for the first entry
// named Reallocated_Sector_Ct and reads its normalized value.
func reallocatedSectors(table []any) model.Metric {
	for _, e := range table {
		attr, ok := e.(map[string]any)
		if !ok {
			continue
		}
		if rec := model.Record(attr); rec.Str("name") == reallocAttr {
			return rec.Metric("value")
		}
	}
	return model.Metric{}
}
