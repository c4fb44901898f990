// Package collector produces raw device snapshots for the pipeline,
// either from a directory of JSON dumps or from smartctl on the local
// machine.
package collector

import "github.com/disktools/smartreport/model"

// Source yields every snapshot it can read, in source order. Failures
// along the way go to the error log; a Source never aborts the batch
// for a single bad snapshot.
type Source interface {
	// Name identifies the source in messages.
	Name() string
	// Load reads all available snapshots. An empty result means no data.
	Load() []model.Record
}
