package analyze

import (
	"go.uber.org/zap"

	"github.com/disktools/smartreport/model"
)

// Aggregate classifies every loaded record and builds the report views.
// Sequence numbers count positions in the loaded sequence, so a record
// with an unrecognized shape leaves a gap rather than renumbering the
// devices after it. Order within every view is load order; nothing is
// deduplicated or sorted by value.
func Aggregate(records []model.Record, log *zap.SugaredLogger) model.Report {
	var rep model.Report
	for i, rec := range records {
		fam := Classify(rec)
		if fam == model.FamilyUnknown {
			log.Debugf("snapshot %d: unrecognized device shape, dropped", i+1)
			continue
		}
		row := Extract(rec, fam, i+1)
		rep.All = append(rep.All, row)
		switch fam {
		case model.FamilyATA:
			rep.ATA = append(rep.ATA, row)
		case model.FamilyNVMe:
			rep.NVMe = append(rep.NVMe, row)
		}
	}
	return rep
}
