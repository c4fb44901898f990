package collector

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/disktools/smartreport/model"
)

// DirSource reads every .json snapshot in one directory.
type DirSource struct {
	dir string
	log *zap.SugaredLogger
}

// NewDirSource returns a source over the given snapshot directory.
func NewDirSource(dir string, log *zap.SugaredLogger) *DirSource {
	return &DirSource{dir: dir, log: log}
}

// Name implements Source.
func (s *DirSource) Name() string { return s.dir }

// Load reads the directory in file-system enumeration order (not
// sorted). A missing directory is logged and yields no records; an
// unreadable or unparsable file is logged and skipped, never aborting
// the batch. Entries without the exact .json suffix are ignored.
func (s *DirSource) Load() []model.Record {
	f, err := os.Open(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Errorf("directory %s not found", s.dir)
		} else {
			s.log.Errorf("cannot open directory %s: %v", s.dir, err)
		}
		return nil
	}
	names, err := f.Readdirnames(-1)
	f.Close()
	if err != nil {
		s.log.Errorf("cannot list directory %s: %v", s.dir, err)
		return nil
	}

	var records []model.Record
	for _, name := range names {
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		path := filepath.Join(s.dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			s.log.Errorf("cannot read snapshot %s: %v", path, err)
			continue
		}
		var rec model.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			s.log.Errorf("cannot parse snapshot %s: %v", path, err)
			continue
		}
		records = append(records, rec)
	}
	return records
}
