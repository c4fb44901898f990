package collector

import (
	"encoding/json"
	"os/exec"

	"go.uber.org/zap"

	"github.com/disktools/smartreport/model"
)

// SmartctlSource queries the local machine's devices through smartctl
// instead of reading snapshot files. The decoded documents feed the
// same pipeline as directory snapshots.
type SmartctlSource struct {
	log *zap.SugaredLogger
}

// NewSmartctlSource returns a live source backed by the smartctl binary.
func NewSmartctlSource(log *zap.SugaredLogger) *SmartctlSource {
	return &SmartctlSource{log: log}
}

// Name implements Source.
func (s *SmartctlSource) Name() string { return "smartctl scan" }

// scanDevice is one entry of smartctl --scan --json output.
type scanDevice struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Load enumerates devices with smartctl --scan and queries each one. A
// device whose query or decode fails is logged and skipped. smartctl
// exits non-zero for failing drives while still printing a full
// document, so output that decodes is accepted regardless of status.
func (s *SmartctlSource) Load() []model.Record {
	path, err := exec.LookPath("smartctl")
	if err != nil {
		s.log.Errorf("smartctl not found in PATH: %v", err)
		return nil
	}
	out, err := exec.Command(path, "--scan", "--json").Output()
	if err != nil {
		s.log.Errorf("smartctl scan failed: %v", err)
		return nil
	}
	devices, err := parseScan(out)
	if err != nil {
		s.log.Errorf("cannot parse smartctl scan output: %v", err)
		return nil
	}

	var records []model.Record
	for _, dev := range devices {
		args := []string{"-a", "--json", dev.Name}
		if dev.Type != "" {
			args = []string{"-a", "--json", "-d", dev.Type, dev.Name}
		}
		out, err := exec.Command(path, args...).Output()
		if err != nil && len(out) == 0 {
			s.log.Errorf("smartctl query of %s failed: %v", dev.Name, err)
			continue
		}
		var rec model.Record
		if err := json.Unmarshal(out, &rec); err != nil {
			s.log.Errorf("cannot parse smartctl output for %s: %v", dev.Name, err)
			continue
		}
		records = append(records, rec)
	}
	return records
}

func parseScan(out []byte) ([]scanDevice, error) {
	var scan struct {
		Devices []scanDevice `json:"devices"`
	}
	if err := json.Unmarshal(out, &scan); err != nil {
		return nil, err
	}
	return scan.Devices, nil
}
