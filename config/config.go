package config

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/disktools/smartreport/analyze"
)

// Config holds user-tunable defaults: where snapshots come from, where
// reports go, and the alert thresholds the styled presenters apply.
// Command-line flags override anything set here.
type Config struct {
	Directory  string             `yaml:"directory"`
	Output     string             `yaml:"output"`
	HTMLFile   string             `yaml:"html_file"`
	LogFile    string             `yaml:"log_file"`
	Thresholds analyze.Thresholds `yaml:"thresholds"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Directory:  "disk_exs",
		Output:     "report.csv",
		HTMLFile:   "report.html",
		LogFile:    "error_log.txt",
		Thresholds: analyze.DefaultThresholds(),
	}
}

// Path returns ~/.config/smartreport/config.yaml (or XDG_CONFIG_HOME).
// Returns empty string if the home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "" // refuse to fall back to /tmp (security risk)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "smartreport", "config.yaml")
}

// Load reads the config at path, or the default location when path is
// empty. A missing file yields defaults silently; an unreadable or
// unparsable file yields defaults with a warning. Keys absent from the
// file keep their default values.
func Load(path string) Config {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = Path()
	}
	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if explicit || !os.IsNotExist(err) {
			log.Printf("smartreport: warning: cannot read config %s: %v", path, err)
		}
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Printf("smartreport: warning: config parse error: %v", err)
		return Default()
	}
	return cfg
}
