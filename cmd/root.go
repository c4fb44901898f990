// Package cmd wires the command line to the report pipeline.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/disktools/smartreport/config"
)

// Version is set at build time via ldflags.
var Version = "1.0.0"

var flags struct {
	directory  string
	output     string
	html       bool
	logFile    string
	configPath string
	scan       bool
	jsonOut    bool
	tui        bool
	verbose    bool
}

var rootCmd = &cobra.Command{
	Use:   "smartreport",
	Short: "SMART disk health report generator",
	Long: `smartreport reads smartctl JSON snapshots from a directory (or queries
live devices with --scan), classifies each device as ATA or NVMe, and
renders the extracted health fields as console tables and a CSV file,
with an optional styled HTML report.

Values above the alert thresholds are highlighted: power-on hours over
30000 and reallocated sectors over 0 as warnings, temperature over 50
degrees Celsius as danger. Thresholds are tunable via the config file.`,
	Example: `  smartreport
  smartreport -d /var/lib/smart/snapshots -o /tmp/report.csv
  smartreport --html
  smartreport --scan --json | jq '.all'
  smartreport --tui`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(resolveOptions(cmd))
	},
}

func init() {
	def := config.Default()
	rootCmd.Flags().StringVarP(&flags.directory, "directory", "d", def.Directory, "directory of smartctl JSON snapshots")
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", def.Output, "CSV report path")
	rootCmd.Flags().BoolVar(&flags.html, "html", false, "also write the HTML report")
	rootCmd.Flags().StringVar(&flags.logFile, "log", def.LogFile, "error log path")
	rootCmd.Flags().StringVar(&flags.configPath, "config", "", "config file (default ~/.config/smartreport/config.yaml)")
	rootCmd.Flags().BoolVar(&flags.scan, "scan", false, "query live devices via smartctl instead of reading snapshots")
	rootCmd.Flags().BoolVar(&flags.jsonOut, "json", false, "print the report as JSON to stdout")
	rootCmd.Flags().BoolVar(&flags.tui, "tui", false, "browse the report interactively")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
}

// resolveOptions layers the run configuration: stock defaults, then the
// config file, then any flag the user set explicitly.
func resolveOptions(cmd *cobra.Command) options {
	cfg := config.Load(flags.configPath)
	opts := options{
		directory:  cfg.Directory,
		output:     cfg.Output,
		htmlFile:   cfg.HTMLFile,
		logFile:    cfg.LogFile,
		thresholds: cfg.Thresholds,
		writeHTML:  flags.html,
		scan:       flags.scan,
		jsonOut:    flags.jsonOut,
		tui:        flags.tui,
		verbose:    flags.verbose,
	}
	if cmd.Flags().Changed("directory") {
		opts.directory = flags.directory
	}
	if cmd.Flags().Changed("output") {
		opts.output = flags.output
	}
	if cmd.Flags().Changed("log") {
		opts.logFile = flags.logFile
	}
	return opts
}

// Run parses flags and starts the application.
func Run() error {
	return rootCmd.Execute()
}
