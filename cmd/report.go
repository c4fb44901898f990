package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/disktools/smartreport/analyze"
	"github.com/disktools/smartreport/collector"
	"github.com/disktools/smartreport/logging"
	"github.com/disktools/smartreport/report"
	"github.com/disktools/smartreport/ui"
)

// ExitCodeError signals a non-zero exit code without calling os.Exit directly.
type ExitCodeError struct{ Code int }

func (e ExitCodeError) Error() string { return fmt.Sprintf("exit %d", e.Code) }

// options is the fully resolved run configuration.
type options struct {
	directory  string
	output     string
	htmlFile   string
	writeHTML  bool
	logFile    string
	thresholds analyze.Thresholds
	scan       bool
	jsonOut    bool
	tui        bool
	verbose    bool
}

// runReport executes one pipeline pass: load, aggregate, render.
func runReport(opts options) error {
	log, done, err := logging.New(opts.logFile, opts.verbose)
	if err != nil {
		return err
	}
	defer done()

	var src collector.Source
	if opts.scan {
		src = collector.NewSmartctlSource(log)
	} else {
		src = collector.NewDirSource(opts.directory, log)
	}
	log.Debugf("collecting from %s", src.Name())

	rep := analyze.Aggregate(src.Load(), log)
	if rep.Empty() {
		fmt.Println("No data found. Verify the JSON files directory.")
		return ExitCodeError{Code: 1}
	}

	if opts.jsonOut {
		return report.WriteJSON(os.Stdout, rep, time.Now())
	}

	if opts.tui {
		p := tea.NewProgram(ui.NewModel(rep, opts.thresholds), tea.WithAltScreen())
		_, err := p.Run()
		return err
	}

	report.Console(os.Stdout, rep, opts.thresholds)
	if err := report.SaveCSV(opts.output, rep); err != nil {
		return err
	}
	if opts.writeHTML {
		if err := report.SaveHTML(opts.htmlFile, rep, opts.thresholds); err != nil {
			return err
		}
	}
	return nil
}
