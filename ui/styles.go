package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/disktools/smartreport/analyze"
)

var (
	// Colors
	colorRed    = lipgloss.Color("#FF5555")
	colorYellow = lipgloss.Color("#F1FA8C")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorWhite  = lipgloss.Color("#F8F8F2")
	colorGray   = lipgloss.Color("#6272A4")
	colorPanel  = lipgloss.Color("#44475A")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	labelStyle = lipgloss.NewStyle().Foreground(colorGray)
	valueStyle = lipgloss.NewStyle().Foreground(colorWhite)
	warnStyle  = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	critStyle  = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(colorGreen)

	selectedStyle = lipgloss.NewStyle().Background(colorPanel).Foreground(colorWhite).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(colorGray)
	dimStyle      = lipgloss.NewStyle().Foreground(colorGray)
)

// severityStyle maps a threshold flag to its display style.
func severityStyle(sev analyze.Severity) lipgloss.Style {
	switch sev {
	case analyze.SeverityDanger:
		return critStyle
	case analyze.SeverityWarning:
		return warnStyle
	default:
		return okStyle
	}
}
