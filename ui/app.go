// Package ui implements the interactive report browser.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/disktools/smartreport/analyze"
	"github.com/disktools/smartreport/model"
	"github.com/disktools/smartreport/report"
)

// Tab identifies the visible view.
type Tab int

const (
	TabATA Tab = iota
	TabNVMe
	TabAll
	tabCount
)

var tabNames = []string{"ATA", "NVMe", "All"}

// Model is the bubbletea model backing the report browser.
type Model struct {
	report model.Report
	th     analyze.Thresholds

	tab    Tab
	width  int
	height int
	scroll int
}

// NewModel creates a browser over an aggregated report.
func NewModel(rep model.Report, th analyze.Thresholds) Model {
	return Model{report: rep, th: th}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % tabCount
			m.scroll = 0
		case "shift+tab", "left", "h":
			m.tab = (m.tab - 1 + tabCount) % tabCount
			m.scroll = 0
		case "1":
			m.tab = TabATA
			m.scroll = 0
		case "2":
			m.tab = TabNVMe
			m.scroll = 0
		case "3":
			m.tab = TabAll
			m.scroll = 0
		case "j", "down":
			m.scroll++
		case "k", "up":
			if m.scroll > 0 {
				m.scroll--
			}
		case "g":
			m.scroll = 0
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Disk Status Report"))
	sb.WriteString("\n")
	sb.WriteString(m.renderSummary())
	sb.WriteString("\n\n")
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n")

	switch m.tab {
	case TabATA:
		if len(m.report.ATA) == 0 {
			sb.WriteString(dimStyle.Render("No ATA devices found."))
			sb.WriteString("\n")
		} else {
			sb.WriteString(report.FamilyTable(m.report.ATA, model.FamilyATA, m.th))
			sb.WriteString("\n")
		}
	case TabNVMe:
		if len(m.report.NVMe) == 0 {
			sb.WriteString(dimStyle.Render("No NVMe devices found."))
			sb.WriteString("\n")
		} else {
			sb.WriteString(report.FamilyTable(m.report.NVMe, model.FamilyNVMe, m.th))
			sb.WriteString("\n")
		}
	case TabAll:
		sb.WriteString(report.AllTable(m.report.All, m.th))
		sb.WriteString("\n")
	}

	content := m.applyScroll(sb.String())
	return content + "\n" + m.renderHelp()
}

// renderSummary shows device counts and the worst flag across all rows.
func (m Model) renderSummary() string {
	counts := labelStyle.Render(fmt.Sprintf("%d ATA, %d NVMe, %d total",
		len(m.report.ATA), len(m.report.NVMe), len(m.report.All)))

	flagged := 0
	worst := analyze.SeverityNone
	for _, r := range m.report.All {
		sev := worstSeverity(r, m.th)
		if sev > analyze.SeverityNone {
			flagged++
		}
		if sev > worst {
			worst = sev
		}
	}
	if flagged == 0 {
		return counts + "  " + okStyle.Render("all healthy")
	}
	return counts + "  " + severityStyle(worst).Render(fmt.Sprintf("%d flagged", flagged))
}

func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs = append(tabs, selectedStyle.Render(" "+name+" "))
		} else {
			tabs = append(tabs, dimStyle.Render(" "+name+" "))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderHelp() string {
	return helpStyle.Render("tab/←/→: switch view  1-3: jump  j/k: scroll  q: quit")
}

// applyScroll clamps the scroll offset and trims content to the viewport.
func (m Model) applyScroll(content string) string {
	lines := strings.Split(content, "\n")
	offset := m.scroll
	if offset >= len(lines) {
		offset = len(lines) - 1
	}
	if offset > 0 {
		lines = lines[offset:]
	}
	// Leave room for the help footer.
	maxLines := m.height - 2
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}

// worstSeverity returns the most severe flag across a row's metrics.
func worstSeverity(r model.DeviceRow, th analyze.Thresholds) analyze.Severity {
	worst := th.FlagPowerOnHours(r.PowerOnHours)
	if s := th.FlagTemperature(r.Temperature); s > worst {
		worst = s
	}
	if s := th.FlagReallocated(r.Reallocated); s > worst {
		worst = s
	}
	return worst
}
