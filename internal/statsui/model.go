// Package statsui provides the Bubble Tea statistics browser.
package statsui

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/lotto/internal/model"
	"github.com/verte-zerg/lotto/internal/stats"
)

const (
	tabFrequency = iota
	tabTemperature
	tabShape
	tabGaps
	tabCombinations
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea statistics browser over a computed report.
type Model struct {
	report stats.Report
	cfg    model.Config

	tabs      []string
	activeTab int
	viewports []viewport.Model

	width  int
	height int
}

// NewModel constructs a statistics browser for the report.
func NewModel(report stats.Report, cfg model.Config) *Model {
	m := &Model{
		report: report,
		cfg:    cfg,
		tabs:   []string{"Frequency", "Temperature", "Shape", "Gaps", "Combinations"},
	}
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "g", "home":
			m.viewports[m.activeTab].GotoTop()
			return m, nil
		case "G", "end":
			m.viewports[m.activeTab].GotoBottom()
			return m, nil
		default:
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.renderHeader()
	footer := footerStyle.Render("←/→ switch tab · ↑/↓ scroll · q quit")
	body := m.viewports[m.activeTab].View()
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) renderHeader() string {
	rendered := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			rendered = append(rendered, activeNavStyle.Render(tab))
		} else {
			rendered = append(rendered, inactiveNavStyle.Render(tab))
		}
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	info := headerStyle.Render(m.windowLabel())
	return lipgloss.JoinVertical(lipgloss.Left, tabs, info)
}

func (m *Model) windowLabel() string {
	if m.report.Meta.DrawsAnalyzed == 0 {
		return "no draws in window"
	}
	return m.report.Meta.From.Format("2006-01-02") + " to " +
		m.report.Meta.To.Format("2006-01-02")
}

func (m *Model) updateLayout() {
	headerHeight := lipgloss.Height(m.renderHeader())
	bodyHeight := m.height - headerHeight - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
}

func (m *Model) moveTab(delta int) {
	next := m.activeTab + delta
	if next < 0 {
		next = len(m.tabs) - 1
	}
	if next >= len(m.tabs) {
		next = 0
	}
	m.activeTab = next
}

func (m *Model) renderTabContents() {
	for i := range m.tabs {
		m.viewports[i].SetContent(m.tabContent(i))
	}
}

func (m *Model) tabContent(tab int) string {
	var buf bytes.Buffer
	switch tab {
	case tabFrequency:
		_ = renderSection(&buf, m.report, m.cfg, m.width, renderFrequencyTab)
	case tabTemperature:
		_ = renderSection(&buf, m.report, m.cfg, m.width, renderTemperatureTab)
	case tabShape:
		_ = renderSection(&buf, m.report, m.cfg, m.width, renderShapeTab)
	case tabGaps:
		_ = renderSection(&buf, m.report, m.cfg, m.width, renderGapsTab)
	case tabCombinations:
		_ = renderSection(&buf, m.report, m.cfg, m.width, renderCombinationsTab)
	}
	return buf.String()
}
