package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/accelboard/internal/model"
)

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing dashboard..."
	}

	header := titleStyle.Render(m.title)
	divider := dividerStyle.Render(strings.Repeat("─", max(m.width-2, 1)))
	selector := m.renderSelector()

	tableBox := sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.table.View(),
		helpStyle.Render(fmt.Sprintf("page %d/%d", m.page+1, m.PageCount())),
	))

	// Everything above the chart plus borders and the status line.
	used := lipgloss.Height(header) + lipgloss.Height(divider) + lipgloss.Height(selector) +
		lipgloss.Height(tableBox) + 1 + 3
	chartW := max(m.width-4, 10)
	chartH := max(m.height-used, 4)
	chartBox := sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		chartTitleStyle.Render(m.result.Chart.Title),
		renderChart(m.result.Chart, chartW, chartH),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		divider,
		selector,
		tableBox,
		chartBox,
		m.renderStatusLine(),
	)
}

func (m *DashboardModel) renderSelector() string {
	parts := []string{helpStyle.Render("axis:")}
	for _, a := range model.Axes() {
		style := axisStyle
		if a == m.result.Axis {
			style = activeAxisStyle
		}
		parts = append(parts, style.Render(a.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m *DashboardModel) renderStatusLine() string {
	var b strings.Builder
	for i, k := range m.keys.ShortHelp() {
		if i > 0 {
			b.WriteString(" • ")
		}
		h := k.Help()
		b.WriteString(h.Key + " " + h.Desc)
	}
	return helpStyle.Render(b.String())
}
