package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/accelboard/internal/dashboard"
	"github.com/tinytelemetry/accelboard/internal/model"
)

const timeLayout = "2006-01-02 15:04:05"

// DashboardModel renders the dashboard binding in a terminal.
type DashboardModel struct {
	title    string
	binding  *dashboard.Binding
	keys     KeyMap
	result   dashboard.Result
	table    table.Model
	page     int
	pageSize int
	width    int
	height   int
}

// NewDashboardModel creates a model showing the default axis.
func NewDashboardModel(d *dashboard.Dashboard, pageSize int) *DashboardModel {
	if pageSize <= 0 {
		pageSize = model.DefaultPageSize
	}

	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(ColorWhite).Background(ColorNavy).Bold(false)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "timestamp", Width: 19},
			{Title: "x", Width: 10},
			{Title: "y", Width: 10},
			{Title: "z", Width: 10},
		}),
		table.WithHeight(pageSize),
	)
	t.SetStyles(s)

	m := &DashboardModel{
		title:    d.Title(),
		binding:  dashboard.NewBinding(d),
		keys:     DefaultKeyMap(),
		table:    t,
		pageSize: pageSize,
	}
	m.selectAxis(model.DefaultAxis)
	return m
}

// Axis returns the selected axis.
func (m *DashboardModel) Axis() model.Axis { return m.result.Axis }

// Page returns the zero-based preview page.
func (m *DashboardModel) Page() int { return m.page }

// PageCount returns the number of preview pages, at least one.
func (m *DashboardModel) PageCount() int {
	n := (len(m.result.Records) + m.pageSize - 1) / m.pageSize
	if n < 1 {
		return 1
	}
	return n
}

func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.AxisX):
			m.selectAxis(model.AxisX)
		case key.Matches(msg, m.keys.AxisY):
			m.selectAxis(model.AxisY)
		case key.Matches(msg, m.keys.AxisZ):
			m.selectAxis(model.AxisZ)
		case key.Matches(msg, m.keys.Cycle):
			m.selectAxis(m.result.Axis.Next())
		case key.Matches(msg, m.keys.NextPage):
			m.setPage(m.page + 1)
		case key.Matches(msg, m.keys.PrevPage):
			m.setPage(m.page - 1)
		}
	}
	return m, nil
}

// selectAxis re-runs the binding. The selection is never cleared, so every
// keypress maps to one of the three axes.
func (m *DashboardModel) selectAxis(axis model.Axis) {
	m.result = m.binding.Apply(axis)
	m.setPage(m.page)
}

func (m *DashboardModel) setPage(page int) {
	if page >= m.PageCount() {
		page = m.PageCount() - 1
	}
	if page < 0 {
		page = 0
	}
	m.page = page

	start := page * m.pageSize
	end := start + m.pageSize
	if end > len(m.result.Records) {
		end = len(m.result.Records)
	}
	rows := make([]table.Row, 0, m.pageSize)
	if start < end {
		for _, rec := range m.result.Records[start:end] {
			rows = append(rows, recordRow(rec))
		}
	}
	m.table.SetRows(rows)
}

func recordRow(rec model.Record) table.Row {
	row := make(table.Row, 0, 4)
	for _, col := range []string{"timestamp", "x", "y", "z"} {
		row = append(row, formatValue(rec[col]))
	}
	return row
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case time.Time:
		return x.Format(timeLayout)
	case float64:
		return strconv.FormatFloat(x, 'g', 6, 64)
	default:
		return ""
	}
}
