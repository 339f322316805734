// Package dashboard derives the chart and preview table from the loaded
// readings and binds that derivation to the axis selector.
package dashboard

import (
	"fmt"
	"math"

	"github.com/tinytelemetry/accelboard/internal/model"
)

// ViewModel recomputes both view artifacts for a selected axis.
type ViewModel interface {
	Update(axis model.Axis) (model.ChartSpec, []model.Record)
}

// Dashboard is the explicitly constructed context shared by every update.
// It holds the read-only table and never mutates it.
type Dashboard struct {
	table       *model.Table
	previewRows int
	title       string
}

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithPreviewRows sets the size of the preview window.
func WithPreviewRows(n int) Option {
	return func(d *Dashboard) {
		if n > 0 {
			d.previewRows = n
		}
	}
}

// WithTitle sets the page heading.
func WithTitle(title string) Option {
	return func(d *Dashboard) {
		if title != "" {
			d.title = title
		}
	}
}

// New creates a dashboard over table.
func New(table *model.Table, opts ...Option) *Dashboard {
	if table == nil {
		table = model.NewTable(nil)
	}
	d := &Dashboard{
		table:       table,
		previewRows: model.DefaultPreviewRows,
		title:       model.DefaultTitle,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Title returns the page heading.
func (d *Dashboard) Title() string { return d.title }

// Update implements ViewModel.
func (d *Dashboard) Update(axis model.Axis) (model.ChartSpec, []model.Record) {
	return BuildChart(d.table, axis), PreviewRecords(d.table, d.previewRows)
}

// ChartTitle returns the chart title for an axis.
func ChartTitle(axis model.Axis) string {
	return fmt.Sprintf("%s over Time", axis)
}

// BuildChart plots axis against timestamp in table order. Rows without a
// timestamp or value are kept as gaps.
func BuildChart(table *model.Table, axis model.Axis) model.ChartSpec {
	spec := model.ChartSpec{
		Title:   ChartTitle(axis),
		Axis:    axis,
		XField:  "timestamp",
		YField:  axis.String(),
		Markers: true,
		Points:  make([]model.ChartPoint, table.Len()),
	}
	for i := range spec.Points {
		r := table.At(i)
		var p model.ChartPoint
		if r.HasTimestamp() {
			ts := r.Timestamp
			p.Time = &ts
		}
		if v := r.Value(axis); !math.IsNaN(v) && !math.IsInf(v, 0) {
			p.Value = &v
		}
		spec.Points[i] = p
	}
	return spec
}

// PreviewRecords returns the last n readings as records, oldest first.
func PreviewRecords(table *model.Table, n int) []model.Record {
	tail := table.Tail(n)
	records := make([]model.Record, len(tail))
	for i, r := range tail {
		records[i] = r.Record()
	}
	return records
}
