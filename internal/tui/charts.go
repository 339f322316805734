package tui

import (
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"

	"github.com/tinytelemetry/accelboard/internal/model"
)

// renderChart draws the plottable points of spec as a braille line chart.
// Points without a time or value are skipped.
func renderChart(spec model.ChartSpec, width, height int) string {
	if width < 10 {
		width = 10
	}
	if height < 4 {
		height = 4
	}

	minT, maxT, minY, maxY, n := chartBounds(spec.Points)
	if n < 2 {
		return helpStyle.Render("No plottable data")
	}

	c := tslc.New(width, height)
	c.SetTimeRange(minT, maxT)
	c.SetViewTimeRange(minT, maxT)
	c.SetYRange(minY, maxY)
	c.SetViewYRange(minY, maxY)
	for _, p := range spec.Points {
		if !p.Plottable() {
			continue
		}
		c.Push(tslc.TimePoint{Time: *p.Time, Value: *p.Value})
	}
	c.DrawBraille()
	return c.View()
}

// chartBounds returns the data extent, widened so neither range is empty.
func chartBounds(points []model.ChartPoint) (minT, maxT time.Time, minY, maxY float64, n int) {
	for _, p := range points {
		if !p.Plottable() {
			continue
		}
		t, v := *p.Time, *p.Value
		if n == 0 || t.Before(minT) {
			minT = t
		}
		if n == 0 || t.After(maxT) {
			maxT = t
		}
		if n == 0 || v < minY {
			minY = v
		}
		if n == 0 || v > maxY {
			maxY = v
		}
		n++
	}
	if n == 0 {
		return
	}
	if !maxT.After(minT) {
		maxT = minT.Add(time.Second)
	}
	if maxY == minY {
		minY--
		maxY++
	}
	return
}
