// Package chart renders a model.ChartSpec as an SVG line chart.
package chart

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tinytelemetry/accelboard/internal/model"
)

const (
	DefaultWidth      = 960
	DefaultHeight     = 420
	DefaultTimeFormat = "01-02 15:04:05"
)

var (
	lineColor = drawing.Color{R: 31, G: 111, B: 235, A: 255}
	dotColor  = drawing.Color{R: 88, G: 166, B: 255, A: 255}
)

type options struct {
	width, height int
	timeFormat    string
}

// Option configures rendering.
type Option func(*options)

// WithSize sets the output dimensions in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// WithTimeFormat sets the x-axis tick label layout.
func WithTimeFormat(layout string) Option {
	return func(o *options) {
		if layout != "" {
			o.timeFormat = layout
		}
	}
}

// RenderSVG writes spec as an SVG document to w. Points missing a time or a
// value split the line into separate segments. When fewer than two distinct
// timestamps are plottable a placeholder is written instead.
func RenderSVG(spec model.ChartSpec, w io.Writer, opts ...Option) error {
	o := options{width: DefaultWidth, height: DefaultHeight, timeFormat: DefaultTimeFormat}
	for _, opt := range opts {
		opt(&o)
	}

	segments, minY, maxY, distinct := segment(spec.Points)
	if distinct < 2 {
		return writePlaceholder(w, spec.Title, "no plottable data", o)
	}

	series := make([]gochart.Series, 0, len(segments))
	for _, seg := range segments {
		style := gochart.Style{
			StrokeColor: lineColor,
			StrokeWidth: 2,
		}
		if spec.Markers {
			style.DotColor = dotColor
			style.DotWidth = 3
		}
		series = append(series, gochart.TimeSeries{
			Name:    spec.YField,
			XValues: seg.times,
			YValues: seg.values,
			Style:   style,
		})
	}

	yAxis := gochart.YAxis{Name: spec.YField}
	if minY == maxY {
		yAxis.Range = &gochart.ContinuousRange{Min: minY - 1, Max: maxY + 1}
	}

	graph := gochart.Chart{
		Title:  spec.Title,
		Width:  o.width,
		Height: o.height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: gochart.XAxis{
			Name:           spec.XField,
			ValueFormatter: gochart.TimeValueFormatterWithFormat(o.timeFormat),
		},
		YAxis:  yAxis,
		Series: series,
	}

	// w receives nothing when the render fails.
	var buf bytes.Buffer
	if err := graph.Render(gochart.SVG, &buf); err != nil {
		return fmt.Errorf("rendering %s chart: %w", spec.YField, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderSVGString renders spec and returns the SVG markup.
func RenderSVGString(spec model.ChartSpec, opts ...Option) (string, error) {
	var buf bytes.Buffer
	if err := RenderSVG(spec, &buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type run struct {
	times  []time.Time
	values []float64
}

// segment splits points into runs of consecutive plottable points.
func segment(points []model.ChartPoint) (runs []run, minY, maxY float64, distinct int) {
	var (
		cur  run
		seen = make(map[int64]struct{})
	)
	flush := func() {
		if len(cur.times) > 0 {
			runs = append(runs, cur)
		}
		cur = run{}
	}

	first := true
	for _, p := range points {
		if !p.Plottable() {
			flush()
			continue
		}
		v := *p.Value
		if first || v < minY {
			minY = v
		}
		if first || v > maxY {
			maxY = v
		}
		first = false
		seen[p.Time.UnixNano()] = struct{}{}
		cur.times = append(cur.times, *p.Time)
		cur.values = append(cur.values, v)
	}
	flush()
	return runs, minY, maxY, len(seen)
}

// writePlaceholder emits a minimal SVG with a title and message. go-chart
// cannot draw a zero-width time range, so this is drawn by hand.
func writePlaceholder(w io.Writer, title, msg string, o options) error {
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect width="100%%" height="100%%" fill="#ffffff"/>`+
			`<text x="50%%" y="32" text-anchor="middle" font-family="sans-serif" font-size="16">%s</text>`+
			`<text x="50%%" y="50%%" text-anchor="middle" font-family="sans-serif" font-size="13" fill="#8b949e">%s</text>`+
			`</svg>`,
		o.width, o.height, o.width, o.height, html.EscapeString(title), html.EscapeString(msg))
	return err
}
