package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrInvalidAxis is returned when a selector value is not one of x, y, z.
var ErrInvalidAxis = errors.New("invalid axis")

// Axis is one of the three measurement channels recorded per reading.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"

	DefaultAxis = AxisX
)

// Axes returns the selectable axes in display order.
func Axes() []Axis {
	return []Axis{AxisX, AxisY, AxisZ}
}

// ParseAxis converts an untrusted selector value into an Axis.
func ParseAxis(s string) (Axis, error) {
	switch a := Axis(strings.ToLower(strings.TrimSpace(s))); a {
	case AxisX, AxisY, AxisZ:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAxis, s)
}

// Next returns the axis after a in display order, wrapping around.
func (a Axis) Next() Axis {
	switch a {
	case AxisX:
		return AxisY
	case AxisY:
		return AxisZ
	default:
		return AxisX
	}
}

func (a Axis) String() string { return string(a) }

// Reading is one timestamped sample of the three axes.
type Reading struct {
	Timestamp time.Time // Zero value = unparseable timestamp
	X         float64   // NaN = empty cell
	Y         float64
	Z         float64
}

// HasTimestamp reports whether the reading's timestamp parsed.
func (r Reading) HasTimestamp() bool {
	return !r.Timestamp.IsZero()
}

// Value returns the measurement for the given axis.
func (r Reading) Value(a Axis) float64 {
	switch a {
	case AxisY:
		return r.Y
	case AxisZ:
		return r.Z
	default:
		return r.X
	}
}

// Record is a row-oriented preview of a reading, keyed by column name.
// Null timestamps and empty measurements are stored as nil.
type Record map[string]any

// Record converts the reading for tabular display.
func (r Reading) Record() Record {
	rec := Record{
		"timestamp": nil,
		"x":         nullableFloat(r.X),
		"y":         nullableFloat(r.Y),
		"z":         nullableFloat(r.Z),
	}
	if r.HasTimestamp() {
		rec["timestamp"] = r.Timestamp
	}
	return rec
}

func nullableFloat(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

// ChartPoint is one plotted sample. Nil fields are gaps in the series.
type ChartPoint struct {
	Time  *time.Time `json:"x"`
	Value *float64   `json:"y"`
}

// Plottable reports whether the point has both coordinates.
func (p ChartPoint) Plottable() bool {
	return p.Time != nil && p.Value != nil
}

// ChartSpec describes a line chart of one axis over time.
type ChartSpec struct {
	Title   string       `json:"title"`
	Axis    Axis         `json:"axis"`
	XField  string       `json:"x_field"`
	YField  string       `json:"y_field"`
	Markers bool         `json:"markers"`
	Points  []ChartPoint `json:"points"`
}
