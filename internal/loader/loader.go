// Package loader reads a sensor-reading CSV file into a model.Table.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/tinytelemetry/accelboard/internal/model"
	"github.com/tinytelemetry/accelboard/internal/timestamp"
)

// Required column names. Extra columns are ignored.
const (
	ColumnTimestamp = "timestamp"
	ColumnX         = "x"
	ColumnY         = "y"
	ColumnZ         = "z"
)

var (
	// ErrMissingColumn is returned when the header lacks a required column.
	ErrMissingColumn = errors.New("missing required column")
	// ErrNoHeader is returned for an empty input.
	ErrNoHeader = errors.New("no header row")
)

// ParseError reports a measurement cell that is not numeric.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %q: invalid value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Stats summarizes timestamp normalization for a load.
type Stats struct {
	Rows               int
	FallbackTimestamps int // parsed only after prefixing the fallback year
	NullTimestamps     int // unparseable, kept with a zero timestamp
}

// Load opens path and reads it with Read.
func Load(path string, p *timestamp.Parser) (*model.Table, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	table, stats, err := Read(f, p)
	if err != nil {
		return nil, stats, fmt.Errorf("reading %s: %w", path, err)
	}
	return table, stats, nil
}

// Read parses CSV from r. A header row naming timestamp, x, y and z is
// required. Rows whose timestamp cannot be parsed are kept with a zero
// timestamp; a non-numeric measurement fails the whole read.
func Read(r io.Reader, p *timestamp.Parser) (*model.Table, Stats, error) {
	if p == nil {
		p = timestamp.NewParser()
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, Stats{}, ErrNoHeader
	}
	if err != nil {
		return nil, Stats{}, fmt.Errorf("reading header: %w", err)
	}

	idx, err := indexColumns(header)
	if err != nil {
		return nil, Stats{}, err
	}

	var (
		rows  []model.Reading
		stats Stats
	)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("reading CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)

		reading, err := parseRow(record, idx, line)
		if err != nil {
			return nil, stats, err
		}

		res := p.Resolve(field(record, idx.timestamp))
		switch {
		case !res.Found:
			stats.NullTimestamps++
		case res.Fallback:
			stats.FallbackTimestamps++
		}
		reading.Timestamp = res.Timestamp

		rows = append(rows, reading)
	}
	stats.Rows = len(rows)

	return model.NewTable(rows), stats, nil
}

type columnIndex struct {
	timestamp, x, y, z int
}

func indexColumns(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}

	var missing []string
	lookup := func(name string) int {
		i, ok := pos[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return i
	}

	idx := columnIndex{
		timestamp: lookup(ColumnTimestamp),
		x:         lookup(ColumnX),
		y:         lookup(ColumnY),
		z:         lookup(ColumnZ),
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

func parseRow(record []string, idx columnIndex, line int) (model.Reading, error) {
	var (
		r   model.Reading
		err error
	)
	if r.X, err = parseMeasurement(record, idx.x, ColumnX, line); err != nil {
		return r, err
	}
	if r.Y, err = parseMeasurement(record, idx.y, ColumnY, line); err != nil {
		return r, err
	}
	if r.Z, err = parseMeasurement(record, idx.z, ColumnZ, line); err != nil {
		return r, err
	}
	return r, nil
}

// parseMeasurement returns NaN for empty cells.
func parseMeasurement(record []string, i int, column string, line int) (float64, error) {
	raw := strings.TrimSpace(field(record, i))
	if raw == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if errors.Is(err, strconv.ErrRange) {
		// Out-of-range magnitudes saturate to ±Inf and render as nulls.
		return v, nil
	}
	if err != nil {
		return 0, &ParseError{Line: line, Column: column, Value: raw, Err: err}
	}
	return v, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}
