// Package timestamp normalizes sensor-log timestamps, including values that
// were recorded without a year.
package timestamp

import (
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultLayout is a full date-time with a 4-digit year.
	DefaultLayout = "2006-01-02 15:04:05"
	// DefaultFallbackYear is prefixed to values that fail DefaultLayout.
	DefaultFallbackYear = 2025
)

// Result describes how a single value was resolved.
type Result struct {
	Timestamp time.Time
	Found     bool
	Fallback  bool // parsed only after prefixing the fallback year
}

// Parser parses timestamps with one layout and a year-prefix fallback.
// The zero value is not usable; construct with NewParser.
type Parser struct {
	layout       string
	layouts      []string // layout, then its unpadded variant
	fallbackYear int
	prefix       string
}

// Option configures a Parser.
type Option func(*Parser)

// WithLayout sets the primary layout. It must contain a 4-digit year so that
// the fallback prefix lines up with it.
func WithLayout(layout string) Option {
	return func(p *Parser) {
		if layout != "" {
			p.layout = layout
		}
	}
}

// WithFallbackYear sets the year prefixed to values lacking one.
func WithFallbackYear(year int) Option {
	return func(p *Parser) {
		if year > 0 && year <= 9999 {
			p.fallbackYear = year
		}
	}
}

// NewParser creates a parser using DefaultLayout and DefaultFallbackYear
// unless overridden. Month, day, minute and second may also appear without
// zero padding ("2025-6-1 12:5:00").
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		layout:       DefaultLayout,
		fallbackYear: DefaultFallbackYear,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.layouts = []string{p.layout}
	if loose := unpadded(p.layout); loose != p.layout {
		p.layouts = append(p.layouts, loose)
	}
	p.prefix = padYear(p.fallbackYear) + "-"
	return p
}

// FallbackYear returns the year used for year-less values.
func (p *Parser) FallbackYear() int { return p.fallbackYear }

// Parse returns the parsed time, or false if the value could not be parsed
// even after the fallback. Times are returned in UTC.
func (p *Parser) Parse(s string) (time.Time, bool) {
	r := p.Resolve(s)
	return r.Timestamp, r.Found
}

// Resolve parses s and reports whether the year fallback was needed.
func (p *Parser) Resolve(s string) Result {
	s = strings.TrimSpace(s)
	if s == "" {
		return Result{}
	}

	if ts, ok := p.parse(s); ok {
		return Result{Timestamp: ts, Found: true}
	}
	if ts, ok := p.parse(p.prefix + s); ok {
		return Result{Timestamp: ts, Found: true, Fallback: true}
	}
	return Result{}
}

// parse tries each layout in turn. The zero time is reserved for null
// timestamps, so 0001-01-01 00:00:00 is reported as unparsed.
func (p *Parser) parse(s string) (time.Time, bool) {
	for _, layout := range p.layouts {
		ts, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if ts.IsZero() {
			return time.Time{}, false
		}
		return ts, true
	}
	return time.Time{}, false
}

var unpadReplacer = strings.NewReplacer("01", "1", "02", "2", "04", "4", "05", "5")

// unpadded rewrites zero-padded month, day, minute and second fields to
// their variable-width forms. Layouts using day-of-year ("002") are left
// alone.
func unpadded(layout string) string {
	if strings.Contains(layout, "002") {
		return layout
	}
	return unpadReplacer.Replace(layout)
}

func padYear(year int) string {
	s := strconv.Itoa(year)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
