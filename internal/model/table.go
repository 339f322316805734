package model

// Table is an ordered, read-only sequence of readings.
// It is loaded once and shared without locking.
type Table struct {
	rows []Reading
}

// NewTable creates a table from a copy of rows.
func NewTable(rows []Reading) *Table {
	return &Table{rows: append([]Reading(nil), rows...)}
}

// Len returns the number of readings.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// At returns the i-th reading.
func (t *Table) At(i int) Reading {
	return t.rows[i]
}

// Tail returns a copy of the last n readings in original order.
func (t *Table) Tail(n int) []Reading {
	if n <= 0 || t.Len() == 0 {
		return []Reading{}
	}
	start := len(t.rows) - n
	if start < 0 {
		start = 0
	}
	return append([]Reading(nil), t.rows[start:]...)
}

// Column returns the values of one axis in row order.
func (t *Table) Column(a Axis) []float64 {
	out := make([]float64, t.Len())
	for i := range out {
		out[i] = t.rows[i].Value(a)
	}
	return out
}
