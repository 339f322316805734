package dashboard

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tinytelemetry/accelboard/internal/model"
)

func newTable(n int) *model.Table {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := make([]model.Reading, n)
	for i := range rows {
		rows[i] = model.Reading{
			Timestamp: base.Add(time.Duration(i) * time.Second),
			X:         float64(i) + 0.5,
			Y:         float64(-i),
			Z:         9.8 + float64(i)/10,
		}
	}
	return model.NewTable(rows)
}

func yValues(spec model.ChartSpec) []float64 {
	out := make([]float64, len(spec.Points))
	for i, p := range spec.Points {
		if p.Value == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *p.Value
	}
	return out
}

func TestUpdate_ChartFollowsSelectedAxis(t *testing.T) {
	table := newTable(15)
	d := New(table)

	for _, axis := range model.Axes() {
		t.Run(axis.String(), func(t *testing.T) {
			spec, _ := d.Update(axis)

			if !strings.Contains(spec.Title, axis.String()) {
				t.Errorf("title %q does not mention axis %q", spec.Title, axis)
			}
			if spec.YField != axis.String() || spec.XField != "timestamp" {
				t.Errorf("fields = %q/%q", spec.XField, spec.YField)
			}
			if !spec.Markers {
				t.Error("markers disabled")
			}
			if diff := cmp.Diff(table.Column(axis), yValues(spec)); diff != "" {
				t.Errorf("y values mismatch (-want +got):\n%s", diff)
			}
			for i, p := range spec.Points {
				if p.Time == nil || !p.Time.Equal(table.At(i).Timestamp) {
					t.Fatalf("point %d time = %v, want %v", i, p.Time, table.At(i).Timestamp)
				}
			}
		})
	}
}

func TestUpdate_PreviewLength(t *testing.T) {
	tests := []struct {
		rows int
		want int
	}{
		{0, 0},
		{3, 3},
		{10, 10},
		{42, 10},
	}

	for _, tt := range tests {
		_, records := New(newTable(tt.rows)).Update(model.AxisX)
		if len(records) != tt.want {
			t.Errorf("rows=%d: preview len = %d, want %d", tt.rows, len(records), tt.want)
		}
	}
}

func TestPreviewRecords_ThreeRowsInOrder(t *testing.T) {
	table := newTable(3)
	records := PreviewRecords(table, 10)

	var got []float64
	for _, r := range records {
		got = append(got, r["x"].(float64))
	}
	if diff := cmp.Diff([]float64{0.5, 1.5, 2.5}, got); diff != "" {
		t.Errorf("preview order mismatch (-want +got):\n%s", diff)
	}
}

func TestPreviewRecords_IsLastWindow(t *testing.T) {
	records := PreviewRecords(newTable(20), 10)

	if first := records[0]["x"].(float64); first != 10.5 {
		t.Errorf("first preview x = %v, want 10.5", first)
	}
	if last := records[9]["x"].(float64); last != 19.5 {
		t.Errorf("last preview x = %v, want 19.5", last)
	}
}

func TestWithPreviewRows(t *testing.T) {
	d := New(newTable(8), WithPreviewRows(4))
	_, records := d.Update(model.AxisZ)
	if len(records) != 4 {
		t.Errorf("preview len = %d, want 4", len(records))
	}
}

func TestBuildChart_NullTimestampIsGap(t *testing.T) {
	table := model.NewTable([]model.Reading{
		{Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), X: 1},
		{X: 2},
		{Timestamp: time.Date(2025, 6, 1, 12, 0, 2, 0, time.UTC), X: math.NaN()},
	})

	spec := BuildChart(table, model.AxisX)
	if len(spec.Points) != 3 {
		t.Fatalf("points = %d, want 3", len(spec.Points))
	}
	if !spec.Points[0].Plottable() {
		t.Error("point 0 should be plottable")
	}
	if spec.Points[1].Time != nil || spec.Points[1].Plottable() {
		t.Error("point 1 should have a nil time")
	}
	if spec.Points[2].Value != nil || spec.Points[2].Plottable() {
		t.Error("point 2 should have a nil value")
	}
}

func TestBinding_Dispatch(t *testing.T) {
	b := NewBinding(New(newTable(12)))

	res, err := b.Dispatch(AxisInputID, "y")
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if res.Axis != model.AxisY || res.Chart.Title != "y over Time" {
		t.Errorf("result axis=%q title=%q", res.Axis, res.Chart.Title)
	}
	if len(res.Records) != 10 {
		t.Errorf("records = %d, want 10", len(res.Records))
	}
}

func TestBinding_DispatchRejects(t *testing.T) {
	b := NewBinding(New(newTable(2)))

	if _, err := b.Dispatch(AxisInputID, "w"); !errors.Is(err, model.ErrInvalidAxis) {
		t.Errorf("invalid axis err = %v, want ErrInvalidAxis", err)
	}
	if _, err := b.Dispatch("other-input", "x"); !errors.Is(err, ErrUnknownInput) {
		t.Errorf("unknown input err = %v, want ErrUnknownInput", err)
	}
}

func TestBinding_IsStateless(t *testing.T) {
	b := NewBinding(New(newTable(5)))

	first := b.Apply(model.AxisZ)
	_ = b.Apply(model.AxisX)
	again := b.Apply(model.AxisZ)

	if diff := cmp.Diff(first, again); diff != "" {
		t.Errorf("repeated dispatch differs (-first +again):\n%s", diff)
	}
}
