package dashboard

import (
	"errors"
	"fmt"

	"github.com/tinytelemetry/accelboard/internal/model"
)

// ErrUnknownInput is returned when an event names an input with no binding.
var ErrUnknownInput = errors.New("unknown input")

// AxisInputID names the selector whose value drives the dashboard.
const AxisInputID = "axis-choice"

// Result is the output of one dispatched selector change.
type Result struct {
	Axis    model.Axis
	Chart   model.ChartSpec
	Records []model.Record
}

// Binding registers one update function against one named input.
// Dispatch runs synchronously; the binding keeps no state between calls.
type Binding struct {
	input string
	vm    ViewModel
}

// NewBinding binds vm to the axis selector.
func NewBinding(vm ViewModel) *Binding {
	return &Binding{input: AxisInputID, vm: vm}
}

// Input returns the bound input id.
func (b *Binding) Input() string { return b.input }

// Dispatch handles a change event for input carrying a raw selector value.
func (b *Binding) Dispatch(input, value string) (Result, error) {
	if input != b.input {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownInput, input)
	}
	axis, err := model.ParseAxis(value)
	if err != nil {
		return Result{}, err
	}
	return b.Apply(axis), nil
}

// Apply runs the update for an already validated axis.
func (b *Binding) Apply(axis model.Axis) Result {
	chart, records := b.vm.Update(axis)
	return Result{Axis: axis, Chart: chart, Records: records}
}
