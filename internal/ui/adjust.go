package ui

import "cavis/internal/core"

// adjustedValue nudges value by one control step in direction, clamped to the
// control's inclusive bounds. A non-positive step counts as 1.
func adjustedValue(ctrl core.ParameterControl, value, direction int) int {
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := value + direction*step
	if ctrl.Max >= ctrl.Min {
		target = core.Clamp(target, ctrl.Min, ctrl.Max)
	}
	return target
}
