package ui

import (
	"testing"

	"cavis/internal/core"
)

func TestAdjustedValue(t *testing.T) {
	ctrl := core.ParameterControl{Key: "range", Step: 1, Min: 1, Max: 16}
	cases := []struct {
		value, direction, want int
	}{
		{5, 1, 6},
		{5, -1, 4},
		{1, -1, 1},
		{16, 1, 16},
	}
	for _, tc := range cases {
		if got := adjustedValue(ctrl, tc.value, tc.direction); got != tc.want {
			t.Fatalf("adjustedValue(%d, %d) = %d, want %d", tc.value, tc.direction, got, tc.want)
		}
	}

	stepless := core.ParameterControl{Min: 0, Max: 100}
	if got := adjustedValue(stepless, 10, 1); got != 11 {
		t.Fatalf("zero step should count as 1, got %d", got)
	}
}
