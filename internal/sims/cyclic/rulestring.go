package cyclic

import (
	"fmt"
	"strconv"
	"strings"

	"cavis/internal/core"
)

const (
	markerMoore      = "NM"
	markerVonNeumann = "NN"
)

// Format renders r as R<range>/T<threshold>/C<states>/N{M|N}.
func Format(r Rule) string {
	marker := markerMoore
	if r.Neighborhood == VonNeumann {
		marker = markerVonNeumann
	}
	return fmt.Sprintf("R%d/T%d/C%d/%s", r.Range, r.AdvanceThreshold, r.States, marker)
}

// Parse reads a rulestring produced by Format. Surrounding space is ignored.
// ok is false for non-ASCII input, grammar errors, or out-of-range values.
func Parse(s string) (Rule, bool) {
	s = strings.TrimSpace(s)
	if !core.IsASCII(s) {
		return Rule{}, false
	}
	parts := strings.Split(s, "/")
	if len(parts) != 4 {
		return Rule{}, false
	}
	rng, ok := numericField(parts[0], 'R')
	if !ok {
		return Rule{}, false
	}
	threshold, ok := numericField(parts[1], 'T')
	if !ok {
		return Rule{}, false
	}
	states, ok := numericField(parts[2], 'C')
	if !ok {
		return Rule{}, false
	}
	var n Neighborhood
	switch parts[3] {
	case markerMoore:
		n = Moore
	case markerVonNeumann:
		n = VonNeumann
	default:
		return Rule{}, false
	}
	r := Rule{AdvanceThreshold: threshold, Neighborhood: n, Range: rng, States: states}
	if r.Validate() != nil {
		return Rule{}, false
	}
	return r, true
}

// numericField reads marker followed by one or more decimal digits.
func numericField(part string, marker byte) (int, bool) {
	if len(part) < 2 || part[0] != marker {
		return 0, false
	}
	digits := part[1:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return v, true
}
