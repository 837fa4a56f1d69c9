package cyclic

import (
	"errors"
	"fmt"
	"strings"

	"cavis/internal/core"
)

// Neighborhood selects the kernel used to count neighbours.
type Neighborhood uint8

const (
	Moore Neighborhood = iota
	VonNeumann
)

// MaxRange bounds the neighbourhood radius accepted by Validate.
const MaxRange = 16

// ErrUnknownNeighborhood is returned when a neighbourhood name cannot be parsed.
var ErrUnknownNeighborhood = errors.New("unknown neighborhood")

func (n Neighborhood) String() string {
	switch n {
	case Moore:
		return "Moore"
	case VonNeumann:
		return "VonNeumann"
	default:
		return fmt.Sprintf("Neighborhood(%d)", uint8(n))
	}
}

// ParseNeighborhood accepts "Moore" or "VonNeumann", ignoring case.
func ParseNeighborhood(s string) (Neighborhood, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, "Moore"):
		return Moore, nil
	case strings.EqualFold(s, "VonNeumann"):
		return VonNeumann, nil
	}
	return Moore, fmt.Errorf("%w %q", ErrUnknownNeighborhood, s)
}

// Rule parameterises a cyclic automaton. A cell advances to the next state
// when at least AdvanceThreshold neighbours already hold that state.
type Rule struct {
	AdvanceThreshold int
	Neighborhood     Neighborhood
	Range            int
	States           int
}

// EmptyRule is the starting point when switching to the cyclic family.
func EmptyRule() Rule {
	return Rule{AdvanceThreshold: 1, Neighborhood: Moore, Range: 1, States: 2}
}

// Copy returns an independent copy of r.
func Copy(r Rule) Rule { return r }

// Family identifies the rule as cyclic.
func (r Rule) Family() core.Family { return core.FamilyCyclic }

// StateCount returns the number of states the rule cycles through.
func (r Rule) StateCount() int { return r.States }

// Rulestring formats the rule in its canonical text form.
func (r Rule) Rulestring() string { return Format(r) }

// WithAdvanceThreshold returns a copy of r with the threshold changed.
func (r Rule) WithAdvanceThreshold(v int) Rule {
	r.AdvanceThreshold = v
	return r
}

// WithNeighborhood returns a copy of r with the kernel changed.
func (r Rule) WithNeighborhood(n Neighborhood) Rule {
	r.Neighborhood = n
	return r
}

// WithRange returns a copy of r with the neighbourhood radius changed.
func (r Rule) WithRange(v int) Rule {
	r.Range = v
	return r
}

// WithStates returns a copy of r with the state count changed.
func (r Rule) WithStates(v int) Rule {
	r.States = v
	return r
}

// Validate checks the rule's parameters against their legal ranges.
func (r Rule) Validate() error {
	switch {
	case r.AdvanceThreshold < 1:
		return fmt.Errorf("cyclic: advance threshold %d < 1", r.AdvanceThreshold)
	case r.Range < 1 || r.Range > MaxRange:
		return fmt.Errorf("cyclic: range %d outside [1, %d]", r.Range, MaxRange)
	case r.States < 2 || r.States > core.MaxStates:
		return fmt.Errorf("cyclic: state count %d outside [2, %d]", r.States, core.MaxStates)
	case r.Neighborhood != Moore && r.Neighborhood != VonNeumann:
		return fmt.Errorf("cyclic: %w %d", ErrUnknownNeighborhood, r.Neighborhood)
	}
	return nil
}

// Update computes the next generation of cur into next. Both grids must have
// the same shape; next is fully overwritten and cur is only read.
func Update(cur, next *core.Grid, r Rule, b core.Boundary) {
	count := core.CountMoore
	if r.Neighborhood == VonNeumann {
		count = core.CountVonNeumann
	}
	w, h := cur.W, cur.H
	src := cur.Cells()
	dst := next.Cells()
	states := r.States
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			state := src[idx]
			candidate := uint8((int(state) + 1) % states)
			if count(cur, x, y, r.Range, b, candidate) >= r.AdvanceThreshold {
				dst[idx] = candidate
				continue
			}
			dst[idx] = state
		}
	}
}

// Step returns a fresh grid holding the generation after g.
func Step(g *core.Grid, r Rule, b core.Boundary) *core.Grid {
	next := g.Like()
	Update(g, next, r, b)
	return next
}
