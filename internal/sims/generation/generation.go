package generation

import (
	"fmt"

	"cavis/internal/core"
)

const (
	stateDead  = 0
	stateAlive = 1
)

// Rule parameterises a Generations automaton. State 0 is dead, 1 is alive and
// every higher state is refractory, decaying one step per tick back to 0.
type Rule struct {
	Birth    core.Pattern
	Survival core.Pattern
	States   int
}

// EmptyRule is the starting point when switching to the generation family.
func EmptyRule() Rule {
	return Rule{States: 3}
}

// Copy returns an independent copy of r.
func Copy(r Rule) Rule { return r }

// Family identifies the rule as a Generations rule.
func (r Rule) Family() core.Family { return core.FamilyGeneration }

// StateCount returns the number of states including dead and alive.
func (r Rule) StateCount() int { return r.States }

// Rulestring formats the rule in its canonical text form.
func (r Rule) Rulestring() string { return Format(r) }

// WithBirth returns a copy of r with the birth pattern replaced.
func (r Rule) WithBirth(p core.Pattern) Rule {
	r.Birth = p
	return r
}

// WithSurvival returns a copy of r with the survival pattern replaced.
func (r Rule) WithSurvival(p core.Pattern) Rule {
	r.Survival = p
	return r
}

// WithStates returns a copy of r with the state count changed.
func (r Rule) WithStates(v int) Rule {
	r.States = v
	return r
}

// Validate checks the rule's parameters against their legal ranges.
func (r Rule) Validate() error {
	if r.States < 3 || r.States > core.MaxStates {
		return fmt.Errorf("generation: state count %d outside [3, %d]", r.States, core.MaxStates)
	}
	return nil
}

// Update computes the next generation of cur into next. Both grids must have
// the same shape; next is fully overwritten and cur is only read.
func Update(cur, next *core.Grid, r Rule, b core.Boundary) {
	w, h := cur.W, cur.H
	src := cur.Cells()
	dst := next.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			switch state := src[idx]; state {
			case stateDead:
				if r.Birth.Has(core.CountAlive(cur, x, y, b)) {
					dst[idx] = stateAlive
				} else {
					dst[idx] = stateDead
				}
			case stateAlive:
				if r.Survival.Has(core.CountAlive(cur, x, y, b)) {
					dst[idx] = stateAlive
				} else {
					dst[idx] = stateAlive + 1
				}
			default:
				dst[idx] = uint8((int(state) + 1) % r.States)
			}
		}
	}
}

// Step returns a fresh grid holding the generation after g.
func Step(g *core.Grid, r Rule, b core.Boundary) *core.Grid {
	next := g.Like()
	Update(g, next, r, b)
	return next
}
