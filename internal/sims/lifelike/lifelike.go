package lifelike

import "cavis/internal/core"

// Rule parameterises a two-state Life-like automaton.
type Rule struct {
	Birth    core.Pattern
	Survival core.Pattern
}

// EmptyRule is the starting point when switching to the lifelike family.
func EmptyRule() Rule { return Rule{} }

// Copy returns an independent copy of r.
func Copy(r Rule) Rule { return r }

// Family identifies the rule as Life-like.
func (r Rule) Family() core.Family { return core.FamilyLifelike }

// StateCount is always 2.
func (r Rule) StateCount() int { return 2 }

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

// Update computes the next generation of cur into next. Both grids must have
// the same shape; next is fully overwritten and cur is only read.
func Update(cur, next *core.Grid, r Rule, b core.Boundary) {
	w, h := cur.W, cur.H
	src := cur.Cells()
	dst := next.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			neighbors := core.CountAlive(cur, x, y, b)
			pattern := r.Birth
			if src[idx] != 0 {
				pattern = r.Survival
			}
			dst[idx] = 0
			if pattern.Has(neighbors) {
				dst[idx] = 1
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
