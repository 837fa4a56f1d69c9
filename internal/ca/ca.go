// Package ca ties the cyclic, generation and lifelike families together
// behind a single rule type so callers never switch on the family themselves.
package ca

import (
	"cavis/internal/core"
	"cavis/internal/sims/cyclic"
	"cavis/internal/sims/generation"
	"cavis/internal/sims/lifelike"
)

// Rule is implemented by cyclic.Rule, generation.Rule and lifelike.Rule.
type Rule interface {
	Family() core.Family
	StateCount() int
	Rulestring() string
}

// Options carries the per-session settings every update needs.
type Options struct {
	Boundary core.Boundary
}

// Engine bundles the operations a family provides.
type Engine interface {
	Family() core.Family
	Update(cur, next *core.Grid, rule Rule, opts Options)
	StateCount(rule Rule) int
	Parse(text string) (Rule, bool)
	Format(rule Rule) string
	Copy(rule Rule) Rule
	Empty() Rule
	DefaultFill() core.FillType
}

var engines = [...]Engine{
	core.FamilyCyclic:     cyclicEngine{},
	core.FamilyGeneration: generationEngine{},
	core.FamilyLifelike:   lifelikeEngine{},
}

// EngineFor returns the engine of a family. It panics for values outside
// core.Families().
func EngineFor(f core.Family) Engine {
	if int(f) >= len(engines) {
		panic("ca: unknown family " + f.String())
	}
	return engines[f]
}

// Update writes the generation after cur into next.
func Update(cur, next *core.Grid, rule Rule, opts Options) {
	EngineFor(rule.Family()).Update(cur, next, rule, opts)
}

// Step returns a fresh grid holding the generation after g.
func Step(g *core.Grid, rule Rule, opts Options) *core.Grid {
	next := g.Like()
	Update(g, next, rule, opts)
	return next
}

// StateCount reports how many states grids driven by rule need.
func StateCount(rule Rule) int {
	return EngineFor(rule.Family()).StateCount(rule)
}

// ParseRulestring parses text with the codec of family f.
func ParseRulestring(f core.Family, text string) (Rule, bool) {
	return EngineFor(f).Parse(text)
}

// Rulestring formats rule with its family's codec.
func Rulestring(rule Rule) string {
	return EngineFor(rule.Family()).Format(rule)
}

// Copy returns an independent copy of rule.
func Copy(rule Rule) Rule {
	return EngineFor(rule.Family()).Copy(rule)
}

// EmptyRule returns the default rule shown when switching to family f.
func EmptyRule(f core.Family) Rule {
	return EngineFor(f).Empty()
}

// DefaultFill is the seeding used for rules entered by hand.
func DefaultFill(f core.Family) core.FillType {
	return EngineFor(f).DefaultFill()
}

// DefaultBoundary is the boundary used for rules entered by hand.
func DefaultBoundary(core.Family) core.Boundary {
	return core.BoundaryWrap
}

type cyclicEngine struct{}

func (cyclicEngine) Family() core.Family { return core.FamilyCyclic }

func (cyclicEngine) Update(cur, next *core.Grid, rule Rule, opts Options) {
	cyclic.Update(cur, next, rule.(cyclic.Rule), opts.Boundary)
}

func (cyclicEngine) StateCount(rule Rule) int { return rule.(cyclic.Rule).States }

func (cyclicEngine) Parse(text string) (Rule, bool) {
	r, ok := cyclic.Parse(text)
	if !ok {
		return nil, false
	}
	return r, true
}

func (cyclicEngine) Format(rule Rule) string { return cyclic.Format(rule.(cyclic.Rule)) }

func (cyclicEngine) Copy(rule Rule) Rule { return cyclic.Copy(rule.(cyclic.Rule)) }

func (cyclicEngine) Empty() Rule { return cyclic.EmptyRule() }

func (cyclicEngine) DefaultFill() core.FillType { return core.FillUniformRandom }

type generationEngine struct{}

func (generationEngine) Family() core.Family { return core.FamilyGeneration }

func (generationEngine) Update(cur, next *core.Grid, rule Rule, opts Options) {
	generation.Update(cur, next, rule.(generation.Rule), opts.Boundary)
}

func (generationEngine) StateCount(rule Rule) int { return rule.(generation.Rule).States }

func (generationEngine) Parse(text string) (Rule, bool) {
	r, ok := generation.Parse(text)
	if !ok {
		return nil, false
	}
	return r, true
}

func (generationEngine) Format(rule Rule) string {
	return generation.Format(rule.(generation.Rule))
}

func (generationEngine) Copy(rule Rule) Rule { return generation.Copy(rule.(generation.Rule)) }

func (generationEngine) Empty() Rule { return generation.EmptyRule() }

func (generationEngine) DefaultFill() core.FillType { return core.FillSplatsBinary }

type lifelikeEngine struct{}

func (lifelikeEngine) Family() core.Family { return core.FamilyLifelike }

func (lifelikeEngine) Update(cur, next *core.Grid, rule Rule, opts Options) {
	lifelike.Update(cur, next, rule.(lifelike.Rule), opts.Boundary)
}

func (lifelikeEngine) StateCount(Rule) int { return 2 }

func (lifelikeEngine) Parse(text string) (Rule, bool) {
	r, ok := lifelike.Parse(text)
	if !ok {
		return nil, false
	}
	return r, true
}

func (lifelikeEngine) Format(rule Rule) string { return lifelike.Format(rule.(lifelike.Rule)) }

func (lifelikeEngine) Copy(rule Rule) Rule { return lifelike.Copy(rule.(lifelike.Rule)) }

func (lifelikeEngine) Empty() Rule { return lifelike.EmptyRule() }

func (lifelikeEngine) DefaultFill() core.FillType { return core.FillSplatsBinary }
