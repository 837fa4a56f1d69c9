// Package session owns the live grid of a running automaton and swaps it
// wholesale every tick.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cavis/internal/ca"
	"cavis/internal/core"
	"cavis/internal/sims/cyclic"
	"cavis/internal/sims/generation"
	"cavis/internal/sims/lifelike"
)

// ErrMalformedRulestring is returned when a rulestring does not parse for the
// active family. The session keeps its previous rule.
var ErrMalformedRulestring = errors.New("malformed rulestring")

// Setup describes the initial state of a session.
type Setup struct {
	Size     core.Size
	Rule     ca.Rule
	Boundary core.Boundary
	Fill     core.FillType
	Seed     int64
	// Splats overrides the default splat tuning when Count is positive.
	Splats core.SplatOptions
}

// Session advances one grid under one rule. It is not safe for concurrent use.
type Session struct {
	size   core.Size
	rule   ca.Rule
	opts   ca.Options
	fill   core.FillType
	splats core.SplatOptions
	seed   int64
	tick   int

	cur *core.Grid
	nxt *core.Grid
}

// New creates a session and seeds its grid.
func New(s Setup) *Session {
	if s.Rule == nil {
		p := ca.DefaultPreset()
		s.Rule, s.Boundary, s.Fill = p.Rule, p.Boundary, p.Fill
	}
	sess := &Session{
		size:   s.Size,
		rule:   ca.Copy(s.Rule),
		opts:   ca.Options{Boundary: s.Boundary},
		fill:   s.Fill,
		splats: s.Splats,
		seed:   s.Seed,
	}
	sess.Reset(s.Seed)
	return sess
}

// Name returns the family and canonical rulestring of the active rule.
func (s *Session) Name() string {
	return strings.ToLower(s.rule.Family().String()) + " " + ca.Rulestring(s.rule)
}

// Size returns the grid dimensions.
func (s *Session) Size() core.Size { return s.cur.Size() }

// States reports the number of states of the active rule.
func (s *Session) States() int { return s.cur.States() }

// Cells exposes the current grid values.
func (s *Session) Cells() []uint8 { return s.cur.Cells() }

// Grid exposes the current grid. It is replaced on the next Step.
func (s *Session) Grid() *core.Grid { return s.cur }

// Tick counts steps since the last reset.
func (s *Session) Tick() int { return s.tick }

// Seed returns the seed of the last reset.
func (s *Session) Seed() int64 { return s.seed }

// Rule returns a copy of the active rule, safe to edit independently.
func (s *Session) Rule() ca.Rule { return ca.Copy(s.rule) }

// Family returns the family of the active rule.
func (s *Session) Family() core.Family { return s.rule.Family() }

// Boundary returns the active boundary policy.
func (s *Session) Boundary() core.Boundary { return s.opts.Boundary }

// Fill returns the fill used on reset.
func (s *Session) Fill() core.FillType { return s.fill }

// Reset reseeds the grid.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.tick = 0
	s.cur = core.CreateGrid(core.GridSpec{
		Size:   s.size,
		States: ca.StateCount(s.rule),
		Fill:   s.fill,
		Splats: s.splats,
	}, core.NewRNG(seed))
	s.nxt = s.cur.Like()
}

// Step advances the automaton by one tick. The next generation is computed
// entirely from the current grid before the two buffers swap.
func (s *Session) Step() {
	ca.Update(s.cur, s.nxt, s.rule, s.opts)
	s.cur, s.nxt = s.nxt, s.cur
	s.tick++
}

// SetBoundary changes the boundary policy without touching the grid.
func (s *Session) SetBoundary(b core.Boundary) { s.opts.Boundary = b }

// SetRule installs a rule with its seeding and boundary, then reseeds the grid
// with the current seed.
func (s *Session) SetRule(rule ca.Rule, fill core.FillType, b core.Boundary) {
	s.rule = ca.Copy(rule)
	s.fill = fill
	s.opts.Boundary = b
	s.Reset(s.seed)
}

// ApplyPreset installs a preset.
func (s *Session) ApplyPreset(p ca.Preset) {
	s.SetRule(p.Rule, p.Fill, p.Boundary)
}

// ApplyRulestring parses text for the active family and installs the result
// with the family's default seeding. On failure the rule is unchanged.
func (s *Session) ApplyRulestring(text string) error {
	return s.ApplyFamilyRulestring(s.rule.Family(), text)
}

// ApplyFamilyRulestring is ApplyRulestring for an explicit family.
func (s *Session) ApplyFamilyRulestring(f core.Family, text string) error {
	rule, ok := ca.ParseRulestring(f, text)
	if !ok {
		return fmt.Errorf("%w for %s: %q", ErrMalformedRulestring, f, text)
	}
	s.SetRule(rule, ca.DefaultFill(f), ca.DefaultBoundary(f))
	return nil
}

// editRule installs an edited rule. The grid is kept unless the state count
// changed, in which case it is reseeded so every cell stays in range.
func (s *Session) editRule(rule ca.Rule) {
	reseed := ca.StateCount(rule) != ca.StateCount(s.rule)
	s.rule = rule
	if reseed {
		s.Reset(s.seed)
	}
}

// PatternKind selects which pattern TogglePattern edits.
type PatternKind uint8

const (
	PatternBirth PatternKind = iota
	PatternSurvival
)

// TogglePattern flips membership of count in the birth or survival pattern of
// a Generation or Lifelike rule. It reports false for cyclic rules.
func (s *Session) TogglePattern(kind PatternKind, count int) bool {
	if count < 0 || count > core.MaxNeighborCount {
		return false
	}
	switch r := s.rule.(type) {
	case generation.Rule:
		if kind == PatternBirth {
			s.editRule(r.WithBirth(r.Birth.Toggle(count)))
		} else {
			s.editRule(r.WithSurvival(r.Survival.Toggle(count)))
		}
	case lifelike.Rule:
		if kind == PatternBirth {
			s.editRule(r.WithBirth(r.Birth.Toggle(count)))
		} else {
			s.editRule(r.WithSurvival(r.Survival.Toggle(count)))
		}
	default:
		return false
	}
	return true
}

const (
	keyStates    = "states"
	keyThreshold = "threshold"
	keyRange     = "range"
)

// ParameterControls lists the integer parameters of the active rule.
func (s *Session) ParameterControls() []core.ParameterControl {
	switch s.rule.(type) {
	case cyclic.Rule:
		return []core.ParameterControl{
			{Key: keyRange, Label: "Range", Step: 1, Min: 1, Max: cyclic.MaxRange},
			{Key: keyThreshold, Label: "Threshold", Step: 1, Min: 1, Max: 4 * cyclic.MaxRange * (cyclic.MaxRange + 1)},
			{Key: keyStates, Label: "States", Step: 1, Min: 2, Max: core.MaxStates},
		}
	case generation.Rule:
		return []core.ParameterControl{
			{Key: keyStates, Label: "States", Step: 1, Min: 3, Max: core.MaxStates},
		}
	default:
		return nil
	}
}

// SetIntParameter edits one integer parameter of the active rule. Values that
// would make the rule invalid are refused.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch r := s.rule.(type) {
	case cyclic.Rule:
		var next cyclic.Rule
		switch key {
		case keyRange:
			next = r.WithRange(value)
		case keyThreshold:
			next = r.WithAdvanceThreshold(value)
		case keyStates:
			next = r.WithStates(value)
		default:
			return false
		}
		if next.Validate() != nil {
			return false
		}
		s.editRule(next)
		return true
	case generation.Rule:
		if key != keyStates {
			return false
		}
		next := r.WithStates(value)
		if next.Validate() != nil {
			return false
		}
		s.editRule(next)
		return true
	}
	return false
}

// Parameters reports the active configuration for display.
func (s *Session) Parameters() core.ParameterSnapshot {
	rule := []core.Parameter{
		{Key: "family", Label: "Family", Type: core.ParamTypeText, Value: s.rule.Family().String()},
		{Key: "rulestring", Label: "Rule", Type: core.ParamTypeText, Value: ca.Rulestring(s.rule)},
	}
	switch r := s.rule.(type) {
	case cyclic.Rule:
		rule = append(rule,
			intParam(keyRange, "Range", r.Range),
			intParam(keyThreshold, "Threshold", r.AdvanceThreshold),
			intParam(keyStates, "States", r.States),
			core.Parameter{Key: "neighborhood", Label: "Neighborhood", Type: core.ParamTypeText, Value: r.Neighborhood.String()},
		)
	case generation.Rule:
		rule = append(rule,
			patternParam("birth", "Birth", r.Birth),
			patternParam("survival", "Survival", r.Survival),
			intParam(keyStates, "States", r.States),
		)
	case lifelike.Rule:
		rule = append(rule,
			patternParam("birth", "Birth", r.Birth),
			patternParam("survival", "Survival", r.Survival),
		)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Rule", Params: rule},
		{
			Name: "Simulation",
			Params: []core.Parameter{
				{Key: "boundary", Label: "Boundary", Type: core.ParamTypeText, Value: s.opts.Boundary.String()},
				{Key: "fill", Label: "Fill", Type: core.ParamTypeText, Value: s.fill.String()},
				intParam("tick", "Tick", s.tick),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.seed, 10)},
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func patternParam(key, label string, p core.Pattern) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypePattern, Value: p.String()}
}
