package cyclic

import (
	"slices"
	"testing"

	"cavis/internal/core"
)

func rowGrid(states int, values ...uint8) *core.Grid {
	g := core.NewGrid(len(values), 1, states)
	copy(g.Cells(), values)
	return g
}

func TestStepAdvancesOnMatchingNeighbor(t *testing.T) {
	r := Rule{AdvanceThreshold: 1, Neighborhood: Moore, Range: 1, States: 3}

	clipped := Step(rowGrid(3, 0, 1, 2), r, core.BoundaryClip)
	if got := clipped.Cells(); !slices.Equal(got, []uint8{1, 2, 2}) {
		t.Fatalf("clip step = %v, want [1 2 2]", got)
	}

	wrapped := Step(rowGrid(3, 0, 1, 2), r, core.BoundaryWrap)
	if got := wrapped.Cells(); !slices.Equal(got, []uint8{1, 2, 0}) {
		t.Fatalf("wrap step = %v, want [1 2 0]", got)
	}
}

func TestStepLeavesInputUntouched(t *testing.T) {
	g := rowGrid(3, 0, 1, 2)
	Step(g, Rule{AdvanceThreshold: 1, Neighborhood: Moore, Range: 1, States: 3}, core.BoundaryWrap)
	if !slices.Equal(g.Cells(), []uint8{0, 1, 2}) {
		t.Fatal("Step must not mutate its input grid")
	}
}

func TestNeighborhoodKernels(t *testing.T) {
	orthogonal := core.NewGrid(5, 5, 2)
	for _, p := range [][2]int{{2, 1}, {1, 2}, {3, 2}, {2, 3}} {
		orthogonal.Set(p[0], p[1], 1)
	}
	diagonal := core.NewGrid(5, 5, 2)
	for _, p := range [][2]int{{1, 1}, {3, 1}, {1, 3}, {3, 3}} {
		diagonal.Set(p[0], p[1], 1)
	}

	vn := Rule{AdvanceThreshold: 4, Neighborhood: VonNeumann, Range: 1, States: 2}
	moore := vn.WithNeighborhood(Moore)

	if Step(orthogonal, vn, core.BoundaryClip).At(2, 2) != 1 {
		t.Fatal("von neumann should see the four orthogonal neighbours")
	}
	if Step(diagonal, vn, core.BoundaryClip).At(2, 2) != 0 {
		t.Fatal("von neumann must ignore diagonal neighbours")
	}
	if Step(diagonal, moore, core.BoundaryClip).At(2, 2) != 1 {
		t.Fatal("moore should see diagonal neighbours")
	}
}

func TestStepDeterministic(t *testing.T) {
	base := core.CreateGrid(core.GridSpec{
		Size:   core.Size{W: 48, H: 32},
		States: 6,
		Fill:   core.FillUniformRandom,
	}, core.NewRNG(11))
	r := Rule{AdvanceThreshold: 2, Neighborhood: VonNeumann, Range: 2, States: 6}

	a, b := base.Clone(), base.Clone()
	for i := 0; i < 5; i++ {
		a = Step(a, r, core.BoundaryMirrorWrap)
		b = Step(b, r, core.BoundaryMirrorWrap)
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("two runs from identical input diverged")
	}
	for _, c := range a.Cells() {
		if int(c) >= r.States {
			t.Fatalf("state %d escaped the rule's range", c)
		}
	}
}

func TestWithConstructorsCopy(t *testing.T) {
	live := EmptyRule()
	edited := live.WithStates(9).WithRange(3).WithAdvanceThreshold(5)
	if live != EmptyRule() {
		t.Fatal("With* must not modify the receiver")
	}
	if edited.States != 9 || edited.Range != 3 || edited.AdvanceThreshold != 5 {
		t.Fatalf("unexpected edited rule %+v", edited)
	}
}

func TestPresetsAreValid(t *testing.T) {
	ps := Presets()
	if len(ps) == 0 {
		t.Fatal("expected cyclic presets")
	}
	for _, p := range ps {
		if err := p.Rule.Validate(); err != nil {
			t.Fatalf("preset %s: %v", p.Key, err)
		}
	}
	ps[0].Name = "mutated"
	if Presets()[0].Name == "mutated" {
		t.Fatal("Presets must return a copy")
	}
}
