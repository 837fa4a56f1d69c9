package generation

import (
	"slices"
	"testing"

	"cavis/internal/core"
)

func TestRefractoryStatesDecay(t *testing.T) {
	g := core.NewGrid(1, 1, 5)
	g.Set(0, 0, 2)
	r := Rule{States: 5}

	want := []uint8{3, 4, 0, 0}
	for i, w := range want {
		g = Step(g, r, core.BoundaryClip)
		if got := g.At(0, 0); got != w {
			t.Fatalf("tick %d: state %d, want %d", i+1, got, w)
		}
	}
}

func TestFullCycleReturnsAfterFiveTicks(t *testing.T) {
	// A lone cell under Clip always sees zero live neighbours, so birth on 0
	// and no survival walks it through every state.
	g := core.NewGrid(1, 1, 5)
	g.Set(0, 0, 2)
	r := Rule{Birth: core.NewPattern(0), States: 5}

	want := []uint8{3, 4, 0, 1, 2}
	for i, w := range want {
		g = Step(g, r, core.BoundaryClip)
		if got := g.At(0, 0); got != w {
			t.Fatalf("tick %d: state %d, want %d", i+1, got, w)
		}
	}
}

func TestBriansBrainFiringCells(t *testing.T) {
	preset := Presets()
	var brain Rule
	for _, p := range preset {
		if p.Key == "briansBrain" {
			brain = p.Rule
		}
	}
	if brain.States != 3 {
		t.Fatal("expected Brian's Brain preset")
	}

	g := core.NewGrid(6, 6, 3)
	g.Set(2, 2, 1)
	g.Set(3, 2, 1)

	g = Step(g, brain, core.BoundaryClip)
	if g.At(2, 2) != 2 || g.At(3, 2) != 2 {
		t.Fatal("firing cells should start dying")
	}
	for _, p := range [][2]int{{2, 1}, {3, 1}, {2, 3}, {3, 3}} {
		if g.At(p[0], p[1]) != 1 {
			t.Fatalf("cell %v with two firing neighbours should fire", p)
		}
	}
	if g.At(1, 2) != 0 {
		t.Fatal("cell with one firing neighbour stays dead")
	}

	g = Step(g, brain, core.BoundaryClip)
	if g.At(2, 2) != 0 || g.At(3, 2) != 0 {
		t.Fatal("dying cells should be dead after one more tick")
	}
}

func TestRefractoryNeighboursDoNotCount(t *testing.T) {
	g := core.NewGrid(3, 3, 4)
	g.Set(0, 0, 2)
	g.Set(1, 0, 3)
	g.Set(2, 0, 1)
	r := Rule{Birth: core.NewPattern(2), States: 4}
	next := Step(g, r, core.BoundaryClip)
	if next.At(1, 1) != 0 {
		t.Fatal("only state 1 counts as a live neighbour")
	}
}

func TestStepDeterministic(t *testing.T) {
	base := core.CreateGrid(core.GridSpec{
		Size:   core.Size{W: 40, H: 40},
		States: 8,
		Fill:   core.FillSplatsBinary,
	}, core.NewRNG(4))
	r := Presets()[0].Rule
	a := Step(base, r, core.BoundaryWrap)
	b := Step(base.Clone(), r, core.BoundaryWrap)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("identical inputs produced different outputs")
	}
}
