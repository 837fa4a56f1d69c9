package lifelike

import (
	"testing"

	"cavis/internal/core"
)

var gameOfLife = Rule{Birth: core.NewPattern(3), Survival: core.NewPattern(2, 3)}

func expectAlive(t *testing.T, g *core.Grid, expects map[[2]int]bool, step string) {
	t.Helper()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			alive := g.At(x, y) == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", step, x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	for _, b := range []core.Boundary{core.BoundaryWrap, core.BoundaryClip} {
		g := core.NewGrid(5, 5, 2)
		g.Set(1, 2, 1)
		g.Set(2, 2, 1)
		g.Set(3, 2, 1)

		g = Step(g, gameOfLife, b)
		expectAlive(t, g, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, b.String()+" first step")

		g = Step(g, gameOfLife, b)
		expectAlive(t, g, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, b.String()+" second step")
	}
}

func TestBlinkerOnThreeByThreeTorus(t *testing.T) {
	// Every cell of a 3x3 torus neighbours all eight others, so the row of
	// three fills the board and then starves.
	g := core.NewGrid(3, 3, 2)
	g.Set(0, 1, 1)
	g.Set(1, 1, 1)
	g.Set(2, 1, 1)

	g = Step(g, gameOfLife, core.BoundaryWrap)
	for i, c := range g.Cells() {
		if c != 1 {
			t.Fatalf("first step: cell %d should be alive", i)
		}
	}
	g = Step(g, gameOfLife, core.BoundaryWrap)
	for i, c := range g.Cells() {
		if c != 0 {
			t.Fatalf("second step: cell %d should be dead", i)
		}
	}
}

func TestBlockStillLifeUnderClip(t *testing.T) {
	g := core.NewGrid(4, 4, 2)
	block := map[[2]int]bool{{0, 0}: true, {1, 0}: true, {0, 1}: true, {1, 1}: true}
	for p := range block {
		g.Set(p[0], p[1], 1)
	}
	for i := 0; i < 3; i++ {
		g = Step(g, gameOfLife, core.BoundaryClip)
		expectAlive(t, g, block, "block")
	}
}

func TestSeedsHasNoSurvivors(t *testing.T) {
	g := core.NewGrid(4, 4, 2)
	g.Set(1, 1, 1)
	g.Set(2, 1, 1)
	next := Step(g, Rule{Birth: core.NewPattern(2)}, core.BoundaryClip)
	if next.At(1, 1) != 0 || next.At(2, 1) != 0 {
		t.Fatal("live cells must die with an empty survival pattern")
	}
	if next.At(1, 0) != 1 || next.At(2, 2) != 1 {
		t.Fatal("cells touching both seeds should be born")
	}
}
