package stats

import (
	"math"
	"testing"

	"cavis/internal/core"
	"cavis/internal/sims/lifelike"

	"github.com/stretchr/testify/require"
)

func TestCensusAndAlive(t *testing.T) {
	g := core.NewGrid(3, 2, 4)
	copy(g.Cells(), []uint8{0, 1, 2, 3, 3, 0})
	require.Equal(t, []int{2, 1, 1, 2}, Census(g))
	require.Equal(t, 4, Alive(g))
}

func TestChanged(t *testing.T) {
	a := core.NewGrid(2, 2, 2)
	b := a.Clone()
	require.Zero(t, Changed(a, b))
	b.Set(1, 1, 1)
	require.Equal(t, 1, Changed(a, b))
	require.Equal(t, 6, Changed(a, core.NewGrid(3, 2, 2)))
}

func TestRecorderBlinker(t *testing.T) {
	rule, ok := lifelike.Parse("23/3")
	require.True(t, ok)
	g := core.NewGrid(5, 5, 2)
	for x := 1; x <= 3; x++ {
		g.Set(x, 2, 1)
	}

	var r Recorder
	for tick := 0; tick < 16; tick++ {
		r.Observe(tick, g)
		g = lifelike.Step(g, rule, core.BoundaryWrap)
	}
	s := r.Series()
	require.Equal(t, 16, s.Len())
	require.Zero(t, s.Changed[0])
	for i := 1; i < s.Len(); i++ {
		require.Equal(t, 3.0, s.Alive[i])
		require.Equal(t, 4.0, s.Changed[i], "tick %d", i)
	}

	sum := Summarize(s)
	require.Equal(t, 3, sum.FinalAlive)
	require.InDelta(t, 3.0, sum.MeanAlive, 1e-9)
	require.InDelta(t, 0.0, sum.StdAlive, 1e-9)
	require.Zero(t, sum.Period)
	require.False(t, sum.Static)
}

func TestSummarizeStatic(t *testing.T) {
	s := Series{Ticks: []float64{0, 1}, Alive: []float64{4, 4}, Changed: []float64{0, 0}}
	require.True(t, Summarize(s).Static)
	require.Equal(t, Summary{}, Summarize(Series{}))
}

func TestDominantPeriod(t *testing.T) {
	values := make([]float64, 64)
	for i := range values {
		values[i] = 100 + 10*math.Sin(2*math.Pi*float64(i)/8)
	}
	require.Equal(t, 8, DominantPeriod(values))

	flat := []float64{5, 5, 5, 5, 5, 5}
	require.Zero(t, DominantPeriod(flat))
	require.Zero(t, DominantPeriod([]float64{1, 2}))
}
