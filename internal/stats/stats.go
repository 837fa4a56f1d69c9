// Package stats measures how an automaton evolves: live cells, cells that
// changed between ticks and the dominant oscillation period.
package stats

import (
	"math"
	"math/cmplx"

	"cavis/internal/core"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

// Census counts how many cells hold each state.
func Census(g *core.Grid) []int {
	counts := make([]int, g.States())
	for _, v := range g.Cells() {
		if int(v) < len(counts) {
			counts[v]++
		}
	}
	return counts
}

// Alive counts the cells that are not in state 0.
func Alive(g *core.Grid) int {
	n := 0
	for _, v := range g.Cells() {
		if v != 0 {
			n++
		}
	}
	return n
}

// Changed counts cells whose state differs between a and b. Grids of
// different shapes differ everywhere.
func Changed(a, b *core.Grid) int {
	if !a.SameShape(b) {
		return max(len(a.Cells()), len(b.Cells()))
	}
	n := 0
	bc := b.Cells()
	for i, v := range a.Cells() {
		if bc[i] != v {
			n++
		}
	}
	return n
}

// Series holds one value per observed tick.
type Series struct {
	Ticks   []float64
	Alive   []float64
	Changed []float64
}

// Len returns the number of observations.
func (s Series) Len() int { return len(s.Ticks) }

// Recorder accumulates a Series from successive grids.
type Recorder struct {
	prev   *core.Grid
	series Series
}

// Observe records g as the state at tick. The first observation reports zero
// changed cells.
func (r *Recorder) Observe(tick int, g *core.Grid) {
	changed := 0
	if r.prev != nil {
		changed = Changed(r.prev, g)
	}
	r.series.Ticks = append(r.series.Ticks, float64(tick))
	r.series.Alive = append(r.series.Alive, float64(Alive(g)))
	r.series.Changed = append(r.series.Changed, float64(changed))
	if r.prev == nil || !r.prev.SameShape(g) {
		r.prev = g.Clone()
		return
	}
	copy(r.prev.Cells(), g.Cells())
}

// Series returns the observations so far. The slices are shared with the
// recorder until the next Observe.
func (r *Recorder) Series() Series { return r.series }

// Summary condenses a Series.
type Summary struct {
	Samples     int
	FinalAlive  int
	MeanAlive   float64
	StdAlive    float64
	MeanChanged float64
	StdChanged  float64
	// Period is the dominant oscillation period of the live count, or 0 when
	// the series is flat or too short.
	Period int
	// Static is true when the last observation changed no cells.
	Static bool
}

// Summarize computes a Summary. An empty series yields the zero Summary.
func Summarize(s Series) Summary {
	n := s.Len()
	if n == 0 {
		return Summary{}
	}
	sum := Summary{
		Samples:    n,
		FinalAlive: int(s.Alive[n-1]),
		Period:     DominantPeriod(s.Alive),
		Static:     n > 1 && s.Changed[n-1] == 0,
	}
	sum.MeanAlive, sum.StdAlive = meanStdDev(s.Alive)
	sum.MeanChanged, sum.StdChanged = meanStdDev(s.Changed)
	return sum
}

func meanStdDev(x []float64) (float64, float64) {
	if len(x) < 2 {
		return x[0], 0
	}
	return stat.MeanStdDev(x, nil)
}

// DominantPeriod returns the period, in samples, of the strongest non-constant
// frequency in values. It returns 0 for fewer than four samples or a signal
// without variation.
func DominantPeriod(values []float64) int {
	n := len(values)
	if n < 4 {
		return 0
	}
	mean := stat.Mean(values, nil)
	centred := make([]float64, n)
	for i, v := range values {
		centred[i] = v - mean
	}
	coeff := fourier.NewFFT(n).Coefficients(nil, centred)

	best, bestPower := 0, 0.0
	for k := 1; k < len(coeff); k++ {
		p := cmplx.Abs(coeff[k])
		if p > bestPower {
			best, bestPower = k, p
		}
	}
	if best == 0 || bestPower < 1e-9*float64(n) {
		return 0
	}
	return int(math.Round(float64(n) / float64(best)))
}
