package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// FillType selects how a fresh grid is seeded.
type FillType uint8

const (
	// FillUniformRandom draws every cell from [0, states).
	FillUniformRandom FillType = iota
	// FillUniformRandomBinary draws every cell from {0, 1}.
	FillUniformRandomBinary
	// FillSplats stamps gaussian clusters of disks with states from [0, states).
	FillSplats
	// FillSplatsBinary stamps gaussian clusters of disks with states from {0, 1}.
	FillSplatsBinary
)

// ErrUnknownFillType is returned when a fill type name cannot be parsed.
var ErrUnknownFillType = errors.New("unknown fill type")

var fillNames = [...]string{
	FillUniformRandom:       "UniformRandom",
	FillUniformRandomBinary: "UniformRandomBinary",
	FillSplats:              "Splats",
	FillSplatsBinary:        "SplatsBinary",
}

// FillTypes lists every fill type in declaration order.
func FillTypes() []FillType {
	return []FillType{FillUniformRandom, FillUniformRandomBinary, FillSplats, FillSplatsBinary}
}

func (f FillType) String() string {
	if int(f) < len(fillNames) {
		return fillNames[f]
	}
	return fmt.Sprintf("FillType(%d)", uint8(f))
}

// Binary reports whether the fill only produces states 0 and 1.
func (f FillType) Binary() bool {
	return f == FillUniformRandomBinary || f == FillSplatsBinary
}

// ParseFillType accepts a fill type name, ignoring case and surrounding space.
func ParseFillType(s string) (FillType, error) {
	s = strings.TrimSpace(s)
	for i, name := range fillNames {
		if strings.EqualFold(s, name) {
			return FillType(i), nil
		}
	}
	return FillUniformRandom, fmt.Errorf("%w %q", ErrUnknownFillType, s)
}

// SplatOptions tunes the clustered seeding used by the splat fills.
type SplatOptions struct {
	Count         int
	DropsPerSplat int
	DropRadius    int
	Spread        float64
}

// DefaultSplatOptions scales the number of splats with the grid area.
func DefaultSplatOptions(size Size) SplatOptions {
	count := size.W * size.H / 8192
	if count < 1 {
		count = 1
	}
	return SplatOptions{Count: count, DropsPerSplat: 24, DropRadius: 3, Spread: 8}
}

// GridSpec describes a grid to create with CreateGrid.
type GridSpec struct {
	Size   Size
	States int
	Fill   FillType
	// Splats overrides DefaultSplatOptions when Count is positive.
	Splats SplatOptions
}

// CreateGrid allocates a grid and seeds it according to gs.
func CreateGrid(gs GridSpec, rng *RNG) *Grid {
	g := NewGrid(gs.Size.W, gs.Size.H, gs.States)
	opts := gs.Splats
	if opts.Count <= 0 {
		opts = DefaultSplatOptions(g.Size())
	}
	Fill(g, gs.Fill, rng, opts)
	return g
}

// Fill overwrites every cell of g using the requested strategy.
func Fill(g *Grid, fill FillType, rng *RNG, opts SplatOptions) {
	states := g.states
	if fill.Binary() {
		states = 2
	}
	switch fill {
	case FillUniformRandom, FillUniformRandomBinary:
		for i := range g.data {
			g.data[i] = rng.Uint8n(states)
		}
	case FillSplats, FillSplatsBinary:
		g.Clear()
		splat(g, states, rng, opts)
	default:
		panic("core: unknown fill type " + fill.String())
	}
}

func splat(g *Grid, states int, rng *RNG, opts SplatOptions) {
	for s := 0; s < opts.Count; s++ {
		cx := float64(rng.IntN(g.W))
		cy := float64(rng.IntN(g.H))
		for d := 0; d < opts.DropsPerSplat; d++ {
			x := int(math.Round(rng.Normal(cx, opts.Spread)))
			y := int(math.Round(rng.Normal(cy, opts.Spread)))
			stampDisk(g, x, y, opts.DropRadius, rng.Uint8n(states))
		}
	}
}

// stampDisk writes value into every cell within radius of (cx, cy), clipping
// the disk's bounding box to the grid first.
func stampDisk(g *Grid, cx, cy, radius int, value uint8) {
	if radius < 0 {
		return
	}
	minX := Clamp(cx-radius, 0, g.W-1)
	maxX := Clamp(cx+radius, 0, g.W-1)
	minY := Clamp(cy-radius, 0, g.H-1)
	maxY := Clamp(cy+radius, 0, g.H-1)
	if cx+radius < 0 || cy+radius < 0 || cx-radius >= g.W || cy-radius >= g.H {
		return
	}
	r2 := radius * radius
	for y := minY; y <= maxY; y++ {
		dy := y - cy
		for x := minX; x <= maxX; x++ {
			dx := x - cx
			if dx*dx+dy*dy > r2 {
				continue
			}
			g.data[y*g.W+x] = value
		}
	}
}
