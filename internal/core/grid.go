package core

// MaxStates bounds the number of distinct cell states so a state fits in a byte.
const MaxStates = 256

// Grid stores a 2D grid of cell states in row-major order. Every value is a
// state index in [0, States()).
type Grid struct {
	W, H   int
	states int
	data   []uint8
}

// NewGrid allocates an all-zero grid with the given dimensions and state count.
func NewGrid(w, h, states int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if states < 1 {
		states = 1
	}
	if states > MaxStates {
		states = MaxStates
	}
	return &Grid{W: w, H: h, states: states, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// States reports how many distinct states a cell may hold.
func (g *Grid) States() int { return g.states }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At returns the state at (x, y). Coordinates must be in range.
func (g *Grid) At(x, y int) uint8 { return g.data[y*g.W+x] }

// Set stores a state at (x, y). Coordinates must be in range.
func (g *Grid) Set(x, y int, v uint8) { g.data[y*g.W+x] = v }

// Contains reports whether (x, y) lies inside the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	return Mod(x, g.W), Mod(y, g.H)
}

// Mirror reflects coordinates at tile edges: even tiles read forward, odd
// tiles read the grid reversed.
func (g *Grid) Mirror(x, y int) (int, int) {
	return mirror(x, g.W), mirror(y, g.H)
}

func mirror(v, n int) int {
	if FloorDiv(v, n)&1 == 0 {
		return Mod(v, n)
	}
	return Mod(n-v-1, n)
}

// Sample reads the state at (x, y) resolving out-of-range coordinates with the
// boundary policy. ok is false only for Clip samples outside the grid.
func (g *Grid) Sample(x, y int, b Boundary) (state uint8, ok bool) {
	switch b {
	case BoundaryClip:
		if !g.Contains(x, y) {
			return 0, false
		}
	case BoundaryWrap:
		x, y = g.Wrap(x, y)
	case BoundaryMirrorWrap:
		x, y = g.Mirror(x, y)
	default:
		panic("core: unknown boundary " + b.String())
	}
	return g.data[y*g.W+x], true
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, states: g.states, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Like allocates an all-zero grid with the same shape and state count.
func (g *Grid) Like() *Grid {
	return &Grid{W: g.W, H: g.H, states: g.states, data: make([]uint8, len(g.data))}
}

// SameShape reports whether two grids can be used as a double buffer.
func (g *Grid) SameShape(o *Grid) bool {
	return o != nil && g.W == o.W && g.H == o.H && len(g.data) == len(o.data)
}
