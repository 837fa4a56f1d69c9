package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Area returns W*H.
func (s Size) Area() int { return s.W * s.H }

// Sim defines the minimal contract the viewers drive.
type Sim interface {
	Name() string
	Size() Size
	States() int
	Reset(seed int64)
	Step()
	Cells() []uint8
}
