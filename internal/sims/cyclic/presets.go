package cyclic

import "cavis/internal/core"

// Preset is a named rule together with the seeding it looks best with.
type Preset struct {
	Key      string
	Name     string
	Rule     Rule
	Boundary core.Boundary
	Fill     core.FillType
}

var presets = []Preset{
	{
		Key:      "threeOneThree",
		Name:     "313",
		Rule:     Rule{AdvanceThreshold: 3, Neighborhood: Moore, Range: 1, States: 3},
		Boundary: core.BoundaryWrap,
		Fill:     core.FillUniformRandom,
	},
	{
		Key:      "basic",
		Name:     "CCA",
		Rule:     Rule{AdvanceThreshold: 1, Neighborhood: VonNeumann, Range: 1, States: 14},
		Boundary: core.BoundaryWrap,
		Fill:     core.FillUniformRandom,
	},
	{
		Key:      "imperfect",
		Name:     "Imperfect",
		Rule:     Rule{AdvanceThreshold: 2, Neighborhood: Moore, Range: 1, States: 4},
		Boundary: core.BoundaryWrap,
		Fill:     core.FillUniformRandom,
	},
	{
		Key:      "squarishSpirals",
		Name:     "Squarish Spirals",
		Rule:     Rule{AdvanceThreshold: 2, Neighborhood: VonNeumann, Range: 2, States: 6},
		Boundary: core.BoundaryWrap,
		Fill:     core.FillUniformRandom,
	},
}

// Presets returns the named cyclic rules in display order. The slice is a
// copy and may be modified by the caller.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}
