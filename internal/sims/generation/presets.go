package generation

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
		Key:      "belZhab",
		Name:     "Bel Zhab",
		Rule:     Rule{Birth: core.NewPattern(2, 3), Survival: core.NewPattern(2, 3), States: 8},
		Boundary: core.BoundaryWrap,
		Fill:     core.FillSplatsBinary,
	},
	{
		Key:      "bombers",
		Name:     "Bombers",
		Rule:     Rule{Birth: core.NewPattern(2, 4), Survival: core.NewPattern(3, 4, 5), States: 25},
		Boundary: core.BoundaryWrap,
		Fill:     core.FillSplatsBinary,
	},
	{
		Key:      "briansBrain",
		Name:     "Brian's Brain",
		Rule:     Rule{Birth: core.NewPattern(2), States: 3},
		Boundary: core.BoundaryWrap,
		Fill:     core.FillUniformRandomBinary,
	},
	{
		Key:      "faders",
		Name:     "Faders",
		Rule:     Rule{Birth: core.NewPattern(2), Survival: core.NewPattern(2), States: 25},
		Boundary: core.BoundaryWrap,
		Fill:     core.FillSplatsBinary,
	},
}

// Presets returns the named generation rules in display order. The slice is a
// copy and may be modified by the caller.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}
