package lifelike

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
		Key:      "gameOfLife",
		Name:     "Game Of Life",
		Rule:     Rule{Birth: core.NewPattern(3), Survival: core.NewPattern(2, 3)},
		Boundary: core.BoundaryWrap,
		Fill:     core.FillSplatsBinary,
	},
	{
		Key:      "highLife",
		Name:     "HighLife",
		Rule:     Rule{Birth: core.NewPattern(3, 6), Survival: core.NewPattern(2, 3)},
		Boundary: core.BoundaryWrap,
		Fill:     core.FillSplatsBinary,
	},
	{
		Key:      "seeds",
		Name:     "Seeds",
		Rule:     Rule{Birth: core.NewPattern(2)},
		Boundary: core.BoundaryWrap,
		Fill:     core.FillSplatsBinary,
	},
	{
		Key:      "dayAndNight",
		Name:     "Day & Night",
		Rule:     Rule{Birth: core.NewPattern(3, 6, 7, 8), Survival: core.NewPattern(3, 4, 6, 7, 8)},
		Boundary: core.BoundaryWrap,
		Fill:     core.FillUniformRandomBinary,
	},
}

// Presets returns the named lifelike rules in display order. The slice is a
// copy and may be modified by the caller.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}
