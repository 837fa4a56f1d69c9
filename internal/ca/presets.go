package ca

import (
	"cavis/internal/core"
	"cavis/internal/sims/cyclic"
	"cavis/internal/sims/generation"
	"cavis/internal/sims/lifelike"
)

// Preset is a named rule of any family plus the seeding it is shown with.
type Preset struct {
	Key      string
	Name     string
	Rule     Rule
	Boundary core.Boundary
	Fill     core.FillType
}

// Presets returns the named rules of family f in display order. The slice is
// freshly built on every call.
func Presets(f core.Family) []Preset {
	var out []Preset
	switch f {
	case core.FamilyCyclic:
		for _, p := range cyclic.Presets() {
			out = append(out, Preset{Key: p.Key, Name: p.Name, Rule: p.Rule, Boundary: p.Boundary, Fill: p.Fill})
		}
	case core.FamilyGeneration:
		for _, p := range generation.Presets() {
			out = append(out, Preset{Key: p.Key, Name: p.Name, Rule: p.Rule, Boundary: p.Boundary, Fill: p.Fill})
		}
	case core.FamilyLifelike:
		for _, p := range lifelike.Presets() {
			out = append(out, Preset{Key: p.Key, Name: p.Name, Rule: p.Rule, Boundary: p.Boundary, Fill: p.Fill})
		}
	default:
		panic("ca: unknown family " + f.String())
	}
	return out
}

// LookupPreset finds a preset of family f by key.
func LookupPreset(f core.Family, key string) (Preset, bool) {
	for _, p := range Presets(f) {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}

// DefaultPreset is the preset the viewers start with.
func DefaultPreset() Preset {
	p, _ := LookupPreset(core.FamilyGeneration, "faders")
	return p
}

// NextPreset returns the preset after key within family f, wrapping around.
// An unknown key yields the family's first preset.
func NextPreset(f core.Family, key string) Preset {
	ps := Presets(f)
	for i, p := range ps {
		if p.Key == key {
			return ps[(i+1)%len(ps)]
		}
	}
	return ps[0]
}
