package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"cavis/internal/ca"
	"cavis/internal/core"
	"cavis/internal/session"
	"cavis/internal/settings"
)

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	Family     string
	Preset     string
	Rulestring string
	Boundary   string
	Fill       string
	Settings   string
	ColorA     string
	ColorB     string

	W        int
	H        int
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Family:   core.FamilyGeneration.String(),
		W:        256,
		H:        192,
		Scale:    3,
		TPS:      10,
		Seed:     42,
		HUDWidth: 240,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Family, "family", c.Family, "rule family: Cyclic, Generation or Lifelike")
	fs.StringVar(&c.Preset, "preset", c.Preset, "preset key within the family (default: family's first preset)")
	fs.StringVar(&c.Rulestring, "rule", c.Rulestring, "rulestring for the family; overrides -preset")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "boundary policy: Clip, Wrap or MirrorWrap")
	fs.StringVar(&c.Fill, "fill", c.Fill, "initial fill: UniformRandom, UniformRandomBinary, Splats or SplatsBinary")
	fs.StringVar(&c.Settings, "settings", c.Settings, "shared settings query; overrides rule flags")
	fs.StringVar(&c.ColorA, "color-a", c.ColorA, "hex colour of state 0")
	fs.StringVar(&c.ColorB, "color-b", c.ColorB, "hex colour of the last state")
	fs.IntVar(&c.W, "w", c.W, "grid width in cells")
	fs.IntVar(&c.H, "h", c.H, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels, 0 to hide")
}

// FromMap overlays flag-style key/value pairs. Numeric values that do not parse
// or are out of range are ignored.
func (c *Config) FromMap(m map[string]string) {
	for key, dst := range map[string]*string{
		"family":   &c.Family,
		"preset":   &c.Preset,
		"rule":     &c.Rulestring,
		"boundary": &c.Boundary,
		"fill":     &c.Fill,
		"settings": &c.Settings,
		"color-a":  &c.ColorA,
		"color-b":  &c.ColorB,
	} {
		if v, ok := m[key]; ok {
			*dst = v
		}
	}
	for key, dst := range map[string]*int{
		"w":     &c.W,
		"h":     &c.H,
		"scale": &c.Scale,
		"tps":   &c.TPS,
	} {
		if v, ok := m[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	if v, ok := m["hud"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.HUDWidth = parsed
		}
	}
	if v, ok := m["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
}

// ParseArgs splits key=value arguments into a map for FromMap. Arguments
// without '=' are returned separately.
func ParseArgs(args []string) (map[string]string, []string) {
	m := map[string]string{}
	var rest []string
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" {
			rest = append(rest, a)
			continue
		}
		m[k] = v
	}
	return m, rest
}

// Resolve turns the configuration into concrete viewer settings. A settings
// query wins over the individual rule flags; -rule wins over -preset; explicit
// -boundary, -fill and colour flags override whatever was chosen before them.
func (c *Config) Resolve() (settings.Settings, error) {
	var s settings.Settings
	if c.Settings != "" {
		decoded, err := settings.Decode(c.Settings)
		if err != nil {
			return settings.Settings{}, err
		}
		s = decoded
	} else {
		family, err := core.ParseFamily(c.Family)
		if err != nil {
			return settings.Settings{}, err
		}
		switch {
		case c.Rulestring != "":
			rule, ok := ca.ParseRulestring(family, c.Rulestring)
			if !ok {
				return settings.Settings{}, fmt.Errorf("%w for %s: %q", session.ErrMalformedRulestring, family, c.Rulestring)
			}
			s = settings.FromPreset(ca.Preset{Rule: rule, Boundary: ca.DefaultBoundary(family), Fill: ca.DefaultFill(family)})
		case c.Preset != "":
			p, ok := ca.LookupPreset(family, c.Preset)
			if !ok {
				return settings.Settings{}, fmt.Errorf("unknown %s preset %q", family, c.Preset)
			}
			s = settings.FromPreset(p)
		default:
			s = settings.FromPreset(defaultPreset(family))
		}
	}

	if c.Boundary != "" {
		b, err := core.ParseBoundary(c.Boundary)
		if err != nil {
			return settings.Settings{}, err
		}
		s.Boundary = b
	}
	if c.Fill != "" {
		f, err := core.ParseFillType(c.Fill)
		if err != nil {
			return settings.Settings{}, err
		}
		s.Fill = f
	}
	if c.ColorA != "" {
		col, err := settings.ParseHexTriplet(c.ColorA)
		if err != nil {
			return settings.Settings{}, fmt.Errorf("color-a: %w", err)
		}
		s.ColorA = col
	}
	if c.ColorB != "" {
		col, err := settings.ParseHexTriplet(c.ColorB)
		if err != nil {
			return settings.Settings{}, fmt.Errorf("color-b: %w", err)
		}
		s.ColorB = col
	}
	return s, nil
}

// Setup combines resolved settings with the grid size and seed.
func (c *Config) Setup(s settings.Settings) session.Setup {
	return session.Setup{
		Size:     core.Size{W: max(c.W, 1), H: max(c.H, 1)},
		Rule:     s.Rule,
		Boundary: s.Boundary,
		Fill:     s.Fill,
		Seed:     c.Seed,
	}
}

// defaultPreset is the preset a family starts on.
func defaultPreset(f core.Family) ca.Preset {
	if d := ca.DefaultPreset(); d.Rule.Family() == f {
		return d
	}
	return ca.Presets(f)[0]
}
