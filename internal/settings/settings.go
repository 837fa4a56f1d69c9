// Package settings encodes a complete viewer configuration as a URL query so
// it can be shared and restored.
package settings

import (
	"errors"
	"fmt"
	"image/color"
	"net/url"
	"strconv"
	"strings"

	"cavis/internal/ca"
	"cavis/internal/core"
)

const (
	keyBoundary   = "boundary_rule"
	keyColorA     = "color_a"
	keyColorB     = "color_b"
	keyFamily     = "family"
	keyFill       = "fill_type"
	keyRulestring = "rulestring"
)

var (
	// ErrMissingField is returned when a required query key is absent.
	ErrMissingField = errors.New("missing field")
	// ErrBadColor is returned for colours that are not six hex digits.
	ErrBadColor = errors.New("bad hex colour")
	// ErrBadRulestring is returned when the rulestring does not parse for the
	// encoded family.
	ErrBadRulestring = errors.New("bad rulestring")
)

// Default gradient endpoints.
var (
	DefaultColorA = color.RGBA{R: 0x54, G: 0x06, B: 0x22, A: 0xff}
	DefaultColorB = color.RGBA{R: 0x69, G: 0xff, B: 0xd2, A: 0xff}
)

// Settings is everything needed to reproduce what a viewer shows, apart from
// the random seed.
type Settings struct {
	Family   core.Family
	Rule     ca.Rule
	Boundary core.Boundary
	Fill     core.FillType
	ColorA   color.RGBA
	ColorB   color.RGBA
}

// FromPreset builds settings for a preset with the default colours.
func FromPreset(p ca.Preset) Settings {
	return Settings{
		Family:   p.Rule.Family(),
		Rule:     p.Rule,
		Boundary: p.Boundary,
		Fill:     p.Fill,
		ColorA:   DefaultColorA,
		ColorB:   DefaultColorB,
	}
}

// Encode returns the settings as a URL query string with sorted keys.
func (s Settings) Encode() string {
	v := url.Values{}
	v.Set(keyBoundary, s.Boundary.String())
	v.Set(keyColorA, HexTriplet(s.ColorA))
	v.Set(keyColorB, HexTriplet(s.ColorB))
	v.Set(keyFamily, s.Family.String())
	v.Set(keyFill, s.Fill.String())
	v.Set(keyRulestring, ca.Rulestring(s.Rule))
	return v.Encode()
}

// Decode parses a query produced by Encode. A leading '?' and a full URL are
// both accepted. Colours are optional and fall back to the defaults; every
// other key is required.
func Decode(query string) (Settings, error) {
	if i := strings.IndexByte(query, '?'); i >= 0 {
		query = query[i+1:]
	}
	v, err := url.ParseQuery(query)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: %w", err)
	}

	var s Settings
	family, err := required(v, keyFamily)
	if err != nil {
		return Settings{}, err
	}
	if s.Family, err = core.ParseFamily(family); err != nil {
		return Settings{}, fmt.Errorf("settings: %w", err)
	}

	boundary, err := required(v, keyBoundary)
	if err != nil {
		return Settings{}, err
	}
	if s.Boundary, err = core.ParseBoundary(boundary); err != nil {
		return Settings{}, fmt.Errorf("settings: %w", err)
	}

	fill, err := required(v, keyFill)
	if err != nil {
		return Settings{}, err
	}
	if s.Fill, err = core.ParseFillType(fill); err != nil {
		return Settings{}, fmt.Errorf("settings: %w", err)
	}

	text, err := required(v, keyRulestring)
	if err != nil {
		return Settings{}, err
	}
	rule, ok := ca.ParseRulestring(s.Family, text)
	if !ok {
		return Settings{}, fmt.Errorf("settings: %w for %s: %q", ErrBadRulestring, s.Family, text)
	}
	s.Rule = rule

	if s.ColorA, err = optionalColor(v, keyColorA, DefaultColorA); err != nil {
		return Settings{}, err
	}
	if s.ColorB, err = optionalColor(v, keyColorB, DefaultColorB); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func required(v url.Values, key string) (string, error) {
	if !v.Has(key) {
		return "", fmt.Errorf("settings: %w %q", ErrMissingField, key)
	}
	return v.Get(key), nil
}

func optionalColor(v url.Values, key string, fallback color.RGBA) (color.RGBA, error) {
	if !v.Has(key) {
		return fallback, nil
	}
	c, err := ParseHexTriplet(v.Get(key))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("settings: %s: %w", key, err)
	}
	return c, nil
}

// ParseHexTriplet parses "rrggbb", optionally prefixed with '#'.
func ParseHexTriplet(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("%w %q", ErrBadColor, s)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w %q", ErrBadColor, s)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
}

// HexTriplet formats c as six lower-case hex digits. Alpha is dropped.
func HexTriplet(c color.RGBA) string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}
