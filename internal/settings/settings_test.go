package settings

import (
	"image/color"
	"testing"

	"cavis/internal/ca"
	"cavis/internal/core"
	"cavis/internal/sims/cyclic"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, f := range core.Families() {
		for _, p := range ca.Presets(f) {
			s := FromPreset(p)
			s.ColorA = color.RGBA{R: 1, G: 2, B: 3, A: 0xff}
			got, err := Decode(s.Encode())
			require.NoError(t, err, p.Key)
			require.Equal(t, s, got, p.Key)
		}
	}
}

func TestEncodeKeys(t *testing.T) {
	s := FromPreset(ca.DefaultPreset())
	require.Equal(t,
		"boundary_rule=Wrap&color_a=540622&color_b=69ffd2&family=Generation&fill_type=SplatsBinary&rulestring=2%2F2%2F25",
		s.Encode())
}

func TestDecodeAcceptsFullURL(t *testing.T) {
	s, err := Decode("https://example.test/ca?family=cyclic&boundary_rule=mirrorwrap&fill_type=UniformRandom&rulestring=R2/T5/C6/NN")
	require.NoError(t, err)
	require.Equal(t, core.FamilyCyclic, s.Family)
	require.Equal(t, core.BoundaryMirrorWrap, s.Boundary)
	require.Equal(t, cyclic.Rule{AdvanceThreshold: 5, Neighborhood: cyclic.VonNeumann, Range: 2, States: 6}, s.Rule)
	require.Equal(t, DefaultColorA, s.ColorA)
	require.Equal(t, DefaultColorB, s.ColorB)
}

func TestDecodeErrors(t *testing.T) {
	const valid = "family=Lifelike&boundary_rule=Wrap&fill_type=Splats&rulestring=23/3"
	cases := []struct {
		query string
		want  error
	}{
		{"boundary_rule=Wrap&fill_type=Splats&rulestring=23/3", ErrMissingField},
		{"family=Lifelike&boundary_rule=Wrap&fill_type=Splats&rulestring=abc", ErrBadRulestring},
		{"family=Lifelike&boundary_rule=Torus&fill_type=Splats&rulestring=23/3", core.ErrUnknownBoundary},
		{"family=Lifelike&boundary_rule=Wrap&fill_type=Noise&rulestring=23/3", core.ErrUnknownFillType},
		{"family=Hex&boundary_rule=Wrap&fill_type=Splats&rulestring=23/3", core.ErrUnknownFamily},
		{valid + "&color_a=zz0000", ErrBadColor},
		{valid + "&color_b=fff", ErrBadColor},
		{"family=Generation&boundary_rule=Wrap&fill_type=Splats&rulestring=23/3", ErrBadRulestring},
	}
	for _, tc := range cases {
		_, err := Decode(tc.query)
		require.ErrorIs(t, err, tc.want, tc.query)
	}
}

func TestHexTriplet(t *testing.T) {
	c, err := ParseHexTriplet("#69FFD2")
	require.NoError(t, err)
	require.Equal(t, DefaultColorB, c)
	require.Equal(t, "69ffd2", HexTriplet(c))

	_, err = ParseHexTriplet("+12345")
	require.ErrorIs(t, err, ErrBadColor)
}
