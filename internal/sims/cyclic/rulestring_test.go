package cyclic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	r := Rule{AdvanceThreshold: 3, Neighborhood: Moore, Range: 1, States: 3}
	require.Equal(t, "R1/T3/C3/NM", Format(r))
	require.Equal(t, "R2/T2/C6/NN", Rule{AdvanceThreshold: 2, Neighborhood: VonNeumann, Range: 2, States: 6}.Rulestring())
}

func TestParse(t *testing.T) {
	r, ok := Parse("  R2/T1/C14/NN \n")
	require.True(t, ok)
	require.Equal(t, Rule{AdvanceThreshold: 1, Neighborhood: VonNeumann, Range: 2, States: 14}, r)
}

func TestParseRoundTrip(t *testing.T) {
	for _, p := range Presets() {
		got, ok := Parse(Format(p.Rule))
		require.True(t, ok, p.Key)
		require.Equal(t, p.Rule, got, p.Key)
	}
}

func TestParseRejects(t *testing.T) {
	cases := []string{
		"",
		"abc",
		"R1/T1/C3",
		"R1/T1/C3/NM/X",
		"T1/R1/C3/NM",
		"R/T1/C3/NM",
		"R1/T1/C3/NX",
		"R1/T1/C3/nm",
		"R1/T1/Cx/NM",
		"R1/T-1/C3/NM",
		"R+1/T1/C3/NM",
		"R1/T0/C3/NM",
		"R0/T1/C3/NM",
		"R1/T1/C1/NM",
		"R1/T1/C257/NM",
		"R17/T1/C3/NM",
		"R1/T1/C99999999999999999999/NM",
		"R1/T1/C3/NMé",
		"R1 /T1/C3/NM",
	}
	for _, s := range cases {
		_, ok := Parse(s)
		require.False(t, ok, "Parse(%q) should fail", s)
	}
}
