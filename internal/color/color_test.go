package color

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeHex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "six digit with hash", input: "#3366ff", want: "#3366FF", ok: true},
		{name: "six digit without hash", input: "3366FF", want: "#3366FF", ok: true},
		{name: "three digit expands", input: "#36f", want: "#3366FF", ok: true},
		{name: "three digit without hash", input: "abc", want: "#AABBCC", ok: true},
		{name: "surrounding whitespace", input: "  #FFFFFF  ", want: "#FFFFFF", ok: true},
		{name: "already canonical", input: "#AABBCC", want: "#AABBCC", ok: true},
		{name: "empty", input: "", ok: false},
		{name: "bad length", input: "#12345", ok: false},
		{name: "non hex digits", input: "#GGHHII", ok: false},
		{name: "css name", input: "rebeccapurple", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := NormalizeHex(tc.input)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				require.Equal(t, tc.want, got)

				again, ok := NormalizeHex(got)
				require.True(t, ok)
				require.Equal(t, got, again, "normalization must be idempotent")
			}
		})
	}
}

func TestHexRGBRoundTrip(t *testing.T) {
	t.Parallel()

	for _, hex := range []string{"#000000", "#FFFFFF", "#3366FF", "#8A2BE2", "#010203", "#FEDCBA"} {
		rgb, ok := HexToRGB(hex)
		require.True(t, ok)
		require.Equal(t, hex, RGBToHex(rgb))
	}
}

func TestRGBToHexClamps(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#FF0000", RGBToHex(RGB{R: 300, G: -20, B: 0}))
}

func TestHSLRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []HSL{
		{H: 0, S: 0, L: 0},
		{H: 0, S: 0, L: 1},
		{H: 120, S: 0.5, L: 0.5},
		{H: 225, S: 1, L: 0.6},
		{H: 340, S: 0.14, L: 0.25},
	}

	for _, hsl := range cases {
		rgb := HSLToRGB(hsl)
		back := RGBToHSL(rgb)

		if hsl.S > 0 && hsl.L > 0 && hsl.L < 1 {
			require.InDelta(t, hsl.H, back.H, 1.5)
		}
		require.InDelta(t, hsl.S, back.S, 0.02)
		require.InDelta(t, hsl.L, back.L, 0.005)
	}
}

func TestClampHSLRejectsNaN(t *testing.T) {
	t.Parallel()

	rgb := HSLToRGB(HSL{H: math.NaN(), S: math.NaN(), L: math.NaN()})
	require.Equal(t, RGB{}, rgb)
}

func TestNewSampleConsistency(t *testing.T) {
	t.Parallel()

	sample, ok := NewSample("36f")
	require.True(t, ok)
	require.Equal(t, "#3366FF", sample.Hex)

	rgb, ok := HexToRGB(sample.Hex)
	require.True(t, ok)
	require.InDelta(t, sample.HSL.L, RGBToHSL(rgb).L, 0.005)

	_, ok = NewSample("nope")
	require.False(t, ok)
}

func TestSampleFromHSLKeepsRequestedLightness(t *testing.T) {
	t.Parallel()

	sample := SampleFromHSL(HSL{H: 225, S: 0.2, L: 0.73})
	require.Equal(t, 0.73, sample.HSL.L)
	require.NotEmpty(t, sample.Hex)
}
