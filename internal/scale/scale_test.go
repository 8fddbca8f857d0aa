package scale

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lmarchand/huegen/internal/color"
)

func requireScaleInvariants(t *testing.T, s *Scale) {
	t.Helper()

	require.Equal(t, StepCount, s.Len())

	seeds := 0
	for i, entry := range s.Entries {
		require.Equal(t, Labels[i], entry.Label)
		require.NotEmpty(t, entry.Sample.Hex)
		if entry.IsSeed {
			seeds++
		}
		if i > 0 {
			prev := s.Entries[i-1].Sample.HSL.L
			require.Greater(t, prev, entry.Sample.HSL.L,
				"entries must be strictly lightest to darkest (index %d)", i)
		}
	}
	require.Equal(t, 1, seeds, "exactly one seed entry")
}

func TestNeutralMidLightnessSeed(t *testing.T) {
	t.Parallel()

	s, ok := Neutral("#3366FF", 0.14, 0)
	require.True(t, ok)
	requireScaleInvariants(t, s)

	// 4 lighten + 5 darken puts the seed at the "500" step.
	require.Equal(t, 4, s.SeedIndex())
	require.Equal(t, "500", s.Seed().Label)
	require.InDelta(t, 0.14, s.Seed().Sample.HSL.S, 0.01)
}

func TestNeutralLightSeedGetsOnlyDarkenSteps(t *testing.T) {
	t.Parallel()

	s, ok := Neutral("#F5F5F5", 0.1, 0)
	require.True(t, ok)
	requireScaleInvariants(t, s)
	require.Equal(t, 0, s.SeedIndex())
	require.Equal(t, "50", s.Seed().Label)
}

func TestNeutralDarkSeedGetsOnlyLightenSteps(t *testing.T) {
	t.Parallel()

	s, ok := Neutral("#101015", 0.1, 0)
	require.True(t, ok)
	requireScaleInvariants(t, s)
	require.Equal(t, StepCount-1, s.SeedIndex())
	require.Equal(t, "950", s.Seed().Label)
}

func TestNeutralSaturationClamped(t *testing.T) {
	t.Parallel()

	s, ok := Neutral("#3366FF", 0.95, 0)
	require.True(t, ok)
	require.LessOrEqual(t, s.Seed().Sample.HSL.S, MaxNeutralSaturation+0.001)

	s, ok = Neutral("#3366FF", -2, 0)
	require.True(t, ok)
	require.InDelta(t, 0, s.Seed().Sample.HSL.S, 0.001)
}

func TestPrimaryKeepsSeedHex(t *testing.T) {
	t.Parallel()

	s, ok := Primary("#3366ff", 0)
	require.True(t, ok)
	requireScaleInvariants(t, s)
	require.Equal(t, "#3366FF", s.Seed().Sample.Hex)
}

func TestHueShiftRotatesScale(t *testing.T) {
	t.Parallel()

	base, ok := Neutral("#3366FF", 0.2, 0)
	require.True(t, ok)
	shifted, ok := Neutral("#3366FF", 0.2, 30)
	require.True(t, ok)

	baseHue := base.Seed().Sample.HSL.H
	shiftedHue := shifted.Seed().Sample.HSL.H
	require.InDelta(t, 30, shiftedHue-baseHue, 1.5)
}

func TestInvalidSeedRejected(t *testing.T) {
	t.Parallel()

	for _, constructor := range []func() (*Scale, bool){
		func() (*Scale, bool) { return Neutral("bogus", 0.1, 0) },
		func() (*Scale, bool) { return Primary("", 0) },
	} {
		s, ok := constructor()
		require.False(t, ok)
		require.Nil(t, s)
	}
}

func TestAtClampsIndexes(t *testing.T) {
	t.Parallel()

	s, ok := Neutral("#3366FF", 0.1, 0)
	require.True(t, ok)

	require.Equal(t, s.Entries[0], s.At(-5))
	require.Equal(t, s.Entries[StepCount-1], s.At(99))

	var empty *Scale
	require.Equal(t, Entry{}, empty.At(3))
	require.Equal(t, -1, empty.SeedIndex())
}

func TestScaleStepsShareHueAndSaturation(t *testing.T) {
	t.Parallel()

	s, ok := Neutral("#CC4411", 0.25, 0)
	require.True(t, ok)

	seedHSL := s.Seed().Sample.HSL
	for _, entry := range s.Entries {
		// Stored HSL carries the requested values directly.
		require.InDelta(t, seedHSL.H, entry.Sample.HSL.H, 0.001)
		require.InDelta(t, seedHSL.S, entry.Sample.HSL.S, 0.001)
	}

	_, ok = color.HexToRGB(s.At(0).Sample.Hex)
	require.True(t, ok)
}
