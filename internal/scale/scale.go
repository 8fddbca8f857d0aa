// Package scale derives ordered tonal scales from a single seed color.
package scale

import (
	"github.com/lmarchand/huegen/internal/color"
)

// Labels is the fixed step naming for every generated scale, lightest to
// darkest. The seed lands near "500" for mid-lightness seeds.
var Labels = []string{"50", "100", "200", "300", "500", "600", "700", "800", "900", "950"}

// StepCount is the fixed number of entries in a scale.
const StepCount = 10

// MaxNeutralSaturation caps how colorful a neutral scale may be.
const MaxNeutralSaturation = 0.30

// Lightness breakpoints steering the lighten/darken split. A seed above the
// light breakpoint gets no lighten steps; below the dark breakpoint, no
// darken steps. Changing these produces duplicate steps for near-extreme
// seeds, so they are fixed.
const (
	lightBreakpoint = 0.6
	darkBreakpoint  = 0.2
)

// Kind distinguishes the two scale flavors.
type Kind int

const (
	KindNeutral Kind = iota
	KindPrimary
)

func (k Kind) String() string {
	if k == KindPrimary {
		return "primary"
	}
	return "neutral"
}

// Entry is one labeled step of a scale.
type Entry struct {
	Sample color.Sample
	Label  string
	IsSeed bool
}

// Scale is an ordered tonal ramp, strictly lightest to darkest, holding
// exactly StepCount entries of which exactly one is the seed. Scales are
// rebuilt whole on every input change and never mutated in place.
type Scale struct {
	Kind    Kind
	Entries []Entry
}

// Neutral builds the desaturated scale used for surfaces, text and
// outlines. saturation is clamped to [0, MaxNeutralSaturation]; hueShift
// rotates the seed hue in degrees for harmony variants.
func Neutral(seedHex string, saturation, hueShift float64) (*Scale, bool) {
	sample, ok := color.NewSample(seedHex)
	if !ok {
		return nil, false
	}

	sat := saturation
	if sat < 0 {
		sat = 0
	}
	if sat > MaxNeutralSaturation {
		sat = MaxNeutralSaturation
	}

	seed := color.SampleFromHSL(color.HSL{H: sample.HSL.H + hueShift, S: sat, L: sample.HSL.L})
	return build(KindNeutral, seed), true
}

// Primary builds the brand scale at the seed's own saturation. The seed
// entry keeps the caller's exact (normalized) hex rather than a roundtrip
// through HSL.
func Primary(seedHex string, hueShift float64) (*Scale, bool) {
	sample, ok := color.NewSample(seedHex)
	if !ok {
		return nil, false
	}

	seed := sample
	if hueShift != 0 {
		seed = color.SampleFromHSL(color.HSL{H: sample.HSL.H + hueShift, S: sample.HSL.S, L: sample.HSL.L})
	}
	return build(KindPrimary, seed), true
}

// build assembles the ramp around the seed. The lighten/darken split is
// asymmetric: seeds already near an extreme give all their steps to the
// other direction, which keeps every step distinct.
func build(kind Kind, seed color.Sample) *Scale {
	lighten, darken := stepSplit(seed.HSL.L)

	entries := make([]Entry, 0, StepCount)

	// Lighten steps, most-lightened first. Step i of N moves lightness
	// toward 1.0 by i/(N+1).
	for i := lighten; i >= 1; i-- {
		fraction := float64(i) / float64(lighten+1)
		l := seed.HSL.L + (1.0-seed.HSL.L)*fraction
		entries = append(entries, Entry{
			Sample: color.SampleFromHSL(color.HSL{H: seed.HSL.H, S: seed.HSL.S, L: l}),
		})
	}

	entries = append(entries, Entry{Sample: seed, IsSeed: true})

	// Darken steps mirror the lighten interpolation toward 0.0.
	for i := 1; i <= darken; i++ {
		fraction := float64(i) / float64(darken+1)
		l := seed.HSL.L - seed.HSL.L*fraction
		entries = append(entries, Entry{
			Sample: color.SampleFromHSL(color.HSL{H: seed.HSL.H, S: seed.HSL.S, L: l}),
		})
	}

	for i := range entries {
		entries[i].Label = Labels[i]
	}

	return &Scale{Kind: kind, Entries: entries}
}

// stepSplit allocates lighten/darken step counts from the seed lightness.
func stepSplit(lightness float64) (lighten, darken int) {
	switch {
	case lightness > lightBreakpoint:
		return 0, StepCount - 1
	case lightness < darkBreakpoint:
		return StepCount - 1, 0
	default:
		return 4, 5
	}
}

// Len reports the number of entries.
func (s *Scale) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Entries)
}

// At returns the entry at index i, clamped to the scale bounds.
func (s *Scale) At(i int) Entry {
	if s == nil || len(s.Entries) == 0 {
		return Entry{}
	}
	if i < 0 {
		i = 0
	}
	if i > len(s.Entries)-1 {
		i = len(s.Entries) - 1
	}
	return s.Entries[i]
}

// SeedIndex locates the seed entry.
func (s *Scale) SeedIndex() int {
	if s == nil {
		return -1
	}
	for i, entry := range s.Entries {
		if entry.IsSeed {
			return i
		}
	}
	return -1
}

// Seed returns the seed entry.
func (s *Scale) Seed() Entry {
	return s.At(s.SeedIndex())
}
