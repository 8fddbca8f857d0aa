package color

import (
	"fmt"
	"math"
	"strings"
)

// RGB holds 8-bit channel values. Channels are always clamped to [0,255].
type RGB struct {
	R int
	G int
	B int
}

// HSL holds hue in degrees [0,360) and saturation/lightness in [0,1].
type HSL struct {
	H float64
	S float64
	L float64
}

// Sample couples a canonical hex string with its HSL decomposition. The two
// representations round-trip within integer-rounding tolerance. Samples are
// value types and never mutated after creation.
type Sample struct {
	Hex string
	HSL HSL
}

// NewSample builds a Sample from any parseable hex string.
func NewSample(hex string) (Sample, bool) {
	canonical, ok := NormalizeHex(hex)
	if !ok {
		return Sample{}, false
	}
	rgb, _ := HexToRGB(canonical)
	return Sample{Hex: canonical, HSL: RGBToHSL(rgb)}, true
}

// SampleFromHSL builds a Sample whose hex is derived from the given HSL.
// The stored HSL keeps the caller's (clamped) values rather than the
// re-decomposed ones, so repeated lightness adjustments do not drift.
func SampleFromHSL(hsl HSL) Sample {
	hsl = clampHSL(hsl)
	rgb := HSLToRGB(hsl)
	return Sample{Hex: RGBToHex(rgb), HSL: hsl}
}

// NormalizeHex canonicalizes a 3- or 6-digit hex color, with or without a
// leading '#', to uppercase "#RRGGBB". It reports false for anything else.
func NormalizeHex(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "#")

	switch len(trimmed) {
	case 3:
		var expanded strings.Builder
		for _, r := range trimmed {
			if !isHexDigit(r) {
				return "", false
			}
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		return "#" + strings.ToUpper(expanded.String()), true
	case 6:
		for _, r := range trimmed {
			if !isHexDigit(r) {
				return "", false
			}
		}
		return "#" + strings.ToUpper(trimmed), true
	default:
		return "", false
	}
}

// HexToRGB parses a normalizable hex string into channel values.
func HexToRGB(s string) (RGB, bool) {
	canonical, ok := NormalizeHex(s)
	if !ok {
		return RGB{}, false
	}

	var r, g, b int
	if _, err := fmt.Sscanf(canonical, "#%02X%02X%02X", &r, &g, &b); err != nil {
		return RGB{}, false
	}
	return RGB{R: r, G: g, B: b}, true
}

// RGBToHex renders channel values as canonical "#RRGGBB", clamping each
// channel into range first.
func RGBToHex(rgb RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", clampChannel(rgb.R), clampChannel(rgb.G), clampChannel(rgb.B))
}

// RGBToHSL converts to hue/saturation/lightness using the standard formulas.
func RGBToHSL(rgb RGB) HSL {
	r := float64(clampChannel(rgb.R)) / 255.0
	g := float64(clampChannel(rgb.G)) / 255.0
	b := float64(clampChannel(rgb.B)) / 255.0

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	l := (maxC + minC) / 2

	var h, s float64
	if delta != 0 {
		if l < 0.5 {
			s = delta / (maxC + minC)
		} else {
			s = delta / (2 - maxC - minC)
		}

		switch maxC {
		case r:
			h = (g - b) / delta
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/delta + 2
		default:
			h = (r-g)/delta + 4
		}
		h *= 60
	}

	return clampHSL(HSL{H: h, S: s, L: l})
}

// HSLToRGB converts back to channel values, rounding each channel.
func HSLToRGB(hsl HSL) RGB {
	hsl = clampHSL(hsl)

	if hsl.S == 0 {
		v := int(math.Round(hsl.L * 255))
		return RGB{R: clampChannel(v), G: clampChannel(v), B: clampChannel(v)}
	}

	var q float64
	if hsl.L < 0.5 {
		q = hsl.L * (1 + hsl.S)
	} else {
		q = hsl.L + hsl.S - hsl.L*hsl.S
	}
	p := 2*hsl.L - q

	hue := hsl.H / 360.0
	r := hueToChannel(p, q, hue+1.0/3.0)
	g := hueToChannel(p, q, hue)
	b := hueToChannel(p, q, hue-1.0/3.0)

	return RGB{
		R: clampChannel(int(math.Round(r * 255))),
		G: clampChannel(int(math.Round(g * 255))),
		B: clampChannel(int(math.Round(b * 255))),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	default:
		return false
	}
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clampHSL(hsl HSL) HSL {
	h := math.Mod(hsl.H, 360)
	if h < 0 {
		h += 360
	}
	if math.IsNaN(h) {
		h = 0
	}
	return HSL{H: h, S: clampUnit(hsl.S), L: clampUnit(hsl.L)}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
