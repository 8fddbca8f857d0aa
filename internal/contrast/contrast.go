// Package contrast implements WCAG 2.x relative luminance and contrast
// ratio computation, with a bounded memoizing cache for the hot paths in
// role resolution and matrix rendering.
package contrast

import (
	"math"

	"github.com/lmarchand/huegen/internal/color"
)

// WCAG thresholds referenced throughout role resolution.
const (
	// MinRatio and MaxRatio bound every valid contrast ratio.
	MinRatio = 1.0
	MaxRatio = 21.0
)

// Luminance computes WCAG relative luminance for 8-bit channels.
func Luminance(rgb color.RGB) float64 {
	r := linearize(float64(rgb.R) / 255.0)
	g := linearize(float64(rgb.G) / 255.0)
	b := linearize(float64(rgb.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(channel float64) float64 {
	if channel <= 0.03928 {
		return channel / 12.92
	}
	return math.Pow((channel+0.055)/1.055, 2.4)
}

// Ratio computes the WCAG contrast ratio between two hex colors. It is
// symmetric in its arguments and always lands in [1,21]. The second return
// is false when either input fails to parse.
func Ratio(hexA, hexB string) (float64, bool) {
	rgbA, ok := color.HexToRGB(hexA)
	if !ok {
		return 0, false
	}
	rgbB, ok := color.HexToRGB(hexB)
	if !ok {
		return 0, false
	}

	la := Luminance(rgbA)
	lb := Luminance(rgbB)
	if la < lb {
		la, lb = lb, la
	}

	ratio := (la + 0.05) / (lb + 0.05)
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0, false
	}
	return ratio, true
}
