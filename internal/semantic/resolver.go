// Package semantic assigns scale entries to the fixed set of semantic
// color roles under a WCAG compliance mode. Resolution is total: every
// role receives an assignment for any well-formed scale pair, shortage
// cases degrade to duplication rather than absence.
package semantic

import (
	"github.com/lmarchand/huegen/internal/color"
	"github.com/lmarchand/huegen/internal/contrast"
	"github.com/lmarchand/huegen/internal/scale"
)

const (
	white = "#FFFFFF"
	black = "#000000"

	// textOnPrimary is a fixed binary decision at the AA text level,
	// independent of the session's compliance mode.
	textOnPrimaryThreshold = 4.5

	// Subtle/intense variants sit this many steps from their validated
	// anchor. Neighbors are positional, not re-checked against the
	// threshold.
	outlineSpread = 2
)

// Assigned is one resolved role: the concrete scale entry it landed on,
// its index in the source scale, and the reference the token tree should
// emit for it.
type Assigned struct {
	Entry     scale.Entry
	Index     int
	Reference string
}

// Assignment maps every Role to its resolution.
type Assignment map[Role]Assigned

// Resolve derives the full light-theme role assignment from a neutral and
// a primary scale. It reports false when either scale is missing or empty;
// it never panics and never leaves a role unassigned.
func Resolve(neutral, primary *scale.Scale, mode Compliance, cache *contrast.Cache) (Assignment, bool) {
	if neutral.Len() == 0 || primary.Len() == 0 {
		return nil, false
	}

	r := &resolver{neutral: neutral, primary: primary, mode: mode, cache: cache}
	out := make(Assignment, roleCount)

	r.resolveSurfaces(out)
	r.resolveText(out)
	r.resolveOutlines(out)
	r.resolvePrimary(out)
	r.resolveTextOnPrimary(out)

	return out, true
}

type resolver struct {
	neutral *scale.Scale
	primary *scale.Scale
	mode    Compliance
	cache   *contrast.Cache
}

func (r *resolver) ratio(hexA, hexB string) float64 {
	ratio, ok := r.cache.Ratio(hexA, hexB)
	if !ok {
		return 0
	}
	return ratio
}

func (r *resolver) neutralAt(index int) Assigned {
	entry := r.neutral.At(index)
	return Assigned{
		Entry:     entry,
		Index:     clampIndex(index, r.neutral.Len()),
		Reference: "{palettes.neutral." + entry.Label + "}",
	}
}

func (r *resolver) primaryAt(index int) Assigned {
	entry := r.primary.At(index)
	return Assigned{
		Entry:     entry,
		Index:     clampIndex(index, r.primary.Len()),
		Reference: "{palettes.primary." + entry.Label + "}",
	}
}

// resolveSurfaces picks the entries closest to white and closest to black
// by contrast, not by raw lightness, plus their one-step variants.
func (r *resolver) resolveSurfaces(out Assignment) {
	surfaceIdx := r.closestTo(white)
	invertedIdx := r.closestTo(black)

	out[RoleSurface] = r.neutralAt(surfaceIdx)
	out[RoleSurfaceVariant] = r.neutralAt(surfaceIdx + 1)
	out[RoleSurfaceInverted] = r.neutralAt(invertedIdx)
	out[RoleSurfaceInvertedVariant] = r.neutralAt(invertedIdx - 1)
}

// closestTo returns the neutral index with minimum contrast against the
// given anchor color.
func (r *resolver) closestTo(anchor string) int {
	best := 0
	bestRatio := contrast.MaxRatio + 1
	for i := 0; i < r.neutral.Len(); i++ {
		ratio := r.ratio(r.neutral.At(i).Sample.Hex, anchor)
		if ratio > 0 && ratio < bestRatio {
			bestRatio = ratio
			best = i
		}
	}
	return best
}

// resolveText builds both three-level text hierarchies. The scan collects
// up to three passing entries lightest-first; on the normal surface the
// last (darkest) collected entry is the primary text, on the inverted
// surface the first (lightest) is.
func (r *resolver) resolveText(out Assignment) {
	threshold := r.mode.TextThreshold()

	matches := r.collectPassing(out[RoleSurfaceVariant].Entry.Sample.Hex, threshold)
	tertiary, secondary, primary := spreadMatches(matches)
	if len(matches) == 0 {
		best := r.bestAgainst(out[RoleSurfaceVariant].Entry.Sample.Hex)
		tertiary, secondary, primary = best, best, best
	}
	out[RoleTextTertiary] = r.neutralAt(tertiary)
	out[RoleTextSecondary] = r.neutralAt(secondary)
	out[RoleTextPrimary] = r.neutralAt(primary)

	inverted := r.collectPassing(out[RoleSurfaceInvertedVariant].Entry.Sample.Hex, threshold)
	primaryInv, secondaryInv, tertiaryInv := spreadMatches(inverted)
	if len(inverted) == 0 {
		best := r.bestAgainst(out[RoleSurfaceInvertedVariant].Entry.Sample.Hex)
		primaryInv, secondaryInv, tertiaryInv = best, best, best
	}
	out[RoleTextPrimaryInverse] = r.neutralAt(primaryInv)
	out[RoleTextSecondaryInverse] = r.neutralAt(secondaryInv)
	out[RoleTextTertiaryInverse] = r.neutralAt(tertiaryInv)
}

// collectPassing scans the neutral scale lightest to darkest and returns
// the indexes of up to three entries meeting the threshold against the
// background.
func (r *resolver) collectPassing(background string, threshold float64) []int {
	var matches []int
	for i := 0; i < r.neutral.Len() && len(matches) < 3; i++ {
		if r.ratio(r.neutral.At(i).Sample.Hex, background) >= threshold {
			matches = append(matches, i)
		}
	}
	return matches
}

// spreadMatches maps scan-order matches onto (first, middle, last) slots,
// duplicating on shortage: one match aliases all three slots, two matches
// duplicate the earlier one into the first two slots.
func spreadMatches(matches []int) (first, middle, last int) {
	switch len(matches) {
	case 0:
		return 0, 0, 0
	case 1:
		return matches[0], matches[0], matches[0]
	case 2:
		return matches[0], matches[0], matches[1]
	default:
		return matches[0], matches[1], matches[2]
	}
}

// bestAgainst is the last-resort candidate when nothing passes: the entry
// with maximum contrast against the background.
func (r *resolver) bestAgainst(background string) int {
	best := 0
	bestRatio := 0.0
	for i := 0; i < r.neutral.Len(); i++ {
		if ratio := r.ratio(r.neutral.At(i).Sample.Hex, background); ratio > bestRatio {
			bestRatio = ratio
			best = i
		}
	}
	return best
}

// resolveOutlines anchors each hierarchy on the first entry passing the
// outline threshold when scanning away from the surface variant, then
// derives subtle/intense as fixed offsets from that anchor.
func (r *resolver) resolveOutlines(out Assignment) {
	threshold := r.mode.OutlineThreshold()

	variant := out[RoleSurfaceVariant]
	defaultIdx := r.neutral.Len() - 1
	for i := variant.Index + 1; i < r.neutral.Len(); i++ {
		if r.ratio(r.neutral.At(i).Sample.Hex, variant.Entry.Sample.Hex) >= threshold {
			defaultIdx = i
			break
		}
	}
	out[RoleOutlineDefault] = r.neutralAt(defaultIdx)
	out[RoleOutlineSubtle] = r.neutralAt(defaultIdx - outlineSpread)
	out[RoleOutlineIntense] = r.neutralAt(defaultIdx + outlineSpread)

	invVariant := out[RoleSurfaceInvertedVariant]
	invDefaultIdx := 0
	for i := invVariant.Index - 1; i >= 0; i-- {
		if r.ratio(r.neutral.At(i).Sample.Hex, invVariant.Entry.Sample.Hex) >= threshold {
			invDefaultIdx = i
			break
		}
	}
	out[RoleOutlineDefaultInverse] = r.neutralAt(invDefaultIdx)
	// On a dark background subtle sits darker (toward the surface) and
	// intense lighter.
	out[RoleOutlineSubtleInverse] = r.neutralAt(invDefaultIdx + outlineSpread)
	out[RoleOutlineIntenseInverse] = r.neutralAt(invDefaultIdx - outlineSpread)
}

// resolvePrimary assigns the brand roles. The base surface and outline
// always reference the primary seed itself; subtle/intense derive from an
// anchor that shifts forward only when the seed cannot meet the outline
// threshold against the surface variant.
func (r *resolver) resolvePrimary(out Assignment) {
	seedIdx := r.primary.SeedIndex()
	if seedIdx < 0 {
		seedIdx = 0
	}

	seedAssigned := Assigned{
		Entry:     r.primary.At(seedIdx),
		Index:     seedIdx,
		Reference: "{seed.primary}",
	}
	out[RoleSurfacePrimary] = seedAssigned
	out[RoleOutlinePrimary] = seedAssigned

	anchor := seedIdx
	background := out[RoleSurfaceVariant].Entry.Sample.Hex
	if r.ratio(seedAssigned.Entry.Sample.Hex, background) < r.mode.OutlineThreshold() {
		for i := seedIdx + 1; i < r.primary.Len(); i++ {
			if r.ratio(r.primary.At(i).Sample.Hex, background) >= r.mode.OutlineThreshold() {
				anchor = i
				break
			}
		}
	}

	out[RoleSurfacePrimarySubtle] = r.primaryAt(anchor - outlineSpread)
	out[RoleSurfacePrimaryIntense] = r.primaryAt(anchor + outlineSpread)
	out[RoleOutlinePrimarySubtle] = r.primaryAt(anchor - outlineSpread)
	out[RoleOutlinePrimaryIntense] = r.primaryAt(anchor + outlineSpread)
}

// resolveTextOnPrimary is a binary decision: reuse the neutral primary
// text when it reads against the brand seed, otherwise fall back to
// literal white.
func (r *resolver) resolveTextOnPrimary(out Assignment) {
	seed := out[RoleSurfacePrimary]
	textPrimary := out[RoleTextPrimary]

	if r.ratio(seed.Entry.Sample.Hex, textPrimary.Entry.Sample.Hex) >= textOnPrimaryThreshold {
		out[RoleTextOnPrimary] = textPrimary
		return
	}

	sample, _ := color.NewSample(white)
	out[RoleTextOnPrimary] = Assigned{
		Entry:     scale.Entry{Sample: sample},
		Index:     -1,
		Reference: "{seed.white}",
	}
}

// Mirrored returns the dark-theme assignment derived by swapping role
// pairs; it never re-resolves.
func (a Assignment) Mirrored() Assignment {
	dark := make(Assignment, len(a))
	for role, assigned := range a {
		dark[role.Mirror()] = assigned
	}
	return dark
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length-1 {
		return length - 1
	}
	return i
}
