package tokens

import (
	"fmt"

	"github.com/lmarchand/huegen/internal/scale"
	"github.com/lmarchand/huegen/internal/semantic"
)

// Theme names used in semantic paths.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Input carries everything one build pass needs. Overrides and the path
// mapping are explicit parameters, never ambient state, so a build is a
// pure function of its input.
type Input struct {
	Neutral *scale.Scale
	Primary *scale.Scale

	// Light is the resolved light-theme assignment; the dark theme is
	// always derived from it by mirroring.
	Light semantic.Assignment

	// Overrides maps role paths to replacement references. Keys are the
	// theme-agnostic role path ("surface.neutral.surfaceBase"), or the
	// same path prefixed with "light."/"dark." to target one theme. An
	// override replaces the derived reference verbatim and may well
	// violate the compliance target; that trade-off is the caller's.
	Overrides map[string]string

	// PathFor supplies an alternate role naming schema. Nil selects the
	// canonical Role.Path form.
	PathFor func(semantic.Role) string
}

// Build assembles seed, palette, and semantic nodes into one tree.
func Build(in Input) (*Tree, error) {
	if in.Neutral.Len() == 0 || in.Primary.Len() == 0 {
		return nil, fmt.Errorf("build tokens: both scales are required")
	}
	if len(in.Light) == 0 {
		return nil, fmt.Errorf("build tokens: light assignment is empty")
	}

	pathFor := in.PathFor
	if pathFor == nil {
		pathFor = semantic.Role.Path
	}

	tree := NewTree()

	tree.Set("seed.primary", Node{
		Value:       in.Primary.Seed().Sample.Hex,
		Type:        TypeColor,
		Description: "Brand seed color",
	})
	tree.Set("seed.neutral", Node{
		Value:       in.Neutral.Seed().Sample.Hex,
		Type:        TypeColor,
		Description: "Desaturated seed driving the neutral scale",
	})
	tree.Set("seed.white", Node{Value: "#FFFFFF", Type: TypeColor})
	tree.Set("seed.black", Node{Value: "#000000", Type: TypeColor})

	addPalette(tree, "neutral", in.Neutral)
	addPalette(tree, "primary", in.Primary)

	addSemantic(tree, ThemeLight, in.Light, in.Overrides, pathFor)
	addSemantic(tree, ThemeDark, in.Light.Mirrored(), in.Overrides, pathFor)

	return tree, nil
}

// addPalette emits one node per scale entry. The seed's own step is a
// self-reference back into seed.* rather than a duplicated literal.
func addPalette(tree *Tree, family string, s *scale.Scale) {
	for _, entry := range s.Entries {
		path := "palettes." + family + "." + entry.Label
		if entry.IsSeed {
			tree.Set(path, Node{Value: "{seed." + family + "}", Type: TypeColor})
			continue
		}
		tree.Set(path, Node{Value: entry.Sample.Hex, Type: TypeColor})
	}
}

// addSemantic emits every role of one theme, override first.
func addSemantic(tree *Tree, theme string, assignment semantic.Assignment, overrides map[string]string, pathFor func(semantic.Role) string) {
	for _, role := range semantic.Roles() {
		assigned, ok := assignment[role]
		if !ok {
			continue
		}

		rolePath := pathFor(role)
		value := assigned.Reference
		if override, ok := lookupOverride(overrides, theme, rolePath); ok {
			value = override
		}

		tree.Set("semantic."+theme+"."+rolePath, Node{Value: value, Type: TypeColor})
	}
}

// lookupOverride prefers a theme-qualified key over the theme-agnostic
// one.
func lookupOverride(overrides map[string]string, theme, rolePath string) (string, bool) {
	if len(overrides) == 0 {
		return "", false
	}
	if value, ok := overrides[theme+"."+rolePath]; ok {
		return value, true
	}
	value, ok := overrides[rolePath]
	return value, ok
}
