package tokens

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultRoot is the namespace used when the caller supplies no prefix.
const DefaultRoot = "color"

// SanitizePrefix lowercases a requested namespace and strips every rune
// outside [a-z0-9.-]. An empty result falls back to DefaultRoot.
func SanitizePrefix(prefix string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(prefix)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	sanitized := strings.Trim(b.String(), ".")
	if sanitized == "" {
		return DefaultRoot
	}
	return sanitized
}

// jsonLeaf is the W3C-design-tokens-like shape of a serialized token.
type jsonLeaf struct {
	Value       string `json:"$value"`
	Type        string `json:"$type"`
	Description string `json:"$description,omitempty"`
}

// ToJSON renders the tree as nested design-token JSON under the sanitized
// prefix. References remain unresolved strings for consumers to follow.
func ToJSON(tree *Tree, prefix string) ([]byte, error) {
	if tree == nil {
		return nil, fmt.Errorf("serialize tokens: nil tree")
	}

	root := make(map[string]any)
	for _, path := range tree.Paths() {
		node, _ := tree.Get(path)
		insertNested(root, strings.Split(path, "."), jsonLeaf{
			Value:       node.Value,
			Type:        node.Type,
			Description: node.Description,
		})
	}

	document := map[string]any{SanitizePrefix(prefix): root}
	return json.MarshalIndent(document, "", "  ")
}

func insertNested(parent map[string]any, segments []string, leaf jsonLeaf) {
	if len(segments) == 1 {
		parent[segments[0]] = leaf
		return
	}

	child, ok := parent[segments[0]].(map[string]any)
	if !ok {
		child = make(map[string]any)
		parent[segments[0]] = child
	}
	insertNested(child, segments[1:], leaf)
}

// ToCSS flattens every token to a custom property inside one :root block.
// Unlike JSON output, CSS values are fully resolved since custom
// properties cannot express token references.
func ToCSS(tree *Tree, prefix string) (string, error) {
	if tree == nil {
		return "", fmt.Errorf("serialize tokens: nil tree")
	}

	sanitized := SanitizePrefix(prefix)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, path := range tree.Paths() {
		value, ok := tree.ResolveValue(path)
		if !ok {
			return "", fmt.Errorf("serialize tokens: unresolvable reference at %s", path)
		}
		property := strings.ReplaceAll(sanitized+"."+path, ".", "-")
		fmt.Fprintf(&b, "  --%s: %s;\n", property, value)
	}
	b.WriteString("}\n")

	return b.String(), nil
}
