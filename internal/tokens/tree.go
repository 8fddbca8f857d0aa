// Package tokens assembles resolved role assignments into a referenced
// token tree and serializes it to design-tokens JSON or CSS custom
// properties.
package tokens

import "strings"

// TypeColor is the only token type this tree emits.
const TypeColor = "color"

// Node is a single token: either a literal hex value or a "{dotted.path}"
// reference into the same tree.
type Node struct {
	Value       string
	Type        string
	Description string
}

// IsReference reports whether the node points at another token instead of
// carrying a literal.
func (n Node) IsReference() bool {
	return strings.HasPrefix(n.Value, "{") && strings.HasSuffix(n.Value, "}")
}

// ReferenceTarget strips the braces from a reference value.
func (n Node) ReferenceTarget() string {
	return strings.TrimSuffix(strings.TrimPrefix(n.Value, "{"), "}")
}

// Tree maps dotted paths to nodes while preserving insertion order, so
// serialized output is stable across runs.
type Tree struct {
	paths []string
	nodes map[string]Node
}

// NewTree allocates an empty tree.
func NewTree() *Tree {
	return &Tree{nodes: make(map[string]Node)}
}

// Set stores a node, keeping first-insertion order on update.
func (t *Tree) Set(path string, node Node) {
	if _, exists := t.nodes[path]; !exists {
		t.paths = append(t.paths, path)
	}
	t.nodes[path] = node
}

// Get looks a node up by its dotted path.
func (t *Tree) Get(path string) (Node, bool) {
	node, ok := t.nodes[path]
	return node, ok
}

// Paths returns every path in insertion order.
func (t *Tree) Paths() []string {
	out := make([]string, len(t.paths))
	copy(out, t.paths)
	return out
}

// Len reports the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// maxReferenceDepth bounds reference chains; anything deeper indicates a
// cycle introduced by an override.
const maxReferenceDepth = 10

// ResolveValue follows references from the node at path until it reaches a
// literal. It reports false for unknown paths, dangling references, or
// cycles.
func (t *Tree) ResolveValue(path string) (string, bool) {
	for depth := 0; depth < maxReferenceDepth; depth++ {
		node, ok := t.nodes[path]
		if !ok {
			return "", false
		}
		if !node.IsReference() {
			return node.Value, true
		}
		path = node.ReferenceTarget()
	}
	return "", false
}
