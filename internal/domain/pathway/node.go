// Package pathway holds the career pathway content model: the node entity,
// its icon vocabulary and the details text transform used by edit forms.
package pathway

import (
	"sort"
)

// Node is one stage/topic card in the pathway. ID is assigned out-of-band and
// never changes; Position is the only ordering key.
type Node struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Details     []string `json:"details" yaml:"details"`
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Position    int      `json:"position" yaml:"position"`
}

// Clone returns a deep copy so callers never share the Details backing array.
func (n Node) Clone() Node {
	out := n
	out.Details = normalizeDetails(n.Details)
	return out
}

// Glyph resolves the node's icon name, falling back to the default glyph.
func (n Node) Glyph() Glyph {
	return ParseIcon(n.Icon).Glyph()
}

// Normalize maps absent details to an empty list.
func (n Node) Normalize() Node {
	n.Details = normalizeDetails(n.Details)
	return n
}

func normalizeDetails(details []string) []string {
	out := make([]string, len(details))
	copy(out, details)
	return out
}

// SortByPosition orders nodes ascending by Position. Ties keep the order they
// arrived in; no further tie-break is applied.
func SortByPosition(nodes []Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Position < nodes[j].Position
	})
}

// IsOrderedByPosition reports whether positions are non-decreasing.
func IsOrderedByPosition(nodes []Node) bool {
	for i := 1; i < len(nodes); i++ {
		if nodes[i].Position < nodes[i-1].Position {
			return false
		}
	}
	return true
}

// CloneAll deep-copies a node collection.
func CloneAll(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}

// Find returns the node with the given id.
func Find(nodes []Node, id string) (Node, bool) {
	for _, n := range nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Replace swaps the node carrying updated.ID for updated and reports whether
// a node was replaced.
func Replace(nodes []Node, updated Node) bool {
	for i := range nodes {
		if nodes[i].ID == updated.ID {
			nodes[i] = updated.Clone()
			return true
		}
	}
	return false
}
