package domain

import (
	"cmp"
	"unique"
)

// Node is a value object identifying a route endpoint.
// It wraps a unique.Handle[string] so that labels are interned, compare with ==
// and can be used directly as map keys.
type Node struct {
	h unique.Handle[string]
}

// NewNode creates a Node from its label. An empty label yields the zero Node.
func NewNode(label string) Node {
	if label == "" {
		return Node{}
	}
	return Node{
		h: unique.Make(label),
	}
}

// NewNodes creates a Node slice from the given labels.
func NewNodes(labels ...string) []Node {
	res := make([]Node, len(labels))
	for i, l := range labels {
		res[i] = NewNode(l)
	}
	return res
}

// String returns the label of the node.
// The zero Node has an empty label.
func (n Node) String() string {
	if n.IsZero() {
		return ""
	}
	return n.h.Value()
}

// IsZero reports whether n is the zero Node.
func (n Node) IsZero() bool {
	return n == Node{}
}

// Compare orders nodes by label.
func (n Node) Compare(other Node) int {
	return cmp.Compare(n.String(), other.String())
}

// MarshalText implements encoding.TextMarshaler.
func (n Node) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}
