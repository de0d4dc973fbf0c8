// Package domain contains the core domain models for the route graph and its queries.
package domain

import (
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

// Edge is a directed route between two nodes with a non-negative distance.
type Edge struct {
	From     Node
	To       Node
	Distance int
}

// String returns the route token form of the edge, e.g. "AB5".
func (e Edge) String() string {
	return e.From.String() + e.To.String() + strconv.Itoa(e.Distance)
}

// Graph is a directed, weighted route graph.
// It is built once and never mutated afterwards, so it can be shared by any
// number of concurrent readers.
type Graph struct {
	nodes     map[Node]struct{}
	adjacency map[Node]map[Node]int
}

// NewGraph creates a Graph from the given edges.
// When the same ordered pair appears more than once, the last distance wins.
func NewGraph(edges ...Edge) *Graph {
	g := &Graph{
		nodes:     make(map[Node]struct{}),
		adjacency: make(map[Node]map[Node]int),
	}
	for _, e := range edges {
		g.addEdge(e)
	}
	return g
}

// BuildGraph parses route text such as "AB5, BC4 CD8" into a Graph.
// Malformed tokens are skipped; BuildGraph never fails.
func BuildGraph(text string) *Graph {
	edges, _ := ParseRoutes(text)
	return NewGraph(edges...)
}

// ParseRoutes splits route text on commas and whitespace and parses every token.
// It returns the accepted edges in input order and the rejected tokens.
func ParseRoutes(text string) (edges []Edge, rejected []string) {
	for _, token := range tokenize(text) {
		e, ok := ParseEdge(token)
		if !ok {
			rejected = append(rejected, token)
			continue
		}
		edges = append(edges, e)
	}
	return edges, rejected
}

// ParseEdge parses a single route token of the form <from><to><distance>.
// The first two characters must be letters and the rest a non-negative base-10 integer.
func ParseEdge(token string) (Edge, bool) {
	runes := []rune(token)
	if len(runes) < 3 || !unicode.IsLetter(runes[0]) || !unicode.IsLetter(runes[1]) {
		return Edge{}, false
	}

	distance, err := strconv.Atoi(string(runes[2:]))
	if err != nil || distance < 0 {
		return Edge{}, false
	}

	return Edge{
		From:     NewNode(string(runes[0])),
		To:       NewNode(string(runes[1])),
		Distance: distance,
	}, true
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func (g *Graph) addEdge(e Edge) {
	out, ok := g.adjacency[e.From]
	if !ok {
		out = make(map[Node]int)
		g.adjacency[e.From] = out
	}
	out[e.To] = e.Distance

	g.nodes[e.From] = struct{}{}
	g.nodes[e.To] = struct{}{}
}

// HasNode reports whether n is an endpoint of any edge.
func (g *Graph) HasNode(n Node) bool {
	_, ok := g.nodes[n]
	return ok
}

// Edge returns the distance of the direct edge from -> to.
func (g *Graph) Edge(from, to Node) (int, bool) {
	d, ok := g.adjacency[from][to]
	return d, ok
}

// Neighbors yields the outbound edges of n as (target, distance) pairs.
// Iteration order is unspecified.
func (g *Graph) Neighbors(n Node) iter.Seq2[Node, int] {
	return func(yield func(Node, int) bool) {
		for to, d := range g.adjacency[n] {
			if !yield(to, d) {
				return
			}
		}
	}
}

// OutDegree returns the number of outbound edges of n.
func (g *Graph) OutDegree(n Node) int {
	return len(g.adjacency[n])
}

// Nodes returns all nodes sorted by label.
func (g *Graph) Nodes() []Node {
	return slices.SortedFunc(maps.Keys(g.nodes), Node.Compare)
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, out := range g.adjacency {
		n += len(out)
	}
	return n
}

// Edges returns all edges ordered by source and then target label.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.EdgeCount())
	for from, out := range g.adjacency {
		for to, d := range out {
			edges = append(edges, Edge{From: from, To: to, Distance: d})
		}
	}
	slices.SortFunc(edges, func(a, b Edge) int {
		if c := a.From.Compare(b.From); c != 0 {
			return c
		}
		return a.To.Compare(b.To)
	})
	return edges
}

// IsEmpty reports whether the graph has no edges.
func (g *Graph) IsEmpty() bool {
	return len(g.nodes) == 0
}

// String returns the canonical route text of the graph, edges sorted and comma separated.
func (g *Graph) String() string {
	edges := g.Edges()
	tokens := make([]string, len(edges))
	for i, e := range edges {
		tokens[i] = e.String()
	}
	return strings.Join(tokens, ", ")
}

// Fingerprint returns a stable hash of the canonical route text.
// Two graphs with the same edges have the same fingerprint regardless of input order.
func (g *Graph) Fingerprint() uint64 {
	return xxhash.Sum64String(g.String())
}
