package domain

import (
	"iter"
	"strings"

	"go.trai.ch/zerr"
)

// RouteSeparator joins node labels in the textual form of a route.
const RouteSeparator = "-"

// Route is an explicit walk through the graph, one node per stop.
type Route []Node

// ParseRoute decodes a hyphen-delimited route such as "A-E-B-C-D".
// Labels are trimmed; an empty label anywhere in the route is an error.
func ParseRoute(text string) (Route, error) {
	if strings.TrimSpace(text) == "" {
		return nil, zerr.With(zerr.Wrap(ErrInvalidRoute, "route is empty"), "route", text)
	}

	parts := strings.Split(text, RouteSeparator)
	route := make(Route, 0, len(parts))
	for i, part := range parts {
		label := strings.TrimSpace(part)
		if label == "" {
			err := zerr.With(zerr.Wrap(ErrInvalidRoute, "empty stop"), "route", text)
			return nil, zerr.With(err, "position", i)
		}
		route = append(route, NewNode(label))
	}
	return route, nil
}

// MustParseRoute is like ParseRoute but panics on error. It is meant for
// literals in the built-in plan and tests.
func MustParseRoute(text string) Route {
	r, err := ParseRoute(text)
	if err != nil {
		panic(err)
	}
	return r
}

// Legs yields every consecutive (from, to) pair of the route.
func (r Route) Legs() iter.Seq2[Node, Node] {
	return func(yield func(Node, Node) bool) {
		for i := 1; i < len(r); i++ {
			if !yield(r[i-1], r[i]) {
				return
			}
		}
	}
}

// String returns the hyphen-delimited form of the route.
func (r Route) String() string {
	labels := make([]string, len(r))
	for i, n := range r {
		labels[i] = n.String()
	}
	return strings.Join(labels, RouteSeparator)
}
