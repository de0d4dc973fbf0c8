package domain

// Network is a loaded route graph together with the queries to ask of it.
type Network struct {
	// Graph is the immutable route graph.
	Graph *Graph
	// Plan lists the queries to evaluate, in report order.
	Plan []Query
	// Origin describes where the route data came from (a path, "stdin" or "inline").
	Origin string
	// Rejected holds the malformed route tokens that were skipped while parsing.
	Rejected []string
}

// NewNetwork parses text into a Network. When plan is empty the DefaultPlan is used.
func NewNetwork(origin, text string, plan []Query) *Network {
	edges, rejected := ParseRoutes(text)
	if len(plan) == 0 {
		plan = DefaultPlan()
	}
	return &Network{
		Graph:    NewGraph(edges...),
		Plan:     plan,
		Origin:   origin,
		Rejected: rejected,
	}
}
