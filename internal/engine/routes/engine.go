// Package routes implements the route query engine: explicit route distances,
// bounded walk counting and shortest routes over an immutable domain.Graph.
package routes

import (
	"go.trai.ch/waypoint/internal/core/domain"
	"go.trai.ch/zerr"
)

// Engine answers route queries against a read-only graph.
// It holds no mutable state, so one Engine may serve concurrent callers.
type Engine struct {
	graph *domain.Graph
}

// New creates an Engine over g. A nil graph is treated as empty.
func New(g *domain.Graph) *Engine {
	if g == nil {
		g = domain.NewGraph()
	}
	return &Engine{graph: g}
}

// Graph returns the graph the engine queries.
func (e *Engine) Graph() *domain.Graph {
	return e.graph
}

// Distance returns the total distance of the route, following direct edges only.
// A route with fewer than two stops has distance 0. If any leg has no direct
// edge the result is ErrNoSuchRoute, never a partial sum.
func (e *Engine) Distance(route domain.Route) (int, error) {
	total := 0
	for from, to := range route.Legs() {
		d, ok := e.graph.Edge(from, to)
		if !ok {
			return 0, domain.NoSuchRoute(from, to)
		}
		total += d
	}
	return total, nil
}

// ShortestRoute returns the length of the shortest route from start to end.
// When start equals end the route must be a real cycle of at least one edge.
func (e *Engine) ShortestRoute(start, end domain.Node) (int, error) {
	var (
		d  int
		ok bool
	)
	if start == end {
		d, ok = e.shortestCycle(start)
	} else {
		d, ok = e.shortestPath(start, end)
	}
	if !ok {
		return 0, domain.NoSuchRoute(start, end)
	}
	return d, nil
}

// Evaluate answers a single query. Invalid queries are reported in Result.Err.
func (e *Engine) Evaluate(q domain.Query) domain.Result {
	res := domain.Result{Query: q}
	if err := q.Validate(); err != nil {
		res.Err = err
		return res
	}

	switch q.Kind {
	case domain.QueryDistance:
		res.Value, res.Err = e.Distance(q.Route)
	case domain.QueryMaxStops:
		res.Value = e.CountWithMaxStops(q.From, q.To, q.Limit)
	case domain.QueryExactStops:
		res.Value = e.CountWithExactStops(q.From, q.To, q.Limit)
	case domain.QueryShortest:
		res.Value, res.Err = e.ShortestRoute(q.From, q.To)
	case domain.QueryMaxDistance:
		res.Value = e.CountWithMaxDistance(q.From, q.To, q.Limit)
	default:
		res.Err = zerr.With(zerr.Wrap(domain.ErrUnknownQueryKind, ""), "kind", string(q.Kind))
	}
	return res
}
