package domain

import (
	"errors"
	"fmt"

	"go.trai.ch/zerr"
)

// QueryKind identifies one of the supported route queries.
type QueryKind string

const (
	// QueryDistance sums the direct edge distances along an explicit route.
	QueryDistance QueryKind = "distance"
	// QueryMaxStops counts walks with between one and Limit stops.
	QueryMaxStops QueryKind = "max-stops"
	// QueryExactStops counts walks with exactly Limit stops.
	QueryExactStops QueryKind = "exact-stops"
	// QueryShortest finds the length of the shortest route.
	QueryShortest QueryKind = "shortest"
	// QueryMaxDistance counts walks whose total distance is strictly less than Limit.
	QueryMaxDistance QueryKind = "max-distance"
)

// Query is a single question asked of the route graph.
// Route is used by QueryDistance; From and To by every other kind; Limit by the counting kinds.
type Query struct {
	Kind  QueryKind
	Route Route
	From  Node
	To    Node
	Limit int
}

// DistanceQuery asks for the total distance of route.
func DistanceQuery(route Route) Query {
	return Query{Kind: QueryDistance, Route: route}
}

// MaxStopsQuery asks for the number of walks from -> to with at most maxStops stops.
func MaxStopsQuery(from, to Node, maxStops int) Query {
	return Query{Kind: QueryMaxStops, From: from, To: to, Limit: maxStops}
}

// ExactStopsQuery asks for the number of walks from -> to with exactly stops stops.
func ExactStopsQuery(from, to Node, stops int) Query {
	return Query{Kind: QueryExactStops, From: from, To: to, Limit: stops}
}

// ShortestQuery asks for the length of the shortest route from -> to.
func ShortestQuery(from, to Node) Query {
	return Query{Kind: QueryShortest, From: from, To: to}
}

// MaxDistanceQuery asks for the number of walks from -> to shorter than maxDistance.
func MaxDistanceQuery(from, to Node, maxDistance int) Query {
	return Query{Kind: QueryMaxDistance, From: from, To: to, Limit: maxDistance}
}

// Validate checks that the query carries the fields its kind needs.
func (q Query) Validate() error {
	switch q.Kind {
	case QueryDistance:
		if len(q.Route) == 0 {
			return zerr.With(zerr.Wrap(ErrInvalidQuery, "distance query needs a route"), "kind", string(q.Kind))
		}
		return nil
	case QueryMaxStops, QueryExactStops, QueryShortest, QueryMaxDistance:
		if q.From.IsZero() || q.To.IsZero() {
			return zerr.With(zerr.Wrap(ErrInvalidQuery, "query needs both endpoints"), "kind", string(q.Kind))
		}
		return nil
	default:
		return zerr.With(zerr.Wrap(ErrUnknownQueryKind, ""), "kind", string(q.Kind))
	}
}

// String returns a short human readable description of the query.
func (q Query) String() string {
	switch q.Kind {
	case QueryDistance:
		return "distance " + q.Route.String()
	case QueryMaxStops:
		return fmt.Sprintf("trips %s->%s with at most %d stops", q.From, q.To, q.Limit)
	case QueryExactStops:
		return fmt.Sprintf("trips %s->%s with exactly %d stops", q.From, q.To, q.Limit)
	case QueryShortest:
		return fmt.Sprintf("shortest %s->%s", q.From, q.To)
	case QueryMaxDistance:
		return fmt.Sprintf("routes %s->%s shorter than %d", q.From, q.To, q.Limit)
	default:
		return string(q.Kind)
	}
}

// Result is the answer to a Query. Err is ErrNoSuchRoute (possibly wrapped)
// when a distance or shortest route does not exist; Value is meaningless then.
type Result struct {
	Query Query
	Value int
	Err   error
}

// Found reports whether the result carries a value.
func (r Result) Found() bool {
	return r.Err == nil
}

// NoRoute reports whether the query had no route.
func (r Result) NoRoute() bool {
	return errors.Is(r.Err, ErrNoSuchRoute)
}

// DefaultPlan returns the standard set of eight questions asked of a route graph.
func DefaultPlan() []Query {
	a, b, c := NewNode("A"), NewNode("B"), NewNode("C")

	return []Query{
		DistanceQuery(MustParseRoute("A-B-C")),
		DistanceQuery(MustParseRoute("A-E-B-C-D")),
		DistanceQuery(MustParseRoute("A-E-D")),
		MaxStopsQuery(c, c, 3),
		ExactStopsQuery(a, c, 4),
		ShortestQuery(a, c),
		ShortestQuery(b, b),
		MaxDistanceQuery(c, c, 30),
	}
}
