package routes

import (
	"math"

	"go.trai.ch/waypoint/internal/core/domain"
)

// CountWithMaxStops counts the walks from start to end that take between one
// and maxStops edges. Walks may revisit nodes and edges.
func (e *Engine) CountWithMaxStops(start, end domain.Node, maxStops int) int {
	return e.countMaxStops(start, end, 0, maxStops)
}

func (e *Engine) countMaxStops(current, end domain.Node, stops, maxStops int) int {
	if stops > maxStops {
		return 0
	}

	count := 0
	// The empty walk never counts, even when start == end.
	if stops > 0 && current == end {
		count++
	}
	if stops == maxStops {
		return count
	}

	for next := range e.graph.Neighbors(current) {
		count += e.countMaxStops(next, end, stops+1, maxStops)
	}
	return count
}

// CountWithExactStops counts the walks from start to end that take exactly
// stops edges. With stops == 0 the only candidate is the empty walk.
func (e *Engine) CountWithExactStops(start, end domain.Node, stops int) int {
	return e.countExactStops(start, end, 0, stops)
}

func (e *Engine) countExactStops(current, end domain.Node, stops, target int) int {
	if stops > target {
		return 0
	}
	if stops == target {
		if current == end {
			return 1
		}
		return 0
	}

	count := 0
	for next := range e.graph.Neighbors(current) {
		count += e.countExactStops(next, end, stops+1, target)
	}
	return count
}

// CountWithMaxDistance counts the walks from start to end whose total distance
// is strictly less than maxDistance. Every arrival at end under the bound counts,
// so a walk that passes through end and continues is counted once per visit.
//
// A walk is also cut off once it has maxDistance*NodeCount edges. A walk under
// the bound has fewer than maxDistance positive edges and fewer than NodeCount
// edges in each zero-distance stretch that does not repeat a node, so the cap
// only trims walks that go around a zero-distance cycle.
func (e *Engine) CountWithMaxDistance(start, end domain.Node, maxDistance int) int {
	if maxDistance <= 0 {
		return 0
	}
	return e.countMaxDistance(start, end, 0, 0, maxDistance, edgeCap(maxDistance, e.graph.NodeCount()))
}

func (e *Engine) countMaxDistance(current, end domain.Node, travelled, stops, maxDistance, maxStops int) int {
	if stops >= maxStops {
		return 0
	}

	count := 0
	for next, d := range e.graph.Neighbors(current) {
		total := travelled + d
		if total >= maxDistance {
			continue
		}
		if next == end {
			count++
		}
		count += e.countMaxDistance(next, end, total, stops+1, maxDistance, maxStops)
	}
	return count
}

// edgeCap returns maxDistance*nodes, saturating at math.MaxInt.
func edgeCap(maxDistance, nodes int) int {
	if nodes == 0 {
		return 0
	}
	if maxDistance > math.MaxInt/nodes {
		return math.MaxInt
	}
	return maxDistance * nodes
}
