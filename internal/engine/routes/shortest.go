package routes

import (
	"container/heap"

	"go.trai.ch/waypoint/internal/core/domain"
)

// shortestPath runs Dijkstra's algorithm from start and stops as soon as end
// is settled. It reports false when start is unknown or end is unreachable.
//
// The frontier uses lazy decrease-key: improved distances are pushed again and
// stale entries are skipped when popped.
func (e *Engine) shortestPath(start, end domain.Node) (int, bool) {
	if !e.graph.HasNode(start) {
		return 0, false
	}

	dist := map[domain.Node]int{start: 0}
	settled := make(map[domain.Node]bool, e.graph.NodeCount())
	pq := frontier{{node: start, dist: 0}}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(frontierItem)
		if settled[item.node] {
			continue
		}
		settled[item.node] = true

		if item.node == end {
			return item.dist, true
		}

		for next, w := range e.graph.Neighbors(item.node) {
			if settled[next] {
				continue
			}
			candidate := item.dist + w
			if known, ok := dist[next]; ok && candidate >= known {
				continue
			}
			dist[next] = candidate
			heap.Push(&pq, frontierItem{node: next, dist: candidate})
		}
	}

	return 0, false
}

// shortestCycle returns the length of the shortest cycle through n, which
// always leaves n by at least one edge: for every outbound edge n -> m it adds
// the edge distance to the shortest path from m back to n.
func (e *Engine) shortestCycle(n domain.Node) (int, bool) {
	best, found := 0, false
	for next, w := range e.graph.Neighbors(n) {
		back, ok := e.shortestPath(next, n)
		if !ok {
			continue
		}
		if cycle := w + back; !found || cycle < best {
			best, found = cycle, true
		}
	}
	return best, found
}

// frontierItem is a node together with its tentative distance from the source.
type frontierItem struct {
	node domain.Node
	dist int
}

// frontier is a min-heap of frontierItem ordered by distance.
type frontier []frontierItem

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
