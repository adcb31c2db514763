package graph

import (
	"container/heap"
	"math"
)

// PathResult is the outcome of a point-to-point search. A missing route is a
// normal outcome, reported as an infinite distance and an empty path.
type PathResult struct {
	Distance float64
	Path     []string
}

// NoPath reports whether the search found no route
func (r PathResult) NoPath() bool {
	return math.IsInf(r.Distance, 1)
}

type searchItem struct {
	id       string
	priority float64
	seq      int
	index    int
}

// searchQueue orders items by priority, breaking ties by insertion sequence
// so equal-cost frontiers expand deterministically.
type searchQueue []*searchItem

func (q searchQueue) Len() int { return len(q) }

func (q searchQueue) Less(i, j int) bool {
	if q[i].priority == q[j].priority {
		return q[i].seq < q[j].seq
	}
	return q[i].priority < q[j].priority
}

func (q searchQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *searchQueue) Push(x interface{}) {
	item := x.(*searchItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *searchQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// ShortestPath runs a best-first search from source to target using the
// straight-line distance to the target as an admissible heuristic. It
// returns the road distance in meters and the node sequence of the path.
func (g *Graph) ShortestPath(sourceID, targetID string) PathResult {
	noPath := PathResult{Distance: math.Inf(1), Path: []string{}}
	if _, ok := g.nodes[sourceID]; !ok {
		return noPath
	}
	if _, ok := g.nodes[targetID]; !ok {
		return noPath
	}

	gScore := map[string]float64{sourceID: 0}
	cameFrom := make(map[string]string)
	closed := make(map[string]bool)

	seq := 0
	open := &searchQueue{}
	heap.Init(open)
	heap.Push(open, &searchItem{id: sourceID, priority: g.heuristic(sourceID, targetID), seq: seq})

	for open.Len() > 0 {
		current := heap.Pop(open).(*searchItem)

		if current.id == targetID {
			return PathResult{
				Distance: gScore[targetID],
				Path:     reconstructPath(cameFrom, targetID),
			}
		}

		if closed[current.id] {
			continue
		}
		closed[current.id] = true

		for _, edge := range g.nodes[current.id].Edges {
			if closed[edge.Target] {
				continue
			}

			tentative := gScore[current.id] + edge.Distance
			if known, ok := gScore[edge.Target]; ok && tentative >= known {
				continue
			}

			cameFrom[edge.Target] = current.id
			gScore[edge.Target] = tentative

			// Stale queue entries are skipped via the closed set, so a
			// cheaper rediscovery can just push again.
			seq++
			heap.Push(open, &searchItem{
				id:       edge.Target,
				priority: tentative + g.heuristic(edge.Target, targetID),
				seq:      seq,
			})
		}
	}

	return noPath
}

func reconstructPath(cameFrom map[string]string, targetID string) []string {
	path := []string{targetID}
	current := targetID
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
