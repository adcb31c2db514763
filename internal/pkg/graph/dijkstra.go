package graph

import (
	"container/heap"
	"math"
)

// AllDistancesFrom runs a single-source Dijkstra pass and returns the road
// distance in meters from source to every node. Unreachable nodes (and every
// node, when the source id is unknown) map to +Inf.
//
// Allocation calls this once per pickup so ranking N candidate cabs costs one
// O(V log V + E) pass plus N map lookups, instead of N point-to-point
// searches.
func (g *Graph) AllDistancesFrom(sourceID string) map[string]float64 {
	distances := make(map[string]float64, len(g.order))
	for _, id := range g.order {
		distances[id] = math.Inf(1)
	}
	if _, ok := g.nodes[sourceID]; !ok {
		return distances
	}
	distances[sourceID] = 0

	visited := make(map[string]bool)

	seq := 0
	queue := &searchQueue{}
	heap.Init(queue)
	heap.Push(queue, &searchItem{id: sourceID, priority: 0, seq: seq})

	for queue.Len() > 0 {
		current := heap.Pop(queue).(*searchItem)
		if visited[current.id] {
			continue
		}
		visited[current.id] = true

		for _, edge := range g.nodes[current.id].Edges {
			next := distances[current.id] + edge.Distance
			if next < distances[edge.Target] {
				distances[edge.Target] = next
				seq++
				heap.Push(queue, &searchItem{id: edge.Target, priority: next, seq: seq})
			}
		}
	}

	return distances
}
