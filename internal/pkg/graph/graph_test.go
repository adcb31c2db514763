package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// campusGraph builds a small line network A-B-C with 100m legs plus a
// disconnected node D.
func campusGraph(t *testing.T) *Graph {
	t.Helper()
	g := New()
	g.AddNode("A", 0, 0)
	g.AddNode("B", 0, 0.001)
	g.AddNode("C", 0, 0.002)
	g.AddNode("D", 10, 10)
	require.NoError(t, g.AddEdge("A", "B", 100))
	require.NoError(t, g.AddEdge("B", "C", 100))
	return g
}

func TestHaversine(t *testing.T) {
	// one degree of latitude is roughly 111.2 km
	d := Haversine(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 200)

	assert.Equal(t, 0.0, Haversine(26.47, 73.12, 26.47, 73.12))
}

func TestAddEdgeValidation(t *testing.T) {
	g := New()
	g.AddNode("A", 0, 0)
	g.AddNode("B", 0, 1)

	assert.Error(t, g.AddEdge("A", "B", -5))
	assert.Error(t, g.AddEdge("A", "X", 10))
	assert.Error(t, g.AddEdge("X", "B", 10))
	assert.NoError(t, g.AddEdge("A", "B", 10))

	a, ok := g.Node("A")
	require.True(t, ok)
	b, ok := g.Node("B")
	require.True(t, ok)

	// undirected: both adjacency lists carry the edge
	require.Len(t, a.Edges, 1)
	require.Len(t, b.Edges, 1)
	assert.Equal(t, "B", a.Edges[0].Target)
	assert.Equal(t, "A", b.Edges[0].Target)
}

func TestNearestNode(t *testing.T) {
	g := campusGraph(t)

	n, err := g.NearestNode(0, 0.00095)
	require.NoError(t, err)
	assert.Equal(t, "B", n.ID)

	// idempotent: same coordinates, same node
	again, err := g.NearestNode(0, 0.00095)
	require.NoError(t, err)
	assert.Equal(t, n.ID, again.ID)
}

func TestNearestNodeTieBreaksByInsertionOrder(t *testing.T) {
	g := New()
	g.AddNode("first", 1, 1)
	g.AddNode("second", 1, 1)

	n, err := g.NearestNode(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "first", n.ID)
}

func TestNearestNodeEmptyGraph(t *testing.T) {
	_, err := New().NearestNode(0, 0)
	assert.ErrorIs(t, err, ErrEmptyGraph)
}

func TestShortestPath(t *testing.T) {
	g := campusGraph(t)

	res := g.ShortestPath("A", "C")
	assert.InDelta(t, 200, res.Distance, 1e-9)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
}

func TestShortestPathSameNode(t *testing.T) {
	g := campusGraph(t)

	res := g.ShortestPath("B", "B")
	assert.Equal(t, 0.0, res.Distance)
	assert.Equal(t, []string{"B"}, res.Path)
}

func TestShortestPathDisconnected(t *testing.T) {
	g := campusGraph(t)

	res := g.ShortestPath("A", "D")
	assert.True(t, res.NoPath())
	assert.True(t, math.IsInf(res.Distance, 1))
	assert.Empty(t, res.Path)
}

func TestShortestPathUnknownNodes(t *testing.T) {
	g := campusGraph(t)

	assert.True(t, g.ShortestPath("A", "nope").NoPath())
	assert.True(t, g.ShortestPath("nope", "A").NoPath())
}

func TestShortestPathPicksCheaperDetour(t *testing.T) {
	// direct A-C edge is more expensive than going through B
	g := New()
	g.AddNode("A", 0, 0)
	g.AddNode("B", 0, 0.001)
	g.AddNode("C", 0, 0.002)
	require.NoError(t, g.AddEdge("A", "B", 100))
	require.NoError(t, g.AddEdge("B", "C", 100))
	require.NoError(t, g.AddEdge("A", "C", 500))

	res := g.ShortestPath("A", "C")
	assert.InDelta(t, 200, res.Distance, 1e-9)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
}

func TestAllDistancesFrom(t *testing.T) {
	g := campusGraph(t)

	distances := g.AllDistancesFrom("A")
	assert.Equal(t, 0.0, distances["A"])
	assert.InDelta(t, 100, distances["B"], 1e-9)
	assert.InDelta(t, 200, distances["C"], 1e-9)
	assert.True(t, math.IsInf(distances["D"], 1))
}

func TestAllDistancesFromUnknownSource(t *testing.T) {
	g := campusGraph(t)

	distances := g.AllDistancesFrom("nope")
	require.Len(t, distances, 4)
	for _, d := range distances {
		assert.True(t, math.IsInf(d, 1))
	}
}

// Dijkstra and the heuristic search must agree on distances for every
// reachable pair, and both must report +Inf for disconnected pairs.
func TestSearchEquivalence(t *testing.T) {
	g := New()
	g.AddNode("A", 26.470, 73.110)
	g.AddNode("B", 26.471, 73.112)
	g.AddNode("C", 26.472, 73.113)
	g.AddNode("D", 26.470, 73.115)
	g.AddNode("E", 26.473, 73.116)
	g.AddNode("island", 26.5, 73.2)
	require.NoError(t, g.AddEdge("A", "B", 250))
	require.NoError(t, g.AddEdge("B", "C", 180))
	require.NoError(t, g.AddEdge("C", "D", 220))
	require.NoError(t, g.AddEdge("A", "D", 700))
	require.NoError(t, g.AddEdge("D", "E", 150))
	require.NoError(t, g.AddEdge("B", "E", 600))

	for _, source := range g.NodeIDs() {
		distances := g.AllDistancesFrom(source)
		for _, target := range g.NodeIDs() {
			res := g.ShortestPath(source, target)
			if math.IsInf(distances[target], 1) {
				assert.True(t, res.NoPath(), "%s->%s", source, target)
				continue
			}
			assert.InDelta(t, distances[target], res.Distance, 1e-6, "%s->%s", source, target)
		}
	}
}
