package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCampusShape(t *testing.T, g *Graph) {
	t.Helper()
	require.Equal(t, 3, g.Len())

	res := g.ShortestPath("1", "3")
	assert.InDelta(t, 200, res.Distance, 1e-9)
	assert.Equal(t, []string{"1", "2", "3"}, res.Path)
}

func TestLoadNodeListEdgeList(t *testing.T) {
	doc := `{
		"nodes": [
			{"id": 1, "lat": 0, "lon": 0},
			{"id": 2, "lat": 0, "lon": 0.001},
			{"id": 3, "lat": 0, "lon": 0.002}
		],
		"edges": [
			{"source": 1, "target": 2, "distance": 100},
			{"source": 2, "target": 3, "distance": 100}
		]
	}`

	g, err := Load([]byte(doc))
	require.NoError(t, err)
	assertCampusShape(t, g)
}

func TestLoadNodeMapNestedEdgeMap(t *testing.T) {
	doc := `{
		"nodes": {
			"1": {"lat": 0, "lon": 0},
			"2": {"lat": 0, "lon": 0.001},
			"3": {"lat": 0, "lon": 0.002}
		},
		"edges": {
			"1": {"2": 100},
			"2": {"3": 100}
		}
	}`

	g, err := Load([]byte(doc))
	require.NoError(t, err)
	assertCampusShape(t, g)
}

func TestLoadKeyedEdgeRecords(t *testing.T) {
	doc := `{
		"nodes": {
			"1": {"lat": 0, "lon": 0},
			"2": {"lat": 0, "lon": 0.001},
			"3": {"lat": 0, "lon": 0.002}
		},
		"edges": {
			"e1": {"source": "1", "target": "2", "distance": 100},
			"e2": {"source": "2", "target": "3", "distance": 100}
		}
	}`

	g, err := Load([]byte(doc))
	require.NoError(t, err)
	assertCampusShape(t, g)
}

func TestLoadNoEdges(t *testing.T) {
	doc := `{"nodes": [{"id": "a", "lat": 1, "lon": 2}]}`

	g, err := Load([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, 1, g.Len())

	n, ok := g.Node("a")
	require.True(t, ok)
	assert.Empty(t, n.Edges)
}

func TestLoadRejectsBadDocuments(t *testing.T) {
	cases := map[string]string{
		"not json":         `{"nodes": `,
		"missing nodes":    `{"edges": []}`,
		"bad node section": `{"nodes": 42}`,
		"negative weight":  `{"nodes": [{"id":"a","lat":0,"lon":0},{"id":"b","lat":0,"lon":1}], "edges": [{"source":"a","target":"b","distance":-1}]}`,
		"unknown endpoint": `{"nodes": [{"id":"a","lat":0,"lon":0}], "edges": [{"source":"a","target":"ghost","distance":5}]}`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadEncodingsAreEquivalent(t *testing.T) {
	listDoc := `{
		"nodes": [{"id": "x", "lat": 0, "lon": 0}, {"id": "y", "lat": 0, "lon": 0.01}],
		"edges": [{"source": "x", "target": "y", "distance": 1200}]
	}`
	mapDoc := `{
		"nodes": {"x": {"lat": 0, "lon": 0}, "y": {"lat": 0, "lon": 0.01}},
		"edges": {"x": {"y": 1200}}
	}`

	fromList, err := Load([]byte(listDoc))
	require.NoError(t, err)
	fromMap, err := Load([]byte(mapDoc))
	require.NoError(t, err)

	for _, pair := range [][2]string{{"x", "y"}, {"y", "x"}} {
		a := fromList.ShortestPath(pair[0], pair[1])
		b := fromMap.ShortestPath(pair[0], pair[1])
		assert.Equal(t, a.Distance, b.Distance)
		assert.Equal(t, a.Path, b.Path)
	}

	da := fromList.AllDistancesFrom("x")
	db := fromMap.AllDistancesFrom("x")
	require.Len(t, db, len(da))
	for id, d := range da {
		if math.IsInf(d, 1) {
			assert.True(t, math.IsInf(db[id], 1))
			continue
		}
		assert.Equal(t, d, db[id])
	}
}
