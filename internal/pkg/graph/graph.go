package graph

import (
	"errors"
	"fmt"
	"math"
)

const earthRadiusMeters = 6371000.0

// ErrEmptyGraph is returned by NearestNode when the graph has no nodes.
var ErrEmptyGraph = errors.New("graph has no nodes")

// Edge is a weighted connection to a neighboring node
type Edge struct {
	Target   string
	Distance float64
}

// Node is a point in the road network with coordinates and adjacency
type Node struct {
	ID    string
	Lat   float64
	Lon   float64
	Edges []Edge
}

// Graph is an undirected weighted road network. Nodes iterate in insertion
// order so nearest-node ties resolve deterministically. The graph is
// immutable after load and safe to share across concurrent searches.
type Graph struct {
	nodes map[string]*Node
	order []string
}

// New creates an empty graph
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// AddNode registers a node. Adding an existing id is a no-op.
func (g *Graph) AddNode(id string, lat, lon float64) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &Node{ID: id, Lat: lat, Lon: lon}
	g.order = append(g.order, id)
}

// AddEdge connects two nodes in both directions with the given distance in
// meters. Both endpoints must already exist and the weight must be
// non-negative.
func (g *Graph) AddEdge(sourceID, targetID string, distance float64) error {
	if distance < 0 {
		return fmt.Errorf("negative edge weight %f between %s and %s", distance, sourceID, targetID)
	}
	source, ok := g.nodes[sourceID]
	if !ok {
		return fmt.Errorf("unknown edge source node %s", sourceID)
	}
	target, ok := g.nodes[targetID]
	if !ok {
		return fmt.Errorf("unknown edge target node %s", targetID)
	}
	source.Edges = append(source.Edges, Edge{Target: targetID, Distance: distance})
	target.Edges = append(target.Edges, Edge{Target: sourceID, Distance: distance})
	return nil
}

// Node returns the node with the given id
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Len returns the number of nodes
func (g *Graph) Len() int {
	return len(g.order)
}

// NodeIDs returns all node ids in insertion order
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.order))
	copy(ids, g.order)
	return ids
}

// NearestNode snaps a raw GPS coordinate to the closest graph node by
// great-circle distance. Ties keep the first node in insertion order.
func (g *Graph) NearestNode(lat, lon float64) (*Node, error) {
	if len(g.order) == 0 {
		return nil, ErrEmptyGraph
	}
	var nearest *Node
	minDistance := math.Inf(1)
	for _, id := range g.order {
		node := g.nodes[id]
		d := Haversine(lat, lon, node.Lat, node.Lon)
		if d < minDistance {
			minDistance = d
			nearest = node
		}
	}
	return nearest, nil
}

// Haversine returns the great-circle distance in meters between two
// coordinates.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// heuristic is the straight-line distance between two nodes. It never
// overestimates road distance, which keeps the best-first search optimal.
func (g *Graph) heuristic(fromID, toID string) float64 {
	from, ok := g.nodes[fromID]
	if !ok {
		return math.Inf(1)
	}
	to, ok := g.nodes[toID]
	if !ok {
		return math.Inf(1)
	}
	return Haversine(from.Lat, from.Lon, to.Lat, to.Lon)
}
