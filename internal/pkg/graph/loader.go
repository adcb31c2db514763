package graph

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// The road network ships as a JSON document with a nodes section and an
// edges section, each of which appears in two encodings in the wild: a flat
// list of records or a keyed map. Both are normalized here, at the load
// boundary, into the one canonical in-memory graph.

// flexID accepts both string and numeric JSON ids
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexID(n.String())
		return nil
	}
	return fmt.Errorf("node id must be a string or number, got %s", string(data))
}

type nodeRecord struct {
	ID  flexID  `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type edgeRecord struct {
	Source   flexID  `json:"source"`
	Target   flexID  `json:"target"`
	Distance float64 `json:"distance"`
}

type document struct {
	Nodes json.RawMessage `json:"nodes"`
	Edges json.RawMessage `json:"edges"`
}

// LoadFile reads a road-network document from disk
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph file: %w", err)
	}
	return Load(data)
}

// Load parses a road-network JSON document into a graph
func Load(data []byte) (*Graph, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse graph document: %w", err)
	}
	if len(doc.Nodes) == 0 {
		return nil, fmt.Errorf("graph document has no nodes section")
	}

	g := New()
	if err := loadNodes(g, doc.Nodes); err != nil {
		return nil, err
	}
	if len(doc.Edges) > 0 {
		if err := loadEdges(g, doc.Edges); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func loadNodes(g *Graph, raw json.RawMessage) error {
	// List form: [{"id": ..., "lat": ..., "lon": ...}, ...]
	var records []nodeRecord
	if err := json.Unmarshal(raw, &records); err == nil {
		for _, rec := range records {
			g.AddNode(string(rec.ID), rec.Lat, rec.Lon)
		}
		return nil
	}

	// Map form: {"nodeId": {"lat": ..., "lon": ...}, ...}
	var byID map[string]nodeRecord
	if err := json.Unmarshal(raw, &byID); err != nil {
		return fmt.Errorf("nodes section is neither a record list nor an id map: %w", err)
	}
	for _, id := range sortedKeys(byID) {
		rec := byID[id]
		g.AddNode(id, rec.Lat, rec.Lon)
	}
	return nil
}

func loadEdges(g *Graph, raw json.RawMessage) error {
	// List form: [{"source": ..., "target": ..., "distance": ...}, ...]
	var records []edgeRecord
	if err := json.Unmarshal(raw, &records); err == nil {
		for _, rec := range records {
			if err := g.AddEdge(string(rec.Source), string(rec.Target), rec.Distance); err != nil {
				return err
			}
		}
		return nil
	}

	var byKey map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byKey); err != nil {
		return fmt.Errorf("edges section is neither a record list nor a map: %w", err)
	}

	for _, key := range sortedKeys(byKey) {
		value := byKey[key]

		// Keyed-record form: {"edgeId": {"source": ..., "target": ..., "distance": ...}}
		var rec edgeRecord
		if err := json.Unmarshal(value, &rec); err == nil && rec.Source != "" && rec.Target != "" {
			if err := g.AddEdge(string(rec.Source), string(rec.Target), rec.Distance); err != nil {
				return err
			}
			continue
		}

		// Adjacency form: {"sourceId": {"targetId": meters, ...}}
		var targets map[string]float64
		if err := json.Unmarshal(value, &targets); err != nil {
			return fmt.Errorf("unrecognized edge encoding for %q", key)
		}
		for _, target := range sortedKeys(targets) {
			if err := g.AddEdge(key, target, targets[target]); err != nil {
				return err
			}
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// JSON map order is not preserved by encoding/json, so sort keys to keep
	// node ordering stable between loads
	sort.Strings(keys)
	return keys
}
