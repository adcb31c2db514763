// Package allocation ranks candidate cabs for a pickup point over the road
// graph. Strategies are pure computations over supplied snapshots; they
// touch no persistent state.
package allocation

import (
	"math"
	"time"

	"github.com/openfleet/cabdispatch/internal/pkg/graph"
	"github.com/openfleet/cabdispatch/internal/pkg/models"
)

// DefaultSpeedMps is the assumed average cab speed, roughly 30 km/h.
const DefaultSpeedMps = 8.33

// Strategy picks one cab from a candidate set for a trip's pickup point.
// Assign returns nil when no candidate can serve the trip: an empty list, a
// pickup that cannot be snapped, or no reachable candidate.
type Strategy interface {
	Assign(trip *models.Trip, candidates []*models.Cab) *models.AllocationResult
}

// GraphAllocation selects the candidate with the minimum ETA over the road
// graph. One Dijkstra pass from the pickup node prices every candidate, so
// ranking stays O(V log V + E) regardless of fleet size; a single
// point-to-point search then materializes the winner's path for display.
type GraphAllocation struct {
	graph     *graph.Graph
	speedMps  float64
	staleness time.Duration
}

// NewGraphAllocation creates a graph-based strategy. A non-positive speed
// falls back to DefaultSpeedMps; a non-positive staleness disables the
// recency check on candidates.
func NewGraphAllocation(g *graph.Graph, speedMps float64, staleness time.Duration) *GraphAllocation {
	if speedMps <= 0 {
		speedMps = DefaultSpeedMps
	}
	return &GraphAllocation{
		graph:     g,
		speedMps:  speedMps,
		staleness: staleness,
	}
}

// Assign implements Strategy. Candidates are expected to be pre-filtered to
// available cabs; availability is re-checked defensively anyway since the
// check is free and side-effect-less. Ties on ETA keep the first candidate
// in iteration order.
func (a *GraphAllocation) Assign(trip *models.Trip, candidates []*models.Cab) *models.AllocationResult {
	if len(candidates) == 0 {
		return nil
	}

	pickupNode, err := a.graph.NearestNode(trip.PickupLat, trip.PickupLon)
	if err != nil {
		return nil
	}

	distances := a.graph.AllDistancesFrom(pickupNode.ID)

	var best *models.AllocationResult
	minETA := math.Inf(1)
	for _, cab := range candidates {
		if !cab.IsAvailable(a.staleness) {
			continue
		}

		cabNode, err := a.graph.NearestNode(cab.Latitude, cab.Longitude)
		if err != nil {
			return nil
		}

		distance, ok := distances[cabNode.ID]
		if !ok || math.IsInf(distance, 1) {
			// cab cannot reach the pickup over the graph
			continue
		}

		eta := distance / a.speedMps
		if eta < minETA {
			minETA = eta
			best = &models.AllocationResult{
				Cab:            cab,
				DistanceMeters: distance,
				ETASeconds:     eta,
			}
		}
	}

	if best == nil {
		return nil
	}

	// one path search for the winner only; the ranking never needed paths
	winnerNode, err := a.graph.NearestNode(best.Cab.Latitude, best.Cab.Longitude)
	if err == nil {
		best.Path = a.graph.ShortestPath(winnerNode.ID, pickupNode.ID).Path
	}

	return best
}
