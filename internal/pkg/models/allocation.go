package models

// AllocationResult is the transient outcome of ranking candidate cabs for a
// pickup point. Only the distance and ETA are copied onto the trip; the path
// is kept for display.
type AllocationResult struct {
	Cab            *Cab     `json:"cab"`
	DistanceMeters float64  `json:"distance_meters"`
	ETASeconds     float64  `json:"eta_seconds"`
	Path           []string `json:"path"`
}
