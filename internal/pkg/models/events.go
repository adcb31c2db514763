package models

import (
	"time"

	"github.com/google/uuid"
)

// TripAssignedEvent is published when a cab has been allocated to a trip
type TripAssignedEvent struct {
	TripID             uuid.UUID `json:"trip_id"`
	CabID              uuid.UUID `json:"cab_id"`
	UserID             uuid.UUID `json:"user_id"`
	EstDurationSeconds int       `json:"est_duration_seconds"`
	AssignedAt         time.Time `json:"assigned_at"`
}

// TripCompletedEvent is published when a trip reaches the completed state
type TripCompletedEvent struct {
	TripID      uuid.UUID `json:"trip_id"`
	CabID       *uuid.UUID `json:"cab_id,omitempty"`
	UserID      uuid.UUID `json:"user_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// CabLocationEvent is published on every cab location change. When the cab
// is bound to an active trip the event also forwards the trip id and the
// remaining seconds of its estimated duration.
type CabLocationEvent struct {
	CabID            uuid.UUID  `json:"cab_id"`
	Latitude         float64    `json:"lat"`
	Longitude        float64    `json:"lon"`
	Timestamp        time.Time  `json:"timestamp"`
	TripID           *uuid.UUID `json:"trip_id,omitempty"`
	RemainingSeconds *int       `json:"remaining_seconds,omitempty"`
}
