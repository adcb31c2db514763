package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusRequested TripStatus = "requested"
	TripStatusAssigned  TripStatus = "assigned"
	TripStatusEnroute   TripStatus = "enroute"
	TripStatusOngoing   TripStatus = "ongoing"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s TripStatus) IsTerminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// Trip represents a single ride request and its lifecycle record. CabID is a
// weak reference: deleting a cab nullifies it rather than cascading into trip
// history.
type Trip struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	UserID             uuid.UUID  `json:"user_id" db:"user_id"`
	CabID              *uuid.UUID `json:"cab_id,omitempty" db:"cab_id"`
	PickupLat          float64    `json:"pickup_lat" db:"pickup_lat"`
	PickupLon          float64    `json:"pickup_lon" db:"pickup_lon"`
	DestLat            float64    `json:"dest_lat" db:"dest_lat"`
	DestLon            float64    `json:"dest_lon" db:"dest_lon"`
	Status             TripStatus `json:"status" db:"status"`
	RequestedAt        time.Time  `json:"requested_at" db:"requested_at"`
	AssignedAt         *time.Time `json:"assigned_at,omitempty" db:"assigned_at"`
	StartedAt          *time.Time `json:"started_at,omitempty" db:"started_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	EstDistanceMeters  *int       `json:"est_distance_meters,omitempty" db:"est_distance_meters"`
	EstDurationSeconds *int       `json:"est_duration_seconds,omitempty" db:"est_duration_seconds"`
}

// TripRequest is the payload of a trip request. All four coordinates are
// required; the destination is mandatory so distance and duration can be
// estimated up front. Pointers distinguish a missing field from a zero
// coordinate.
type TripRequest struct {
	PickupLat *float64 `json:"pickup_lat"`
	PickupLon *float64 `json:"pickup_lon"`
	DestLat   *float64 `json:"dest_lat"`
	DestLon   *float64 `json:"dest_lon"`
}

// TripResponse is the outcome of a trip request. AssignedCab is nil when no
// cab could be allocated, in which case the trip stays in requested status.
type TripResponse struct {
	TripID             uuid.UUID  `json:"trip_id"`
	AssignedCab        *Cab       `json:"assigned_cab,omitempty"`
	EstDistanceMeters  *int       `json:"est_distance_meters,omitempty"`
	EstDurationSeconds *int       `json:"est_duration_seconds,omitempty"`
	Status             TripStatus `json:"status"`
}

// TripCompletion bundles the trip and cab snapshots returned by CompleteTrip
type TripCompletion struct {
	Trip *Trip `json:"trip"`
	Cab  *Cab  `json:"cab,omitempty"`
}
