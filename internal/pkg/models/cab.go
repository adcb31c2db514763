package models

import (
	"time"

	"github.com/google/uuid"
)

// CabStatus represents the current status of a cab
type CabStatus string

const (
	CabStatusAvailable CabStatus = "available"
	CabStatusOnTrip    CabStatus = "on_trip"
	CabStatusOffline   CabStatus = "offline"
)

// Cab represents a fleet vehicle and its last known position
type Cab struct {
	ID         uuid.UUID `json:"id" db:"id"`
	DriverName string    `json:"driver_name" db:"driver_name"`
	VehicleNo  string    `json:"vehicle_no" db:"vehicle_no"`
	Latitude   float64   `json:"lat" db:"lat"`
	Longitude  float64   `json:"lon" db:"lon"`
	Status     CabStatus `json:"status" db:"status"`
	LastUpdate time.Time `json:"last_update" db:"last_update"`
}

// IsAvailable reports whether the cab can be offered a trip. A staleness
// window of zero disables the recency check.
func (c *Cab) IsAvailable(staleness time.Duration) bool {
	if c.Status != CabStatusAvailable {
		return false
	}
	if staleness <= 0 {
		return true
	}
	return time.Since(c.LastUpdate) < staleness
}

// CabLocationUpdate is the payload of a driver/simulator location ping.
// Pointers distinguish a missing field from a zero coordinate.
type CabLocationUpdate struct {
	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"lon"`
}

// CabRequest is the admin payload for registering a cab
type CabRequest struct {
	DriverName string  `json:"driver_name"`
	VehicleNo  string  `json:"vehicle_no"`
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lon"`
}
