package dispatch

import (
	"context"

	"github.com/google/uuid"
	"github.com/openfleet/cabdispatch/internal/pkg/models"
)

// Assignment is the decision handed back by an AllocateFunc: which cab to
// bind to the trip and the estimates to persist with it.
type Assignment struct {
	CabID              uuid.UUID
	EstDistanceMeters  int
	EstDurationSeconds int
}

// AllocateFunc ranks the candidate cabs fetched inside the assignment
// transaction. It must be pure: nil means the trip stays unassigned.
type AllocateFunc func(candidates []*models.Cab) *Assignment

// DispatchRepo defines the persistence operations of the dispatch engine.
// Multi-step mutations run inside a single transaction so that a trip
// marked assigned and its cab marked on_trip are never observable apart.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/openfleet/cabdispatch/services/dispatch DispatchRepo
type DispatchRepo interface {
	// CreateTripWithAssignment inserts the trip, fetches available cabs,
	// invokes allocate, and either binds the chosen cab (trip -> assigned,
	// cab -> on_trip) or commits the trip as requested with no cab.
	CreateTripWithAssignment(ctx context.Context, trip *models.Trip, allocate AllocateFunc) (*models.Trip, *models.Cab, error)

	// CompleteTrip locks the trip row, validates ownership and state, marks
	// it completed, and frees the cab at the snapped destination.
	CompleteTrip(ctx context.Context, tripID, userID uuid.UUID, destLat, destLon float64) (*models.TripCompletion, error)

	// CancelTrip transitions a still-unassigned trip to cancelled.
	CancelTrip(ctx context.Context, tripID, userID uuid.UUID) (*models.Trip, error)

	GetTrip(ctx context.Context, tripID, userID uuid.UUID) (*models.Trip, error)
	ListTripsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error)

	// GetActiveTripForCab returns the assigned trip currently bound to the
	// cab, or ErrNotFound when the cab has none.
	GetActiveTripForCab(ctx context.Context, cabID uuid.UUID) (*models.Trip, error)

	CreateCab(ctx context.Context, cab *models.Cab) error
	GetCab(ctx context.Context, cabID uuid.UUID) (*models.Cab, error)
	ListCabs(ctx context.Context) ([]*models.Cab, error)
	ListAvailableCabs(ctx context.Context) ([]*models.Cab, error)
	UpdateCabLocation(ctx context.Context, cabID uuid.UUID, lat, lon float64) (*models.Cab, error)
	UpdateCabStatus(ctx context.Context, cabID uuid.UUID, status models.CabStatus) (*models.Cab, error)
}

// CabCache is the low-latency mirror of cab positions, written on every
// location ping. It is best-effort: the relational store stays the source
// of truth for allocation.
//
//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks github.com/openfleet/cabdispatch/services/dispatch CabCache
type CabCache interface {
	StoreCabLocation(ctx context.Context, cabID uuid.UUID, lat, lon float64) error
	GetCabLocation(ctx context.Context, cabID uuid.UUID) (lat, lon float64, err error)
}
