package dispatch

import (
	"context"

	"github.com/google/uuid"
	"github.com/openfleet/cabdispatch/internal/pkg/models"
)

// DispatchUC defines the business logic of the dispatch engine. It is the
// only component allowed to mutate trip and cab state in response to a
// request.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/openfleet/cabdispatch/services/dispatch DispatchUC
type DispatchUC interface {
	RequestTrip(ctx context.Context, userID uuid.UUID, req *models.TripRequest) (*models.TripResponse, error)
	CompleteTrip(ctx context.Context, tripID, userID uuid.UUID) (*models.TripCompletion, error)
	CancelTrip(ctx context.Context, tripID, userID uuid.UUID) (*models.Trip, error)
	GetTrip(ctx context.Context, tripID, userID uuid.UUID) (*models.Trip, error)
	ListTrips(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error)

	RegisterCab(ctx context.Context, req *models.CabRequest) (*models.Cab, error)
	ListCabs(ctx context.Context) ([]*models.Cab, error)
	ListAvailableCabs(ctx context.Context) ([]*models.Cab, error)
	UpdateCabLocation(ctx context.Context, cabID uuid.UUID, update *models.CabLocationUpdate) (*models.Cab, error)
	UpdateCabStatus(ctx context.Context, cabID uuid.UUID, status models.CabStatus) (*models.Cab, error)
}
