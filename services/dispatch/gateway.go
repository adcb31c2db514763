package dispatch

import (
	"context"

	"github.com/openfleet/cabdispatch/internal/pkg/models"
)

// DispatchGW defines the domain events the engine emits to the fan-out
// transport. Delivery semantics are the transport's problem.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/openfleet/cabdispatch/services/dispatch DispatchGW
type DispatchGW interface {
	PublishTripAssigned(ctx context.Context, event models.TripAssignedEvent) error
	PublishTripCompleted(ctx context.Context, event models.TripCompletedEvent) error
	PublishCabLocation(ctx context.Context, event models.CabLocationEvent) error
}
