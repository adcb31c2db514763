package gateway

import (
	"context"
	"fmt"

	"github.com/openfleet/cabdispatch/internal/pkg/constants"
	"github.com/openfleet/cabdispatch/internal/pkg/models"
	nsqpkg "github.com/openfleet/cabdispatch/internal/pkg/nsq"
	"github.com/openfleet/cabdispatch/services/dispatch"
)

type dispatchGW struct {
	producer *nsqpkg.Producer
}

// NewDispatchGW creates the NSQ-backed event gateway
func NewDispatchGW(producer *nsqpkg.Producer) dispatch.DispatchGW {
	return &dispatchGW{producer: producer}
}

// PublishTripAssigned announces a cab allocation to connected clients
func (g *dispatchGW) PublishTripAssigned(ctx context.Context, event models.TripAssignedEvent) error {
	if err := g.producer.Publish(constants.TopicTripAssigned, event); err != nil {
		return fmt.Errorf("failed to publish trip assigned event: %w", err)
	}
	return nil
}

// PublishTripCompleted announces a trip completion
func (g *dispatchGW) PublishTripCompleted(ctx context.Context, event models.TripCompletedEvent) error {
	if err := g.producer.Publish(constants.TopicTripCompleted, event); err != nil {
		return fmt.Errorf("failed to publish trip completed event: %w", err)
	}
	return nil
}

// PublishCabLocation fans out a cab position change
func (g *dispatchGW) PublishCabLocation(ctx context.Context, event models.CabLocationEvent) error {
	if err := g.producer.Publish(constants.TopicCabLocation, event); err != nil {
		return fmt.Errorf("failed to publish cab location event: %w", err)
	}
	return nil
}
