package nsq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/openfleet/cabdispatch/internal/pkg/constants"
	"github.com/openfleet/cabdispatch/internal/pkg/models"
	nsqpkg "github.com/openfleet/cabdispatch/internal/pkg/nsq"
	"github.com/openfleet/cabdispatch/services/dispatch"
)

// AutoCompleteHandler consumes trip assignment events and completes each
// trip once its estimated duration has elapsed. Trips the rider completes
// or cancels first are left alone.
type AutoCompleteHandler struct {
	dispatchUC dispatch.DispatchUC
	consumer   *nsqpkg.Consumer

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewAutoCompleteHandler creates the handler and subscribes it to the trip
// assignment topic on the auto-complete channel.
func NewAutoCompleteHandler(dispatchUC dispatch.DispatchUC, cfg *models.Config) (*AutoCompleteHandler, error) {
	h := &AutoCompleteHandler{
		dispatchUC: dispatchUC,
		timers:     make(map[string]*time.Timer),
	}

	consumer, err := nsqpkg.NewConsumer(
		constants.TopicTripAssigned,
		constants.ChannelAutoComplete,
		cfg.NSQ.Address,
		h.handleTripAssigned,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe auto-complete consumer: %w", err)
	}
	h.consumer = consumer

	if len(cfg.NSQ.LookupAddresses) > 0 {
		if err := consumer.ConnectToLookupd(cfg.NSQ.LookupAddresses); err != nil {
			consumer.Stop()
			return nil, err
		}
	}

	return h, nil
}

func (h *AutoCompleteHandler) handleTripAssigned(body []byte) error {
	var event models.TripAssignedEvent
	if err := nsqpkg.UnmarshalMessage(body, &event); err != nil {
		// Undecodable messages would requeue forever, drop them.
		logrus.WithError(err).Warn("dropping malformed trip assignment event")
		return nil
	}

	delay := time.Duration(event.EstDurationSeconds) * time.Second
	if elapsed := time.Since(event.AssignedAt); elapsed > 0 {
		delay -= elapsed
	}
	if delay < 0 {
		delay = 0
	}

	logrus.WithFields(logrus.Fields{
		"trip_id":  event.TripID,
		"cab_id":   event.CabID,
		"delay_ms": delay.Milliseconds(),
	}).Info("scheduling trip auto-completion")

	h.mu.Lock()
	key := event.TripID.String()
	if timer, ok := h.timers[key]; ok {
		timer.Stop()
	}
	h.timers[key] = time.AfterFunc(delay, func() {
		h.completeTrip(event)
	})
	h.mu.Unlock()

	return nil
}

func (h *AutoCompleteHandler) completeTrip(event models.TripAssignedEvent) {
	h.mu.Lock()
	delete(h.timers, event.TripID.String())
	h.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := h.dispatchUC.CompleteTrip(ctx, event.TripID, event.UserID)
	switch {
	case err == nil:
		logrus.WithField("trip_id", event.TripID).Info("trip auto-completed")
	case errors.Is(err, dispatch.ErrInvalidState), errors.Is(err, dispatch.ErrNotFound):
		// Already completed or cancelled before the timer fired.
		logrus.WithField("trip_id", event.TripID).Debug("trip no longer completable, skipping")
	default:
		logrus.WithField("trip_id", event.TripID).WithError(err).Error("trip auto-completion failed")
	}
}

// Stop cancels pending timers and stops the consumer.
func (h *AutoCompleteHandler) Stop() {
	h.mu.Lock()
	for key, timer := range h.timers {
		timer.Stop()
		delete(h.timers, key)
	}
	h.mu.Unlock()

	if h.consumer != nil {
		h.consumer.Stop()
	}
}
