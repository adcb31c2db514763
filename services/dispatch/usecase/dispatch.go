package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/openfleet/cabdispatch/internal/pkg/graph"
	"github.com/openfleet/cabdispatch/internal/pkg/models"
	"github.com/openfleet/cabdispatch/services/dispatch"
	"github.com/openfleet/cabdispatch/services/dispatch/allocation"
)

type dispatchUC struct {
	cfg       *models.Config
	roadGraph *graph.Graph
	strategy  allocation.Strategy
	repo      dispatch.DispatchRepo
	cache     dispatch.CabCache
	gw        dispatch.DispatchGW
	speedMps  float64
}

// NewDispatchUC creates the dispatch use case. The road graph is read-only
// after load, so sharing it across concurrent requests needs no locking.
func NewDispatchUC(
	cfg *models.Config,
	roadGraph *graph.Graph,
	strategy allocation.Strategy,
	repo dispatch.DispatchRepo,
	cache dispatch.CabCache,
	gw dispatch.DispatchGW,
) dispatch.DispatchUC {
	speed := cfg.Dispatch.AverageSpeedMps
	if speed <= 0 {
		speed = allocation.DefaultSpeedMps
	}
	return &dispatchUC{
		cfg:       cfg,
		roadGraph: roadGraph,
		strategy:  strategy,
		repo:      repo,
		cache:     cache,
		gw:        gw,
		speedMps:  speed,
	}
}

// RequestTrip runs the full request->assignment workflow. The trip row, the
// candidate query, the allocation decision, and the cab status flip all live
// in one repository transaction; this method prepares the inputs and
// publishes the outcome.
func (uc *dispatchUC) RequestTrip(ctx context.Context, userID uuid.UUID, req *models.TripRequest) (*models.TripResponse, error) {
	pickupLat, pickupLon, destLat, destLon, err := validateTripRequest(req)
	if err != nil {
		return nil, err
	}

	// snap both endpoints once, before the transaction opens; estimates are
	// computed on graph nodes, not raw GPS noise
	pickupNode, snapErr := uc.roadGraph.NearestNode(pickupLat, pickupLon)
	destNode, _ := uc.roadGraph.NearestNode(destLat, destLon)

	trip := &models.Trip{
		ID:          uuid.New(),
		UserID:      userID,
		PickupLat:   pickupLat,
		PickupLon:   pickupLon,
		DestLat:     destLat,
		DestLon:     destLon,
		Status:      models.TripStatusRequested,
		RequestedAt: time.Now(),
	}

	var chosen *models.AllocationResult
	allocate := func(candidates []*models.Cab) *dispatch.Assignment {
		if snapErr != nil || destNode == nil {
			// an unloadable or empty graph means nothing can be ranked;
			// the trip stays requested
			return nil
		}
		result := uc.strategy.Assign(trip, candidates)
		if result == nil {
			return nil
		}
		chosen = result

		destLeg := graph.Haversine(pickupNode.Lat, pickupNode.Lon, destNode.Lat, destNode.Lon)
		return &dispatch.Assignment{
			CabID:              result.Cab.ID,
			EstDistanceMeters:  int(math.Round(result.DistanceMeters + destLeg)),
			EstDurationSeconds: int(math.Round(result.ETASeconds + destLeg/uc.speedMps)),
		}
	}

	createdTrip, assignedCab, err := uc.repo.CreateTripWithAssignment(ctx, trip, allocate)
	if err != nil {
		return nil, err
	}

	if assignedCab == nil {
		logrus.WithFields(logrus.Fields{
			"trip_id": createdTrip.ID,
			"user_id": userID,
		}).Info("no cab available, trip left in requested status")
		return &models.TripResponse{
			TripID: createdTrip.ID,
			Status: createdTrip.Status,
		}, nil
	}

	logrus.WithFields(logrus.Fields{
		"trip_id":    createdTrip.ID,
		"cab_id":     assignedCab.ID,
		"distance_m": chosen.DistanceMeters,
		"eta_s":      chosen.ETASeconds,
		"path_len":   len(chosen.Path),
	}).Info("cab assigned to trip")

	event := models.TripAssignedEvent{
		TripID:     createdTrip.ID,
		CabID:      assignedCab.ID,
		UserID:     userID,
		AssignedAt: *createdTrip.AssignedAt,
	}
	if createdTrip.EstDurationSeconds != nil {
		event.EstDurationSeconds = *createdTrip.EstDurationSeconds
	}
	if err := uc.gw.PublishTripAssigned(ctx, event); err != nil {
		// the assignment is durable; fan-out is best effort
		logrus.WithError(err).Warn("failed to publish trip assigned event")
	}

	return &models.TripResponse{
		TripID:             createdTrip.ID,
		AssignedCab:        assignedCab,
		EstDistanceMeters:  createdTrip.EstDistanceMeters,
		EstDurationSeconds: createdTrip.EstDurationSeconds,
		Status:             createdTrip.Status,
	}, nil
}

// CompleteTrip transitions an assigned trip to completed and frees its cab
// at the snapped destination. The repository's row lock makes concurrent
// duplicate completions resolve to one success and one ErrInvalidState.
func (uc *dispatchUC) CompleteTrip(ctx context.Context, tripID, userID uuid.UUID) (*models.TripCompletion, error) {
	trip, err := uc.repo.GetTrip(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}

	// final cab placement is graph-consistent with everything else
	destLat, destLon := trip.DestLat, trip.DestLon
	if node, err := uc.roadGraph.NearestNode(trip.DestLat, trip.DestLon); err == nil {
		destLat, destLon = node.Lat, node.Lon
	}

	completion, err := uc.repo.CompleteTrip(ctx, tripID, userID, destLat, destLon)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"trip_id": tripID,
		"user_id": userID,
	}).Info("trip completed")

	if err := uc.gw.PublishTripCompleted(ctx, models.TripCompletedEvent{
		TripID:      completion.Trip.ID,
		CabID:       completion.Trip.CabID,
		UserID:      userID,
		CompletedAt: *completion.Trip.CompletedAt,
	}); err != nil {
		logrus.WithError(err).Warn("failed to publish trip completed event")
	}

	if cab := completion.Cab; cab != nil {
		if err := uc.cache.StoreCabLocation(ctx, cab.ID, cab.Latitude, cab.Longitude); err != nil {
			logrus.WithError(err).Warn("failed to cache freed cab location")
		}
		if err := uc.gw.PublishCabLocation(ctx, models.CabLocationEvent{
			CabID:     cab.ID,
			Latitude:  cab.Latitude,
			Longitude: cab.Longitude,
			Timestamp: cab.LastUpdate,
		}); err != nil {
			logrus.WithError(err).Warn("failed to publish cab location event")
		}
	}

	return completion, nil
}

// CancelTrip abandons a trip that never got a cab
func (uc *dispatchUC) CancelTrip(ctx context.Context, tripID, userID uuid.UUID) (*models.Trip, error) {
	return uc.repo.CancelTrip(ctx, tripID, userID)
}

func (uc *dispatchUC) GetTrip(ctx context.Context, tripID, userID uuid.UUID) (*models.Trip, error) {
	return uc.repo.GetTrip(ctx, tripID, userID)
}

func (uc *dispatchUC) ListTrips(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error) {
	return uc.repo.ListTripsByUser(ctx, userID)
}

// RegisterCab adds a cab to the fleet, available immediately
func (uc *dispatchUC) RegisterCab(ctx context.Context, req *models.CabRequest) (*models.Cab, error) {
	if strings.TrimSpace(req.DriverName) == "" || strings.TrimSpace(req.VehicleNo) == "" {
		return nil, fmt.Errorf("driver_name and vehicle_no are required: %w", dispatch.ErrInvalidInput)
	}
	if err := validateCoordinates(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	cab := &models.Cab{
		ID:         uuid.New(),
		DriverName: req.DriverName,
		VehicleNo:  req.VehicleNo,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Status:     models.CabStatusAvailable,
		LastUpdate: time.Now(),
	}
	if err := uc.repo.CreateCab(ctx, cab); err != nil {
		return nil, err
	}

	if err := uc.cache.StoreCabLocation(ctx, cab.ID, cab.Latitude, cab.Longitude); err != nil {
		logrus.WithError(err).Warn("failed to cache new cab location")
	}
	return cab, nil
}

func (uc *dispatchUC) ListCabs(ctx context.Context) ([]*models.Cab, error) {
	return uc.repo.ListCabs(ctx)
}

func (uc *dispatchUC) ListAvailableCabs(ctx context.Context) ([]*models.Cab, error) {
	return uc.repo.ListAvailableCabs(ctx)
}

// UpdateCabLocation is the lightweight write path for driver/simulator GPS
// pings: position and freshness only, no allocation involved.
func (uc *dispatchUC) UpdateCabLocation(ctx context.Context, cabID uuid.UUID, update *models.CabLocationUpdate) (*models.Cab, error) {
	if update.Latitude == nil || update.Longitude == nil {
		return nil, fmt.Errorf("lat and lon are required: %w", dispatch.ErrInvalidInput)
	}
	if err := validateCoordinates(*update.Latitude, *update.Longitude); err != nil {
		return nil, err
	}

	cab, err := uc.repo.UpdateCabLocation(ctx, cabID, *update.Latitude, *update.Longitude)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.StoreCabLocation(ctx, cab.ID, cab.Latitude, cab.Longitude); err != nil {
		logrus.WithError(err).Warn("failed to cache cab location")
	}

	event := models.CabLocationEvent{
		CabID:     cab.ID,
		Latitude:  cab.Latitude,
		Longitude: cab.Longitude,
		Timestamp: cab.LastUpdate,
	}
	if cab.Status == models.CabStatusOnTrip {
		// forward remaining-time information to the trip's listeners
		if trip, err := uc.repo.GetActiveTripForCab(ctx, cab.ID); err == nil {
			event.TripID = &trip.ID
			if trip.AssignedAt != nil && trip.EstDurationSeconds != nil {
				elapsed := int(time.Since(*trip.AssignedAt).Seconds())
				remaining := *trip.EstDurationSeconds - elapsed
				if remaining < 0 {
					remaining = 0
				}
				event.RemainingSeconds = &remaining
			}
		}
	}
	if err := uc.gw.PublishCabLocation(ctx, event); err != nil {
		logrus.WithError(err).Warn("failed to publish cab location event")
	}

	return cab, nil
}

// UpdateCabStatus is the admin path for forcing a cab status
func (uc *dispatchUC) UpdateCabStatus(ctx context.Context, cabID uuid.UUID, status models.CabStatus) (*models.Cab, error) {
	switch status {
	case models.CabStatusAvailable, models.CabStatusOnTrip, models.CabStatusOffline:
	default:
		return nil, fmt.Errorf("invalid cab status %q: %w", status, dispatch.ErrInvalidInput)
	}
	return uc.repo.UpdateCabStatus(ctx, cabID, status)
}

func validateTripRequest(req *models.TripRequest) (pickupLat, pickupLon, destLat, destLon float64, err error) {
	if req.PickupLat == nil || req.PickupLon == nil {
		return 0, 0, 0, 0, fmt.Errorf("pickup coordinates are required: %w", dispatch.ErrInvalidInput)
	}
	if req.DestLat == nil || req.DestLon == nil {
		return 0, 0, 0, 0, fmt.Errorf("destination coordinates are required: %w", dispatch.ErrInvalidInput)
	}
	if err := validateCoordinates(*req.PickupLat, *req.PickupLon); err != nil {
		return 0, 0, 0, 0, err
	}
	if err := validateCoordinates(*req.DestLat, *req.DestLon); err != nil {
		return 0, 0, 0, 0, err
	}
	return *req.PickupLat, *req.PickupLon, *req.DestLat, *req.DestLon, nil
}

func validateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %f out of range: %w", lat, dispatch.ErrInvalidInput)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("longitude %f out of range: %w", lon, dispatch.ErrInvalidInput)
	}
	return nil
}
