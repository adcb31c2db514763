package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/openfleet/cabdispatch/internal/pkg/models"
	"github.com/openfleet/cabdispatch/services/dispatch"
)

const (
	tripColumns = `id, user_id, cab_id, pickup_lat, pickup_lon, dest_lat, dest_lon,
		status, requested_at, assigned_at, started_at, completed_at,
		est_distance_meters, est_duration_seconds`
	cabColumns = `id, driver_name, vehicle_no, lat, lon, status, last_update`
)

type dispatchRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDispatchRepository creates the Postgres-backed dispatch repository
func NewDispatchRepository(cfg *models.Config, db *sqlx.DB) dispatch.DispatchRepo {
	return &dispatchRepo{cfg: cfg, db: db}
}

// CreateTripWithAssignment runs the whole request->assignment workflow in
// one transaction: insert the trip, fetch eligible cabs, let allocate pick
// one, and bind trip and cab together. Either everything commits or nothing
// does; a trip marked assigned without its cab marked on_trip is never
// observable.
func (r *dispatchRepo) CreateTripWithAssignment(ctx context.Context, trip *models.Trip, allocate dispatch.AllocateFunc) (*models.Trip, *models.Cab, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO trips (id, user_id, pickup_lat, pickup_lon, dest_lat, dest_lon, status, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		trip.ID, trip.UserID, trip.PickupLat, trip.PickupLon,
		trip.DestLat, trip.DestLon, trip.Status, trip.RequestedAt,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert trip: %w", err)
	}

	candidates, err := r.selectAvailableCabs(ctx, tx)
	if err != nil {
		return nil, nil, err
	}

	assignment := allocate(candidates)
	if assignment == nil {
		// no cab: the trip stays in requested status, which is a normal
		// outcome and still worth committing
		if err = tx.Commit(); err != nil {
			return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return trip, nil, nil
	}

	assignedAt := time.Now()
	updated := &models.Trip{}
	err = tx.GetContext(ctx, updated, `
		UPDATE trips
		SET cab_id = $1, status = $2, assigned_at = $3,
			est_distance_meters = $4, est_duration_seconds = $5
		WHERE id = $6
		RETURNING `+tripColumns,
		assignment.CabID, models.TripStatusAssigned, assignedAt,
		assignment.EstDistanceMeters, assignment.EstDurationSeconds, trip.ID,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to assign trip: %w", err)
	}

	// The status guard is the concurrency control: a concurrent request that
	// took this cab first commits its row lock, the predicate re-evaluates
	// to false here, and the whole transaction rolls back.
	cab := &models.Cab{}
	err = tx.GetContext(ctx, cab, `
		UPDATE cabs
		SET status = $1, last_update = $2
		WHERE id = $3 AND status = $4
		RETURNING `+cabColumns,
		models.CabStatusOnTrip, assignedAt, assignment.CabID, models.CabStatusAvailable,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, dispatch.ErrCabConflict
		}
		return nil, nil, fmt.Errorf("failed to update cab status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, cab, nil
}

func (r *dispatchRepo) selectAvailableCabs(ctx context.Context, tx *sqlx.Tx) ([]*models.Cab, error) {
	query := `SELECT ` + cabColumns + ` FROM cabs WHERE status = $1`
	args := []interface{}{models.CabStatusAvailable}

	if window := r.cfg.Dispatch.StalenessWindow; window > 0 {
		query += ` AND last_update > now() - ($2 * interval '1 second')`
		args = append(args, window)
	}
	query += ` ORDER BY last_update DESC, id ASC`

	var cabs []*models.Cab
	if err := tx.SelectContext(ctx, &cabs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select available cabs: %w", err)
	}
	return cabs, nil
}

// CompleteTrip locks the trip row by id and owner so concurrent completions
// serialize: the second caller observes the terminal status and gets
// ErrInvalidState instead of freeing the cab twice.
func (r *dispatchRepo) CompleteTrip(ctx context.Context, tripID, userID uuid.UUID, destLat, destLon float64) (*models.TripCompletion, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	trip, err := lockTrip(ctx, tx, tripID, userID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusAssigned {
		return nil, fmt.Errorf("cannot complete trip in status %s: %w", trip.Status, dispatch.ErrInvalidState)
	}

	completedAt := time.Now()
	err = tx.GetContext(ctx, trip, `
		UPDATE trips SET status = $1, completed_at = $2 WHERE id = $3
		RETURNING `+tripColumns,
		models.TripStatusCompleted, completedAt, tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to complete trip: %w", err)
	}

	completion := &models.TripCompletion{Trip: trip}
	if trip.CabID != nil {
		// park the cab at the snapped destination and return it to the
		// allocatable pool
		cab := &models.Cab{}
		err = tx.GetContext(ctx, cab, `
			UPDATE cabs SET lat = $1, lon = $2, status = $3, last_update = $4
			WHERE id = $5
			RETURNING `+cabColumns,
			destLat, destLon, models.CabStatusAvailable, completedAt, *trip.CabID,
		)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to free cab: %w", err)
		}
		if err == nil {
			completion.Cab = cab
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return completion, nil
}

// CancelTrip transitions requested -> cancelled under the same row lock
func (r *dispatchRepo) CancelTrip(ctx context.Context, tripID, userID uuid.UUID) (*models.Trip, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	trip, err := lockTrip(ctx, tx, tripID, userID)
	if err != nil {
		return nil, err
	}
	if trip.Status != models.TripStatusRequested {
		return nil, fmt.Errorf("cannot cancel trip in status %s: %w", trip.Status, dispatch.ErrInvalidState)
	}

	err = tx.GetContext(ctx, trip, `
		UPDATE trips SET status = $1 WHERE id = $2
		RETURNING `+tripColumns,
		models.TripStatusCancelled, tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel trip: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return trip, nil
}

// lockTrip selects a trip by id and owner with a row lock. A wrong id and a
// wrong owner both come back as ErrNotFound so callers cannot probe for
// other users' trips.
func lockTrip(ctx context.Context, tx *sqlx.Tx, tripID, userID uuid.UUID) (*models.Trip, error) {
	trip := &models.Trip{}
	err := tx.GetContext(ctx, trip, `
		SELECT `+tripColumns+` FROM trips
		WHERE id = $1 AND user_id = $2
		FOR UPDATE`,
		tripID, userID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatch.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock trip: %w", err)
	}
	return trip, nil
}

func (r *dispatchRepo) GetTrip(ctx context.Context, tripID, userID uuid.UUID) (*models.Trip, error) {
	trip := &models.Trip{}
	err := r.db.GetContext(ctx, trip, `
		SELECT `+tripColumns+` FROM trips WHERE id = $1 AND user_id = $2`,
		tripID, userID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatch.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

func (r *dispatchRepo) ListTripsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Trip, error) {
	var trips []*models.Trip
	err := r.db.SelectContext(ctx, &trips, `
		SELECT `+tripColumns+` FROM trips WHERE user_id = $1 ORDER BY requested_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}

func (r *dispatchRepo) GetActiveTripForCab(ctx context.Context, cabID uuid.UUID) (*models.Trip, error) {
	trip := &models.Trip{}
	err := r.db.GetContext(ctx, trip, `
		SELECT `+tripColumns+` FROM trips
		WHERE cab_id = $1 AND status = $2
		ORDER BY assigned_at DESC
		LIMIT 1`,
		cabID, models.TripStatusAssigned,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatch.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active trip for cab: %w", err)
	}
	return trip, nil
}

func (r *dispatchRepo) CreateCab(ctx context.Context, cab *models.Cab) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO cabs (id, driver_name, vehicle_no, lat, lon, status, last_update)
		VALUES (:id, :driver_name, :vehicle_no, :lat, :lon, :status, :last_update)`,
		cab,
	)
	if err != nil {
		return fmt.Errorf("failed to insert cab: %w", err)
	}
	return nil
}

func (r *dispatchRepo) GetCab(ctx context.Context, cabID uuid.UUID) (*models.Cab, error) {
	cab := &models.Cab{}
	err := r.db.GetContext(ctx, cab, `SELECT `+cabColumns+` FROM cabs WHERE id = $1`, cabID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatch.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cab: %w", err)
	}
	return cab, nil
}

func (r *dispatchRepo) ListCabs(ctx context.Context) ([]*models.Cab, error) {
	var cabs []*models.Cab
	err := r.db.SelectContext(ctx, &cabs, `SELECT `+cabColumns+` FROM cabs ORDER BY vehicle_no ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cabs: %w", err)
	}
	return cabs, nil
}

func (r *dispatchRepo) ListAvailableCabs(ctx context.Context) ([]*models.Cab, error) {
	query := `SELECT ` + cabColumns + ` FROM cabs WHERE status = $1`
	args := []interface{}{models.CabStatusAvailable}

	if window := r.cfg.Dispatch.StalenessWindow; window > 0 {
		query += ` AND last_update > now() - ($2 * interval '1 second')`
		args = append(args, window)
	}
	query += ` ORDER BY vehicle_no ASC`

	var cabs []*models.Cab
	if err := r.db.SelectContext(ctx, &cabs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list available cabs: %w", err)
	}
	return cabs, nil
}

func (r *dispatchRepo) UpdateCabLocation(ctx context.Context, cabID uuid.UUID, lat, lon float64) (*models.Cab, error) {
	cab := &models.Cab{}
	err := r.db.GetContext(ctx, cab, `
		UPDATE cabs SET lat = $1, lon = $2, last_update = $3
		WHERE id = $4
		RETURNING `+cabColumns,
		lat, lon, time.Now(), cabID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatch.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update cab location: %w", err)
	}
	return cab, nil
}

func (r *dispatchRepo) UpdateCabStatus(ctx context.Context, cabID uuid.UUID, status models.CabStatus) (*models.Cab, error) {
	cab := &models.Cab{}
	err := r.db.GetContext(ctx, cab, `
		UPDATE cabs SET status = $1, last_update = $2
		WHERE id = $3
		RETURNING `+cabColumns,
		status, time.Now(), cabID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatch.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update cab status: %w", err)
	}
	return cab, nil
}
