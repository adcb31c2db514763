package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"

	"github.com/openfleet/cabdispatch/internal/pkg/constants"
	"github.com/openfleet/cabdispatch/internal/pkg/database"
	"github.com/openfleet/cabdispatch/services/dispatch"
)

// geohashPrecision of 7 resolves to roughly 150m cells, plenty for a
// campus-scale map display.
const geohashPrecision = 7

type cabCache struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewCabCache creates the Redis-backed cab location cache. Entries expire
// after ttl so cabs that stop pinging fall out of the map view.
func NewCabCache(redisClient *database.RedisClient, ttl time.Duration) dispatch.CabCache {
	return &cabCache{redisClient: redisClient, ttl: ttl}
}

// StoreCabLocation mirrors a location ping into Redis
func (c *cabCache) StoreCabLocation(ctx context.Context, cabID uuid.UUID, lat, lon float64) error {
	key := fmt.Sprintf(constants.KeyCabLocation, cabID)
	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(lat, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(lon, 'f', -1, 64),
		constants.FieldGeohash:   geohash.EncodeWithPrecision(lat, lon, geohashPrecision),
		constants.FieldTimestamp: strconv.FormatInt(time.Now().Unix(), 10),
	}

	if err := c.redisClient.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store cab location: %w", err)
	}
	if c.ttl > 0 {
		if err := c.redisClient.Expire(ctx, key, c.ttl); err != nil {
			return fmt.Errorf("failed to set cab location TTL: %w", err)
		}
	}
	return nil
}

// GetCabLocation reads the cached position of a cab
func (c *cabCache) GetCabLocation(ctx context.Context, cabID uuid.UUID) (float64, float64, error) {
	key := fmt.Sprintf(constants.KeyCabLocation, cabID)

	values, err := c.redisClient.HGetAll(ctx, key)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get cab location: %w", err)
	}
	if len(values) == 0 {
		return 0, 0, fmt.Errorf("no cached location for cab %s: %w", cabID, dispatch.ErrNotFound)
	}

	lat, err := strconv.ParseFloat(values[constants.FieldLatitude], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cached latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(values[constants.FieldLongitude], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cached longitude: %w", err)
	}
	return lat, lon, nil
}
