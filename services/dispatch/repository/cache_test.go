package repository

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfleet/cabdispatch/internal/pkg/database"
	"github.com/openfleet/cabdispatch/services/dispatch"
)

func newCacheWithMock(t *testing.T, ttl time.Duration) (dispatch.CabCache, redismock.ClientMock) {
	t.Helper()
	client, mock := redismock.NewClientMock()
	return NewCabCache(&database.RedisClient{Client: client}, ttl), mock
}

func TestStoreCabLocation(t *testing.T) {
	cache, mock := newCacheWithMock(t, time.Hour)
	cabID := uuid.New()
	key := "cab:location:" + cabID.String()

	// field order inside the hash is not deterministic
	mock.Regexp().ExpectHSet(key, "lat", `.*`, "lon", `.*`, "geohash", `.*`, "ts", `.*`).SetVal(4)
	mock.ExpectExpire(key, time.Hour).SetVal(true)

	require.NoError(t, cache.StoreCabLocation(context.Background(), cabID, -6.2, 106.8))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreCabLocation_NoTTL(t *testing.T) {
	cache, mock := newCacheWithMock(t, 0)
	cabID := uuid.New()
	key := "cab:location:" + cabID.String()

	mock.Regexp().ExpectHSet(key, "lat", `.*`, "lon", `.*`, "geohash", `.*`, "ts", `.*`).SetVal(4)

	require.NoError(t, cache.StoreCabLocation(context.Background(), cabID, 0, 0))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCabLocation(t *testing.T) {
	cache, mock := newCacheWithMock(t, time.Hour)
	cabID := uuid.New()
	key := "cab:location:" + cabID.String()

	mock.ExpectHGetAll(key).SetVal(map[string]string{
		"lat":     "-6.2",
		"lon":     "106.8",
		"geohash": "qqguwvz",
		"ts":      "1700000000",
	})

	lat, lon, err := cache.GetCabLocation(context.Background(), cabID)
	require.NoError(t, err)
	assert.InDelta(t, -6.2, lat, 1e-9)
	assert.InDelta(t, 106.8, lon, 1e-9)
}

func TestGetCabLocation_Missing(t *testing.T) {
	cache, mock := newCacheWithMock(t, time.Hour)
	cabID := uuid.New()
	key := "cab:location:" + cabID.String()

	mock.ExpectHGetAll(key).SetVal(map[string]string{})

	_, _, err := cache.GetCabLocation(context.Background(), cabID)
	assert.ErrorIs(t, err, dispatch.ErrNotFound)
}

func TestGetCabLocation_CorruptEntry(t *testing.T) {
	cache, mock := newCacheWithMock(t, time.Hour)
	cabID := uuid.New()
	key := "cab:location:" + cabID.String()

	mock.ExpectHGetAll(key).SetVal(map[string]string{
		"lat": "not-a-number",
		"lon": "106.8",
	})

	_, _, err := cache.GetCabLocation(context.Background(), cabID)
	assert.Error(t, err)
}
