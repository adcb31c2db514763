package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err error
}

func (s stubChecker) CheckHealth(context.Context) error { return s.err }

func performGet(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoints_Liveness(t *testing.T) {
	e := echo.New()
	RegisterEndpoints(e, "dispatch", nil)

	rec := performGet(e, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRegisterEndpoints_Ping(t *testing.T) {
	e := echo.New()
	RegisterEndpoints(e, "dispatch", nil)

	rec := performGet(e, "/ping")
	require.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "dispatch", info.ServiceName)
	assert.NotEmpty(t, info.GoVersion)
}

func TestRegisterEndpoints_ReadyAllHealthy(t *testing.T) {
	e := echo.New()
	RegisterEndpoints(e, "dispatch", map[string]Checker{
		"postgres": stubChecker{},
		"redis":    stubChecker{},
	})

	rec := performGet(e, "/ready")
	require.Equal(t, http.StatusOK, rec.Code)

	var status Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "ok", status.Checks["postgres"])
	assert.Equal(t, "ok", status.Checks["redis"])
}

func TestRegisterEndpoints_ReadyDegraded(t *testing.T) {
	e := echo.New()
	RegisterEndpoints(e, "dispatch", map[string]Checker{
		"postgres": stubChecker{},
		"nsq":      stubChecker{err: errors.New("nsqd unreachable")},
	})

	rec := performGet(e, "/ready")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var status Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, "ok", status.Checks["postgres"])
	assert.Equal(t, "nsqd unreachable", status.Checks["nsq"])
}
