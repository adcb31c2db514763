package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/openfleet/cabdispatch/internal/pkg/jwt"
	"github.com/openfleet/cabdispatch/internal/pkg/models"
)

func testJWTConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "middleware-test-secret",
			Expiration: 60,
			Issuer:     "cabdispatch-test",
		},
	}
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func performRequest(mw echo.MiddlewareFunc, authHeader string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = mw(handler)(c)
	return rec
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()
	token, _, err := jwtpkg.GenerateToken(userID, "rider", cfg)
	require.NoError(t, err)

	mw := JWTAuthMiddleware(cfg.JWT)
	rec := performRequest(mw, "Bearer "+token, func(c echo.Context) error {
		gotID, ok := UserIDFromContext(c)
		assert.True(t, ok)
		assert.Equal(t, userID, gotID)
		assert.Equal(t, "rider", c.Get(ContextKeyUserRole))
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthMiddleware_Rejections(t *testing.T) {
	cfg := testJWTConfig()
	mw := JWTAuthMiddleware(cfg.JWT)

	tests := []struct {
		name       string
		authHeader string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"malformed header", "Bearer"},
		{"garbage token", "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performRequest(mw, tt.authHeader, okHandler)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestJWTAuthMiddleware_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, _, err := jwtpkg.GenerateToken(uuid.New(), "rider", cfg)
	require.NoError(t, err)

	other := testJWTConfig()
	other.JWT.Secret = "a-different-secret"
	rec := performRequest(JWTAuthMiddleware(other.JWT), "Bearer "+token, okHandler)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	mw := RequireRole("admin")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cabs", nil)

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyUserRole, "admin")
	require.NoError(t, mw(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.Set(ContextKeyUserRole, "rider")
	_ = mw(okHandler)(c)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	_ = mw(okHandler)(c)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
