package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfleet/cabdispatch/internal/pkg/models"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60, // minutes
			Issuer:     "cabdispatch-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name   string
		userID uuid.UUID
		role   string
	}{
		{
			name:   "rider token",
			userID: uuid.New(),
			role:   "rider",
		},
		{
			name:   "admin token",
			userID: uuid.New(),
			role:   "admin",
		},
		{
			name:   "empty role still issues a token",
			userID: uuid.New(),
			role:   "",
		},
		{
			name:   "zero UUID still issues a token",
			userID: uuid.UUID{},
			role:   "rider",
		},
	}

	cfg := getTestConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString, expiresAt, err := GenerateToken(tt.userID, tt.role, cfg)
			require.NoError(t, err)
			assert.NotEmpty(t, tokenString)
			assert.Greater(t, expiresAt, time.Now().Unix())

			claims, err := ValidateToken(tokenString, cfg.JWT.Secret)
			require.NoError(t, err)
			assert.Equal(t, tt.userID.String(), claims["user_id"])
			assert.Equal(t, tt.role, claims["role"])
			assert.Equal(t, cfg.JWT.Issuer, claims["iss"])
		})
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := getTestConfig()
	tokenString, _, err := GenerateToken(uuid.New(), "rider", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "another-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := getTestConfig()
	claims := jwt.MapClaims{
		"user_id": uuid.New(),
		"role":    "rider",
		"exp":     time.Now().Add(-time.Hour).Unix(),
		"iss":     cfg.JWT.Issuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, cfg.JWT.Secret)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", getTestConfig().JWT.Secret)
	assert.Error(t, err)
}

func TestValidateToken_RejectsUnexpectedAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": uuid.New(),
		"role":    "rider",
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, getTestConfig().JWT.Secret)
	assert.Error(t, err)
}
