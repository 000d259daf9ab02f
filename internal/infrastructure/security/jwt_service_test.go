// File: internal/infrastructure/security/jwt_service_test.go
package security

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daniell17/football-app/internal/config"
	domainErrors "github.com/Daniell17/football-app/internal/domain/errors"
	"github.com/Daniell17/football-app/internal/domain/models"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:         "test-secret-at-least-32-bytes-long!",
		Issuer:         "club-service",
		Audience:       "club-platform",
		AccessTokenTTL: 15 * time.Minute,
	}
}

func TestJWTGenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	userID := uuid.NewString()
	sessionID := uuid.NewString()

	token, err := svc.Generate(userID, models.RoleUser, sessionID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.Equal(t, sessionID, claims.SessionID)
}

func TestJWTValidateRejectsWrongSecret(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.Secret = "a-completely-different-secret-value"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.Generate(uuid.NewString(), models.RoleUser, uuid.NewString())
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, domainErrors.ErrInvalidToken)
}

func TestJWTValidateRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTokenTTL = -time.Minute
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.Generate(uuid.NewString(), models.RoleUser, uuid.NewString())
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, domainErrors.ErrExpiredToken)
}

func TestJWTValidateRejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	_, err = svc.Validate("not.a.jwt")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidToken)
}

func TestJWTRequiresSecret(t *testing.T) {
	_, err := NewJWTService(config.JWTConfig{})
	assert.Error(t, err)
}
