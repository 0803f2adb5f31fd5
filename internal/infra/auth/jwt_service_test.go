package auth

import (
	"testing"
	"time"

	"manor/config"
	domainerrors "manor/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()
	roles := []string{"manager", "admin"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, roles)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	claims, err := jwtService.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_RefreshTokenRejectedByAccessValidation(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	// Refresh tokens are signed with a different secret, so they must not
	// pass access-token validation.
	_, refreshToken, err := jwtService.GenerateTokens(uuid.New(), []string{"manager"})
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(refreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_ConfiguredTTLs(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  time.Minute * 5,
		RefreshTokenTTL: time.Hour * 24,
	}

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.Equal(t, time.Hour*24, jwtService.GetRefreshTokenDuration())
}

func TestJWTService_DefaultRefreshTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	assert.Equal(t, time.Hour*24*7, jwtService.GetRefreshTokenDuration())
}
