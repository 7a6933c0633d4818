package auth

import (
	"context"
	"testing"
	"time"

	"github.com/arvebo/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret-at-least-32-chars",
		RefreshSecret:          "test-refresh-secret-at-least-32-char",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "arvebo",
		MaxRefreshCount:        10,
	})
}

func testTokenInput() GenerateTokenInput {
	return GenerateTokenInput{
		UserID:      uuid.New(),
		Email:       "kari@example.no",
		Role:        "responsible_heir",
		Permissions: []string{"full_edit"},
	}
}

func TestGenerateTokenPair(t *testing.T) {
	svc := newTestJWTService()
	input := testTokenInput()

	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, input.UserID.String(), claims.UserID)
	assert.Equal(t, "kari@example.no", claims.Email)
	assert.Equal(t, "responsible_heir", claims.Role)
	assert.True(t, claims.HasPermission("full_edit"))
}

func TestValidateAccessToken(t *testing.T) {
	svc := newTestJWTService()

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects refresh token as access token", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(testTokenInput())
		require.NoError(t, err)
		_, err = svc.ValidateAccessToken(pair.RefreshToken)
		assert.Error(t, err)
	})

	t.Run("rejects token signed with other secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:                 "completely-different-secret-value-42",
			AccessTokenExpiration:  time.Minute,
			RefreshTokenExpiration: time.Hour,
			Issuer:                 "arvebo",
			MaxRefreshCount:        10,
		})
		pair, err := other.GenerateTokenPair(testTokenInput())
		require.NoError(t, err)
		_, err = svc.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		short := NewJWTService(config.JWTConfig{
			Secret:                 "test-access-secret-at-least-32-chars",
			AccessTokenExpiration:  -time.Minute,
			RefreshTokenExpiration: time.Hour,
			Issuer:                 "arvebo",
			MaxRefreshCount:        10,
		})
		pair, err := short.GenerateTokenPair(testTokenInput())
		require.NoError(t, err)
		_, err = short.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestRefreshTokenPair(t *testing.T) {
	svc := newTestJWTService()
	input := testTokenInput()

	pair, err := svc.GenerateTokenPair(input)
	require.NoError(t, err)

	t.Run("issues new pair with updated permissions", func(t *testing.T) {
		refreshed, err := svc.RefreshTokenPair(pair.RefreshToken, input.Email, "administrator", []string{"full_edit"})
		require.NoError(t, err)

		claims, err := svc.ValidateAccessToken(refreshed.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "administrator", claims.Role)

		refreshClaims, err := svc.ValidateRefreshToken(refreshed.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, 1, refreshClaims.RefreshCount)
	})

	t.Run("rejects access token for refresh", func(t *testing.T) {
		_, err := svc.RefreshTokenPair(pair.AccessToken, input.Email, input.Role, input.Permissions)
		assert.Error(t, err)
	})
}

func TestClaimsHelpers(t *testing.T) {
	claims := &Claims{
		Role:        "administrator",
		Permissions: []string{"full_edit", "members:manage"},
	}

	assert.True(t, claims.HasPermission("full_edit"))
	assert.False(t, claims.HasPermission("missing"))
	assert.True(t, claims.HasAnyPermission("other", "full_edit"))
	assert.False(t, claims.HasAnyPermission("other"))
}

func TestInMemoryTokenBlacklist(t *testing.T) {
	ctx := context.Background()
	bl := NewInMemoryTokenBlacklist()

	t.Run("blacklisted jti is rejected until ttl", func(t *testing.T) {
		require.NoError(t, bl.AddToBlacklist(ctx, "jti-1", time.Minute))
		listed, err := bl.IsBlacklisted(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, listed)
	})

	t.Run("expired entry is dropped", func(t *testing.T) {
		require.NoError(t, bl.AddToBlacklist(ctx, "jti-2", -time.Second))
		listed, err := bl.IsBlacklisted(ctx, "jti-2")
		require.NoError(t, err)
		assert.False(t, listed)
	})

	t.Run("user invalidation rejects earlier tokens", func(t *testing.T) {
		issuedAt := time.Now()
		require.NoError(t, bl.AddUserTokensToBlacklist(ctx, "user-1", time.Hour))

		invalid, err := bl.IsUserTokenInvalidated(ctx, "user-1", issuedAt)
		require.NoError(t, err)
		assert.True(t, invalid)

		later := time.Now().Add(time.Second)
		invalid, err = bl.IsUserTokenInvalidated(ctx, "user-1", later)
		require.NoError(t, err)
		assert.False(t, invalid)
	})
}
