package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/auth"
	jwtpkg "github.com/staffhub-hr/staffhub-backend-go/internal/pkg/jwt"
)

func TestLogoutRevokesBothTokens(t *testing.T) {
	jwtService := jwtpkg.NewJWTService("test-secret", "1h", "24h")
	svc := NewService(nil, nil, jwtService, 0)

	accessToken, _, err := jwtService.GenerateAccessToken("user-1", "admin@example.com", nil, "hr")
	require.NoError(t, err)
	refreshToken, _, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), accessToken, refreshToken))

	assert.True(t, jwtService.IsTokenRevoked(accessToken))
	assert.True(t, jwtService.IsTokenRevoked(refreshToken))
}

func TestLogoutWithoutRefreshToken(t *testing.T) {
	jwtService := jwtpkg.NewJWTService("test-secret", "1h", "24h")
	svc := NewService(nil, nil, jwtService, 0)

	accessToken, _, err := jwtService.GenerateAccessToken("user-1", "admin@example.com", nil, "hr")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), accessToken, ""))

	assert.True(t, jwtService.IsTokenRevoked(accessToken))
	assert.False(t, jwtService.IsTokenRevoked(""))
}

func TestRefreshRejectedAfterLogout(t *testing.T) {
	jwtService := jwtpkg.NewJWTService("test-secret", "1h", "24h")
	svc := NewService(nil, nil, jwtService, 0)

	refreshToken, _, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), "some-access-token", refreshToken))

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: refreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
