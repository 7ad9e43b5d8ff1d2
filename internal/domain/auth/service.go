package auth

import "context"

type AuthService interface {
	// Login authenticates an admin-side user and issues a JWT pair.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// MobileLogin authenticates an employee by code and password and
	// issues the compact mobile token.
	MobileLogin(ctx context.Context, req MobileLoginRequest) (MobileTokenResponse, error)

	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)

	// Logout revokes the access token and, when the client supplies
	// it, the paired refresh token.
	Logout(ctx context.Context, accessToken, refreshToken string) error
}
