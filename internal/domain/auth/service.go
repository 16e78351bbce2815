package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (TokenResponse, error)
	// RefreshToken rotates the pair: the presented refresh token is
	// revoked and a fresh one issued alongside the new access token.
	RefreshToken(ctx context.Context, req RefreshTokenRequest, session SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
}
