// Package services holds the typed wrappers around the gateway, one per API
// namespace. Each operation issues exactly one call, unwraps the envelope
// payload, and passes gateway errors through unchanged.
package services

import (
	"context"

	"taskboard/gateway"
	"taskboard/models"
)

// AuthService talks to the /auth namespace.
type AuthService struct {
	gw *gateway.Gateway
}

// NewAuthService creates the auth service.
func NewAuthService(gw *gateway.Gateway) *AuthService {
	return &AuthService{gw: gw}
}

// Signup registers a new account and returns the user plus a fresh credential.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResult, error) {
	var result models.AuthResult
	if err := s.gw.Post(ctx, "/auth/signup", req, &result); err != nil {
		return models.AuthResult{}, err
	}
	return result, nil
}

// Login exchanges credentials for the user plus a fresh credential.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	var result models.AuthResult
	if err := s.gw.Post(ctx, "/auth/login", req, &result); err != nil {
		return models.AuthResult{}, err
	}
	return result, nil
}

// CurrentUser fetches the account behind the stored credential.
func (s *AuthService) CurrentUser(ctx context.Context) (models.User, error) {
	var payload struct {
		User models.User `json:"user"`
	}
	if err := s.gw.Get(ctx, "/auth/me", nil, &payload); err != nil {
		return models.User{}, err
	}
	return payload.User, nil
}

// Logout invalidates the credential server-side.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.gw.Post(ctx, "/auth/logout", nil, nil)
}
