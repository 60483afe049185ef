package services

import (
	"context"

	"taskboard/gateway"
	"taskboard/models"
)

// UserService talks to the /users namespace.
type UserService struct {
	gw *gateway.Gateway
}

// NewUserService creates the user service.
func NewUserService(gw *gateway.Gateway) *UserService {
	return &UserService{gw: gw}
}

// Profile fetches the current user's profile.
func (s *UserService) Profile(ctx context.Context) (models.User, error) {
	var payload struct {
		User models.User `json:"user"`
	}
	if err := s.gw.Get(ctx, "/users/profile", nil, &payload); err != nil {
		return models.User{}, err
	}
	return payload.User, nil
}

// UpdateProfile changes name, bio or avatar and returns the updated user.
func (s *UserService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error) {
	var payload struct {
		User models.User `json:"user"`
	}
	if err := s.gw.Put(ctx, "/users/profile", req, &payload); err != nil {
		return models.User{}, err
	}
	return payload.User, nil
}

// UpdatePassword rotates the password.
func (s *UserService) UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) error {
	return s.gw.Put(ctx, "/users/password", req, nil)
}

// DeleteAccount removes the account entirely.
func (s *UserService) DeleteAccount(ctx context.Context) error {
	return s.gw.Delete(ctx, "/users/account", nil)
}
