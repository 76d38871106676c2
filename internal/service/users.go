package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lotview/auction-ui-api/internal/domain/model"
	"github.com/lotview/auction-ui-api/internal/ports"
)

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	Gateway ports.AuctionGateway
}

// UserService proxies the admin dashboard's user management and the
// overview analysis to the backend.
type UserService struct {
	gateway ports.AuctionGateway
}

// NewUserService constructs a new UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	return &UserService{gateway: opts.Gateway}
}

// Analysis returns the dashboard overview aggregate.
func (s *UserService) Analysis(ctx context.Context, cred ports.Credential) (model.Analysis, error) {
	res, err := s.gateway.Analysis(ctx, cred)
	if err != nil {
		return model.Analysis{}, fmt.Errorf("analysis: %w", err)
	}
	return res, nil
}

// List returns all user accounts.
func (s *UserService) List(ctx context.Context, cred ports.Credential) ([]model.User, error) {
	users, err := s.gateway.ListUsers(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get returns one user account.
func (s *UserService) Get(ctx context.Context, cred ports.Credential, id int) (model.User, error) {
	if id <= 0 {
		return model.User{}, model.Validationf("invalid user id")
	}
	user, err := s.gateway.GetUser(ctx, cred, id)
	if err != nil {
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// Update edits a user account.
func (s *UserService) Update(ctx context.Context, cred ports.Credential, id int, in model.UserUpdate) error {
	if id <= 0 {
		return model.Validationf("invalid user id")
	}
	if strings.TrimSpace(in.Email) == "" {
		return model.Validationf("email is required")
	}
	if err := s.gateway.UpdateUser(ctx, cred, id, in); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes a user account.
func (s *UserService) Delete(ctx context.Context, cred ports.Credential, id int) error {
	if id <= 0 {
		return model.Validationf("invalid user id")
	}
	if err := s.gateway.DeleteUser(ctx, cred, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
