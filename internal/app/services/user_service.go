package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/app/models/dto"
	"github.com/intered/portal/internal/app/repositories"
	"github.com/intered/portal/internal/pkg/apperrors"
	"github.com/intered/portal/internal/pkg/auth"
)

// UserService defines the interface for user management
type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, actor *models.User, id int64, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, actor *models.User, id int64) error
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo repositories.UserStore
	hasher   *auth.PasswordHasher
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserStore, hasher *auth.PasswordHasher, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// ListUsers retrieves every user
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// GetUserByID retrieves a user by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	if user == nil {
		return nil, apperrors.NewResourceNotFoundError("User not found")
	}
	return user, nil
}

// UpdateUser applies an admin edit. A new password is hashed before storage
// and ends the user's existing sessions. Users cannot change their own role.
func (s *userServiceImpl) UpdateUser(ctx context.Context, actor *models.User, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	if actor != nil && actor.ID == id && req.Role != nil && *req.Role != actor.Role {
		return nil, apperrors.NewCustomError(apperrors.ErrCannotChangeRole, "You cannot change your own role")
	}

	patch := models.UserPatch{
		FullName: req.FullName,
		Email:    req.Email,
		Role:     req.Role,
	}
	// Hash new password
	if req.Password != nil {
		hashed, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		patch.Password = &hashed
	}

	user, err := s.userRepo.UpdateUser(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	if user == nil {
		return nil, apperrors.NewResourceNotFoundError("User not found")
	}

	s.logger.Info().Int64("userID", id).Bool("passwordChanged", req.Password != nil).Msg("User updated")
	return user, nil
}

// DeleteUser removes a user. Users cannot delete themselves.
func (s *userServiceImpl) DeleteUser(ctx context.Context, actor *models.User, id int64) error {
	if actor != nil && actor.ID == id {
		return apperrors.NewCustomError(apperrors.ErrCannotDeleteSelf, "You cannot delete your own account")
	}
	removed, err := s.userRepo.DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if !removed {
		return apperrors.NewResourceNotFoundError("User not found")
	}

	s.logger.Info().Int64("userID", id).Msg("User deleted")
	return nil
}
