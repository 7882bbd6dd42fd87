package auth

import (
	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/pkg/apperrors"
)

// AuthorizationService answers role questions about a principal.
type AuthorizationService struct{}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// IsAdmin checks if the user is an admin
func (s *AuthorizationService) IsAdmin(user *models.User) bool {
	return user.IsAdmin()
}

// AssignableRole resolves the role a new account receives. Anonymous callers
// always get staff; only admins may hand out admin or counselor.
func (s *AuthorizationService) AssignableRole(actor *models.User, requested models.RoleType) (models.RoleType, error) {
	if actor == nil {
		return models.RoleStaff, nil
	}
	if requested == "" || requested == models.RoleStaff {
		return models.RoleStaff, nil
	}
	if !requested.Valid() {
		return "", apperrors.NewValidationError("role", "role must be one of admin, staff, counselor")
	}
	if !s.IsAdmin(actor) {
		return "", apperrors.NewCustomError(apperrors.ErrRoleNotAssignable, "Only administrators can assign the "+string(requested)+" role")
	}
	return requested, nil
}
