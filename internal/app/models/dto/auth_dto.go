package dto

import (
	"time"

	"github.com/intered/portal/internal/app/models"
)

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"jdoe"`
	Password string `json:"password" binding:"required" example:"correct-horse"`
}

// RegisterRequest represents a user registration request. Role is honoured
// only when the caller is an authenticated admin.
type RegisterRequest struct {
	Username string          `json:"username" binding:"required,min=3,max=50,username" example:"jdoe"`
	Password string          `json:"password" binding:"required,min=8,max=72" example:"correct-horse"`
	FullName string          `json:"fullName" binding:"required,max=255" example:"John Doe"`
	Email    string          `json:"email" binding:"required,email" example:"john@intered.example"`
	Role     models.RoleType `json:"role" binding:"omitempty,oneof=admin staff counselor" example:"staff"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"3600"`
}

// UserResponse is the public view of a user; it never carries the password hash.
type UserResponse struct {
	ID        int64           `json:"id" example:"1"`
	Username  string          `json:"username" example:"jdoe"`
	FullName  string          `json:"fullName" example:"John Doe"`
	Email     string          `json:"email" example:"john@intered.example"`
	Role      models.RoleType `json:"role" example:"staff"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// NewUserResponse strips secrets from user.
func NewUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// NewUserResponses converts a slice of users.
func NewUserResponses(users []*models.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// UpdateUserRequest represents an admin edit of a user. Absent fields are left unchanged.
type UpdateUserRequest struct {
	Password *string          `json:"password" binding:"omitempty,min=8,max=72"`
	FullName *string          `json:"fullName" binding:"omitempty,max=255"`
	Email    *string          `json:"email" binding:"omitempty,email"`
	Role     *models.RoleType `json:"role" binding:"omitempty,oneof=admin staff counselor"`
}
