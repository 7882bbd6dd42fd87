package models

import (
	"time"
)

// User defines the user model based on the 'users' table. CredentialVersion
// is bumped on every password change; sessions issued under an older version
// are no longer honoured.
type User struct {
	ID                int64     `json:"id" db:"id" example:"1"`
	Username          string    `json:"username" db:"username" example:"jdoe"`
	Password          string    `json:"-" db:"password"` // bcrypt hash, never serialized
	FullName          string    `json:"fullName" db:"full_name" example:"John Doe"`
	Email             string    `json:"email" db:"email" example:"john@intered.example"`
	Role              RoleType  `json:"role" db:"role" example:"staff"`
	CredentialVersion int64     `json:"-" db:"credential_version"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserPatch lists the user columns an update may change. Nil fields are left
// untouched. Setting Password also bumps CredentialVersion.
type UserPatch struct {
	Password *string
	FullName *string
	Email    *string
	Role     *RoleType
}
