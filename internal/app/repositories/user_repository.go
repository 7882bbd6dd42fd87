package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/intered/portal/internal/app/models"
)

var userColumns = []string{"id", "username", "password", "full_name", "email", "role", "credential_version", "created_at", "updated_at"}

// UserRepository handles database operations for users
type UserRepository struct {
	base
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{base: newBase(db)}
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	var role string
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.FullName,
		&user.Email,
		&role,
		&user.CredentialVersion,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	user.Role = models.RoleType(role)
	return &user, nil
}

// ListUsers retrieves all users ordered by id
func (r *UserRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	q := r.sb.Select(userColumns...).From("users").OrderBy("id ASC")
	return queryAll(ctx, r.db, q, scanUser, "list users")
}

// GetUser retrieves a user by ID
func (r *UserRepository) GetUser(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, nil
	}
	q := r.sb.Select(userColumns...).From("users").Where(squirrel.Eq{"id": id})
	return queryOne(ctx, r.db, q, scanUser, "get user")
}

// GetUserByUsername retrieves a user by exact username
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	q := r.sb.Select(userColumns...).From("users").Where(squirrel.Eq{"username": username})
	return queryOne(ctx, r.db, q, scanUser, "get user by username")
}

// CreateUser inserts a user and returns the stored row
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	q := r.sb.Insert("users").
		Columns("username", "password", "full_name", "email", "role").
		Values(user.Username, user.Password, user.FullName, user.Email, string(user.Role)).
		Suffix("RETURNING " + strings.Join(userColumns, ", "))
	return queryOne(ctx, r.db, q, scanUser, "create user")
}

// UpdateUser applies the non-nil fields of patch
func (r *UserRepository) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	if id <= 0 {
		return nil, nil
	}
	clauses := userPatchClauses(patch)
	if len(clauses) == 0 {
		return r.GetUser(ctx, id)
	}
	return queryOne(ctx, r.db, r.buildUpdate("users", id, clauses, userColumns), scanUser, "update user")
}

// DeleteUser removes a user
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) (bool, error) {
	return execDelete(ctx, r.db, r.sb.Delete("users").Where(squirrel.Eq{"id": id}), "delete user")
}

func userPatchClauses(p models.UserPatch) map[string]interface{} {
	clauses := map[string]interface{}{}
	if p.Password != nil {
		clauses["password"] = *p.Password
		clauses["credential_version"] = squirrel.Expr("credential_version + 1")
	}
	setIf(clauses, "full_name", p.FullName)
	setIf(clauses, "email", p.Email)
	if p.Role != nil {
		clauses["role"] = string(*p.Role)
	}
	return clauses
}
