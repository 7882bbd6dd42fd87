package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/app/repositories"
	"github.com/intered/portal/internal/pkg/auth"
)

// AdminAccount describes the bootstrap administrator.
type AdminAccount struct {
	Username string
	Password string
	Email    string
}

// CreateDefaultData creates the bootstrap admin user if no user holds its
// username yet. An empty password disables seeding.
func CreateDefaultData(ctx context.Context, users repositories.UserStore, hasher *auth.PasswordHasher, admin AdminAccount, lgr zerolog.Logger) error {
	if admin.Password == "" {
		lgr.Warn().Msg("No admin password configured, skipping default admin creation")
		return nil
	}

	existing, err := users.GetUserByUsername(ctx, admin.Username)
	if err != nil {
		return fmt.Errorf("checking admin user: %w", err)
	}
	if existing != nil {
		lgr.Info().Str("username", admin.Username).Msg("Admin user already exists, skipping creation")
		return nil
	}

	hash, err := hasher.Hash(admin.Password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	created, err := users.CreateUser(ctx, &models.User{
		Username: admin.Username,
		Password: hash,
		FullName: "System Administrator",
		Email:    admin.Email,
		Role:     models.RoleAdmin,
	})
	if errors.Is(err, repositories.ErrDuplicate) {
		// Another instance seeded concurrently.
		return nil
	}
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	lgr.Info().Int64("adminID", created.ID).Str("username", created.Username).Msg("Default admin user created successfully")
	return nil
}
