package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/app/repositories"
	"github.com/intered/portal/internal/pkg/logger"
	"github.com/intered/portal/internal/pkg/session"
)

// SessionManager binds opaque session tokens to users.
type SessionManager struct {
	store session.Store
	users repositories.UserStore
	ttl   time.Duration
	now   func() time.Time
}

// NewSessionManager creates a new SessionManager
func NewSessionManager(store session.Store, users repositories.UserStore, ttl time.Duration) *SessionManager {
	return &SessionManager{
		store: store,
		users: users,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Establish starts a session for user and returns its token.
func (m *SessionManager) Establish(ctx context.Context, user *models.User) (string, error) {
	token, err := session.NewToken()
	if err != nil {
		return "", err
	}
	sess := session.Session{
		UserID:            user.ID,
		CredentialVersion: user.CredentialVersion,
		CreatedAt:         m.now(),
	}
	if err := m.store.Set(ctx, token, sess, m.ttl); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	logger.Ctx(ctx).Debug().Int64("userID", user.ID).Msg("Session established")
	return token, nil
}

// Resolve returns the user behind token, or nil when the token has no live
// session, its user no longer exists or the password changed since login.
func (m *SessionManager) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}
	sess, err := m.store.Get(ctx, token)
	if errors.Is(err, session.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	user, err := m.ResolveUser(ctx, sess.UserID, token)
	if err != nil || user == nil {
		return nil, err
	}
	if user.CredentialVersion != sess.CredentialVersion {
		// Password changed after login
		if err := m.store.Destroy(ctx, token); err != nil {
			logger.Ctx(ctx).Warn().Err(err).Int64("userID", user.ID).Msg("Failed to destroy stale session")
		}
		return nil, nil
	}
	return user, nil
}

// ResolveUser re-reads the user by ID. When the user is gone and token is
// set, the orphaned session is destroyed.
func (m *SessionManager) ResolveUser(ctx context.Context, userID int64, token string) (*models.User, error) {
	user, err := m.users.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if user == nil && token != "" {
		if err := m.store.Destroy(ctx, token); err != nil {
			logger.Ctx(ctx).Warn().Err(err).Int64("userID", userID).Msg("Failed to destroy orphaned session")
		}
	}
	return user, nil
}

// Destroy ends the session. Unknown tokens are not an error.
func (m *SessionManager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.store.Destroy(ctx, token); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}
