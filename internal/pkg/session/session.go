// Package session stores server-side login sessions keyed by opaque tokens.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when a token has no live session.
	ErrNotFound = errors.New("session not found")
	// ErrUnavailable wraps failures of the backing store.
	ErrUnavailable = errors.New("session store unavailable")
)

// tokenBytes is the entropy of a session token.
const tokenBytes = 32

// Session is what the server remembers about a login. It holds only the user
// ID and the user's credential version at login; the user record is re-read
// on every request.
type Session struct {
	UserID            int64     `json:"uid"`
	CredentialVersion int64     `json:"ver"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Store persists sessions by token.
type Store interface {
	Get(ctx context.Context, token string) (*Session, error)
	Set(ctx context.Context, token string, sess Session, ttl time.Duration) error
	Destroy(ctx context.Context, token string) error
}

// NewToken returns a random URL-safe session token.
func NewToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
