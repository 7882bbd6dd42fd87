package memory

import (
	"context"
	"fmt"

	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/app/repositories"
)

func (s *Store) ListUsers(_ context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.filter(nil), nil
}

func (s *Store) GetUser(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.get(id), nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := s.users.filter(func(u *models.User) bool { return u.Username == username })
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func (s *Store) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users.rows {
		if existing.Username == user.Username {
			return nil, fmt.Errorf("%w: username %q", repositories.ErrDuplicate, user.Username)
		}
	}
	row := *user
	row.CreatedAt = s.now()
	row.UpdatedAt = row.CreatedAt
	return s.users.insert(row, func(u *models.User, id int64) { u.ID = id }), nil
}

func (s *Store) UpdateUser(_ context.Context, id int64, p models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.update(id, func(u *models.User) {
		var pc patcher
		set(&pc, &u.Password, p.Password)
		if p.Password != nil {
			u.CredentialVersion++
		}
		set(&pc, &u.FullName, p.FullName)
		set(&pc, &u.Email, p.Email)
		set(&pc, &u.Role, p.Role)
		if pc.changed {
			u.UpdatedAt = s.now()
		}
	}), nil
}

func (s *Store) DeleteUser(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.remove(id), nil
}
