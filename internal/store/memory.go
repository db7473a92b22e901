package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/novalis-io/identity/internal/models"
)

// MemoryStore is an in-memory UserStore used by tests and local development.
// It mirrors the Mongo implementation's semantics, including strict token
// expiry and last-write-wins updates.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]*models.User)}
}

func (s *MemoryStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return ErrEmailTaken
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	s.users[user.ID] = clone(user)
	return nil
}

func (s *MemoryStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return clone(u), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(u), nil
}

func (s *MemoryStore) GetByVerificationToken(_ context.Context, code string, now time.Time) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.VerificationToken != "" && u.VerificationToken == code &&
			u.VerificationTokenExpiresAt != nil && u.VerificationTokenExpiresAt.After(now) {
			return clone(u), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetByResetToken(_ context.Context, token string, now time.Time) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ResetPasswordToken != "" && u.ResetPasswordToken == token &&
			u.ResetPasswordExpiresAt != nil && u.ResetPasswordExpiresAt.After(now) {
			return clone(u), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Update(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return ErrNotFound
	}
	user.UpdatedAt = time.Now()
	s.users[user.ID] = clone(user)
	return nil
}

// Count returns the number of stored users.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// clone copies the user so callers cannot mutate stored state without Update.
func clone(u *models.User) *models.User {
	c := *u
	if u.VerificationTokenExpiresAt != nil {
		t := *u.VerificationTokenExpiresAt
		c.VerificationTokenExpiresAt = &t
	}
	if u.ResetPasswordExpiresAt != nil {
		t := *u.ResetPasswordExpiresAt
		c.ResetPasswordExpiresAt = &t
	}
	if u.LastLogin != nil {
		t := *u.LastLogin
		c.LastLogin = &t
	}
	return &c
}
