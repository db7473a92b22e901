package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novalis-io/identity/internal/models"
)

func newUser(email string) *models.User {
	return &models.User{
		Email:        email,
		PasswordHash: "hash",
		Name:         "Test User",
	}
}

func TestMemoryStoreCreate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	u := newUser("a@x.com")
	require.NoError(t, s.Create(ctx, u))
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	assert.ErrorIs(t, s.Create(ctx, newUser("a@x.com")), ErrEmailTaken)
	assert.Equal(t, 1, s.Count())
}

func TestMemoryStoreLookups(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	u := newUser("a@x.com")
	require.NoError(t, s.Create(ctx, u))

	got, err := s.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got, err = s.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)

	_, err = s.GetByEmail(ctx, "b@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreVerificationTokenExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	expiry := time.Now().Add(time.Hour)
	u := newUser("a@x.com")
	u.SetVerificationToken("123456", expiry)
	require.NoError(t, s.Create(ctx, u))

	// Before expiry the code matches.
	got, err := s.GetByVerificationToken(ctx, "123456", expiry.Add(-time.Second))
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	// At the exact expiry instant the code is already rejected.
	_, err = s.GetByVerificationToken(ctx, "123456", expiry)
	assert.ErrorIs(t, err, ErrNotFound)

	// After expiry as well.
	_, err = s.GetByVerificationToken(ctx, "123456", expiry.Add(time.Second))
	assert.ErrorIs(t, err, ErrNotFound)

	// A wrong code never matches.
	_, err = s.GetByVerificationToken(ctx, "654321", expiry.Add(-time.Second))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreResetTokenExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	expiry := time.Now().Add(time.Hour)
	u := newUser("a@x.com")
	u.SetResetToken("deadbeef", expiry)
	require.NoError(t, s.Create(ctx, u))

	got, err := s.GetByResetToken(ctx, "deadbeef", expiry.Add(-time.Second))
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.GetByResetToken(ctx, "deadbeef", expiry)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	u := newUser("a@x.com")
	require.NoError(t, s.Create(ctx, u))

	u.IsVerified = true
	require.NoError(t, s.Update(ctx, u))

	got, err := s.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, got.IsVerified)

	assert.ErrorIs(t, s.Update(ctx, newUser("ghost@x.com")), ErrNotFound)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	u := newUser("a@x.com")
	require.NoError(t, s.Create(ctx, u))

	got, err := s.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	got.IsVerified = true

	// Mutating a fetched user must not change stored state without Update.
	fresh, err := s.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, fresh.IsVerified)
}
