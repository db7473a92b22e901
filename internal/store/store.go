// Package store provides persistence for user documents. The production
// implementation is MongoDB; an in-memory implementation backs the tests.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/novalis-io/identity/internal/models"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already taken")
)

// UserStore defines the persistence operations the identity service needs.
// Token lookups take the current time and only match unexpired tokens
// (strictly: token expiry must be after now).
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByVerificationToken(ctx context.Context, code string, now time.Time) (*models.User, error)
	GetByResetToken(ctx context.Context, token string, now time.Time) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}
