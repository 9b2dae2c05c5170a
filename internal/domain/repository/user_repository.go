package repository

import (
	"context"
	"errors"

	"apothecary/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUserExists is returned by Create when the user name is already taken.
// Uniqueness is enforced by the store's index at write time, never by an
// application-level existence check.
var ErrUserExists = errors.New("user already exists")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByName retrieves a single user by their unique name.
	FindByName(ctx context.Context, name string) (*entity.User, error)

	// Create persists a new user entity and fills in its generated
	// identifier. Returns ErrUserExists on a name conflict.
	Create(ctx context.Context, user *entity.User) error
}
