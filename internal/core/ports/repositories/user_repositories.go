package repositories

import (
	"context"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
)

// Credential pairs a user with their stored password hash for authentication.
// The hash never travels past the auth service.
type Credential struct {
	User         domain.User
	PasswordHash string
}

// UserRepository defines persistence operations for office-holder accounts.
type UserRepository interface {
	// FindUserByID retrieves a user by primary key.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindCredentialByEmail retrieves a user and their password hash by email.
	FindCredentialByEmail(ctx context.Context, email string) (*Credential, error)

	// SaveUser persists a new user with their password hash.
	SaveUser(ctx context.Context, user domain.User, passwordHash string) error

	// CountUsers returns the total number of user accounts.
	CountUsers(ctx context.Context) (int, error)
}
