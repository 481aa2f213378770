package services

import (
	"context"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
)

// UserSvcFacade defines operations on office-holder accounts.
type UserSvcFacade interface {
	// GetUserByID retrieves a user by primary key.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// EnsureDefaultOfficers seeds the three office accounts when the user
	// table is empty, so a fresh deployment can be signed into.
	EnsureDefaultOfficers(ctx context.Context) error
}
