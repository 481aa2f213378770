package services

import (
	"context"

	"github.com/stgabriel-shg/shg_backend/internal/dto"
)

// AuthSvcFacade defines the authentication operations.
type AuthSvcFacade interface {
	// Login verifies the credentials and issues a signed access token carrying
	// the user's identity and role.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
