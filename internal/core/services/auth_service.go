package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/stgabriel-shg/shg_backend/internal/apperrors"
	portsrepo "github.com/stgabriel-shg/shg_backend/internal/core/ports/repositories"
	portssvc "github.com/stgabriel-shg/shg_backend/internal/core/ports/services"
	"github.com/stgabriel-shg/shg_backend/internal/dto"
	"github.com/stgabriel-shg/shg_backend/internal/platform/config"
	"github.com/stgabriel-shg/shg_backend/internal/utils"
)

// authService verifies officer credentials and issues access tokens.
type authService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepository
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, userRepo: userRepo}
}

// Ensure authService implements the portssvc.AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies the credentials and issues a signed access token. A missing
// account and a wrong password both surface as ErrUnauthorized so the response
// does not reveal which half failed.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	cred, err := s.userRepo.FindCredentialByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up credentials")
		return nil, fmt.Errorf("failed to look up credentials: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, cred.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch", slog.String("user_id", cred.User.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	token, expiresAt, err := utils.GenerateAccessToken(cred.User, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.JWTExpiryDuration)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue access token", slog.String("user_id", cred.User.UserID))
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	s.LogInfo(ctx, "Officer signed in",
		slog.String("user_id", cred.User.UserID),
		slog.String("role", string(cred.User.Role)))
	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        dto.ToUserResponse(&cred.User),
	}, nil
}
