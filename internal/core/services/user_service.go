package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	portsrepo "github.com/stgabriel-shg/shg_backend/internal/core/ports/repositories"
	portssvc "github.com/stgabriel-shg/shg_backend/internal/core/ports/services"
	"github.com/stgabriel-shg/shg_backend/internal/platform/config"
	"github.com/stgabriel-shg/shg_backend/internal/utils"
)

type userService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(cfg *config.Config, userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{cfg: cfg, userRepo: userRepo}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// GetUserByID retrieves a user by primary key.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// EnsureDefaultOfficers seeds the three office accounts when the user table is
// empty, so a fresh deployment can be signed into. The credentials come from
// configuration; operators are expected to rotate them after first login.
func (s *userService) EnsureDefaultOfficers(ctx context.Context) error {
	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users for seeding: %w", err)
	}
	if count > 0 {
		return nil
	}

	officers := []struct {
		name     string
		email    string
		password string
		role     domain.UserRole
	}{
		{s.cfg.ChairmanName, s.cfg.ChairmanEmail, s.cfg.ChairmanPassword, domain.RoleChairman},
		{s.cfg.SecretaryName, s.cfg.SecretaryEmail, s.cfg.SecretaryPassword, domain.RoleSecretary},
		{s.cfg.TreasurerName, s.cfg.TreasurerEmail, s.cfg.TreasurerPassword, domain.RoleTreasurer},
	}

	now := time.Now()
	for _, o := range officers {
		hash, err := utils.HashPassword(o.password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password for %s: %w", o.role, err)
		}
		user := domain.User{
			UserID: uuid.NewString(),
			Email:  o.email,
			Name:   o.name,
			Role:   o.role,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     "system",
				LastUpdatedAt: now,
				LastUpdatedBy: "system",
			},
		}
		if err := s.userRepo.SaveUser(ctx, user, hash); err != nil {
			return fmt.Errorf("failed to seed %s account: %w", o.role, err)
		}
		s.LogInfo(ctx, "Seeded office holder account",
			slog.String("role", string(o.role)),
			slog.String("email", o.email))
	}
	return nil
}
