package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	portsrepo "github.com/stgabriel-shg/shg_backend/internal/core/ports/repositories"
	portssvc "github.com/stgabriel-shg/shg_backend/internal/core/ports/services"
)

type activityService struct {
	BaseService
	activityRepo portsrepo.ActivityRepository
}

// NewActivityService creates a new activity service.
func NewActivityService(activityRepo portsrepo.ActivityRepository) portssvc.ActivitySvcFacade {
	return &activityService{activityRepo: activityRepo}
}

// Ensure activityService implements the portssvc.ActivitySvcFacade interface
var _ portssvc.ActivitySvcFacade = (*activityService)(nil)

// Record appends one entry to the group's activity feed.
func (s *activityService) Record(ctx context.Context, activityType domain.ActivityType, description string) error {
	activity := domain.Activity{
		ActivityID:  uuid.NewString(),
		Type:        activityType,
		Description: description,
		OccurredAt:  time.Now(),
	}
	if err := s.activityRepo.SaveActivity(ctx, activity); err != nil {
		return fmt.Errorf("failed to save activity: %w", err)
	}
	return nil
}

// ListRecent returns up to limit entries, newest first.
func (s *activityService) ListRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	activities, err := s.activityRepo.ListRecentActivities(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list activities")
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	if activities == nil {
		return []domain.Activity{}, nil
	}
	return activities, nil
}
