package services

import (
	"context"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
)

// ActivitySvcFacade defines operations on the group activity feed.
type ActivitySvcFacade interface {
	// Record appends one entry to the feed. Failures are reported but callers
	// treat the feed as best-effort alongside the primary write.
	Record(ctx context.Context, activityType domain.ActivityType, description string) error

	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.Activity, error)
}
