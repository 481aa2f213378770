package repositories

import (
	"context"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
)

// ActivityRepository defines persistence operations for the activity feed.
type ActivityRepository interface {
	// SaveActivity appends one entry to the feed.
	SaveActivity(ctx context.Context, activity domain.Activity) error

	// ListRecentActivities returns up to limit entries, newest first.
	ListRecentActivities(ctx context.Context, limit int) ([]domain.Activity, error)
}
