package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	portsrepo "github.com/stgabriel-shg/shg_backend/internal/core/ports/repositories"
	"github.com/stgabriel-shg/shg_backend/internal/models"
	"github.com/stgabriel-shg/shg_backend/internal/utils/mapping"
)

type PgxActivityRepository struct {
	db *pgxpool.Pool
}

// newPgxActivityRepository creates a new repository for the activity feed.
func newPgxActivityRepository(db *pgxpool.Pool) portsrepo.ActivityRepository {
	return &PgxActivityRepository{db: db}
}

// Ensure PgxActivityRepository implements portsrepo.ActivityRepository
var _ portsrepo.ActivityRepository = (*PgxActivityRepository)(nil)

func (r *PgxActivityRepository) SaveActivity(ctx context.Context, activity domain.Activity) error {
	m := mapping.ToModelActivity(activity)
	query := `
		INSERT INTO activities (activity_id, type, description, occurred_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.db.Exec(ctx, query, m.ActivityID, m.Type, m.Description, m.OccurredAt)
	if err != nil {
		return fmt.Errorf("failed to save activity: %w", err)
	}
	return nil
}

func (r *PgxActivityRepository) ListRecentActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	query := `
		SELECT activity_id, type, description, occurred_at
		FROM activities
		ORDER BY occurred_at DESC, activity_id DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	activities := []models.Activity{}
	for rows.Next() {
		var m models.Activity
		if err := rows.Scan(&m.ActivityID, &m.Type, &m.Description, &m.OccurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		activities = append(activities, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}
	return mapping.ToDomainActivitySlice(activities), nil
}
