package mapping

import (
	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	"github.com/stgabriel-shg/shg_backend/internal/models"
)

// ToModelActivity converts a domain activity to its row representation.
func ToModelActivity(d domain.Activity) models.Activity {
	return models.Activity{
		ActivityID:  d.ActivityID,
		Type:        string(d.Type),
		Description: d.Description,
		OccurredAt:  d.OccurredAt,
	}
}

// ToDomainActivitySlice converts activity rows to domain activities.
func ToDomainActivitySlice(ms []models.Activity) []domain.Activity {
	ds := make([]domain.Activity, len(ms))
	for i, m := range ms {
		ds[i] = domain.Activity{
			ActivityID:  m.ActivityID,
			Type:        domain.ActivityType(m.Type),
			Description: m.Description,
			OccurredAt:  m.OccurredAt,
		}
	}
	return ds
}
