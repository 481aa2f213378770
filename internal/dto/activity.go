package dto

import (
	"time"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
)

// ActivityResponse is one activity feed entry.
type ActivityResponse struct {
	ActivityID  string              `json:"activityID"`
	Type        domain.ActivityType `json:"type"`
	Description string              `json:"description"`
	OccurredAt  time.Time           `json:"occurredAt"`
}

// ListActivitiesResponse wraps the activity feed listing.
type ListActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// ToActivityResponses converts domain activities to their API representation.
func ToActivityResponses(activities []domain.Activity) []ActivityResponse {
	responses := make([]ActivityResponse, len(activities))
	for i, a := range activities {
		responses[i] = ActivityResponse{
			ActivityID:  a.ActivityID,
			Type:        a.Type,
			Description: a.Description,
			OccurredAt:  a.OccurredAt,
		}
	}
	return responses
}
