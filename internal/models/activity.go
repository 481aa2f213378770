package models

import "time"

// Activity is the activities table row.
type Activity struct {
	ActivityID  string    `db:"activity_id"`
	Type        string    `db:"type"`
	Description string    `db:"description"`
	OccurredAt  time.Time `db:"occurred_at"`
}
