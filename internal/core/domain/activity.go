package domain

import "time"

// ActivityType classifies an entry in the group's activity feed.
type ActivityType string

const (
	ActivityMemberJoined   ActivityType = "member_joined"
	ActivityMemberApproved ActivityType = "member_approved"
	ActivityLoanApplied    ActivityType = "loan_applied"
	ActivityLoanApproved   ActivityType = "loan_approved"
	ActivityLoanRejected   ActivityType = "loan_rejected"
)

// Activity is one append-only feed entry describing something that happened in
// the group. Entries are listed newest first.
type Activity struct {
	ActivityID  string       `json:"activityID"` // Primary key (UUID)
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	OccurredAt  time.Time    `json:"occurredAt"`
}
