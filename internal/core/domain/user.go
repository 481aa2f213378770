package domain

// UserRole identifies which of the group's offices a user holds. Every
// authenticated user of the admin API holds exactly one office.
type UserRole string

const (
	RoleTreasurer UserRole = "TREASURER"
	RoleSecretary UserRole = "SECRETARY"
	RoleChairman  UserRole = "CHAIRMAN"
)

// IsValid reports whether r is one of the three known offices.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleTreasurer, RoleSecretary, RoleChairman:
		return true
	}
	return false
}

// User represents an office holder who signs in to review loans and members.
type User struct {
	UserID string   `json:"userID"` // Primary key (UUID)
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Role   UserRole `json:"role"`
	AuditFields
}
