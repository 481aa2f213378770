package models

// User is the users table row. PasswordHash stays in this layer; the domain
// user never carries it.
type User struct {
	UserID       string `db:"user_id"`
	Email        string `db:"email"`
	Name         string `db:"name"`
	Role         string `db:"role"`
	PasswordHash string `db:"password_hash"`
	AuditFields
}
