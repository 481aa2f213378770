package models

import "time"

// Member is the members table row.
type Member struct {
	MemberID     string    `db:"member_id"`
	MemberNumber string    `db:"member_number"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	DateOfBirth  string    `db:"date_of_birth"`
	Gender       string    `db:"gender"`
	Address      string    `db:"address"`
	City         string    `db:"city"`
	County       string    `db:"county"`
	PostalCode   string    `db:"postal_code"`
	NationalID   string    `db:"national_id"`
	TaxPIN       string    `db:"tax_pin"`
	BankName     string    `db:"bank_name"`
	BankAccount  string    `db:"bank_account"`
	BankBranch   string    `db:"bank_branch"`
	NomineeName  string    `db:"nominee_name"`
	NomineeRel   string    `db:"nominee_relation"`
	JoinedAt     time.Time `db:"joined_at"`
	Status       string    `db:"status"`
	AuditFields
}
