package domain

import "time"

// MemberStatus tracks a member's standing in the group.
type MemberStatus string

const (
	MemberPending  MemberStatus = "PENDING"
	MemberActive   MemberStatus = "ACTIVE"
	MemberInactive MemberStatus = "INACTIVE"
)

// Member is a registered (or registering) member of the group. Registrations
// start Pending; approval activates the member and assigns the sequential
// member number that loan applications reference.
type Member struct {
	MemberID     string       `json:"memberID"`     // Primary key (UUID)
	MemberNumber string       `json:"memberNumber"` // e.g. STG0042, assigned on approval
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	DateOfBirth  string       `json:"dateOfBirth"` // YYYY-MM-DD
	Gender       string       `json:"gender"`
	Address      string       `json:"address"`
	City         string       `json:"city"`
	County       string       `json:"county"`
	PostalCode   string       `json:"postalCode"`
	NationalID   string       `json:"nationalID"`
	TaxPIN       string       `json:"taxPIN"`
	BankName     string       `json:"bankName"`
	BankAccount  string       `json:"bankAccount"`
	BankBranch   string       `json:"bankBranch"`
	NomineeName  string       `json:"nomineeName"`
	NomineeRel   string       `json:"nomineeRelation"`
	JoinedAt     time.Time    `json:"joinedAt"`
	Status       MemberStatus `json:"status"`
	AuditFields
}

// FullName returns the member's display name as used on loan applications.
func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}
