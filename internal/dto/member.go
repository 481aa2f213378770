package dto

import (
	"time"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
)

// RegisterMemberRequest is the public registration payload. Registrations
// start pending and must be approved by an office holder.
type RegisterMemberRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required,len=10,numeric"`
	DateOfBirth string `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
	Gender      string `json:"gender" binding:"required,oneof=Male Female Other"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required"`
	County      string `json:"county" binding:"required"`
	PostalCode  string `json:"postalCode" binding:"required"`
	NationalID  string `json:"nationalID" binding:"required"`
	TaxPIN      string `json:"taxPIN,omitempty"`
	BankName    string `json:"bankName" binding:"required"`
	BankAccount string `json:"bankAccount" binding:"required"`
	BankBranch  string `json:"bankBranch,omitempty"`
	NomineeName string `json:"nomineeName" binding:"required"`
	NomineeRel  string `json:"nomineeRelation" binding:"required"`
}

// MemberResponse is the API representation of a member.
type MemberResponse struct {
	MemberID     string              `json:"memberID"`
	MemberNumber string              `json:"memberNumber,omitempty"`
	FirstName    string              `json:"firstName"`
	LastName     string              `json:"lastName"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	City         string              `json:"city"`
	County       string              `json:"county"`
	BankName     string              `json:"bankName"`
	NomineeName  string              `json:"nomineeName"`
	JoinedAt     time.Time           `json:"joinedAt"`
	Status       domain.MemberStatus `json:"status"`
}

// ListMembersParams filters the member listing.
type ListMembersParams struct {
	Status *domain.MemberStatus `form:"status" binding:"omitempty,oneof=PENDING ACTIVE INACTIVE"`
}

// ListMembersResponse wraps the member listing.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToMemberResponse converts a domain member to its API representation.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:     m.MemberID,
		MemberNumber: m.MemberNumber,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		Phone:        m.Phone,
		City:         m.City,
		County:       m.County,
		BankName:     m.BankName,
		NomineeName:  m.NomineeName,
		JoinedAt:     m.JoinedAt,
		Status:       m.Status,
	}
}

// ToMemberResponses converts a slice of domain members.
func ToMemberResponses(members []domain.Member) []MemberResponse {
	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = ToMemberResponse(&members[i])
	}
	return responses
}
