package mapping

import (
	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	"github.com/stgabriel-shg/shg_backend/internal/models"
)

// ToModelMember converts a domain member to its row representation.
func ToModelMember(d domain.Member) models.Member {
	return models.Member{
		MemberID:     d.MemberID,
		MemberNumber: d.MemberNumber,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		Phone:        d.Phone,
		DateOfBirth:  d.DateOfBirth,
		Gender:       d.Gender,
		Address:      d.Address,
		City:         d.City,
		County:       d.County,
		PostalCode:   d.PostalCode,
		NationalID:   d.NationalID,
		TaxPIN:       d.TaxPIN,
		BankName:     d.BankName,
		BankAccount:  d.BankAccount,
		BankBranch:   d.BankBranch,
		NomineeName:  d.NomineeName,
		NomineeRel:   d.NomineeRel,
		JoinedAt:     d.JoinedAt,
		Status:       string(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMember converts a member row to its domain representation.
func ToDomainMember(m models.Member) domain.Member {
	return domain.Member{
		MemberID:     m.MemberID,
		MemberNumber: m.MemberNumber,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		Phone:        m.Phone,
		DateOfBirth:  m.DateOfBirth,
		Gender:       m.Gender,
		Address:      m.Address,
		City:         m.City,
		County:       m.County,
		PostalCode:   m.PostalCode,
		NationalID:   m.NationalID,
		TaxPIN:       m.TaxPIN,
		BankName:     m.BankName,
		BankAccount:  m.BankAccount,
		BankBranch:   m.BankBranch,
		NomineeName:  m.NomineeName,
		NomineeRel:   m.NomineeRel,
		JoinedAt:     m.JoinedAt,
		Status:       domain.MemberStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMemberSlice converts member rows to domain members.
func ToDomainMemberSlice(ms []models.Member) []domain.Member {
	ds := make([]domain.Member, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMember(m)
	}
	return ds
}
