package mapping

import (
	"github.com/stgabriel-shg/shg_backend/internal/core/domain"
	"github.com/stgabriel-shg/shg_backend/internal/models"
)

// ToDomainUser converts a user row to its domain representation. The password
// hash does not cross into the domain.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:      m.UserID,
		Email:       m.Email,
		Name:        m.Name,
		Role:        domain.UserRole(m.Role),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelUser converts a domain user plus its password hash to a row.
func ToModelUser(d domain.User, passwordHash string) models.User {
	return models.User{
		UserID:       d.UserID,
		Email:        d.Email,
		Name:         d.Name,
		Role:         string(d.Role),
		PasswordHash: passwordHash,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}
