package domain_test

import (
	"testing"

	"github.com/stgabriel-shg/shg_backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestUserRole_Can(t *testing.T) {
	tests := []struct {
		role   domain.UserRole
		action domain.Action
		want   bool
	}{
		{domain.RoleChairman, domain.ActionApproveLoan, true},
		{domain.RoleChairman, domain.ActionRejectLoan, true},
		{domain.RoleChairman, domain.ActionApproveMember, true},
		{domain.RoleChairman, domain.ActionManageSettings, true},
		{domain.RoleChairman, domain.ActionViewReports, true},
		// The chairman decides, he does not hold the intermediate review grant.
		{domain.RoleChairman, domain.ActionReviewLoan, false},

		{domain.RoleSecretary, domain.ActionReviewLoan, true},
		{domain.RoleSecretary, domain.ActionApproveMember, true},
		{domain.RoleSecretary, domain.ActionRejectMember, true},
		{domain.RoleSecretary, domain.ActionViewReports, true},
		{domain.RoleSecretary, domain.ActionManageSettings, false},
		{domain.RoleSecretary, domain.ActionApproveLoan, false},

		{domain.RoleTreasurer, domain.ActionReviewLoan, true},
		{domain.RoleTreasurer, domain.ActionViewReports, true},
		{domain.RoleTreasurer, domain.ActionManageSettings, true},
		{domain.RoleTreasurer, domain.ActionApproveMember, false},
		{domain.RoleTreasurer, domain.ActionRejectLoan, false},

		{domain.UserRole("AUDITOR"), domain.ActionViewReports, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Can(tt.action))
		})
	}
}

func TestUserRole_IsValid(t *testing.T) {
	assert.True(t, domain.RoleTreasurer.IsValid())
	assert.True(t, domain.RoleSecretary.IsValid())
	assert.True(t, domain.RoleChairman.IsValid())
	assert.False(t, domain.UserRole("MEMBER").IsValid())
	assert.False(t, domain.UserRole("").IsValid())
}
