package domain

// Action names an operation that the permission table can grant. The set is
// closed: handlers and services only ever consult the constants below.
type Action string

const (
	ActionReviewLoan     Action = "review_loan"
	ActionApproveLoan    Action = "approve_loan"
	ActionRejectLoan     Action = "reject_loan"
	ActionApproveMember  Action = "approve_member"
	ActionRejectMember   Action = "reject_member"
	ActionViewReports    Action = "view_reports"
	ActionManageSettings Action = "manage_settings"
)

// rolePermissions is the static role -> permitted actions table. Each office's
// set is enumerated explicitly; there is no inheritance between roles.
// The chairman alone may issue the final approve/reject on a loan, the
// treasurer and secretary hold the intermediate review_loan grant instead.
var rolePermissions = map[UserRole]map[Action]struct{}{
	RoleChairman: {
		ActionApproveMember:  {},
		ActionRejectMember:   {},
		ActionApproveLoan:    {},
		ActionRejectLoan:     {},
		ActionViewReports:    {},
		ActionManageSettings: {},
	},
	RoleSecretary: {
		ActionApproveMember: {},
		ActionRejectMember:  {},
		ActionReviewLoan:    {},
		ActionViewReports:   {},
	},
	RoleTreasurer: {
		ActionReviewLoan:     {},
		ActionViewReports:    {},
		ActionManageSettings: {},
	},
}

// Can reports whether the role is permitted to perform the given action.
// Unknown roles hold no permissions.
func (r UserRole) Can(action Action) bool {
	actions, ok := rolePermissions[r]
	if !ok {
		return false
	}
	_, ok = actions[action]
	return ok
}
