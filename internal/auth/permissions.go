package auth

import "vagaspg_backend/internal/models"

// Permission names checked by services through Session.Can.
const (
	PermCompaniesManage    = "companies:manage"    // create, set status, cascade delete any company
	PermCompanyEditOwn     = "company:write:self"  // edit own company profile
	PermJobsManage         = "jobs:manage"         // any job, incl. system postings
	PermJobsWriteOwn       = "jobs:write:self"     // jobs of own company
	PermApplicationsManage = "applications:manage" // any application
	PermApplicationsOwn    = "applications:read:self"
	PermAssistantUse       = "assistant:use"
	PermPaymentsCheckout   = "payments:checkout"
)

var Permissions = map[models.ProfileRole][]string{
	models.ProfileRoleAdmin: {
		PermCompaniesManage,
		PermJobsManage,
		PermApplicationsManage,
		PermAssistantUse,
	},
	models.ProfileRoleCompany: {
		PermCompanyEditOwn,
		PermJobsWriteOwn,
		PermApplicationsOwn,
		PermAssistantUse,
		PermPaymentsCheckout,
	},
}

func HasPermission(role models.ProfileRole, permission string) bool {
	for _, p := range Permissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
