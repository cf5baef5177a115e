package auth

import "vagaspg_backend/internal/models"

// Session is the authenticated caller of one request. It is immutable;
// sign-in, sign-up and sign-out go through AuthService, never through the session.
type Session struct {
	profileID string
	email     string
	role      models.ProfileRole
	companyID string
}

func NewSession(profileID, email string, role models.ProfileRole, companyID string) *Session {
	return &Session{profileID: profileID, email: email, role: role, companyID: companyID}
}

// Anonymous is the session of an unauthenticated candidate.
func Anonymous() *Session {
	return &Session{}
}

func (s *Session) ProfileID() string        { return s.profileID }
func (s *Session) Email() string            { return s.email }
func (s *Session) Role() models.ProfileRole { return s.role }
func (s *Session) CompanyID() string        { return s.companyID }

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.profileID != ""
}

func (s *Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.role == models.ProfileRoleAdmin
}

// OwnsCompany is true for the company's own account. Admins are not owners.
func (s *Session) OwnsCompany(companyID string) bool {
	return s.IsAuthenticated() && s.role == models.ProfileRoleCompany &&
		companyID != "" && s.companyID == companyID
}

func (s *Session) Can(permission string) bool {
	return s.IsAuthenticated() && HasPermission(s.role, permission)
}

// CanManageCompanyRecords reports whether the caller may act on records owned by companyID.
func (s *Session) CanManageCompanyRecords(companyID string) bool {
	return s.IsAdmin() || s.OwnsCompany(companyID)
}
