package models

type CompanyStatus string
type JobStatus string
type ApplicationStatus string
type PaymentStatus string
type ProfileRole string

type ContractType string
type WorkMode string
type ExperienceLevel string
type ApplicationMethod string

const (
	CompanyStatusActive  CompanyStatus = "active"
	CompanyStatusPending CompanyStatus = "pending"
	CompanyStatusBlocked CompanyStatus = "blocked"

	JobStatusActive JobStatus = "active"
	JobStatusPaused JobStatus = "paused"
	JobStatusClosed JobStatus = "closed"

	ApplicationStatusNew       ApplicationStatus = "new"
	ApplicationStatusViewed    ApplicationStatus = "viewed"
	ApplicationStatusContacted ApplicationStatus = "contacted"
	ApplicationStatusApproved  ApplicationStatus = "approved"
	ApplicationStatusRejected  ApplicationStatus = "rejected"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusApproved  PaymentStatus = "approved"
	PaymentStatusRejected  PaymentStatus = "rejected"
	PaymentStatusCancelled PaymentStatus = "cancelled"

	ProfileRoleAdmin   ProfileRole = "admin"
	ProfileRoleCompany ProfileRole = "company"
)

const (
	ContractTypeCLT        ContractType = "CLT"
	ContractTypePJ         ContractType = "PJ"
	ContractTypeFreelancer ContractType = "Freelancer"
	ContractTypeInternship ContractType = "Estagio"

	WorkModeOnSite WorkMode = "Presencial"
	WorkModeRemote WorkMode = "Remoto"
	WorkModeHybrid WorkMode = "Hibrido"

	ExperienceIntern     ExperienceLevel = "Estagiario"
	ExperienceJunior     ExperienceLevel = "Junior"
	ExperienceMid        ExperienceLevel = "Pleno"
	ExperienceSenior     ExperienceLevel = "Senior"
	ExperienceSpecialist ExperienceLevel = "Especialista"

	ApplicationMethodWhatsApp ApplicationMethod = "whatsapp"
	ApplicationMethodEmail    ApplicationMethod = "email"
	ApplicationMethodPhone    ApplicationMethod = "phone"
)

var (
	CompanyStatuses     = []CompanyStatus{CompanyStatusActive, CompanyStatusPending, CompanyStatusBlocked}
	JobStatuses         = []JobStatus{JobStatusActive, JobStatusPaused, JobStatusClosed}
	ApplicationStatuses = []ApplicationStatus{ApplicationStatusNew, ApplicationStatusViewed, ApplicationStatusContacted, ApplicationStatusApproved, ApplicationStatusRejected}
	PaymentStatuses     = []PaymentStatus{PaymentStatusPending, PaymentStatusApproved, PaymentStatusRejected, PaymentStatusCancelled}
	ProfileRoles        = []ProfileRole{ProfileRoleAdmin, ProfileRoleCompany}
	ContractTypes       = []ContractType{ContractTypeCLT, ContractTypePJ, ContractTypeFreelancer, ContractTypeInternship}
	WorkModes           = []WorkMode{WorkModeOnSite, WorkModeRemote, WorkModeHybrid}
	ExperienceLevels    = []ExperienceLevel{ExperienceIntern, ExperienceJunior, ExperienceMid, ExperienceSenior, ExperienceSpecialist}
	ApplicationMethods  = []ApplicationMethod{ApplicationMethodWhatsApp, ApplicationMethodEmail, ApplicationMethodPhone}
)

func member[T ~string](v T, set []T) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

func (s CompanyStatus) IsValid() bool     { return member(s, CompanyStatuses) }
func (s JobStatus) IsValid() bool         { return member(s, JobStatuses) }
func (s ApplicationStatus) IsValid() bool { return member(s, ApplicationStatuses) }
func (s PaymentStatus) IsValid() bool     { return member(s, PaymentStatuses) }
func (r ProfileRole) IsValid() bool       { return member(r, ProfileRoles) }
func (c ContractType) IsValid() bool      { return member(c, ContractTypes) }
func (w WorkMode) IsValid() bool          { return member(w, WorkModes) }
func (e ExperienceLevel) IsValid() bool   { return member(e, ExperienceLevels) }
func (m ApplicationMethod) IsValid() bool { return member(m, ApplicationMethods) }

// IsFinal reports whether the payment processor has settled the payment.
func (s PaymentStatus) IsFinal() bool {
	return s != PaymentStatusPending
}
