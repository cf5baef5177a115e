package dto

// JobRequest is the body of job create and update.
type JobRequest struct {
	Title           string   `json:"title" validate:"required,min=3,max=200"`
	Description     string   `json:"description" validate:"required,max=10000"`
	Requirements    string   `json:"requirements" validate:"omitempty,max=10000"`
	Salary          string   `json:"salary" validate:"omitempty,max=100"`
	Location        string   `json:"location" validate:"omitempty,max=200"`
	ContractType    string   `json:"contract_type" validate:"omitempty,is-contract-type"`
	WorkMode        string   `json:"work_mode" validate:"omitempty,is-work-mode"`
	ExperienceLevel string   `json:"experience_level" validate:"omitempty,is-experience-level"`
	Benefits        []string `json:"benefits" validate:"omitempty,max=50,dive,max=200"`

	HasExternalApplication bool   `json:"has_external_application"`
	ApplicationMethod      string `json:"application_method" validate:"omitempty,is-application-method"`
	ContactInfo            string `json:"contact_info" validate:"omitempty,max=200"`

	// Status is honoured on create only; updates go through the status endpoint.
	Status string `json:"status" validate:"omitempty,is-job-status"`
}

// AdminJobRequest lets an admin post for any company. Empty CompanyID means the system company.
type AdminJobRequest struct {
	JobRequest
	CompanyID string `json:"company_id" validate:"omitempty,max=36"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required,is-job-status"`
}

type JobListQuery struct {
	Query        string `form:"q"`
	City         string `form:"city"`
	ContractType string `form:"contract_type" validate:"omitempty,is-contract-type"`
	WorkMode     string `form:"work_mode" validate:"omitempty,is-work-mode"`
	Status       string `form:"status" validate:"omitempty,is-job-status"`
}
