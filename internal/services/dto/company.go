package dto

// --- Company Requests ---

type CreateCompanyRequest struct {
	Name               string `json:"name" validate:"required,min=2,max=200"`
	RegistrationNumber string `json:"registration_number" validate:"omitempty,max=18"`
	Email              string `json:"email" validate:"omitempty,email"`
	Phone              string `json:"phone" validate:"omitempty,max=30"`
	Website            string `json:"website" validate:"omitempty,url"`
	Sector             string `json:"sector" validate:"omitempty,max=100"`
	Description        string `json:"description" validate:"omitempty,max=5000"`
	City               string `json:"city" validate:"omitempty,max=100"`
	Address            string `json:"address" validate:"omitempty,max=300"`
	LogoURL            string `json:"logo_url" validate:"omitempty,url"`
	Status             string `json:"status" validate:"omitempty,is-company-status"`
}

// UpdateCompanyRequest edits the owner's company profile. Nil fields are left unchanged.
type UpdateCompanyRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	Sector      *string `json:"sector,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	City        *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=300"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,url"`
}

type UpdateCompanyStatusRequest struct {
	Status string `json:"status" validate:"required,is-company-status"`
}

type CompanyListQuery struct {
	Query  string `form:"q"`
	Status string `form:"status" validate:"omitempty,is-company-status"`
}

// --- Registry ---

type RegistryLookupResponse struct {
	Number            string `json:"number"`
	LegalName         string `json:"legal_name"`
	TradeName         string `json:"trade_name"`
	Address           string `json:"address"`
	City              string `json:"city"`
	State             string `json:"state"`
	Active            bool   `json:"active"`
	AlreadyRegistered bool   `json:"already_registered"`
}
