package models

import (
	"strings"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	CompanyID       string          `gorm:"type:varchar(36);index;not null" json:"company_id"`
	Company         *Company        `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Title           string          `gorm:"not null" json:"title"`
	Description     string          `gorm:"type:text" json:"description"`
	Requirements    string          `gorm:"type:text" json:"requirements"`
	Salary          string          `json:"salary"`
	Location        string          `json:"location"`
	ContractType    ContractType    `gorm:"type:varchar(20)" json:"contract_type"`
	WorkMode        WorkMode        `gorm:"type:varchar(20)" json:"work_mode"`
	ExperienceLevel ExperienceLevel `gorm:"type:varchar(20)" json:"experience_level"`
	Benefits        datatypes.JSON  `json:"benefits"`
	Status          JobStatus       `gorm:"type:varchar(20);not null;index" json:"status"`

	// External application channel. HasExternalApplication requires both fields below.
	HasExternalApplication bool              `gorm:"default:false" json:"has_external_application"`
	ApplicationMethod      ApplicationMethod `gorm:"type:varchar(20)" json:"application_method"`
	ContactInfo            string            `json:"contact_info"`

	PaymentID *string `gorm:"type:varchar(36)" json:"payment_id,omitempty"`
}

func (j *Job) GetBenefits() []string {
	return decodeList(j.Benefits)
}

func (j *Job) SetBenefits(benefits []string) {
	j.Benefits = encodeList(benefits)
}

// CompanyCity is the owning company's city, or "" when the company is not loaded.
func (j *Job) CompanyCity() string {
	if j.Company == nil {
		return ""
	}
	return j.Company.City
}

func (j *Job) CompanyName() string {
	if j.Company == nil {
		return ""
	}
	return j.Company.Name
}

// ExternalContactReady reports whether the direct-contact path may be offered.
func (j *Job) ExternalContactReady() bool {
	return j.HasExternalApplication &&
		strings.TrimSpace(string(j.ApplicationMethod)) != "" &&
		strings.TrimSpace(j.ContactInfo) != ""
}
