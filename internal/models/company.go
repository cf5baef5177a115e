package models

// Company is an employer. Owned by exactly one profile.
type Company struct {
	BaseModel
	OwnerID            string        `gorm:"type:varchar(36);index;not null" json:"owner_id"`
	Name               string        `gorm:"not null" json:"name"`
	RegistrationNumber string        `gorm:"type:varchar(14);index" json:"registration_number"`
	Email              string        `json:"email"`
	Phone              string        `json:"phone"`
	Website            string        `json:"website"`
	Sector             string        `json:"sector"`
	Description        string        `gorm:"type:text" json:"description"`
	City               string        `json:"city"`
	Address            string        `json:"address"`
	LogoURL            string        `json:"logo_url"`
	Status             CompanyStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	// IsSystem marks the administrative pseudo-company used for synthetic postings.
	IsSystem bool `gorm:"default:false" json:"is_system"`
}
