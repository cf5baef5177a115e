package models

import "gorm.io/datatypes"

// Payment belongs to the legacy pay-to-publish flow.
type Payment struct {
	BaseModel
	CompanyID    string         `gorm:"type:varchar(36);index;not null" json:"company_id"`
	JobID        *string        `gorm:"type:varchar(36);index" json:"job_id,omitempty"`
	Amount       float64        `gorm:"not null" json:"amount"`
	Currency     string         `gorm:"type:varchar(3)" json:"currency"`
	Status       PaymentStatus  `gorm:"type:varchar(20);not null;index" json:"status"`
	ExternalID   string         `gorm:"index" json:"external_id"`
	PreferenceID string         `json:"preference_id"`
	CheckoutURL  string         `json:"checkout_url"`
	RawPayload   datatypes.JSON `json:"raw_payload,omitempty"`
}
