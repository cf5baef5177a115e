package dto

import "vagaspg_backend/internal/models"

type CheckoutResponse struct {
	PaymentID    string               `json:"payment_id"`
	PreferenceID string               `json:"preference_id"`
	CheckoutURL  string               `json:"checkout_url"`
	Amount       float64              `json:"amount"`
	Currency     string               `json:"currency"`
	Status       models.PaymentStatus `json:"status"`
}

// PaymentWebhookRequest is the processor notification. ExternalReference carries our payment ID.
type PaymentWebhookRequest struct {
	ExternalID        string `json:"external_id"`
	ExternalReference string `json:"external_reference"`
	Status            string `json:"status" validate:"required"`
}
