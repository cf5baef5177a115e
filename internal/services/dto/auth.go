package dto

import (
	"vagaspg_backend/internal/models"
)

// SignUpRequest registers a company account. The registration number is optional;
// when present it is looked up to enrich the company record.
type SignUpRequest struct {
	Email              string `json:"email" validate:"required,email"`
	Password           string `json:"password" validate:"required,min=6"`
	CompanyName        string `json:"company_name" validate:"required_without=RegistrationNumber,max=200"`
	RegistrationNumber string `json:"registration_number" validate:"omitempty,max=18"`
	Phone              string `json:"phone" validate:"omitempty,max=30"`
	City               string `json:"city" validate:"omitempty,max=100"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ProfileResponse struct {
	ID        string             `json:"id"`
	Email     string             `json:"email"`
	Role      models.ProfileRole `json:"role"`
	CompanyID string             `json:"company_id,omitempty"`
}

// AuthResponse is returned by sign-up, sign-in and refresh.
type AuthResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresIn    int64           `json:"expires_in"` // seconds
	Profile      ProfileResponse `json:"profile"`
	Company      *models.Company `json:"company,omitempty"`
}

type MeResponse struct {
	Profile ProfileResponse `json:"profile"`
	Company *models.Company `json:"company,omitempty"`
}
