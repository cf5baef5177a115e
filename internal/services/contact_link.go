package services

import (
	"fmt"
	"net/url"
	"strings"

	"vagaspg_backend/internal/models"
	"vagaspg_backend/internal/registry"
	"vagaspg_backend/internal/services/dto"
	"vagaspg_backend/pkg/apperrors"
)

// Attribution is appended to every direct-contact message.
const Attribution = "Vi esta vaga no Vagas PG."

// BuildContactMessage composes the pre-filled candidate message.
func BuildContactMessage(job *models.Job, candidateName string) string {
	name := strings.TrimSpace(candidateName)
	company := job.CompanyName()

	var b strings.Builder
	b.WriteString("Olá! ")
	if name != "" {
		fmt.Fprintf(&b, "Meu nome é %s e tenho interesse na vaga de ", name)
	} else {
		b.WriteString("Tenho interesse na vaga de ")
	}
	b.WriteString(job.Title)
	if company != "" {
		fmt.Fprintf(&b, " na %s", company)
	}
	b.WriteString(". ")
	b.WriteString(Attribution)
	return b.String()
}

// BuildContactLink returns the deep link for the job's declared application method.
// Nothing is persisted.
func BuildContactLink(job *models.Job, candidateName string) (*dto.ContactLinkResponse, error) {
	if !job.ExternalContactReady() {
		return nil, apperrors.FieldError("application_method", "this job does not accept direct contact")
	}

	msg := BuildContactMessage(job, candidateName)
	contact := strings.TrimSpace(job.ContactInfo)

	var link string
	switch job.ApplicationMethod {
	case models.ApplicationMethodWhatsApp:
		digits, err := brazilianNumber(contact)
		if err != nil {
			return nil, err
		}
		link = fmt.Sprintf("https://wa.me/%s?text=%s", digits, escape(msg))
	case models.ApplicationMethodEmail:
		addr, err := mailtoAddress(contact)
		if err != nil {
			return nil, err
		}
		subject := "Candidatura: " + job.Title
		link = fmt.Sprintf("mailto:%s?subject=%s&body=%s", addr, escape(subject), escape(msg))
	case models.ApplicationMethodPhone:
		digits, err := brazilianNumber(contact)
		if err != nil {
			return nil, err
		}
		link = "tel:+" + digits
	default:
		return nil, apperrors.FieldError("application_method", "must be one of whatsapp, email, phone")
	}

	return &dto.ContactLinkResponse{
		Method:  job.ApplicationMethod,
		URL:     link,
		Message: msg,
	}, nil
}

// brazilianNumber keeps digits and adds the 55 country code to 10 or 11 digit local numbers.
func brazilianNumber(raw string) (string, error) {
	digits := registry.Digits(raw)
	switch {
	case len(digits) == 10 || len(digits) == 11:
		return "55" + digits, nil
	case len(digits) >= 12 && len(digits) <= 13 && strings.HasPrefix(digits, "55"):
		return digits, nil
	default:
		return "", apperrors.FieldError("contact_info", "is not a valid phone number")
	}
}

// mailtoAddress rejects anything that could add headers or recipients to a
// mailto link and percent-encodes what is left.
func mailtoAddress(contact string) (string, error) {
	if strings.Count(contact, "@") != 1 || strings.ContainsAny(contact, "?&#%,;/ \t\r\n") {
		return "", apperrors.FieldError("contact_info", "is not an email address")
	}
	local, domain, _ := strings.Cut(contact, "@")
	if local == "" || domain == "" {
		return "", apperrors.FieldError("contact_info", "is not an email address")
	}
	return url.PathEscape(contact), nil
}

// escape percent-encodes for a query value, using %20 for spaces.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
