package validator

import (
	"log"

	"vagaspg_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules binds the enum tags used by the DTOs.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-company-status", enumRule(func(s string) bool { return models.CompanyStatus(s).IsValid() }))
	mustRegister("is-job-status", enumRule(func(s string) bool { return models.JobStatus(s).IsValid() }))
	mustRegister("is-application-status", enumRule(func(s string) bool { return models.ApplicationStatus(s).IsValid() }))
	mustRegister("is-payment-status", enumRule(func(s string) bool { return models.PaymentStatus(s).IsValid() }))
	mustRegister("is-contract-type", enumRule(func(s string) bool { return models.ContractType(s).IsValid() }))
	mustRegister("is-work-mode", enumRule(func(s string) bool { return models.WorkMode(s).IsValid() }))
	mustRegister("is-experience-level", enumRule(func(s string) bool { return models.ExperienceLevel(s).IsValid() }))
	mustRegister("is-application-method", enumRule(func(s string) bool { return models.ApplicationMethod(s).IsValid() }))
}

// enumRule skips empty values; presence is the job of 'required'.
func enumRule(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return valid(value)
	}
}
