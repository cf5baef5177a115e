package models

import (
	"fmt"
	"strings"

	"vagaspg_backend/pkg/apperrors"
)

// Manual transitions per entity. Same-state edges are always allowed.
var (
	companyTransitions = map[CompanyStatus][]CompanyStatus{
		CompanyStatusPending: {CompanyStatusActive},
		CompanyStatusActive:  {CompanyStatusBlocked},
		CompanyStatusBlocked: {CompanyStatusActive},
	}

	jobTransitions = map[JobStatus][]JobStatus{
		JobStatusActive: {JobStatusPaused, JobStatusClosed},
		JobStatusPaused: {JobStatusActive, JobStatusClosed},
	}

	// The dashboard lets a company jump an application to any state.
	applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
		ApplicationStatusNew:       ApplicationStatuses,
		ApplicationStatusViewed:    ApplicationStatuses,
		ApplicationStatusContacted: ApplicationStatuses,
		ApplicationStatusApproved:  ApplicationStatuses,
		ApplicationStatusRejected:  ApplicationStatuses,
	}

	paymentTransitions = map[PaymentStatus][]PaymentStatus{
		PaymentStatusPending: {PaymentStatusApproved, PaymentStatusRejected, PaymentStatusCancelled},
	}
)

func allowed[T ~string](table map[T][]T, from, to T) bool {
	if from == to {
		return true
	}
	return member(to, table[from])
}

// Lifecycle checks status changes.
// With Strict off any enum member is accepted from any state;
// with Strict on edges outside the transition table are rejected.
type Lifecycle struct {
	Strict bool
}

func NewLifecycle(strict bool) Lifecycle {
	return Lifecycle{Strict: strict}
}

func (l Lifecycle) CheckCompany(from, to CompanyStatus) error {
	return l.check("company", string(from), string(to), allowed(companyTransitions, from, to))
}

func (l Lifecycle) CheckJob(from, to JobStatus) error {
	return l.check("job", string(from), string(to), allowed(jobTransitions, from, to))
}

func (l Lifecycle) CheckApplication(from, to ApplicationStatus) error {
	return l.check("application", string(from), string(to), allowed(applicationTransitions, from, to))
}

func (l Lifecycle) CheckPayment(from, to PaymentStatus) error {
	return l.check("payment", string(from), string(to), allowed(paymentTransitions, from, to))
}

func (l Lifecycle) check(domain, from, to string, ok bool) error {
	if !l.Strict || ok {
		return nil
	}
	return apperrors.ErrInvalidTransition(domain, from, to)
}

// ============================================
// Parsing (enum membership)
// ============================================

func enumError[T ~string](field, value string, set []T) error {
	names := make([]string, len(set))
	for i, s := range set {
		names[i] = string(s)
	}
	return apperrors.FieldError(field, fmt.Sprintf("'%s' is not one of: %s", value, strings.Join(names, ", ")))
}

func ParseCompanyStatus(s string) (CompanyStatus, error) {
	v := CompanyStatus(s)
	if !v.IsValid() {
		return "", enumError("status", s, CompanyStatuses)
	}
	return v, nil
}

func ParseJobStatus(s string) (JobStatus, error) {
	v := JobStatus(s)
	if !v.IsValid() {
		return "", enumError("status", s, JobStatuses)
	}
	return v, nil
}

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	v := ApplicationStatus(s)
	if !v.IsValid() {
		return "", enumError("status", s, ApplicationStatuses)
	}
	return v, nil
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	v := PaymentStatus(s)
	if !v.IsValid() {
		return "", enumError("status", s, PaymentStatuses)
	}
	return v, nil
}
