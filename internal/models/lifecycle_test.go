package models

import (
	"net/http"
	"testing"

	"vagaspg_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatuses_RejectsUnknownValues(t *testing.T) {
	_, err := ParseJobStatus("archived")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	_, err = ParseApplicationStatus("Viewed")
	assert.Error(t, err, "enum values are case-sensitive")

	_, err = ParseCompanyStatus("")
	assert.Error(t, err)

	_, err = ParsePaymentStatus("refunded")
	assert.Error(t, err)
}

func TestParseStatuses_AcceptsEveryMember(t *testing.T) {
	for _, s := range JobStatuses {
		v, err := ParseJobStatus(string(s))
		assert.NoError(t, err)
		assert.Equal(t, s, v)
	}
	for _, s := range ApplicationStatuses {
		_, err := ParseApplicationStatus(string(s))
		assert.NoError(t, err)
	}
	for _, s := range CompanyStatuses {
		_, err := ParseCompanyStatus(string(s))
		assert.NoError(t, err)
	}
	for _, s := range PaymentStatuses {
		_, err := ParsePaymentStatus(string(s))
		assert.NoError(t, err)
	}
}

func TestLifecycle_LenientAcceptsAnyMember(t *testing.T) {
	l := NewLifecycle(false)

	assert.NoError(t, l.CheckJob(JobStatusClosed, JobStatusActive))
	assert.NoError(t, l.CheckCompany(CompanyStatusBlocked, CompanyStatusPending))
	assert.NoError(t, l.CheckPayment(PaymentStatusApproved, PaymentStatusPending))
	assert.NoError(t, l.CheckApplication(ApplicationStatusRejected, ApplicationStatusNew))
}

func TestLifecycle_StrictRejectsEdgesOutsideTable(t *testing.T) {
	l := NewLifecycle(true)

	assert.NoError(t, l.CheckJob(JobStatusActive, JobStatusPaused))
	assert.NoError(t, l.CheckJob(JobStatusPaused, JobStatusActive))
	assert.NoError(t, l.CheckJob(JobStatusClosed, JobStatusClosed), "same-state edges are allowed")

	err := l.CheckJob(JobStatusClosed, JobStatusActive)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidTransition))

	assert.NoError(t, l.CheckCompany(CompanyStatusPending, CompanyStatusActive))
	assert.Error(t, l.CheckCompany(CompanyStatusPending, CompanyStatusBlocked))

	assert.NoError(t, l.CheckPayment(PaymentStatusPending, PaymentStatusApproved))
	assert.Error(t, l.CheckPayment(PaymentStatusApproved, PaymentStatusRejected))

	// Applications may move freely even in strict mode.
	assert.NoError(t, l.CheckApplication(ApplicationStatusRejected, ApplicationStatusContacted))
}

func TestJob_ExternalContactReady(t *testing.T) {
	job := Job{HasExternalApplication: true, ApplicationMethod: ApplicationMethodWhatsApp, ContactInfo: "42 99999-0000"}
	assert.True(t, job.ExternalContactReady())

	job.ContactInfo = "   "
	assert.False(t, job.ExternalContactReady())

	job = Job{HasExternalApplication: false, ApplicationMethod: ApplicationMethodEmail, ContactInfo: "rh@empresa.com"}
	assert.False(t, job.ExternalContactReady())
}

func TestLists_RoundTripThroughJSONColumn(t *testing.T) {
	var job Job
	job.SetBenefits([]string{"VR", "Plano de saúde"})
	assert.Equal(t, []string{"VR", "Plano de saúde"}, job.GetBenefits())

	var app Application
	assert.Empty(t, app.GetSkills())
}
