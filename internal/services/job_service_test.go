package services

import (
	"context"
	"net/http"
	"testing"

	"vagaspg_backend/internal/models"
	"vagaspg_backend/internal/repositories"
	"vagaspg_backend/internal/services/dto"
	"vagaspg_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newJobService(t *testing.T, strict bool) (*gorm.DB, *testutil.MemoryStorage, JobService) {
	t.Helper()

	db := testutil.NewTestDB(t)
	store := testutil.NewMemoryStorage()
	upload := NewUploadService(store, repositories.NewOrphanedFileRepository(), nil)
	svc := NewJobService(repositories.NewJobRepository(), repositories.NewCompanyRepository(), upload, models.NewLifecycle(strict))
	return db, store, svc
}

func jobRequest(title string) *dto.JobRequest {
	return &dto.JobRequest{
		Title:        title,
		Description:  "Vaga em tempo integral",
		ContractType: string(models.ContractTypeCLT),
		WorkMode:     string(models.WorkModeOnSite),
		Benefits:     []string{"VT", "vt", " Refeição "},
	}
}

func TestJobService_CreateForOwnCompany(t *testing.T) {
	db, _, svc := newJobService(t, false)
	company := testutil.CreateCompany(t, db, "Padaria Central", "Ponta Grossa")
	session := testutil.CompanySession(company)

	job, err := svc.CreateJob(context.Background(), db, session, "", jobRequest("Padeiro"))
	require.NoError(t, err)
	assert.Equal(t, company.ID, job.CompanyID)
	assert.Equal(t, models.JobStatusActive, job.Status)
	assert.Equal(t, []string{"VT", "Refeição"}, job.GetBenefits())

	other := testutil.CreateCompany(t, db, "Oficina", "Castro")
	_, err = svc.CreateJob(context.Background(), db, session, other.ID, jobRequest("Mecânico"))
	assertHTTPCode(t, err, http.StatusForbidden)
}

func TestJobService_AdminPostsForSystemCompany(t *testing.T) {
	db, _, svc := newJobService(t, false)
	system := testutil.CreateCompany(t, db, "Vagas PG", "Ponta Grossa")
	require.NoError(t, db.Model(system).Update("is_system", true).Error)

	job, err := svc.CreateJob(context.Background(), db, testutil.AdminSession("admin-1"), "", jobRequest("Auxiliar"))
	require.NoError(t, err)
	assert.Equal(t, system.ID, job.CompanyID)
	assert.Equal(t, "Vagas PG", job.CompanyName())
}

func TestJobService_ExternalApplicationNeedsChannel(t *testing.T) {
	db, _, svc := newJobService(t, false)
	company := testutil.CreateCompany(t, db, "Padaria Central", "Ponta Grossa")

	req := jobRequest("Balconista")
	req.HasExternalApplication = true
	_, err := svc.CreateJob(context.Background(), db, testutil.CompanySession(company), "", req)
	assertHTTPCode(t, err, http.StatusBadRequest)

	req.ApplicationMethod = "whatsapp"
	req.ContactInfo = "42 99999-0000"
	job, err := svc.CreateJob(context.Background(), db, testutil.CompanySession(company), "", req)
	require.NoError(t, err)
	assert.True(t, job.ExternalContactReady())
}

func TestJobService_UpdateStatus(t *testing.T) {
	db, _, svc := newJobService(t, false)
	company := testutil.CreateCompany(t, db, "Padaria Central", "Ponta Grossa")
	session := testutil.CompanySession(company)
	job := testutil.CreateJob(t, db, company.ID, "Padeiro", models.JobStatusActive)

	_, err := svc.UpdateStatus(context.Background(), db, session, job.ID, "archived")
	assertHTTPCode(t, err, http.StatusBadRequest)

	_, err = svc.UpdateStatus(context.Background(), db, session, "missing", "paused")
	assertHTTPCode(t, err, http.StatusNotFound)

	_, err = svc.UpdateStatus(context.Background(), db, session, job.ID, "closed")
	require.NoError(t, err)
	// Lenient mode lets a closed job be reopened; the last write wins.
	updated, err := svc.UpdateStatus(context.Background(), db, session, job.ID, "active")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusActive, updated.Status)

	other := testutil.CreateCompany(t, db, "Oficina", "Castro")
	_, err = svc.UpdateStatus(context.Background(), db, testutil.CompanySession(other), job.ID, "paused")
	assertHTTPCode(t, err, http.StatusForbidden)
}

func TestJobService_StrictLifecycle(t *testing.T) {
	db, _, svc := newJobService(t, true)
	company := testutil.CreateCompany(t, db, "Padaria Central", "Ponta Grossa")
	session := testutil.CompanySession(company)
	job := testutil.CreateJob(t, db, company.ID, "Padeiro", models.JobStatusClosed)

	_, err := svc.UpdateStatus(context.Background(), db, session, job.ID, "active")
	assertHTTPCode(t, err, http.StatusConflict)
}

func TestJobService_PublicListing(t *testing.T) {
	db, _, svc := newJobService(t, false)
	pg := testutil.CreateCompany(t, db, "Padaria Central", "Ponta Grossa")
	castro := testutil.CreateCompany(t, db, "Agro Castro", "Castro")
	require.NoError(t, db.Model(castro).Update("status", models.CompanyStatusBlocked).Error)

	testutil.CreateJob(t, db, pg.ID, "Padeiro", models.JobStatusActive)
	paused := testutil.CreateJob(t, db, pg.ID, "Confeiteiro", models.JobStatusPaused)
	testutil.CreateJob(t, db, castro.ID, "Tratorista", models.JobStatusActive)

	jobs, err := svc.ListPublic(context.Background(), db, &dto.JobListQuery{})
	require.NoError(t, err)
	assert.Len(t, jobs, 2, "company status does not hide active jobs")

	jobs, err = svc.ListPublic(context.Background(), db, &dto.JobListQuery{Query: "padaria", Status: "paused"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Padeiro", jobs[0].Title)

	_, err = svc.GetPublic(context.Background(), db, paused.ID)
	assertHTTPCode(t, err, http.StatusNotFound)
}

func TestJobService_DeleteDropsApplications(t *testing.T) {
	db, store, svc := newJobService(t, false)
	company := testutil.CreateCompany(t, db, "Padaria Central", "Ponta Grossa")
	job := testutil.CreateJob(t, db, company.ID, "Padeiro", models.JobStatusActive)
	store.Put("resumes/x.pdf", []byte("pdf"))
	testutil.CreateApplication(t, db, job.ID, "Ana", "resumes/x.pdf")
	testutil.CreateApplication(t, db, job.ID, "Bruno", "")

	require.NoError(t, svc.DeleteJob(context.Background(), db, testutil.CompanySession(company), job.ID))
	assert.Equal(t, int64(0), testutil.Count(t, db, &models.Job{}))
	assert.Equal(t, int64(0), testutil.Count(t, db, &models.Application{}))
	assert.False(t, store.Has("resumes/x.pdf"))
}
