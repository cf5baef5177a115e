package services

import (
	"context"
	"strconv"
	"strings"

	"vagaspg_backend/internal/algorithms"
	"vagaspg_backend/internal/auth"
	"vagaspg_backend/internal/logger"
	"vagaspg_backend/internal/models"
	"vagaspg_backend/internal/repositories"
	"vagaspg_backend/internal/services/dto"
	"vagaspg_backend/internal/validator"
	"vagaspg_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	// Candidate side
	Submit(ctx context.Context, db *gorm.DB, jobID string, req *dto.SubmitApplicationRequest, resume *dto.ResumeUpload) (*models.Application, error)
	ContactLink(ctx context.Context, db *gorm.DB, jobID, candidateName string) (*dto.ContactLinkResponse, error)

	// Company and admin side
	ListOwn(ctx context.Context, db *gorm.DB, session *auth.Session, query *dto.ApplicationListQuery) ([]models.Application, error)
	ListForJob(ctx context.Context, db *gorm.DB, session *auth.Session, jobID string) ([]models.Application, error)
	ListAll(ctx context.Context, db *gorm.DB, session *auth.Session, query *dto.ApplicationListQuery) ([]models.Application, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, session *auth.Session, applicationID, status string) (*models.Application, error)
	DeleteApplication(ctx context.Context, db *gorm.DB, session *auth.Session, applicationID string) error
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	uploadService   UploadService
	validator       *validator.Validator
	lifecycle       models.Lifecycle
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	uploadService UploadService,
	v *validator.Validator,
	lifecycle models.Lifecycle,
) ApplicationService {
	if v == nil {
		v = validator.New()
	}
	return &applicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		uploadService:   uploadService,
		validator:       v,
		lifecycle:       lifecycle,
	}
}

// ---------------- Submission ----------------

// Submit validates, uploads the resume, then inserts. An insert failure after a
// successful upload deletes the object again (or queues it for cleanup).
func (s *applicationService) Submit(ctx context.Context, db *gorm.DB, jobID string, req *dto.SubmitApplicationRequest, resume *dto.ResumeUpload) (*models.Application, error) {
	name := strings.TrimSpace(req.CandidateName)
	email := strings.TrimSpace(req.CandidateEmail)
	phone := strings.TrimSpace(req.CandidatePhone)

	if err := s.validateCandidate(name, email, phone); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, handleRepoError(err, "job")
	}
	if job.Status != models.JobStatusActive {
		return nil, apperrors.ErrNotFound(nil, "job")
	}

	var mimeType string
	if resume != nil {
		if mimeType, err = s.uploadService.ValidateResume(resume); err != nil {
			return nil, err
		}
	}

	app := &models.Application{
		JobID:           job.ID,
		CandidateName:   name,
		CandidateEmail:  email,
		CandidatePhone:  phone,
		LinkedInURL:     strings.TrimSpace(req.LinkedInURL),
		YearsExperience: parseYears(req.YearsExperience),
		CurrentPosition: strings.TrimSpace(req.CurrentPosition),
		Education:       strings.TrimSpace(req.Education),
		CoverLetter:     strings.TrimSpace(req.CoverLetter),
		Status:          models.ApplicationStatusNew,
	}
	app.SetSkills(algorithms.SplitList(req.Skills))

	if resume != nil {
		path, url, err := s.uploadService.StoreResume(ctx, resume, mimeType)
		if err != nil {
			return nil, err
		}
		app.ResumePath = path
		app.ResumeURL = url
	}

	if err := s.applicationRepo.Create(db, app); err != nil {
		logger.CtxWithError(ctx, "Application insert failed, removing uploaded resume", err,
			"job_id", job.ID, "path", app.ResumePath)
		s.uploadService.Discard(ctx, db, app.ResumePath)
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "Application submitted", "application_id", app.ID, "job_id", job.ID, "resume", app.ResumePath != "")
	app.Job = job
	return app, nil
}

// validateCandidate reports every missing required field at once.
func (s *applicationService) validateCandidate(name, email, phone string) error {
	errs := map[string]string{}
	if name == "" {
		errs["candidate_name"] = "This field is required"
	}
	if email == "" {
		errs["candidate_email"] = "This field is required"
	} else if err := s.validator.ValidateVar(email, "email"); err != nil {
		errs["candidate_email"] = "Must be a valid email address"
	}
	if phone == "" {
		errs["candidate_phone"] = "This field is required"
	}
	if len(errs) > 0 {
		return apperrors.ValidationError(errs)
	}
	return nil
}

func parseYears(raw string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func (s *applicationService) ContactLink(ctx context.Context, db *gorm.DB, jobID, candidateName string) (*dto.ContactLinkResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, handleRepoError(err, "job")
	}
	if job.Status != models.JobStatusActive {
		return nil, apperrors.ErrNotFound(nil, "job")
	}
	return BuildContactLink(job, candidateName)
}

// ---------------- Company / Admin ----------------

func toApplicationFilter(q *dto.ApplicationListQuery) algorithms.ApplicationFilter {
	if q == nil {
		return algorithms.ApplicationFilter{}
	}
	return algorithms.ApplicationFilter{Query: q.Query, Status: q.Status, JobID: q.JobID}
}

func (s *applicationService) ListOwn(ctx context.Context, db *gorm.DB, session *auth.Session, query *dto.ApplicationListQuery) ([]models.Application, error) {
	if !session.Can(auth.PermApplicationsOwn) || session.CompanyID() == "" {
		return nil, apperrors.ErrInsufficientPermissions
	}

	apps, err := s.applicationRepo.FindByCompany(db, session.CompanyID())
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return algorithms.FilterApplications(apps, toApplicationFilter(query)), nil
}

func (s *applicationService) ListForJob(ctx context.Context, db *gorm.DB, session *auth.Session, jobID string) ([]models.Application, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, handleRepoError(err, "job")
	}
	if !s.canManage(session, job.CompanyID) {
		return nil, forbidden()
	}

	apps, err := s.applicationRepo.FindByJob(db, jobID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return apps, nil
}

func (s *applicationService) ListAll(ctx context.Context, db *gorm.DB, session *auth.Session, query *dto.ApplicationListQuery) ([]models.Application, error) {
	if !session.Can(auth.PermApplicationsManage) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	apps, err := s.applicationRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return algorithms.FilterApplications(apps, toApplicationFilter(query)), nil
}

// UpdateStatus is last-write-wins: concurrent changes are not detected.
func (s *applicationService) UpdateStatus(ctx context.Context, db *gorm.DB, session *auth.Session, applicationID, status string) (*models.Application, error) {
	next, err := models.ParseApplicationStatus(status)
	if err != nil {
		return nil, err
	}

	app, err := s.findManaged(db, session, applicationID)
	if err != nil {
		return nil, err
	}
	if err := s.lifecycle.CheckApplication(app.Status, next); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.UpdateStatus(db, applicationID, next); err != nil {
		return nil, handleRepoError(err, "application")
	}

	logger.CtxInfo(ctx, "Application status changed", "application_id", applicationID, "from", app.Status, "to", next)
	app.Status = next
	return app, nil
}

func (s *applicationService) DeleteApplication(ctx context.Context, db *gorm.DB, session *auth.Session, applicationID string) error {
	app, err := s.findManaged(db, session, applicationID)
	if err != nil {
		return err
	}

	if err := s.applicationRepo.Delete(db, applicationID); err != nil {
		return handleRepoError(err, "application")
	}
	s.uploadService.Discard(ctx, db, app.ResumePath)

	logger.CtxInfo(ctx, "Application deleted", "application_id", applicationID)
	return nil
}

func (s *applicationService) findManaged(db *gorm.DB, session *auth.Session, applicationID string) (*models.Application, error) {
	if !session.IsAuthenticated() {
		return nil, requireAuth(false)
	}

	app, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		return nil, handleRepoError(err, "application")
	}

	companyID := ""
	if app.Job != nil {
		companyID = app.Job.CompanyID
	}
	if !s.canManage(session, companyID) {
		return nil, forbidden()
	}
	return app, nil
}

func (s *applicationService) canManage(session *auth.Session, companyID string) bool {
	if session.Can(auth.PermApplicationsManage) {
		return true
	}
	return session.Can(auth.PermApplicationsOwn) && session.OwnsCompany(companyID)
}
