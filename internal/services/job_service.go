package services

import (
	"context"
	"strings"

	"vagaspg_backend/internal/algorithms"
	"vagaspg_backend/internal/auth"
	"vagaspg_backend/internal/logger"
	"vagaspg_backend/internal/models"
	"vagaspg_backend/internal/repositories"
	"vagaspg_backend/internal/services/dto"
	"vagaspg_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	// Public listing: status=active only.
	ListPublic(ctx context.Context, db *gorm.DB, query *dto.JobListQuery) ([]models.Job, error)
	GetPublic(ctx context.Context, db *gorm.DB, jobID string) (*models.Job, error)

	// Company dashboard
	ListOwn(ctx context.Context, db *gorm.DB, session *auth.Session, query *dto.JobListQuery) ([]models.Job, error)

	// Admin console
	ListAll(ctx context.Context, db *gorm.DB, session *auth.Session, query *dto.JobListQuery) ([]models.Job, error)

	// CreateJob posts for the caller's company; admins may pass companyID ("" means the system company).
	CreateJob(ctx context.Context, db *gorm.DB, session *auth.Session, companyID string, req *dto.JobRequest) (*models.Job, error)
	UpdateJob(ctx context.Context, db *gorm.DB, session *auth.Session, jobID string, req *dto.JobRequest) (*models.Job, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, session *auth.Session, jobID, status string) (*models.Job, error)
	DeleteJob(ctx context.Context, db *gorm.DB, session *auth.Session, jobID string) error
}

type jobService struct {
	jobRepo       repositories.JobRepository
	companyRepo   repositories.CompanyRepository
	uploadService UploadService
	lifecycle     models.Lifecycle
}

func NewJobService(
	jobRepo repositories.JobRepository,
	companyRepo repositories.CompanyRepository,
	uploadService UploadService,
	lifecycle models.Lifecycle,
) JobService {
	return &jobService{
		jobRepo:       jobRepo,
		companyRepo:   companyRepo,
		uploadService: uploadService,
		lifecycle:     lifecycle,
	}
}

func toJobFilter(q *dto.JobListQuery) algorithms.JobFilter {
	if q == nil {
		return algorithms.JobFilter{}
	}
	return algorithms.JobFilter{
		Query:        q.Query,
		City:         q.City,
		ContractType: q.ContractType,
		WorkMode:     q.WorkMode,
		Status:       q.Status,
	}
}

// ---------------- Fetchers ----------------

// ListPublic ignores the owning company's status; only the job status gates visibility.
func (s *jobService) ListPublic(ctx context.Context, db *gorm.DB, query *dto.JobListQuery) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindActive(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	filter := toJobFilter(query)
	filter.Status = ""
	return algorithms.FilterPublicJobs(jobs, filter), nil
}

func (s *jobService) GetPublic(ctx context.Context, db *gorm.DB, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, handleRepoError(err, "job")
	}
	if job.Status != models.JobStatusActive {
		return nil, apperrors.ErrNotFound(nil, "job")
	}
	return job, nil
}

func (s *jobService) ListOwn(ctx context.Context, db *gorm.DB, session *auth.Session, query *dto.JobListQuery) ([]models.Job, error) {
	if !session.Can(auth.PermJobsWriteOwn) || session.CompanyID() == "" {
		return nil, apperrors.ErrInsufficientPermissions
	}

	jobs, err := s.jobRepo.FindByCompany(db, session.CompanyID())
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return algorithms.FilterCompanyJobs(jobs, toJobFilter(query)), nil
}

func (s *jobService) ListAll(ctx context.Context, db *gorm.DB, session *auth.Session, query *dto.JobListQuery) ([]models.Job, error) {
	if !session.Can(auth.PermJobsManage) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	jobs, err := s.jobRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return algorithms.FilterAdminJobs(jobs, toJobFilter(query)), nil
}

// ---------------- Mutators ----------------

func (s *jobService) CreateJob(ctx context.Context, db *gorm.DB, session *auth.Session, companyID string, req *dto.JobRequest) (*models.Job, error) {
	company, err := s.resolveCompany(db, session, companyID)
	if err != nil {
		return nil, err
	}

	status := models.JobStatusActive
	if req.Status != "" {
		if status, err = models.ParseJobStatus(req.Status); err != nil {
			return nil, err
		}
	}

	job := &models.Job{CompanyID: company.ID, Status: status}
	if err := applyJobRequest(job, req); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	job.Company = company

	logger.CtxInfo(ctx, "Job created", "job_id", job.ID, "company_id", company.ID, "system", company.IsSystem)
	return job, nil
}

// resolveCompany picks the company a new job belongs to and checks the caller may post for it.
func (s *jobService) resolveCompany(db *gorm.DB, session *auth.Session, companyID string) (*models.Company, error) {
	var (
		company *models.Company
		err     error
	)

	switch {
	case session.Can(auth.PermJobsManage):
		if companyID == "" {
			company, err = s.companyRepo.FindSystemCompany(db)
		} else {
			company, err = s.companyRepo.FindByID(db, companyID)
		}
	case session.Can(auth.PermJobsWriteOwn) && session.CompanyID() != "":
		if companyID != "" && companyID != session.CompanyID() {
			return nil, forbidden()
		}
		company, err = s.companyRepo.FindByID(db, session.CompanyID())
	default:
		return nil, apperrors.ErrInsufficientPermissions
	}

	if err != nil {
		return nil, handleRepoError(err, "company")
	}
	return company, nil
}

func (s *jobService) UpdateJob(ctx context.Context, db *gorm.DB, session *auth.Session, jobID string, req *dto.JobRequest) (*models.Job, error) {
	job, err := s.findManaged(db, session, jobID)
	if err != nil {
		return nil, err
	}

	if err := applyJobRequest(job, req); err != nil {
		return nil, err
	}
	if err := s.jobRepo.Update(db, job); err != nil {
		return nil, handleRepoError(err, "job")
	}

	logger.CtxInfo(ctx, "Job updated", "job_id", job.ID)
	return job, nil
}

func (s *jobService) UpdateStatus(ctx context.Context, db *gorm.DB, session *auth.Session, jobID, status string) (*models.Job, error) {
	next, err := models.ParseJobStatus(status)
	if err != nil {
		return nil, err
	}

	job, err := s.findManaged(db, session, jobID)
	if err != nil {
		return nil, err
	}
	if err := s.lifecycle.CheckJob(job.Status, next); err != nil {
		return nil, err
	}

	if err := s.jobRepo.UpdateStatus(db, jobID, next); err != nil {
		return nil, handleRepoError(err, "job")
	}

	logger.CtxInfo(ctx, "Job status changed", "job_id", jobID, "from", job.Status, "to", next)
	job.Status = next
	return job, nil
}

// DeleteJob removes the job with its applications and drops their resumes.
func (s *jobService) DeleteJob(ctx context.Context, db *gorm.DB, session *auth.Session, jobID string) error {
	if _, err := s.findManaged(db, session, jobID); err != nil {
		return err
	}

	paths, err := s.jobRepo.Delete(db, jobID)
	if err != nil {
		return handleRepoError(err, "job")
	}
	s.uploadService.Discard(ctx, db, paths...)

	logger.CtxInfo(ctx, "Job deleted", "job_id", jobID, "applications", len(paths))
	return nil
}

// findManaged loads a job the caller is allowed to change.
func (s *jobService) findManaged(db *gorm.DB, session *auth.Session, jobID string) (*models.Job, error) {
	if !session.IsAuthenticated() {
		return nil, requireAuth(false)
	}

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, handleRepoError(err, "job")
	}

	if session.Can(auth.PermJobsManage) {
		return job, nil
	}
	if session.Can(auth.PermJobsWriteOwn) && session.OwnsCompany(job.CompanyID) {
		return job, nil
	}
	return nil, forbidden()
}

// applyJobRequest copies the editable fields onto job and enforces the external-application rule.
func applyJobRequest(job *models.Job, req *dto.JobRequest) error {
	job.Title = strings.TrimSpace(req.Title)
	job.Description = strings.TrimSpace(req.Description)
	job.Requirements = strings.TrimSpace(req.Requirements)
	job.Salary = strings.TrimSpace(req.Salary)
	job.Location = strings.TrimSpace(req.Location)
	job.ContractType = models.ContractType(req.ContractType)
	job.WorkMode = models.WorkMode(req.WorkMode)
	job.ExperienceLevel = models.ExperienceLevel(req.ExperienceLevel)
	job.SetBenefits(algorithms.UniqueList(req.Benefits))
	job.HasExternalApplication = req.HasExternalApplication
	job.ApplicationMethod = models.ApplicationMethod(strings.TrimSpace(req.ApplicationMethod))
	job.ContactInfo = strings.TrimSpace(req.ContactInfo)

	errs := map[string]string{}
	if job.Title == "" {
		errs["title"] = "is required"
	}
	if job.ContractType != "" && !job.ContractType.IsValid() {
		errs["contract_type"] = "is not a valid contract type"
	}
	if job.WorkMode != "" && !job.WorkMode.IsValid() {
		errs["work_mode"] = "is not a valid work mode"
	}
	if job.ExperienceLevel != "" && !job.ExperienceLevel.IsValid() {
		errs["experience_level"] = "is not a valid experience level"
	}
	if job.ApplicationMethod != "" && !job.ApplicationMethod.IsValid() {
		errs["application_method"] = "must be one of whatsapp, email, phone"
	}
	if job.HasExternalApplication {
		if job.ApplicationMethod == "" {
			errs["application_method"] = "is required when external application is enabled"
		}
		if job.ContactInfo == "" {
			errs["contact_info"] = "is required when external application is enabled"
		}
	}
	if len(errs) > 0 {
		return apperrors.ValidationError(errs)
	}
	return nil
}
