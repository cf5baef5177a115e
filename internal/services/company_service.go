package services

import (
	"context"
	"strings"

	"vagaspg_backend/internal/algorithms"
	"vagaspg_backend/internal/auth"
	"vagaspg_backend/internal/logger"
	"vagaspg_backend/internal/models"
	"vagaspg_backend/internal/registry"
	"vagaspg_backend/internal/repositories"
	"vagaspg_backend/internal/services/dto"
	"vagaspg_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CompanyService interface {
	// Admin operations
	ListCompanies(ctx context.Context, db *gorm.DB, session *auth.Session, query *dto.CompanyListQuery) ([]models.Company, error)
	CreateCompany(ctx context.Context, db *gorm.DB, session *auth.Session, req *dto.CreateCompanyRequest) (*models.Company, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, session *auth.Session, companyID, status string) (*models.Company, error)
	DeleteCompany(ctx context.Context, db *gorm.DB, session *auth.Session, companyID string) (*repositories.CascadeResult, error)

	// Owner operations
	GetOwnCompany(ctx context.Context, db *gorm.DB, session *auth.Session) (*models.Company, error)
	UpdateOwnCompany(ctx context.Context, db *gorm.DB, session *auth.Session, req *dto.UpdateCompanyRequest) (*models.Company, error)
}

type companyService struct {
	companyRepo   repositories.CompanyRepository
	uploadService UploadService
	lifecycle     models.Lifecycle
}

func NewCompanyService(
	companyRepo repositories.CompanyRepository,
	uploadService UploadService,
	lifecycle models.Lifecycle,
) CompanyService {
	return &companyService{
		companyRepo:   companyRepo,
		uploadService: uploadService,
		lifecycle:     lifecycle,
	}
}

// ---------------- Admin Operations ----------------

func (s *companyService) ListCompanies(ctx context.Context, db *gorm.DB, session *auth.Session, query *dto.CompanyListQuery) ([]models.Company, error) {
	if !session.Can(auth.PermCompaniesManage) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	companies, err := s.companyRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return algorithms.FilterCompanies(companies, algorithms.CompanyFilter{
		Query:  query.Query,
		Status: query.Status,
	}), nil
}

// CreateCompany registers a company on behalf of an admin. Status defaults to pending.
func (s *companyService) CreateCompany(ctx context.Context, db *gorm.DB, session *auth.Session, req *dto.CreateCompanyRequest) (*models.Company, error) {
	if !session.Can(auth.PermCompaniesManage) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	status := models.CompanyStatusPending
	if req.Status != "" {
		parsed, err := models.ParseCompanyStatus(req.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	company := &models.Company{
		OwnerID:     session.ProfileID(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Website:     strings.TrimSpace(req.Website),
		Sector:      strings.TrimSpace(req.Sector),
		Description: strings.TrimSpace(req.Description),
		City:        strings.TrimSpace(req.City),
		Address:     strings.TrimSpace(req.Address),
		LogoURL:     strings.TrimSpace(req.LogoURL),
		Status:      status,
	}

	if req.RegistrationNumber != "" {
		digits := registry.Digits(req.RegistrationNumber)
		if len(digits) != 14 {
			return nil, apperrors.FieldError("registration_number", "must have 14 digits")
		}
		if _, err := s.companyRepo.FindByRegistrationNumber(db, digits); err == nil {
			return nil, apperrors.ErrConflict(nil, "company", "A company with this registration number already exists")
		} else if !apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.DatabaseError(err)
		}
		company.RegistrationNumber = digits
	}

	if err := s.companyRepo.Create(db, company); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "Company created by admin", "company_id", company.ID, "status", company.Status)
	return company, nil
}

func (s *companyService) UpdateStatus(ctx context.Context, db *gorm.DB, session *auth.Session, companyID, status string) (*models.Company, error) {
	next, err := models.ParseCompanyStatus(status)
	if err != nil {
		return nil, err
	}
	if !session.Can(auth.PermCompaniesManage) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	company, err := s.companyRepo.FindByID(db, companyID)
	if err != nil {
		return nil, handleRepoError(err, "company")
	}
	if err := s.lifecycle.CheckCompany(company.Status, next); err != nil {
		return nil, err
	}

	if err := s.companyRepo.UpdateStatus(db, companyID, next); err != nil {
		return nil, handleRepoError(err, "company")
	}

	logger.CtxInfo(ctx, "Company status changed", "company_id", companyID, "from", company.Status, "to", next)
	company.Status = next
	return company, nil
}

// DeleteCompany cascades to jobs, applications and payments, then drops the stored resumes.
func (s *companyService) DeleteCompany(ctx context.Context, db *gorm.DB, session *auth.Session, companyID string) (*repositories.CascadeResult, error) {
	if !session.Can(auth.PermCompaniesManage) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	company, err := s.companyRepo.FindByID(db, companyID)
	if err != nil {
		return nil, handleRepoError(err, "company")
	}
	if company.IsSystem {
		return nil, apperrors.NewForbiddenError("The system company cannot be deleted")
	}

	result, err := s.companyRepo.DeleteCascade(db, companyID)
	if err != nil {
		return nil, handleRepoError(err, "company")
	}

	s.uploadService.Discard(ctx, db, result.ResumePaths...)

	logger.CtxInfo(ctx, "Company deleted",
		"company_id", companyID,
		"jobs", result.JobsDeleted,
		"applications", result.ApplicationsDeleted,
		"payments", result.PaymentsDeleted,
	)
	return result, nil
}

// ---------------- Owner Operations ----------------

func (s *companyService) GetOwnCompany(ctx context.Context, db *gorm.DB, session *auth.Session) (*models.Company, error) {
	if err := requireAuth(session.IsAuthenticated()); err != nil {
		return nil, err
	}
	if session.CompanyID() == "" {
		return nil, apperrors.ErrNotFound(nil, "company")
	}

	company, err := s.companyRepo.FindByID(db, session.CompanyID())
	if err != nil {
		return nil, handleRepoError(err, "company")
	}
	return company, nil
}

func (s *companyService) UpdateOwnCompany(ctx context.Context, db *gorm.DB, session *auth.Session, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	if !session.Can(auth.PermCompanyEditOwn) || session.CompanyID() == "" {
		return nil, apperrors.ErrInsufficientPermissions
	}

	updates := map[string]interface{}{}
	set := func(column string, v *string) {
		if v != nil {
			updates[column] = strings.TrimSpace(*v)
		}
	}
	set("name", req.Name)
	set("email", req.Email)
	set("phone", req.Phone)
	set("website", req.Website)
	set("sector", req.Sector)
	set("description", req.Description)
	set("city", req.City)
	set("address", req.Address)
	set("logo_url", req.LogoURL)

	if name, ok := updates["name"]; ok && name == "" {
		return nil, apperrors.FieldError("name", "cannot be empty")
	}

	if len(updates) > 0 {
		if err := s.companyRepo.UpdateProfile(db, session.CompanyID(), updates); err != nil {
			return nil, handleRepoError(err, "company")
		}
	}

	return s.GetOwnCompany(ctx, db, session)
}
