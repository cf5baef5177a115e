package repositories

import (
	"errors"
	"time"

	"vagaspg_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
)

type CompanyRepository interface {
	Create(db *gorm.DB, company *models.Company) error
	FindByID(db *gorm.DB, id string) (*models.Company, error)
	FindByOwnerID(db *gorm.DB, ownerID string) (*models.Company, error)
	FindByRegistrationNumber(db *gorm.DB, number string) (*models.Company, error)
	FindSystemCompany(db *gorm.DB) (*models.Company, error)
	FindAll(db *gorm.DB) ([]models.Company, error)
	UpdateProfile(db *gorm.DB, id string, updates map[string]interface{}) error
	UpdateStatus(db *gorm.DB, id string, status models.CompanyStatus) error
	// DeleteCascade removes the company, its jobs, their applications and its payments in one transaction.
	DeleteCascade(db *gorm.DB, id string) (*CascadeResult, error)
}

// CascadeResult reports what a cascade delete removed; resume paths are returned so the caller can drop the objects.
type CascadeResult struct {
	JobsDeleted         int64    `json:"jobs_deleted"`
	ApplicationsDeleted int64    `json:"applications_deleted"`
	PaymentsDeleted     int64    `json:"payments_deleted"`
	ResumePaths         []string `json:"-"`
}

type companyRepository struct{}

func NewCompanyRepository() CompanyRepository {
	return &companyRepository{}
}

func (r *companyRepository) Create(db *gorm.DB, company *models.Company) error {
	return db.Create(company).Error
}

func (r *companyRepository) FindByID(db *gorm.DB, id string) (*models.Company, error) {
	var company models.Company
	if err := db.First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) FindByOwnerID(db *gorm.DB, ownerID string) (*models.Company, error) {
	var company models.Company
	err := db.Where("owner_id = ? AND is_system = ?", ownerID, false).
		Order("created_at ASC").First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) FindByRegistrationNumber(db *gorm.DB, number string) (*models.Company, error) {
	var company models.Company
	if err := db.Where("registration_number = ?", number).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) FindSystemCompany(db *gorm.DB) (*models.Company, error) {
	var company models.Company
	if err := db.Where("is_system = ?", true).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) FindAll(db *gorm.DB) ([]models.Company, error) {
	var companies []models.Company
	err := db.Order("created_at DESC").Find(&companies).Error
	return companies, err
}

func (r *companyRepository) UpdateProfile(db *gorm.DB, id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := db.Model(&models.Company{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func (r *companyRepository) UpdateStatus(db *gorm.DB, id string, status models.CompanyStatus) error {
	result := db.Model(&models.Company{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func (r *companyRepository) DeleteCascade(db *gorm.DB, id string) (*CascadeResult, error) {
	res := &CascadeResult{}

	err := db.Transaction(func(tx *gorm.DB) error {
		var company models.Company
		if err := tx.Select("id").First(&company, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCompanyNotFound
			}
			return err
		}

		jobIDs := tx.Model(&models.Job{}).Select("id").Where("company_id = ?", id)

		if err := tx.Model(&models.Application{}).
			Where("job_id IN (?) AND resume_path <> ''", jobIDs).
			Pluck("resume_path", &res.ResumePaths).Error; err != nil {
			return err
		}

		apps := tx.Where("job_id IN (?)", jobIDs).Delete(&models.Application{})
		if apps.Error != nil {
			return apps.Error
		}
		res.ApplicationsDeleted = apps.RowsAffected

		payments := tx.Where("company_id = ?", id).Delete(&models.Payment{})
		if payments.Error != nil {
			return payments.Error
		}
		res.PaymentsDeleted = payments.RowsAffected

		jobs := tx.Where("company_id = ?", id).Delete(&models.Job{})
		if jobs.Error != nil {
			return jobs.Error
		}
		res.JobsDeleted = jobs.RowsAffected

		return tx.Delete(&models.Company{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
