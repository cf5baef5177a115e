package repositories

import (
	"errors"
	"time"

	"vagaspg_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	// FindActive returns jobs with status=active. The owning company's status is not consulted.
	FindActive(db *gorm.DB) ([]models.Job, error)
	FindByCompany(db *gorm.DB, companyID string) ([]models.Job, error)
	FindAll(db *gorm.DB) ([]models.Job, error)
	Update(db *gorm.DB, job *models.Job) error
	UpdateStatus(db *gorm.DB, id string, status models.JobStatus) error
	LinkPayment(db *gorm.DB, id, paymentID string) error
	// Delete removes the job and its applications, returning the resume paths of the removed applications.
	Delete(db *gorm.DB, id string) ([]string, error)
}

type jobRepository struct{}

func NewJobRepository() JobRepository {
	return &jobRepository{}
}

func (r *jobRepository) Create(db *gorm.DB, job *models.Job) error {
	return db.Omit("Company").Create(job).Error
}

func (r *jobRepository) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	if err := db.Preload("Company").First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) FindActive(db *gorm.DB) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Preload("Company").
		Where("status = ?", models.JobStatusActive).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) FindByCompany(db *gorm.DB, companyID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Preload("Company").
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) FindAll(db *gorm.DB) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Preload("Company").Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) Update(db *gorm.DB, job *models.Job) error {
	result := db.Model(&models.Job{}).Where("id = ?", job.ID).Updates(map[string]interface{}{
		"title":                    job.Title,
		"description":              job.Description,
		"requirements":             job.Requirements,
		"salary":                   job.Salary,
		"location":                 job.Location,
		"contract_type":            job.ContractType,
		"work_mode":                job.WorkMode,
		"experience_level":         job.ExperienceLevel,
		"benefits":                 job.Benefits,
		"has_external_application": job.HasExternalApplication,
		"application_method":       job.ApplicationMethod,
		"contact_info":             job.ContactInfo,
		"updated_at":               time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *jobRepository) UpdateStatus(db *gorm.DB, id string, status models.JobStatus) error {
	result := db.Model(&models.Job{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *jobRepository) LinkPayment(db *gorm.DB, id, paymentID string) error {
	result := db.Model(&models.Job{}).Where("id = ?", id).Updates(map[string]interface{}{
		"payment_id": paymentID,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *jobRepository) Delete(db *gorm.DB, id string) ([]string, error) {
	var resumePaths []string

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Application{}).
			Where("job_id = ? AND resume_path <> ''", id).
			Pluck("resume_path", &resumePaths).Error; err != nil {
			return err
		}

		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Job{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resumePaths, nil
}
