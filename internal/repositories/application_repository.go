package repositories

import (
	"errors"
	"time"

	"vagaspg_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	FindByJob(db *gorm.DB, jobID string) ([]models.Application, error)
	// FindByCompany joins application -> job -> company.
	FindByCompany(db *gorm.DB, companyID string) ([]models.Application, error)
	FindAll(db *gorm.DB) ([]models.Application, error)
	UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error
	Delete(db *gorm.DB, id string) error
}

type applicationRepository struct{}

func NewApplicationRepository() ApplicationRepository {
	return &applicationRepository{}
}

func (r *applicationRepository) Create(db *gorm.DB, app *models.Application) error {
	return db.Omit("Job").Create(app).Error
}

func (r *applicationRepository) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	if err := db.Preload("Job.Company").First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) FindByJob(db *gorm.DB, jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Job").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindByCompany(db *gorm.DB, companyID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Job.Company").
		Where("job_id IN (?)", db.Model(&models.Job{}).Select("id").Where("company_id = ?", companyID)).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindAll(db *gorm.DB) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Job.Company").Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	result := db.Model(&models.Application{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *applicationRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Application{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
