package repositories

import (
	"time"

	"vagaspg_backend/internal/models"

	"gorm.io/gorm"
)

// OrphanedFileRepository is the cleanup list for stored objects whose record insert failed.
type OrphanedFileRepository interface {
	Create(db *gorm.DB, path, reason string) error
	FindBatch(db *gorm.DB, limit int) ([]models.OrphanedFile, error)
	Delete(db *gorm.DB, id string) error
	MarkAttempt(db *gorm.DB, id string, lastErr string) error
}

type orphanedFileRepository struct{}

func NewOrphanedFileRepository() OrphanedFileRepository {
	return &orphanedFileRepository{}
}

func (r *orphanedFileRepository) Create(db *gorm.DB, path, reason string) error {
	return db.Create(&models.OrphanedFile{Path: path, LastError: reason}).Error
}

func (r *orphanedFileRepository) FindBatch(db *gorm.DB, limit int) ([]models.OrphanedFile, error) {
	var files []models.OrphanedFile
	err := db.Order("attempts ASC, created_at ASC").Limit(limit).Find(&files).Error
	return files, err
}

func (r *orphanedFileRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.OrphanedFile{}, "id = ?", id).Error
}

func (r *orphanedFileRepository) MarkAttempt(db *gorm.DB, id string, lastErr string) error {
	return db.Model(&models.OrphanedFile{}).Where("id = ?", id).Updates(map[string]interface{}{
		"attempts":   gorm.Expr("attempts + 1"),
		"last_error": lastErr,
		"updated_at": time.Now(),
	}).Error
}
