package repositories

import (
	"errors"
	"time"

	"vagaspg_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *models.Payment) error
	FindByID(db *gorm.DB, id string) (*models.Payment, error)
	FindByExternalID(db *gorm.DB, externalID string) (*models.Payment, error)
	FindByCompany(db *gorm.DB, companyID string) ([]models.Payment, error)
	AttachCheckout(db *gorm.DB, id, preferenceID, checkoutURL string, raw datatypes.JSON) error
	UpdateStatus(db *gorm.DB, id string, status models.PaymentStatus, externalID string, raw datatypes.JSON) error
}

type paymentRepository struct{}

func NewPaymentRepository() PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *models.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) FindByID(db *gorm.DB, id string) (*models.Payment, error) {
	var payment models.Payment
	if err := db.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByExternalID(db *gorm.DB, externalID string) (*models.Payment, error) {
	var payment models.Payment
	if err := db.First(&payment, "external_id = ?", externalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByCompany(db *gorm.DB, companyID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := db.Where("company_id = ?", companyID).Order("created_at DESC").Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) AttachCheckout(db *gorm.DB, id, preferenceID, checkoutURL string, raw datatypes.JSON) error {
	result := db.Model(&models.Payment{}).Where("id = ?", id).Updates(map[string]interface{}{
		"preference_id": preferenceID,
		"checkout_url":  checkoutURL,
		"raw_payload":   raw,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

func (r *paymentRepository) UpdateStatus(db *gorm.DB, id string, status models.PaymentStatus, externalID string, raw datatypes.JSON) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if externalID != "" {
		updates["external_id"] = externalID
	}
	if len(raw) > 0 {
		updates["raw_payload"] = raw
	}

	result := db.Model(&models.Payment{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
