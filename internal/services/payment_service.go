package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"vagaspg_backend/internal/auth"
	"vagaspg_backend/internal/logger"
	"vagaspg_backend/internal/models"
	"vagaspg_backend/internal/payments"
	"vagaspg_backend/internal/repositories"
	"vagaspg_backend/internal/services/dto"
	"vagaspg_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CheckoutClient creates processor checkout preferences.
type CheckoutClient interface {
	CreatePreference(ctx context.Context, reference string, items []payments.Item) (*payments.Preference, error)
}

type PaymentConfig struct {
	PublishPrice  float64
	Currency      string
	WebhookSecret string
}

// PaymentService runs the legacy pay-to-publish flow.
type PaymentService interface {
	CreateCheckout(ctx context.Context, db *gorm.DB, session *auth.Session, jobID string) (*dto.CheckoutResponse, error)
	HandleWebhook(ctx context.Context, db *gorm.DB, req *dto.PaymentWebhookRequest, raw []byte, signature string) (*models.Payment, error)
	ListOwn(ctx context.Context, db *gorm.DB, session *auth.Session) ([]models.Payment, error)
}

type paymentService struct {
	paymentRepo repositories.PaymentRepository
	jobRepo     repositories.JobRepository
	checkout    CheckoutClient
	config      PaymentConfig
	lifecycle   models.Lifecycle
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	jobRepo repositories.JobRepository,
	checkout CheckoutClient,
	config PaymentConfig,
	lifecycle models.Lifecycle,
) PaymentService {
	if config.Currency == "" {
		config.Currency = "BRL"
	}
	return &paymentService{
		paymentRepo: paymentRepo,
		jobRepo:     jobRepo,
		checkout:    checkout,
		config:      config,
		lifecycle:   lifecycle,
	}
}

func (s *paymentService) CreateCheckout(ctx context.Context, db *gorm.DB, session *auth.Session, jobID string) (*dto.CheckoutResponse, error) {
	if !session.Can(auth.PermPaymentsCheckout) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, handleRepoError(err, "job")
	}
	if !session.OwnsCompany(job.CompanyID) {
		return nil, forbidden()
	}

	payment := &models.Payment{
		CompanyID: job.CompanyID,
		JobID:     &job.ID,
		Amount:    s.config.PublishPrice,
		Currency:  s.config.Currency,
		Status:    models.PaymentStatusPending,
	}
	if err := s.paymentRepo.Create(db, payment); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	pref, err := s.checkout.CreatePreference(ctx, payment.ID, []payments.Item{{
		ID:         job.ID,
		Title:      "Publicação de vaga: " + job.Title,
		Quantity:   1,
		UnitPrice:  payment.Amount,
		CurrencyID: payment.Currency,
	}})
	if err != nil {
		logger.CtxWithError(ctx, "Checkout preference failed", err, "payment_id", payment.ID, "job_id", job.ID)
		return nil, err
	}

	if err := s.paymentRepo.AttachCheckout(db, payment.ID, pref.ID, pref.InitPoint, datatypes.JSON(pref.Raw)); err != nil {
		return nil, handleRepoError(err, "payment")
	}
	if err := s.jobRepo.LinkPayment(db, job.ID, payment.ID); err != nil {
		return nil, handleRepoError(err, "job")
	}

	logger.CtxInfo(ctx, "Checkout created", "payment_id", payment.ID, "job_id", job.ID, "preference_id", pref.ID)

	return &dto.CheckoutResponse{
		PaymentID:    payment.ID,
		PreferenceID: pref.ID,
		CheckoutURL:  pref.InitPoint,
		Amount:       payment.Amount,
		Currency:     payment.Currency,
		Status:       payment.Status,
	}, nil
}

// HandleWebhook applies a signed processor notification in two sequential
// writes: the payment status, then (approved with a linked job only) the job status.
func (s *paymentService) HandleWebhook(ctx context.Context, db *gorm.DB, req *dto.PaymentWebhookRequest, raw []byte, signature string) (*models.Payment, error) {
	if err := payments.VerifySignature(s.config.WebhookSecret, signature, raw, time.Now()); err != nil {
		logger.CtxWarn(ctx, "Webhook signature rejected", "error", err.Error(), "external_reference", req.ExternalReference)
		return nil, apperrors.ErrInvalidSignature
	}

	status, err := models.ParsePaymentStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if err != nil {
		return nil, err
	}

	payment, err := s.findForWebhook(db, req)
	if err != nil {
		return nil, err
	}
	if err := s.lifecycle.CheckPayment(payment.Status, status); err != nil {
		return nil, err
	}

	snapshot := datatypes.JSON(raw)
	if len(raw) == 0 || !json.Valid(raw) {
		snapshot = nil
	}

	externalID := strings.TrimSpace(req.ExternalID)
	if externalID == "" {
		externalID = payment.ExternalID
	}

	if err := s.paymentRepo.UpdateStatus(db, payment.ID, status, externalID, snapshot); err != nil {
		return nil, handleRepoError(err, "payment")
	}
	logger.CtxInfo(ctx, "Payment status updated", "payment_id", payment.ID, "from", payment.Status, "to", status)

	payment.Status = status
	payment.ExternalID = externalID

	if status == models.PaymentStatusApproved && payment.JobID != nil && *payment.JobID != "" {
		if err := s.jobRepo.UpdateStatus(db, *payment.JobID, models.JobStatusActive); err != nil {
			logger.CtxWithError(ctx, "Payment approved but job activation failed", err,
				"payment_id", payment.ID, "job_id", *payment.JobID)
			return nil, handleRepoError(err, "job")
		}
		logger.CtxInfo(ctx, "Job activated by payment", "payment_id", payment.ID, "job_id", *payment.JobID)
	}

	return payment, nil
}

func (s *paymentService) findForWebhook(db *gorm.DB, req *dto.PaymentWebhookRequest) (*models.Payment, error) {
	if id := strings.TrimSpace(req.ExternalID); id != "" {
		payment, err := s.paymentRepo.FindByExternalID(db, id)
		if err == nil {
			return payment, nil
		}
		if !apperrors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.DatabaseError(err)
		}
	}

	if ref := strings.TrimSpace(req.ExternalReference); ref != "" {
		payment, err := s.paymentRepo.FindByID(db, ref)
		if err != nil {
			return nil, handleRepoError(err, "payment")
		}
		return payment, nil
	}
	return nil, apperrors.ErrNotFound(repositories.ErrPaymentNotFound, "payment")
}

func (s *paymentService) ListOwn(ctx context.Context, db *gorm.DB, session *auth.Session) ([]models.Payment, error) {
	if !session.Can(auth.PermPaymentsCheckout) || session.CompanyID() == "" {
		return nil, apperrors.ErrInsufficientPermissions
	}
	list, err := s.paymentRepo.FindByCompany(db, session.CompanyID())
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return list, nil
}
