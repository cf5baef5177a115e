package services

import (
	"context"

	"vagaspg_backend/internal/assistant"
	"vagaspg_backend/internal/auth"
	"vagaspg_backend/internal/imageprocessor"
	"vagaspg_backend/internal/models"
	"vagaspg_backend/internal/repositories"
	"vagaspg_backend/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"gorm.io/gorm"
)

// JobAssistant is the generative-model surface the service uses.
type JobAssistant interface {
	ExtractFromText(ctx context.Context, text string) (*assistant.JobDraft, error)
	ExtractFromImage(ctx context.Context, mimeType string, data []byte) (*assistant.JobDraft, error)
	ImproveResume(ctx context.Context, resumeText string) (string, error)
	InterviewTips(ctx context.Context, job assistant.JobBrief) (string, error)
}

// MaxImageSize bounds a job-flyer image sent for extraction.
const MaxImageSize = 5 * 1024 * 1024

var imageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/heic"}

type AssistantService interface {
	ExtractFromText(ctx context.Context, session *auth.Session, text string) (*assistant.JobDraft, error)
	ExtractFromImage(ctx context.Context, session *auth.Session, data []byte) (*assistant.JobDraft, error)
	// ImproveResume accepts plain text, or a PDF when pdf is non-empty.
	ImproveResume(ctx context.Context, text string, pdf []byte) (string, error)
	InterviewTips(ctx context.Context, db *gorm.DB, jobID string) (string, error)
}

type assistantService struct {
	assistant JobAssistant
	jobRepo   repositories.JobRepository
	images    *imageprocessor.Processor
}

// NewAssistantService accepts a nil assistant; every call then fails as unavailable.
func NewAssistantService(a JobAssistant, jobRepo repositories.JobRepository, images *imageprocessor.Processor) AssistantService {
	if images == nil {
		images = imageprocessor.NewProcessor(0, imageprocessor.DefaultMaxSide)
	}
	return &assistantService{assistant: a, jobRepo: jobRepo, images: images}
}

func (s *assistantService) available() error {
	if s.assistant == nil {
		return apperrors.ErrAssistantUnavailable(nil)
	}
	return nil
}

func (s *assistantService) ExtractFromText(ctx context.Context, session *auth.Session, text string) (*assistant.JobDraft, error) {
	if !session.Can(auth.PermAssistantUse) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if err := s.available(); err != nil {
		return nil, err
	}
	return s.assistant.ExtractFromText(ctx, text)
}

func (s *assistantService) ExtractFromImage(ctx context.Context, session *auth.Session, data []byte) (*assistant.JobDraft, error) {
	if !session.Can(auth.PermAssistantUse) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if len(data) == 0 {
		return nil, apperrors.FieldError("image", "This field is required")
	}
	if len(data) > MaxImageSize {
		return nil, apperrors.ErrFileRejected("Image must be at most 5 MB", true)
	}

	mimeType := mimetype.Detect(data).String()
	if !contains(imageTypes, baseMIME(mimeType)) {
		return nil, apperrors.ErrFileRejected("Image must be JPEG, PNG, WebP or HEIC", false)
	}

	if err := s.available(); err != nil {
		return nil, err
	}

	data, mimeType, err := s.images.Fit(data, baseMIME(mimeType))
	if err != nil {
		return nil, apperrors.ErrFileRejected("Image could not be read", false)
	}
	return s.assistant.ExtractFromImage(ctx, mimeType, data)
}

func (s *assistantService) ImproveResume(ctx context.Context, text string, pdf []byte) (string, error) {
	if len(pdf) > 0 {
		if baseMIME(mimetype.Detect(pdf).String()) != "application/pdf" {
			return "", apperrors.ErrFileRejected("Resume must be a PDF", false)
		}
		extracted, err := assistant.PDFText(pdf)
		if err != nil {
			return "", err
		}
		text = extracted
	}
	if text == "" {
		return "", apperrors.FieldError("resume_text", "This field is required")
	}

	if err := s.available(); err != nil {
		return "", err
	}
	return s.assistant.ImproveResume(ctx, text)
}

// InterviewTips is public: candidates ask for tips on an active job.
func (s *assistantService) InterviewTips(ctx context.Context, db *gorm.DB, jobID string) (string, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return "", handleRepoError(err, "job")
	}
	if job.Status != models.JobStatusActive {
		return "", apperrors.ErrNotFound(nil, "job")
	}

	if err := s.available(); err != nil {
		return "", err
	}
	return s.assistant.InterviewTips(ctx, assistant.JobBrief{
		Title:        job.Title,
		Company:      job.CompanyName(),
		Description:  job.Description,
		Requirements: job.Requirements,
	})
}
