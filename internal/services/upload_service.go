package services

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"vagaspg_backend/internal/logger"
	"vagaspg_backend/internal/repositories"
	"vagaspg_backend/internal/services/dto"
	"vagaspg_backend/internal/storage"
	"vagaspg_backend/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"gorm.io/gorm"
)

// ============================================
// RESUME UPLOADS
// ============================================

// UploadService stores resumes and removes them again, recording objects it could not delete.
type UploadService interface {
	// ValidateResume checks type and size without touching storage and returns the effective MIME type.
	ValidateResume(resume *dto.ResumeUpload) (string, error)
	// StoreResume uploads a validated resume and returns its object path and public URL.
	StoreResume(ctx context.Context, resume *dto.ResumeUpload, mimeType string) (path, url string, err error)
	// Discard deletes stored objects; failures are queued for the cleanup worker.
	Discard(ctx context.Context, db *gorm.DB, paths ...string)
}

type UploadConfig struct {
	MaxResumeSize int64
	ResumeTypes   []string
}

func GetDefaultUploadConfig() *UploadConfig {
	return &UploadConfig{
		MaxResumeSize: 10 * 1024 * 1024,
		ResumeTypes: []string{
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		},
	}
}

type uploadService struct {
	storage    storage.Storage
	orphanRepo repositories.OrphanedFileRepository
	config     *UploadConfig
	now        func() time.Time
}

func NewUploadService(
	storage storage.Storage,
	orphanRepo repositories.OrphanedFileRepository,
	config *UploadConfig,
) UploadService {
	if config == nil {
		config = GetDefaultUploadConfig()
	}
	return &uploadService{
		storage:    storage,
		orphanRepo: orphanRepo,
		config:     config,
		now:        time.Now,
	}
}

// extensions maps the accepted resume types to the stored file extension.
var extensions = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

func (s *uploadService) ValidateResume(resume *dto.ResumeUpload) (string, error) {
	if resume.Size > s.config.MaxResumeSize {
		return "", apperrors.ErrFileRejected(
			fmt.Sprintf("Resume must be at most %d MB", s.config.MaxResumeSize/(1024*1024)), true)
	}

	mimeType := baseMIME(resume.ContentType)
	if mimeType == "" || mimeType == "application/octet-stream" {
		detected, content, err := sniff(resume.Content)
		if err != nil {
			return "", apperrors.ErrFileRejected("Could not read the resume file", false)
		}
		resume.Content = content
		mimeType = detected
	}

	if !contains(s.config.ResumeTypes, mimeType) {
		return "", apperrors.ErrFileRejected("Resume must be a PDF or Word document", false)
	}
	return mimeType, nil
}

func (s *uploadService) StoreResume(ctx context.Context, resume *dto.ResumeUpload, mimeType string) (string, string, error) {
	path := s.resumePath(resume.Filename, mimeType)

	if err := s.storage.Save(ctx, path, resume.Content, mimeType); err != nil {
		logger.CtxWithError(ctx, "Resume upload failed", err, "path", path)
		return "", "", apperrors.ErrExternalService(err, "upload", "Could not store the resume, please try again")
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		s.Discard(ctx, nil, path)
		return "", "", apperrors.ErrExternalService(err, "upload", "Could not store the resume, please try again")
	}
	logger.CtxDebug(ctx, "Resume stored", "path", path, "mime", mimeType)
	return path, url, nil
}

// Discard removes objects best-effort. With a nil db failures are only logged.
func (s *uploadService) Discard(ctx context.Context, db *gorm.DB, paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		err := s.storage.Delete(ctx, path)
		if err == nil {
			continue
		}

		logger.CtxWithError(ctx, "Failed to delete stored object", err, "path", path)
		if db == nil || s.orphanRepo == nil {
			continue
		}
		if recErr := s.orphanRepo.Create(db, path, err.Error()); recErr != nil {
			logger.CtxWithError(ctx, "CRITICAL: failed to record orphaned object", recErr, "path", path)
		}
	}
}

// resumePath is resumes/<unix-millis>-<random hex>.<ext>.
func (s *uploadService) resumePath(filename, mimeType string) string {
	ext, ok := extensions[mimeType]
	if !ok {
		ext = strings.ToLower(filepath.Ext(filename))
	}
	return fmt.Sprintf("resumes/%d-%s%s", s.now().UnixMilli(), generateSecureRandomString(8), ext)
}

// sniff detects the type from the head of r and returns a reader that still yields the full content.
func sniff(r io.Reader) (string, io.Reader, error) {
	if r == nil {
		return "", nil, fmt.Errorf("no content")
	}
	head := make([]byte, 3072)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", nil, err
	}
	head = head[:n]

	mt := mimetype.Detect(head)
	return baseMIME(mt.String()), io.MultiReader(bytes.NewReader(head), r), nil
}

func baseMIME(contentType string) string {
	mt := strings.TrimSpace(strings.ToLower(contentType))
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return mt
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func generateSecureRandomString(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
