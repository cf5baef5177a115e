package services

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"vagaspg_backend/internal/models"
	"vagaspg_backend/internal/repositories"
	"vagaspg_backend/internal/services/dto"
	"vagaspg_backend/internal/testutil"
	"vagaspg_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	pdfMIME  = "application/pdf"
	docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mib      = 1024 * 1024
)

func resumeOf(name, contentType string, size int64) *dto.ResumeUpload {
	return &dto.ResumeUpload{
		Filename:    name,
		ContentType: contentType,
		Size:        size,
		Content:     bytes.NewReader([]byte("%PDF-1.4 resume")),
	}
}

func assertHTTPCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	assert.Equal(t, code, appErr.HTTPCode, appErr.Message)
}

func TestUploadService_ValidateResume(t *testing.T) {
	svc := NewUploadService(testutil.NewMemoryStorage(), nil, nil)

	_, err := svc.ValidateResume(resumeOf("cv.pdf", pdfMIME, 11*mib))
	assertHTTPCode(t, err, http.StatusRequestEntityTooLarge)

	_, err = svc.ValidateResume(resumeOf("cv.txt", "text/plain", 5*mib))
	assertHTTPCode(t, err, http.StatusUnsupportedMediaType)

	mimeType, err := svc.ValidateResume(resumeOf("cv.docx", docxMIME, 2*mib))
	require.NoError(t, err)
	assert.Equal(t, docxMIME, mimeType)

	mimeType, err = svc.ValidateResume(resumeOf("cv.pdf", "application/pdf; charset=binary", 10*mib))
	require.NoError(t, err, "exactly the limit is accepted")
	assert.Equal(t, pdfMIME, mimeType)
}

func TestUploadService_ValidateResume_SniffsUnknownType(t *testing.T) {
	svc := NewUploadService(testutil.NewMemoryStorage(), nil, nil)

	resume := &dto.ResumeUpload{
		Filename: "curriculo",
		Size:     20,
		Content:  strings.NewReader("%PDF-1.4\n%âãÏÓ\n1 0 obj"),
	}
	mimeType, err := svc.ValidateResume(resume)
	require.NoError(t, err)
	assert.Equal(t, pdfMIME, mimeType)
}

func TestUploadService_StoreResume(t *testing.T) {
	store := testutil.NewMemoryStorage()
	svc := NewUploadService(store, nil, nil)

	path, url, err := svc.StoreResume(context.Background(), resumeOf("Meu CV.pdf", pdfMIME, 15), pdfMIME)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "resumes/"))
	assert.True(t, strings.HasSuffix(path, ".pdf"))
	assert.NotContains(t, path, "Meu CV")
	assert.Equal(t, "/files/"+path, url)
	assert.True(t, store.Has(path))

	store.SaveErr = errors.New("bucket unavailable")
	_, _, err = svc.StoreResume(context.Background(), resumeOf("cv.pdf", pdfMIME, 15), pdfMIME)
	assertHTTPCode(t, err, http.StatusBadGateway)
}

func TestUploadService_DiscardRecordsOrphans(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := testutil.NewMemoryStorage()
	svc := NewUploadService(store, repositories.NewOrphanedFileRepository(), nil)

	store.Put("resumes/a.pdf", []byte("a"))
	svc.Discard(context.Background(), db, "resumes/a.pdf", "")
	assert.False(t, store.Has("resumes/a.pdf"))
	assert.Equal(t, 1, store.Deletes, "empty paths are skipped")
	assert.Equal(t, int64(0), testutil.Count(t, db, &models.OrphanedFile{}))

	store.DeleteErr = errors.New("timeout")
	svc.Discard(context.Background(), db, "resumes/b.pdf")

	var orphans []models.OrphanedFile
	require.NoError(t, db.Find(&orphans).Error)
	require.Len(t, orphans, 1)
	assert.Equal(t, "resumes/b.pdf", orphans[0].Path)
	assert.Equal(t, "timeout", orphans[0].LastError)
}
