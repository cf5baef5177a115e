package services

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"testing"

	"vagaspg_backend/internal/assistant"
	"vagaspg_backend/internal/auth"
	"vagaspg_backend/internal/imageprocessor"
	"vagaspg_backend/internal/models"
	"vagaspg_backend/internal/repositories"
	"vagaspg_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobAssistant struct {
	imageMIME string
	imageSize int
	resume    string
	brief     assistant.JobBrief
}

func (f *fakeJobAssistant) ExtractFromText(ctx context.Context, text string) (*assistant.JobDraft, error) {
	return &assistant.JobDraft{Title: "Padeiro", Description: text}, nil
}

func (f *fakeJobAssistant) ExtractFromImage(ctx context.Context, mimeType string, data []byte) (*assistant.JobDraft, error) {
	f.imageMIME = mimeType
	f.imageSize = len(data)
	return &assistant.JobDraft{Title: "Balconista"}, nil
}

func (f *fakeJobAssistant) ImproveResume(ctx context.Context, resumeText string) (string, error) {
	f.resume = resumeText
	return "improved", nil
}

func (f *fakeJobAssistant) InterviewTips(ctx context.Context, job assistant.JobBrief) (string, error) {
	f.brief = job
	return "tips", nil
}

func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestAssistantService_ExtractRequiresCompanyOrAdmin(t *testing.T) {
	fake := &fakeJobAssistant{}
	svc := NewAssistantService(fake, repositories.NewJobRepository(), nil)
	company := auth.NewSession("p-1", "rh@padaria.com", models.ProfileRoleCompany, "c-1")

	_, err := svc.ExtractFromText(context.Background(), auth.Anonymous(), "Vaga de padeiro")
	assertHTTPCode(t, err, http.StatusForbidden)

	draft, err := svc.ExtractFromText(context.Background(), company, "Vaga de padeiro")
	require.NoError(t, err)
	assert.Equal(t, "Padeiro", draft.Title)

	draft, err = svc.ExtractFromText(context.Background(), testutil.AdminSession("admin-1"), "Vaga")
	require.NoError(t, err)
	assert.NotNil(t, draft)
}

func TestAssistantService_ExtractFromImage(t *testing.T) {
	fake := &fakeJobAssistant{}
	svc := NewAssistantService(fake, repositories.NewJobRepository(), imageprocessor.NewProcessor(80, 100))
	company := auth.NewSession("p-1", "rh@padaria.com", models.ProfileRoleCompany, "c-1")

	_, err := svc.ExtractFromImage(context.Background(), company, nil)
	assertHTTPCode(t, err, http.StatusBadRequest)

	_, err = svc.ExtractFromImage(context.Background(), company, []byte("%PDF-1.4 not an image"))
	assertHTTPCode(t, err, http.StatusUnsupportedMediaType)

	_, err = svc.ExtractFromImage(context.Background(), company, make([]byte, MaxImageSize+1))
	assertHTTPCode(t, err, http.StatusRequestEntityTooLarge)

	// Oversized photos are shrunk to JPEG before they reach the model.
	_, err = svc.ExtractFromImage(context.Background(), company, pngImage(t, 400, 200))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", fake.imageMIME)

	small := pngImage(t, 50, 50)
	_, err = svc.ExtractFromImage(context.Background(), company, small)
	require.NoError(t, err)
	assert.Equal(t, "image/png", fake.imageMIME)
	assert.Equal(t, len(small), fake.imageSize)
}

func TestAssistantService_Unavailable(t *testing.T) {
	svc := NewAssistantService(nil, repositories.NewJobRepository(), nil)
	company := auth.NewSession("p-1", "rh@padaria.com", models.ProfileRoleCompany, "c-1")

	_, err := svc.ExtractFromText(context.Background(), company, "Vaga")
	assertHTTPCode(t, err, http.StatusBadGateway)

	_, err = svc.ImproveResume(context.Background(), "Experiência em atendimento", nil)
	assertHTTPCode(t, err, http.StatusBadGateway)
}

func TestAssistantService_ImproveResume(t *testing.T) {
	fake := &fakeJobAssistant{}
	svc := NewAssistantService(fake, repositories.NewJobRepository(), nil)

	_, err := svc.ImproveResume(context.Background(), "", nil)
	assertHTTPCode(t, err, http.StatusBadRequest)

	_, err = svc.ImproveResume(context.Background(), "", []byte("plain text, not a pdf"))
	assertHTTPCode(t, err, http.StatusUnsupportedMediaType)

	out, err := svc.ImproveResume(context.Background(), "Experiência em atendimento", nil)
	require.NoError(t, err)
	assert.Equal(t, "improved", out)
	assert.Equal(t, "Experiência em atendimento", fake.resume)
}

func TestAssistantService_InterviewTipsActiveJobsOnly(t *testing.T) {
	db := testutil.NewTestDB(t)
	fake := &fakeJobAssistant{}
	svc := NewAssistantService(fake, repositories.NewJobRepository(), nil)

	company := testutil.CreateCompany(t, db, "Padaria Central", "Ponta Grossa")
	active := testutil.CreateJob(t, db, company.ID, "Padeiro", models.JobStatusActive)
	closed := testutil.CreateJob(t, db, company.ID, "Confeiteiro", models.JobStatusClosed)

	tips, err := svc.InterviewTips(context.Background(), db, active.ID)
	require.NoError(t, err)
	assert.Equal(t, "tips", tips)
	assert.Equal(t, "Padeiro", fake.brief.Title)
	assert.Equal(t, "Padaria Central", fake.brief.Company)

	_, err = svc.InterviewTips(context.Background(), db, closed.ID)
	assertHTTPCode(t, err, http.StatusNotFound)

	_, err = svc.InterviewTips(context.Background(), db, "missing")
	assertHTTPCode(t, err, http.StatusNotFound)
}
