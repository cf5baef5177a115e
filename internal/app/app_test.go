package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vagaspg_backend/internal/config"
	"vagaspg_backend/internal/logger"
	"vagaspg_backend/internal/models"
	"vagaspg_backend/internal/payments"
	"vagaspg_backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testWebhookSecret = "whsec-test"

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	store  *testutil.MemoryStorage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.InitWithWriter("test", io.Discard)

	cfg := config.Default()
	cfg.JWT.Secret = "test-secret"
	cfg.Payments.WebhookSecret = testWebhookSecret
	db := testutil.NewTestDB(t)
	store := testutil.NewMemoryStorage()

	container := initializeServices(context.Background(), cfg, store)
	return &testServer{router: SetupRouter(cfg, db, container), db: db, store: store}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestProtectedRoutes(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/v1/admin/companies", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/v1/company/jobs", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/v1/jobs", "garbage", nil).Code)
}

func (s *testServer) webhook(t *testing.T, raw []byte, signature string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(payments.SignatureHeader, signature)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestPaymentWebhook_ForgedApprovalIsRejected(t *testing.T) {
	s := newTestServer(t)
	company := testutil.CreateCompany(t, s.db, "Padaria Central", "Ponta Grossa")
	job := testutil.CreateJob(t, s.db, company.ID, "Padeiro", models.JobStatusPaused)
	payment := &models.Payment{CompanyID: company.ID, JobID: &job.ID, Amount: 29.9, Currency: "BRL", Status: models.PaymentStatusPending}
	require.NoError(t, s.db.Create(payment).Error)

	raw := []byte(`{"external_id":"mp-9","external_reference":"` + payment.ID + `","status":"approved"}`)
	jobStatus := func() models.JobStatus {
		var stored models.Job
		require.NoError(t, s.db.First(&stored, "id = ?", job.ID).Error)
		return stored.Status
	}

	w := s.webhook(t, raw, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	w = s.webhook(t, raw, payments.Sign("guessed-secret", time.Now(), raw))
	assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	assert.Equal(t, models.JobStatusPaused, jobStatus())

	w = s.webhook(t, raw, payments.Sign(testWebhookSecret, time.Now(), raw))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.JobStatusActive, jobStatus())
}

func TestCompanyFlow(t *testing.T) {
	s := newTestServer(t)

	// Sign up
	w := s.do(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"email":        "rh@padaria.com",
		"password":     "segredo1",
		"company_name": "Padaria Central",
		"city":         "Ponta Grossa",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var signup struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, w, &signup)
	require.NotEmpty(t, signup.AccessToken)

	// A company cannot reach admin routes.
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/v1/admin/companies", signup.AccessToken, nil).Code)

	// Post a job
	w = s.do(t, http.MethodPost, "/api/v1/company/jobs", signup.AccessToken, map[string]interface{}{
		"title":         "Padeiro",
		"description":   "Turno da manhã",
		"contract_type": "CLT",
		"benefits":      []string{"VT"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var job struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decode(t, w, &job)
	assert.Equal(t, "active", job.Status)

	// It shows up on the public board.
	w = s.do(t, http.MethodGet, "/api/v1/jobs?q=padeiro", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var board struct {
		Total int `json:"total"`
	}
	decode(t, w, &board)
	assert.Equal(t, 1, board.Total)

	// A candidate applies with a resume.
	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	require.NoError(t, mw.WriteField("candidate_name", "Maria Oliveira"))
	require.NoError(t, mw.WriteField("candidate_email", "maria@email.com"))
	require.NoError(t, mw.WriteField("candidate_phone", "(42) 99999-1234"))
	require.NoError(t, mw.WriteField("skills", "Atendimento, caixa"))
	part, err := mw.CreateFormFile("resume", "curriculo.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/"+job.ID+"/applications", &form)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var application struct {
		Status    string `json:"status"`
		ResumeURL string `json:"resume_url"`
	}
	decode(t, w, &application)
	assert.Equal(t, "new", application.Status)
	assert.Contains(t, application.ResumeURL, "/files/resumes/")
	assert.Equal(t, 1, s.store.Len())

	// The company sees it on the dashboard.
	w = s.do(t, http.MethodGet, "/api/v1/company/applications", signup.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var inbox struct {
		Total        int `json:"total"`
		Applications []struct {
			CandidateName string `json:"candidate_name"`
		} `json:"applications"`
	}
	decode(t, w, &inbox)
	require.Equal(t, 1, inbox.Total)
	assert.Equal(t, "Maria Oliveira", inbox.Applications[0].CandidateName)
}

func TestSeedFirstAdmin(t *testing.T) {
	cfg := config.Default()
	db := testutil.NewTestDB(t)

	// Missing credentials skip seeding.
	require.NoError(t, seedFirstAdmin(db, cfg))
	assert.Equal(t, int64(0), testutil.Count(t, db, &models.Profile{}))

	cfg.Admin.Email = "admin@vagaspg.com"
	cfg.Admin.Password = "segredo1"
	require.NoError(t, seedFirstAdmin(db, cfg))
	require.NoError(t, seedFirstAdmin(db, cfg))

	assert.Equal(t, int64(1), testutil.Count(t, db, &models.Profile{}))
	var system models.Company
	require.NoError(t, db.Where("is_system = ?", true).First(&system).Error)
	assert.Equal(t, SystemCompanyName, system.Name)
	assert.Equal(t, models.CompanyStatusActive, system.Status)
}
