package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vagaspg_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCode(t *testing.T, err error, code int) {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.HTTPCode)
}

func TestCreatePreference(t *testing.T) {
	var (
		gotAuth string
		gotPath string
		gotBody PreferenceRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"pref-1","init_point":"https://pay.example/pref-1"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok", "https://api.example/webhooks/payments", time.Second)
	pref, err := client.CreatePreference(context.Background(), "pay-1", []Item{{Title: "Vaga", Quantity: 1, UnitPrice: 29.9, CurrencyID: "BRL"}})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "/checkout/preferences", gotPath)
	assert.Equal(t, "pay-1", gotBody.ExternalReference)
	assert.Equal(t, "https://api.example/webhooks/payments", gotBody.NotificationURL)
	require.Len(t, gotBody.Items, 1)

	assert.Equal(t, "pref-1", pref.ID)
	assert.Equal(t, "https://pay.example/pref-1", pref.InitPoint)
	assert.JSONEq(t, `{"id":"pref-1","init_point":"https://pay.example/pref-1"}`, string(pref.Raw))
}

func TestCreatePreference_Failures(t *testing.T) {
	_, err := NewClient("http://127.0.0.1:0", "", "", time.Second).CreatePreference(context.Background(), "pay-1", nil)
	assertCode(t, err, http.StatusBadGateway)

	noID := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"init_point":"x"}`))
	}))
	defer noID.Close()
	_, err = NewClient(noID.URL, "tok", "", time.Second).CreatePreference(context.Background(), "pay-1", nil)
	assertCode(t, err, http.StatusBadGateway)

	rejected := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer rejected.Close()
	_, err = NewClient(rejected.URL, "bad", "", time.Second).CreatePreference(context.Background(), "pay-1", nil)
	assertCode(t, err, http.StatusBadGateway)
}
