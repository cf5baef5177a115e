package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vagaspg_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const activePayload = `{
	"cnpj": "11222333000181",
	"razao_social": "PADARIA CENTRAL LTDA",
	"nome_fantasia": "Padaria Central",
	"descricao_situacao_cadastral": "ATIVA",
	"logradouro": "RUA XV DE NOVEMBRO",
	"numero": "100",
	"bairro": "",
	"municipio": "PONTA GROSSA",
	"uf": "PR"
}`

func newRegistryServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &gotPath
}

func assertCode(t *testing.T, err error, code int) {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.HTTPCode)
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "11222333000181", Digits("11.222.333/0001-81"))
	assert.Equal(t, "", Digits("abc"))
}

func TestLookup_Active(t *testing.T) {
	srv, path := newRegistryServer(t, http.StatusOK, activePayload)
	client := NewClient(srv.URL+"/", time.Second)

	company, err := client.Lookup(context.Background(), "11.222.333/0001-81")
	require.NoError(t, err)

	assert.Equal(t, "/cnpj/v1/11222333000181", *path)
	assert.Equal(t, "11222333000181", company.Number)
	assert.Equal(t, "Padaria Central", company.TradeName)
	assert.Equal(t, "PADARIA CENTRAL LTDA", company.LegalName)
	assert.Equal(t, "RUA XV DE NOVEMBRO, 100", company.Address)
	assert.Equal(t, "PONTA GROSSA", company.City)
	assert.Equal(t, "PR", company.State)
	assert.True(t, company.Active)
}

func TestLookup_Inactive(t *testing.T) {
	srv, _ := newRegistryServer(t, http.StatusOK, `{"cnpj":"11222333000181","descricao_situacao_cadastral":"BAIXADA"}`)
	client := NewClient(srv.URL, time.Second)

	_, err := client.Lookup(context.Background(), "11222333000181")
	assertCode(t, err, http.StatusBadRequest)
}

func TestLookup_Errors(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", time.Second)
	_, err := client.Lookup(context.Background(), "1234")
	assertCode(t, err, http.StatusBadRequest)

	srv, _ := newRegistryServer(t, http.StatusNotFound, `{"message":"CNPJ não encontrado"}`)
	_, err = NewClient(srv.URL, time.Second).Lookup(context.Background(), "11222333000181")
	assertCode(t, err, http.StatusNotFound)

	down, _ := newRegistryServer(t, http.StatusServiceUnavailable, "")
	_, err = NewClient(down.URL, time.Second).Lookup(context.Background(), "11222333000181")
	assertCode(t, err, http.StatusBadGateway)
}
