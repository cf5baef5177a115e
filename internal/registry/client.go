package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"vagaspg_backend/internal/logger"
	"vagaspg_backend/pkg/apperrors"
	"vagaspg_backend/pkg/httpclient"
)

// Company is the subset of the registry record the signup form needs.
type Company struct {
	Number    string `json:"number"`
	LegalName string `json:"legal_name"`
	TradeName string `json:"trade_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Active    bool   `json:"active"`
}

// cnpjResponse mirrors the BrasilAPI /cnpj/v1 payload.
type cnpjResponse struct {
	CNPJ              string `json:"cnpj"`
	RazaoSocial       string `json:"razao_social"`
	NomeFantasia      string `json:"nome_fantasia"`
	DescricaoSituacao string `json:"descricao_situacao_cadastral"`
	Logradouro        string `json:"logradouro"`
	Numero            string `json:"numero"`
	Bairro            string `json:"bairro"`
	Municipio         string `json:"municipio"`
	UF                string `json:"uf"`
}

const activeStatus = "ATIVA"

type Client struct {
	baseURL string
	http    *httpclient.HttpClient
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpclient.NewHttpClient(timeout),
	}
}

// Digits strips everything but 0-9.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Lookup fetches a company registration by its 14-digit number.
func (c *Client) Lookup(ctx context.Context, number string) (*Company, error) {
	digits := Digits(number)
	if len(digits) != 14 {
		return nil, apperrors.FieldError("registration_number", "must have 14 digits")
	}

	start := time.Now()
	var out cnpjResponse
	err := c.http.GetJSON(ctx, fmt.Sprintf("%s/cnpj/v1/%s", c.baseURL, digits), nil, &out)
	logger.ExternalCallLog("registry", "lookup", time.Since(start), err)
	if err != nil {
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, apperrors.ErrNotFound(err, "registry")
		}
		return nil, apperrors.ErrExternalService(err, "registry", "Could not reach the company registry")
	}

	company := &Company{
		Number:    digits,
		LegalName: strings.TrimSpace(out.RazaoSocial),
		TradeName: strings.TrimSpace(out.NomeFantasia),
		Address:   joinAddress(out.Logradouro, out.Numero, out.Bairro),
		City:      strings.TrimSpace(out.Municipio),
		State:     strings.TrimSpace(out.UF),
		Active:    strings.EqualFold(strings.TrimSpace(out.DescricaoSituacao), activeStatus),
	}
	if !company.Active {
		return nil, apperrors.FieldError("registration_number", "company not active")
	}
	return company, nil
}

func joinAddress(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
