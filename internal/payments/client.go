package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"vagaspg_backend/internal/logger"
	"vagaspg_backend/pkg/apperrors"
	"vagaspg_backend/pkg/httpclient"
)

// Item is one line of a checkout preference.
type Item struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	CurrencyID  string  `json:"currency_id,omitempty"`
	Description string  `json:"description,omitempty"`
}

type PreferenceRequest struct {
	Items             []Item `json:"items"`
	ExternalReference string `json:"external_reference"`
	NotificationURL   string `json:"notification_url,omitempty"`
}

type Preference struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
	// Raw is the processor reply as received.
	Raw json.RawMessage `json:"-"`
}

// Client talks to a Mercado Pago style checkout API.
type Client struct {
	baseURL         string
	accessToken     string
	notificationURL string
	http            *httpclient.HttpClient
}

func NewClient(baseURL, accessToken, notificationURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:         strings.TrimRight(baseURL, "/"),
		accessToken:     accessToken,
		notificationURL: notificationURL,
		http:            httpclient.NewHttpClient(timeout),
	}
}

// CreatePreference registers a checkout and returns its id and redirect URL.
func (c *Client) CreatePreference(ctx context.Context, reference string, items []Item) (*Preference, error) {
	if c.accessToken == "" {
		return nil, apperrors.ErrExternalService(nil, "payment", "Payments are not configured")
	}

	body, err := json.Marshal(PreferenceRequest{
		Items:             items,
		ExternalReference: reference,
		NotificationURL:   c.notificationURL,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	headers := map[string]string{"Authorization": "Bearer " + c.accessToken}

	start := time.Now()
	var raw json.RawMessage
	err = c.http.PostJSON(ctx, fmt.Sprintf("%s/checkout/preferences", c.baseURL), headers, bytes.NewReader(body), &raw)
	logger.ExternalCallLog("payments", "create_preference", time.Since(start), err)
	if err != nil {
		return nil, apperrors.ErrExternalService(err, "payment", "Could not reach the payment processor")
	}

	var pref Preference
	if err := json.Unmarshal(raw, &pref); err != nil || pref.ID == "" {
		return nil, apperrors.ErrExternalService(err, "payment", "Payment processor returned an unexpected reply")
	}
	pref.Raw = raw
	return &pref, nil
}
