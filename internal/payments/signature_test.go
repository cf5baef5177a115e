package payments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySignature(t *testing.T) {
	now := time.Unix(1760000000, 0)
	body := []byte(`{"external_reference":"pay-1","status":"approved"}`)
	header := Sign("whsec", now, body)

	require.NoError(t, VerifySignature("whsec", header, body, now))
	require.NoError(t, VerifySignature("whsec", header, body, now.Add(time.Minute)))

	tests := []struct {
		name   string
		secret string
		header string
		body   []byte
		want   error
	}{
		{"no secret configured", "", header, body, ErrWebhookNotConfigured},
		{"no header", "whsec", "", body, ErrSignatureMissing},
		{"no digest", "whsec", "ts=1760000000", body, ErrSignatureMissing},
		{"bad timestamp", "whsec", "ts=abc,v1=00", body, ErrSignatureMissing},
		{"wrong secret", "other", header, body, ErrSignatureMismatch},
		{"tampered body", "whsec", header, []byte(`{"external_reference":"pay-2","status":"approved"}`), ErrSignatureMismatch},
		{"not hex", "whsec", "ts=1760000000,v1=zz", body, ErrSignatureMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, VerifySignature(tt.secret, tt.header, tt.body, now), tt.want)
		})
	}

	assert.ErrorIs(t, VerifySignature("whsec", header, body, now.Add(10*time.Minute)), ErrSignatureExpired)
}
