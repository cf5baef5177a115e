package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

// SignatureHeader carries "ts=<unix seconds>,v1=<hex hmac-sha256>".
// The HMAC covers "<ts>.<raw body>" keyed with the webhook secret.
const SignatureHeader = "X-Signature"

// SignatureTolerance bounds how old a signed notification may be.
const SignatureTolerance = 5 * time.Minute

var (
	ErrWebhookNotConfigured = errors.New("webhook secret is not configured")
	ErrSignatureMissing     = errors.New("signature header is missing or malformed")
	ErrSignatureMismatch    = errors.New("signature does not match")
	ErrSignatureExpired     = errors.New("signature timestamp is outside the tolerance")
)

// Sign returns the header value for body at ts.
func Sign(secret string, ts time.Time, body []byte) string {
	unix := strconv.FormatInt(ts.Unix(), 10)
	return "ts=" + unix + ",v1=" + hex.EncodeToString(mac(secret, unix, body))
}

// VerifySignature checks header against body. An empty secret rejects everything.
func VerifySignature(secret, header string, body []byte, now time.Time) error {
	if secret == "" {
		return ErrWebhookNotConfigured
	}

	var ts, v1 string
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "ts":
			ts = v
		case "v1":
			v1 = v
		}
	}
	if ts == "" || v1 == "" {
		return ErrSignatureMissing
	}

	unix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return ErrSignatureMissing
	}
	if d := now.Sub(time.Unix(unix, 0)); d > SignatureTolerance || d < -SignatureTolerance {
		return ErrSignatureExpired
	}

	got, err := hex.DecodeString(v1)
	if err != nil {
		return ErrSignatureMismatch
	}
	if !hmac.Equal(got, mac(secret, ts, body)) {
		return ErrSignatureMismatch
	}
	return nil
}

func mac(secret, ts string, body []byte) []byte {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(ts))
	h.Write([]byte("."))
	h.Write(body)
	return h.Sum(nil)
}
