package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"vagaspg_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the access token payload.
type Claims struct {
	ProfileID string             `json:"sub_id"`
	Email     string             `json:"email"`
	Role      models.ProfileRole `json:"role"`
	CompanyID string             `json:"company_id,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager signs and parses HS256 access tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

func (m *TokenManager) GenerateToken(s *Session) (string, error) {
	now := m.now()
	claims := Claims{
		ProfileID: s.ProfileID(),
		Email:     s.Email(),
		Role:      s.Role(),
		CompanyID: s.CompanyID(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.ProfileID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			Issuer:    "vagaspg",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// ParseToken validates signature and expiry and rebuilds the session.
func (m *TokenManager) ParseToken(tokenStr string) (*Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.Role.IsValid() || claims.ProfileID == "" {
		return nil, ErrInvalidToken
	}
	return NewSession(claims.ProfileID, claims.Email, claims.Role, claims.CompanyID), nil
}

// NewRefreshToken returns an opaque random token.
func NewRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
