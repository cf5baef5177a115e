package auth

import (
	"testing"
	"time"

	"vagaspg_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, err := m.GenerateToken(NewSession("p-1", "rh@padaria.com", models.ProfileRoleCompany, "c-1"))
	require.NoError(t, err)

	session, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "p-1", session.ProfileID())
	assert.Equal(t, "rh@padaria.com", session.Email())
	assert.Equal(t, models.ProfileRoleCompany, session.Role())
	assert.Equal(t, "c-1", session.CompanyID())
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	token, err := m.GenerateToken(NewSession("p-1", "a@b.com", models.ProfileRoleAdmin, ""))
	require.NoError(t, err)

	_, err = NewTokenManager("other", time.Hour).ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewTokenManager("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.GenerateToken(NewSession("p-1", "a@b.com", models.ProfileRoleAdmin, ""))
	require.NoError(t, err)
	_, err = m.ParseToken(old)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ParseToken("abc.def.ghi")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSession(t *testing.T) {
	anon := Anonymous()
	assert.False(t, anon.IsAuthenticated())
	assert.False(t, anon.Can(PermJobsWriteOwn))
	assert.False(t, anon.OwnsCompany(""))

	company := NewSession("p-1", "rh@padaria.com", models.ProfileRoleCompany, "c-1")
	assert.True(t, company.OwnsCompany("c-1"))
	assert.False(t, company.OwnsCompany("c-2"))
	assert.True(t, company.CanManageCompanyRecords("c-1"))
	assert.False(t, company.CanManageCompanyRecords("c-2"))
	assert.True(t, company.Can(PermPaymentsCheckout))
	assert.False(t, company.Can(PermCompaniesManage))

	admin := NewSession("p-2", "admin@vagaspg.com", models.ProfileRoleAdmin, "")
	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.OwnsCompany("c-1"), "admins act through permissions, not ownership")
	assert.True(t, admin.CanManageCompanyRecords("c-1"))
	assert.True(t, admin.Can(PermCompaniesManage))
}

func TestPasswords(t *testing.T) {
	assert.ErrorIs(t, ValidatePassword("12345"), ErrWeakPassword)
	assert.NoError(t, ValidatePassword("123456"))

	hash, err := HashPassword("segredo1")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("segredo1", hash))
	assert.False(t, CheckPasswordHash("segredo2", hash))

	a, err := NewRefreshToken()
	require.NoError(t, err)
	b, err := NewRefreshToken()
	require.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
