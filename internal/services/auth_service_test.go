package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"vagaspg_backend/internal/auth"
	"vagaspg_backend/internal/models"
	"vagaspg_backend/internal/registry"
	"vagaspg_backend/internal/repositories"
	"vagaspg_backend/internal/services/dto"
	"vagaspg_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeLookup struct {
	company *registry.Company
	err     error
	calls   int
}

func (f *fakeLookup) Lookup(ctx context.Context, number string) (*registry.Company, error) {
	f.calls++
	return f.company, f.err
}

func newAuthService(t *testing.T, lookup CompanyLookup) (*gorm.DB, AuthService) {
	t.Helper()

	db := testutil.NewTestDB(t)
	svc := NewAuthService(
		repositories.NewProfileRepository(),
		repositories.NewCompanyRepository(),
		repositories.NewRefreshTokenRepository(),
		auth.NewTokenManager("test-secret", time.Hour),
		24*time.Hour,
		lookup,
	)
	return db, svc
}

func TestAuthService_SignUpCreatesActiveCompany(t *testing.T) {
	db, svc := newAuthService(t, nil)

	resp, err := svc.SignUp(context.Background(), db, &dto.SignUpRequest{
		Email:       " RH@Padaria.com ",
		Password:    "segredo1",
		CompanyName: "Padaria Central",
		City:        "Ponta Grossa",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, "rh@padaria.com", resp.Profile.Email)
	assert.Equal(t, models.ProfileRoleCompany, resp.Profile.Role)
	require.NotNil(t, resp.Company)
	assert.Equal(t, models.CompanyStatusActive, resp.Company.Status)
	assert.Equal(t, resp.Company.ID, resp.Profile.CompanyID)

	session, err := svc.ParseSession(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.Company.ID, session.CompanyID())
	assert.True(t, session.OwnsCompany(resp.Company.ID))

	_, err = svc.SignUp(context.Background(), db, &dto.SignUpRequest{Email: "rh@padaria.com", Password: "segredo1", CompanyName: "Outra"})
	assertHTTPCode(t, err, http.StatusConflict)
}

func TestAuthService_SignUpRejectsWeakPassword(t *testing.T) {
	db, svc := newAuthService(t, nil)

	_, err := svc.SignUp(context.Background(), db, &dto.SignUpRequest{Email: "a@b.com", Password: "123", CompanyName: "X"})
	assertHTTPCode(t, err, http.StatusBadRequest)
	assert.Equal(t, int64(0), testutil.Count(t, db, &models.Profile{}))
}

func TestAuthService_SignUpEnrichesFromRegistry(t *testing.T) {
	lookup := &fakeLookup{company: &registry.Company{
		Number:    "11222333000181",
		LegalName: "Padaria Central LTDA",
		TradeName: "Padaria Central",
		Address:   "Rua XV, 100, Centro",
		City:      "Ponta Grossa",
		Active:    true,
	}}
	db, svc := newAuthService(t, lookup)

	resp, err := svc.SignUp(context.Background(), db, &dto.SignUpRequest{
		Email:              "rh@padaria.com",
		Password:           "segredo1",
		RegistrationNumber: "11.222.333/0001-81",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, lookup.calls)
	assert.Equal(t, "Padaria Central", resp.Company.Name)
	assert.Equal(t, "Ponta Grossa", resp.Company.City)
	assert.Equal(t, "11222333000181", resp.Company.RegistrationNumber)
}

func TestAuthService_RegistryFailureDoesNotBlockSignUp(t *testing.T) {
	db, svc := newAuthService(t, &fakeLookup{err: errors.New("timeout")})

	resp, err := svc.SignUp(context.Background(), db, &dto.SignUpRequest{
		Email:              "rh@padaria.com",
		Password:           "segredo1",
		CompanyName:        "Padaria Central",
		RegistrationNumber: "11222333000181",
	})
	require.NoError(t, err)
	assert.Equal(t, "Padaria Central", resp.Company.Name)
}

func TestAuthService_SignInAndRefresh(t *testing.T) {
	db, svc := newAuthService(t, nil)
	_, err := svc.SignUp(context.Background(), db, &dto.SignUpRequest{Email: "rh@padaria.com", Password: "segredo1", CompanyName: "Padaria"})
	require.NoError(t, err)

	_, err = svc.SignIn(context.Background(), db, &dto.SignInRequest{Email: "rh@padaria.com", Password: "errada"})
	assertHTTPCode(t, err, http.StatusUnauthorized)

	_, err = svc.SignIn(context.Background(), db, &dto.SignInRequest{Email: "ninguem@padaria.com", Password: "segredo1"})
	assertHTTPCode(t, err, http.StatusUnauthorized)

	signedIn, err := svc.SignIn(context.Background(), db, &dto.SignInRequest{Email: "RH@padaria.com", Password: "segredo1"})
	require.NoError(t, err)
	require.NotNil(t, signedIn.Company)

	refreshed, err := svc.Refresh(context.Background(), db, signedIn.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, signedIn.RefreshToken, refreshed.RefreshToken)

	// The presented token is consumed.
	_, err = svc.Refresh(context.Background(), db, signedIn.RefreshToken)
	assertHTTPCode(t, err, http.StatusUnauthorized)
}

func TestAuthService_SignOutRevokesRefreshTokens(t *testing.T) {
	db, svc := newAuthService(t, nil)
	resp, err := svc.SignUp(context.Background(), db, &dto.SignUpRequest{Email: "rh@padaria.com", Password: "segredo1", CompanyName: "Padaria"})
	require.NoError(t, err)

	session, err := svc.ParseSession(resp.AccessToken)
	require.NoError(t, err)
	require.NoError(t, svc.SignOut(context.Background(), db, session))

	_, err = svc.Refresh(context.Background(), db, resp.RefreshToken)
	assertHTTPCode(t, err, http.StatusUnauthorized)

	err = svc.SignOut(context.Background(), db, auth.Anonymous())
	assertHTTPCode(t, err, http.StatusUnauthorized)
}

func TestAuthService_AdminHasNoCompany(t *testing.T) {
	db, svc := newAuthService(t, nil)
	testutil.CreateProfile(t, db, "admin@vagaspg.com", "segredo1", models.ProfileRoleAdmin)

	resp, err := svc.SignIn(context.Background(), db, &dto.SignInRequest{Email: "admin@vagaspg.com", Password: "segredo1"})
	require.NoError(t, err)
	assert.Nil(t, resp.Company)
	assert.Equal(t, models.ProfileRoleAdmin, resp.Profile.Role)

	session, err := svc.ParseSession(resp.AccessToken)
	require.NoError(t, err)
	assert.True(t, session.IsAdmin())

	_, err = svc.ParseSession("not-a-token")
	assertHTTPCode(t, err, http.StatusUnauthorized)
}
