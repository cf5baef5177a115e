package services

import (
	"context"
	"strings"
	"time"

	"vagaspg_backend/internal/auth"
	"vagaspg_backend/internal/logger"
	"vagaspg_backend/internal/models"
	"vagaspg_backend/internal/registry"
	"vagaspg_backend/internal/repositories"
	"vagaspg_backend/internal/services/dto"
	"vagaspg_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// CompanyLookup resolves a company registration number.
type CompanyLookup interface {
	Lookup(ctx context.Context, number string) (*registry.Company, error)
}

// AuthService owns every session state change: sign-up, sign-in, refresh, sign-out.
type AuthService interface {
	SignUp(ctx context.Context, db *gorm.DB, req *dto.SignUpRequest) (*dto.AuthResponse, error)
	SignIn(ctx context.Context, db *gorm.DB, req *dto.SignInRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, db *gorm.DB, refreshToken string) (*dto.AuthResponse, error)
	SignOut(ctx context.Context, db *gorm.DB, session *auth.Session) error
	Me(ctx context.Context, db *gorm.DB, session *auth.Session) (*dto.MeResponse, error)
	// ParseSession turns a bearer token into a session.
	ParseSession(token string) (*auth.Session, error)
}

type authService struct {
	profileRepo      repositories.ProfileRepository
	companyRepo      repositories.CompanyRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	tokens           *auth.TokenManager
	refreshTTL       time.Duration
	lookup           CompanyLookup
}

func NewAuthService(
	profileRepo repositories.ProfileRepository,
	companyRepo repositories.CompanyRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	tokens *auth.TokenManager,
	refreshTTL time.Duration,
	lookup CompanyLookup,
) AuthService {
	return &authService{
		profileRepo:      profileRepo,
		companyRepo:      companyRepo,
		refreshTokenRepo: refreshTokenRepo,
		tokens:           tokens,
		refreshTTL:       refreshTTL,
		lookup:           lookup,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates a company profile and its active company in one transaction.
func (s *authService) SignUp(ctx context.Context, db *gorm.DB, req *dto.SignUpRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	email := normalizeEmail(req.Email)
	exists, err := s.profileRepo.ExistsByEmail(db, email)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	company := &models.Company{
		Name:   strings.TrimSpace(req.CompanyName),
		Email:  email,
		Phone:  strings.TrimSpace(req.Phone),
		City:   strings.TrimSpace(req.City),
		Status: models.CompanyStatusActive,
	}
	if req.RegistrationNumber != "" {
		company.RegistrationNumber = registry.Digits(req.RegistrationNumber)
		s.enrichFromRegistry(ctx, company)
	}
	if company.Name == "" {
		return nil, apperrors.FieldError("company_name", "is required")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	profile := &models.Profile{
		Email:        email,
		PasswordHash: hash,
		Role:         models.ProfileRoleCompany,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.profileRepo.Create(tx, profile); err != nil {
			return err
		}
		company.OwnerID = profile.ID
		return s.companyRepo.Create(tx, company)
	})
	if err != nil {
		return nil, handleRepoError(err, "auth")
	}

	logger.CtxInfo(ctx, "Company signed up", "profile_id", profile.ID, "company_id", company.ID)

	return s.issueTokens(db, profile, company)
}

// enrichFromRegistry fills blanks from the registry. Lookup failures never block sign-up.
func (s *authService) enrichFromRegistry(ctx context.Context, company *models.Company) {
	if s.lookup == nil {
		return
	}

	found, err := s.lookup.Lookup(ctx, company.RegistrationNumber)
	if err != nil {
		logger.CtxWarn(ctx, "Registry lookup failed during sign-up, continuing",
			"registration_number", company.RegistrationNumber,
			"error", err.Error(),
		)
		return
	}

	if company.Name == "" {
		company.Name = found.TradeName
		if company.Name == "" {
			company.Name = found.LegalName
		}
	}
	if company.Address == "" {
		company.Address = found.Address
	}
	if company.City == "" {
		company.City = found.City
	}
}

func (s *authService) SignIn(ctx context.Context, db *gorm.DB, req *dto.SignInRequest) (*dto.AuthResponse, error) {
	profile, err := s.profileRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.Password, profile.PasswordHash) {
		logger.CtxWarn(ctx, "Sign-in rejected", "email", profile.Email)
		return nil, apperrors.ErrInvalidCredentials
	}

	company, err := s.companyOf(db, profile)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(db, profile, company)
}

// Refresh rotates the refresh token: the presented one is consumed.
func (s *authService) Refresh(ctx context.Context, db *gorm.DB, refreshToken string) (*dto.AuthResponse, error) {
	var resp *dto.AuthResponse

	err := db.Transaction(func(tx *gorm.DB) error {
		token, err := s.refreshTokenRepo.FindValid(tx, refreshToken)
		if err != nil {
			if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
				return apperrors.ErrInvalidToken
			}
			return err
		}

		profile, err := s.profileRepo.FindByID(tx, token.ProfileID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrProfileNotFound) {
				return apperrors.ErrInvalidToken
			}
			return err
		}

		if err := s.refreshTokenRepo.DeleteByToken(tx, refreshToken); err != nil {
			return err
		}

		company, err := s.companyOf(tx, profile)
		if err != nil {
			return err
		}

		resp, err = s.issueTokens(tx, profile, company)
		return err
	})
	if err != nil {
		return nil, handleRepoError(err, "auth")
	}
	return resp, nil
}

// SignOut revokes every refresh token of the caller.
func (s *authService) SignOut(ctx context.Context, db *gorm.DB, session *auth.Session) error {
	if err := requireAuth(session.IsAuthenticated()); err != nil {
		return err
	}
	if err := s.refreshTokenRepo.DeleteByProfileID(db, session.ProfileID()); err != nil {
		return apperrors.DatabaseError(err)
	}
	logger.CtxInfo(ctx, "Signed out", "profile_id", session.ProfileID())
	return nil
}

func (s *authService) Me(ctx context.Context, db *gorm.DB, session *auth.Session) (*dto.MeResponse, error) {
	if err := requireAuth(session.IsAuthenticated()); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindByID(db, session.ProfileID())
	if err != nil {
		return nil, handleRepoError(err, "profile")
	}

	company, err := s.companyOf(db, profile)
	if err != nil {
		return nil, err
	}

	return &dto.MeResponse{
		Profile: toProfileResponse(profile, company),
		Company: company,
	}, nil
}

func (s *authService) ParseSession(token string) (*auth.Session, error) {
	session, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	return session, nil
}

// companyOf returns the company owned by a company profile, nil for admins.
func (s *authService) companyOf(db *gorm.DB, profile *models.Profile) (*models.Company, error) {
	if profile.Role != models.ProfileRoleCompany {
		return nil, nil
	}
	company, err := s.companyRepo.FindByOwnerID(db, profile.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, nil
		}
		return nil, apperrors.DatabaseError(err)
	}
	return company, nil
}

func (s *authService) issueTokens(db *gorm.DB, profile *models.Profile, company *models.Company) (*dto.AuthResponse, error) {
	companyID := ""
	if company != nil {
		companyID = company.ID
	}
	session := auth.NewSession(profile.ID, profile.Email, profile.Role, companyID)

	accessToken, err := s.tokens.GenerateToken(session)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := auth.NewRefreshToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.refreshTokenRepo.Create(db, &models.RefreshToken{
		ProfileID: profile.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.tokens.TTL().Seconds()),
		Profile:      toProfileResponse(profile, company),
		Company:      company,
	}, nil
}

func toProfileResponse(profile *models.Profile, company *models.Company) dto.ProfileResponse {
	resp := dto.ProfileResponse{
		ID:    profile.ID,
		Email: profile.Email,
		Role:  profile.Role,
	}
	if company != nil {
		resp.CompanyID = company.ID
	}
	return resp
}
