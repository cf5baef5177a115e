package services

import (
	"context"

	"vagaspg_backend/internal/registry"
	"vagaspg_backend/internal/repositories"
	"vagaspg_backend/internal/services/dto"
	"vagaspg_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// RegistryService backs the sign-up form's registration number check.
type RegistryService interface {
	Lookup(ctx context.Context, db *gorm.DB, number string) (*dto.RegistryLookupResponse, error)
}

type registryService struct {
	lookup      CompanyLookup
	companyRepo repositories.CompanyRepository
}

func NewRegistryService(lookup CompanyLookup, companyRepo repositories.CompanyRepository) RegistryService {
	return &registryService{lookup: lookup, companyRepo: companyRepo}
}

func (s *registryService) Lookup(ctx context.Context, db *gorm.DB, number string) (*dto.RegistryLookupResponse, error) {
	found, err := s.lookup.Lookup(ctx, number)
	if err != nil {
		return nil, err
	}

	resp := &dto.RegistryLookupResponse{
		Number:    found.Number,
		LegalName: found.LegalName,
		TradeName: found.TradeName,
		Address:   found.Address,
		City:      found.City,
		State:     found.State,
		Active:    found.Active,
	}

	_, err = s.companyRepo.FindByRegistrationNumber(db, registry.Digits(found.Number))
	switch {
	case err == nil:
		resp.AlreadyRegistered = true
	case !apperrors.Is(err, repositories.ErrCompanyNotFound):
		return nil, apperrors.DatabaseError(err)
	}
	return resp, nil
}
