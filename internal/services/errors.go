package services

import (
	"errors"

	"vagaspg_backend/internal/repositories"
	"vagaspg_backend/pkg/apperrors"
)

// handleRepoError maps repository sentinels onto the AppError taxonomy.
// Errors that already are AppErrors pass through unchanged.
func handleRepoError(err error, domain string) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, repositories.ErrCompanyNotFound),
		errors.Is(err, repositories.ErrJobNotFound),
		errors.Is(err, repositories.ErrApplicationNotFound),
		errors.Is(err, repositories.ErrPaymentNotFound),
		errors.Is(err, repositories.ErrProfileNotFound):
		return apperrors.ErrNotFound(err, domain)
	case errors.Is(err, repositories.ErrProfileAlreadyExists):
		return apperrors.ErrConflict(err, "auth", "Email already in use")
	default:
		return apperrors.DatabaseError(err)
	}
}

func forbidden() error {
	return apperrors.NewForbiddenError("You cannot act on this record")
}

func requireAuth(ok bool) error {
	if !ok {
		return apperrors.NewUnauthorizedError("Sign in to continue")
	}
	return nil
}
