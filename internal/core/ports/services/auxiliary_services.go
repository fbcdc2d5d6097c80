package services

import (
	"context"

	"github.com/SscSPs/adops_erp/internal/core/domain"
	"github.com/SscSPs/adops_erp/internal/dto"
)

// AuxiliarySvc is the find-or-create contract for subledger records.
type AuxiliarySvc interface {
	// EnsureAuxiliary returns the auxiliary with (type, code) when it exists,
	// or creates one. It fails with NOT_FOUND when the account is not part of the company.
	EnsureAuxiliary(ctx context.Context, companyID int64, req dto.EnsureAuxiliaryRequest, userID string) (*domain.Auxiliary, error)
}

// AuxiliarySvcFacade combines all auxiliary-related service interfaces.
type AuxiliarySvcFacade interface {
	AuxiliarySvc
}
