package repositories

import (
	"context"

	"github.com/SscSPs/adops_erp/internal/core/domain"
)

// AuxiliaryReader defines read operations for subledger records.
type AuxiliaryReader interface {
	// FindAuxiliaryByTypeCode finds an auxiliary by its (type, code) pair within the company.
	FindAuxiliaryByTypeCode(ctx context.Context, companyID int64, auxType, code string) (*domain.Auxiliary, error)

	// FindAuxiliaryByAccountCode finds an auxiliary attached to the account with the given chart code.
	FindAuxiliaryByAccountCode(ctx context.Context, companyID int64, accountCode, code string) (*domain.Auxiliary, error)
}

// AuxiliaryWriter defines write operations for subledger records.
type AuxiliaryWriter interface {
	// SaveAuxiliary inserts a new auxiliary. A clash on (company, type, code)
	// returns apperrors.ErrDuplicate.
	SaveAuxiliary(ctx context.Context, aux domain.Auxiliary) error
}

// AuxiliaryRepositoryFacade combines all auxiliary-related repository interfaces.
type AuxiliaryRepositoryFacade interface {
	AuxiliaryReader
	AuxiliaryWriter
}
