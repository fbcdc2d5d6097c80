package repositories

import (
	"context"

	"github.com/SscSPs/adops_erp/internal/core/domain"
)

// AccountReader defines read operations over a company's chart of accounts.
type AccountReader interface {
	// FindAccountByID returns apperrors.ErrNotFound when the account does not belong to the company.
	FindAccountByID(ctx context.Context, companyID int64, accountID string) (*domain.Account, error)

	// FindAccountByCode looks an account up by its chart code.
	FindAccountByCode(ctx context.Context, companyID int64, code string) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
}
