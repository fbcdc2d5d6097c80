package pgsql

import (
	"context"

	"github.com/SscSPs/adops_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/adops_erp/internal/core/ports/repositories"
	"github.com/SscSPs/adops_erp/internal/models"
	"github.com/SscSPs/adops_erp/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, company_id, code, name, account_type, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for the chart of accounts.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// FindAccountByID retrieves an account scoped to its company.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, companyID int64, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 AND account_id = $2;`
	return r.findOne(ctx, "find account by id", query, companyID, accountID)
}

// FindAccountByCode retrieves an account by its chart code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, companyID int64, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 AND code = $2;`
	return r.findOne(ctx, "find account by code", query, companyID, code)
}

func (r *PgxAccountRepository) findOne(ctx context.Context, op, query string, args ...any) (*domain.Account, error) {
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(op, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.CompanyID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
