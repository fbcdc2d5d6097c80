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

const auxiliaryColumns = `x.auxiliary_id, x.company_id, x.account_id, a.code, x.aux_type, x.code, x.name,
		x.created_at, x.created_by, x.last_updated_at, x.last_updated_by`

type PgxAuxiliaryRepository struct {
	BaseRepository
}

// newPgxAuxiliaryRepository creates a new repository for subledger records.
func newPgxAuxiliaryRepository(pool *pgxpool.Pool) portsrepo.AuxiliaryRepositoryFacade {
	return &PgxAuxiliaryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuxiliaryRepositoryFacade = (*PgxAuxiliaryRepository)(nil)

// FindAuxiliaryByTypeCode retrieves an auxiliary by its (type, code) pair.
func (r *PgxAuxiliaryRepository) FindAuxiliaryByTypeCode(ctx context.Context, companyID int64, auxType, code string) (*domain.Auxiliary, error) {
	query := `
		SELECT ` + auxiliaryColumns + `
		FROM auxiliaries x
		JOIN accounts a ON a.account_id = x.account_id
		WHERE x.company_id = $1 AND x.aux_type = $2 AND x.code = $3;
	`
	return r.findOne(ctx, "find auxiliary by type and code", query, companyID, auxType, code)
}

// FindAuxiliaryByAccountCode retrieves an auxiliary attached to the account with the given chart code.
func (r *PgxAuxiliaryRepository) FindAuxiliaryByAccountCode(ctx context.Context, companyID int64, accountCode, code string) (*domain.Auxiliary, error) {
	query := `
		SELECT ` + auxiliaryColumns + `
		FROM auxiliaries x
		JOIN accounts a ON a.account_id = x.account_id
		WHERE x.company_id = $1 AND a.code = $2 AND x.code = $3
		LIMIT 1;
	`
	return r.findOne(ctx, "find auxiliary by account code", query, companyID, accountCode, code)
}

// SaveAuxiliary inserts a new auxiliary.
func (r *PgxAuxiliaryRepository) SaveAuxiliary(ctx context.Context, aux domain.Auxiliary) error {
	m := mapping.ToModelAuxiliary(aux)
	query := `
		INSERT INTO auxiliaries (auxiliary_id, company_id, account_id, aux_type, code, name,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AuxiliaryID,
		m.CompanyID,
		m.AccountID,
		m.Type,
		m.Code,
		m.Name,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return translateError("save auxiliary "+m.Code, err)
}

func (r *PgxAuxiliaryRepository) findOne(ctx context.Context, op, query string, args ...any) (*domain.Auxiliary, error) {
	m, err := scanAuxiliary(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(op, err)
	}
	aux := mapping.ToDomainAuxiliary(m)
	return &aux, nil
}

func scanAuxiliary(row pgx.Row) (models.Auxiliary, error) {
	var m models.Auxiliary
	err := row.Scan(
		&m.AuxiliaryID,
		&m.CompanyID,
		&m.AccountID,
		&m.AccountCode,
		&m.Type,
		&m.Code,
		&m.Name,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
