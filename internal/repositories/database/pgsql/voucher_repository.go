package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/SscSPs/adops_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/adops_erp/internal/core/ports/repositories"
	"github.com/SscSPs/adops_erp/internal/models"
	"github.com/SscSPs/adops_erp/internal/utils/mapping"
	"github.com/SscSPs/adops_erp/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const voucherColumns = `voucher_id, company_id, number, origin, voucher_type, entry_kind, adjustment_tag,
		voucher_date, period, fiscal_year, date_from, date_to, currency, exchange_rate,
		ufv_initial, ufv_final, bank_account_ref, concept, beneficiary, check_number,
		status, approved_at, approved_by, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, voucher_id, account_code, auxiliary_code, work_order_ref,
		debit_local, credit_local, debit_hard, credit_hard, position, note,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for vouchers and their lines.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryWithTx {
	return &PgxVoucherRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxVoucherRepository implements portsrepo.VoucherRepositoryWithTx
var _ portsrepo.VoucherRepositoryWithTx = (*PgxVoucherRepository)(nil)

// WithinTx runs fn in one database transaction.
func (r *PgxVoucherRepository) WithinTx(ctx context.Context, fn func(uow portsrepo.VoucherUnitOfWork) error) error {
	return withinTx(ctx, &r.BaseRepository, func(tx pgx.Tx) portsrepo.VoucherUnitOfWork {
		return &pgxVoucherUnitOfWork{tx: tx}
	}, fn)
}

// FindVoucherByID retrieves a voucher header by its ID.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, companyID int64, voucherID string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE company_id = $1 AND voucher_id = $2;`
	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, companyID, voucherID))
	if err != nil {
		return nil, translateError("find voucher "+voucherID, err)
	}
	v := mapping.ToDomainVoucher(m)
	return &v, nil
}

// FindLinesByVoucherID retrieves the lines of a voucher ordered by position.
func (r *PgxVoucherRepository) FindLinesByVoucherID(ctx context.Context, voucherID string) ([]domain.EntryLine, error) {
	return findLines(ctx, r.Pool, voucherID)
}

// ListVouchersByCompany retrieves a paginated list of voucher headers using token-based pagination.
// It returns the vouchers, a token for the next page (if any), and an error.
func (r *PgxVoucherRepository) ListVouchersByCompany(ctx context.Context, companyID int64, filter domain.VoucherFilter, limit int, nextToken *string) ([]domain.Voucher, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	conditions := []string{"company_id = $1"}
	args := []any{companyID}
	addCondition := func(column string, value any) {
		args = append(args, value)
		conditions = append(conditions, column+" = $"+strconv.Itoa(len(args)))
	}
	if filter.Status != nil {
		addCondition("status", string(*filter.Status))
	}
	if filter.VoucherType != nil {
		addCondition("voucher_type", string(*filter.VoucherType))
	}
	if filter.FiscalYear != nil {
		addCondition("fiscal_year", *filter.FiscalYear)
	}

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		// Tuple comparison keeps the cursor stable across equal dates
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(voucher_date, created_at, voucher_id) < ($%d, $%d, $%d)", n-2, n-1, n))
	}

	args = append(args, fetchLimit)
	query := `SELECT ` + voucherColumns + ` FROM vouchers
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY voucher_date DESC, created_at DESC, voucher_id DESC
		LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, translateError("list vouchers", err)
	}
	defer rows.Close()

	vouchers := make([]models.Voucher, 0, fetchLimit)
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			return nil, nil, translateError("scan voucher row", err)
		}
		vouchers = append(vouchers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, translateError("iterate voucher rows", err)
	}

	var nextTokenVal *string
	if len(vouchers) > limit {
		last := vouchers[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{Date: last.Date, CreatedAt: last.CreatedAt, ID: last.VoucherID})
		nextTokenVal = &token
		vouchers = vouchers[:limit]
	}

	return mapping.ToDomainVoucherSlice(vouchers), nextTokenVal, nil
}

func findLines(ctx context.Context, q querier, voucherID string) ([]domain.EntryLine, error) {
	query := `SELECT ` + lineColumns + ` FROM voucher_lines WHERE voucher_id = $1 ORDER BY position, created_at;`
	rows, err := q.Query(ctx, query, voucherID)
	if err != nil {
		return nil, translateError("query lines of voucher "+voucherID, err)
	}
	defer rows.Close()

	lines := []models.EntryLine{}
	for rows.Next() {
		m, err := scanLine(rows)
		if err != nil {
			return nil, translateError("scan line row", err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("iterate line rows", err)
	}
	return mapping.ToDomainEntryLineSlice(lines), nil
}

func scanVoucher(row pgx.Row) (models.Voucher, error) {
	var m models.Voucher
	err := row.Scan(
		&m.VoucherID,
		&m.CompanyID,
		&m.Number,
		&m.Origin,
		&m.VoucherType,
		&m.EntryKind,
		&m.AdjustmentTag,
		&m.Date,
		&m.Period,
		&m.FiscalYear,
		&m.DateFrom,
		&m.DateTo,
		&m.Currency,
		&m.ExchangeRate,
		&m.UFVInitial,
		&m.UFVFinal,
		&m.BankAccountRef,
		&m.Concept,
		&m.Beneficiary,
		&m.CheckNumber,
		&m.Status,
		&m.ApprovedAt,
		&m.ApprovedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanLine(row pgx.Row) (models.EntryLine, error) {
	var m models.EntryLine
	err := row.Scan(
		&m.LineID,
		&m.VoucherID,
		&m.AccountCode,
		&m.AuxiliaryCode,
		&m.WorkOrderRef,
		&m.DebitLocal,
		&m.CreditLocal,
		&m.DebitHard,
		&m.CreditHard,
		&m.Position,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
