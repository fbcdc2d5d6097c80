package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/SscSPs/adops_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/adops_erp/internal/core/ports/repositories"
	"github.com/SscSPs/adops_erp/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

// pgxVoucherUnitOfWork runs voucher operations on an open transaction.
type pgxVoucherUnitOfWork struct {
	tx pgx.Tx
}

var _ portsrepo.VoucherUnitOfWork = (*pgxVoucherUnitOfWork)(nil)

func (u *pgxVoucherUnitOfWork) LockVoucher(ctx context.Context, companyID int64, voucherID string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE company_id = $1 AND voucher_id = $2 FOR UPDATE;`
	m, err := scanVoucher(u.tx.QueryRow(ctx, query, companyID, voucherID))
	if err != nil {
		return nil, translateError("lock voucher "+voucherID, err)
	}
	v := mapping.ToDomainVoucher(m)
	return &v, nil
}

func (u *pgxVoucherUnitOfWork) FindLines(ctx context.Context, voucherID string) ([]domain.EntryLine, error) {
	return findLines(ctx, u.tx, voucherID)
}

// LockPeriodScope takes a transaction-scoped advisory lock keyed by the scope.
func (u *pgxVoucherUnitOfWork) LockPeriodScope(ctx context.Context, companyID int64, scope domain.PeriodScope) error {
	_, err := u.tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, scope.Key(companyID))
	return translateError("lock period scope", err)
}

func (u *pgxVoucherUnitOfWork) FindVoucherInScope(ctx context.Context, companyID int64, scope domain.PeriodScope) (*domain.Voucher, error) {
	var row pgx.Row
	if scope.EntryKind == domain.KindOpening {
		query := `SELECT ` + voucherColumns + ` FROM vouchers
			WHERE company_id = $1 AND entry_kind = 'Opening' AND fiscal_year = $2
			LIMIT 1;`
		row = u.tx.QueryRow(ctx, query, companyID, scope.FiscalYear)
	} else {
		query := `SELECT ` + voucherColumns + ` FROM vouchers
			WHERE company_id = $1 AND entry_kind = $2 AND adjustment_tag = $3 AND fiscal_year = $4 AND period = $5
			LIMIT 1;`
		row = u.tx.QueryRow(ctx, query, companyID, string(scope.EntryKind), string(scope.Tag), scope.FiscalYear, scope.Period)
	}

	m, err := scanVoucher(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError("find voucher in scope", err)
	}
	v := mapping.ToDomainVoucher(m)
	return &v, nil
}

func (u *pgxVoucherUnitOfWork) InsertVoucher(ctx context.Context, voucher domain.Voucher) error {
	m := mapping.ToModelVoucher(voucher)
	query := `
		INSERT INTO vouchers (` + voucherColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27);
	`
	_, err := u.tx.Exec(ctx, query,
		m.VoucherID,
		m.CompanyID,
		m.Number,
		m.Origin,
		m.VoucherType,
		m.EntryKind,
		m.AdjustmentTag,
		m.Date,
		m.Period,
		m.FiscalYear,
		m.DateFrom,
		m.DateTo,
		m.Currency,
		m.ExchangeRate,
		m.UFVInitial,
		m.UFVFinal,
		m.BankAccountRef,
		m.Concept,
		m.Beneficiary,
		m.CheckNumber,
		m.Status,
		m.ApprovedAt,
		m.ApprovedBy,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return translateError("insert voucher "+m.VoucherID, err)
}

// LockSequence creates the (company, type) sequence row on first use and
// locks it until the transaction ends.
func (u *pgxVoucherUnitOfWork) LockSequence(ctx context.Context, companyID int64, voucherType domain.VoucherType) error {
	_, err := u.tx.Exec(ctx, `
		INSERT INTO voucher_sequences (company_id, voucher_type)
		VALUES ($1, $2)
		ON CONFLICT (company_id, voucher_type) DO NOTHING;
	`, companyID, string(voucherType))
	if err != nil {
		return translateError("create voucher sequence", err)
	}
	var locked int64
	err = u.tx.QueryRow(ctx, `
		SELECT company_id FROM voucher_sequences
		WHERE company_id = $1 AND voucher_type = $2
		FOR UPDATE;
	`, companyID, string(voucherType)).Scan(&locked)
	return translateError("lock voucher sequence", err)
}

// MaxApprovedNumber compares numbers numerically so "1000" ranks above "999".
func (u *pgxVoucherUnitOfWork) MaxApprovedNumber(ctx context.Context, companyID int64, voucherType domain.VoucherType) (int64, error) {
	var max int64
	err := u.tx.QueryRow(ctx, `
		SELECT COALESCE(MAX(number::bigint), 0)
		FROM vouchers
		WHERE company_id = $1 AND voucher_type = $2 AND status = 'Approved' AND number ~ '^[0-9]+$';
	`, companyID, string(voucherType)).Scan(&max)
	if err != nil {
		return 0, translateError("read max approved number", err)
	}
	return max, nil
}

func (u *pgxVoucherUnitOfWork) MarkApproved(ctx context.Context, companyID int64, voucherID, number, userID string, at time.Time) error {
	tag, err := u.tx.Exec(ctx, `
		UPDATE vouchers
		SET status = 'Approved', number = $3, approved_at = $4, approved_by = $5,
		    last_updated_at = $4, last_updated_by = $5
		WHERE company_id = $1 AND voucher_id = $2 AND status = 'Draft';
	`, companyID, voucherID, number, at, userID)
	if err != nil {
		return translateError("mark voucher approved", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mark voucher %s approved: %w", voucherID, apperrors.ErrAlreadyApproved)
	}
	_, err = u.tx.Exec(ctx, `
		UPDATE voucher_sequences SET last_number = $3
		WHERE company_id = $1 AND voucher_type = (SELECT voucher_type FROM vouchers WHERE voucher_id = $2);
	`, companyID, voucherID, number)
	return translateError("record last number", err)
}

func (u *pgxVoucherUnitOfWork) FindLineByID(ctx context.Context, voucherID, lineID string) (*domain.EntryLine, error) {
	query := `SELECT ` + lineColumns + ` FROM voucher_lines WHERE voucher_id = $1 AND line_id = $2;`
	m, err := scanLine(u.tx.QueryRow(ctx, query, voucherID, lineID))
	if err != nil {
		return nil, translateError("find line "+lineID, err)
	}
	line := mapping.ToDomainEntryLine(m)
	return &line, nil
}

func (u *pgxVoucherUnitOfWork) InsertLine(ctx context.Context, line domain.EntryLine) error {
	m := mapping.ToModelEntryLine(line)
	query := `
		INSERT INTO voucher_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := u.tx.Exec(ctx, query,
		m.LineID,
		m.VoucherID,
		m.AccountCode,
		m.AuxiliaryCode,
		m.WorkOrderRef,
		m.DebitLocal,
		m.CreditLocal,
		m.DebitHard,
		m.CreditHard,
		m.Position,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return translateError("insert line "+m.LineID, err)
}

func (u *pgxVoucherUnitOfWork) UpdateLine(ctx context.Context, line domain.EntryLine) error {
	m := mapping.ToModelEntryLine(line)
	tag, err := u.tx.Exec(ctx, `
		UPDATE voucher_lines
		SET account_code = $3, auxiliary_code = $4, work_order_ref = $5,
		    debit_local = $6, credit_local = $7, debit_hard = $8, credit_hard = $9,
		    position = $10, note = $11, last_updated_at = $12, last_updated_by = $13
		WHERE voucher_id = $1 AND line_id = $2;
	`,
		m.VoucherID,
		m.LineID,
		m.AccountCode,
		m.AuxiliaryCode,
		m.WorkOrderRef,
		m.DebitLocal,
		m.CreditLocal,
		m.DebitHard,
		m.CreditHard,
		m.Position,
		m.Note,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateError("update line "+m.LineID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("line %s: %w", m.LineID, apperrors.ErrNotFound)
	}
	return nil
}

func (u *pgxVoucherUnitOfWork) DeleteLine(ctx context.Context, voucherID, lineID string) error {
	tag, err := u.tx.Exec(ctx, `DELETE FROM voucher_lines WHERE voucher_id = $1 AND line_id = $2;`, voucherID, lineID)
	if err != nil {
		return translateError("delete line "+lineID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("line %s: %w", lineID, apperrors.ErrNotFound)
	}
	return nil
}

func (u *pgxVoucherUnitOfWork) TouchVoucher(ctx context.Context, voucherID, userID string, at time.Time) error {
	_, err := u.tx.Exec(ctx, `
		UPDATE vouchers SET last_updated_at = $2, last_updated_by = $3 WHERE voucher_id = $1;
	`, voucherID, at, userID)
	return translateError("touch voucher "+voucherID, err)
}
