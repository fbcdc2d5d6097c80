package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/adops_erp/internal/core/domain"
)

// VoucherReader defines read operations for vouchers outside any transaction.
type VoucherReader interface {
	// FindVoucherByID retrieves a voucher header scoped to its company.
	FindVoucherByID(ctx context.Context, companyID int64, voucherID string) (*domain.Voucher, error)

	// FindLinesByVoucherID retrieves the lines of a voucher ordered by position.
	FindLinesByVoucherID(ctx context.Context, voucherID string) ([]domain.EntryLine, error)

	// ListVouchersByCompany retrieves a page of voucher headers ordered by date
	// and creation time, newest first. It returns the vouchers and a token for the next page.
	ListVouchersByCompany(ctx context.Context, companyID int64, filter domain.VoucherFilter, limit int, nextToken *string) ([]domain.Voucher, *string, error)
}

// VoucherUnitOfWork is the set of operations available inside one voucher
// transaction. Locks taken here are held until the transaction ends.
type VoucherUnitOfWork interface {
	// LockVoucher loads the voucher row with FOR UPDATE.
	LockVoucher(ctx context.Context, companyID int64, voucherID string) (*domain.Voucher, error)
	FindLines(ctx context.Context, voucherID string) ([]domain.EntryLine, error)

	// LockPeriodScope serializes creators of the same Opening/AITB scope until commit.
	LockPeriodScope(ctx context.Context, companyID int64, scope domain.PeriodScope) error
	// FindVoucherInScope returns the existing voucher of the scope, or nil.
	FindVoucherInScope(ctx context.Context, companyID int64, scope domain.PeriodScope) (*domain.Voucher, error)
	// InsertVoucher persists a new header. A unique violation returns apperrors.ErrDuplicate.
	InsertVoucher(ctx context.Context, voucher domain.Voucher) error

	// LockSequence locks the (company, voucher type) numbering row.
	LockSequence(ctx context.Context, companyID int64, voucherType domain.VoucherType) error
	// MaxApprovedNumber returns the highest numeric number among approved
	// vouchers of the pair, or zero.
	MaxApprovedNumber(ctx context.Context, companyID int64, voucherType domain.VoucherType) (int64, error)
	// MarkApproved sets status and number together. It is the only writer of number.
	MarkApproved(ctx context.Context, companyID int64, voucherID, number, userID string, at time.Time) error

	FindLineByID(ctx context.Context, voucherID, lineID string) (*domain.EntryLine, error)
	InsertLine(ctx context.Context, line domain.EntryLine) error
	UpdateLine(ctx context.Context, line domain.EntryLine) error
	DeleteLine(ctx context.Context, voucherID, lineID string) error
	// TouchVoucher records a modification of the voucher header.
	TouchVoucher(ctx context.Context, voucherID, userID string, at time.Time) error
}

// VoucherRepositoryFacade combines all voucher-related repository interfaces.
type VoucherRepositoryFacade interface {
	VoucherReader
}

// VoucherRepositoryWithTx extends VoucherRepositoryFacade with transactional units of work.
type VoucherRepositoryWithTx interface {
	VoucherRepositoryFacade
	TxRunner[VoucherUnitOfWork]
}
