package services

import (
	"context"

	"github.com/SscSPs/adops_erp/internal/core/domain"
	"github.com/SscSPs/adops_erp/internal/dto"
)

// VoucherDraftSvc defines draft creation for the five producing workflows.
type VoucherDraftSvc interface {
	// CreateDraft builds and persists a header-only draft. Opening and AITB
	// drafts are rejected with a DUPLICATE_PERIOD conflict when their period is taken.
	CreateDraft(ctx context.Context, companyID int64, spec domain.DraftSpec, userID string) (*domain.Voucher, error)
}

// VoucherApprovalSvc defines the Draft to Approved transition.
type VoucherApprovalSvc interface {
	// Approve validates balance, allocates the correlative number and approves
	// the voucher in one transaction. It returns the voucher with its lines.
	Approve(ctx context.Context, companyID int64, voucherID string, userID string) (*domain.Voucher, error)
}

// VoucherReaderSvc defines read operations for vouchers.
type VoucherReaderSvc interface {
	// GetVoucher retrieves a voucher with its lines.
	GetVoucher(ctx context.Context, companyID int64, voucherID string, userID string) (*domain.Voucher, error)

	// ListVouchers retrieves a page of voucher headers.
	ListVouchers(ctx context.Context, companyID int64, userID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error)

	// CheckBalance runs the balance validator without approving.
	CheckBalance(ctx context.Context, companyID int64, voucherID string, userID string) (*domain.BalanceResult, error)
}

// EntryLineSvc defines line mutations, allowed only while the voucher is a draft.
type EntryLineSvc interface {
	AddLine(ctx context.Context, companyID int64, voucherID string, in domain.LineInput, userID string) (*domain.EntryLine, error)
	UpdateLine(ctx context.Context, companyID int64, voucherID, lineID string, in domain.LineInput, userID string) (*domain.EntryLine, error)
	DeleteLine(ctx context.Context, companyID int64, voucherID, lineID string, userID string) error
}

// VoucherSvcFacade combines all voucher-related service interfaces
// This is a facade for clients that need access to all operations
type VoucherSvcFacade interface {
	VoucherDraftSvc
	VoucherApprovalSvc
	VoucherReaderSvc
	EntryLineSvc
}
