package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/SscSPs/adops_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/adops_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/adops_erp/internal/core/ports/services"
	"github.com/SscSPs/adops_erp/internal/dto"
)

const defaultListLimit = 20

// voucherService implements the voucher lifecycle: draft creation, line
// editing, balance checks and approval.
type voucherService struct {
	BaseService
	voucherRepo   portsrepo.VoucherRepositoryWithTx
	accountRepo   portsrepo.AccountReader
	auxiliaryRepo portsrepo.AuxiliaryReader
	retry         RetryPolicy
	now           func() time.Time
}

// VoucherServiceOption configures a voucherService.
type VoucherServiceOption func(*voucherService)

// WithVoucherAuthorizer sets the permission gate.
func WithVoucherAuthorizer(authorizer portssvc.PermissionAuthorizerSvc) VoucherServiceOption {
	return func(s *voucherService) {
		s.Authorizer = authorizer
	}
}

// WithRetryPolicy overrides the retry policy for transient storage errors.
func WithRetryPolicy(policy RetryPolicy) VoucherServiceOption {
	return func(s *voucherService) {
		s.retry = policy
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) VoucherServiceOption {
	return func(s *voucherService) {
		s.now = now
	}
}

// NewVoucherService creates a new VoucherSvcFacade.
func NewVoucherService(voucherRepo portsrepo.VoucherRepositoryWithTx, accountRepo portsrepo.AccountReader, auxiliaryRepo portsrepo.AuxiliaryReader, options ...VoucherServiceOption) portssvc.VoucherSvcFacade {
	s := &voucherService{
		voucherRepo:   voucherRepo,
		accountRepo:   accountRepo,
		auxiliaryRepo: auxiliaryRepo,
		retry:         DefaultRetryPolicy(),
		now:           func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// CreateDraft builds a draft from the given variant and persists it. Opening and AITB
// drafts take a transaction-scoped lock on their period before checking for
// an existing voucher, so concurrent creators of the same period serialize.
func (s *voucherService) CreateDraft(ctx context.Context, companyID int64, spec domain.DraftSpec, userID string) (*domain.Voucher, error) {
	logger := s.GetLogger(ctx)

	if err := s.Authorize(ctx, companyID, userID, domain.ActionCreate); err != nil {
		return nil, err
	}

	voucher, err := domain.NewDraft(companyID, spec, userID, s.now())
	if err != nil {
		logger.Warn("Draft validation failed", slog.Int64("company_id", companyID), slog.String("error", err.Error()))
		return nil, err
	}
	scope, scoped := voucher.PeriodScope()

	err = retryStorage(ctx, s.retry, "create draft", func() error {
		return s.voucherRepo.WithinTx(ctx, func(uow portsrepo.VoucherUnitOfWork) error {
			if scoped {
				if err := uow.LockPeriodScope(ctx, companyID, scope); err != nil {
					return err
				}
				if err := checkNoDuplicate(ctx, uow, companyID, scope); err != nil {
					return err
				}
			}
			return uow.InsertVoucher(ctx, *voucher)
		})
	})
	if scoped && errors.Is(err, apperrors.ErrDuplicate) {
		// the unique index caught a creator that bypassed the lock
		err = s.conflictFromIndex(ctx, companyID, scope, err)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicatePeriod) {
			logger.Warn("Duplicate period rejected", slog.Int64("company_id", companyID), slog.String("error", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to create draft voucher", slog.Int64("company_id", companyID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Draft voucher created",
		slog.String("voucher_id", voucher.VoucherID),
		slog.String("kind", string(spec.Kind())),
		slog.Int64("company_id", companyID))
	return voucher, nil
}

// checkNoDuplicate fails with a DUPLICATE_PERIOD conflict when the scope is taken.
func checkNoDuplicate(ctx context.Context, uow portsrepo.VoucherUnitOfWork, companyID int64, scope domain.PeriodScope) error {
	existing, err := uow.FindVoucherInScope(ctx, companyID, scope)
	if err != nil {
		return err
	}
	if existing != nil {
		return &apperrors.ConflictError{
			Reason:    apperrors.ErrDuplicatePeriod,
			VoucherID: existing.VoucherID,
			Number:    existing.Number,
		}
	}
	return nil
}

func (s *voucherService) conflictFromIndex(ctx context.Context, companyID int64, scope domain.PeriodScope, cause error) error {
	var conflict error
	err := retryStorage(ctx, s.retry, "find conflicting voucher", func() error {
		return s.voucherRepo.WithinTx(ctx, func(uow portsrepo.VoucherUnitOfWork) error {
			conflict = checkNoDuplicate(ctx, uow, companyID, scope)
			return nil
		})
	})
	if err != nil {
		return err
	}
	if conflict == nil {
		return fmt.Errorf("insert rejected by unique index: %w", cause)
	}
	return conflict
}

// GetVoucher retrieves a voucher with its lines.
func (s *voucherService) GetVoucher(ctx context.Context, companyID int64, voucherID string, userID string) (*domain.Voucher, error) {
	if err := s.Authorize(ctx, companyID, userID, domain.ActionRead); err != nil {
		return nil, err
	}

	var voucher *domain.Voucher
	err := retryStorage(ctx, s.retry, "get voucher", func() error {
		v, err := s.voucherRepo.FindVoucherByID(ctx, companyID, voucherID)
		if err != nil {
			return err
		}
		lines, err := s.voucherRepo.FindLinesByVoucherID(ctx, voucherID)
		if err != nil {
			return err
		}
		v.Lines = lines
		voucher = v
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.GetLogger(ctx).Warn("Voucher not found", slog.String("voucher_id", voucherID), slog.Int64("company_id", companyID))
			return nil, fmt.Errorf("voucher %s: %w", voucherID, err)
		}
		s.LogError(ctx, err, "Failed to get voucher", slog.String("voucher_id", voucherID))
		return nil, err
	}
	return voucher, nil
}

// ListVouchers retrieves a page of voucher headers for the company.
func (s *voucherService) ListVouchers(ctx context.Context, companyID int64, userID string, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	if err := s.Authorize(ctx, companyID, userID, domain.ActionRead); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	var (
		vouchers  []domain.Voucher
		nextToken *string
	)
	err := retryStorage(ctx, s.retry, "list vouchers", func() error {
		var err error
		vouchers, nextToken, err = s.voucherRepo.ListVouchersByCompany(ctx, companyID, params.Filter(), limit, params.NextToken)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers", slog.Int64("company_id", companyID))
		return nil, err
	}

	s.LogDebug(ctx, "Vouchers listed", slog.Int64("company_id", companyID), slog.Int("count", len(vouchers)))
	return &dto.ListVouchersResponse{
		Vouchers:  dto.ToVoucherResponses(vouchers),
		NextToken: nextToken,
	}, nil
}

// CheckBalance runs the balance validator over the voucher's current lines.
func (s *voucherService) CheckBalance(ctx context.Context, companyID int64, voucherID string, userID string) (*domain.BalanceResult, error) {
	voucher, err := s.GetVoucher(ctx, companyID, voucherID, userID)
	if err != nil {
		return nil, err
	}
	res := domain.SumLines(voucher.Lines)
	return &res, nil
}
