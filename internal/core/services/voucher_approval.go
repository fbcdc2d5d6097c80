package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/SscSPs/adops_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/adops_erp/internal/core/ports/repositories"
)

// Approve moves a balanced draft to Approved and assigns its correlative
// number. Everything from the existence check to the number write runs in
// one transaction holding the voucher row lock and the (company, type)
// sequence lock, so concurrent approvals of the same type cannot read the
// same maximum.
func (s *voucherService) Approve(ctx context.Context, companyID int64, voucherID string, userID string) (*domain.Voucher, error) {
	logger := s.GetLogger(ctx).With(slog.String("voucher_id", voucherID), slog.Int64("company_id", companyID))

	if err := s.Authorize(ctx, companyID, userID, domain.ActionApprove); err != nil {
		return nil, err
	}

	var approved *domain.Voucher
	err := retryStorage(ctx, s.retry, "approve voucher", func() error {
		return s.voucherRepo.WithinTx(ctx, func(uow portsrepo.VoucherUnitOfWork) error {
			v, err := uow.LockVoucher(ctx, companyID, voucherID)
			if err != nil {
				return err
			}
			if !v.IsDraft() {
				return &apperrors.ConflictError{Reason: apperrors.ErrAlreadyApproved, VoucherID: v.VoucherID, Number: v.Number}
			}

			lines, err := uow.FindLines(ctx, voucherID)
			if err != nil {
				return err
			}
			v.Lines = lines
			if _, err := domain.ValidateBalance(lines); err != nil {
				return err
			}

			if err := uow.LockSequence(ctx, companyID, v.VoucherType); err != nil {
				return err
			}
			maxApproved, err := uow.MaxApprovedNumber(ctx, companyID, v.VoucherType)
			if err != nil {
				return err
			}
			number := domain.NextNumber(maxApproved)

			now := s.now()
			if err := v.Approve(number, userID, now); err != nil {
				return err
			}
			if err := uow.MarkApproved(ctx, companyID, voucherID, number, userID, now); err != nil {
				return err
			}
			approved = v
			return nil
		})
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrAlreadyApproved), errors.Is(err, apperrors.ErrUnbalanced):
			logger.Warn("Approval rejected", slog.String("error", err.Error()))
		default:
			logger.Error("Failed to approve voucher", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Voucher approved",
		slog.String("voucher_type", string(approved.VoucherType)),
		slog.String("number", *approved.Number))
	return approved, nil
}
