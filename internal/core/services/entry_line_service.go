package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/SscSPs/adops_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/adops_erp/internal/core/ports/repositories"
)

// AddLine appends a line to a draft voucher.
func (s *voucherService) AddLine(ctx context.Context, companyID int64, voucherID string, in domain.LineInput, userID string) (*domain.EntryLine, error) {
	if err := s.prepareLineInput(ctx, companyID, userID, in); err != nil {
		return nil, err
	}

	var added domain.EntryLine
	err := s.withDraft(ctx, companyID, voucherID, "add line", func(uow portsrepo.VoucherUnitOfWork) error {
		lines, err := uow.FindLines(ctx, voucherID)
		if err != nil {
			return err
		}
		now := s.now()
		added = domain.NewEntryLine(voucherID, in, domain.NextPosition(lines), userID, now)
		if err := uow.InsertLine(ctx, added); err != nil {
			return err
		}
		return uow.TouchVoucher(ctx, voucherID, userID, now)
	})
	if err != nil {
		s.logLineFailure(ctx, err, "Failed to add entry line", voucherID)
		return nil, err
	}

	s.LogInfo(ctx, "Entry line added", slog.String("voucher_id", voucherID), slog.String("line_id", added.LineID))
	return &added, nil
}

// UpdateLine replaces the editable fields of a line on a draft voucher.
func (s *voucherService) UpdateLine(ctx context.Context, companyID int64, voucherID, lineID string, in domain.LineInput, userID string) (*domain.EntryLine, error) {
	if err := s.prepareLineInput(ctx, companyID, userID, in); err != nil {
		return nil, err
	}

	var updated *domain.EntryLine
	err := s.withDraft(ctx, companyID, voucherID, "update line", func(uow portsrepo.VoucherUnitOfWork) error {
		line, err := uow.FindLineByID(ctx, voucherID, lineID)
		if err != nil {
			return err
		}
		now := s.now()
		line.Update(in, userID, now)
		if err := uow.UpdateLine(ctx, *line); err != nil {
			return err
		}
		updated = line
		return uow.TouchVoucher(ctx, voucherID, userID, now)
	})
	if err != nil {
		s.logLineFailure(ctx, err, "Failed to update entry line", voucherID)
		return nil, err
	}

	s.LogInfo(ctx, "Entry line updated", slog.String("voucher_id", voucherID), slog.String("line_id", lineID))
	return updated, nil
}

// DeleteLine removes a line from a draft voucher.
func (s *voucherService) DeleteLine(ctx context.Context, companyID int64, voucherID, lineID string, userID string) error {
	if err := s.Authorize(ctx, companyID, userID, domain.ActionUpdate); err != nil {
		return err
	}

	err := s.withDraft(ctx, companyID, voucherID, "delete line", func(uow portsrepo.VoucherUnitOfWork) error {
		if err := uow.DeleteLine(ctx, voucherID, lineID); err != nil {
			return err
		}
		return uow.TouchVoucher(ctx, voucherID, userID, s.now())
	})
	if err != nil {
		s.logLineFailure(ctx, err, "Failed to delete entry line", voucherID)
		return err
	}

	s.LogInfo(ctx, "Entry line deleted", slog.String("voucher_id", voucherID), slog.String("line_id", lineID))
	return nil
}

// withDraft runs fn in a transaction holding the voucher row lock, after
// checking the voucher is still a draft.
func (s *voucherService) withDraft(ctx context.Context, companyID int64, voucherID, op string, fn func(uow portsrepo.VoucherUnitOfWork) error) error {
	return retryStorage(ctx, s.retry, op, func() error {
		return s.voucherRepo.WithinTx(ctx, func(uow portsrepo.VoucherUnitOfWork) error {
			v, err := uow.LockVoucher(ctx, companyID, voucherID)
			if err != nil {
				return err
			}
			if !v.IsDraft() {
				return fmt.Errorf("%w: voucher %s is %s", apperrors.ErrVoucherLocked, voucherID, v.Status)
			}
			return fn(uow)
		})
	})
}

// prepareLineInput authorizes the edit and checks the line's references
// against the company's chart of accounts.
func (s *voucherService) prepareLineInput(ctx context.Context, companyID int64, userID string, in domain.LineInput) error {
	if err := s.Authorize(ctx, companyID, userID, domain.ActionUpdate); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}

	return retryStorage(ctx, s.retry, "check line references", func() error {
		account, err := s.accountRepo.FindAccountByCode(ctx, companyID, in.AccountCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("account %q: %w", in.AccountCode, err)
			}
			return err
		}
		if !account.IsActive {
			return fmt.Errorf("%w: account %q is inactive", apperrors.ErrValidation, account.Code)
		}
		if in.AuxiliaryCode == nil {
			return nil
		}
		if _, err := s.auxiliaryRepo.FindAuxiliaryByAccountCode(ctx, companyID, account.Code, *in.AuxiliaryCode); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("auxiliary %q for account %q: %w", *in.AuxiliaryCode, account.Code, err)
			}
			return err
		}
		return nil
	})
}

func (s *voucherService) logLineFailure(ctx context.Context, err error, msg, voucherID string) {
	if errors.Is(err, apperrors.ErrVoucherLocked) || errors.Is(err, apperrors.ErrNotFound) {
		s.GetLogger(ctx).Warn(msg, slog.String("voucher_id", voucherID), slog.String("error", err.Error()))
		return
	}
	s.LogError(ctx, err, msg, slog.String("voucher_id", voucherID))
}
