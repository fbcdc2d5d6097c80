package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	num := "001"
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"validation", fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation), apperrors.CodeValidation},
		{"unbalanced", &apperrors.UnbalancedError{DiffLocal: decimal.RequireFromString("0.5")}, apperrors.CodeUnbalanced},
		{"duplicate period", &apperrors.ConflictError{Reason: apperrors.ErrDuplicatePeriod, VoucherID: "v1", Number: &num}, apperrors.CodeDuplicatePeriod},
		{"already approved", fmt.Errorf("approve v1: %w", apperrors.ErrAlreadyApproved), apperrors.CodeAlreadyApproved},
		{"locked", apperrors.ErrVoucherLocked, apperrors.CodeVoucherLocked},
		{"not found", fmt.Errorf("voucher v1: %w", apperrors.ErrNotFound), apperrors.CodeNotFound},
		{"forbidden", apperrors.ErrForbidden, apperrors.CodeForbidden},
		{"unavailable", fmt.Errorf("%w: retries exhausted", apperrors.ErrStorageUnavailable), apperrors.CodeStorageUnavailable},
		{"storage", apperrors.NewStorageError("insert voucher", false, errors.New("boom")), apperrors.CodeStorageUnavailable},
		{"wrapped storage", fmt.Errorf("approve: %w", apperrors.NewStorageError("lock voucher", false, errors.New("conn closed"))), apperrors.CodeStorageUnavailable},
		{"internal", fmt.Errorf("%w: random source failed", apperrors.ErrInternal), apperrors.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.Code(tt.err))
		})
	}
}

func TestStorageError(t *testing.T) {
	cause := errors.New("deadlock detected")
	err := fmt.Errorf("approve: %w", apperrors.NewStorageError("lock voucher", true, cause))

	assert.True(t, apperrors.IsTransient(err))
	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.False(t, apperrors.IsTransient(apperrors.NewStorageError("insert", false, cause)))
	assert.False(t, apperrors.IsTransient(apperrors.ErrNotFound))
}

func TestUnbalancedError_Message(t *testing.T) {
	err := &apperrors.UnbalancedError{DiffLocal: decimal.RequireFromString("0.5"), DiffHard: decimal.Zero}
	assert.Equal(t, "voucher is not balanced: diffLocal=0.50 diffHard=0.00", err.Error())
	assert.Equal(t, "voucher has no entry lines", (&apperrors.UnbalancedError{Empty: true}).Error())
}
