package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
// Repositories return it for unique violations; services translate it into a domain conflict.
var ErrDuplicate = errors.New("resource already exists")

var (
	// ErrDuplicatePeriod is returned when an Opening or AITB voucher already exists for the period.
	ErrDuplicatePeriod = errors.New("a voucher already exists for this period")
	// ErrAlreadyApproved is returned when approving a voucher that is no longer a draft.
	ErrAlreadyApproved = errors.New("voucher is already approved")
	// ErrUnbalanced is returned when debits and credits do not match within tolerance.
	ErrUnbalanced = errors.New("voucher is not balanced")
	// ErrVoucherLocked is returned for line mutations on an approved voucher.
	ErrVoucherLocked = errors.New("voucher is approved and its lines are locked")

	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// ErrStorage wraps any failure reported by the persistent store.
	ErrStorage = errors.New("storage error")
	// ErrStorageUnavailable is returned once transient storage failures exhaust their retries.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")

	ErrInternal = errors.New("internal error")
)

// Machine-readable codes carried in every error response.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnbalanced         = "UNBALANCED"
	CodeNotFound           = "NOT_FOUND"
	CodeDuplicatePeriod    = "DUPLICATE_PERIOD"
	CodeAlreadyApproved    = "ALREADY_APPROVED"
	CodeVoucherLocked      = "VOUCHER_LOCKED"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeInternal           = "INTERNAL"
)

// UnbalancedError reports the absolute difference per currency column.
// Empty is set when the voucher has no lines at all.
type UnbalancedError struct {
	DiffLocal decimal.Decimal
	DiffHard  decimal.Decimal
	Empty     bool
}

func (e *UnbalancedError) Error() string {
	if e.Empty {
		return "voucher has no entry lines"
	}
	return fmt.Sprintf("voucher is not balanced: diffLocal=%s diffHard=%s", e.DiffLocal.StringFixed(2), e.DiffHard.StringFixed(2))
}

func (e *UnbalancedError) Unwrap() error { return ErrUnbalanced }

// ConflictError is a business-rule conflict that references the conflicting voucher.
type ConflictError struct {
	Reason    error
	VoucherID string
	Number    *string
}

func (e *ConflictError) Error() string {
	if e.Number != nil {
		return fmt.Sprintf("%v: voucher %s (number %s)", e.Reason, e.VoucherID, *e.Number)
	}
	return fmt.Sprintf("%v: voucher %s", e.Reason, e.VoucherID)
}

func (e *ConflictError) Unwrap() error { return e.Reason }

// StorageError wraps a store failure. Transient failures (serialization,
// deadlock, lock timeout) are safe to retry.
type StorageError struct {
	Op        string
	Transient bool
	Err       error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() []error { return []error{ErrStorage, e.Err} }

// NewStorageError wraps err as a storage failure of operation op.
func NewStorageError(op string, transient bool, err error) *StorageError {
	return &StorageError{Op: op, Transient: transient, Err: err}
}

// IsTransient reports whether err is a retryable storage failure.
func IsTransient(err error) bool {
	var se *StorageError
	return errors.As(err, &se) && se.Transient
}

// Code returns the machine-readable code for err. Every store failure maps to
// CodeStorageUnavailable; CodeInternal is left for faults outside the store.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnbalanced):
		return CodeUnbalanced
	case errors.Is(err, ErrDuplicatePeriod):
		return CodeDuplicatePeriod
	case errors.Is(err, ErrAlreadyApproved):
		return CodeAlreadyApproved
	case errors.Is(err, ErrVoucherLocked):
		return CodeVoucherLocked
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrStorageUnavailable), errors.Is(err, ErrStorage):
		return CodeStorageUnavailable
	default:
		return CodeInternal
	}
}
