package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimal places stored for line amounts.
const AmountScale = 2

// EntryLine is one debit-or-credit row of a voucher, valued in both the
// local and the hard currency.
type EntryLine struct {
	LineID        string          `json:"lineID"`
	VoucherID     string          `json:"voucherID"`
	AccountCode   string          `json:"accountCode"`
	AuxiliaryCode *string         `json:"auxiliaryCode,omitempty"`
	WorkOrderRef  *string         `json:"workOrderRef,omitempty"`
	DebitLocal    decimal.Decimal `json:"debitLocal"`
	CreditLocal   decimal.Decimal `json:"creditLocal"`
	DebitHard     decimal.Decimal `json:"debitHard"`
	CreditHard    decimal.Decimal `json:"creditHard"`
	Position      int             `json:"position"`
	Note          string          `json:"note"`
	AuditFields
}

// LineInput carries the editable fields of an entry line.
type LineInput struct {
	AccountCode   string
	AuxiliaryCode *string
	WorkOrderRef  *string
	DebitLocal    decimal.Decimal
	CreditLocal   decimal.Decimal
	DebitHard     decimal.Decimal
	CreditHard    decimal.Decimal
	Position      *int
	Note          string
}

// Validate rejects negative amounts, amounts finer than AmountScale,
// self-cancelling lines (debit and credit both nonzero in the same currency)
// and lines without any amount.
func (in LineInput) Validate() error {
	if strings.TrimSpace(in.AccountCode) == "" {
		return fmt.Errorf("%w: accountCode is required", apperrors.ErrValidation)
	}
	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"debitLocal", in.DebitLocal},
		{"creditLocal", in.CreditLocal},
		{"debitHard", in.DebitHard},
		{"creditHard", in.CreditHard},
	}
	allZero := true
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, a.name)
		}
		if !withinScale(a.value, AmountScale) {
			return fmt.Errorf("%w: %s allows at most %d decimal places", apperrors.ErrValidation, a.name, AmountScale)
		}
		if !a.value.IsZero() {
			allZero = false
		}
	}
	if allZero {
		return fmt.Errorf("%w: line must carry a debit or a credit amount", apperrors.ErrValidation)
	}
	if !in.DebitLocal.IsZero() && !in.CreditLocal.IsZero() {
		return fmt.Errorf("%w: line cannot carry both debitLocal and creditLocal", apperrors.ErrValidation)
	}
	if !in.DebitHard.IsZero() && !in.CreditHard.IsZero() {
		return fmt.Errorf("%w: line cannot carry both debitHard and creditHard", apperrors.ErrValidation)
	}
	if in.Position != nil && *in.Position < 0 {
		return fmt.Errorf("%w: position must not be negative", apperrors.ErrValidation)
	}
	return nil
}

// NewEntryLine builds a line for voucherID. defaultPosition is used when the
// input carries none.
func NewEntryLine(voucherID string, in LineInput, defaultPosition int, userID string, now time.Time) EntryLine {
	line := EntryLine{
		LineID:      uuid.NewString(),
		VoucherID:   voucherID,
		Position:    defaultPosition,
		AuditFields: newAuditFields(userID, now),
	}
	line.apply(in)
	return line
}

// Update replaces the editable fields of the line.
func (l *EntryLine) Update(in LineInput, userID string, now time.Time) {
	l.apply(in)
	l.Touch(userID, now)
}

func (l *EntryLine) apply(in LineInput) {
	l.AccountCode = strings.TrimSpace(in.AccountCode)
	l.AuxiliaryCode = in.AuxiliaryCode
	l.WorkOrderRef = in.WorkOrderRef
	l.DebitLocal = in.DebitLocal
	l.CreditLocal = in.CreditLocal
	l.DebitHard = in.DebitHard
	l.CreditHard = in.CreditHard
	l.Note = in.Note
	if in.Position != nil {
		l.Position = *in.Position
	}
}

// NextPosition returns the ordering index following the last line.
func NextPosition(lines []EntryLine) int {
	next := 0
	for _, l := range lines {
		if l.Position >= next {
			next = l.Position + 1
		}
	}
	return next
}

// withinScale reports whether d has no significant digits past scale
// decimal places. Trailing zeros are allowed.
func withinScale(d decimal.Decimal, scale int32) bool {
	return d.Truncate(scale).Equal(d)
}
