package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateScale is the number of decimal places stored for exchange rates and
// UFV index readings.
const RateScale = 6

// DraftKind names the workflow that produces a draft voucher.
type DraftKind string

const (
	DraftManual        DraftKind = "Manual"
	DraftOpening       DraftKind = "Opening"
	DraftClosing       DraftKind = "Closing"
	DraftUFVAdjustment DraftKind = "UFVAdjustment"
	DraftAITB          DraftKind = "AITB"
)

// DraftSpec is the closed set of draft producers. Each variant validates its
// own inputs and derives its header fields onto a voucher prepared by NewDraft.
type DraftSpec interface {
	Kind() DraftKind
	derive(v *Voucher) error
}

// ManualDraft is a free-form voucher entered by hand.
type ManualDraft struct {
	Origin       Origin
	VoucherType  VoucherType
	EntryKind    EntryKind
	Date         time.Time
	Period       int
	FiscalYear   int
	ExchangeRate decimal.Decimal
	Concept      string
	Beneficiary  string
	CheckNumber  string
}

// OpeningDraft opens a fiscal year. One per company and year.
type OpeningDraft struct {
	FiscalYear   int
	Date         time.Time
	ExchangeRate decimal.Decimal
	Concept      string
}

// ClosingDraft closes the period ending at DateTo.
type ClosingDraft struct {
	DateFrom     time.Time
	DateTo       time.Time
	ExchangeRate decimal.Decimal
	Concept      string
}

// UFVAdjustmentDraft revalues balances by the change of the UFV index.
type UFVAdjustmentDraft struct {
	FiscalYear int
	DateFrom   time.Time
	DateTo     time.Time
	Concept    string
	UFVInitial decimal.Decimal
	UFVFinal   decimal.Decimal
	USDRate    decimal.Decimal
}

// AITBDraft is the treasury balance adjustment of a bank account for one
// period. One per company, year and period.
type AITBDraft struct {
	BankAccountRef string
	FiscalYear     int
	Period         int
	DateFrom       time.Time
	DateTo         time.Time
	ExchangeRate   decimal.Decimal
	Concept        string
}

var (
	_ DraftSpec = ManualDraft{}
	_ DraftSpec = OpeningDraft{}
	_ DraftSpec = ClosingDraft{}
	_ DraftSpec = UFVAdjustmentDraft{}
	_ DraftSpec = AITBDraft{}
)

// NewDraft builds a header-only Draft voucher for companyID from spec.
// Every variant yields status Draft, no number, local currency and no lines.
func NewDraft(companyID int64, spec DraftSpec, userID string, now time.Time) (*Voucher, error) {
	if companyID <= 0 {
		return nil, validationf("companyId is required")
	}
	if spec == nil {
		return nil, validationf("draft kind is required")
	}
	v := &Voucher{
		VoucherID:   uuid.NewString(),
		CompanyID:   companyID,
		Origin:      OriginAccounting,
		VoucherType: TypeDiary,
		EntryKind:   KindNormal,
		Currency:    LocalCurrency,
		Status:      StatusDraft,
		AuditFields: newAuditFields(userID, now),
		Lines:       []EntryLine{},
	}
	if err := spec.derive(v); err != nil {
		return nil, err
	}
	if err := requirePositive("exchangeRate", v.ExchangeRate); err != nil {
		return nil, err
	}
	if v.Period < 1 || v.Period > 12 {
		return nil, validationf("period must be between 1 and 12")
	}
	if v.FiscalYear <= 0 {
		return nil, validationf("fiscalYear is required")
	}
	return v, nil
}

func (ManualDraft) Kind() DraftKind { return DraftManual }

func (d ManualDraft) derive(v *Voucher) error {
	if d.Date.IsZero() {
		return validationf("date is required")
	}
	if !d.VoucherType.IsValid() {
		return validationf("voucherType %q is not valid", d.VoucherType)
	}
	if d.Origin != "" {
		if !d.Origin.IsValid() {
			return validationf("origin %q is not valid", d.Origin)
		}
		v.Origin = d.Origin
	}
	if d.EntryKind != "" {
		if !d.EntryKind.IsValid() {
			return validationf("entryKind %q is not valid", d.EntryKind)
		}
		if d.EntryKind == KindOpening {
			return validationf("opening vouchers must be created through the opening workflow")
		}
		v.EntryKind = d.EntryKind
	}
	v.VoucherType = d.VoucherType
	v.Date = d.Date
	v.Period = d.Period
	if v.Period == 0 {
		v.Period = int(d.Date.Month())
	}
	v.FiscalYear = d.FiscalYear
	if v.FiscalYear == 0 {
		v.FiscalYear = d.Date.Year()
	}
	v.ExchangeRate = d.ExchangeRate
	v.Concept = strings.TrimSpace(d.Concept)
	v.Beneficiary = strings.TrimSpace(d.Beneficiary)
	v.CheckNumber = strings.TrimSpace(d.CheckNumber)
	return nil
}

func (OpeningDraft) Kind() DraftKind { return DraftOpening }

func (d OpeningDraft) derive(v *Voucher) error {
	if d.FiscalYear <= 0 {
		return validationf("fiscalYear is required")
	}
	if d.Date.IsZero() {
		return validationf("date is required")
	}
	if err := requirePositive("exchangeRate", d.ExchangeRate); err != nil {
		return err
	}
	v.EntryKind = KindOpening
	v.VoucherType = TypeDiary
	v.FiscalYear = d.FiscalYear
	v.Period = 1
	v.Date = d.Date
	v.ExchangeRate = d.ExchangeRate
	v.Concept = strings.TrimSpace(d.Concept)
	if v.Concept == "" {
		v.Concept = fmt.Sprintf("Opening entry for year %d", d.FiscalYear)
	}
	return nil
}

func (ClosingDraft) Kind() DraftKind { return DraftClosing }

func (d ClosingDraft) derive(v *Voucher) error {
	if err := requireRange(d.DateFrom, d.DateTo); err != nil {
		return err
	}
	if err := requirePositive("exchangeRate", d.ExchangeRate); err != nil {
		return err
	}
	concept := strings.TrimSpace(d.Concept)
	if concept == "" {
		return validationf("concept is required")
	}
	v.EntryKind = KindClosing
	v.VoucherType = TypeDiary
	v.Date = d.DateTo
	v.FiscalYear = d.DateTo.Year()
	v.Period = int(d.DateTo.Month())
	v.DateFrom = timePtr(d.DateFrom)
	v.DateTo = timePtr(d.DateTo)
	v.ExchangeRate = d.ExchangeRate
	v.Concept = concept
	return nil
}

func (UFVAdjustmentDraft) Kind() DraftKind { return DraftUFVAdjustment }

func (d UFVAdjustmentDraft) derive(v *Voucher) error {
	if d.FiscalYear <= 0 {
		return validationf("fiscalYear is required")
	}
	if err := requireRange(d.DateFrom, d.DateTo); err != nil {
		return err
	}
	concept := strings.TrimSpace(d.Concept)
	if concept == "" {
		return validationf("concept is required")
	}
	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{{"ufvInitial", d.UFVInitial}, {"ufvFinal", d.UFVFinal}, {"usdRate", d.USDRate}} {
		if err := requirePositive(f.name, f.value); err != nil {
			return err
		}
	}
	v.EntryKind = KindAdjustment
	v.AdjustmentTag = TagUFV
	v.VoucherType = TypeDiary
	v.FiscalYear = d.FiscalYear
	v.Period = int(d.DateTo.Month())
	v.Date = d.DateTo
	v.DateFrom = timePtr(d.DateFrom)
	v.DateTo = timePtr(d.DateTo)
	v.ExchangeRate = d.USDRate
	v.UFVInitial = decimalPtr(d.UFVInitial)
	v.UFVFinal = decimalPtr(d.UFVFinal)
	v.Concept = concept
	return nil
}

func (AITBDraft) Kind() DraftKind { return DraftAITB }

func (d AITBDraft) derive(v *Voucher) error {
	bankRef := strings.TrimSpace(d.BankAccountRef)
	if bankRef == "" {
		return validationf("bankAccountRef is required")
	}
	if d.FiscalYear <= 0 {
		return validationf("fiscalYear is required")
	}
	if d.Period < 1 || d.Period > 12 {
		return validationf("period must be between 1 and 12")
	}
	if err := requireRange(d.DateFrom, d.DateTo); err != nil {
		return err
	}
	if err := requirePositive("exchangeRate", d.ExchangeRate); err != nil {
		return err
	}
	v.Origin = OriginTreasury
	v.EntryKind = KindAdjustment
	v.AdjustmentTag = TagAITB
	v.VoucherType = TypeDiary
	v.BankAccountRef = &bankRef
	v.FiscalYear = d.FiscalYear
	v.Period = d.Period
	v.Date = d.DateTo
	v.DateFrom = timePtr(d.DateFrom)
	v.DateTo = timePtr(d.DateTo)
	v.ExchangeRate = d.ExchangeRate
	v.Concept = strings.TrimSpace(d.Concept)
	if v.Concept == "" {
		v.Concept = fmt.Sprintf("AITB adjustment %d/%d", d.Period, d.FiscalYear)
	}
	return nil
}

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}

// requirePositive checks a rate or index reading: greater than zero and no
// finer than RateScale.
func requirePositive(name string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return validationf("%s must be greater than zero", name)
	}
	if !withinScale(d, RateScale) {
		return validationf("%s allows at most %d decimal places", name, RateScale)
	}
	return nil
}

func requireRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return validationf("dateFrom and dateTo are required")
	}
	if to.Before(from) {
		return validationf("dateTo must not be before dateFrom")
	}
	return nil
}

func timePtr(t time.Time) *time.Time { return &t }

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }
