package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/shopspring/decimal"
)

// LocalCurrency is the booking currency of every voucher.
const LocalCurrency = "BOB"

// VoucherStatus is the lifecycle state of a voucher. Draft is initial,
// Approved is terminal.
type VoucherStatus string

const (
	StatusDraft    VoucherStatus = "Draft"
	StatusApproved VoucherStatus = "Approved"
)

// Origin is the business area that produced the voucher.
type Origin string

const (
	OriginAccounting Origin = "Accounting"
	OriginSales      Origin = "Sales"
	OriginTreasury   Origin = "Treasury"
	OriginAssets     Origin = "Assets"
	OriginPayroll    Origin = "Payroll"
)

// VoucherType scopes correlative numbering.
type VoucherType string

const (
	TypeIncome        VoucherType = "Income"
	TypeExpense       VoucherType = "Expense"
	TypeDiary         VoucherType = "Diary"
	TypeTransfer      VoucherType = "Transfer"
	TypePayablesEntry VoucherType = "PayablesEntry"
)

// EntryKind classifies the accounting purpose of a voucher.
type EntryKind string

const (
	KindNormal     EntryKind = "Normal"
	KindOpening    EntryKind = "Opening"
	KindClosing    EntryKind = "Closing"
	KindAdjustment EntryKind = "Adjustment"
)

// AdjustmentTag identifies which adjustment workflow produced an
// Adjustment voucher.
type AdjustmentTag string

const (
	TagNone AdjustmentTag = ""
	TagAITB AdjustmentTag = "AITB"
	TagUFV  AdjustmentTag = "UFV"
)

var (
	validOrigins      = []Origin{OriginAccounting, OriginSales, OriginTreasury, OriginAssets, OriginPayroll}
	validVoucherTypes = []VoucherType{TypeIncome, TypeExpense, TypeDiary, TypeTransfer, TypePayablesEntry}
	validEntryKinds   = []EntryKind{KindNormal, KindOpening, KindClosing, KindAdjustment}
)

func (o Origin) IsValid() bool {
	for _, v := range validOrigins {
		if o == v {
			return true
		}
	}
	return false
}

func (t VoucherType) IsValid() bool {
	for _, v := range validVoucherTypes {
		if t == v {
			return true
		}
	}
	return false
}

func (k EntryKind) IsValid() bool {
	for _, v := range validEntryKinds {
		if k == v {
			return true
		}
	}
	return false
}

func (s VoucherStatus) IsValid() bool {
	return s == StatusDraft || s == StatusApproved
}

// Voucher is a double-entry journal voucher header with its lines.
type Voucher struct {
	VoucherID      string           `json:"voucherID"`
	CompanyID      int64            `json:"companyID"`
	Number         *string          `json:"number"`
	Origin         Origin           `json:"origin"`
	VoucherType    VoucherType      `json:"voucherType"`
	EntryKind      EntryKind        `json:"entryKind"`
	AdjustmentTag  AdjustmentTag    `json:"adjustmentTag,omitempty"`
	Date           time.Time        `json:"date"`
	Period         int              `json:"period"`
	FiscalYear     int              `json:"fiscalYear"`
	DateFrom       *time.Time       `json:"dateFrom,omitempty"`
	DateTo         *time.Time       `json:"dateTo,omitempty"`
	Currency       string           `json:"currency"`
	ExchangeRate   decimal.Decimal  `json:"exchangeRate"`
	UFVInitial     *decimal.Decimal `json:"ufvInitial,omitempty"`
	UFVFinal       *decimal.Decimal `json:"ufvFinal,omitempty"`
	BankAccountRef *string          `json:"bankAccountRef,omitempty"`
	Concept        string           `json:"concept"`
	Beneficiary    string           `json:"beneficiary"`
	CheckNumber    string           `json:"checkNumber"`
	Status         VoucherStatus    `json:"status"`
	ApprovedAt     *time.Time       `json:"approvedAt,omitempty"`
	ApprovedBy     *string          `json:"approvedBy,omitempty"`
	AuditFields
	Lines []EntryLine `json:"lines"`
}

// IsDraft reports whether the voucher can still be edited.
func (v *Voucher) IsDraft() bool {
	return v.Status == StatusDraft
}

// Approve performs the Draft to Approved transition with the allocated number.
func (v *Voucher) Approve(number, userID string, now time.Time) error {
	if !v.IsDraft() {
		return apperrors.ErrAlreadyApproved
	}
	if number == "" {
		return fmt.Errorf("%w: approval requires a correlative number", apperrors.ErrValidation)
	}
	v.Status = StatusApproved
	v.Number = &number
	v.ApprovedAt = &now
	v.ApprovedBy = &userID
	v.Touch(userID, now)
	return nil
}

// PeriodScope is the uniqueness scope of Opening and AITB vouchers.
// Period is zero for Opening scopes.
type PeriodScope struct {
	EntryKind  EntryKind
	Tag        AdjustmentTag
	FiscalYear int
	Period     int
}

// Key is a stable string identifying the scope within a company.
func (s PeriodScope) Key(companyID int64) string {
	if s.EntryKind == KindOpening {
		return fmt.Sprintf("voucher-scope:%d:opening:%d", companyID, s.FiscalYear)
	}
	return fmt.Sprintf("voucher-scope:%d:%s:%d:%d", companyID, s.Tag, s.FiscalYear, s.Period)
}

// Matches reports whether v belongs to the scope.
func (s PeriodScope) Matches(v *Voucher) bool {
	other, ok := v.PeriodScope()
	return ok && other == s
}

// PeriodScope returns the duplicate-period scope the voucher falls into.
// Only Opening vouchers and AITB adjustments are scoped.
func (v *Voucher) PeriodScope() (PeriodScope, bool) {
	switch {
	case v.EntryKind == KindOpening:
		return PeriodScope{EntryKind: KindOpening, FiscalYear: v.FiscalYear}, true
	case v.EntryKind == KindAdjustment && v.AdjustmentTag == TagAITB:
		return PeriodScope{EntryKind: KindAdjustment, Tag: TagAITB, FiscalYear: v.FiscalYear, Period: v.Period}, true
	}
	return PeriodScope{}, false
}

// VoucherFilter narrows voucher listings.
type VoucherFilter struct {
	Status      *VoucherStatus
	VoucherType *VoucherType
	FiscalYear  *int
}
