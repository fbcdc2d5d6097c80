package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher is a row of the vouchers table. Number stays NULL until approval
// and AdjustmentTag is NULL for non-adjustment vouchers.
type Voucher struct {
	VoucherID      string           `db:"voucher_id"`
	CompanyID      int64            `db:"company_id"`
	Number         *string          `db:"number"`
	Origin         string           `db:"origin"`
	VoucherType    string           `db:"voucher_type"`
	EntryKind      string           `db:"entry_kind"`
	AdjustmentTag  *string          `db:"adjustment_tag"`
	Date           time.Time        `db:"voucher_date"`
	Period         int              `db:"period"`
	FiscalYear     int              `db:"fiscal_year"`
	DateFrom       *time.Time       `db:"date_from"`
	DateTo         *time.Time       `db:"date_to"`
	Currency       string           `db:"currency"`
	ExchangeRate   decimal.Decimal  `db:"exchange_rate"`
	UFVInitial     *decimal.Decimal `db:"ufv_initial"`
	UFVFinal       *decimal.Decimal `db:"ufv_final"`
	BankAccountRef *string          `db:"bank_account_ref"`
	Concept        string           `db:"concept"`
	Beneficiary    string           `db:"beneficiary"`
	CheckNumber    string           `db:"check_number"`
	Status         string           `db:"status"`
	ApprovedAt     *time.Time       `db:"approved_at"`
	ApprovedBy     *string          `db:"approved_by"`
	AuditFields
}

// EntryLine is a row of the voucher_lines table.
type EntryLine struct {
	LineID        string          `db:"line_id"`
	VoucherID     string          `db:"voucher_id"`
	AccountCode   string          `db:"account_code"`
	AuxiliaryCode *string         `db:"auxiliary_code"`
	WorkOrderRef  *string         `db:"work_order_ref"`
	DebitLocal    decimal.Decimal `db:"debit_local"`
	CreditLocal   decimal.Decimal `db:"credit_local"`
	DebitHard     decimal.Decimal `db:"debit_hard"`
	CreditHard    decimal.Decimal `db:"credit_hard"`
	Position      int             `db:"position"`
	Note          string          `db:"note"`
	AuditFields
}
