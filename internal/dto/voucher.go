package dto

import (
	"time"

	"github.com/SscSPs/adops_erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateManualVoucherRequest is the body of POST /vouchers/manual.
type CreateManualVoucherRequest struct {
	Origin       domain.Origin      `json:"origin" binding:"omitempty,voucher_origin"`
	VoucherType  domain.VoucherType `json:"voucherType" binding:"required,voucher_type"`
	EntryKind    domain.EntryKind   `json:"entryKind" binding:"omitempty,entry_kind"`
	Date         time.Time          `json:"date" binding:"required"`
	Period       int                `json:"period" binding:"omitempty,period"`
	FiscalYear   int                `json:"fiscalYear" binding:"omitempty,gt=0"`
	ExchangeRate decimal.Decimal    `json:"exchangeRate"`
	Concept      string             `json:"concept" binding:"max=500"`
	Beneficiary  string             `json:"beneficiary" binding:"max=200"`
	CheckNumber  string             `json:"checkNumber" binding:"max=50"`
}

func (r CreateManualVoucherRequest) ToSpec() domain.DraftSpec {
	return domain.ManualDraft{
		Origin:       r.Origin,
		VoucherType:  r.VoucherType,
		EntryKind:    r.EntryKind,
		Date:         r.Date,
		Period:       r.Period,
		FiscalYear:   r.FiscalYear,
		ExchangeRate: r.ExchangeRate,
		Concept:      r.Concept,
		Beneficiary:  r.Beneficiary,
		CheckNumber:  r.CheckNumber,
	}
}

// CreateOpeningVoucherRequest is the body of POST /vouchers/opening.
type CreateOpeningVoucherRequest struct {
	FiscalYear   int             `json:"fiscalYear" binding:"required,gt=0"`
	Date         time.Time       `json:"date" binding:"required"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	Concept      string          `json:"concept" binding:"max=500"`
}

func (r CreateOpeningVoucherRequest) ToSpec() domain.DraftSpec {
	return domain.OpeningDraft{
		FiscalYear:   r.FiscalYear,
		Date:         r.Date,
		ExchangeRate: r.ExchangeRate,
		Concept:      r.Concept,
	}
}

// CreateClosingVoucherRequest is the body of POST /vouchers/closing.
type CreateClosingVoucherRequest struct {
	DateFrom     time.Time       `json:"dateFrom" binding:"required"`
	DateTo       time.Time       `json:"dateTo" binding:"required"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	Concept      string          `json:"concept" binding:"required,max=500"`
}

func (r CreateClosingVoucherRequest) ToSpec() domain.DraftSpec {
	return domain.ClosingDraft{
		DateFrom:     r.DateFrom,
		DateTo:       r.DateTo,
		ExchangeRate: r.ExchangeRate,
		Concept:      r.Concept,
	}
}

// CreateUFVAdjustmentRequest is the body of POST /vouchers/ufv-adjustment.
type CreateUFVAdjustmentRequest struct {
	FiscalYear int             `json:"fiscalYear" binding:"required,gt=0"`
	DateFrom   time.Time       `json:"dateFrom" binding:"required"`
	DateTo     time.Time       `json:"dateTo" binding:"required"`
	Concept    string          `json:"concept" binding:"required,max=500"`
	UFVInitial decimal.Decimal `json:"ufvInitial"`
	UFVFinal   decimal.Decimal `json:"ufvFinal"`
	USDRate    decimal.Decimal `json:"usdRate"`
}

func (r CreateUFVAdjustmentRequest) ToSpec() domain.DraftSpec {
	return domain.UFVAdjustmentDraft{
		FiscalYear: r.FiscalYear,
		DateFrom:   r.DateFrom,
		DateTo:     r.DateTo,
		Concept:    r.Concept,
		UFVInitial: r.UFVInitial,
		UFVFinal:   r.UFVFinal,
		USDRate:    r.USDRate,
	}
}

// CreateAITBVoucherRequest is the body of POST /vouchers/aitb.
type CreateAITBVoucherRequest struct {
	BankAccountRef string          `json:"bankAccountRef" binding:"required,max=100"`
	FiscalYear     int             `json:"fiscalYear" binding:"required,gt=0"`
	Period         int             `json:"period" binding:"required,period"`
	DateFrom       time.Time       `json:"dateFrom" binding:"required"`
	DateTo         time.Time       `json:"dateTo" binding:"required"`
	ExchangeRate   decimal.Decimal `json:"exchangeRate"`
	Concept        string          `json:"concept" binding:"max=500"`
}

func (r CreateAITBVoucherRequest) ToSpec() domain.DraftSpec {
	return domain.AITBDraft{
		BankAccountRef: r.BankAccountRef,
		FiscalYear:     r.FiscalYear,
		Period:         r.Period,
		DateFrom:       r.DateFrom,
		DateTo:         r.DateTo,
		ExchangeRate:   r.ExchangeRate,
		Concept:        r.Concept,
	}
}

// ListVouchersParams defines query parameters for listing vouchers.
type ListVouchersParams struct {
	Limit       int                   `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken   *string               `form:"nextToken"`
	Status      *domain.VoucherStatus `form:"status" binding:"omitempty,voucher_status"`
	VoucherType *domain.VoucherType   `form:"voucherType" binding:"omitempty,voucher_type"`
	FiscalYear  *int                  `form:"fiscalYear" binding:"omitempty,gt=0"`
}

// Filter extracts the repository filter from the query parameters.
func (p ListVouchersParams) Filter() domain.VoucherFilter {
	return domain.VoucherFilter{
		Status:      p.Status,
		VoucherType: p.VoucherType,
		FiscalYear:  p.FiscalYear,
	}
}

// VoucherResponse defines the data returned for a voucher.
type VoucherResponse struct {
	VoucherID      string               `json:"voucherID"`
	CompanyID      int64                `json:"companyID"`
	Number         *string              `json:"number"`
	Status         domain.VoucherStatus `json:"status"`
	Origin         domain.Origin        `json:"origin"`
	VoucherType    domain.VoucherType   `json:"voucherType"`
	EntryKind      domain.EntryKind     `json:"entryKind"`
	AdjustmentTag  domain.AdjustmentTag `json:"adjustmentTag,omitempty"`
	Date           time.Time            `json:"date"`
	Period         int                  `json:"period"`
	FiscalYear     int                  `json:"fiscalYear"`
	DateFrom       *time.Time           `json:"dateFrom,omitempty"`
	DateTo         *time.Time           `json:"dateTo,omitempty"`
	Currency       string               `json:"currency"`
	ExchangeRate   decimal.Decimal      `json:"exchangeRate"`
	UFVInitial     *decimal.Decimal     `json:"ufvInitial,omitempty"`
	UFVFinal       *decimal.Decimal     `json:"ufvFinal,omitempty"`
	BankAccountRef *string              `json:"bankAccountRef,omitempty"`
	Concept        string               `json:"concept"`
	Beneficiary    string               `json:"beneficiary,omitempty"`
	CheckNumber    string               `json:"checkNumber,omitempty"`
	ApprovedAt     *time.Time           `json:"approvedAt,omitempty"`
	ApprovedBy     *string              `json:"approvedBy,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	CreatedBy      string               `json:"createdBy"`
	LastUpdatedAt  time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy  string               `json:"lastUpdatedBy"`
	Lines          []EntryLineResponse  `json:"lines"`
}

// ListVouchersResponse wraps a page of vouchers.
type ListVouchersResponse struct {
	Vouchers  []VoucherResponse `json:"vouchers"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// BalanceResponse is the result of a balance check.
type BalanceResponse struct {
	VoucherID        string          `json:"voucherID"`
	LineCount        int             `json:"lineCount"`
	TotalDebitLocal  decimal.Decimal `json:"totalDebitLocal"`
	TotalCreditLocal decimal.Decimal `json:"totalCreditLocal"`
	TotalDebitHard   decimal.Decimal `json:"totalDebitHard"`
	TotalCreditHard  decimal.Decimal `json:"totalCreditHard"`
	DiffLocal        decimal.Decimal `json:"diffLocal"`
	DiffHard         decimal.Decimal `json:"diffHard"`
	Balanced         bool            `json:"balanced"`
}

// ToVoucherResponse converts a domain.Voucher to VoucherResponse DTO.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	return VoucherResponse{
		VoucherID:      v.VoucherID,
		CompanyID:      v.CompanyID,
		Number:         v.Number,
		Status:         v.Status,
		Origin:         v.Origin,
		VoucherType:    v.VoucherType,
		EntryKind:      v.EntryKind,
		AdjustmentTag:  v.AdjustmentTag,
		Date:           v.Date,
		Period:         v.Period,
		FiscalYear:     v.FiscalYear,
		DateFrom:       v.DateFrom,
		DateTo:         v.DateTo,
		Currency:       v.Currency,
		ExchangeRate:   v.ExchangeRate,
		UFVInitial:     v.UFVInitial,
		UFVFinal:       v.UFVFinal,
		BankAccountRef: v.BankAccountRef,
		Concept:        v.Concept,
		Beneficiary:    v.Beneficiary,
		CheckNumber:    v.CheckNumber,
		ApprovedAt:     v.ApprovedAt,
		ApprovedBy:     v.ApprovedBy,
		CreatedAt:      v.CreatedAt,
		CreatedBy:      v.CreatedBy,
		LastUpdatedAt:  v.LastUpdatedAt,
		LastUpdatedBy:  v.LastUpdatedBy,
		Lines:          ToEntryLineResponses(v.Lines),
	}
}

// ToVoucherResponses converts a slice of domain.Voucher to []VoucherResponse.
func ToVoucherResponses(vs []domain.Voucher) []VoucherResponse {
	responses := make([]VoucherResponse, len(vs))
	for i := range vs {
		responses[i] = ToVoucherResponse(&vs[i])
	}
	return responses
}

// ToBalanceResponse converts a domain.BalanceResult for voucherID.
func ToBalanceResponse(voucherID string, b domain.BalanceResult) BalanceResponse {
	return BalanceResponse{
		VoucherID:        voucherID,
		LineCount:        b.LineCount,
		TotalDebitLocal:  b.TotalDebitLocal,
		TotalCreditLocal: b.TotalCreditLocal,
		TotalDebitHard:   b.TotalDebitHard,
		TotalCreditHard:  b.TotalCreditHard,
		DiffLocal:        b.DiffLocal,
		DiffHard:         b.DiffHard,
		Balanced:         b.Balanced,
	}
}
