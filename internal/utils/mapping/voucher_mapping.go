package mapping

import (
	"github.com/SscSPs/adops_erp/internal/core/domain"
	"github.com/SscSPs/adops_erp/internal/models"
)

// ToModelVoucher converts a domain Voucher header to a model Voucher.
// Lines are mapped separately.
func ToModelVoucher(d domain.Voucher) models.Voucher {
	var tag *string
	if d.AdjustmentTag != domain.TagNone {
		t := string(d.AdjustmentTag)
		tag = &t
	}
	return models.Voucher{
		VoucherID:      d.VoucherID,
		CompanyID:      d.CompanyID,
		Number:         d.Number,
		Origin:         string(d.Origin),
		VoucherType:    string(d.VoucherType),
		EntryKind:      string(d.EntryKind),
		AdjustmentTag:  tag,
		Date:           d.Date,
		Period:         d.Period,
		FiscalYear:     d.FiscalYear,
		DateFrom:       d.DateFrom,
		DateTo:         d.DateTo,
		Currency:       d.Currency,
		ExchangeRate:   d.ExchangeRate,
		UFVInitial:     d.UFVInitial,
		UFVFinal:       d.UFVFinal,
		BankAccountRef: d.BankAccountRef,
		Concept:        d.Concept,
		Beneficiary:    d.Beneficiary,
		CheckNumber:    d.CheckNumber,
		Status:         string(d.Status),
		ApprovedAt:     d.ApprovedAt,
		ApprovedBy:     d.ApprovedBy,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model Voucher to a domain Voucher without lines.
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	var tag domain.AdjustmentTag
	if m.AdjustmentTag != nil {
		tag = domain.AdjustmentTag(*m.AdjustmentTag)
	}
	return domain.Voucher{
		VoucherID:      m.VoucherID,
		CompanyID:      m.CompanyID,
		Number:         m.Number,
		Origin:         domain.Origin(m.Origin),
		VoucherType:    domain.VoucherType(m.VoucherType),
		EntryKind:      domain.EntryKind(m.EntryKind),
		AdjustmentTag:  tag,
		Date:           m.Date,
		Period:         m.Period,
		FiscalYear:     m.FiscalYear,
		DateFrom:       m.DateFrom,
		DateTo:         m.DateTo,
		Currency:       m.Currency,
		ExchangeRate:   m.ExchangeRate,
		UFVInitial:     m.UFVInitial,
		UFVFinal:       m.UFVFinal,
		BankAccountRef: m.BankAccountRef,
		Concept:        m.Concept,
		Beneficiary:    m.Beneficiary,
		CheckNumber:    m.CheckNumber,
		Status:         domain.VoucherStatus(m.Status),
		ApprovedAt:     m.ApprovedAt,
		ApprovedBy:     m.ApprovedBy,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVoucherSlice converts a slice of model Vouchers.
func ToDomainVoucherSlice(ms []models.Voucher) []domain.Voucher {
	ds := make([]domain.Voucher, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVoucher(m)
	}
	return ds
}

// ToModelEntryLine converts a domain EntryLine to a model EntryLine
func ToModelEntryLine(d domain.EntryLine) models.EntryLine {
	return models.EntryLine{
		LineID:        d.LineID,
		VoucherID:     d.VoucherID,
		AccountCode:   d.AccountCode,
		AuxiliaryCode: d.AuxiliaryCode,
		WorkOrderRef:  d.WorkOrderRef,
		DebitLocal:    d.DebitLocal,
		CreditLocal:   d.CreditLocal,
		DebitHard:     d.DebitHard,
		CreditHard:    d.CreditHard,
		Position:      d.Position,
		Note:          d.Note,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntryLine converts a model EntryLine to a domain EntryLine
func ToDomainEntryLine(m models.EntryLine) domain.EntryLine {
	return domain.EntryLine{
		LineID:        m.LineID,
		VoucherID:     m.VoucherID,
		AccountCode:   m.AccountCode,
		AuxiliaryCode: m.AuxiliaryCode,
		WorkOrderRef:  m.WorkOrderRef,
		DebitLocal:    m.DebitLocal,
		CreditLocal:   m.CreditLocal,
		DebitHard:     m.DebitHard,
		CreditHard:    m.CreditHard,
		Position:      m.Position,
		Note:          m.Note,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEntryLineSlice converts a slice of model EntryLines.
func ToDomainEntryLineSlice(ms []models.EntryLine) []domain.EntryLine {
	ds := make([]domain.EntryLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntryLine(m)
	}
	return ds
}
