package dto

import (
	"time"

	"github.com/SscSPs/adops_erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryLineRequest is the body for adding or replacing an entry line.
// Missing amounts default to zero.
type EntryLineRequest struct {
	AccountCode   string          `json:"accountCode" binding:"required,max=50"`
	AuxiliaryCode *string         `json:"auxiliaryCode" binding:"omitempty,max=50"`
	WorkOrderRef  *string         `json:"workOrderRef" binding:"omitempty,max=50"`
	DebitLocal    decimal.Decimal `json:"debitLocal"`
	CreditLocal   decimal.Decimal `json:"creditLocal"`
	DebitHard     decimal.Decimal `json:"debitHard"`
	CreditHard    decimal.Decimal `json:"creditHard"`
	Position      *int            `json:"position" binding:"omitempty,min=0"`
	Note          string          `json:"note" binding:"max=500"`
}

func (r EntryLineRequest) ToInput() domain.LineInput {
	return domain.LineInput{
		AccountCode:   r.AccountCode,
		AuxiliaryCode: emptyToNil(r.AuxiliaryCode),
		WorkOrderRef:  emptyToNil(r.WorkOrderRef),
		DebitLocal:    r.DebitLocal,
		CreditLocal:   r.CreditLocal,
		DebitHard:     r.DebitHard,
		CreditHard:    r.CreditHard,
		Position:      r.Position,
		Note:          r.Note,
	}
}

// EntryLineResponse defines the data returned for an entry line.
type EntryLineResponse struct {
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
	Note          string          `json:"note,omitempty"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToEntryLineResponse converts a domain.EntryLine to EntryLineResponse DTO.
func ToEntryLineResponse(l *domain.EntryLine) EntryLineResponse {
	return EntryLineResponse{
		LineID:        l.LineID,
		VoucherID:     l.VoucherID,
		AccountCode:   l.AccountCode,
		AuxiliaryCode: l.AuxiliaryCode,
		WorkOrderRef:  l.WorkOrderRef,
		DebitLocal:    l.DebitLocal,
		CreditLocal:   l.CreditLocal,
		DebitHard:     l.DebitHard,
		CreditHard:    l.CreditHard,
		Position:      l.Position,
		Note:          l.Note,
		LastUpdatedAt: l.LastUpdatedAt,
		LastUpdatedBy: l.LastUpdatedBy,
	}
}

// ToEntryLineResponses converts a slice of domain.EntryLine to []EntryLineResponse.
func ToEntryLineResponses(lines []domain.EntryLine) []EntryLineResponse {
	responses := make([]EntryLineResponse, len(lines))
	for i := range lines {
		responses[i] = ToEntryLineResponse(&lines[i])
	}
	return responses
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
