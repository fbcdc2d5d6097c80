package dto

import "github.com/SscSPs/adops_erp/internal/core/domain"

// EnsureAuxiliaryRequest finds or creates a subledger record. When Code is
// omitted one is derived from Type and Name.
type EnsureAuxiliaryRequest struct {
	AccountID string  `json:"accountID" binding:"required"`
	Type      string  `json:"type" binding:"required,max=50"`
	Code      *string `json:"code" binding:"omitempty,max=50"`
	Name      string  `json:"name" binding:"required,max=200"`
}

// AuxiliaryResponse defines the data returned for an auxiliary.
type AuxiliaryResponse struct {
	AuxiliaryID string `json:"auxiliaryID"`
	AccountID   string `json:"accountID"`
	AccountCode string `json:"accountCode"`
	Type        string `json:"type"`
	Code        string `json:"code"`
	Name        string `json:"name"`
}

// ToAuxiliaryResponse converts a domain.Auxiliary to AuxiliaryResponse DTO.
func ToAuxiliaryResponse(a *domain.Auxiliary) AuxiliaryResponse {
	return AuxiliaryResponse{
		AuxiliaryID: a.AuxiliaryID,
		AccountID:   a.AccountID,
		AccountCode: a.AccountCode,
		Type:        a.Type,
		Code:        a.Code,
		Name:        a.Name,
	}
}
