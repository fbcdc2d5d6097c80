package mapping

import (
	"github.com/SscSPs/adops_erp/internal/core/domain"
	"github.com/SscSPs/adops_erp/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		CompanyID:   m.CompanyID,
		Code:        m.Code,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAuxiliary converts a model Auxiliary to a domain Auxiliary
func ToDomainAuxiliary(m models.Auxiliary) domain.Auxiliary {
	return domain.Auxiliary{
		AuxiliaryID: m.AuxiliaryID,
		CompanyID:   m.CompanyID,
		AccountID:   m.AccountID,
		AccountCode: m.AccountCode,
		Type:        m.Type,
		Code:        m.Code,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAuxiliary converts a domain Auxiliary to a model Auxiliary
func ToModelAuxiliary(d domain.Auxiliary) models.Auxiliary {
	return models.Auxiliary{
		AuxiliaryID: d.AuxiliaryID,
		CompanyID:   d.CompanyID,
		AccountID:   d.AccountID,
		AccountCode: d.AccountCode,
		Type:        d.Type,
		Code:        d.Code,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}
