package models

// Auxiliary is a subledger record attached to an account.
type Auxiliary struct {
	AuxiliaryID string `db:"auxiliary_id"`
	CompanyID   int64  `db:"company_id"`
	AccountID   string `db:"account_id"`
	AccountCode string `db:"account_code"`
	Type        string `db:"aux_type"`
	Code        string `db:"code"`
	Name        string `db:"name"`
	AuditFields
}
