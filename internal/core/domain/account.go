package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// Account is an entry of a company's chart of accounts. Entry lines
// reference it by Code.
type Account struct {
	AccountID   string      `json:"accountID"`
	CompanyID   int64       `json:"companyID"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	IsActive    bool        `json:"isActive"`
	AuditFields
}
