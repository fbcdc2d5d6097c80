package domain

import (
	"strings"
	"unicode"
)

// Auxiliary is a subledger record (customer, bank account, cashbox) that
// entry lines of its account may reference by Code.
type Auxiliary struct {
	AuxiliaryID string `json:"auxiliaryID"`
	CompanyID   int64  `json:"companyID"`
	AccountID   string `json:"accountID"`
	AccountCode string `json:"accountCode"`
	Type        string `json:"type"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	AuditFields
}

// DeriveAuxiliaryCode builds a code from the first three letters of the
// type, the first four alphanumerics of the name and suffix, uppercased.
func DeriveAuxiliaryCode(auxType, name, suffix string) string {
	return strings.ToUpper(takeRunes(auxType, 3, unicode.IsLetter) + takeRunes(name, 4, isAlphanumeric) + suffix)
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func takeRunes(s string, n int, keep func(rune) bool) string {
	var b strings.Builder
	count := 0
	for _, r := range s {
		if count == n {
			break
		}
		if keep(r) {
			b.WriteRune(r)
			count++
		}
	}
	return b.String()
}
