package domain

import (
	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/shopspring/decimal"
)

// balanceTolerance absorbs rounding drift when comparing totals.
var balanceTolerance = decimal.New(1, -2)

// BalanceTolerance returns the fixed 0.01 tolerance used by SumLines.
func BalanceTolerance() decimal.Decimal {
	return balanceTolerance
}

// BalanceResult holds the column totals of a voucher's lines.
type BalanceResult struct {
	LineCount        int             `json:"lineCount"`
	TotalDebitLocal  decimal.Decimal `json:"totalDebitLocal"`
	TotalCreditLocal decimal.Decimal `json:"totalCreditLocal"`
	TotalDebitHard   decimal.Decimal `json:"totalDebitHard"`
	TotalCreditHard  decimal.Decimal `json:"totalCreditHard"`
	DiffLocal        decimal.Decimal `json:"diffLocal"`
	DiffHard         decimal.Decimal `json:"diffHard"`
	Balanced         bool            `json:"balanced"`
}

// SumLines totals the four amount columns. A voucher without lines is never
// balanced.
func SumLines(lines []EntryLine) BalanceResult {
	res := BalanceResult{
		LineCount:        len(lines),
		TotalDebitLocal:  decimal.Zero,
		TotalCreditLocal: decimal.Zero,
		TotalDebitHard:   decimal.Zero,
		TotalCreditHard:  decimal.Zero,
	}
	for _, l := range lines {
		res.TotalDebitLocal = res.TotalDebitLocal.Add(l.DebitLocal)
		res.TotalCreditLocal = res.TotalCreditLocal.Add(l.CreditLocal)
		res.TotalDebitHard = res.TotalDebitHard.Add(l.DebitHard)
		res.TotalCreditHard = res.TotalCreditHard.Add(l.CreditHard)
	}
	res.DiffLocal = res.TotalDebitLocal.Sub(res.TotalCreditLocal).Abs()
	res.DiffHard = res.TotalDebitHard.Sub(res.TotalCreditHard).Abs()
	res.Balanced = res.LineCount > 0 &&
		res.DiffLocal.LessThanOrEqual(balanceTolerance) &&
		res.DiffHard.LessThanOrEqual(balanceTolerance)
	return res
}

// ValidateBalance returns an *apperrors.UnbalancedError unless the lines
// balance in both currencies.
func ValidateBalance(lines []EntryLine) (BalanceResult, error) {
	res := SumLines(lines)
	if res.Balanced {
		return res, nil
	}
	return res, &apperrors.UnbalancedError{
		DiffLocal: res.DiffLocal,
		DiffHard:  res.DiffHard,
		Empty:     res.LineCount == 0,
	}
}
