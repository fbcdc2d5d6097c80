package domain_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/SscSPs/adops_erp/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(dL, cL, dH, cH string) domain.EntryLine {
	return domain.EntryLine{
		DebitLocal:  decimal.RequireFromString(dL),
		CreditLocal: decimal.RequireFromString(cL),
		DebitHard:   decimal.RequireFromString(dH),
		CreditHard:  decimal.RequireFromString(cH),
	}
}

func TestValidateBalance(t *testing.T) {
	tests := []struct {
		name      string
		lines     []domain.EntryLine
		balanced  bool
		diffLocal string
		diffHard  string
	}{
		{
			name:     "balanced in both currencies",
			lines:    []domain.EntryLine{line("1000", "0", "143.68", "0"), line("0", "1000", "0", "143.68")},
			balanced: true, diffLocal: "0", diffHard: "0",
		},
		{
			name:     "within tolerance",
			lines:    []domain.EntryLine{line("100.01", "0", "14.37", "0"), line("0", "100", "0", "14.36")},
			balanced: true, diffLocal: "0.01", diffHard: "0.01",
		},
		{
			name:     "local off by half",
			lines:    []domain.EntryLine{line("1000", "0", "0", "0"), line("0", "999.50", "0", "0")},
			balanced: false, diffLocal: "0.5", diffHard: "0",
		},
		{
			name:     "hard side off",
			lines:    []domain.EntryLine{line("1000", "0", "143.68", "0"), line("0", "1000", "0", "143.60")},
			balanced: false, diffLocal: "0", diffHard: "0.08",
		},
		{
			name:     "credit exceeds debit",
			lines:    []domain.EntryLine{line("10", "0", "0", "0"), line("0", "12.5", "0", "0")},
			balanced: false, diffLocal: "2.5", diffHard: "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := domain.ValidateBalance(tt.lines)
			assert.Equal(t, tt.balanced, res.Balanced)
			assert.True(t, res.DiffLocal.Equal(decimal.RequireFromString(tt.diffLocal)), "diffLocal %s", res.DiffLocal)
			assert.True(t, res.DiffHard.Equal(decimal.RequireFromString(tt.diffHard)), "diffHard %s", res.DiffHard)
			if tt.balanced {
				assert.NoError(t, err)
				return
			}
			var ue *apperrors.UnbalancedError
			require.True(t, errors.As(err, &ue))
			assert.True(t, ue.DiffLocal.Equal(res.DiffLocal))
			assert.True(t, ue.DiffHard.Equal(res.DiffHard))
			assert.False(t, ue.Empty)
		})
	}
}

func TestValidateBalance_NoLines(t *testing.T) {
	res, err := domain.ValidateBalance(nil)
	assert.False(t, res.Balanced)
	assert.Equal(t, 0, res.LineCount)
	assert.ErrorIs(t, err, apperrors.ErrUnbalanced)

	var ue *apperrors.UnbalancedError
	require.True(t, errors.As(err, &ue))
	assert.True(t, ue.Empty)
	assert.True(t, ue.DiffLocal.IsZero())
}

func TestSumLines_Totals(t *testing.T) {
	res := domain.SumLines([]domain.EntryLine{line("600", "0", "86.21", "0"), line("400", "0", "57.47", "0"), line("0", "1000", "0", "143.68")})
	assert.Equal(t, 3, res.LineCount)
	assert.Equal(t, "1000", res.TotalDebitLocal.String())
	assert.Equal(t, "143.68", res.TotalDebitHard.String())
	assert.True(t, res.Balanced)
}

func TestBalanceTolerance_IsFixed(t *testing.T) {
	assert.True(t, domain.BalanceTolerance().Equal(decimal.RequireFromString("0.01")))

	// the returned copy cannot widen the tolerance used by the validator
	widened := domain.BalanceTolerance().Add(decimal.NewFromInt(1))
	assert.True(t, widened.Equal(decimal.RequireFromString("1.01")))
	assert.True(t, domain.BalanceTolerance().Equal(decimal.RequireFromString("0.01")))

	res := domain.SumLines([]domain.EntryLine{line("100.02", "0", "0", "0"), line("0", "100", "0", "0")})
	assert.False(t, res.Balanced)
}
