package loanmath_test

import (
	"testing"

	"github.com/stgabriel-shg/shg_backend/internal/utils/loanmath"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyInstallment(t *testing.T) {
	twelvePercent := decimal.NewFromInt(12)

	tests := []struct {
		name       string
		principal  int64
		rate       decimal.Decimal
		termMonths int
		want       int64
	}{
		{"100k over 12 months at 12%", 100_000, twelvePercent, 12, 8885},
		{"50k over 12 months at 12%", 50_000, twelvePercent, 12, 4442},
		{"zero rate splits principal evenly", 12_000, decimal.Zero, 12, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := loanmath.MonthlyInstallment(decimal.NewFromInt(tt.principal), tt.rate, tt.termMonths)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s, want %d", got.String(), tt.want)
		})
	}
}

func TestMonthlyInstallment_DegenerateInputs(t *testing.T) {
	assert.True(t, loanmath.MonthlyInstallment(decimal.Zero, decimal.NewFromInt(12), 12).IsZero())
	assert.True(t, loanmath.MonthlyInstallment(decimal.NewFromInt(10_000), decimal.NewFromInt(12), 0).IsZero())
	assert.True(t, loanmath.MonthlyInstallment(decimal.NewFromInt(-5), decimal.NewFromInt(12), 12).IsZero())
}

func TestTotalRepayment(t *testing.T) {
	installment := decimal.NewFromInt(8885)
	total := loanmath.TotalRepayment(installment, 12)
	assert.True(t, total.Equal(decimal.NewFromInt(106_620)))
}
