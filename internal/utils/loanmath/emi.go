package loanmath

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

// MonthlyInstallment computes the reducing-balance equated monthly installment
// for a loan: P*r*(1+r)^n / ((1+r)^n - 1), where r is the monthly rate derived
// from the annual percentage rate and n the term in months. The result is
// rounded to whole shillings, matching what applicants are quoted at intake.
func MonthlyInstallment(principal decimal.Decimal, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	months := decimal.NewFromInt(int64(termMonths))
	monthlyRate := annualRatePercent.Div(decimal.NewFromInt(1200))
	if monthlyRate.IsZero() {
		return principal.DivRound(months, 0)
	}

	growth := one.Add(monthlyRate).Pow(months)
	numerator := principal.Mul(monthlyRate).Mul(growth)
	denominator := growth.Sub(one)
	return numerator.DivRound(denominator, 0)
}

// TotalRepayment returns the installment summed over the full term.
func TotalRepayment(installment decimal.Decimal, termMonths int) decimal.Decimal {
	return installment.Mul(decimal.NewFromInt(int64(termMonths)))
}
