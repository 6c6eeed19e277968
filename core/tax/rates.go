// Package tax computes Kazakhstan payroll tax components from a gross
// monthly salary. Everything here is pure arithmetic over decimals.
package tax

import "github.com/shopspring/decimal"

const (
	// MonthlyCalculationIndex is the МРП in tenge
	MonthlyCalculationIndex = 3450

	// ThresholdMultiplier is how many МРП are exempt from income tax
	ThresholdMultiplier = 14
)

// Statutory rates. They are fixed on purpose; nothing reads them from
// configuration.
var (
	// PensionRate is ОПВ
	PensionRate = decimal.New(10, -2)

	// MedicalSocialRate is ВОСМС
	MedicalSocialRate = decimal.New(2, -2)

	// IncomeTaxRate is ИПН
	IncomeTaxRate = decimal.New(10, -2)

	// SocialContributionRate is СО
	SocialContributionRate = decimal.New(35, -3)

	// SocialTaxRate is СН
	SocialTaxRate = decimal.New(95, -3)

	// MedicalInsuranceRate is ОСМС
	MedicalInsuranceRate = decimal.New(3, -2)
)

// BasicThreshold returns 14 МРП, the income tax exemption
func BasicThreshold() decimal.Decimal {
	return decimal.NewFromInt(ThresholdMultiplier * MonthlyCalculationIndex)
}

// Percent renders a rate as a percentage, e.g. 0.035 as "3.5%"
func Percent(rate decimal.Decimal) string {
	return rate.Shift(2).String() + "%"
}
