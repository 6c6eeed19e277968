package tax

import "github.com/shopspring/decimal"

// Salary is a gross monthly salary in whole tenge
type Salary int64

// Decimal returns the salary as a decimal
func (s Salary) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(s))
}

// Components is the full breakdown for one salary. Fields are listed in
// the order they are derived.
type Components struct {
	// BasicThreshold is 14 МРП
	BasicThreshold decimal.Decimal `json:"basicThreshold" yaml:"basicThreshold"`

	// PensionContribution is ОПВ
	PensionContribution decimal.Decimal `json:"pensionContribution" yaml:"pensionContribution"`

	// MedicalSocialContribution is ВОСМС
	MedicalSocialContribution decimal.Decimal `json:"medicalSocialContribution" yaml:"medicalSocialContribution"`

	// IncomeTax is ИПН. Negative for salaries under the threshold.
	IncomeTax decimal.Decimal `json:"incomeTax" yaml:"incomeTax"`

	// SocialContribution is СО
	SocialContribution decimal.Decimal `json:"socialContribution" yaml:"socialContribution"`

	// SocialTax is СН
	SocialTax decimal.Decimal `json:"socialTax" yaml:"socialTax"`

	// MedicalInsuranceContribution is ОСМС
	MedicalInsuranceContribution decimal.Decimal `json:"medicalInsuranceContribution" yaml:"medicalInsuranceContribution"`

	// NetSalary is take-home pay after ОПВ, ВОСМС and ИПН
	NetSalary decimal.Decimal `json:"netSalary" yaml:"netSalary"`
}

// Code is the short statutory name of a component
type Code string

const (
	CodeBasicThreshold     Code = "14MRP"
	CodePension            Code = "OPV"
	CodeMedicalSocial      Code = "VOSMS"
	CodeIncomeTax          Code = "IPN"
	CodeSocialContribution Code = "SO"
	CodeSocialTax          Code = "SN"
	CodeMedicalInsurance   Code = "OSMS"
	CodeNetSalary          Code = "NET"
)

// Item is one labelled component
type Item struct {
	Code   Code
	Title  string
	Amount decimal.Decimal
}

// Items returns the components in derivation order
func (c Components) Items() []Item {
	return []Item{
		{CodeBasicThreshold, "14МРП (Месячный расчётный показатель)", c.BasicThreshold},
		{CodePension, "ОПВ (Обязательные пенсионные взносы)", c.PensionContribution},
		{CodeMedicalSocial, "ВОСМС (Взносы на обязательное социальное медицинское страхование)", c.MedicalSocialContribution},
		{CodeIncomeTax, "ИПН (Индивидуальный подоходный налог)", c.IncomeTax},
		{CodeSocialContribution, "CO (Социальные отчисления)", c.SocialContribution},
		{CodeSocialTax, "СН (Социальный налог)", c.SocialTax},
		{CodeMedicalInsurance, "ОСМС (Отчисления на обязательное социальное медицинское страхование)", c.MedicalInsuranceContribution},
		{CodeNetSalary, "Зарплата на руки", c.NetSalary},
	}
}
