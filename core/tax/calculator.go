package tax

// Calculate derives every component from a gross salary.
//
// The formulas are applied literally:
//   - ИПН does not subtract СО or СН, and it is not clamped at zero, so a
//     salary below the threshold yields negative income tax and a net salary
//     above the gross.
//   - СН is a flat 9.5% of (salary − ОПВ − ВОСМС). It is not reduced by СО.
//   - Net salary only subtracts ОПВ, ВОСМС and ИПН.
//
// Validation of s is the caller's job. Calculate is total over int64.
func Calculate(s Salary) Components {
	salary := s.Decimal()

	threshold := BasicThreshold()
	pension := salary.Mul(PensionRate)
	medicalSocial := salary.Mul(MedicalSocialRate)
	incomeTax := salary.Sub(pension).Sub(threshold).Sub(medicalSocial).Mul(IncomeTaxRate)
	socialContribution := salary.Sub(pension).Mul(SocialContributionRate)
	socialTax := salary.Sub(pension).Sub(medicalSocial).Mul(SocialTaxRate)
	medicalInsurance := salary.Mul(MedicalInsuranceRate)
	net := salary.Sub(pension).Sub(medicalSocial).Sub(incomeTax)

	return Components{
		BasicThreshold:               threshold,
		PensionContribution:          pension,
		MedicalSocialContribution:    medicalSocial,
		IncomeTax:                    incomeTax,
		SocialContribution:           socialContribution,
		SocialTax:                    socialTax,
		MedicalInsuranceContribution: medicalInsurance,
		NetSalary:                    net,
	}
}
