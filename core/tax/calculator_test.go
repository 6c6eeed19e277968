package tax

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, dec(t, want).Equal(got), "%s: want %s, got %s", field, want, got)
}

var sampleSalaries = []Salary{1, 7, 48300, 53898, 100000, 250001, 500000, 1234567, 99999999}

func TestCalculateTypicalSalary(t *testing.T) {
	c := Calculate(500000)

	assertDecimal(t, "48300", c.BasicThreshold, "BasicThreshold")
	assertDecimal(t, "50000", c.PensionContribution, "PensionContribution")
	assertDecimal(t, "10000", c.MedicalSocialContribution, "MedicalSocialContribution")
	assertDecimal(t, "39170", c.IncomeTax, "IncomeTax")
	assertDecimal(t, "15750", c.SocialContribution, "SocialContribution")
	assertDecimal(t, "41800", c.SocialTax, "SocialTax")
	assertDecimal(t, "15000", c.MedicalInsuranceContribution, "MedicalInsuranceContribution")
	assertDecimal(t, "400830", c.NetSalary, "NetSalary")
}

func TestCalculateLowSalaryKeepsNegativeIncomeTax(t *testing.T) {
	c := Calculate(1)

	assertDecimal(t, "0.1", c.PensionContribution, "PensionContribution")
	assertDecimal(t, "0.02", c.MedicalSocialContribution, "MedicalSocialContribution")
	assertDecimal(t, "-4829.912", c.IncomeTax, "IncomeTax")
	assert.True(t, c.IncomeTax.IsNegative())
	// 1 - 0.1 - 0.02 + 4829.912
	assertDecimal(t, "4830.792", c.NetSalary, "NetSalary")
	assert.InDelta(t, -4829.912, c.IncomeTax.InexactFloat64(), 1e-9)
}

func TestCalculateThresholdIsConstant(t *testing.T) {
	for _, s := range sampleSalaries {
		assertDecimal(t, "48300", Calculate(s).BasicThreshold, "BasicThreshold")
	}
}

func TestCalculateFlatRates(t *testing.T) {
	for _, s := range sampleSalaries {
		c := Calculate(s)
		f := float64(s)
		assert.InDelta(t, 0.10*f, c.PensionContribution.InexactFloat64(), 1e-9*f)
		assert.InDelta(t, 0.02*f, c.MedicalSocialContribution.InexactFloat64(), 1e-9*f)
		assert.InDelta(t, 0.03*f, c.MedicalInsuranceContribution.InexactFloat64(), 1e-9*f)
	}
}

func TestCalculateIdentities(t *testing.T) {
	for _, s := range sampleSalaries {
		c := Calculate(s)
		salary := s.Decimal()

		wantIncomeTax := salary.Sub(c.PensionContribution).Sub(decimal.NewFromInt(48300)).
			Sub(c.MedicalSocialContribution).Mul(decimal.RequireFromString("0.10"))
		assert.True(t, wantIncomeTax.Equal(c.IncomeTax), "income tax for %d", s)

		wantNet := salary.Sub(c.PensionContribution).Sub(c.MedicalSocialContribution).Sub(c.IncomeTax)
		assert.True(t, wantNet.Equal(c.NetSalary), "net salary for %d", s)
	}
}

func TestIncomeTaxSignFollowsThreshold(t *testing.T) {
	// taxable base is 0.88*S - 48300, which crosses zero between these two
	assert.True(t, Calculate(54886).IncomeTax.IsNegative())
	assert.True(t, Calculate(54887).IncomeTax.IsPositive())
}

// The original commentary describes СН as 3.5% of the base minus СО.
// The computed value is a flat 9.5%, and that is what is kept.
func TestSocialTaxIsFlatAndIgnoresSocialContribution(t *testing.T) {
	c := Calculate(500000)

	base := dec(t, "440000")
	assertDecimal(t, "41800", c.SocialTax, "SocialTax")
	assert.True(t, base.Mul(dec(t, "0.095")).Equal(c.SocialTax))

	documentedIntent := base.Mul(dec(t, "0.035")).Sub(c.SocialContribution)
	assert.False(t, documentedIntent.Equal(c.SocialTax), "СН must not be reduced by СО")
}

func TestNetSalaryIgnoresEmployerCharges(t *testing.T) {
	a := Calculate(300000)
	net := dec(t, "300000").Sub(a.PensionContribution).Sub(a.MedicalSocialContribution).Sub(a.IncomeTax)
	assert.True(t, net.Equal(a.NetSalary))

	withCharges := net.Sub(a.SocialContribution).Sub(a.SocialTax).Sub(a.MedicalInsuranceContribution)
	assert.False(t, withCharges.Equal(a.NetSalary))
}

func TestCalculateIsIdempotent(t *testing.T) {
	first := Calculate(777777)
	second := Calculate(777777)
	assert.Equal(t, first, second)
}

func TestCalculateConcurrent(t *testing.T) {
	want := Calculate(500000)

	var wg sync.WaitGroup
	results := make([]Components, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Calculate(500000)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestItemsOrder(t *testing.T) {
	c := Calculate(500000)
	items := c.Items()

	require.Len(t, items, 8)
	codes := make([]Code, len(items))
	for i, it := range items {
		codes[i] = it.Code
	}
	assert.Equal(t, []Code{
		CodeBasicThreshold, CodePension, CodeMedicalSocial, CodeIncomeTax,
		CodeSocialContribution, CodeSocialTax, CodeMedicalInsurance, CodeNetSalary,
	}, codes)
	assert.True(t, items[7].Amount.Equal(c.NetSalary))
}

func TestPercent(t *testing.T) {
	tests := []struct {
		rate decimal.Decimal
		want string
	}{
		{PensionRate, "10%"},
		{MedicalSocialRate, "2%"},
		{SocialContributionRate, "3.5%"},
		{SocialTaxRate, "9.5%"},
		{MedicalInsuranceRate, "3%"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Percent(tt.rate))
		})
	}
}
