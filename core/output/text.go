package output

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/dotpep/calc-tax-salary-kz/core/tax"
	"github.com/dotpep/calc-tax-salary-kz/core/ui"
)

// TextOptions controls the terminal report
type TextOptions struct {
	// NoColor disables ANSI colors
	NoColor bool

	// ShowSteps prints every formula with its operands. When false a
	// summary table is printed instead.
	ShowSteps bool
}

// Section is a titled group of steps
type Section struct {
	Title string
	Steps []Step
}

// Step is one component with the arithmetic that produced it
type Step struct {
	Title   string
	Formula string
}

// TextFormatter renders the human-readable breakdown
type TextFormatter struct {
	opts TextOptions
}

// NewTextFormatter creates a text formatter
func NewTextFormatter(opts TextOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Format returns FormatText
func (f *TextFormatter) Format() Format {
	return FormatText
}

// Render writes the breakdown followed by the take-home line
func (f *TextFormatter) Render(w io.Writer, report *Report) error {
	uw := ui.NewWriter(w, f.opts.NoColor)

	if f.opts.ShowSteps {
		for _, section := range Sections(report) {
			uw.Header(section.Title)
			for _, step := range section.Steps {
				uw.SubHeader(step.Title + ":")
				uw.Line(step.Formula)
			}
		}
	} else {
		uw.Header("Итог")
		table := uw.NewTable("Компонент", "Сумма")
		for _, item := range report.Components.Items() {
			table.AddRow(item.Title, item.Amount.String())
		}
		table.Render()
	}

	uw.Success("На руки: %s тенге", report.Components.NetSalary)
	uw.Line("")
	return nil
}

// Sections lays out the steps in the order they are explained to the user
func Sections(report *Report) []Section {
	c := report.Components
	titles := lo.SliceToMap(c.Items(), func(it tax.Item) (tax.Code, string) {
		return it.Code, it.Title
	})
	salary := fmt.Sprintf("salary=%d", report.Salary)
	opv := operand("ОПВ", c.PensionContribution)
	vosms := operand("ВОСМС", c.MedicalSocialContribution)

	return []Section{
		{
			Title: "Идет вычисление...",
			Steps: []Step{
				{titles[tax.CodePension], fmt.Sprintf("%s * %s = %s",
					salary, tax.Percent(tax.PensionRate), c.PensionContribution)},
				{titles[tax.CodeMedicalSocial], fmt.Sprintf("%s * %s = %s",
					salary, tax.Percent(tax.MedicalSocialRate), c.MedicalSocialContribution)},
				{titles[tax.CodeIncomeTax], fmt.Sprintf("(%s - %s - %s - %s) * %s = %s",
					salary, opv, operand("14МРП", c.BasicThreshold), vosms,
					tax.Percent(tax.IncomeTaxRate), c.IncomeTax)},
			},
		},
		{
			Title: "Вычисление...",
			Steps: []Step{
				{titles[tax.CodeSocialContribution], fmt.Sprintf("(%s - %s) * %s = %s",
					salary, opv, tax.Percent(tax.SocialContributionRate), c.SocialContribution)},
				{titles[tax.CodeSocialTax], fmt.Sprintf("(%s - %s - %s) * %s = %s",
					salary, opv, vosms, tax.Percent(tax.SocialTaxRate), c.SocialTax)},
				{titles[tax.CodeMedicalInsurance], fmt.Sprintf("%s * %s = %s",
					salary, tax.Percent(tax.MedicalInsuranceRate), c.MedicalInsuranceContribution)},
			},
		},
		{
			Title: "На руки:",
			Steps: []Step{
				{"Расчет зарплаты с налогами на руки", fmt.Sprintf("%s - %s - %s - %s = %s",
					salary, opv, vosms, operand("ИПН", c.IncomeTax), c.NetSalary)},
			},
		},
	}
}

func operand(name string, value decimal.Decimal) string {
	return name + "=" + value.String()
}
