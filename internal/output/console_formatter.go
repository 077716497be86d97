package output

import (
	"bytes"
	"fmt"

	"github.com/kredcalc/india-tax-engine/internal/domain"
)

// ConsoleFormatter renders a human-readable tax statement.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) FormatResult(result *domain.TaxCalculationResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "TAX STATEMENT %s (%s regime)\n", result.TaxYear, result.RegimeUsed)
	fmt.Fprintln(&buf, "========================================")
	fmt.Fprintf(&buf, "Employee: %s\n\n", result.EmployeeID)

	fmt.Fprintf(&buf, "%-28s %s\n", "Salary income:", FormatRupees(result.SalaryIncome))
	fmt.Fprintf(&buf, "%-28s %s\n", "House property:", FormatRupees(result.HousePropertyIncome))
	fmt.Fprintf(&buf, "%-28s %s\n", "Other sources:", FormatRupees(result.OtherSourcesIncome))
	fmt.Fprintf(&buf, "%-28s %s\n", "Gross total income:", FormatRupees(result.GrossTotalIncome))
	fmt.Fprintf(&buf, "%-28s %s\n", "Exemptions:", FormatRupees(result.TotalExemptions))
	fmt.Fprintf(&buf, "%-28s %s\n", "Deductions:", FormatRupees(result.TotalDeductions))
	fmt.Fprintf(&buf, "%-28s %s\n", "Taxable income:", FormatRupees(result.TaxableIncome))
	fmt.Fprintln(&buf)

	if len(result.SlabLines) > 0 {
		fmt.Fprintln(&buf, "Slab computation:")
		for _, line := range result.SlabLines {
			fmt.Fprintf(&buf, "  %s on %s = %s\n",
				FormatPercentage(line.Rate.Mul(hundred)),
				FormatRupees(line.Amount),
				FormatRupees(line.Tax))
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintf(&buf, "%-28s %s\n", "Base tax:", FormatRupees(result.BaseTax))
	if result.Rebate.IsPositive() {
		fmt.Fprintf(&buf, "%-28s -%s\n", "Rebate (87A):", FormatRupees(result.Rebate))
	}
	if result.SpecialRateTax.IsPositive() {
		fmt.Fprintf(&buf, "%-28s %s\n", "Special-rate gains tax:", FormatRupees(result.SpecialRateTax))
	}
	if result.Surcharge.IsPositive() {
		fmt.Fprintf(&buf, "%-28s %s\n", "Surcharge:", FormatRupees(result.Surcharge))
	}
	fmt.Fprintf(&buf, "%-28s %s\n", "Cess:", FormatRupees(result.Cess))
	fmt.Fprintf(&buf, "%-28s %s\n", "TOTAL LIABILITY:", FormatRupees(result.TotalTaxLiability))
	fmt.Fprintf(&buf, "%-28s %s\n", "Effective rate:", FormatPercentage(result.EffectiveRate))

	if len(result.Exemptions) > 0 {
		fmt.Fprintln(&buf, "\nExemption detail:")
		for _, ex := range result.Exemptions {
			fmt.Fprintf(&buf, "  %-24s received %s, exempt %s", ex.Code, FormatRupees(ex.Received), FormatRupees(ex.Exempt))
			if ex.Note != "" {
				fmt.Fprintf(&buf, " (%s)", ex.Note)
			}
			fmt.Fprintln(&buf)
		}
	}
	if len(result.DeductionDetails) > 0 {
		fmt.Fprintln(&buf, "\nDeduction detail:")
		for _, dd := range result.DeductionDetails {
			fmt.Fprintf(&buf, "  %-24s claimed %s, allowed %s", dd.Section, FormatRupees(dd.Claimed), FormatRupees(dd.Allowed))
			if dd.Note != "" {
				fmt.Fprintf(&buf, " (%s)", dd.Note)
			}
			fmt.Fprintln(&buf)
		}
	}
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) FormatComparison(comparison *domain.RegimeComparisonResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "REGIME COMPARISON")
	fmt.Fprintln(&buf, "========================================")
	fmt.Fprintf(&buf, "%-24s %16s %16s\n", "", "OLD", "NEW")
	row := func(label string, pick func(*domain.TaxCalculationResult) string) {
		fmt.Fprintf(&buf, "%-24s %16s %16s\n", label, pick(comparison.OldRegime), pick(comparison.NewRegime))
	}
	row("Gross total income:", func(r *domain.TaxCalculationResult) string { return FormatRupees(r.GrossTotalIncome) })
	row("Deductions:", func(r *domain.TaxCalculationResult) string { return FormatRupees(r.TotalDeductions) })
	row("Taxable income:", func(r *domain.TaxCalculationResult) string { return FormatRupees(r.TaxableIncome) })
	row("Total liability:", func(r *domain.TaxCalculationResult) string { return FormatRupees(r.TotalTaxLiability) })
	row("Effective rate:", func(r *domain.TaxCalculationResult) string { return FormatPercentage(r.EffectiveRate) })
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Recommended: %s regime (saves %s)\n",
		comparison.RecommendedRegime, FormatRupees(comparison.Savings))
	return buf.Bytes(), nil
}
