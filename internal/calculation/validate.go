package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kredcalc/india-tax-engine/internal/domain"
	"github.com/kredcalc/india-tax-engine/pkg/fiscalyear"
)

// fieldIssue pairs an input field path with its kinded error. Validate
// reports all of them; Calculate aborts on the first.
type fieldIssue struct {
	Field string
	Err   error
}

// inputIssues runs every static check: numeric ranges, enum membership
// and date sanity. It never stops at the first problem.
func inputIssues(input *domain.TaxCalculationInput) []fieldIssue {
	var issues []fieldIssue
	report := func(field string, err error) {
		issues = append(issues, fieldIssue{Field: field, Err: err})
	}

	if _, err := fiscalyear.Parse(input.TaxYear); err != nil {
		report("tax_year", fmt.Errorf("%v: %w", err, domain.ErrInvalidInputKind))
	}
	if input.Age < 0 || input.Age > 120 {
		report("age", fmt.Errorf("age %d: %w", input.Age, domain.ErrOutOfRange))
	}
	if !input.Regime.Valid() {
		report("regime", fmt.Errorf("regime %q: %w", input.Regime, domain.ErrUnknownEnumValue))
	}

	issues = append(issues, salaryIssues(&input.Salary)...)
	issues = append(issues, housePropertyIssues(&input.HouseProperty)...)
	issues = append(issues, deductionIssues(&input.Deductions)...)
	issues = append(issues, retirementIssues(&input.Retirement)...)

	for field, amount := range moneyFields(input) {
		if amount.IsNegative() {
			report(field, fmt.Errorf("negative amount: %w", domain.ErrOutOfRange))
		} else if amount.GreaterThan(domain.MaxAmount) {
			report(field, fmt.Errorf("amount exceeds ceiling: %w", domain.ErrOutOfRange))
		}
	}
	return issues
}

func salaryIssues(sal *domain.SalaryIncome) []fieldIssue {
	var issues []fieldIssue
	if sal.CityCategory != "" && !sal.CityCategory.Valid() {
		issues = append(issues, fieldIssue{"salary.city_category",
			fmt.Errorf("city category %q: %w", sal.CityCategory, domain.ErrUnknownEnumValue)})
	}
	if sal.ChildrenCount < 0 {
		issues = append(issues, fieldIssue{"salary.children_count",
			fmt.Errorf("children count %d: %w", sal.ChildrenCount, domain.ErrOutOfRange)})
	}
	for code, months := range sal.AllowanceMonths {
		if months < 0 || months > 12 {
			issues = append(issues, fieldIssue{"salary.allowance_months." + code,
				fmt.Errorf("%d months: %w", months, domain.ErrOutOfRange)})
		}
	}
	return issues
}

func housePropertyIssues(hp *domain.HousePropertyIncome) []fieldIssue {
	declared := !hp.RentReceived.IsZero() || !hp.MunicipalTaxes.IsZero() ||
		!hp.HomeLoanInterest.IsZero() || !hp.PreConstructionInterest.IsZero()
	if (declared || hp.Occupancy != "") && !hp.Occupancy.Valid() {
		return []fieldIssue{{"house_property.occupancy",
			fmt.Errorf("occupancy %q: %w", hp.Occupancy, domain.ErrUnknownEnumValue)}}
	}
	return nil
}

func deductionIssues(d *domain.Deductions) []fieldIssue {
	var issues []fieldIssue
	if d.Section80DD != nil {
		if !d.Section80DD.Relation.Valid() {
			issues = append(issues, fieldIssue{"deductions.section_80dd.relation",
				fmt.Errorf("relation %q: %w", d.Section80DD.Relation, domain.ErrUnknownEnumValue)})
		}
		if d.Section80DD.DisabilityPercent < 0 || d.Section80DD.DisabilityPercent > 100 {
			issues = append(issues, fieldIssue{"deductions.section_80dd.disability_percent",
				fmt.Errorf("%d%%: %w", d.Section80DD.DisabilityPercent, domain.ErrOutOfRange)})
		}
	}
	if d.Section80U != nil && (d.Section80U.DisabilityPercent < 0 || d.Section80U.DisabilityPercent > 100) {
		issues = append(issues, fieldIssue{"deductions.section_80u.disability_percent",
			fmt.Errorf("%d%%: %w", d.Section80U.DisabilityPercent, domain.ErrOutOfRange)})
	}
	if d.Section80E != nil && (d.Section80E.FirstRepaymentYear < 1990 || d.Section80E.FirstRepaymentYear > 2100) {
		issues = append(issues, fieldIssue{"deductions.section_80e.first_repayment_year",
			fmt.Errorf("year %d: %w", d.Section80E.FirstRepaymentYear, domain.ErrOutOfRange)})
	}
	if d.Section80EEB != nil && d.Section80EEB.PurchaseDate.IsZero() && !d.Section80EEB.Interest.IsZero() {
		issues = append(issues, fieldIssue{"deductions.section_80eeb.purchase_date",
			fmt.Errorf("purchase date required: %w", domain.ErrOutOfRange)})
	}
	for i, don := range d.Donations {
		field := fmt.Sprintf("deductions.donations[%d]", i)
		if !don.Tier.Valid() {
			issues = append(issues, fieldIssue{field + ".tier",
				fmt.Errorf("tier %q: %w", don.Tier, domain.ErrUnknownEnumValue)})
			continue
		}
		tier, err := domain.TierForHead(don.Head)
		if err != nil {
			issues = append(issues, fieldIssue{field + ".head", err})
			continue
		}
		if tier != don.Tier {
			issues = append(issues, fieldIssue{field + ".tier",
				fmt.Errorf("head %q belongs to tier %s: %w", don.Head, tier, domain.ErrUnknownEnumValue)})
		}
	}
	return issues
}

func retirementIssues(r *domain.RetirementBenefits) []fieldIssue {
	var issues []fieldIssue
	if le := r.LeaveEncashment; le != nil {
		if !le.Amount.IsZero() && !le.Occasion.Valid() {
			issues = append(issues, fieldIssue{"retirement.leave_encashment.occasion",
				fmt.Errorf("occasion %q: %w", le.Occasion, domain.ErrUnknownEnumValue)})
		}
		if le.UnavailedLeaveDays < 0 || le.YearsOfService < 0 {
			issues = append(issues, fieldIssue{"retirement.leave_encashment",
				fmt.Errorf("negative service figures: %w", domain.ErrOutOfRange)})
		}
	}
	if g := r.Gratuity; g != nil && g.YearsOfService < 0 {
		issues = append(issues, fieldIssue{"retirement.gratuity.years_of_service",
			fmt.Errorf("negative service years: %w", domain.ErrOutOfRange)})
	}
	return issues
}

// moneyFields enumerates every monetary field with its path so range
// checks stay in one place.
func moneyFields(input *domain.TaxCalculationInput) map[string]decimal.Decimal {
	sal := &input.Salary
	hp := &input.HouseProperty
	cg := &input.CapitalGains
	oi := &input.OtherIncome
	d := &input.Deductions

	fields := map[string]decimal.Decimal{
		"salary.basic":               sal.Basic.Decimal,
		"salary.dearness_allowance":  sal.DearnessAllowance.Decimal,
		"salary.hra_received":        sal.HRAReceived.Decimal,
		"salary.bonus":               sal.Bonus.Decimal,
		"salary.commission":          sal.Commission.Decimal,
		"salary.lta_received":        sal.LTAReceived.Decimal,
		"salary.lta_claimed":         sal.LTAClaimed.Decimal,
		"salary.rent_paid":           sal.RentPaid.Decimal,

		"house_property.rent_received":             hp.RentReceived.Decimal,
		"house_property.municipal_taxes":           hp.MunicipalTaxes.Decimal,
		"house_property.home_loan_interest":        hp.HomeLoanInterest.Decimal,
		"house_property.pre_construction_interest": hp.PreConstructionInterest.Decimal,

		"capital_gains.stcg_111a":    cg.STCG111A.Decimal,
		"capital_gains.stcg_debt_mf": cg.STCGDebtMF.Decimal,
		"capital_gains.stcg_other":   cg.STCGOther.Decimal,
		"capital_gains.ltcg_112a":    cg.LTCG112A.Decimal,
		"capital_gains.ltcg_debt_mf": cg.LTCGDebtMF.Decimal,
		"capital_gains.ltcg_other":   cg.LTCGOther.Decimal,

		"other_income.savings_interest":            oi.SavingsInterest.Decimal,
		"other_income.fixed_deposit_interest":      oi.FixedDepositInterest.Decimal,
		"other_income.recurring_deposit_interest":  oi.RecurringDepositInterest.Decimal,
		"other_income.other_interest":              oi.OtherInterest.Decimal,
		"other_income.dividends":                   oi.Dividends.Decimal,
		"other_income.gifts":                       oi.Gifts.Decimal,
		"other_income.business":                    oi.Business.Decimal,
		"other_income.miscellaneous":               oi.Miscellaneous.Decimal,

		"deductions.section_80ccc":    d.Section80CCC.Decimal,
		"deductions.section_80ccd_1":  d.Section80CCD1.Decimal,
		"deductions.section_80ccd_1b": d.Section80CCD1B.Decimal,
		"deductions.section_80ccd_2":  d.Section80CCD2.Decimal,
		"deductions.section_80ggc":    d.Section80GGC.Decimal,

		"deductions.section_80d.self_premium":       d.Section80D.SelfPremium.Decimal,
		"deductions.section_80d.parents_premium":    d.Section80D.ParentsPremium.Decimal,
		"deductions.section_80d.preventive_checkup": d.Section80D.PreventiveCheckup.Decimal,

		"retirement.vrs_compensation": input.Retirement.VRSCompensation.Decimal,
	}
	for code, amount := range sal.Allowances {
		fields["salary.allowances."+code] = amount.Decimal
	}
	for code, amount := range sal.Perquisites {
		fields["salary.perquisites."+code] = amount.Decimal
	}
	for code, amount := range d.Section80C {
		fields["deductions.section_80c."+code] = amount.Decimal
	}
	for i, don := range d.Donations {
		fields[fmt.Sprintf("deductions.donations[%d].amount", i)] = don.Amount.Decimal
	}
	if d.Section80DDB != nil {
		fields["deductions.section_80ddb.amount"] = d.Section80DDB.Amount.Decimal
	}
	if d.Section80E != nil {
		fields["deductions.section_80e.interest"] = d.Section80E.Interest.Decimal
	}
	if d.Section80EEB != nil {
		fields["deductions.section_80eeb.interest"] = d.Section80EEB.Interest.Decimal
	}
	if le := input.Retirement.LeaveEncashment; le != nil {
		fields["retirement.leave_encashment.amount"] = le.Amount.Decimal
		fields["retirement.leave_encashment.average_monthly_salary"] = le.AverageMonthlySalary.Decimal
	}
	if g := input.Retirement.Gratuity; g != nil {
		fields["retirement.gratuity.amount"] = g.Amount.Decimal
		fields["retirement.gratuity.last_drawn_monthly_salary"] = g.LastDrawnMonthlySalary.Decimal
	}
	return fields
}
