package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/kredcalc/india-tax-engine/internal/domain"
)

// GrossIncome is the aggregated income picture for one regime: ordinary
// (slab-taxed) income per head, special-rate capital-gains buckets kept
// separate, and the exemption trail.
type GrossIncome struct {
	Salary        decimal.Decimal
	HouseProperty decimal.Decimal
	OtherSources  decimal.Decimal
	OrdinaryGains decimal.Decimal

	// Ordinary is the slab-taxed total across heads, floored at zero.
	Ordinary decimal.Decimal

	// SpecialRate maps bucket code to the amount taxed at its fixed rate.
	SpecialRate map[string]decimal.Decimal

	Exemptions      []domain.ExemptionDetail
	TotalExemptions decimal.Decimal
}

// GrossTotal is ordinary income plus special-rate gains.
func (g *GrossIncome) GrossTotal() decimal.Decimal {
	total := g.Ordinary
	for _, amt := range g.SpecialRate {
		total = total.Add(amt)
	}
	return total
}

// AggregateIncome runs every exemption calculator and folds the heads of
// income into a GrossIncome for the given regime.
func AggregateIncome(input *domain.TaxCalculationInput, regime domain.Regime, rules *domain.YearRules) *GrossIncome {
	gi := &GrossIncome{SpecialRate: map[string]decimal.Decimal{}}

	gi.Salary = aggregateSalary(input, regime, rules, gi)
	gi.HouseProperty = aggregateHouseProperty(&input.HouseProperty, rules)
	gi.OtherSources = aggregateOtherSources(&input.OtherIncome)
	gi.OrdinaryGains = aggregateCapitalGains(&input.CapitalGains, rules, gi)

	// A house-property loss offsets other heads only up to the set-off
	// cap; the excess is a carry-forward, which is the caller's concern.
	hp := gi.HouseProperty
	if hp.IsNegative() && hp.Neg().GreaterThan(rules.HouseProperty.LossSetOffCap) {
		hp = rules.HouseProperty.LossSetOffCap.Neg()
	}

	gi.Ordinary = gi.Salary.Add(hp).Add(gi.OtherSources).Add(gi.OrdinaryGains)
	if gi.Ordinary.IsNegative() {
		gi.Ordinary = decimal.Zero
	}

	for _, ex := range gi.Exemptions {
		gi.TotalExemptions = gi.TotalExemptions.Add(ex.Exempt)
	}
	return gi
}

// aggregateSalary sums every salary receipt net of its exemption, then
// applies the regime's standard deduction.
func aggregateSalary(input *domain.TaxCalculationInput, regime domain.Regime, rules *domain.YearRules, gi *GrossIncome) decimal.Decimal {
	sal := &input.Salary
	record := func(d domain.ExemptionDetail) decimal.Decimal {
		if d.Received.IsZero() {
			return decimal.Zero
		}
		gi.Exemptions = append(gi.Exemptions, d)
		return d.Taxable
	}

	total := sal.Basic.Decimal.
		Add(sal.DearnessAllowance.Decimal).
		Add(sal.Bonus.Decimal).
		Add(sal.Commission.Decimal)

	total = total.Add(record(CalculateHRA(sal, input.HouseProperty.Occupancy, regime, rules)))
	total = total.Add(record(CalculateLTA(sal, regime, rules)))
	for code, amount := range sal.Allowances {
		total = total.Add(record(CalculateAllowance(code, amount.Decimal, sal, input.IsGovernmentEmployee, regime, rules)))
	}
	for _, amount := range sal.Perquisites {
		total = total.Add(amount.Decimal)
	}

	// Retirement receipts are salary income net of their exemptions.
	total = total.Add(record(CalculateLeaveEncashment(input.Retirement.LeaveEncashment, input.IsGovernmentEmployee, rules)))
	total = total.Add(record(CalculateGratuity(input.Retirement.Gratuity, input.IsGovernmentEmployee, rules)))
	total = total.Add(record(CalculateVRS(input.Retirement.VRSCompensation.Decimal, rules)))

	std := rules.ForRegime(regime).StandardDeduction
	total = total.Sub(decimal.Min(total, std))
	return total
}

// aggregateHouseProperty computes the house-property head. Self-occupied
// property yields a loss of up to the interest ceiling; let-out property
// is rent less municipal taxes, the standard deduction on net annual
// value, loan interest (uncapped) and amortized pre-construction
// interest.
func aggregateHouseProperty(hp *domain.HousePropertyIncome, rules *domain.YearRules) decimal.Decimal {
	if hp.Occupancy == domain.OccupancySelfOccupied {
		interest := decimal.Min(hp.HomeLoanInterest.Decimal, rules.HouseProperty.SelfOccupiedInterestCeiling)
		return interest.Neg()
	}

	nav := hp.RentReceived.Sub(hp.MunicipalTaxes.Decimal)
	if nav.IsNegative() {
		nav = decimal.Zero
	}
	income := nav.Sub(nav.Mul(rules.HouseProperty.StandardDeductionRate))
	income = income.Sub(hp.HomeLoanInterest.Decimal)

	if hp.ConstructionCompletedWithinFiveYears && !hp.PreConstructionInterest.IsZero() {
		perYear := hp.PreConstructionInterest.Div(decimal.NewFromInt(int64(rules.HouseProperty.PreConstructionYears)))
		income = income.Sub(perYear)
	}
	return income
}

func aggregateOtherSources(oi *domain.OtherIncome) decimal.Decimal {
	return oi.SavingsInterest.Decimal.
		Add(oi.FixedDepositInterest.Decimal).
		Add(oi.RecurringDepositInterest.Decimal).
		Add(oi.OtherInterest.Decimal).
		Add(oi.Dividends.Decimal).
		Add(oi.Gifts.Decimal).
		Add(oi.Business.Decimal).
		Add(oi.Miscellaneous.Decimal)
}

// aggregateCapitalGains routes each bucket: STCG outside 111A is
// slab-taxed ordinary income; 111A, 112A and the long-term buckets carry
// special fixed rates and bypass the slab calculator.
func aggregateCapitalGains(cg *domain.CapitalGainsIncome, rules *domain.YearRules, gi *GrossIncome) decimal.Decimal {
	ordinary := cg.STCGOther.Add(cg.STCGDebtMF.Decimal)

	special := func(bucket string, amount decimal.Decimal) {
		if amount.IsPositive() {
			gi.SpecialRate[bucket] = amount
		}
	}
	special(domain.BucketSTCG111A, cg.STCG111A.Decimal)
	special(domain.BucketLTCG112A, cg.LTCG112A.Decimal)
	special(domain.BucketLTCGDebt, cg.LTCGDebtMF.Decimal)
	special(domain.BucketLTCGOther, cg.LTCGOther.Decimal)
	return ordinary
}
