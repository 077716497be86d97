package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/kredcalc/india-tax-engine/internal/domain"
)

// SlabTaxResult is the tax side of one computation: the progressive base
// tax, the 87A rebate, fixed-rate capital-gains tax, surcharge after
// marginal relief, and cess.
type SlabTaxResult struct {
	BaseTax        decimal.Decimal
	Rebate         decimal.Decimal
	SpecialRateTax decimal.Decimal
	Surcharge      decimal.Decimal
	Cess           decimal.Decimal
	Total          decimal.Decimal
	Lines          []domain.SlabLine
}

// ComputeSlabTax prices taxable income under the slab table for
// (regime, age band), applies the 87A rebate before surcharge and cess,
// taxes the special-rate buckets at their fixed rates, and levies
// surcharge (with marginal relief) and cess on the combined tax.
func ComputeSlabTax(taxable decimal.Decimal, special map[string]decimal.Decimal, regime domain.Regime, age int, rules *domain.YearRules) SlabTaxResult {
	regimeRules := rules.ForRegime(regime)
	band := domain.AgeBandFor(age, rules.SeniorAge, rules.SuperSeniorAge)
	slabs := regimeRules.Slabs[band]

	var res SlabTaxResult
	res.BaseTax, res.Lines = walkSlabs(taxable, slabs)

	// 87A: full rebate up to the configured maximum when taxable income
	// does not exceed the threshold. The cliff sits exactly at the
	// threshold. Applied before surcharge and cess.
	if taxable.LessThanOrEqual(regimeRules.RebateThreshold) {
		res.Rebate = decimal.Min(res.BaseTax, regimeRules.RebateMax)
	}

	res.SpecialRateTax = specialRateTax(special, &rules.CapitalGains)

	taxAfterRebate := res.BaseTax.Sub(res.Rebate).Add(res.SpecialRateTax)
	totalIncome := taxable
	for _, amt := range special {
		totalIncome = totalIncome.Add(amt)
	}
	res.Surcharge = surchargeWithMarginalRelief(taxAfterRebate, totalIncome, slabs, regimeRules.SurchargeTiers)

	// Cess is never waived.
	res.Cess = taxAfterRebate.Add(res.Surcharge).Mul(rules.CessRate)
	res.Total = taxAfterRebate.Add(res.Surcharge).Add(res.Cess)
	return res
}

// walkSlabs runs the progressive walk: each slab taxes the income slice
// between its bounds at its marginal rate.
func walkSlabs(income decimal.Decimal, slabs []domain.Slab) (decimal.Decimal, []domain.SlabLine) {
	var tax decimal.Decimal
	var lines []domain.SlabLine
	for _, slab := range slabs {
		if income.LessThanOrEqual(slab.Lower) {
			break
		}
		amount := decimal.Min(income, slab.Upper).Sub(slab.Lower)
		if amount.LessThanOrEqual(decimal.Zero) {
			continue
		}
		slice := amount.Mul(slab.Rate)
		tax = tax.Add(slice)
		lines = append(lines, domain.SlabLine{Lower: slab.Lower, Upper: slab.Upper, Rate: slab.Rate, Amount: amount, Tax: slice})
	}
	return tax, lines
}

// specialRateTax prices the fixed-rate buckets. 112A gains enjoy a
// per-year exempt threshold before the rate applies.
func specialRateTax(special map[string]decimal.Decimal, cg *domain.CapitalGainsRules) decimal.Decimal {
	var tax decimal.Decimal
	for bucket, amount := range special {
		switch bucket {
		case domain.BucketSTCG111A:
			tax = tax.Add(amount.Mul(cg.STCG111ARate))
		case domain.BucketLTCG112A:
			over := amount.Sub(cg.LTCG112AExemptLimit)
			if over.IsPositive() {
				tax = tax.Add(over.Mul(cg.LTCG112ARate))
			}
		case domain.BucketLTCGDebt:
			tax = tax.Add(amount.Mul(cg.LTCGDebtMFRate))
		case domain.BucketLTCGOther:
			tax = tax.Add(amount.Mul(cg.LTCGOtherRate))
		}
	}
	return tax
}

// surchargeWithMarginalRelief levies the tier rate for the highest
// breakpoint the total income crosses, then forgives the part of the
// surcharge that would make the post-surcharge tax grow faster than the
// income past the breakpoint.
func surchargeWithMarginalRelief(tax, totalIncome decimal.Decimal, slabs []domain.Slab, tiers []domain.SurchargeTier) decimal.Decimal {
	if tax.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	tierIdx := -1
	for i, tier := range tiers {
		if totalIncome.GreaterThan(tier.Threshold) {
			tierIdx = i
		}
	}
	if tierIdx < 0 {
		return decimal.Zero
	}
	tier := tiers[tierIdx]
	surcharge := tax.Mul(tier.Rate)

	// Marginal relief: at the breakpoint, tax plus surcharge may not
	// exceed the liability at the breakpoint income (at the lower tier
	// rate) by more than the income over the breakpoint.
	prevRate := decimal.Zero
	if tierIdx > 0 {
		prevRate = tiers[tierIdx-1].Rate
	}
	taxAtThreshold, _ := walkSlabs(tier.Threshold, slabs)
	ceiling := taxAtThreshold.Add(taxAtThreshold.Mul(prevRate)).Add(totalIncome.Sub(tier.Threshold))
	relief := tax.Add(surcharge).Sub(ceiling)
	if relief.IsPositive() {
		surcharge = surcharge.Sub(relief)
		if surcharge.IsNegative() {
			surcharge = decimal.Zero
		}
	}
	return surcharge
}
