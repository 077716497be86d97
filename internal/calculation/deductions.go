package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kredcalc/india-tax-engine/internal/domain"
	"github.com/kredcalc/india-tax-engine/pkg/fiscalyear"
)

const noteNewRegime = "not allowed under new regime"

// DeductionOutcome is the aggregate Chapter VI-A result. Ineligible
// sections contribute zero with a note rather than an error, so one input
// prices identically under both regimes.
type DeductionOutcome struct {
	Total   decimal.Decimal
	Details []domain.DeductionDetail
}

// ApplyDeductions applies regime eligibility and per-section caps to the
// declared deductions. The 80G qualifying-limit tiers run last, against
// adjusted gross total income (ordinary income less every other
// deduction), per section 80G(4). The aggregate never exceeds ordinary
// taxable income.
func ApplyDeductions(input *domain.TaxCalculationInput, regime domain.Regime, rules *domain.YearRules, ordinaryIncome decimal.Decimal) (*DeductionOutcome, error) {
	out := &DeductionOutcome{}
	regimeRules := rules.ForRegime(regime)
	caps := &rules.Sections
	d := &input.Deductions

	add := func(section string, claimed, allowed decimal.Decimal, note string) {
		if claimed.IsZero() && allowed.IsZero() {
			return
		}
		out.Details = append(out.Details, domain.DeductionDetail{Section: section, Claimed: claimed, Allowed: allowed, Note: note})
		out.Total = out.Total.Add(allowed)
	}
	gate := func(section string, claimed decimal.Decimal, allowed func() (decimal.Decimal, string)) {
		if claimed.IsZero() {
			return
		}
		if !regimeRules.DeductionAllowed(section) {
			add(section, claimed, decimal.Zero, noteNewRegime)
			return
		}
		amount, note := allowed()
		add(section, claimed, amount, note)
	}

	// 80C family: 80C sub-items, 80CCC and 80CCD(1) share one cap.
	var family decimal.Decimal
	for _, amt := range d.Section80C {
		family = family.Add(amt.Decimal)
	}
	family = family.Add(d.Section80CCC.Decimal).Add(d.Section80CCD1.Decimal)
	gate("80C", family, func() (decimal.Decimal, string) {
		if family.GreaterThan(caps.Cap80CFamily) {
			return caps.Cap80CFamily, "capped (combined 80C/80CCC/80CCD(1))"
		}
		return family, ""
	})

	gate("80CCD(1B)", d.Section80CCD1B.Decimal, func() (decimal.Decimal, string) {
		return decimal.Min(d.Section80CCD1B.Decimal, caps.Cap80CCD1B), ""
	})

	// Employer NPS is capped at a fraction of basic+DA and survives the
	// new regime.
	gate("80CCD(2)", d.Section80CCD2.Decimal, func() (decimal.Decimal, string) {
		pct := caps.Pct80CCD2
		if input.IsGovernmentEmployee {
			pct = caps.Pct80CCD2Govt
		}
		basicDA := input.Salary.Basic.Add(input.Salary.DearnessAllowance.Decimal)
		return decimal.Min(d.Section80CCD2.Decimal, basicDA.Mul(pct)), ""
	})

	// 80D: self bucket and parents bucket, each tiered by age, with the
	// preventive checkup sub-capped inside the self bucket.
	claimed80D := d.Section80D.SelfPremium.Add(d.Section80D.ParentsPremium.Decimal).Add(d.Section80D.PreventiveCheckup.Decimal)
	gate("80D", claimed80D, func() (decimal.Decimal, string) {
		selfCap := caps.Cap80DSelf
		if input.Age >= rules.SeniorAge {
			selfCap = caps.Cap80DSelfSenior
		}
		parentsCap := caps.Cap80DParents
		if d.Section80D.ParentsAge >= rules.SeniorAge {
			parentsCap = caps.Cap80DParentsSenior
		}
		checkup := decimal.Min(d.Section80D.PreventiveCheckup.Decimal, caps.Cap80DPreventive)
		selfBucket := decimal.Min(d.Section80D.SelfPremium.Add(checkup), selfCap)
		parentsBucket := decimal.Min(d.Section80D.ParentsPremium.Decimal, parentsCap)
		return selfBucket.Add(parentsBucket), ""
	})

	// 80DD / 80U: a fixed band by disability percentage. The declared
	// amount is ignored once eligibility is established.
	if d.Section80DD != nil {
		band, note := disabilityBand(d.Section80DD.DisabilityPercent, caps)
		if !regimeRules.DeductionAllowed("80DD") {
			add("80DD", band, decimal.Zero, noteNewRegime)
		} else {
			add("80DD", band, band, note)
		}
	}
	if d.Section80U != nil {
		band, note := disabilityBand(d.Section80U.DisabilityPercent, caps)
		if !regimeRules.DeductionAllowed("80U") {
			add("80U", band, decimal.Zero, noteNewRegime)
		} else {
			add("80U", band, band, note)
		}
	}

	if d.Section80DDB != nil {
		gate("80DDB", d.Section80DDB.Amount.Decimal, func() (decimal.Decimal, string) {
			cap := caps.Cap80DDB
			if d.Section80DDB.PatientAge >= rules.SeniorAge {
				cap = caps.Cap80DDBSenior
			}
			return decimal.Min(d.Section80DDB.Amount.Decimal, cap), ""
		})
	}

	if d.Section80E != nil {
		gate("80E", d.Section80E.Interest.Decimal, func() (decimal.Decimal, string) {
			fy, err := fiscalyear.Parse(input.TaxYear)
			if err != nil {
				return decimal.Zero, "unparseable tax year"
			}
			elapsed := fy.YearsSince(d.Section80E.FirstRepaymentYear)
			if elapsed < 0 || elapsed >= caps.Window80EYears {
				return decimal.Zero, "outside the initial-plus-seven-year window"
			}
			return d.Section80E.Interest.Decimal, ""
		})
	}

	if d.Section80EEB != nil {
		gate("80EEB", d.Section80EEB.Interest.Decimal, func() (decimal.Decimal, string) {
			if !fiscalyear.WithinWindow(d.Section80EEB.PurchaseDate, caps.Window80EEBStart, caps.Window80EEBEnd) {
				return decimal.Zero, "purchase date outside eligible window"
			}
			return decimal.Min(d.Section80EEB.Interest.Decimal, caps.Cap80EEB), ""
		})
	}

	// 80TTA/80TTB: interest relief derived from declared other income,
	// not a declared deduction. TTB (seniors) also covers deposit
	// interest.
	savings := input.OtherIncome.SavingsInterest.Decimal
	if input.Age >= rules.SeniorAge {
		deposits := savings.Add(input.OtherIncome.FixedDepositInterest.Decimal).Add(input.OtherIncome.RecurringDepositInterest.Decimal)
		gate("80TTB", deposits, func() (decimal.Decimal, string) {
			return decimal.Min(deposits, caps.Cap80TTB), ""
		})
	} else {
		gate("80TTA", savings, func() (decimal.Decimal, string) {
			return decimal.Min(savings, caps.Cap80TTA), ""
		})
	}

	gate("80GGC", d.Section80GGC.Decimal, func() (decimal.Decimal, string) {
		return d.Section80GGC.Decimal, ""
	})

	// 80G runs last: the qualifying-limit tiers are bounded by adjusted
	// gross total income, i.e. ordinary income less every deduction
	// computed above.
	if err := apply80G(d.Donations, regimeRules, caps, ordinaryIncome.Sub(out.Total), add); err != nil {
		return nil, err
	}

	// Deductions alone never drive taxable income negative.
	if out.Total.GreaterThan(ordinaryIncome) {
		out.Total = ordinaryIncome
	}
	return out, nil
}

// disabilityBand maps a disability percentage to its fixed deduction band.
func disabilityBand(percent int, caps *domain.SectionCaps) (decimal.Decimal, string) {
	switch {
	case percent >= caps.SevereDisabilityPercent:
		return caps.Band80DDSevere, "severe disability band"
	case percent >= caps.MinDisabilityPercent:
		return caps.Band80DDPartial, "disability band"
	default:
		return decimal.Zero, "disability below 40%"
	}
}

// apply80G computes the four donation tiers. The no-limit tiers pass
// through at 100%/50%; the with-limit tiers share a cap of 10% of
// adjusted gross total income, applied before the 50% haircut.
func apply80G(donations []domain.Donation80G, regimeRules *domain.RegimeRules, caps *domain.SectionCaps, adjustedGTI decimal.Decimal, add func(string, decimal.Decimal, decimal.Decimal, string)) error {
	if len(donations) == 0 {
		return nil
	}
	if adjustedGTI.IsNegative() {
		adjustedGTI = decimal.Zero
	}

	byTier := map[domain.DonationTier]decimal.Decimal{}
	var claimed decimal.Decimal
	for _, don := range donations {
		tier, err := domain.TierForHead(don.Head)
		if err != nil {
			return err
		}
		if don.Tier != tier {
			return fmt.Errorf("donation head %q belongs to tier %s, declared %s: %w", don.Head, tier, don.Tier, domain.ErrUnknownEnumValue)
		}
		byTier[tier] = byTier[tier].Add(don.Amount.Decimal)
		claimed = claimed.Add(don.Amount.Decimal)
	}
	if !regimeRules.DeductionAllowed("80G") {
		add("80G", claimed, decimal.Zero, noteNewRegime)
		return nil
	}

	half := decimal.NewFromFloat(0.5)
	qualifyingLimit := adjustedGTI.Mul(caps.Pct80GQualifyingLimit)

	allowed := byTier[domain.TierFullNoLimit]
	allowed = allowed.Add(byTier[domain.TierHalfNoLimit].Mul(half))

	// The two with-qualifying-limit tiers share one limit; the 100% tier
	// absorbs it first.
	fullWithLimit := decimal.Min(byTier[domain.TierFullWithLimit], qualifyingLimit)
	remainingLimit := qualifyingLimit.Sub(fullWithLimit)
	halfWithLimit := decimal.Min(byTier[domain.TierHalfWithLimit], remainingLimit).Mul(half)
	allowed = allowed.Add(fullWithLimit).Add(halfWithLimit)

	add("80G", claimed, allowed, "")
	return nil
}
