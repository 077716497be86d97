package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgeBand selects the slab table under the old regime. The new regime uses
// one table regardless of age.
type AgeBand string

const (
	AgeBandBelow60 AgeBand = "below_60"
	AgeBand60To79  AgeBand = "60_to_79"
	AgeBand80Plus  AgeBand = "80_plus"
)

// AgeBandFor maps an age to its band using the configured thresholds.
func AgeBandFor(age, seniorAge, superSeniorAge int) AgeBand {
	switch {
	case age >= superSeniorAge:
		return AgeBand80Plus
	case age >= seniorAge:
		return AgeBand60To79
	default:
		return AgeBandBelow60
	}
}

// Slab is one income bracket taxed at a fixed marginal rate. Upper is an
// explicit bound; the last slab carries a sentinel far above MaxAmount.
type Slab struct {
	Lower decimal.Decimal `yaml:"lower" json:"lower"`
	Upper decimal.Decimal `yaml:"upper" json:"upper"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// SurchargeTier is one surcharge breakpoint: income above Threshold pays
// Rate of tax, subject to marginal relief at the boundary.
type SurchargeTier struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
}

// RegimeRules are the parts of a year's rules that differ per regime.
type RegimeRules struct {
	// Slabs per age band. The new regime registers the same table under
	// every band so lookups never special-case the regime.
	Slabs map[AgeBand][]Slab `yaml:"slabs" json:"slabs"`

	RebateThreshold   decimal.Decimal `yaml:"rebate_threshold" json:"rebate_threshold"` // 87A
	RebateMax         decimal.Decimal `yaml:"rebate_max" json:"rebate_max"`
	SurchargeTiers    []SurchargeTier `yaml:"surcharge_tiers" json:"surcharge_tiers"` // ascending by threshold
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`

	// DeductionWhitelist lists the only sections allowed under this
	// regime. Empty means every section is eligible.
	DeductionWhitelist []string `yaml:"deduction_whitelist,omitempty" json:"deduction_whitelist,omitempty"`

	// AllowanceExemptionsDisallowed turns off the salary allowance
	// exemptions (HRA, LTA, 10(14) allowances) for this regime; the
	// transport allowance of a disabled employee stays exempt.
	AllowanceExemptionsDisallowed bool `yaml:"allowance_exemptions_disallowed" json:"allowance_exemptions_disallowed"`
}

// DeductionAllowed reports whether a section survives this regime.
func (rr *RegimeRules) DeductionAllowed(section string) bool {
	if len(rr.DeductionWhitelist) == 0 {
		return true
	}
	for _, s := range rr.DeductionWhitelist {
		if s == section {
			return true
		}
	}
	return false
}

// HRARules parameterize the house-rent-allowance exemption.
type HRARules struct {
	MetroRate    decimal.Decimal `yaml:"metro_rate" json:"metro_rate"`         // 0.50
	NonMetroRate decimal.Decimal `yaml:"non_metro_rate" json:"non_metro_rate"` // 0.40
	RentOffset   decimal.Decimal `yaml:"rent_offset" json:"rent_offset"`       // 0.10 of basic+DA
}

// AllowanceCaps are the flat statutory caps on 10(14) allowances.
type AllowanceCaps struct {
	ChildEducationPerMonth    decimal.Decimal `yaml:"child_education_per_month" json:"child_education_per_month"`
	HostelPerMonth            decimal.Decimal `yaml:"hostel_per_month" json:"hostel_per_month"`
	MaxChildren               int             `yaml:"max_children" json:"max_children"`
	TransportPerMonth         decimal.Decimal `yaml:"transport_per_month" json:"transport_per_month"`
	TransportDisabledPerMonth decimal.Decimal `yaml:"transport_disabled_per_month" json:"transport_disabled_per_month"`
	HillsPerMonth             decimal.Decimal `yaml:"hills_per_month" json:"hills_per_month"`
	BorderPerMonth            decimal.Decimal `yaml:"border_per_month" json:"border_per_month"`
	UndergroundMinesPerMonth  decimal.Decimal `yaml:"underground_mines_per_month" json:"underground_mines_per_month"`
	TransportEmployeePct      decimal.Decimal `yaml:"transport_employee_pct" json:"transport_employee_pct"` // of amount
	TransportEmployeePerMonth decimal.Decimal `yaml:"transport_employee_per_month" json:"transport_employee_per_month"`
	EntertainmentCap          decimal.Decimal `yaml:"entertainment_cap" json:"entertainment_cap"`
	EntertainmentBasicPct     decimal.Decimal `yaml:"entertainment_basic_pct" json:"entertainment_basic_pct"`
}

// SectionCaps are the per-year Chapter VI-A caps and windows.
type SectionCaps struct {
	Cap80CFamily  decimal.Decimal `yaml:"cap_80c_family" json:"cap_80c_family"` // 80C+80CCC+80CCD(1)
	Cap80CCD1B    decimal.Decimal `yaml:"cap_80ccd_1b" json:"cap_80ccd_1b"`
	Pct80CCD2     decimal.Decimal `yaml:"pct_80ccd_2" json:"pct_80ccd_2"` // of basic+DA
	Pct80CCD2Govt decimal.Decimal `yaml:"pct_80ccd_2_govt" json:"pct_80ccd_2_govt"`

	Cap80DSelf          decimal.Decimal `yaml:"cap_80d_self" json:"cap_80d_self"`
	Cap80DSelfSenior    decimal.Decimal `yaml:"cap_80d_self_senior" json:"cap_80d_self_senior"`
	Cap80DParents       decimal.Decimal `yaml:"cap_80d_parents" json:"cap_80d_parents"`
	Cap80DParentsSenior decimal.Decimal `yaml:"cap_80d_parents_senior" json:"cap_80d_parents_senior"`
	Cap80DPreventive    decimal.Decimal `yaml:"cap_80d_preventive" json:"cap_80d_preventive"`

	Band80DDPartial         decimal.Decimal `yaml:"band_80dd_partial" json:"band_80dd_partial"` // 40%-80%
	Band80DDSevere          decimal.Decimal `yaml:"band_80dd_severe" json:"band_80dd_severe"`   // 80%+
	MinDisabilityPercent    int             `yaml:"min_disability_percent" json:"min_disability_percent"`
	SevereDisabilityPercent int             `yaml:"severe_disability_percent" json:"severe_disability_percent"`

	Cap80DDB       decimal.Decimal `yaml:"cap_80ddb" json:"cap_80ddb"`
	Cap80DDBSenior decimal.Decimal `yaml:"cap_80ddb_senior" json:"cap_80ddb_senior"`

	Window80EYears int `yaml:"window_80e_years" json:"window_80e_years"` // initial + 7 succeeding

	Cap80EEB         decimal.Decimal `yaml:"cap_80eeb" json:"cap_80eeb"`
	Window80EEBStart time.Time       `yaml:"window_80eeb_start" json:"window_80eeb_start"`
	Window80EEBEnd   time.Time       `yaml:"window_80eeb_end" json:"window_80eeb_end"`

	Cap80TTA decimal.Decimal `yaml:"cap_80tta" json:"cap_80tta"`
	Cap80TTB decimal.Decimal `yaml:"cap_80ttb" json:"cap_80ttb"`

	Pct80GQualifyingLimit decimal.Decimal `yaml:"pct_80g_qualifying_limit" json:"pct_80g_qualifying_limit"` // of adjusted GTI
}

// HousePropertyRules parameterize the house-property head.
type HousePropertyRules struct {
	SelfOccupiedInterestCeiling decimal.Decimal `yaml:"self_occupied_interest_ceiling" json:"self_occupied_interest_ceiling"`
	StandardDeductionRate       decimal.Decimal `yaml:"standard_deduction_rate" json:"standard_deduction_rate"` // 0.30 of NAV
	LossSetOffCap               decimal.Decimal `yaml:"loss_set_off_cap" json:"loss_set_off_cap"`
	PreConstructionYears        int             `yaml:"pre_construction_years" json:"pre_construction_years"`
}

// CapitalGainsRules are the special fixed rates per bucket.
type CapitalGainsRules struct {
	STCG111ARate        decimal.Decimal `yaml:"stcg_111a_rate" json:"stcg_111a_rate"`
	LTCG112ARate        decimal.Decimal `yaml:"ltcg_112a_rate" json:"ltcg_112a_rate"`
	LTCG112AExemptLimit decimal.Decimal `yaml:"ltcg_112a_exempt_limit" json:"ltcg_112a_exempt_limit"`
	LTCGDebtMFRate      decimal.Decimal `yaml:"ltcg_debt_mf_rate" json:"ltcg_debt_mf_rate"`
	LTCGOtherRate       decimal.Decimal `yaml:"ltcg_other_rate" json:"ltcg_other_rate"`
}

// RetirementRules are the exemption ceilings for one-off receipts.
type RetirementRules struct {
	GratuityCeiling        decimal.Decimal `yaml:"gratuity_ceiling" json:"gratuity_ceiling"`
	LeaveEncashmentCeiling decimal.Decimal `yaml:"leave_encashment_ceiling" json:"leave_encashment_ceiling"`
	LeaveSalaryMonths      int             `yaml:"leave_salary_months" json:"leave_salary_months"` // 10 x avg monthly salary
	LeaveDaysPerYear       int             `yaml:"leave_days_per_year" json:"leave_days_per_year"` // 30-day cap per year of service
	VRSExemptionCap        decimal.Decimal `yaml:"vrs_exemption_cap" json:"vrs_exemption_cap"`
}

// YearRules is the complete versioned rule set for one tax year. Rule sets
// are loaded once and treated as immutable for the process lifetime.
type YearRules struct {
	TaxYear string `yaml:"tax_year" json:"tax_year"`

	Old RegimeRules `yaml:"old" json:"old"`
	New RegimeRules `yaml:"new" json:"new"`

	CessRate       decimal.Decimal `yaml:"cess_rate" json:"cess_rate"`
	SeniorAge      int             `yaml:"senior_age" json:"senior_age"`
	SuperSeniorAge int             `yaml:"super_senior_age" json:"super_senior_age"`

	HRA           HRARules           `yaml:"hra" json:"hra"`
	Allowances    AllowanceCaps      `yaml:"allowances" json:"allowances"`
	Sections      SectionCaps        `yaml:"sections" json:"sections"`
	HouseProperty HousePropertyRules `yaml:"house_property" json:"house_property"`
	CapitalGains  CapitalGainsRules  `yaml:"capital_gains" json:"capital_gains"`
	Retirement    RetirementRules    `yaml:"retirement" json:"retirement"`
}

// ForRegime returns the regime-specific half of the rules.
func (yr *YearRules) ForRegime(regime Regime) *RegimeRules {
	if regime == RegimeNew {
		return &yr.New
	}
	return &yr.Old
}
