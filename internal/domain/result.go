package domain

import "github.com/shopspring/decimal"

// ExemptionDetail records one allowance/receipt exemption computation.
type ExemptionDetail struct {
	Code     string          `yaml:"code" json:"code"`
	Received decimal.Decimal `yaml:"received" json:"received"`
	Exempt   decimal.Decimal `yaml:"exempt" json:"exempt"`
	Taxable  decimal.Decimal `yaml:"taxable" json:"taxable"`
	Note     string          `yaml:"note,omitempty" json:"note,omitempty"`
}

// DeductionDetail records one Chapter VI-A section outcome. An ineligible
// section carries Allowed zero and an explanatory note; it is never an
// error, so the same input prices under both regimes.
type DeductionDetail struct {
	Section string          `yaml:"section" json:"section"`
	Claimed decimal.Decimal `yaml:"claimed" json:"claimed"`
	Allowed decimal.Decimal `yaml:"allowed" json:"allowed"`
	Note    string          `yaml:"note,omitempty" json:"note,omitempty"`
}

// SlabLine is one slab of the progressive walk.
type SlabLine struct {
	Lower  decimal.Decimal `yaml:"lower" json:"lower"`
	Upper  decimal.Decimal `yaml:"upper" json:"upper"`
	Rate   decimal.Decimal `yaml:"rate" json:"rate"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"` // income taxed in this slab
	Tax    decimal.Decimal `yaml:"tax" json:"tax"`
}

// TaxCalculationResult is the full liability breakdown for one request.
// Created fresh on every calculation; never mutated once returned.
type TaxCalculationResult struct {
	EmployeeID string `yaml:"employee_id" json:"employee_id"`
	TaxYear    string `yaml:"tax_year" json:"tax_year"`
	RegimeUsed Regime `yaml:"regime_used" json:"regime_used"`

	GrossTotalIncome    decimal.Decimal `yaml:"gross_total_income" json:"gross_total_income"`
	SalaryIncome        decimal.Decimal `yaml:"salary_income" json:"salary_income"`
	HousePropertyIncome decimal.Decimal `yaml:"house_property_income" json:"house_property_income"`
	OtherSourcesIncome  decimal.Decimal `yaml:"other_sources_income" json:"other_sources_income"`
	TotalExemptions     decimal.Decimal `yaml:"total_exemptions" json:"total_exemptions"`
	TotalDeductions     decimal.Decimal `yaml:"total_deductions" json:"total_deductions"`
	TaxableIncome       decimal.Decimal `yaml:"taxable_income" json:"taxable_income"`

	BaseTax        decimal.Decimal `yaml:"base_tax" json:"base_tax"`
	Rebate         decimal.Decimal `yaml:"rebate" json:"rebate"`
	SpecialRateTax decimal.Decimal `yaml:"special_rate_tax" json:"special_rate_tax"`
	TaxBeforeCess  decimal.Decimal `yaml:"tax_before_cess" json:"tax_before_cess"`
	Surcharge      decimal.Decimal `yaml:"surcharge" json:"surcharge"`
	Cess           decimal.Decimal `yaml:"cess" json:"cess"`

	TotalTaxLiability decimal.Decimal `yaml:"total_tax_liability" json:"total_tax_liability"`
	EffectiveRate     decimal.Decimal `yaml:"effective_rate" json:"effective_rate"` // percent of gross total income

	Exemptions       []ExemptionDetail `yaml:"exemptions,omitempty" json:"exemptions,omitempty"`
	DeductionDetails []DeductionDetail `yaml:"deduction_details,omitempty" json:"deduction_details,omitempty"`
	SlabLines        []SlabLine        `yaml:"slab_lines,omitempty" json:"slab_lines,omitempty"`
}

// RegimeComparisonResult holds the full pipeline run under both regimes.
type RegimeComparisonResult struct {
	OldRegime         *TaxCalculationResult `yaml:"old_regime" json:"old_regime"`
	NewRegime         *TaxCalculationResult `yaml:"new_regime" json:"new_regime"`
	RecommendedRegime Regime                `yaml:"recommended_regime" json:"recommended_regime"`
	Savings           decimal.Decimal       `yaml:"savings" json:"savings"`
}

// FieldError is one field-level validation problem.
type FieldError struct {
	Field   string `yaml:"field" json:"field"`
	Message string `yaml:"message" json:"message"`
}

// ValidationResult carries every problem found in an input, never just the
// first, so a caller can present a complete error list.
type ValidationResult struct {
	IsValid     bool         `yaml:"is_valid" json:"is_valid"`
	FieldErrors []FieldError `yaml:"field_errors,omitempty" json:"field_errors,omitempty"`
}
