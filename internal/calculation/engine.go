package calculation

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/kredcalc/india-tax-engine/internal/domain"
)

// Engine runs the full tax pipeline: exemptions, income aggregation,
// deductions, slab tax, regime comparison. It holds only immutable rule
// tables, so concurrent use needs no locking.
type Engine struct {
	rules  map[string]*domain.YearRules
	logger Logger
}

// NewEngine creates an engine over a registry of per-year rule sets.
func NewEngine(rules map[string]*domain.YearRules) *Engine {
	return &Engine{rules: rules, logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.logger = NopLogger{}
		return
	}
	e.logger = l
}

// RulesFor selects the rule set for a tax year. There is no fallback:
// pricing a year under another year's rules would be silently wrong.
func (e *Engine) RulesFor(taxYear string) (*domain.YearRules, error) {
	rules, ok := e.rules[taxYear]
	if !ok {
		return nil, fmt.Errorf("no rules registered for tax year %q: %w", taxYear, domain.ErrMissingConfiguration)
	}
	return rules, nil
}

// SupportedYears lists the registered tax years, sorted.
func (e *Engine) SupportedYears() []string {
	years := make([]string, 0, len(e.rules))
	for y := range e.rules {
		years = append(years, y)
	}
	sort.Strings(years)
	return years
}

// Calculate prices one input under its declared regime. It fails closed:
// the first invalid field, unknown enum or missing rule set aborts the
// calculation; a partial result is never returned.
func (e *Engine) Calculate(input *domain.TaxCalculationInput) (*domain.TaxCalculationResult, error) {
	rules, err := e.RulesFor(input.TaxYear)
	if err != nil {
		return nil, err
	}
	if issues := inputIssues(input); len(issues) > 0 {
		return nil, fmt.Errorf("%s: %w", issues[0].Field, issues[0].Err)
	}

	regime := input.Regime
	gi := AggregateIncome(input, regime, rules)

	deductions, err := ApplyDeductions(input, regime, rules, gi.Ordinary)
	if err != nil {
		return nil, err
	}

	taxable := gi.Ordinary.Sub(deductions.Total)
	slabTax := ComputeSlabTax(taxable, gi.SpecialRate, regime, input.Age, rules)

	e.logger.Debugf("calculated %s/%s regime=%s taxable=%s liability=%s",
		input.EmployeeID, input.TaxYear, regime, taxable, slabTax.Total)

	result := &domain.TaxCalculationResult{
		EmployeeID: input.EmployeeID,
		TaxYear:    input.TaxYear,
		RegimeUsed: regime,

		GrossTotalIncome:    gi.GrossTotal().Round(2),
		SalaryIncome:        gi.Salary.Round(2),
		HousePropertyIncome: gi.HouseProperty.Round(2),
		OtherSourcesIncome:  gi.OtherSources.Round(2),
		TotalExemptions:     gi.TotalExemptions.Round(2),
		TotalDeductions:     deductions.Total.Round(2),
		TaxableIncome:       taxable.Round(2),

		BaseTax:        slabTax.BaseTax.Round(2),
		Rebate:         slabTax.Rebate.Round(2),
		SpecialRateTax: slabTax.SpecialRateTax.Round(2),
		TaxBeforeCess:  slabTax.Total.Sub(slabTax.Cess).Round(2),
		Surcharge:      slabTax.Surcharge.Round(2),
		Cess:           slabTax.Cess.Round(2),

		TotalTaxLiability: slabTax.Total.Round(2),

		Exemptions:       gi.Exemptions,
		DeductionDetails: deductions.Details,
		SlabLines:        slabTax.Lines,
	}
	if result.GrossTotalIncome.IsPositive() {
		result.EffectiveRate = result.TotalTaxLiability.
			Div(result.GrossTotalIncome).
			Mul(decimal.NewFromInt(100)).Round(2)
	}
	return result, nil
}

// CompareRegimes runs the pipeline under both regimes on the same input
// and recommends the lower liability. Ties resolve to the new regime,
// the statutory default.
func (e *Engine) CompareRegimes(input *domain.TaxCalculationInput) (*domain.RegimeComparisonResult, error) {
	oldInput := *input
	oldInput.Regime = domain.RegimeOld
	oldResult, err := e.Calculate(&oldInput)
	if err != nil {
		return nil, err
	}

	newInput := *input
	newInput.Regime = domain.RegimeNew
	newResult, err := e.Calculate(&newInput)
	if err != nil {
		return nil, err
	}

	recommended := domain.RegimeNew
	if oldResult.TotalTaxLiability.LessThan(newResult.TotalTaxLiability) {
		recommended = domain.RegimeOld
	}
	return &domain.RegimeComparisonResult{
		OldRegime:         oldResult,
		NewRegime:         newResult,
		RecommendedRegime: recommended,
		Savings:           oldResult.TotalTaxLiability.Sub(newResult.TotalTaxLiability).Abs(),
	}, nil
}

// Validate statically checks an input and reports every field-level
// problem at once, so a caller can present the complete list.
func (e *Engine) Validate(input *domain.TaxCalculationInput) domain.ValidationResult {
	var fieldErrors []domain.FieldError
	if _, err := e.RulesFor(input.TaxYear); err != nil {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "tax_year", Message: err.Error()})
	}
	for _, issue := range inputIssues(input) {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: issue.Field, Message: issue.Err.Error()})
	}
	return domain.ValidationResult{IsValid: len(fieldErrors) == 0, FieldErrors: fieldErrors}
}
