package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kredcalc/india-tax-engine/internal/config"
	"github.com/kredcalc/india-tax-engine/internal/domain"
)

func newTestEngine() *Engine {
	return NewEngine(config.DefaultRules())
}

func TestEngineCalculate(t *testing.T) {
	engine := newTestEngine()
	input := &domain.TaxCalculationInput{
		EmployeeID: "EMP-001",
		TaxYear:    "2024-25",
		Age:        35,
		Regime:     domain.RegimeOld,
		Salary:     domain.SalaryIncome{Basic: domain.NewRupees(650000)},
	}

	result, err := engine.Calculate(input)
	require.NoError(t, err)

	assert.Equal(t, "EMP-001", result.EmployeeID)
	assert.Equal(t, domain.RegimeOld, result.RegimeUsed)
	assert.True(t, result.SalaryIncome.Equal(decimal.NewFromInt(600000)))
	assert.True(t, result.GrossTotalIncome.Equal(decimal.NewFromInt(600000)))
	assert.True(t, result.TaxableIncome.Equal(decimal.NewFromInt(600000)))
	assert.True(t, result.BaseTax.Equal(decimal.NewFromInt(32500)))
	assert.True(t, result.Cess.Equal(decimal.NewFromInt(1300)))
	assert.True(t, result.TaxBeforeCess.Equal(decimal.NewFromInt(32500)))
	assert.True(t, result.TotalTaxLiability.Equal(decimal.NewFromInt(33800)))
	// 33800 / 600000, as a percentage
	assert.True(t, result.EffectiveRate.Equal(decimal.NewFromFloat(5.63)),
		"expected 5.63, got %s", result.EffectiveRate)
	assert.NotEmpty(t, result.SlabLines)
}

func TestEngineCalculateIsIdempotent(t *testing.T) {
	engine := newTestEngine()
	input := config.NewInputParser().CreateExampleInput()

	first, err := engine.Calculate(input)
	require.NoError(t, err)
	second, err := engine.Calculate(input)
	require.NoError(t, err)

	assert.True(t, first.TotalTaxLiability.Equal(second.TotalTaxLiability))
	assert.True(t, first.TaxableIncome.Equal(second.TaxableIncome))
	assert.True(t, first.TotalDeductions.Equal(second.TotalDeductions))
}

func TestEngineCalculateUnknownYear(t *testing.T) {
	engine := newTestEngine()
	input := &domain.TaxCalculationInput{
		EmployeeID: "EMP-001",
		TaxYear:    "2031-32",
		Age:        35,
		Regime:     domain.RegimeOld,
	}

	_, err := engine.Calculate(input)
	assert.ErrorIs(t, err, domain.ErrMissingConfiguration)
}

func TestEngineCalculateFailsClosed(t *testing.T) {
	engine := newTestEngine()

	t.Run("unknown regime", func(t *testing.T) {
		input := &domain.TaxCalculationInput{
			TaxYear: "2024-25",
			Age:     35,
			Regime:  domain.Regime("HYBRID"),
		}
		_, err := engine.Calculate(input)
		assert.ErrorIs(t, err, domain.ErrUnknownEnumValue)
	})

	t.Run("negative amount", func(t *testing.T) {
		input := &domain.TaxCalculationInput{
			TaxYear: "2024-25",
			Age:     35,
			Regime:  domain.RegimeOld,
			Salary: domain.SalaryIncome{
				Basic: domain.RupeesFromDecimal(decimal.NewFromInt(-500)),
			},
		}
		_, err := engine.Calculate(input)
		assert.ErrorIs(t, err, domain.ErrOutOfRange)
	})

	t.Run("age out of range", func(t *testing.T) {
		input := &domain.TaxCalculationInput{
			TaxYear: "2024-25",
			Age:     150,
			Regime:  domain.RegimeOld,
		}
		_, err := engine.Calculate(input)
		assert.ErrorIs(t, err, domain.ErrOutOfRange)
	})
}

func TestEngineSupportedYears(t *testing.T) {
	years := newTestEngine().SupportedYears()
	assert.Equal(t, []string{"2023-24", "2024-25"}, years)
}

func TestCompareRegimesZeroInput(t *testing.T) {
	engine := newTestEngine()
	input := &domain.TaxCalculationInput{
		EmployeeID: "EMP-000",
		TaxYear:    "2024-25",
		Age:        35,
		Regime:     domain.RegimeOld,
	}

	comparison, err := engine.CompareRegimes(input)
	require.NoError(t, err)

	assert.True(t, comparison.OldRegime.TotalTaxLiability.IsZero())
	assert.True(t, comparison.NewRegime.TotalTaxLiability.IsZero())
	assert.Equal(t, domain.RegimeNew, comparison.RecommendedRegime, "ties resolve to the new regime")
	assert.True(t, comparison.Savings.IsZero())
}

func TestCompareRegimes(t *testing.T) {
	engine := newTestEngine()
	input := config.NewInputParser().CreateExampleInput()

	comparison, err := engine.CompareRegimes(input)
	require.NoError(t, err)

	assert.Equal(t, domain.RegimeOld, comparison.OldRegime.RegimeUsed)
	assert.Equal(t, domain.RegimeNew, comparison.NewRegime.RegimeUsed)

	diff := comparison.OldRegime.TotalTaxLiability.Sub(comparison.NewRegime.TotalTaxLiability)
	assert.True(t, comparison.Savings.Equal(diff.Abs()))

	if comparison.OldRegime.TotalTaxLiability.LessThan(comparison.NewRegime.TotalTaxLiability) {
		assert.Equal(t, domain.RegimeOld, comparison.RecommendedRegime)
	} else {
		assert.Equal(t, domain.RegimeNew, comparison.RecommendedRegime)
	}

	// The declared regime on the input must not leak into either branch.
	assert.True(t, comparison.OldRegime.TotalDeductions.GreaterThan(comparison.NewRegime.TotalDeductions),
		"old regime keeps Chapter VI-A deductions the new regime drops")
}

func TestEngineValidateCollectsAllErrors(t *testing.T) {
	engine := newTestEngine()
	input := &domain.TaxCalculationInput{
		TaxYear: "not-a-year",
		Age:     300,
		Regime:  domain.Regime("HYBRID"),
		Salary: domain.SalaryIncome{
			CityCategory: domain.CityCategory("VILLAGE"),
		},
	}

	result := engine.Validate(input)
	assert.False(t, result.IsValid)
	require.GreaterOrEqual(t, len(result.FieldErrors), 4)

	fields := make(map[string]bool)
	for _, fe := range result.FieldErrors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["tax_year"])
	assert.True(t, fields["age"])
	assert.True(t, fields["regime"])
	assert.True(t, fields["salary.city_category"])
}

func TestEngineValidateAcceptsExample(t *testing.T) {
	engine := newTestEngine()
	result := engine.Validate(config.NewInputParser().CreateExampleInput())
	assert.True(t, result.IsValid, "field errors: %v", result.FieldErrors)
	assert.Empty(t, result.FieldErrors)
}
