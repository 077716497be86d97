package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kredcalc/india-tax-engine/internal/domain"
)

func sampleResult() *domain.TaxCalculationResult {
	return &domain.TaxCalculationResult{
		EmployeeID: "EMP-001",
		TaxYear:    "2024-25",
		RegimeUsed: domain.RegimeOld,

		GrossTotalIncome:  decimal.NewFromInt(600000),
		SalaryIncome:      decimal.NewFromInt(600000),
		TaxableIncome:     decimal.NewFromInt(600000),
		BaseTax:           decimal.NewFromInt(32500),
		Cess:              decimal.NewFromInt(1300),
		TaxBeforeCess:     decimal.NewFromInt(32500),
		TotalTaxLiability: decimal.NewFromInt(33800),
		EffectiveRate:     decimal.NewFromFloat(5.63),

		SlabLines: []domain.SlabLine{
			{Lower: decimal.Zero, Upper: decimal.NewFromInt(250000), Rate: decimal.Zero},
			{Lower: decimal.NewFromInt(250000), Upper: decimal.NewFromInt(500000), Rate: decimal.NewFromFloat(0.05),
				Amount: decimal.NewFromInt(250000), Tax: decimal.NewFromInt(12500)},
		},
		DeductionDetails: []domain.DeductionDetail{
			{Section: "80C", Claimed: decimal.NewFromInt(150000), Allowed: decimal.Zero, Note: "not allowed under new regime"},
		},
	}
}

func TestFormatRupees(t *testing.T) {
	assert.Equal(t, "₹1,50,000.00", FormatRupees(decimal.NewFromInt(150000)))
	assert.Equal(t, "₹0.00", FormatRupees(decimal.Zero))
	assert.Equal(t, "₹10,00,00,000.00", FormatRupees(decimal.NewFromInt(100000000)))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "5.63%", FormatPercentage(decimal.NewFromFloat(5.63)))
	assert.Equal(t, "0.00%", FormatPercentage(decimal.Zero))
}

func TestGetFormatterByName(t *testing.T) {
	console, err := GetFormatterByName("console")
	require.NoError(t, err)
	assert.Equal(t, "console", console.Name())

	jsonFmt, err := GetFormatterByName(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, "json", jsonFmt.Name())

	_, err = GetFormatterByName("xml")
	assert.ErrorContains(t, err, "unknown output format")
	assert.ErrorContains(t, err, "console")
}

func TestConsoleFormatterResult(t *testing.T) {
	out, err := ConsoleFormatter{}.FormatResult(sampleResult())
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "EMP-001")
	assert.Contains(t, text, "2024-25")
	assert.Contains(t, text, "₹33,800.00")
	assert.Contains(t, text, "₹6,00,000.00")
	assert.Contains(t, text, "5.63%")
	assert.Contains(t, text, "not allowed under new regime")
	assert.Contains(t, text, "5.00% on") // slab line rate rendered as percent
}

func TestJSONFormatterResult(t *testing.T) {
	out, err := JSONFormatter{}.FormatResult(sampleResult())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "EMP-001", decoded["employee_id"])
	assert.Equal(t, "33800", decoded["total_tax_liability"])
	assert.Equal(t, "OLD", decoded["regime_used"])
}

func TestConsoleFormatterComparison(t *testing.T) {
	comparison := &domain.RegimeComparisonResult{
		OldRegime:         sampleResult(),
		NewRegime:         sampleResult(),
		RecommendedRegime: domain.RegimeNew,
		Savings:           decimal.NewFromInt(12000),
	}

	out, err := ConsoleFormatter{}.FormatComparison(comparison)
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "REGIME COMPARISON")
	assert.Contains(t, text, "Recommended: NEW regime")
	assert.Contains(t, text, "₹12,000.00")
	assert.True(t, strings.Contains(text, "OLD") && strings.Contains(text, "NEW"))
}
