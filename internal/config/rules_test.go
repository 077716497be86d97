package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kredcalc/india-tax-engine/internal/domain"
)

func TestDefaultRules(t *testing.T) {
	registry := DefaultRules()
	require.Contains(t, registry, "2023-24")
	require.Contains(t, registry, "2024-25")

	for year, rules := range registry {
		assert.Equal(t, year, rules.TaxYear)
		assert.True(t, rules.CessRate.Equal(decimal.NewFromFloat(0.04)))
		assert.Equal(t, 60, rules.SeniorAge)
		assert.Equal(t, 80, rules.SuperSeniorAge)

		// Old regime slab tables exist for all three age bands.
		for _, band := range []domain.AgeBand{domain.AgeBandBelow60, domain.AgeBand60To79, domain.AgeBand80Plus} {
			assert.NotEmpty(t, rules.Old.Slabs[band], "%s old regime band %s", year, band)
			assert.NotEmpty(t, rules.New.Slabs[band], "%s new regime band %s", year, band)
		}
	}
}

func TestDefaultRulesYearDifferences(t *testing.T) {
	registry := DefaultRules()

	assert.True(t, registry["2023-24"].New.StandardDeduction.Equal(decimal.NewFromInt(50000)))
	assert.True(t, registry["2024-25"].New.StandardDeduction.Equal(decimal.NewFromInt(75000)))

	assert.True(t, registry["2023-24"].CapitalGains.LTCG112AExemptLimit.Equal(decimal.NewFromInt(100000)))
	assert.True(t, registry["2024-25"].CapitalGains.LTCG112AExemptLimit.Equal(decimal.NewFromInt(125000)))

	// Both years keep the old regime untouched.
	for _, year := range []string{"2023-24", "2024-25"} {
		old := registry[year].Old
		assert.True(t, old.RebateThreshold.Equal(decimal.NewFromInt(500000)))
		assert.True(t, old.RebateMax.Equal(decimal.NewFromInt(12500)))
		assert.True(t, old.StandardDeduction.Equal(decimal.NewFromInt(50000)))
	}
}

func TestNewRegimeDeductionWhitelist(t *testing.T) {
	rules := DefaultRules()["2024-25"]

	newRegime := rules.ForRegime(domain.RegimeNew)
	assert.True(t, newRegime.DeductionAllowed("80CCD(2)"))
	assert.True(t, newRegime.DeductionAllowed("80JJAA"))
	assert.False(t, newRegime.DeductionAllowed("80C"))
	assert.False(t, newRegime.DeductionAllowed("80D"))
	assert.True(t, newRegime.AllowanceExemptionsDisallowed)

	oldRegime := rules.ForRegime(domain.RegimeOld)
	assert.True(t, oldRegime.DeductionAllowed("80C"), "old regime has no whitelist")
	assert.False(t, oldRegime.AllowanceExemptionsDisallowed)
}

func TestNewRegimeSurchargeCap(t *testing.T) {
	rules := DefaultRules()["2024-25"]

	oldTop := rules.Old.SurchargeTiers[len(rules.Old.SurchargeTiers)-1]
	newTop := rules.New.SurchargeTiers[len(rules.New.SurchargeTiers)-1]

	assert.True(t, oldTop.Rate.Equal(decimal.NewFromFloat(0.37)))
	assert.True(t, newTop.Rate.Equal(decimal.NewFromFloat(0.25)), "new regime surcharge tops out at 25%%")
}

func TestLoadRulesFile(t *testing.T) {
	source := DefaultRules()["2024-25"]
	source.TaxYear = "2025-26"

	data, err := yaml.Marshal(source)
	require.NoError(t, err)

	filename := filepath.Join(t.TempDir(), "2025-26.yaml")
	require.NoError(t, os.WriteFile(filename, data, 0644))

	loaded, err := LoadRulesFile(filename)
	require.NoError(t, err)

	assert.Equal(t, "2025-26", loaded.TaxYear)
	assert.True(t, loaded.CessRate.Equal(source.CessRate))
	assert.True(t, loaded.New.StandardDeduction.Equal(source.New.StandardDeduction))
	assert.True(t, loaded.Sections.Cap80CFamily.Equal(source.Sections.Cap80CFamily))
	assert.Equal(t, source.New.DeductionWhitelist, loaded.New.DeductionWhitelist)
	assert.Len(t, loaded.Old.Slabs[domain.AgeBandBelow60], len(source.Old.Slabs[domain.AgeBandBelow60]))
}

func TestLoadRulesFileRequiresTaxYear(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("senior_age: 60\n"), 0644))

	_, err := LoadRulesFile(filename)
	assert.ErrorContains(t, err, "tax_year")
}

func TestLoadRulesFileMissing(t *testing.T) {
	_, err := LoadRulesFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRulesDir(t *testing.T) {
	t.Run("empty dir name returns the defaults", func(t *testing.T) {
		registry, err := LoadRulesDir("")
		require.NoError(t, err)
		assert.Contains(t, registry, "2024-25")
	})

	t.Run("file overrides a built-in year", func(t *testing.T) {
		override := DefaultRules()["2024-25"]
		override.New.StandardDeduction = decimal.NewFromInt(80000)

		data, err := yaml.Marshal(override)
		require.NoError(t, err)

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-25.yaml"), data, 0644))

		registry, err := LoadRulesDir(dir)
		require.NoError(t, err)
		assert.True(t, registry["2024-25"].New.StandardDeduction.Equal(decimal.NewFromInt(80000)))
		assert.Contains(t, registry, "2023-24", "untouched years keep their defaults")
	})
}
