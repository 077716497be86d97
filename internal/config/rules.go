package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/kredcalc/india-tax-engine/internal/domain"
)

// Rule tables are versioned data keyed by tax year, never inline
// conditionals. The engine selects a set with the input's tax_year and
// fails when none is registered.

// slabMax is the open upper bound of the last slab.
var slabMax = decimal.New(1, 13)

func rupees(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
func rate(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }
func date(s string) time.Time        { t, _ := time.Parse("2006-01-02", s); return t }

func slab(lower, upper int64, r float64) domain.Slab {
	return domain.Slab{Lower: rupees(lower), Upper: rupees(upper), Rate: rate(r)}
}

func openSlab(lower int64, r float64) domain.Slab {
	return domain.Slab{Lower: rupees(lower), Upper: slabMax, Rate: rate(r)}
}

// sameForAllBands registers one slab table under every age band, used by
// the new regime so lookups never branch on regime.
func sameForAllBands(slabs []domain.Slab) map[domain.AgeBand][]domain.Slab {
	return map[domain.AgeBand][]domain.Slab{
		domain.AgeBandBelow60: slabs,
		domain.AgeBand60To79:  slabs,
		domain.AgeBand80Plus:  slabs,
	}
}

// newRegimeWhitelist lists the only deduction sections the new regime
// keeps.
var newRegimeWhitelist = []string{"80CCD(2)", "80JJAA"}

// DefaultRules returns the built-in rule sets (FY 2023-24 and 2024-25).
// Further years load from YAML via LoadRulesFile.
func DefaultRules() map[string]*domain.YearRules {
	return map[string]*domain.YearRules{
		"2023-24": rules2023_24(),
		"2024-25": rules2024_25(),
	}
}

func rules2023_24() *domain.YearRules {
	yr := baseRules("2023-24")

	yr.New.Slabs = sameForAllBands([]domain.Slab{
		slab(0, 300000, 0),
		slab(300000, 600000, 0.05),
		slab(600000, 900000, 0.10),
		slab(900000, 1200000, 0.15),
		slab(1200000, 1500000, 0.20),
		openSlab(1500000, 0.30),
	})
	yr.New.StandardDeduction = rupees(50000)

	yr.CapitalGains = domain.CapitalGainsRules{
		STCG111ARate:        rate(0.15),
		LTCG112ARate:        rate(0.10),
		LTCG112AExemptLimit: rupees(100000),
		LTCGDebtMFRate:      rate(0.20),
		LTCGOtherRate:       rate(0.20),
	}
	return yr
}

func rules2024_25() *domain.YearRules {
	yr := baseRules("2024-25")

	yr.New.Slabs = sameForAllBands([]domain.Slab{
		slab(0, 300000, 0),
		slab(300000, 700000, 0.05),
		slab(700000, 1000000, 0.10),
		slab(1000000, 1200000, 0.15),
		slab(1200000, 1500000, 0.20),
		openSlab(1500000, 0.30),
	})
	yr.New.StandardDeduction = rupees(75000)

	yr.CapitalGains = domain.CapitalGainsRules{
		STCG111ARate:        rate(0.20),
		LTCG112ARate:        rate(0.125),
		LTCG112AExemptLimit: rupees(125000),
		LTCGDebtMFRate:      rate(0.125),
		LTCGOtherRate:       rate(0.125),
	}
	return yr
}

// baseRules carries the parts shared by the supported years; the caller
// overrides what changed.
func baseRules(taxYear string) *domain.YearRules {
	oldSurcharge := []domain.SurchargeTier{
		{Threshold: rupees(5000000), Rate: rate(0.10)},
		{Threshold: rupees(10000000), Rate: rate(0.15)},
		{Threshold: rupees(20000000), Rate: rate(0.25)},
		{Threshold: rupees(50000000), Rate: rate(0.37)},
	}
	// The new regime caps the top surcharge at 25%.
	newSurcharge := []domain.SurchargeTier{
		{Threshold: rupees(5000000), Rate: rate(0.10)},
		{Threshold: rupees(10000000), Rate: rate(0.15)},
		{Threshold: rupees(20000000), Rate: rate(0.25)},
	}

	return &domain.YearRules{
		TaxYear: taxYear,

		Old: domain.RegimeRules{
			Slabs: map[domain.AgeBand][]domain.Slab{
				domain.AgeBandBelow60: {
					slab(0, 250000, 0),
					slab(250000, 500000, 0.05),
					slab(500000, 1000000, 0.20),
					openSlab(1000000, 0.30),
				},
				domain.AgeBand60To79: {
					slab(0, 300000, 0),
					slab(300000, 500000, 0.05),
					slab(500000, 1000000, 0.20),
					openSlab(1000000, 0.30),
				},
				domain.AgeBand80Plus: {
					slab(0, 500000, 0),
					slab(500000, 1000000, 0.20),
					openSlab(1000000, 0.30),
				},
			},
			RebateThreshold:   rupees(500000),
			RebateMax:         rupees(12500),
			SurchargeTiers:    oldSurcharge,
			StandardDeduction: rupees(50000),
		},
		New: domain.RegimeRules{
			RebateThreshold:               rupees(700000),
			RebateMax:                     rupees(25000),
			SurchargeTiers:                newSurcharge,
			DeductionWhitelist:            newRegimeWhitelist,
			AllowanceExemptionsDisallowed: true,
		},

		CessRate:       rate(0.04),
		SeniorAge:      60,
		SuperSeniorAge: 80,

		HRA: domain.HRARules{
			MetroRate:    rate(0.50),
			NonMetroRate: rate(0.40),
			RentOffset:   rate(0.10),
		},
		Allowances: domain.AllowanceCaps{
			ChildEducationPerMonth:    rupees(100),
			HostelPerMonth:            rupees(300),
			MaxChildren:               2,
			TransportPerMonth:         rupees(1600),
			TransportDisabledPerMonth: rupees(3200),
			HillsPerMonth:             rupees(800),
			BorderPerMonth:            rupees(1300),
			UndergroundMinesPerMonth:  rupees(800),
			TransportEmployeePct:      rate(0.70),
			TransportEmployeePerMonth: rupees(10000),
			EntertainmentCap:          rupees(5000),
			EntertainmentBasicPct:     rate(0.20),
		},
		Sections: domain.SectionCaps{
			Cap80CFamily:  rupees(150000),
			Cap80CCD1B:    rupees(50000),
			Pct80CCD2:     rate(0.10),
			Pct80CCD2Govt: rate(0.14),

			Cap80DSelf:          rupees(25000),
			Cap80DSelfSenior:    rupees(50000),
			Cap80DParents:       rupees(25000),
			Cap80DParentsSenior: rupees(50000),
			Cap80DPreventive:    rupees(5000),

			Band80DDPartial:         rupees(75000),
			Band80DDSevere:          rupees(125000),
			MinDisabilityPercent:    40,
			SevereDisabilityPercent: 80,

			Cap80DDB:       rupees(40000),
			Cap80DDBSenior: rupees(100000),

			Window80EYears: 8,

			Cap80EEB:         rupees(150000),
			Window80EEBStart: date("2019-04-01"),
			Window80EEBEnd:   date("2023-03-31"),

			Cap80TTA: rupees(10000),
			Cap80TTB: rupees(50000),

			Pct80GQualifyingLimit: rate(0.10),
		},
		HouseProperty: domain.HousePropertyRules{
			SelfOccupiedInterestCeiling: rupees(200000),
			StandardDeductionRate:       rate(0.30),
			LossSetOffCap:               rupees(200000),
			PreConstructionYears:        5,
		},
		Retirement: domain.RetirementRules{
			GratuityCeiling:        rupees(2000000),
			LeaveEncashmentCeiling: rupees(2500000),
			LeaveSalaryMonths:      10,
			LeaveDaysPerYear:       30,
			VRSExemptionCap:        rupees(500000),
		},
	}
}

// LoadRulesFile loads one tax year's rule set from a YAML file.
func LoadRulesFile(filename string) (*domain.YearRules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	var rules domain.YearRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if rules.TaxYear == "" {
		return nil, fmt.Errorf("rules file %s: tax_year is required", filename)
	}
	return &rules, nil
}

// LoadRulesDir merges YAML rule files from a directory over the built-in
// defaults. A file for an already-registered year replaces it.
func LoadRulesDir(dir string) (map[string]*domain.YearRules, error) {
	registry := DefaultRules()
	if dir == "" {
		return registry, nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	for _, filename := range matches {
		rules, err := LoadRulesFile(filename)
		if err != nil {
			return nil, err
		}
		registry[rules.TaxYear] = rules
	}
	return registry, nil
}
