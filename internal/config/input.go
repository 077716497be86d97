package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kredcalc/india-tax-engine/internal/domain"
)

// InputParser handles parsing of calculation input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a calculation input from a YAML file. Monetary
// fields accept plain numbers and grouped strings ("1,50,000"); booleans
// in numeric fields fail the parse.
func (ip *InputParser) LoadFromFile(filename string) (*domain.TaxCalculationInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.TaxCalculationInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if input.TaxYear == "" {
		return nil, fmt.Errorf("tax_year is required")
	}
	if input.EmployeeID == "" {
		return nil, fmt.Errorf("employee_id is required")
	}
	return &input, nil
}

// CreateExampleInput builds a worked declaration covering most sections,
// for `taxengine example` and the docs.
func (ip *InputParser) CreateExampleInput() *domain.TaxCalculationInput {
	return &domain.TaxCalculationInput{
		EmployeeID:           "EMP-1042",
		TaxYear:              "2024-25",
		Age:                  34,
		Regime:               domain.RegimeOld,
		IsGovernmentEmployee: false,
		Salary: domain.SalaryIncome{
			Basic:             domain.NewRupees(720000),
			DearnessAllowance: domain.NewRupees(72000),
			HRAReceived:       domain.NewRupees(288000),
			Bonus:             domain.NewRupees(60000),
			LTAReceived:       domain.NewRupees(40000),
			LTAClaimed:        domain.NewRupees(28000),
			Allowances: map[string]domain.Rupees{
				domain.AllowanceChildrenEducation: domain.NewRupees(4800),
				domain.AllowanceTransport:         domain.NewRupees(21600),
			},
			CityCategory:  domain.CityMetro,
			RentPaid:      domain.NewRupees(300000),
			ChildrenCount: 2,
		},
		HouseProperty: domain.HousePropertyIncome{
			Occupancy:        domain.OccupancySelfOccupied,
			HomeLoanInterest: domain.NewRupees(240000),
		},
		CapitalGains: domain.CapitalGainsIncome{
			STCG111A: domain.NewRupees(30000),
			LTCG112A: domain.NewRupees(150000),
		},
		OtherIncome: domain.OtherIncome{
			SavingsInterest:      domain.NewRupees(14000),
			FixedDepositInterest: domain.NewRupees(40000),
			Dividends:            domain.NewRupees(12000),
		},
		Deductions: domain.Deductions{
			Section80C: map[string]domain.Rupees{
				"ppf":          domain.NewRupees(90000),
				"elss":         domain.NewRupees(50000),
				"tuition_fees": domain.NewRupees(36000),
			},
			Section80CCD1B: domain.NewRupees(50000),
			Section80D: domain.Medical80D{
				SelfPremium:       domain.NewRupees(22000),
				ParentsPremium:    domain.NewRupees(38000),
				PreventiveCheckup: domain.NewRupees(6500),
				ParentsAge:        63,
			},
			Donations: []domain.Donation80G{
				{Head: domain.HeadPMNationalReliefFund, Tier: domain.TierFullNoLimit, Amount: domain.NewRupees(10000)},
				{Head: domain.HeadCharitableInstitution, Tier: domain.TierHalfWithLimit, Amount: domain.NewRupees(20000)},
			},
		},
	}
}

// WriteExampleFile writes the worked example as YAML.
func (ip *InputParser) WriteExampleFile(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleInput())
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
