package domain

import "time"

// TaxCalculationInput describes one (employee, tax year, regime)
// computation request. All monetary fields are annual amounts.
type TaxCalculationInput struct {
	EmployeeID           string `yaml:"employee_id" json:"employee_id"`
	TaxYear              string `yaml:"tax_year" json:"tax_year"` // fiscal year, e.g. "2024-25"
	Age                  int    `yaml:"age" json:"age"`
	Regime               Regime `yaml:"regime" json:"regime"`
	IsGovernmentEmployee bool   `yaml:"is_government_employee" json:"is_government_employee"`

	Salary        SalaryIncome        `yaml:"salary" json:"salary"`
	HouseProperty HousePropertyIncome `yaml:"house_property" json:"house_property"`
	CapitalGains  CapitalGainsIncome  `yaml:"capital_gains" json:"capital_gains"`
	OtherIncome   OtherIncome         `yaml:"other_income" json:"other_income"`
	Deductions    Deductions          `yaml:"deductions" json:"deductions"`
	Retirement    RetirementBenefits  `yaml:"retirement" json:"retirement"`
}

// SalaryIncome holds salary components plus the context fields the
// conditional exemptions need (city for HRA, months and child counts for
// periodic allowances).
type SalaryIncome struct {
	Basic              Rupees `yaml:"basic" json:"basic"`
	DearnessAllowance  Rupees `yaml:"dearness_allowance" json:"dearness_allowance"`
	HRAReceived        Rupees `yaml:"hra_received" json:"hra_received"`
	Bonus              Rupees `yaml:"bonus" json:"bonus"`
	Commission         Rupees `yaml:"commission" json:"commission"`
	LTAReceived        Rupees `yaml:"lta_received" json:"lta_received"`
	LTAClaimed         Rupees `yaml:"lta_claimed" json:"lta_claimed"` // actual travel cost declared

	// Allowances maps allowance code (see Allowance* constants) to the
	// annual amount received. Unknown codes stay fully taxable.
	Allowances map[string]Rupees `yaml:"allowances,omitempty" json:"allowances,omitempty"`

	// AllowanceMonths is the number of months each periodic allowance was
	// drawn; absent entries default to 12.
	AllowanceMonths map[string]int `yaml:"allowance_months,omitempty" json:"allowance_months,omitempty"`

	Perquisites map[string]Rupees `yaml:"perquisites,omitempty" json:"perquisites,omitempty"`

	CityCategory  CityCategory `yaml:"city_category" json:"city_category"`
	RentPaid      Rupees       `yaml:"rent_paid" json:"rent_paid"`
	ChildrenCount int          `yaml:"children_count" json:"children_count"`
	IsDisabled    bool         `yaml:"is_disabled" json:"is_disabled"`
}

// HousePropertyIncome covers one house property. Exactly one occupancy
// status applies.
type HousePropertyIncome struct {
	Occupancy               Occupancy `yaml:"occupancy" json:"occupancy"`
	RentReceived            Rupees    `yaml:"rent_received" json:"rent_received"`
	MunicipalTaxes          Rupees    `yaml:"municipal_taxes" json:"municipal_taxes"`
	HomeLoanInterest        Rupees    `yaml:"home_loan_interest" json:"home_loan_interest"`
	PreConstructionInterest Rupees    `yaml:"pre_construction_interest" json:"pre_construction_interest"`

	// Pre-construction interest is amortized only when construction
	// completed within five years of the loan.
	ConstructionCompletedWithinFiveYears bool `yaml:"construction_completed_within_five_years" json:"construction_completed_within_five_years"`
}

// CapitalGainsIncome carries the six statutory buckets. Which buckets are
// slab-taxed and which carry special rates is decided by the year rules.
type CapitalGainsIncome struct {
	STCG111A   Rupees `yaml:"stcg_111a" json:"stcg_111a"`
	STCGDebtMF Rupees `yaml:"stcg_debt_mf" json:"stcg_debt_mf"`
	STCGOther  Rupees `yaml:"stcg_other" json:"stcg_other"`
	LTCG112A   Rupees `yaml:"ltcg_112a" json:"ltcg_112a"`
	LTCGDebtMF Rupees `yaml:"ltcg_debt_mf" json:"ltcg_debt_mf"`
	LTCGOther  Rupees `yaml:"ltcg_other" json:"ltcg_other"`
}

// OtherIncome is income from other sources. Interest relief under
// 80TTA/80TTB is applied by the deduction aggregator, not here.
type OtherIncome struct {
	SavingsInterest          Rupees `yaml:"savings_interest" json:"savings_interest"`
	FixedDepositInterest     Rupees `yaml:"fixed_deposit_interest" json:"fixed_deposit_interest"`
	RecurringDepositInterest Rupees `yaml:"recurring_deposit_interest" json:"recurring_deposit_interest"`
	OtherInterest            Rupees `yaml:"other_interest" json:"other_interest"`
	Dividends                Rupees `yaml:"dividends" json:"dividends"`
	Gifts                    Rupees `yaml:"gifts" json:"gifts"`
	Business                 Rupees `yaml:"business" json:"business"`
	Miscellaneous            Rupees `yaml:"miscellaneous" json:"miscellaneous"`
}

// Deductions are the declared Chapter VI-A amounts. Regime eligibility and
// caps are the aggregator's concern; declaring an ineligible section is
// not an error.
type Deductions struct {
	// Section80C maps sub-item code (ppf, elss, lic, tuition_fees,
	// home_loan_principal, ...) to the declared amount. Sub-items share
	// the combined 80C/80CCC/80CCD(1) cap.
	Section80C map[string]Rupees `yaml:"section_80c,omitempty" json:"section_80c,omitempty"`

	Section80CCC   Rupees `yaml:"section_80ccc" json:"section_80ccc"`
	Section80CCD1  Rupees `yaml:"section_80ccd_1" json:"section_80ccd_1"`
	Section80CCD1B Rupees `yaml:"section_80ccd_1b" json:"section_80ccd_1b"`
	Section80CCD2  Rupees `yaml:"section_80ccd_2" json:"section_80ccd_2"` // employer NPS

	Section80D Medical80D `yaml:"section_80d" json:"section_80d"`

	Section80DD  *Disability80DD        `yaml:"section_80dd,omitempty" json:"section_80dd,omitempty"`
	Section80U   *Disability80U         `yaml:"section_80u,omitempty" json:"section_80u,omitempty"`
	Section80DDB *MedicalTreatment80DDB `yaml:"section_80ddb,omitempty" json:"section_80ddb,omitempty"`
	Section80E   *EducationLoan80E      `yaml:"section_80e,omitempty" json:"section_80e,omitempty"`
	Section80EEB *ElectricVehicle80EEB  `yaml:"section_80eeb,omitempty" json:"section_80eeb,omitempty"`

	Donations    []Donation80G `yaml:"donations,omitempty" json:"donations,omitempty"`
	Section80GGC Rupees        `yaml:"section_80ggc" json:"section_80ggc"` // political donations, non-cash
}

// Medical80D splits health-insurance premiums into the self+family and
// parents buckets; each is tiered by the relevant person's age.
type Medical80D struct {
	SelfPremium       Rupees `yaml:"self_premium" json:"self_premium"`
	ParentsPremium    Rupees `yaml:"parents_premium" json:"parents_premium"`
	PreventiveCheckup Rupees `yaml:"preventive_checkup" json:"preventive_checkup"`
	ParentsAge        int    `yaml:"parents_age" json:"parents_age"`
}

// Disability80DD is a dependant-disability claim. The allowed amount is a
// fixed band by disability percentage; the declared amount is ignored.
type Disability80DD struct {
	Relation          DisabilityRelation `yaml:"relation" json:"relation"`
	DisabilityPercent int                `yaml:"disability_percent" json:"disability_percent"`
}

// Disability80U is the taxpayer's own disability claim.
type Disability80U struct {
	DisabilityPercent int `yaml:"disability_percent" json:"disability_percent"`
}

// MedicalTreatment80DDB is expenditure on specified-disease treatment.
type MedicalTreatment80DDB struct {
	Amount     Rupees `yaml:"amount" json:"amount"`
	PatientAge int    `yaml:"patient_age" json:"patient_age"`
}

// EducationLoan80E is education-loan interest; deductible only within the
// initial year plus seven succeeding years from first repayment.
type EducationLoan80E struct {
	Interest           Rupees `yaml:"interest" json:"interest"`
	FirstRepaymentYear int    `yaml:"first_repayment_year" json:"first_repayment_year"` // fiscal start year, e.g. 2020
}

// ElectricVehicle80EEB is EV-loan interest, eligible only when the vehicle
// purchase date falls inside the configured statutory window.
type ElectricVehicle80EEB struct {
	Interest     Rupees    `yaml:"interest" json:"interest"`
	PurchaseDate time.Time `yaml:"purchase_date" json:"purchase_date"`
}

// Donation80G is one declared donation. The head must belong to the
// declared tier's enumerated list.
type Donation80G struct {
	Head   DonationHead `yaml:"head" json:"head"`
	Tier   DonationTier `yaml:"tier" json:"tier"`
	Amount Rupees       `yaml:"amount" json:"amount"`
}

// RetirementBenefits are one-off salary receipts with their own exemption
// rules.
type RetirementBenefits struct {
	LeaveEncashment *LeaveEncashment `yaml:"leave_encashment,omitempty" json:"leave_encashment,omitempty"`
	Gratuity        *Gratuity        `yaml:"gratuity,omitempty" json:"gratuity,omitempty"`
	VRSCompensation Rupees           `yaml:"vrs_compensation" json:"vrs_compensation"`
}

// LeaveEncashment is leave salary received. During-service encashment is
// fully taxable; retirement and death cases carry statutory exemptions.
type LeaveEncashment struct {
	Amount               Rupees                  `yaml:"amount" json:"amount"`
	Occasion             LeaveEncashmentOccasion `yaml:"occasion" json:"occasion"`
	AverageMonthlySalary Rupees                  `yaml:"average_monthly_salary" json:"average_monthly_salary"`
	UnavailedLeaveDays   int                     `yaml:"unavailed_leave_days" json:"unavailed_leave_days"`
	YearsOfService       int                     `yaml:"years_of_service" json:"years_of_service"`
}

// Gratuity is a gratuity receipt; the formula differs for establishments
// covered by the Payment of Gratuity Act.
type Gratuity struct {
	Amount                 Rupees `yaml:"amount" json:"amount"`
	CoveredByGratuityAct   bool   `yaml:"covered_by_gratuity_act" json:"covered_by_gratuity_act"`
	LastDrawnMonthlySalary Rupees `yaml:"last_drawn_monthly_salary" json:"last_drawn_monthly_salary"`
	YearsOfService         int    `yaml:"years_of_service" json:"years_of_service"`
}
