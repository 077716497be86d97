package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/kredcalc/india-tax-engine/internal/domain"
)

// Exemption calculators are total functions: a zero or absent receipt
// contributes 0 exempt and 0 taxable, never an error.

// CalculateHRA computes the section 10(13A) house-rent-allowance
// exemption: the least of HRA received, rent paid less 10% of basic+DA,
// and the city-rate share of basic+DA. No rent, a self-occupied
// residence, or the new regime means no exemption.
func CalculateHRA(sal *domain.SalaryIncome, occupancy domain.Occupancy, regime domain.Regime, rules *domain.YearRules) domain.ExemptionDetail {
	received := sal.HRAReceived.Decimal
	detail := domain.ExemptionDetail{Code: "hra", Received: received, Taxable: received}
	if received.IsZero() {
		return detail
	}
	if rules.ForRegime(regime).AllowanceExemptionsDisallowed {
		detail.Note = "not exempt under new regime"
		return detail
	}
	if occupancy == domain.OccupancySelfOccupied || sal.RentPaid.IsZero() {
		detail.Note = "no rent paid"
		return detail
	}

	basicDA := sal.Basic.Add(sal.DearnessAllowance.Decimal)
	cityRate := rules.HRA.NonMetroRate
	if sal.CityCategory == domain.CityMetro {
		cityRate = rules.HRA.MetroRate
	}
	rentExcess := sal.RentPaid.Sub(basicDA.Mul(rules.HRA.RentOffset))
	if rentExcess.IsNegative() {
		rentExcess = decimal.Zero
	}
	exempt := decimal.Min(received, rentExcess, basicDA.Mul(cityRate))

	detail.Exempt = exempt
	detail.Taxable = received.Sub(exempt)
	return detail
}

// CalculateLTA exempts leave travel assistance up to the declared travel
// cost under the old regime.
func CalculateLTA(sal *domain.SalaryIncome, regime domain.Regime, rules *domain.YearRules) domain.ExemptionDetail {
	received := sal.LTAReceived.Decimal
	detail := domain.ExemptionDetail{Code: "lta", Received: received, Taxable: received}
	if received.IsZero() {
		return detail
	}
	if rules.ForRegime(regime).AllowanceExemptionsDisallowed {
		detail.Note = "not exempt under new regime"
		return detail
	}
	exempt := decimal.Min(received, sal.LTAClaimed.Decimal)
	detail.Exempt = exempt
	detail.Taxable = received.Sub(exempt)
	return detail
}

// allowanceRule parameterizes the flat-cap-times-months pattern shared by
// the 10(14) allowances, instead of one near-identical function each.
type allowanceRule struct {
	monthlyCap     decimal.Decimal
	disabledCap    decimal.Decimal // overrides monthlyCap when the disabled flag is set
	perChild       bool
	pctOfAmount    decimal.Decimal // fractional cap on the amount itself (transport employees)
	governmentOnly bool
	exemptInNew    bool // survives the new regime (transport for the disabled)
}

func allowanceRules(caps *domain.AllowanceCaps) map[string]allowanceRule {
	return map[string]allowanceRule{
		domain.AllowanceChildrenEducation: {monthlyCap: caps.ChildEducationPerMonth, perChild: true},
		domain.AllowanceHostel:            {monthlyCap: caps.HostelPerMonth, perChild: true},
		domain.AllowanceTransport:         {monthlyCap: caps.TransportPerMonth, disabledCap: caps.TransportDisabledPerMonth, exemptInNew: true},
		domain.AllowanceHills:             {monthlyCap: caps.HillsPerMonth},
		domain.AllowanceBorder:            {monthlyCap: caps.BorderPerMonth},
		domain.AllowanceUndergroundMines:  {monthlyCap: caps.UndergroundMinesPerMonth},
		domain.AllowanceTransportEmployee: {monthlyCap: caps.TransportEmployeePerMonth, pctOfAmount: caps.TransportEmployeePct},
	}
}

// CalculateAllowance applies one 10(14) allowance's cap-and-condition
// rule. Codes without a configured rule stay fully taxable.
func CalculateAllowance(code string, received decimal.Decimal, sal *domain.SalaryIncome, isGovernment bool, regime domain.Regime, rules *domain.YearRules) domain.ExemptionDetail {
	detail := domain.ExemptionDetail{Code: code, Received: received, Taxable: received}
	if received.IsZero() {
		return detail
	}

	// Government-employee-only allowances: fully exempt for government
	// servants, fully taxable for everyone else.
	switch code {
	case domain.AllowanceOutsideIndia, domain.AllowanceJudge, domain.AllowanceSpecial1014:
		if !isGovernment {
			detail.Note = "government employees only"
			return detail
		}
		if rules.ForRegime(regime).AllowanceExemptionsDisallowed {
			detail.Note = "not exempt under new regime"
			return detail
		}
		detail.Exempt = received
		detail.Taxable = decimal.Zero
		return detail
	case domain.AllowanceEntertainment:
		return calculateEntertainment(received, sal, isGovernment, regime, rules)
	}

	rule, ok := allowanceRules(&rules.Allowances)[code]
	if !ok {
		detail.Note = "no exemption configured"
		return detail
	}
	if regimeRules := rules.ForRegime(regime); regimeRules.AllowanceExemptionsDisallowed {
		if !(rule.exemptInNew && sal.IsDisabled) {
			detail.Note = "not exempt under new regime"
			return detail
		}
	}

	months := 12
	if m, ok := sal.AllowanceMonths[code]; ok {
		months = m
	}
	monthlyCap := rule.monthlyCap
	if !rule.disabledCap.IsZero() && sal.IsDisabled {
		monthlyCap = rule.disabledCap
	}
	cap := monthlyCap.Mul(decimal.NewFromInt(int64(months)))
	if rule.perChild {
		children := sal.ChildrenCount
		if children > rules.Allowances.MaxChildren {
			children = rules.Allowances.MaxChildren
		}
		cap = cap.Mul(decimal.NewFromInt(int64(children)))
	}
	if !rule.pctOfAmount.IsZero() {
		cap = decimal.Min(cap, received.Mul(rule.pctOfAmount))
	}

	exempt := decimal.Min(received, cap)
	detail.Exempt = exempt
	detail.Taxable = received.Sub(exempt)
	return detail
}

// calculateEntertainment handles the 16(ii) entertainment allowance:
// deductible for government employees only, as the least of the flat cap,
// the basic-salary fraction, and the amount received.
func calculateEntertainment(received decimal.Decimal, sal *domain.SalaryIncome, isGovernment bool, regime domain.Regime, rules *domain.YearRules) domain.ExemptionDetail {
	detail := domain.ExemptionDetail{Code: domain.AllowanceEntertainment, Received: received, Taxable: received}
	if !isGovernment {
		detail.Note = "government employees only"
		return detail
	}
	if rules.ForRegime(regime).AllowanceExemptionsDisallowed {
		detail.Note = "not exempt under new regime"
		return detail
	}
	exempt := decimal.Min(received,
		rules.Allowances.EntertainmentCap,
		sal.Basic.Mul(rules.Allowances.EntertainmentBasicPct))
	detail.Exempt = exempt
	detail.Taxable = received.Sub(exempt)
	return detail
}

// CalculateLeaveEncashment applies section 10(10AA). During-service
// encashment is fully taxable; at retirement the exemption is the least
// of the amount, the statutory ceiling, ten months' average salary, and
// the cash equivalent of unavailed leave (30 days per year of service);
// on death, and for government employees at retirement, fully exempt.
func CalculateLeaveEncashment(le *domain.LeaveEncashment, isGovernment bool, rules *domain.YearRules) domain.ExemptionDetail {
	detail := domain.ExemptionDetail{Code: "leave_encashment"}
	if le == nil || le.Amount.IsZero() {
		return detail
	}
	amount := le.Amount.Decimal
	detail.Received = amount
	detail.Taxable = amount

	switch le.Occasion {
	case domain.EncashmentDuringService:
		detail.Note = "fully taxable during service"
		return detail
	case domain.EncashmentOnDeath:
		detail.Exempt = amount
		detail.Taxable = decimal.Zero
		return detail
	}

	if isGovernment {
		detail.Exempt = amount
		detail.Taxable = decimal.Zero
		return detail
	}

	avgSalary := le.AverageMonthlySalary.Decimal
	salaryCap := avgSalary.Mul(decimal.NewFromInt(int64(rules.Retirement.LeaveSalaryMonths)))

	// Unavailed leave capped at 30 days per completed year of service,
	// valued at a day's share of the average monthly salary.
	allowedDays := rules.Retirement.LeaveDaysPerYear * le.YearsOfService
	days := le.UnavailedLeaveDays
	if days > allowedDays {
		days = allowedDays
	}
	leaveValue := avgSalary.Div(decimal.NewFromInt(30)).Mul(decimal.NewFromInt(int64(days)))

	exempt := decimal.Min(amount, rules.Retirement.LeaveEncashmentCeiling, salaryCap, leaveValue)
	detail.Exempt = exempt
	detail.Taxable = amount.Sub(exempt)
	return detail
}

// CalculateGratuity applies section 10(10). Government gratuity is fully
// exempt. Covered by the Payment of Gratuity Act: least of the amount,
// the ceiling, and 15/26 of last drawn salary per year of service; not
// covered: half a month's salary per year instead.
func CalculateGratuity(g *domain.Gratuity, isGovernment bool, rules *domain.YearRules) domain.ExemptionDetail {
	detail := domain.ExemptionDetail{Code: "gratuity"}
	if g == nil || g.Amount.IsZero() {
		return detail
	}
	amount := g.Amount.Decimal
	detail.Received = amount

	if isGovernment {
		detail.Exempt = amount
		return detail
	}

	years := decimal.NewFromInt(int64(g.YearsOfService))
	var serviceValue decimal.Decimal
	if g.CoveredByGratuityAct {
		serviceValue = g.LastDrawnMonthlySalary.Mul(decimal.NewFromInt(15)).Div(decimal.NewFromInt(26)).Mul(years)
	} else {
		serviceValue = g.LastDrawnMonthlySalary.Div(decimal.NewFromInt(2)).Mul(years)
	}

	exempt := decimal.Min(amount, rules.Retirement.GratuityCeiling, serviceValue)
	detail.Exempt = exempt
	detail.Taxable = amount.Sub(exempt)
	return detail
}

// CalculateVRS applies the section 10(10C) voluntary-retirement
// exemption cap.
func CalculateVRS(amount decimal.Decimal, rules *domain.YearRules) domain.ExemptionDetail {
	detail := domain.ExemptionDetail{Code: "vrs", Received: amount}
	if amount.IsZero() {
		return detail
	}
	exempt := decimal.Min(amount, rules.Retirement.VRSExemptionCap)
	detail.Exempt = exempt
	detail.Taxable = amount.Sub(exempt)
	return detail
}
