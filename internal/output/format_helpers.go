package output

import (
	"github.com/shopspring/decimal"

	money "github.com/kredcalc/india-tax-engine/pkg/decimal"
)

// FormatRupees formats a decimal as rupees with Indian digit grouping.
// Kept here so it can be reused by multiple formatters and unit tested in
// isolation.
func FormatRupees(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

var hundred = decimal.NewFromInt(100)
