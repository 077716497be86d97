package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kredcalc/india-tax-engine/internal/domain"
)

func TestComputeSlabTaxOldRegime(t *testing.T) {
	rules := rulesFor(t, "2024-25")

	tests := []struct {
		name    string
		taxable decimal.Decimal
		age     int
		total   decimal.Decimal
		baseTax decimal.Decimal
		rebate  decimal.Decimal
	}{
		{
			name:    "below exemption limit",
			taxable: decimal.NewFromInt(200000),
			age:     35,
			total:   decimal.Zero,
			baseTax: decimal.Zero,
			rebate:  decimal.Zero,
		},
		{
			name:    "rebate wipes tax at the threshold",
			taxable: decimal.NewFromInt(500000),
			age:     35,
			total:   decimal.Zero,
			baseTax: decimal.NewFromInt(12500),
			rebate:  decimal.NewFromInt(12500),
		},
		{
			name:    "six lakh spans three slabs",
			taxable: decimal.NewFromInt(600000),
			age:     35,
			// 12500 + 20000, plus 4% cess
			total:   decimal.NewFromInt(33800),
			baseTax: decimal.NewFromInt(32500),
			rebate:  decimal.Zero,
		},
		{
			name:    "senior exemption limit is higher",
			taxable: decimal.NewFromInt(500000),
			age:     65,
			total:   decimal.Zero,
			baseTax: decimal.NewFromInt(10000), // 5% of 300000..500000
			rebate:  decimal.NewFromInt(10000),
		},
		{
			name:    "super senior pays nothing below five lakh",
			taxable: decimal.NewFromInt(600000),
			age:     85,
			// 20% of 500000..600000, plus cess
			total:   decimal.NewFromInt(20800),
			baseTax: decimal.NewFromInt(20000),
			rebate:  decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ComputeSlabTax(tt.taxable, nil, domain.RegimeOld, tt.age, rules)
			assert.True(t, tt.baseTax.Equal(res.BaseTax), "base tax: expected %s, got %s", tt.baseTax, res.BaseTax)
			assert.True(t, tt.rebate.Equal(res.Rebate), "rebate: expected %s, got %s", tt.rebate, res.Rebate)
			assert.True(t, tt.total.Equal(res.Total), "total: expected %s, got %s", tt.total, res.Total)
		})
	}
}

func TestComputeSlabTaxNewRegime(t *testing.T) {
	rules := rulesFor(t, "2024-25")

	t.Run("rebate covers tax up to seven lakh", func(t *testing.T) {
		res := ComputeSlabTax(decimal.NewFromInt(700000), nil, domain.RegimeNew, 35, rules)
		assert.True(t, res.BaseTax.Equal(decimal.NewFromInt(20000)))
		assert.True(t, res.Rebate.Equal(decimal.NewFromInt(20000)))
		assert.True(t, res.Total.IsZero())
	})

	t.Run("one rupee past the threshold loses the whole rebate", func(t *testing.T) {
		res := ComputeSlabTax(decimal.NewFromInt(700001), nil, domain.RegimeNew, 35, rules)
		assert.True(t, res.Rebate.IsZero())
		assert.True(t, res.Total.GreaterThan(decimal.NewFromInt(20000)))
	})

	t.Run("age does not change new regime slabs", func(t *testing.T) {
		young := ComputeSlabTax(decimal.NewFromInt(1500000), nil, domain.RegimeNew, 35, rules)
		senior := ComputeSlabTax(decimal.NewFromInt(1500000), nil, domain.RegimeNew, 82, rules)
		assert.True(t, young.Total.Equal(senior.Total))
		// 20000 + 30000 + 30000 + 60000, plus cess
		assert.True(t, young.BaseTax.Equal(decimal.NewFromInt(140000)))
		assert.True(t, young.Total.Equal(decimal.NewFromInt(145600)))
	})
}

func TestSlabContinuity(t *testing.T) {
	// Tax must be continuous across every slab boundary: one extra rupee
	// of income never adds more than the top marginal rate.
	rules := rulesFor(t, "2024-25")
	boundaries := []int64{250000, 500000, 1000000}

	for _, b := range boundaries {
		at := ComputeSlabTax(decimal.NewFromInt(b), nil, domain.RegimeOld, 35, rules)
		above := ComputeSlabTax(decimal.NewFromInt(b+1), nil, domain.RegimeOld, 35, rules)
		jump := above.BaseTax.Sub(at.BaseTax)
		assert.True(t, jump.LessThanOrEqual(decimal.NewFromFloat(0.30)),
			"base tax jumped by %s at boundary %d", jump, b)
	}
}

func TestSurchargeMarginalRelief(t *testing.T) {
	rules := rulesFor(t, "2024-25")

	t.Run("just past the fifty lakh breakpoint", func(t *testing.T) {
		res := ComputeSlabTax(decimal.NewFromInt(5100000), nil, domain.RegimeOld, 35, rules)
		// Plain surcharge would be 134250; relief forgives all but 70000.
		assert.True(t, res.BaseTax.Equal(decimal.NewFromInt(1342500)))
		assert.True(t, res.Surcharge.Equal(decimal.NewFromInt(70000)),
			"expected surcharge 70000, got %s", res.Surcharge)
		assert.True(t, res.Total.Equal(decimal.NewFromInt(1469000)))
	})

	t.Run("well past the breakpoint no relief applies", func(t *testing.T) {
		res := ComputeSlabTax(decimal.NewFromInt(7000000), nil, domain.RegimeOld, 35, rules)
		assert.True(t, res.BaseTax.Equal(decimal.NewFromInt(1912500)))
		assert.True(t, res.Surcharge.Equal(decimal.NewFromInt(191250)))
		assert.True(t, res.Total.Equal(decimal.NewFromInt(2187900)))
	})

	t.Run("no surcharge below the first tier", func(t *testing.T) {
		res := ComputeSlabTax(decimal.NewFromInt(4000000), nil, domain.RegimeOld, 35, rules)
		assert.True(t, res.Surcharge.IsZero())
	})
}

func TestSpecialRateTax(t *testing.T) {
	tests := []struct {
		name     string
		year     string
		special  map[string]decimal.Decimal
		expected decimal.Decimal // special-rate tax before cess
	}{
		{
			name:     "111A short-term equity",
			year:     "2024-25",
			special:  map[string]decimal.Decimal{domain.BucketSTCG111A: decimal.NewFromInt(100000)},
			expected: decimal.NewFromInt(20000),
		},
		{
			name:     "112A above the exempt threshold",
			year:     "2024-25",
			special:  map[string]decimal.Decimal{domain.BucketLTCG112A: decimal.NewFromInt(150000)},
			expected: decimal.NewFromInt(3125), // (150000-125000) x 12.5%
		},
		{
			name:     "112A below the exempt threshold",
			year:     "2024-25",
			special:  map[string]decimal.Decimal{domain.BucketLTCG112A: decimal.NewFromInt(100000)},
			expected: decimal.Zero,
		},
		{
			name:     "prior year 112A rate and threshold",
			year:     "2023-24",
			special:  map[string]decimal.Decimal{domain.BucketLTCG112A: decimal.NewFromInt(150000)},
			expected: decimal.NewFromInt(5000), // (150000-100000) x 10%
		},
		{
			name:     "long-term debt fund",
			year:     "2024-25",
			special:  map[string]decimal.Decimal{domain.BucketLTCGDebt: decimal.NewFromInt(80000)},
			expected: decimal.NewFromInt(10000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ComputeSlabTax(decimal.Zero, tt.special, domain.RegimeOld, 35, rulesFor(t, tt.year))
			assert.True(t, tt.expected.Equal(res.SpecialRateTax),
				"expected %s, got %s", tt.expected, res.SpecialRateTax)
			wantTotal := tt.expected.Mul(decimal.NewFromFloat(1.04))
			assert.True(t, wantTotal.Equal(res.Total), "cess must apply to special-rate tax")
		})
	}
}
