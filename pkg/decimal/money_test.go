package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGroupIndian(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0", "0"},
		{"100", "100"},
		{"1000", "1,000"},
		{"99999", "99,999"},
		{"150000.00", "1,50,000.00"},
		{"1000000", "10,00,000"},
		{"12345678.90", "1,23,45,678.90"},
		{"100000000000", "1,00,00,00,00,000"},
		{"-150000", "-1,50,000"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, GroupIndian(tt.input))
		})
	}
}

func TestMoneyFormat(t *testing.T) {
	assert.Equal(t, "₹1,50,000.00", NewMoney(150000).Format())
	assert.Equal(t, "₹999.50", NewMoney(999.5).Format())
	assert.Equal(t, "₹0.00", Zero().Format())
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoney(1000)
	b := NewMoney(250.50)

	assert.Equal(t, "1250.50", a.Add(b).String())
	assert.Equal(t, "749.50", a.Sub(b).String())
	assert.Equal(t, "12000.00", a.Annual().String())
	assert.Equal(t, "250.50", Min(a, b).String())
	assert.Equal(t, "1000.00", Max(a, b).String())
	assert.True(t, a.GreaterThan(b))
	assert.False(t, a.IsNegative())
}

func TestMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("150000.25")
	assert.NoError(t, err)
	assert.True(t, m.Equal(NewMoneyFromDecimal(decimal.NewFromFloat(150000.25))))

	_, err = NewMoneyFromString("not money")
	assert.Error(t, err)
}
