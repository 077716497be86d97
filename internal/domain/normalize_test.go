package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected decimal.Decimal
		wantErr  error
	}{
		{
			name:     "nil normalizes to zero",
			input:    nil,
			expected: decimal.Zero,
		},
		{
			name:     "empty string normalizes to zero",
			input:    "",
			expected: decimal.Zero,
		},
		{
			name:     "plain integer",
			input:    150000,
			expected: decimal.NewFromInt(150000),
		},
		{
			name:     "float with paise",
			input:    1500.75,
			expected: decimal.NewFromFloat(1500.75),
		},
		{
			name:     "json number",
			input:    json.Number("2500"),
			expected: decimal.NewFromInt(2500),
		},
		{
			name:     "indian grouped string",
			input:    "1,50,000",
			expected: decimal.NewFromInt(150000),
		},
		{
			name:     "rupee sign with grouping and fraction",
			input:    "₹1,50,000.50",
			expected: decimal.NewFromFloat(150000.50),
		},
		{
			name:    "boolean rejected",
			input:   true,
			wantErr: ErrInvalidInputKind,
		},
		{
			name:    "garbage string rejected",
			input:   "lots of money",
			wantErr: ErrInvalidInputKind,
		},
		{
			name:    "negative amount rejected",
			input:   "-500",
			wantErr: ErrOutOfRange,
		},
		{
			name:    "amount above ceiling rejected",
			input:   "2,00,00,00,00,000",
			wantErr: ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestRupeesUnmarshalYAML(t *testing.T) {
	var sal SalaryIncome
	data := []byte("basic: \"1,50,000\"\ndearness_allowance: 72000\nbonus: ₹5,000\n")
	require.NoError(t, yaml.Unmarshal(data, &sal))

	assert.True(t, sal.Basic.Equal(decimal.NewFromInt(150000)))
	assert.True(t, sal.DearnessAllowance.Equal(decimal.NewFromInt(72000)))
	assert.True(t, sal.Bonus.Equal(decimal.NewFromInt(5000)))
}

func TestRupeesUnmarshalYAMLRejectsBoolean(t *testing.T) {
	var sal SalaryIncome
	err := yaml.Unmarshal([]byte("basic: true\n"), &sal)
	assert.ErrorIs(t, err, ErrInvalidInputKind)
}

func TestRupeesUnmarshalJSON(t *testing.T) {
	var sal SalaryIncome
	data := []byte(`{"basic": "1,50,000", "hra_received": 240000, "rent_paid": null}`)
	require.NoError(t, json.Unmarshal(data, &sal))

	assert.True(t, sal.Basic.Equal(decimal.NewFromInt(150000)))
	assert.True(t, sal.HRAReceived.Equal(decimal.NewFromInt(240000)))
	assert.True(t, sal.RentPaid.IsZero())
}

func TestRupeesUnmarshalJSONRejectsBoolean(t *testing.T) {
	var sal SalaryIncome
	err := json.Unmarshal([]byte(`{"basic": true}`), &sal)
	assert.ErrorIs(t, err, ErrInvalidInputKind)
}

func TestRupeesMarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(NewRupees(150000))
	require.NoError(t, err)
	assert.Equal(t, "150000", string(out))

	var back Rupees
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, back.Equal(decimal.NewFromInt(150000)))
}
