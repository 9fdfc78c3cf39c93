package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{"Zero", "0", "0.00"},
		{"Small", "5.5", "5.50"},
		{"Thousands", "1234.5", "1,234.50"},
		{"Millions", "1234567.891", "1,234,567.89"},
		{"Negative", "-350.56", "-350.56"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatAmount(decimal.RequireFromString(tc.amount)))
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		code     string
		expected string
	}{
		{"USD", "1234.5", "USD", "$1,234.50"},
		{"Default currency", "750.56", "", "$750.56"},
		{"Lowercase code", "10", "usd", "$10.00"},
		{"Negative", "-20", "USD", "-$20.00"},
		{"Unknown code", "1234.5", "XYZ", "XYZ 1,234.50"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatCurrency(decimal.RequireFromString(tc.amount), tc.code))
		})
	}
}

func TestSignHelpers(t *testing.T) {
	assert.True(t, IsNegative(decimal.NewFromInt(-1)))
	assert.False(t, IsNegative(decimal.Zero))
	assert.True(t, IsPositive(decimal.NewFromInt(1)))
	assert.False(t, IsPositive(decimal.Zero))
	assert.True(t, Sum(decimal.NewFromInt(1), decimal.RequireFromString("2.5")).Equal(decimal.RequireFromString("3.5")))
	assert.True(t, Sum().IsZero())
}
