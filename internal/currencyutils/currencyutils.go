// Package currencyutils formats and compares the decimal amounts shown on the
// dashboard.
package currencyutils

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrency is the wallet currency.
const DefaultCurrency = "USD"

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatAmount formats amount with two decimals and thousands separators,
// e.g. "1,234.50".
func FormatAmount(amount decimal.Decimal) string {
	return printer.Sprint(number.Decimal(amount.Round(2).InexactFloat64(), number.Scale(2)))
}

// FormatCurrency formats amount in the given ISO currency, e.g.
// "$1,234.50" or "-$20.00". Unknown codes are written in front of the
// amount: "XYZ 1,234.50".
func FormatCurrency(amount decimal.Decimal, code string) string {
	if code == "" {
		code = DefaultCurrency
	}
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	return sign + Symbol(code) + FormatAmount(amount)
}

// Symbol returns the display symbol for an ISO currency code. Codes without
// a distinct symbol are returned followed by a space.
func Symbol(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code + " "
	}
	sym := printer.Sprint(currency.Symbol(unit))
	if sym == "" || sym == code {
		return code + " "
	}
	return sym
}

// IsNegative checks if an amount is negative
func IsNegative(amount decimal.Decimal) bool {
	return amount.IsNegative()
}

// IsPositive checks if an amount is positive
func IsPositive(amount decimal.Decimal) bool {
	return amount.IsPositive()
}

// Sum adds up amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	return decimal.Sum(decimal.Zero, amounts...)
}
