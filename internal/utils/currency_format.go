package utils

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
	"github.com/wishinsured/fx_backend/internal/core/domain"
)

// RoundForDisplay rounds an amount to the given number of fraction digits,
// half away from zero. Conversion math stays in float64; rounding happens
// only at display boundaries.
// Example: 1234.5 with 0 digits returns 1235; -1234.5 returns -1235.
func RoundForDisplay(amount float64, fractionDigits int) float64 {
	rounded, _ := decimal.NewFromFloat(amount).Round(int32(fractionDigits)).Float64()
	return rounded
}

// FormatWithCurrency renders an amount with the currency's symbol, thousands
// grouping, and fraction digits.
// Example: 1000 with USD returns "$1,000"; -1234 returns "-$1,234".
func FormatWithCurrency(amount float64, currency domain.Currency) string {
	ac := accounting.Accounting{Symbol: currency.Symbol, Precision: currency.FractionDigits}
	return ac.FormatMoneyDecimal(decimal.NewFromFloat(amount).Round(int32(currency.FractionDigits)))
}
