package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wishinsured/fx_backend/internal/core/domain"
	"github.com/wishinsured/fx_backend/internal/utils"
)

func TestFormatWithCurrency(t *testing.T) {
	cases := []struct {
		name       string
		amount     float64
		countryKey string
		want       string
	}{
		{"usd whole thousand", 1000, "usa", "$1,000"},
		{"usd fraction dropped", 1000.4, "usa", "$1,000"},
		{"usd rounds half up", 999.5, "usa", "$1,000"},
		{"usd negative", -1234, "usa", "-$1,234"},
		{"inr grouping", 83150, "india", "₹83,150"},
		{"gbp small", 790, "uk", "£790"},
		{"cad prefix", 1350, "canada", "C$1,350"},
		{"aud prefix", 1520, "australia", "A$1,520"},
		{"eur large", 1234567.89, "germany", "€1,234,568"},
		{"zero", 0, "usa", "$0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			currency, ok := domain.LookupCurrency(tc.countryKey)
			assert.True(t, ok)
			assert.Equal(t, tc.want, utils.FormatWithCurrency(tc.amount, currency))
		})
	}
}

func TestRoundForDisplay(t *testing.T) {
	cases := []struct {
		name           string
		amount         float64
		fractionDigits int
		want           float64
	}{
		{"half rounds away from zero", 1234.5, 0, 1235},
		{"negative half rounds away from zero", -1234.5, 0, -1235},
		{"two digits up", 2.345, 2, 2.35},
		{"two digits down", 2.344, 2, 2.34},
		{"negative half two digits", -2.555, 2, -2.56},
		{"already exact", 100, 0, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, utils.RoundForDisplay(tc.amount, tc.fractionDigits), 1e-9)
		})
	}
}
