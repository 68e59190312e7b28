package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wishinsured/fx_backend/internal/core/domain"
)

func TestMoney_ConvertTo(t *testing.T) {
	rates := domain.StaticRateTable()

	t.Run("through the base currency", func(t *testing.T) {
		got := domain.NewMoney(1000, "usa").ConvertTo(rates, "india")

		assert.Equal(t, "india", got.CountryKey)
		assert.InDelta(t, 83150, got.Amount, 1e-6)
	})

	t.Run("same currency is bit-exact", func(t *testing.T) {
		amount := 123.456789
		got := domain.NewMoney(amount, "india").ConvertTo(rates, "india")

		assert.Equal(t, amount, got.Amount)
	})

	t.Run("round trip stays within tolerance", func(t *testing.T) {
		start := domain.NewMoney(5000, "uk")

		there := start.ConvertTo(rates, "australia")
		back := there.ConvertTo(rates, "uk")

		assert.InEpsilon(t, start.Amount, back.Amount, 1e-9)
	})

	t.Run("unknown keys resolve to the fallback currency", func(t *testing.T) {
		got := domain.NewMoney(250, "atlantis").ConvertTo(rates, "usa")

		assert.Equal(t, 250.0, got.Amount, "fallback resolves both sides to USD")
	})
}

func TestResolveCurrency(t *testing.T) {
	assert.Equal(t, "INR", domain.ResolveCurrency("india").CurrencyCode)
	assert.Equal(t, "USD", domain.ResolveCurrency("atlantis").CurrencyCode)
	assert.Equal(t, domain.FallbackCurrency(), domain.ResolveCurrency(""))
}
