package domain

// RateProvider supplies the units-per-USD rate for a currency code. The rate
// store satisfies this; tests use fixed tables.
type RateProvider interface {
	Rate(currencyCode string) float64
}

// Money is an amount tagged with the country whose currency it is expressed
// in. It is a value type; operations return new values.
type Money struct {
	Amount     float64 `json:"amount"`
	CountryKey string  `json:"countryKey"`
}

// NewMoney builds a Money value. Unknown country keys are legal and convert
// at parity.
func NewMoney(amount float64, countryKey string) Money {
	return Money{Amount: amount, CountryKey: countryKey}
}

// ConvertTo re-expresses the amount in the target country's currency by
// pivoting through the USD base. When both keys resolve to the same currency
// the amount is returned untouched, with no arithmetic applied, so
// self-conversion is exact.
func (m Money) ConvertTo(rates RateProvider, toCountryKey string) Money {
	from := ResolveCurrency(m.CountryKey)
	to := ResolveCurrency(toCountryKey)
	if from.CurrencyCode == to.CurrencyCode {
		return Money{Amount: m.Amount, CountryKey: toCountryKey}
	}
	usd := m.Amount / rates.Rate(from.CurrencyCode)
	return Money{Amount: usd * rates.Rate(to.CurrencyCode), CountryKey: toCountryKey}
}

// Currency returns the catalogue entry the amount is denominated in, falling
// back to the base currency for unknown keys.
func (m Money) Currency() Currency {
	return ResolveCurrency(m.CountryKey)
}
