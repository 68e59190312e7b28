package domain

// Currency represents a supported currency in the domain, keyed by the
// country the product exposes it under.
type Currency struct {
	CountryKey     string `json:"countryKey"`     // Primary key (e.g., "usa")
	CurrencyCode   string `json:"currencyCode"`   // ISO 4217 code (e.g., "USD")
	Symbol         string `json:"symbol"`         // e.g., "$"
	CurrencyName   string `json:"currencyName"`   // e.g., "US Dollar"
	CountryName    string `json:"countryName"`    // e.g., "United States"
	Flag           string `json:"flag"`           // emoji flag for UI lists
	FractionDigits int    `json:"fractionDigits"` // digits shown after the decimal point
}

// catalogue is the fixed set of currencies the product supports. There is no
// dynamic registration; adding a country is a code change.
var catalogue = map[string]Currency{
	"usa":       {CountryKey: "usa", CurrencyCode: "USD", Symbol: "$", CurrencyName: "US Dollar", CountryName: "United States", Flag: "🇺🇸", FractionDigits: 0},
	"india":     {CountryKey: "india", CurrencyCode: "INR", Symbol: "₹", CurrencyName: "Indian Rupee", CountryName: "India", Flag: "🇮🇳", FractionDigits: 0},
	"uk":        {CountryKey: "uk", CurrencyCode: "GBP", Symbol: "£", CurrencyName: "British Pound", CountryName: "United Kingdom", Flag: "🇬🇧", FractionDigits: 0},
	"canada":    {CountryKey: "canada", CurrencyCode: "CAD", Symbol: "C$", CurrencyName: "Canadian Dollar", CountryName: "Canada", Flag: "🇨🇦", FractionDigits: 0},
	"australia": {CountryKey: "australia", CurrencyCode: "AUD", Symbol: "A$", CurrencyName: "Australian Dollar", CountryName: "Australia", Flag: "🇦🇺", FractionDigits: 0},
	"germany":   {CountryKey: "germany", CurrencyCode: "EUR", Symbol: "€", CurrencyName: "Euro", CountryName: "Germany", Flag: "🇩🇪", FractionDigits: 0},
}

// catalogueOrder fixes the iteration order for list endpoints.
var catalogueOrder = []string{"usa", "india", "uk", "canada", "australia", "germany"}

// LookupCurrency returns the currency for a country key. The second return
// reports whether the key is in the catalogue; callers that can tolerate a
// miss fall back to FallbackCurrency.
func LookupCurrency(countryKey string) (Currency, bool) {
	c, ok := catalogue[countryKey]
	return c, ok
}

// IsSupportedCountry reports whether the country key is in the catalogue.
func IsSupportedCountry(countryKey string) bool {
	_, ok := catalogue[countryKey]
	return ok
}

// ListCurrencies returns every supported currency in stable catalogue order.
func ListCurrencies() []Currency {
	out := make([]Currency, 0, len(catalogueOrder))
	for _, key := range catalogueOrder {
		out = append(out, catalogue[key])
	}
	return out
}

// FallbackCurrency is used when a country key misses the catalogue: amounts
// are treated at parity with the base currency and formatted as dollars.
func FallbackCurrency() Currency {
	return catalogue["usa"]
}

// ResolveCurrency returns the catalogue entry for the key, or the fallback
// entry when the key is unknown.
func ResolveCurrency(countryKey string) Currency {
	if c, ok := catalogue[countryKey]; ok {
		return c
	}
	return FallbackCurrency()
}
