package domain

import (
	"fmt"
	"math"
	"time"
)

// BaseCurrencyCode is the pivot for all conversions. Rate tables are always
// expressed as units of local currency per one US dollar.
const BaseCurrencyCode = "USD"

// Origin of a rate table, reported on the rates endpoint so operators can see
// whether live data is being served.
const (
	RateSourceRemote   = "remote"   // fetched from the rates API
	RateSourceSnapshot = "snapshot" // hydrated from a persisted snapshot
	RateSourceStatic   = "static"   // compiled-in defaults
)

// RateTable is an immutable snapshot of exchange rates against the USD base.
// Tables are replaced wholesale, never mutated in place.
type RateTable struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetchedAt"`
	Source    string             `json:"source"`
}

// StaticRateTable returns the compiled-in default rates used before the first
// successful fetch and whenever no persisted snapshot is available.
func StaticRateTable() RateTable {
	return RateTable{
		Base: BaseCurrencyCode,
		Rates: map[string]float64{
			"USD": 1.0,
			"INR": 83.15,
			"GBP": 0.79,
			"CAD": 1.35,
			"AUD": 1.52,
			"EUR": 0.92,
		},
		FetchedAt: time.Time{},
		Source:    RateSourceStatic,
	}
}

// Validate checks the structural invariants every stored or fetched table
// must hold: USD base, a rate for every catalogue currency, and strictly
// positive finite rates. A table missing a catalogue entry is rejected
// wholesale rather than applied partially.
func (t RateTable) Validate() error {
	if t.Base != BaseCurrencyCode {
		return fmt.Errorf("unexpected base currency %q", t.Base)
	}
	if len(t.Rates) == 0 {
		return fmt.Errorf("rate table is empty")
	}
	for _, currency := range ListCurrencies() {
		if _, ok := t.Rates[currency.CurrencyCode]; !ok {
			return fmt.Errorf("rate table missing %s entry", currency.CurrencyCode)
		}
	}
	for code, rate := range t.Rates {
		if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			return fmt.Errorf("invalid rate %v for %q", rate, code)
		}
	}
	return nil
}

// Rate returns the units of currencyCode per one USD. Unknown codes are
// treated at parity so a partial table degrades to identity conversion
// instead of failing.
func (t RateTable) Rate(currencyCode string) float64 {
	if currencyCode == BaseCurrencyCode {
		return 1.0
	}
	if r, ok := t.Rates[currencyCode]; ok {
		return r
	}
	return 1.0
}

// Clone deep-copies the table so callers can hand it out without sharing the
// rate map with the store.
func (t RateTable) Clone() RateTable {
	rates := make(map[string]float64, len(t.Rates))
	for code, rate := range t.Rates {
		rates[code] = rate
	}
	return RateTable{Base: t.Base, Rates: rates, FetchedAt: t.FetchedAt, Source: t.Source}
}
