package domain

import (
	"fmt"
	"time"
)

// ContextState is the lifecycle phase of the currency context.
type ContextState string

const (
	StateUninitialized ContextState = "UNINITIALIZED"
	StateHydrating     ContextState = "HYDRATING"
	StateReady         ContextState = "READY"
)

// ProfileFields lists the financial profile values the product tracks, in
// presentation order. Base values are stored in home-currency units.
var ProfileFields = []string{
	"income",
	"savings",
	"netWorth",
	"monthlyExpenses",
	"debt",
	"emergencyFund",
	"targetNetWorth",
	"monthlySavings",
	"propertyValue",
	"retirementSavings",
}

// IsProfileField reports whether name is one of the tracked fields.
func IsProfileField(name string) bool {
	for _, f := range ProfileFields {
		if f == name {
			return true
		}
	}
	return false
}

// DefaultProfileValues returns a zeroed value map covering every field.
func DefaultProfileValues() map[string]float64 {
	values := make(map[string]float64, len(ProfileFields))
	for _, f := range ProfileFields {
		values[f] = 0
	}
	return values
}

// Default country selections for a fresh install.
const (
	DefaultHomeCountryKey       = "usa"
	DefaultComparisonCountryKey = "india"
)

// Preference is the persisted country selection pair.
type Preference struct {
	HomeCountryKey       string    `json:"homeCountryKey"`
	ComparisonCountryKey string    `json:"comparisonCountryKey"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// DefaultPreference returns the selection used when nothing is persisted or
// the persisted row fails validation.
func DefaultPreference() Preference {
	return Preference{
		HomeCountryKey:       DefaultHomeCountryKey,
		ComparisonCountryKey: DefaultComparisonCountryKey,
	}
}

// Validate rejects preferences naming countries outside the catalogue.
func (p Preference) Validate() error {
	if !IsSupportedCountry(p.HomeCountryKey) {
		return fmt.Errorf("unsupported home country %q", p.HomeCountryKey)
	}
	if !IsSupportedCountry(p.ComparisonCountryKey) {
		return fmt.Errorf("unsupported comparison country %q", p.ComparisonCountryKey)
	}
	return nil
}

// ContextSnapshot is a read-only copy of the currency context handed to
// callers; mutating it has no effect on the live context.
type ContextSnapshot struct {
	State                ContextState       `json:"state"`
	HomeCountryKey       string             `json:"homeCountryKey"`
	ComparisonCountryKey string             `json:"comparisonCountryKey"`
	BaseValues           map[string]float64 `json:"baseValues"`
	LastRefreshAt        time.Time          `json:"lastRefreshAt"`
}
