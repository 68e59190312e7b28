package models

import "time"

// Preference stores the user's country selection. A single row (id 1) holds
// the current state; history is not kept.
type Preference struct {
	ID                   int64     `json:"id"`
	HomeCountryKey       string    `json:"homeCountryKey"`
	ComparisonCountryKey string    `json:"comparisonCountryKey"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
