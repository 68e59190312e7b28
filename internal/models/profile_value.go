package models

import "time"

// ProfileValue stores one financial profile field in home-currency units.
type ProfileValue struct {
	FieldName string    `json:"fieldName"` // Primary Key
	BaseValue float64   `json:"baseValue"`
	UpdatedAt time.Time `json:"updatedAt"`
}
