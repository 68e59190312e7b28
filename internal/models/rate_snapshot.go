package models

import "time"

// RateSnapshot stores one fetched rate table. The rate map is serialized as
// JSON; rows are append-only and read back newest first.
type RateSnapshot struct {
	SnapshotID string    `json:"snapshotID"` // Primary Key (UUID)
	BaseCode   string    `json:"baseCode"`
	RatesJSON  string    `json:"ratesJSON"`
	FetchedAt  time.Time `json:"fetchedAt"`
}
