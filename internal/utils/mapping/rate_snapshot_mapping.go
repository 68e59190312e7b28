package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/wishinsured/fx_backend/internal/core/domain"
	"github.com/wishinsured/fx_backend/internal/models"
)

// ToModelRateSnapshot converts a domain RateTable to a storable snapshot row.
// The caller supplies the row ID.
func ToModelRateSnapshot(t domain.RateTable, snapshotID string) (models.RateSnapshot, error) {
	ratesJSON, err := json.Marshal(t.Rates)
	if err != nil {
		return models.RateSnapshot{}, fmt.Errorf("failed to marshal rates: %w", err)
	}
	return models.RateSnapshot{
		SnapshotID: snapshotID,
		BaseCode:   t.Base,
		RatesJSON:  string(ratesJSON),
		FetchedAt:  t.FetchedAt,
	}, nil
}

// ToDomainRateTable converts a snapshot row back into a domain RateTable.
// The table is marked with the snapshot source so callers can tell persisted
// rates from live ones.
func ToDomainRateTable(m models.RateSnapshot) (domain.RateTable, error) {
	rates := map[string]float64{}
	if err := json.Unmarshal([]byte(m.RatesJSON), &rates); err != nil {
		return domain.RateTable{}, fmt.Errorf("failed to unmarshal rates: %w", err)
	}
	return domain.RateTable{
		Base:      m.BaseCode,
		Rates:     rates,
		FetchedAt: m.FetchedAt,
		Source:    domain.RateSourceSnapshot,
	}, nil
}
