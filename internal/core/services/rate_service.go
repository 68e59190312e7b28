package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/wishinsured/fx_backend/internal/apperrors"
	"github.com/wishinsured/fx_backend/internal/core/domain"
	portsrepo "github.com/wishinsured/fx_backend/internal/core/ports/repositories"
	"github.com/wishinsured/fx_backend/internal/middleware"
	"github.com/wishinsured/fx_backend/internal/observability"
)

// RateService owns the in-memory rate table. Reads are served under a read
// lock; a refresh replaces the whole table in one write, so readers always
// see a complete snapshot, old or new.
type RateService struct {
	mu    sync.RWMutex
	table domain.RateTable

	refreshInterval time.Duration
	source          portsrepo.RateSource
	snapshotRepo    portsrepo.RateSnapshotRepositoryFacade
}

// NewRateService creates a RateService serving the static table until it is
// seeded or refreshed.
func NewRateService(source portsrepo.RateSource, snapshotRepo portsrepo.RateSnapshotRepositoryFacade, refreshInterval time.Duration) *RateService {
	return &RateService{
		table:           domain.StaticRateTable(),
		refreshInterval: refreshInterval,
		source:          source,
		snapshotRepo:    snapshotRepo,
	}
}

// CurrentRates returns a copy of the table currently being served.
func (s *RateService) CurrentRates() domain.RateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Clone()
}

// Rate returns the units-per-USD rate for a currency code, at parity for
// unknown codes.
func (s *RateService) Rate(currencyCode string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Rate(currencyCode)
}

// IsStale reports whether the current table is older than the refresh
// interval. The static table has a zero fetch time and is always stale.
func (s *RateService) IsStale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.table.FetchedAt) > s.refreshInterval
}

// Convert re-expresses an amount between two country keys through the USD
// base. Identical resolved currencies return the amount untouched.
func (s *RateService) Convert(amount float64, fromCountryKey, toCountryKey string) float64 {
	observability.ConversionsCount.Inc()
	return domain.NewMoney(amount, fromCountryKey).ConvertTo(s, toCountryKey).Amount
}

// SeedFromStorage loads the latest persisted snapshot into the store.
// Anything short of a valid snapshot leaves the current table serving.
func (s *RateService) SeedFromStorage(ctx context.Context) {
	logger := middleware.GetLoggerFromCtx(ctx)

	snapshot, err := s.snapshotRepo.FindLatestSnapshot(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Info("No persisted rate snapshot; serving static rates")
		} else {
			logger.Warn("Failed to load persisted rate snapshot; serving static rates", slog.String("error", err.Error()))
		}
		return
	}

	if err := snapshot.Validate(); err != nil {
		logger.Warn("Persisted rate snapshot failed validation; discarding it", slog.String("error", err.Error()))
		return
	}

	s.setTable(*snapshot)
	logger.Info("Seeded rates from persisted snapshot",
		slog.Time("fetched_at", snapshot.FetchedAt),
		slog.Int("currencies", len(snapshot.Rates)),
	)
}

// RefreshRates fetches from the remote source and atomically replaces the
// table on success. On failure the previous table keeps serving.
func (s *RateService) RefreshRates(ctx context.Context) (domain.RateTable, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	start := time.Now()
	table, err := s.source.FetchLatest(ctx)
	observability.RateFetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		outcome := observability.OutcomeFetchError
		if errors.Is(err, apperrors.ErrRateFetchValidation) {
			outcome = observability.OutcomeInvalid
		}
		observability.RateFetchCount.WithLabelValues(outcome).Inc()
		logger.Warn("Rate refresh failed; keeping previous table", slog.String("error", err.Error()))
		return domain.RateTable{}, err
	}

	observability.RateFetchCount.WithLabelValues(observability.OutcomeSuccess).Inc()
	observability.RatesLastRefresh.Set(float64(table.FetchedAt.Unix()))
	s.setTable(table)
	logger.Info("Rate table refreshed",
		slog.Int("currencies", len(table.Rates)),
		slog.Time("fetched_at", table.FetchedAt),
	)

	// Snapshot persistence is best effort; serving rates never waits on the
	// database.
	if err := s.snapshotRepo.SaveSnapshot(ctx, table); err != nil {
		logger.Warn("Failed to persist rate snapshot", slog.String("error", err.Error()))
	}

	return table.Clone(), nil
}

func (s *RateService) setTable(table domain.RateTable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table
}
