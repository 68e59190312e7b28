package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/wishinsured/fx_backend/internal/apperrors"
	"github.com/wishinsured/fx_backend/internal/core/domain"
	portsrepo "github.com/wishinsured/fx_backend/internal/core/ports/repositories"
	portssvc "github.com/wishinsured/fx_backend/internal/core/ports/services"
	"github.com/wishinsured/fx_backend/internal/middleware"
	"github.com/wishinsured/fx_backend/internal/utils"
)

// refreshTimeout bounds one scheduled refresh; the HTTP client below it has
// its own, shorter timeout.
const refreshTimeout = time.Minute

// CurrencyContextService is the process-wide currency context. It moves from
// UNINITIALIZED through HYDRATING to READY exactly once, owns the persisted
// country selection and profile values, and drives the periodic rate refresh.
type CurrencyContextService struct {
	mu            sync.RWMutex
	state         domain.ContextState
	pref          domain.Preference
	baseValues    map[string]float64
	lastRefreshAt time.Time

	rates     portssvc.RateSvcFacade
	prefRepo  portsrepo.PreferenceRepositoryFacade
	valueRepo portsrepo.ProfileValueRepositoryFacade

	refreshInterval time.Duration
	defaults        domain.Preference

	stopOnce sync.Once
	stop     chan struct{}
}

// NewCurrencyContextService creates the context in the UNINITIALIZED state.
// Nothing is loaded until Hydrate runs.
func NewCurrencyContextService(
	rates portssvc.RateSvcFacade,
	prefRepo portsrepo.PreferenceRepositoryFacade,
	valueRepo portsrepo.ProfileValueRepositoryFacade,
	refreshInterval time.Duration,
	defaults domain.Preference,
) *CurrencyContextService {
	if defaults.Validate() != nil {
		defaults = domain.DefaultPreference()
	}
	return &CurrencyContextService{
		state:           domain.StateUninitialized,
		pref:            defaults,
		baseValues:      domain.DefaultProfileValues(),
		rates:           rates,
		prefRepo:        prefRepo,
		valueRepo:       valueRepo,
		refreshInterval: refreshInterval,
		defaults:        defaults,
		stop:            make(chan struct{}),
	}
}

// Hydrate loads persisted state, seeds the rate store, fires the initial
// fetch, and starts the periodic refresher. Every failure along the way is
// absorbed: the context always reaches READY, at worst on defaults and
// static rates. Calls after the first are no-ops.
func (s *CurrencyContextService) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	if s.state != domain.StateUninitialized {
		s.mu.Unlock()
		return nil
	}
	s.state = domain.StateHydrating
	s.mu.Unlock()

	logger := middleware.GetLoggerFromCtx(ctx)

	pref := s.loadPreference(ctx, logger)
	values := s.loadValues(ctx, logger)

	s.rates.SeedFromStorage(ctx)
	refreshedAt := time.Time{}
	if _, err := s.rates.RefreshRates(ctx); err != nil {
		logger.Warn("Initial rate fetch failed; serving seeded rates", slog.String("error", err.Error()))
	} else {
		refreshedAt = time.Now().UTC()
	}

	s.mu.Lock()
	s.pref = pref
	s.baseValues = values
	s.lastRefreshAt = refreshedAt
	s.state = domain.StateReady
	s.mu.Unlock()

	go s.refreshLoop()

	logger.Info("Currency context ready",
		slog.String("home", pref.HomeCountryKey),
		slog.String("comparison", pref.ComparisonCountryKey),
	)
	return nil
}

// loadPreference returns the stored selection, or the defaults when nothing
// usable is stored.
func (s *CurrencyContextService) loadPreference(ctx context.Context, logger *slog.Logger) domain.Preference {
	stored, err := s.prefRepo.FindPreference(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Failed to load preference; using defaults", slog.String("error", err.Error()))
		}
		return s.defaults
	}
	if err := stored.Validate(); err != nil {
		corrupt := fmt.Errorf("%w: %v", apperrors.ErrStateCorrupt, err)
		logger.Warn("Stored preference is invalid; using defaults", slog.String("error", corrupt.Error()))
		return s.defaults
	}
	return *stored
}

// loadValues returns the stored profile values over a zeroed base. Unknown
// fields and non-finite numbers are dropped.
func (s *CurrencyContextService) loadValues(ctx context.Context, logger *slog.Logger) map[string]float64 {
	values := domain.DefaultProfileValues()
	stored, err := s.valueRepo.ListValues(ctx)
	if err != nil {
		logger.Warn("Failed to load profile values; starting from zero", slog.String("error", err.Error()))
		return values
	}
	for field, value := range stored {
		if !domain.IsProfileField(field) || math.IsNaN(value) || math.IsInf(value, 0) {
			corrupt := fmt.Errorf("%w: field %q value %v", apperrors.ErrStateCorrupt, field, value)
			logger.Warn("Dropping stored profile value", slog.String("error", corrupt.Error()))
			continue
		}
		values[field] = value
	}
	return values
}

func (s *CurrencyContextService) refreshLoop() {
	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
			// Failures are logged by the rate service; the loop keeps its cadence.
			if _, err := s.rates.RefreshRates(ctx); err == nil {
				s.mu.Lock()
				s.lastRefreshAt = time.Now().UTC()
				s.mu.Unlock()
			}
			cancel()
		}
	}
}

// Close stops the periodic refresher. Idempotent.
func (s *CurrencyContextService) Close() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

// Snapshot returns a copy of the current context state.
func (s *CurrencyContextService) Snapshot() domain.ContextSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := make(map[string]float64, len(s.baseValues))
	for field, value := range s.baseValues {
		values[field] = value
	}
	return domain.ContextSnapshot{
		State:                s.state,
		HomeCountryKey:       s.pref.HomeCountryKey,
		ComparisonCountryKey: s.pref.ComparisonCountryKey,
		BaseValues:           values,
		LastRefreshAt:        s.lastRefreshAt,
	}
}

func (s *CurrencyContextService) ensureReady() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != domain.StateReady {
		return fmt.Errorf("%w: state is %s", apperrors.ErrNotReady, s.state)
	}
	return nil
}

// SetHomeCountry switches the home country and persists the selection.
// Stored base values are reinterpreted in the new currency, never rescaled:
// a monthly income of 5000 stays 5000, now meaning the new currency's units.
func (s *CurrencyContextService) SetHomeCountry(ctx context.Context, countryKey string) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	if !domain.IsSupportedCountry(countryKey) {
		return fmt.Errorf("%w: unknown country key %q", apperrors.ErrValidation, countryKey)
	}

	s.mu.Lock()
	s.pref.HomeCountryKey = countryKey
	s.pref.UpdatedAt = time.Now().UTC()
	pref := s.pref
	s.mu.Unlock()

	s.persistPreference(ctx, pref)
	return nil
}

// SetComparisonCountry switches the comparison country and persists it.
func (s *CurrencyContextService) SetComparisonCountry(ctx context.Context, countryKey string) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	if !domain.IsSupportedCountry(countryKey) {
		return fmt.Errorf("%w: unknown country key %q", apperrors.ErrValidation, countryKey)
	}

	s.mu.Lock()
	s.pref.ComparisonCountryKey = countryKey
	s.pref.UpdatedAt = time.Now().UTC()
	pref := s.pref
	s.mu.Unlock()

	s.persistPreference(ctx, pref)
	return nil
}

// persistPreference saves best effort; the in-memory selection is already
// authoritative and a storage failure must not undo a user action.
func (s *CurrencyContextService) persistPreference(ctx context.Context, pref domain.Preference) {
	if err := s.prefRepo.SavePreference(ctx, pref); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to persist preference", slog.String("error", err.Error()))
	}
}

// UpdateValue stores one financial profile value in home-currency units.
func (s *CurrencyContextService) UpdateValue(ctx context.Context, fieldName string, value float64) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	if !domain.IsProfileField(fieldName) {
		return fmt.Errorf("%w: unknown profile field %q", apperrors.ErrValidation, fieldName)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: value must be finite", apperrors.ErrValidation)
	}

	s.mu.Lock()
	s.baseValues[fieldName] = value
	s.mu.Unlock()

	if err := s.valueRepo.UpsertValue(ctx, fieldName, value); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to persist profile value",
			slog.String("field", fieldName), slog.String("error", err.Error()))
	}
	return nil
}

// ResetValues zeroes every financial profile value.
func (s *CurrencyContextService) ResetValues(ctx context.Context) error {
	if err := s.ensureReady(); err != nil {
		return err
	}

	s.mu.Lock()
	s.baseValues = domain.DefaultProfileValues()
	s.mu.Unlock()

	if err := s.valueRepo.ResetValues(ctx); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to reset persisted profile values", slog.String("error", err.Error()))
	}
	return nil
}

// ConvertToComparison re-expresses a home-currency amount in the comparison
// currency.
func (s *CurrencyContextService) ConvertToComparison(amount float64) (float64, error) {
	if err := s.ensureReady(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	from, to := s.pref.HomeCountryKey, s.pref.ComparisonCountryKey
	s.mu.RUnlock()

	return s.rates.Convert(amount, from, to), nil
}

// FormatHomeAmount renders an amount in the home currency.
func (s *CurrencyContextService) FormatHomeAmount(amount float64) (string, error) {
	if err := s.ensureReady(); err != nil {
		return "", err
	}

	s.mu.RLock()
	currency := domain.ResolveCurrency(s.pref.HomeCountryKey)
	s.mu.RUnlock()

	return utils.FormatWithCurrency(amount, currency), nil
}

// FormatComparisonAmount renders an amount in the comparison currency.
func (s *CurrencyContextService) FormatComparisonAmount(amount float64) (string, error) {
	if err := s.ensureReady(); err != nil {
		return "", err
	}

	s.mu.RLock()
	currency := domain.ResolveCurrency(s.pref.ComparisonCountryKey)
	s.mu.RUnlock()

	return utils.FormatWithCurrency(amount, currency), nil
}

// RefreshRates triggers an immediate fetch and reports its outcome.
func (s *CurrencyContextService) RefreshRates(ctx context.Context) error {
	if err := s.ensureReady(); err != nil {
		return err
	}

	if _, err := s.rates.RefreshRates(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.lastRefreshAt = time.Now().UTC()
	s.mu.Unlock()
	return nil
}
