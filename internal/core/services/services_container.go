package services

import (
	"github.com/wishinsured/fx_backend/internal/core/domain"
	portsrepo "github.com/wishinsured/fx_backend/internal/core/ports/repositories"
	portssvc "github.com/wishinsured/fx_backend/internal/core/ports/services"
	"github.com/wishinsured/fx_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, rateSource portsrepo.RateSource) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService()

	// The rate service backs both the context and the advisory layer, so
	// every consumer converts against the same table.
	rateService := NewRateService(rateSource, repos.RateSnapshotRepo, cfg.RatesRefreshInterval)
	container.Rates = rateService

	defaults := domain.Preference{
		HomeCountryKey:       cfg.DefaultHomeCountry,
		ComparisonCountryKey: cfg.DefaultComparisonCountry,
	}
	container.Context = NewCurrencyContextService(
		rateService,
		repos.PreferenceRepo,
		repos.ProfileValueRepo,
		cfg.RatesRefreshInterval,
		defaults,
	)

	container.Advisory = NewAdvisoryService(rateService)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)
	_ portssvc.RateSvcFacade     = (*RateService)(nil)
	_ portssvc.ContextSvcFacade  = (*CurrencyContextService)(nil)
	_ portssvc.AdvisorySvcFacade = (*AdvisoryService)(nil)
	_ domain.RateProvider        = (*RateService)(nil)
)
