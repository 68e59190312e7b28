package services_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wishinsured/fx_backend/internal/apperrors"
	"github.com/wishinsured/fx_backend/internal/core/domain"
	"github.com/wishinsured/fx_backend/internal/core/services"
)

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchLatest(ctx context.Context) (domain.RateTable, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateTable), args.Error(1)
}

// --- Mock RateSnapshotRepository ---
type MockRateSnapshotRepository struct {
	mock.Mock
}

func (m *MockRateSnapshotRepository) FindLatestSnapshot(ctx context.Context) (*domain.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

func (m *MockRateSnapshotRepository) SaveSnapshot(ctx context.Context, table domain.RateTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func remoteTable() domain.RateTable {
	return domain.RateTable{
		Base: domain.BaseCurrencyCode,
		Rates: map[string]float64{
			"USD": 1.0, "INR": 84.20, "GBP": 0.80, "CAD": 1.36, "AUD": 1.50, "EUR": 0.91,
		},
		FetchedAt: time.Now().UTC(),
		Source:    domain.RateSourceRemote,
	}
}

// --- Test Suite ---
type RateServiceTestSuite struct {
	suite.Suite
	mockSource    *MockRateSource
	mockSnapshots *MockRateSnapshotRepository
	service       *services.RateService
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockSource = new(MockRateSource)
	suite.mockSnapshots = new(MockRateSnapshotRepository)
	suite.service = services.NewRateService(suite.mockSource, suite.mockSnapshots, time.Hour)
}

// --- Test Cases ---

func (suite *RateServiceTestSuite) TestCurrentRates_StartsStatic() {
	table := suite.service.CurrentRates()

	suite.Equal(domain.RateSourceStatic, table.Source)
	suite.InDelta(83.15, table.Rates["INR"], 1e-12)
	suite.True(suite.service.IsStale(), "static table should always read as stale")
}

func (suite *RateServiceTestSuite) TestCurrentRates_CopyIsIsolated() {
	table := suite.service.CurrentRates()
	table.Rates["INR"] = -1

	suite.InDelta(83.15, suite.service.Rate("INR"), 1e-12)
}

func (suite *RateServiceTestSuite) TestRefreshRates_Success() {
	ctx := context.Background()
	fetched := remoteTable()
	suite.mockSource.On("FetchLatest", ctx).Return(fetched, nil).Once()
	suite.mockSnapshots.On("SaveSnapshot", ctx, mock.AnythingOfType("domain.RateTable")).Return(nil).Once()

	table, err := suite.service.RefreshRates(ctx)

	suite.NoError(err)
	suite.Equal(domain.RateSourceRemote, table.Source)
	suite.InDelta(84.20, suite.service.Rate("INR"), 1e-12)
	suite.False(suite.service.IsStale())
	suite.mockSource.AssertExpectations(suite.T())
	suite.mockSnapshots.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestRefreshRates_FailureKeepsPreviousTable() {
	ctx := context.Background()
	fetched := remoteTable()
	suite.mockSource.On("FetchLatest", ctx).Return(fetched, nil).Once()
	suite.mockSnapshots.On("SaveSnapshot", ctx, mock.AnythingOfType("domain.RateTable")).Return(nil).Once()
	_, err := suite.service.RefreshRates(ctx)
	suite.Require().NoError(err)

	suite.mockSource.On("FetchLatest", ctx).Return(domain.RateTable{}, apperrors.ErrRateFetch).Once()

	_, err = suite.service.RefreshRates(ctx)

	suite.ErrorIs(err, apperrors.ErrRateFetch)
	suite.InDelta(84.20, suite.service.Rate("INR"), 1e-12, "previous table must keep serving")
	suite.mockSnapshots.AssertNumberOfCalls(suite.T(), "SaveSnapshot", 1)
}

func (suite *RateServiceTestSuite) TestRefreshRates_SnapshotFailureDoesNotBlockServing() {
	ctx := context.Background()
	suite.mockSource.On("FetchLatest", ctx).Return(remoteTable(), nil).Once()
	suite.mockSnapshots.On("SaveSnapshot", ctx, mock.AnythingOfType("domain.RateTable")).Return(apperrors.NewAppError(500, "disk full", nil)).Once()

	_, err := suite.service.RefreshRates(ctx)

	suite.NoError(err)
	suite.InDelta(84.20, suite.service.Rate("INR"), 1e-12)
}

func (suite *RateServiceTestSuite) TestSeedFromStorage_UsesSnapshot() {
	ctx := context.Background()
	snapshot := remoteTable()
	snapshot.Source = domain.RateSourceSnapshot
	suite.mockSnapshots.On("FindLatestSnapshot", ctx).Return(&snapshot, nil).Once()

	suite.service.SeedFromStorage(ctx)

	suite.Equal(domain.RateSourceSnapshot, suite.service.CurrentRates().Source)
	suite.InDelta(84.20, suite.service.Rate("INR"), 1e-12)
}

func (suite *RateServiceTestSuite) TestSeedFromStorage_NothingStoredKeepsStatic() {
	ctx := context.Background()
	suite.mockSnapshots.On("FindLatestSnapshot", ctx).Return(nil, apperrors.ErrNotFound).Once()

	suite.service.SeedFromStorage(ctx)

	suite.Equal(domain.RateSourceStatic, suite.service.CurrentRates().Source)
}

func (suite *RateServiceTestSuite) TestSeedFromStorage_InvalidSnapshotDiscarded() {
	ctx := context.Background()
	corrupt := &domain.RateTable{
		Base:      domain.BaseCurrencyCode,
		Rates:     map[string]float64{"USD": 1.0, "INR": -5},
		FetchedAt: time.Now().UTC(),
		Source:    domain.RateSourceSnapshot,
	}
	suite.mockSnapshots.On("FindLatestSnapshot", ctx).Return(corrupt, nil).Once()

	suite.service.SeedFromStorage(ctx)

	suite.Equal(domain.RateSourceStatic, suite.service.CurrentRates().Source)
	suite.InDelta(83.15, suite.service.Rate("INR"), 1e-12)
}

func (suite *RateServiceTestSuite) TestConvert_SelfConversionIsExact() {
	amount := 123.456789
	suite.Equal(amount, suite.service.Convert(amount, "india", "india"))
}

func (suite *RateServiceTestSuite) TestConvert_RoundTripWithinTolerance() {
	amount := 5000.0

	converted := suite.service.Convert(amount, "usa", "india")
	back := suite.service.Convert(converted, "india", "usa")

	suite.InEpsilon(amount, back, 1e-9)
}

func (suite *RateServiceTestSuite) TestConvert_ThroughBase() {
	// 1000 USD at 83.15 INR per USD
	suite.InDelta(83150, suite.service.Convert(1000, "usa", "india"), 1e-6)
}

func (suite *RateServiceTestSuite) TestConvert_UnknownKeyTreatedAtParity() {
	suite.InDelta(250, suite.service.Convert(250, "atlantis", "usa"), 1e-12)
	suite.InDelta(250, suite.service.Convert(250, "usa", "atlantis"), 1e-12)
}

func (suite *RateServiceTestSuite) TestConcurrentReadersSeeCompleteTables() {
	ctx := context.Background()
	first := remoteTable()
	suite.mockSource.On("FetchLatest", ctx).Return(first, nil)
	suite.mockSnapshots.On("SaveSnapshot", ctx, mock.AnythingOfType("domain.RateTable")).Return(nil)

	var torn atomic.Int32
	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				table := suite.service.CurrentRates()
				if len(table.Rates) != 6 {
					torn.Add(1)
				}
			}
		}()
	}

	for i := 0; i < 50; i++ {
		_, err := suite.service.RefreshRates(ctx)
		suite.Require().NoError(err)
	}
	close(stop)
	wg.Wait()

	suite.Zero(torn.Load(), "every observed table must be complete")
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
