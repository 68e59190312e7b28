package domain_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wishinsured/fx_backend/internal/core/domain"
)

func validTable() domain.RateTable {
	return domain.RateTable{
		Base: domain.BaseCurrencyCode,
		Rates: map[string]float64{
			"USD": 1.0, "INR": 83.15, "GBP": 0.79, "CAD": 1.35, "AUD": 1.52, "EUR": 0.92,
		},
		FetchedAt: time.Now().UTC(),
		Source:    domain.RateSourceRemote,
	}
}

func TestRateTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.RateTable)
		wantErr bool
	}{
		{
			name:    "valid table",
			mutate:  func(*domain.RateTable) {},
			wantErr: false,
		},
		{
			name:    "wrong base currency",
			mutate:  func(tb *domain.RateTable) { tb.Base = "EUR" },
			wantErr: true,
		},
		{
			name:    "empty rates",
			mutate:  func(tb *domain.RateTable) { tb.Rates = map[string]float64{} },
			wantErr: true,
		},
		{
			name:    "missing USD entry",
			mutate:  func(tb *domain.RateTable) { delete(tb.Rates, "USD") },
			wantErr: true,
		},
		{
			name:    "missing catalogue entry",
			mutate:  func(tb *domain.RateTable) { delete(tb.Rates, "CAD") },
			wantErr: true,
		},
		{
			name: "extra non-catalogue entries are allowed",
			mutate: func(tb *domain.RateTable) {
				tb.Rates["JPY"] = 147.2
				tb.Rates["CHF"] = 0.88
			},
			wantErr: false,
		},
		{
			name:    "zero rate",
			mutate:  func(tb *domain.RateTable) { tb.Rates["INR"] = 0 },
			wantErr: true,
		},
		{
			name:    "negative rate",
			mutate:  func(tb *domain.RateTable) { tb.Rates["INR"] = -83.15 },
			wantErr: true,
		},
		{
			name:    "NaN rate",
			mutate:  func(tb *domain.RateTable) { tb.Rates["EUR"] = math.NaN() },
			wantErr: true,
		},
		{
			name:    "infinite rate",
			mutate:  func(tb *domain.RateTable) { tb.Rates["EUR"] = math.Inf(1) },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := validTable()
			tt.mutate(&table)
			err := table.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRateTable_Rate(t *testing.T) {
	table := validTable()

	assert.Equal(t, 1.0, table.Rate("USD"), "base currency is always 1")
	assert.InDelta(t, 83.15, table.Rate("INR"), 1e-12)
	assert.Equal(t, 1.0, table.Rate("XYZ"), "unknown codes fall back to parity")
}

func TestRateTable_CloneIsIndependent(t *testing.T) {
	table := validTable()

	clone := table.Clone()
	clone.Rates["INR"] = 1

	assert.InDelta(t, 83.15, table.Rates["INR"], 1e-12)
}

func TestStaticRateTable(t *testing.T) {
	table := domain.StaticRateTable()

	assert.NoError(t, table.Validate())
	assert.Equal(t, domain.RateSourceStatic, table.Source)
	assert.True(t, table.FetchedAt.IsZero(), "static rates carry no fetch time")
	for _, currency := range domain.ListCurrencies() {
		_, ok := table.Rates[currency.CurrencyCode]
		assert.Truef(t, ok, "static table should cover %s", currency.CurrencyCode)
	}
}
