package ratesapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wishinsured/fx_backend/internal/adapters/ratesapi"
	"github.com/wishinsured/fx_backend/internal/apperrors"
	"github.com/wishinsured/fx_backend/internal/core/domain"
)

const validPayload = `{
	"result": "success",
	"base_code": "USD",
	"rates": {"USD": 1, "INR": 83.15, "GBP": 0.79, "CAD": 1.35, "AUD": 1.52, "EUR": 0.92}
}`

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchLatest_Success(t *testing.T) {
	srv := newServer(t, http.StatusOK, validPayload)
	client := ratesapi.NewClient(srv.URL, time.Second)

	table, err := client.FetchLatest(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.BaseCurrencyCode, table.Base)
	assert.Equal(t, domain.RateSourceRemote, table.Source)
	assert.InDelta(t, 83.15, table.Rates["INR"], 1e-12)
	assert.InDelta(t, 1.0, table.Rates["USD"], 1e-12)
	assert.WithinDuration(t, time.Now().UTC(), table.FetchedAt, 5*time.Second)
}

func TestFetchLatest_ServerError(t *testing.T) {
	srv := newServer(t, http.StatusInternalServerError, "boom")
	client := ratesapi.NewClient(srv.URL, time.Second)

	_, err := client.FetchLatest(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateFetch)
}

func TestFetchLatest_Unreachable(t *testing.T) {
	srv := newServer(t, http.StatusOK, validPayload)
	srv.Close()
	client := ratesapi.NewClient(srv.URL, time.Second)

	_, err := client.FetchLatest(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateFetch)
}

func TestFetchLatest_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"non-success result", `{"result":"error","base_code":"USD","rates":{"USD":1}}`},
		{"wrong base", `{"result":"success","base_code":"EUR","rates":{"EUR":1,"USD":1.08}}`},
		{"empty rates", `{"result":"success","base_code":"USD","rates":{}}`},
		{"missing base entry", `{"result":"success","base_code":"USD","rates":{"INR":83.15}}`},
		{"missing catalogue entries", `{"result":"success","base_code":"USD","rates":{"USD":1,"INR":83.15,"EUR":0.92}}`},
		{"negative rate", `{"result":"success","base_code":"USD","rates":{"USD":1,"INR":-2}}`},
		{"zero rate", `{"result":"success","base_code":"USD","rates":{"USD":1,"INR":0}}`},
		{"malformed json", `{"result":"success",`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newServer(t, http.StatusOK, tc.body)
			client := ratesapi.NewClient(srv.URL, time.Second)

			_, err := client.FetchLatest(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrRateFetchValidation)
		})
	}
}

func TestFetchLatest_CoalescesConcurrentCalls(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		_, _ = w.Write([]byte(validPayload))
	}))
	t.Cleanup(srv.Close)

	client := ratesapi.NewClient(srv.URL, 5*time.Second)

	const callers = 5
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.FetchLatest(context.Background())
		}(i)
	}

	// Give every caller time to join the in-flight request before the
	// server responds.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		assert.NoError(t, errs[i])
	}
	assert.Equal(t, int32(1), hits.Load(), "concurrent callers should share one upstream request")
}
