package ratesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wishinsured/fx_backend/internal/apperrors"
	"github.com/wishinsured/fx_backend/internal/core/domain"
	"golang.org/x/sync/singleflight"
)

// latestResponse mirrors the open.er-api.com /v6/latest payload. Fields the
// service does not use are ignored on decode.
type latestResponse struct {
	Result   string             `json:"result"`
	BaseCode string             `json:"base_code"`
	Rates    map[string]float64 `json:"rates"`
}

// Client fetches USD-based exchange rates from the public rates API.
// It implements the RateSource port: concurrent FetchLatest calls coalesce
// into a single upstream request, and there is no internal retry.
type Client struct {
	endpoint   string
	httpClient *http.Client
	group      singleflight.Group
}

// NewClient builds a rates API client. The timeout bounds the whole request,
// including body read.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchLatest retrieves the current rate table. Callers that arrive while a
// request is in flight share its result; the first caller's context governs
// the request.
func (c *Client) FetchLatest(ctx context.Context) (domain.RateTable, error) {
	v, err, _ := c.group.Do("latest", func() (interface{}, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		return domain.RateTable{}, err
	}
	return v.(domain.RateTable).Clone(), nil
}

func (c *Client) fetch(ctx context.Context) (domain.RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: building request: %v", apperrors.ErrRateFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: %v", apperrors.ErrRateFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.RateTable{}, fmt.Errorf("%w: unexpected status %d", apperrors.ErrRateFetch, resp.StatusCode)
	}

	var payload latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: decoding payload: %v", apperrors.ErrRateFetchValidation, err)
	}
	if payload.Result != "success" {
		return domain.RateTable{}, fmt.Errorf("%w: result %q", apperrors.ErrRateFetchValidation, payload.Result)
	}

	table := domain.RateTable{
		Base:      payload.BaseCode,
		Rates:     payload.Rates,
		FetchedAt: time.Now().UTC(),
		Source:    domain.RateSourceRemote,
	}
	if err := table.Validate(); err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: %v", apperrors.ErrRateFetchValidation, err)
	}
	return table, nil
}
