package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wishinsured/fx_backend/internal/apperrors"
	"github.com/wishinsured/fx_backend/internal/core/domain"
	portssvc "github.com/wishinsured/fx_backend/internal/core/ports/services"
	"github.com/wishinsured/fx_backend/internal/dto"
	"github.com/wishinsured/fx_backend/internal/middleware"
	"github.com/wishinsured/fx_backend/internal/utils"
)

// rateHandler handles HTTP requests related to exchange rates and conversions.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{
		rateService: rs,
	}
}

// registerRateRoutes registers routes related to exchange rates.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getRates)
		rates.POST("/refresh", h.refreshRates)
	}
	rg.POST("/convert", h.convert)
}

// getRates godoc
// @Summary Get the active exchange rate table
// @Description Retrieves the USD-based rate table currently serving conversions
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RateTableResponse
// @Router /rates [get]
func (h *rateHandler) getRates(c *gin.Context) {
	table := h.rateService.CurrentRates()
	c.JSON(http.StatusOK, dto.ToRateTableResponse(table, h.rateService.IsStale()))
}

// refreshRates godoc
// @Summary Refresh exchange rates now
// @Description Fetches the latest rates from the remote source and swaps the active table
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RateTableResponse
// @Failure 502 {object} map[string]string "Rate source unavailable"
// @Failure 500 {object} map[string]string "Failed to refresh rates"
// @Router /rates/refresh [post]
func (h *rateHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	table, err := h.rateService.RefreshRates(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrRateFetch) || errors.Is(err, apperrors.ErrRateFetchValidation) {
			logger.Warn("Rate refresh failed; previous table keeps serving", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Rate source unavailable"})
		} else {
			logger.Error("Failed to refresh rates", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh rates"})
		}
		return
	}

	logger.Info("Rates refreshed", slog.Time("fetched_at", table.FetchedAt))
	c.JSON(http.StatusOK, dto.ToRateTableResponse(table, h.rateService.IsStale()))
}

// convert godoc
// @Summary Convert an amount between two countries
// @Description Re-expresses an amount from one country's currency in another's through the USD base
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Conversion details"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /convert [post]
func (h *rateHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	fromCurrency, ok := domain.LookupCurrency(req.FromCountryKey)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown fromCountryKey: " + req.FromCountryKey})
		return
	}
	toCurrency, ok := domain.LookupCurrency(req.ToCountryKey)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown toCountryKey: " + req.ToCountryKey})
		return
	}

	converted := h.rateService.Convert(*req.Amount, req.FromCountryKey, req.ToCountryKey)

	c.JSON(http.StatusOK, dto.ConvertResponse{
		FromCountryKey:     req.FromCountryKey,
		ToCountryKey:       req.ToCountryKey,
		FromCurrencyCode:   fromCurrency.CurrencyCode,
		ToCurrencyCode:     toCurrency.CurrencyCode,
		OriginalAmount:     *req.Amount,
		ConvertedAmount:    converted,
		FormattedOriginal:  utils.FormatWithCurrency(*req.Amount, fromCurrency),
		FormattedConverted: utils.FormatWithCurrency(converted, toCurrency),
	})
}
