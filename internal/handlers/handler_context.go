package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wishinsured/fx_backend/internal/apperrors"
	portssvc "github.com/wishinsured/fx_backend/internal/core/ports/services"
	"github.com/wishinsured/fx_backend/internal/dto"
	"github.com/wishinsured/fx_backend/internal/middleware"
)

// contextHandler handles HTTP requests against the currency context.
type contextHandler struct {
	contextService portssvc.ContextSvcFacade
}

// newContextHandler creates a new contextHandler.
func newContextHandler(cs portssvc.ContextSvcFacade) *contextHandler {
	return &contextHandler{
		contextService: cs,
	}
}

// registerContextRoutes registers routes related to the currency context.
func registerContextRoutes(rg *gin.RouterGroup, contextService portssvc.ContextSvcFacade) {
	h := newContextHandler(contextService)

	ctxGroup := rg.Group("/context")
	{
		ctxGroup.GET("", h.getContext)
		ctxGroup.PUT("/home", h.setHomeCountry)
		ctxGroup.PUT("/comparison", h.setComparisonCountry)
		ctxGroup.PUT("/values/:field", h.updateValue)
		ctxGroup.POST("/values/reset", h.resetValues)
	}
}

// respondContextError maps context service errors onto HTTP statuses shared by
// every route in this group.
func respondContextError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrNotReady):
		logger.Warn("Context not ready", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Currency context is not ready yet"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Context operation failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// getContext godoc
// @Summary Get the currency context
// @Description Retrieves the lifecycle state, selected countries, and stored profile values
// @Tags context
// @Produce  json
// @Success 200 {object} dto.ContextResponse
// @Router /context [get]
func (h *contextHandler) getContext(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToContextResponse(h.contextService.Snapshot()))
}

// setHomeCountry godoc
// @Summary Switch the home country
// @Description Changes the home country; stored values are reinterpreted in the new currency
// @Tags context
// @Accept  json
// @Produce  json
// @Param   selection body dto.SetCountryRequest true "Country selection"
// @Success 200 {object} dto.ContextResponse
// @Failure 400 {object} map[string]string "Invalid country key"
// @Failure 503 {object} map[string]string "Context not ready"
// @Router /context/home [put]
func (h *contextHandler) setHomeCountry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetHomeCountry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.contextService.SetHomeCountry(c.Request.Context(), req.CountryKey); err != nil {
		respondContextError(c, logger, err, "switch home country")
		return
	}

	logger.Info("Home country switched", slog.String("country_key", req.CountryKey))
	c.JSON(http.StatusOK, dto.ToContextResponse(h.contextService.Snapshot()))
}

// setComparisonCountry godoc
// @Summary Switch the comparison country
// @Description Changes the country used for side-by-side comparisons
// @Tags context
// @Accept  json
// @Produce  json
// @Param   selection body dto.SetCountryRequest true "Country selection"
// @Success 200 {object} dto.ContextResponse
// @Failure 400 {object} map[string]string "Invalid country key"
// @Failure 503 {object} map[string]string "Context not ready"
// @Router /context/comparison [put]
func (h *contextHandler) setComparisonCountry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetComparisonCountry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.contextService.SetComparisonCountry(c.Request.Context(), req.CountryKey); err != nil {
		respondContextError(c, logger, err, "switch comparison country")
		return
	}

	logger.Info("Comparison country switched", slog.String("country_key", req.CountryKey))
	c.JSON(http.StatusOK, dto.ToContextResponse(h.contextService.Snapshot()))
}

// updateValue godoc
// @Summary Store a financial profile value
// @Description Stores one profile value in home-currency units
// @Tags context
// @Accept  json
// @Produce  json
// @Param   field path string true "Profile field name (e.g. income)"
// @Param   value body dto.UpdateValueRequest true "New value"
// @Success 200 {object} dto.ContextResponse
// @Failure 400 {object} map[string]string "Unknown field or non-finite value"
// @Failure 503 {object} map[string]string "Context not ready"
// @Router /context/values/{field} [put]
func (h *contextHandler) updateValue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fieldName := c.Param("field")
	var req dto.UpdateValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateValue", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.contextService.UpdateValue(c.Request.Context(), fieldName, *req.Value); err != nil {
		respondContextError(c, logger, err, "update profile value")
		return
	}

	logger.Info("Profile value updated", slog.String("field", fieldName))
	c.JSON(http.StatusOK, dto.ToContextResponse(h.contextService.Snapshot()))
}

// resetValues godoc
// @Summary Reset all financial profile values
// @Description Zeroes every stored profile value
// @Tags context
// @Produce  json
// @Success 200 {object} dto.ContextResponse
// @Failure 503 {object} map[string]string "Context not ready"
// @Router /context/values/reset [post]
func (h *contextHandler) resetValues(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.contextService.ResetValues(c.Request.Context()); err != nil {
		respondContextError(c, logger, err, "reset profile values")
		return
	}

	logger.Info("Profile values reset")
	c.JSON(http.StatusOK, dto.ToContextResponse(h.contextService.Snapshot()))
}
