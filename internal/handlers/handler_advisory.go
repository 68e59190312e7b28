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

// advisoryHandler handles HTTP requests for country profiles and advice.
type advisoryHandler struct {
	advisoryService portssvc.AdvisorySvcFacade
}

// newAdvisoryHandler creates a new advisoryHandler.
func newAdvisoryHandler(as portssvc.AdvisorySvcFacade) *advisoryHandler {
	return &advisoryHandler{
		advisoryService: as,
	}
}

// registerAdvisoryRoutes registers routes related to country advisory data.
func registerAdvisoryRoutes(rg *gin.RouterGroup, advisoryService portssvc.AdvisorySvcFacade) {
	h := newAdvisoryHandler(advisoryService)

	countries := rg.Group("/countries")
	{
		countries.GET("", h.listCountryProfiles)
		countries.GET("/:countryKey/profile", h.getCountryProfile)
	}
	rg.POST("/premium/localize", h.localizePremium)
	rg.POST("/advice", h.generateAdvice)
}

// listCountryProfiles godoc
// @Summary List all country profiles
// @Description Retrieves the advisory profile of every supported country
// @Tags advisory
// @Produce  json
// @Success 200 {array} dto.CountryProfileResponse
// @Failure 500 {object} map[string]string "Failed to list country profiles"
// @Router /countries [get]
func (h *advisoryHandler) listCountryProfiles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profiles, err := h.advisoryService.ListCountryProfiles(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list country profiles", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list country profiles"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCountryProfileResponse(profiles))
}

// getCountryProfile godoc
// @Summary Get a country profile
// @Description Retrieves the advisory profile for a specific country
// @Tags advisory
// @Produce  json
// @Param   countryKey path string true "Country key (e.g. usa, india)"
// @Success 200 {object} dto.CountryProfileResponse
// @Failure 404 {object} map[string]string "Country not found"
// @Failure 500 {object} map[string]string "Failed to retrieve country profile"
// @Router /countries/{countryKey}/profile [get]
func (h *advisoryHandler) getCountryProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	countryKey := c.Param("countryKey")
	logger = logger.With(slog.String("country_key", countryKey))

	profile, err := h.advisoryService.GetCountryProfile(c.Request.Context(), countryKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Country profile not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		} else {
			logger.Error("Failed to get country profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve country profile"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCountryProfileResponse(profile))
}

// localizePremium godoc
// @Summary Localize an insurance premium
// @Description Adjusts a base USD premium for a country's market and re-expresses it in the local currency
// @Tags advisory
// @Accept  json
// @Produce  json
// @Param   premium body dto.LocalizePremiumRequest true "Premium details"
// @Success 200 {object} dto.LocalizedPremiumResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to localize premium"
// @Router /premium/localize [post]
func (h *advisoryHandler) localizePremium(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LocalizePremiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for LocalizePremium", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	premium, err := h.advisoryService.LocalizePremium(c.Request.Context(), *req.BasePremiumUSD, req.CountryKey, req.InsuranceType)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error localizing premium", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to localize premium", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to localize premium"})
		}
		return
	}

	logger.Info("Premium localized",
		slog.String("country_key", premium.CountryKey),
		slog.String("insurance_type", premium.InsuranceType),
	)
	c.JSON(http.StatusOK, dto.ToLocalizedPremiumResponse(premium))
}

// generateAdvice godoc
// @Summary Generate budgeting advice
// @Description Derives a country-aware budgeting breakdown from an annual income
// @Tags advisory
// @Accept  json
// @Produce  json
// @Param   request body dto.AdviceRequest true "Advice request"
// @Success 200 {object} dto.FinancialAdviceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Country not found"
// @Failure 500 {object} map[string]string "Failed to generate advice"
// @Router /advice [post]
func (h *advisoryHandler) generateAdvice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GenerateAdvice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	advice, err := h.advisoryService.GenerateAdvice(c.Request.Context(), req.CountryKey, req.AnnualIncome)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Country not found for advice", slog.String("country_key", req.CountryKey))
			c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error generating advice", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate advice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate advice"})
		}
		return
	}

	logger.Info("Advice generated", slog.String("country_key", advice.CountryKey))
	c.JSON(http.StatusOK, dto.ToFinancialAdviceResponse(advice))
}
