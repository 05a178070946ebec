package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"finance-tracker/internal/apperrors"
	portssvc "finance-tracker/internal/core/ports/services"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to exchange rates,
// conversions and the display currency preference.
type currencyHandler struct {
	rateService portssvc.RateSvcFacade
	prefService portssvc.PreferenceSvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(rs portssvc.RateSvcFacade, ps portssvc.PreferenceSvcFacade) *currencyHandler {
	return &currencyHandler{
		rateService: rs,
		prefService: ps,
	}
}

// registerCurrencyRoutes registers routes related to currencies and rates.
func registerCurrencyRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade, prefService portssvc.PreferenceSvcFacade) {
	h := newCurrencyHandler(rateService, prefService)

	currency := rg.Group("/currency")
	{
		currency.GET("/rates", h.getRates)
		currency.POST("/update-rates", h.updateRates)
		currency.POST("/convert", h.convert)
		currency.GET("/currencies", h.listCurrencies)
		currency.GET("/preference", h.getPreference)
		currency.PUT("/preference", h.updatePreference)
	}
}

// getRates godoc
// @Summary Get the latest exchange rates
// @Description Returns the freshest available rate table with its provenance (cached, fetched or stale-fallback)
// @Tags currency
// @Produce  json
// @Success 200 {object} dto.RatesResponse
// @Failure 503 {object} map[string]string "No rates available"
// @Router /currency/rates [get]
func (h *currencyHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	table, err := h.rateService.GetLatestRates(c.Request.Context())
	if err != nil {
		h.respondRateError(c, logger, err, "Failed to get rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToRatesResponse(table))
}

// updateRates godoc
// @Summary Force a rate refresh
// @Description Resolves the latest rate table, fetching from the feed when the cache has no same-day entry
// @Tags currency
// @Produce  json
// @Success 200 {object} dto.UpdateRatesResponse
// @Failure 503 {object} map[string]string "No rates available"
// @Router /currency/update-rates [post]
func (h *currencyHandler) updateRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to refresh rates")

	table, err := h.rateService.GetLatestRates(c.Request.Context())
	if err != nil {
		h.respondRateError(c, logger, err, "Failed to refresh rates")
		return
	}

	logger.Info("Rates refreshed", slog.String("source", string(table.Provenance)), slog.Int("currency_count", len(table.Rates)))
	c.JSON(http.StatusOK, dto.UpdateRatesResponse{
		Message:       "Rates updated successfully",
		Date:          table.Date.Format(dto.DateLayout),
		CurrencyCount: len(table.Rates),
	})
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts using the latest resolved rate table, pivoting through the base currency
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Conversion details"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown currency"
// @Failure 503 {object} map[string]string "No rates available"
// @Router /currency/convert [post]
func (h *currencyHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	converted, err := h.rateService.ConvertAmount(c.Request.Context(), req.Amount, req.FromCurrency, req.ToCurrency)
	if err != nil {
		if errors.Is(err, apperrors.ErrRateNotFound) {
			logger.Warn("Conversion requested for unknown currency", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.respondRateError(c, logger, err, "Failed to convert amount")
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		OriginalAmount:  req.Amount,
		FromCurrency:    req.FromCurrency,
		ToCurrency:      req.ToCurrency,
		ConvertedAmount: converted,
		Timestamp:       time.Now(),
	})
}

// listCurrencies godoc
// @Summary List known currencies
// @Description Returns the currency codes of the latest rate table with display names
// @Tags currency
// @Produce  json
// @Success 200 {array} domain.CurrencyInfo
// @Failure 503 {object} map[string]string "No rates available"
// @Router /currency/currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.rateService.ListCurrencies(c.Request.Context())
	if err != nil {
		h.respondRateError(c, logger, err, "Failed to list currencies")
		return
	}

	c.JSON(http.StatusOK, currencies)
}

// getPreference godoc
// @Summary Get the display currency
// @Description Returns the stored display currency, defaulting to the base currency
// @Tags currency
// @Produce  json
// @Success 200 {object} dto.PreferenceResponse
// @Failure 500 {object} map[string]string "Failed to read preference"
// @Router /currency/preference [get]
func (h *currencyHandler) getPreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	code, err := h.prefService.GetDisplayCurrency(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get display currency", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read preference"})
		return
	}

	c.JSON(http.StatusOK, dto.PreferenceResponse{DisplayCurrency: code})
}

// updatePreference godoc
// @Summary Set the display currency
// @Description Overwrites the stored display currency preference
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   preference body dto.UpdatePreferenceRequest true "New display currency"
// @Success 200 {object} dto.UpdatePreferenceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save preference"
// @Router /currency/preference [put]
func (h *currencyHandler) updatePreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePreference", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.prefService.SetDisplayCurrency(c.Request.Context(), req.DisplayCurrency); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to set display currency", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preference"})
		return
	}

	logger.Info("Display currency updated", slog.String("currency", req.DisplayCurrency))
	c.JSON(http.StatusOK, dto.UpdatePreferenceResponse{
		DisplayCurrency: req.DisplayCurrency,
		Message:         "Preference updated successfully",
	})
}

// respondRateError maps rate resolution failures to HTTP responses.
func (h *currencyHandler) respondRateError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	if errors.Is(err, apperrors.ErrRatesUnavailable) {
		logger.Error("No rates available", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Exchange rates are currently unavailable"})
		return
	}
	logger.Error(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
