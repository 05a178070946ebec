package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	portssvc "finance-tracker/internal/core/ports/services"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// dashboardHandler handles HTTP requests for the dashboard aggregations.
type dashboardHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newDashboardHandler creates a new dashboardHandler.
func newDashboardHandler(rs portssvc.ReportingSvcFacade) *dashboardHandler {
	return &dashboardHandler{reportingService: rs}
}

// registerDashboardRoutes registers routes related to the dashboard.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newDashboardHandler(reportingService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.getSummary)
		dashboard.GET("/spending-by-category", h.getSpendingByCategory)
		dashboard.GET("/recent-transactions", h.getRecentTransactions)
	}
}

// getSummary godoc
// @Summary Get the dashboard summary
// @Description Aggregates the month's budget position and pending bill counts; defaults to the current month
// @Tags dashboard
// @Produce  json
// @Param   month query int false "Month (1-12)"
// @Param   year query int false "Year"
// @Success 200 {object} domain.DashboardSummary
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to get summary"
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	month, year, ok := parseMonthYearOrNow(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.GetDashboardSummary(c.Request.Context(), month, year)
	if err != nil {
		logger.Error("Failed to get dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getSpendingByCategory godoc
// @Summary Get per-category spending for a month
// @Description Returns expense totals grouped by category, highest first; defaults to the current month
// @Tags dashboard
// @Produce  json
// @Param   month query int false "Month (1-12)"
// @Param   year query int false "Year"
// @Success 200 {array} domain.CategorySpending
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to get spending"
// @Router /dashboard/spending-by-category [get]
func (h *dashboardHandler) getSpendingByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	month, year, ok := parseMonthYearOrNow(c)
	if !ok {
		return
	}

	spendings, err := h.reportingService.GetSpendingByCategory(c.Request.Context(), month, year)
	if err != nil {
		logger.Error("Failed to get spending by category", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get spending"})
		return
	}

	c.JSON(http.StatusOK, spendings)
}

// getRecentTransactions godoc
// @Summary Get the most recent transactions
// @Tags dashboard
// @Produce  json
// @Param   limit query int false "Maximum number of transactions (default 5)"
// @Success 200 {array} dto.TransactionResponse
// @Failure 500 {object} map[string]string "Failed to get recent transactions"
// @Router /dashboard/recent-transactions [get]
func (h *dashboardHandler) getRecentTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	txns, err := h.reportingService.GetRecentTransactions(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to get recent transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get recent transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// parseMonthYearOrNow reads optional month and year query parameters,
// defaulting both to the current local month.
func parseMonthYearOrNow(c *gin.Context) (int, int, bool) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
			return 0, 0, false
		}
		month = parsed
	}
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return 0, 0, false
		}
		year = parsed
	}

	return month, year, true
}
