package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/core/domain"
	portssvc "finance-tracker/internal/core/ports/services"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// billHandler handles HTTP requests related to bills.
type billHandler struct {
	billService portssvc.BillSvcFacade
}

// newBillHandler creates a new billHandler.
func newBillHandler(bs portssvc.BillSvcFacade) *billHandler {
	return &billHandler{billService: bs}
}

// registerBillRoutes registers routes related to bills.
func registerBillRoutes(rg *gin.RouterGroup, billService portssvc.BillSvcFacade) {
	h := newBillHandler(billService)

	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.GET("", h.listBills)
		bills.GET("/:id", h.getBillByID)
		bills.PUT("/:id", h.updateBill)
		bills.PATCH("/:id/status", h.updateBillStatus)
		bills.DELETE("/:id", h.deleteBill)
	}
}

// createBill godoc
// @Summary Create a new bill
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   bill body dto.CreateBillRequest true "Bill details"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create bill"
// @Router /bills [post]
func (h *billHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.billService.CreateBill(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create bill", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bill"})
		return
	}

	logger.Info("Bill created", slog.Int64("bill_id", created.BillID))
	c.JSON(http.StatusCreated, dto.ToBillResponse(created))
}

// listBills godoc
// @Summary List bills
// @Description Lists bills ordered by due date; filter by status or restrict to the next seven days
// @Tags bills
// @Produce  json
// @Param   status query string false "Bill status (pending or paid)"
// @Param   upcoming query bool false "Only pending bills due within seven days"
// @Success 200 {array} dto.BillResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Failed to list bills"
// @Router /bills [get]
func (h *billHandler) listBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var filter domain.BillFilter
	if raw := c.Query("status"); raw != "" {
		status := domain.BillStatus(raw)
		if status != domain.BillStatusPending && status != domain.BillStatusPaid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status, expected pending or paid"})
			return
		}
		filter.Status = &status
	}
	filter.Upcoming = c.Query("upcoming") == "true"

	bills, err := h.billService.ListBills(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list bills", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bills"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBillResponse(bills))
}

// getBillByID godoc
// @Summary Get a bill by ID
// @Tags bills
// @Produce  json
// @Param   id path int true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to retrieve bill"
// @Router /bills/{id} [get]
func (h *billHandler) getBillByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	bill, err := h.billService.GetBillByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		logger.Error("Failed to get bill", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bill"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// updateBill godoc
// @Summary Update a bill
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   id path int true "Bill ID"
// @Param   bill body dto.UpdateBillRequest true "Bill details"
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to update bill"
// @Router /bills/{id} [put]
func (h *billHandler) updateBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.billService.UpdateBill(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		default:
			logger.Error("Failed to update bill", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bill"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBillResponse(updated))
}

// updateBillStatus godoc
// @Summary Mark a bill pending or paid
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   id path int true "Bill ID"
// @Param   status body dto.UpdateBillStatusRequest true "New status"
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to update bill status"
// @Router /bills/{id}/status [patch]
func (h *billHandler) updateBillStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateBillStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBillStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.billService.UpdateBillStatus(c.Request.Context(), id, domain.BillStatus(req.Status))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		logger.Error("Failed to update bill status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bill status"})
		return
	}

	logger.Info("Bill status updated", slog.Int64("bill_id", id), slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToBillResponse(updated))
}

// deleteBill godoc
// @Summary Delete a bill
// @Tags bills
// @Produce  json
// @Param   id path int true "Bill ID"
// @Success 204 "No content"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to delete bill"
// @Router /bills/{id} [delete]
func (h *billHandler) deleteBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.billService.DeleteBill(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		logger.Error("Failed to delete bill", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bill"})
		return
	}

	c.Status(http.StatusNoContent)
}
