package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	response "turismo_xpto/internal/adapter/http/dto/response"
	"turismo_xpto/internal/usecase"
	"turismo_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the read-only financial rollups. Reports are recomputed
// per request; nothing is cached or stored.

type ReportHandler struct {
	usecase usecase.IBalanceUseCase
}

func NewReportHandler(uc usecase.IBalanceUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) PaymentStatus(c *gin.Context) {
	report, err := h.usecase.PaymentStatusReport(c.Request.Context())
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentStatusReport(report))
}

// SupplierBalance groups costs per supplier, optionally filtered by the
// catalog supplier type (?type=).
func (h *ReportHandler) SupplierBalance(c *gin.Context) {
	balances, err := h.usecase.SupplierBalanceSummary(c.Request.Context(), c.Query("type"))
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSupplierBalances(balances))
}

func (h *ReportHandler) Cashflow(c *gin.Context) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	summary, err := h.usecase.MonthlyCashflow(c.Request.Context(), year, time.Month(month))
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCashflow(summary))
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPeriod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
