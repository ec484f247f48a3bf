package handlers

import (
	"errors"
	"net/http"

	response "turismo_xpto/internal/adapter/http/dto/response"
	"turismo_xpto/internal/usecase"
	"turismo_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// HistoryHandler exposes the audit trail of an operator cost.

type HistoryHandler struct {
	usecase usecase.IHistoryUseCase
}

func NewHistoryHandler(uc usecase.IHistoryUseCase) *HistoryHandler {
	return &HistoryHandler{usecase: uc}
}

func (h *HistoryHandler) GetByEntityID(c *gin.Context) {
	entries, err := h.usecase.GetByEntityID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHistoryEntries(entries))
}

func mapHistoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEntityID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
