package handlers

import (
	"errors"
	"net/http"

	request "turismo_xpto/internal/adapter/http/dto/request"
	response "turismo_xpto/internal/adapter/http/dto/response"
	"turismo_xpto/internal/usecase"
	"turismo_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReorderPayload = pkg.NewDomainErrorSimple("INVALID_REORDER_INPUT", "Invalid sort order payload", http.StatusBadRequest)

// ServiceTypeHandler manages the service category catalog.

type ServiceTypeHandler struct {
	usecase usecase.IServiceTypeUseCase
}

func NewServiceTypeHandler(uc usecase.IServiceTypeUseCase) *ServiceTypeHandler {
	return &ServiceTypeHandler{usecase: uc}
}

func (h *ServiceTypeHandler) List(c *gin.Context) {
	types, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapServiceTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceTypes(types))
}

func (h *ServiceTypeHandler) Reorder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.ReorderServiceTypesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReorderPayload.HTTPStatus, errInvalidReorderPayload.ToHTTPError())
		return
	}

	types, err := h.usecase.Reorder(c.Request.Context(), payload.ToUpdates(), actor)
	if err != nil {
		appErr := mapServiceTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceTypes(types))
}

func mapServiceTypeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyReorder), errors.Is(err, usecase.ErrReorderTooLarge), errors.Is(err, usecase.ErrDuplicateServiceType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReorderForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role for this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrServiceTypeNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_TYPE_NOT_FOUND", "Service type not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
