package handlers

import (
	"context"
	"errors"
	"net/http"

	request "turismo_xpto/internal/adapter/http/dto/request"
	response "turismo_xpto/internal/adapter/http/dto/response"
	"turismo_xpto/internal/adapter/http/middleware"
	"turismo_xpto/internal/domain/entities"
	"turismo_xpto/internal/domain/transition"
	"turismo_xpto/internal/usecase"
	"turismo_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCostPayload = pkg.NewDomainErrorSimple("INVALID_COST_INPUT", "Invalid operator cost payload", http.StatusBadRequest)

// OperatorCostHandler handles HTTP requests for the guarded operator cost
// transitions and the thin cost reads.

type OperatorCostHandler struct {
	usecase usecase.IOperatorCostUseCase
}

func NewOperatorCostHandler(uc usecase.IOperatorCostUseCase) *OperatorCostHandler {
	return &OperatorCostHandler{usecase: uc}
}

func (h *OperatorCostHandler) GetByID(c *gin.Context) {
	cost, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOperatorCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOperatorCost(cost))
}

func (h *OperatorCostHandler) ListByRequestID(c *gin.Context) {
	costs, err := h.usecase.ListByRequestID(c.Request.Context(), c.Query("request_id"))
	if err != nil {
		appErr := mapOperatorCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOperatorCosts(costs))
}

// ApprovePayment marks the cost PAID. The body is optional; an explicit
// payment_date overrides the approval timestamp.
func (h *OperatorCostHandler) ApprovePayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.ApprovePaymentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidCostPayload.HTTPStatus, errInvalidCostPayload.ToHTTPError())
			return
		}
	}
	paymentDate, err := payload.ResolvePaymentDate()
	if err != nil {
		c.JSON(errInvalidCostPayload.HTTPStatus, errInvalidCostPayload.ToHTTPError())
		return
	}

	cost, err := h.usecase.ApprovePayment(c.Request.Context(), c.Param("id"), paymentDate, actor)
	if err != nil {
		appErr := mapOperatorCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOperatorCost(cost))
}

func (h *OperatorCostHandler) Lock(c *gin.Context) {
	h.applyTransition(c, h.usecase.Lock)
}

func (h *OperatorCostHandler) Unlock(c *gin.Context) {
	h.applyTransition(c, h.usecase.Unlock)
}

func (h *OperatorCostHandler) applyTransition(
	c *gin.Context,
	apply func(ctx context.Context, id string, actor entities.Actor) (entities.OperatorCost, error),
) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	cost, err := apply(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		appErr := mapOperatorCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOperatorCost(cost))
}

func (h *OperatorCostHandler) UpdateDetails(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.UpdateCostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCostPayload.HTTPStatus, errInvalidCostPayload.ToHTTPError())
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		c.JSON(errInvalidCostPayload.HTTPStatus, errInvalidCostPayload.ToHTTPError())
		return
	}

	cost, err := h.usecase.UpdateDetails(c.Request.Context(), c.Param("id"), patch, actor)
	if err != nil {
		appErr := mapOperatorCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOperatorCost(cost))
}

func requireActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing authenticated actor", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.Actor{}, false
	}
	return actor, true
}

func mapOperatorCostError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCostID), errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrEmptyCostPatch):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCostNotFound):
		return pkg.NewDomainErrorSimple("COST_NOT_FOUND", "Operator cost not found", http.StatusNotFound)
	case errors.Is(err, transition.ErrAlreadyLocked):
		return pkg.NewDomainErrorSimple("ALREADY_LOCKED", "Operator cost is locked", http.StatusBadRequest)
	case errors.Is(err, transition.ErrAlreadyPaid):
		return pkg.NewDomainErrorSimple("ALREADY_PAID", "Operator cost is already paid", http.StatusBadRequest)
	case errors.Is(err, transition.ErrNotLocked):
		return pkg.NewDomainErrorSimple("NOT_LOCKED", "Operator cost is not locked", http.StatusBadRequest)
	case errors.Is(err, transition.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role for this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrCostConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Operator cost was modified concurrently", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
