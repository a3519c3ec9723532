package handlers

import (
	"errors"
	"net/http"

	request "github.com/copdilan8-rgb/lacopita/internal/adapter/http/dto/request"
	response "github.com/copdilan8-rgb/lacopita/internal/adapter/http/dto/response"
	"github.com/copdilan8-rgb/lacopita/internal/adapter/http/middlewares"
	"github.com/copdilan8-rgb/lacopita/internal/domain/entities"
	"github.com/copdilan8-rgb/lacopita/internal/usecase"
	"github.com/copdilan8-rgb/lacopita/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for the order lifecycle.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// Confirm settles a draft into a persisted order. An empty draft is treated
// as a no-op rather than an error: the register screen fires confirm
// unconditionally on checkout and an already-cleared draft must not surface
// as a failure.
func (h *OrderHandler) Confirm(c *gin.Context) {
	var payload request.ConfirmOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Confirm(c.Request.Context(), c.GetString("userID"), payload.ClientID, payload.ToDraft())
	if errors.Is(err, usecase.ErrEmptyDraft) {
		c.Status(http.StatusNoContent)
		return
	}
	middlewares.RecordOrderOperation("confirm", err == nil)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) List(c *gin.Context) {
	status := entities.OrderStatus(c.DefaultQuery("estado", string(entities.OrderStatusEnCurso)))
	orders, err := h.usecase.ListByStatus(c.Request.Context(), status)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) Deliver(c *gin.Context) {
	order, err := h.usecase.MarkDelivered(c.Request.Context(), c.Param("id"))
	middlewares.RecordOrderOperation("deliver", err == nil)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) Pay(c *gin.Context) {
	var payload request.PayOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.MarkPaid(c.Request.Context(), c.Param("id"), entities.PaymentMethod(payload.PaymentMethod))
	middlewares.RecordOrderOperation("pay", err == nil)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) Delete(c *gin.Context) {
	err := h.usecase.Delete(c.Request.Context(), c.Param("id"))
	middlewares.RecordOrderOperation("delete", err == nil)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "User not authenticated", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrRegisterClosed):
		return pkg.NewDomainErrorSimple("REGISTER_CLOSED", "No open register session", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTableNumber),
		errors.Is(err, usecase.ErrInvalidDraftItem),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderWrongState):
		return pkg.NewDomainErrorSimple("ORDER_WRONG_STATE", "Order is not in the required state", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadySettled):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_SETTLED", "Order already belongs to a closed session", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
