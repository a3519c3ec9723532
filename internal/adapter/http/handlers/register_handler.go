package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "github.com/copdilan8-rgb/lacopita/internal/adapter/http/dto/request"
	response "github.com/copdilan8-rgb/lacopita/internal/adapter/http/dto/response"
	"github.com/copdilan8-rgb/lacopita/internal/adapter/http/middlewares"
	"github.com/copdilan8-rgb/lacopita/internal/usecase"
	"github.com/copdilan8-rgb/lacopita/internal/usecase/interfaces"
	"github.com/copdilan8-rgb/lacopita/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRegisterPayload = pkg.NewDomainErrorSimple("INVALID_REGISTER_INPUT", "Invalid register payload", http.StatusBadRequest)
)

// RegisterHandler handles HTTP requests for the cash register lifecycle.
//
// GetState is served from the cross-process cache, not the use case: it backs
// the high-frequency "can I take orders?" poll from every register screen.

type RegisterHandler struct {
	usecase usecase.IRegisterUseCase
	state   interfaces.IRegisterStateCache
}

func NewRegisterHandler(uc usecase.IRegisterUseCase, state interfaces.IRegisterStateCache) *RegisterHandler {
	return &RegisterHandler{usecase: uc, state: state}
}

func (h *RegisterHandler) Open(c *gin.Context) {
	var payload request.OpenRegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegisterPayload.HTTPStatus, errInvalidRegisterPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Open(c.Request.Context(), c.GetString("userID"), payload.InitialCashAmount)
	middlewares.RecordRegisterOperation("open", err == nil)
	if err != nil {
		appErr := mapRegisterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRegisterSession(session))
}

func (h *RegisterHandler) Close(c *gin.Context) {
	var payload request.CloseRegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegisterPayload.HTTPStatus, errInvalidRegisterPayload.ToHTTPError())
		return
	}

	session, summary, err := h.usecase.Close(c.Request.Context(), usecase.CloseRegisterInput{
		SessionID:    payload.CajaID,
		ClosedBy:     c.GetString("userID"),
		Observations: payload.Observations,
		Discount:     payload.Discount,
	})
	middlewares.RecordRegisterOperation("close", err == nil)
	if err != nil {
		appErr := mapRegisterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClosedRegister(session, summary))
}

func (h *RegisterHandler) GetCurrent(c *gin.Context) {
	session, err := h.usecase.GetCurrent(c.Request.Context())
	if err != nil {
		appErr := mapRegisterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCurrentRegister(session))
}

// GetState answers the cached open/closed flag. Worst case it lags a real
// close by one cache TTL; order settlement re-checks against the database.
func (h *RegisterHandler) GetState(c *gin.Context) {
	open := h.state.Query(c.Request.Context())
	c.JSON(http.StatusOK, response.RegisterStateResponse{Abierta: open})
}

func (h *RegisterHandler) PendingSummary(c *gin.Context) {
	orders, summary, err := h.usecase.PendingOrdersSummary(c.Request.Context(), c.Query("caja_id"))
	if err != nil {
		appErr := mapRegisterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPendingOrders(orders, summary))
}

func (h *RegisterHandler) History(c *gin.Context) {
	limit, offset := pageParams(c)
	sessions, total, err := h.usecase.History(c.Request.Context(), limit, offset)
	if err != nil {
		appErr := mapRegisterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRegisterHistory(sessions, total))
}

func (h *RegisterHandler) HistoryDetailed(c *gin.Context) {
	limit, offset := pageParams(c)
	entries, total, err := h.usecase.HistoryDetailed(c.Request.Context(), limit, offset, c.Query("fecha"))
	if err != nil {
		appErr := mapRegisterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRegisterHistoryDetailed(entries, total))
}

func pageParams(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	return limit, offset
}

func mapRegisterError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInitialAmount),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRegisterAlreadyOpen):
		return pkg.NewDomainErrorSimple("REGISTER_ALREADY_OPEN", "A register session is already open", http.StatusConflict)
	case errors.Is(err, usecase.ErrRegisterNotOpen):
		return pkg.NewDomainErrorSimple("REGISTER_NOT_FOUND_OR_CLOSED", "Register session not found or already closed", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
