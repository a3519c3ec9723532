package handlers

import (
	"net/http"
	"strings"

	request "github.com/copdilan8-rgb/lacopita/internal/adapter/http/dto/request"
	"github.com/copdilan8-rgb/lacopita/internal/usecase/interfaces"
	"github.com/copdilan8-rgb/lacopita/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)
	errInvalidClientID     = pkg.NewDomainErrorSimple("INVALID_CLIENT_ID", "Invalid client id", http.StatusBadRequest)
	errDraftNotFound       = pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "No draft stored for this client", http.StatusNotFound)
)

// DraftHandler handles the transient per-device draft CRUD. Drafts carry no
// business rules, so the handler talks to the store directly.

type DraftHandler struct {
	store interfaces.IDraftStore
}

func NewDraftHandler(store interfaces.IDraftStore) *DraftHandler {
	return &DraftHandler{store: store}
}

func (h *DraftHandler) Save(c *gin.Context) {
	clientID := strings.TrimSpace(c.Param("client_id"))
	if clientID == "" {
		c.JSON(errInvalidClientID.HTTPStatus, errInvalidClientID.ToHTTPError())
		return
	}

	var payload request.SaveDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	h.store.Put(clientID, payload.ToDraft())
	c.Status(http.StatusNoContent)
}

func (h *DraftHandler) Get(c *gin.Context) {
	clientID := strings.TrimSpace(c.Param("client_id"))
	if clientID == "" {
		c.JSON(errInvalidClientID.HTTPStatus, errInvalidClientID.ToHTTPError())
		return
	}

	draft, ok := h.store.Get(clientID)
	if !ok {
		c.JSON(errDraftNotFound.HTTPStatus, errDraftNotFound.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, draft)
}

func (h *DraftHandler) Delete(c *gin.Context) {
	clientID := strings.TrimSpace(c.Param("client_id"))
	if clientID == "" {
		c.JSON(errInvalidClientID.HTTPStatus, errInvalidClientID.ToHTTPError())
		return
	}

	h.store.Delete(clientID)
	c.Status(http.StatusNoContent)
}
