package routes

import (
	"github.com/copdilan8-rgb/lacopita/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPedidos = "/pedidos"
	PathDrafts  = "/drafts"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, draftHandler *handlers.DraftHandler) {
	pedidos := rg.Group(PathPedidos)
	{
		pedidos.POST("", orderHandler.Confirm)
		pedidos.GET("", orderHandler.List)
		pedidos.PATCH("/:id/entregar", orderHandler.Deliver)
		pedidos.PATCH("/:id/pagar", orderHandler.Pay)
		pedidos.DELETE("/:id", orderHandler.Delete)
	}

	drafts := rg.Group(PathDrafts)
	{
		drafts.PUT("/:client_id", draftHandler.Save)
		drafts.GET("/:client_id", draftHandler.Get)
		drafts.DELETE("/:client_id", draftHandler.Delete)
	}
}
