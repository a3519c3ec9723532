package routes

import (
	"github.com/copdilan8-rgb/lacopita/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCaja = "/caja"
)

func addRegisterRoutes(rg *gin.RouterGroup, registerHandler *handlers.RegisterHandler) {
	caja := rg.Group(PathCaja)
	{
		caja.POST("/abrir", registerHandler.Open)
		caja.POST("/cerrar", registerHandler.Close)
		caja.GET("/actual", registerHandler.GetCurrent)
		caja.GET("/estado", registerHandler.GetState)
		caja.GET("/pedidos-resumen", registerHandler.PendingSummary)
		caja.GET("/historial", registerHandler.History)
		caja.GET("/historial-detallado", registerHandler.HistoryDetailed)
	}
}
