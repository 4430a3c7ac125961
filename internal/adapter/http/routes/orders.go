package routes

import (
	"controle_pedidos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
	PathSchema = "/schema"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/stream", orderHandler.StreamOrders)
		orders.PATCH("/:id/status", orderHandler.ChangeStatus)
		orders.DELETE("/:id", orderHandler.RemoveOrder)
	}

	rg.GET(PathSchema, orderHandler.GetSchema)
}
