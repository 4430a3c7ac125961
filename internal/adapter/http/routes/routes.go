package routes

import (
	_ "controle_pedidos/docs" // swagger docs
	"controle_pedidos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const basePath = "/v1"

// NewRouter builds the HTTP API around the order handler.
func NewRouter(orderHandler *handlers.OrderHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group(basePath)
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("path", c.Request.URL.Path).Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
