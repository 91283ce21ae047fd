package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the full route table.
func SetupRouter(hc HandlerConfig) *gin.Engine {
	if hc.Cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterOrdersRoutes(r, hc)
	RegisterAdminRoutes(r, hc)
	RegisterCatalogRoutes(r, hc)
	RegisterScanRoutes(r, hc)
	return r
}
