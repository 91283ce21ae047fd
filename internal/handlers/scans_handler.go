package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/depxinh/storefront-api/internal/scans"
	"github.com/depxinh/storefront-api/internal/validation"
)

type saveScanRequest struct {
	Raw string `json:"raw"`
}

// RegisterScanRoutes registers the QR scan ingestion endpoint.
func RegisterScanRoutes(r *gin.Engine, hc HandlerConfig) {
	store := scans.NewStore(hc.Dynamo, hc.Cfg.Tables.Scans)

	r.POST("/save-scan", func(c *gin.Context) {
		var req saveScanRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Raw == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": validation.MsgInvalid})
			return
		}

		id, err := store.Create(c.Request.Context(), req.Raw)
		if err != nil {
			hc.Logger.Error("scan save failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": msgServerError})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
	})
}
