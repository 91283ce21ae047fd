package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/depxinh/storefront-api/internal/admins"
	"github.com/depxinh/storefront-api/internal/orders"
	"github.com/depxinh/storefront-api/internal/session"
	"github.com/depxinh/storefront-api/internal/stats"
	"github.com/depxinh/storefront-api/internal/validation"
)

// requireAdmin rejects requests without a valid admin session cookie. API
// clients get a JSON 401, never a redirect.
func requireAdmin(hc HandlerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || !hc.Sessions.Verify(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "unauthorized"})
			return
		}
		c.Next()
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type archiveRequest struct {
	Archived *bool `json:"archived"`
}

// RegisterAdminRoutes registers login/logout and the protected order
// management endpoints.
func RegisterAdminRoutes(r *gin.Engine, hc HandlerConfig) {
	adminStore := admins.NewStore(hc.Dynamo, hc.Cfg.Tables.Admins)
	orderStore := orders.NewStore(hc.Dynamo, hc.Cfg.Tables.Orders)
	statsSvc := stats.NewService(orderStore, hc.Logger)

	r.POST("/admin-login", func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Sai mật khẩu"})
			return
		}

		hash := hc.Cfg.Admin.PasswordHash
		rec, err := adminStore.Get(c.Request.Context(), admins.DefaultUsername)
		if err != nil {
			hc.Logger.Warn("admin lookup failed, using configured hash", zap.Error(err))
		} else if rec != nil {
			hash = rec.PasswordHash
		}

		if hash == "" || !admins.CheckPassword(hash, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Sai mật khẩu"})
			return
		}

		maxAge := int(hc.Sessions.TTL().Seconds())
		c.SetCookie(session.CookieName, hc.Sessions.Issue(), maxAge, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	r.POST("/admin-logout", func(c *gin.Context) {
		c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	g := r.Group("/admin", requireAdmin(hc))

	g.POST("/change-password", func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": validation.MsgInvalid})
			return
		}

		hash, err := admins.HashPassword(req.Password)
		if err != nil {
			hc.Logger.Error("password hash failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": msgServerError})
			return
		}
		rec := admins.Record{Username: admins.DefaultUsername, PasswordHash: hash}
		if err := adminStore.Put(c.Request.Context(), rec); err != nil {
			hc.Logger.Error("password update failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": msgServerError})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	g.GET("/orders/list", func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		q := orders.ListQuery{
			Status:          c.Query("status"),
			IncludeArchived: parseBoolParam(c.Query("archived")),
			Start:           parseTimeBound(c.Query("start")),
			End:             parseTimeBound(c.Query("end")),
			Limit:           limit,
			Cursor:          orders.DecodeCursor(c.Query("cursor")),
		}

		items, next, err := orderStore.List(c.Request.Context(), q)
		if err != nil {
			hc.Logger.Error("order list failed", zap.String("aws_code", awsErrorCode(err)), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": msgServerError})
			return
		}
		if items == nil {
			items = []orders.Order{}
		}

		resp := gin.H{"ok": true, "items": items, "nextCursor": nil}
		if next != nil {
			resp["nextCursor"] = orders.EncodeCursor(*next)
		}
		c.JSON(http.StatusOK, resp)
	})

	g.PATCH("/orders/:id/status", func(c *gin.Context) {
		var req statusRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": validation.MsgInvalid})
			return
		}
		// Statuses are stored free-form; unknown values pass through but get logged.
		if !orders.KnownStatus(req.Status) {
			hc.Logger.Warn("unknown fulfillment status", zap.String("status", req.Status), zap.String("order_id", c.Param("id")))
		}

		err := orderStore.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
		if errors.Is(err, orders.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": "order not found"})
			return
		}
		if err != nil {
			hc.Logger.Error("status update failed", zap.String("order_id", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": msgServerError})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	g.POST("/orders/:id/archive", func(c *gin.Context) {
		var req archiveRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Archived == nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": validation.MsgInvalid})
			return
		}

		err := orderStore.SetArchived(c.Request.Context(), c.Param("id"), *req.Archived)
		if errors.Is(err, orders.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": "order not found"})
			return
		}
		if err != nil {
			hc.Logger.Error("archive failed", zap.String("order_id", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": msgServerError})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	g.GET("/stats", func(c *gin.Context) {
		sum, err := statsSvc.Summarize(c.Request.Context(), parseTimeBound(c.Query("start")), parseTimeBound(c.Query("end")))
		if err != nil {
			hc.Logger.Error("stats failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": msgServerError})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "stats": sum})
	})
}
