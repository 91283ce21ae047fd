package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/depxinh/storefront-api/internal/catalog"
)

// RegisterCatalogRoutes registers the public storefront reads and the
// protected catalog management endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hc HandlerConfig) {
	products := catalog.NewProductStore(hc.Dynamo, hc.Cfg.Tables.Products)
	feedbacks := catalog.NewFeedbackStore(hc.Dynamo, hc.Cfg.Tables.Feedbacks)
	images := catalog.NewImageStore(hc.Dynamo, hc.Cfg.Tables.Images)

	// Public reads. The storefront only ever sees active products and
	// active feedback entries.
	r.GET("/products", func(c *gin.Context) {
		all, err := products.List(c.Request.Context())
		if err != nil {
			hc.Logger.Error("product list failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": msgServerError})
			return
		}
		params := productViewParams(c)
		params.Status = catalog.ProductStatusActive
		writeProductView(c, params.Apply(all))
	})

	r.GET("/feedbacks", func(c *gin.Context) {
		all, err := feedbacks.List(c.Request.Context())
		if err != nil {
			hc.Logger.Error("feedback list failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": msgServerError})
			return
		}
		active := make([]catalog.Feedback, 0, len(all))
		for _, f := range all {
			if f.Active {
				active = append(active, f)
			}
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "items": active})
	})

	r.GET("/images", func(c *gin.Context) {
		all, err := images.List(c.Request.Context())
		if err != nil {
			hc.Logger.Error("image list failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": msgServerError})
			return
		}
		if all == nil {
			all = []catalog.Image{}
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "items": all})
	})

	g := r.Group("/admin", requireAdmin(hc))

	g.GET("/products", func(c *gin.Context) {
		all, err := products.List(c.Request.Context())
		if err != nil {
			hc.Logger.Error("product list failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": msgServerError})
			return
		}
		writeProductView(c, productViewParams(c).Apply(all))
	})

	g.POST("/products", func(c *gin.Context) {
		var p catalog.Product
		if err := c.ShouldBindJSON(&p); err != nil || p.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "name is required"})
			return
		}
		saveAndRespond(c, hc, func() (string, error) { return products.Save(c.Request.Context(), p) })
	})

	g.PUT("/products/:id", func(c *gin.Context) {
		var p catalog.Product
		if err := c.ShouldBindJSON(&p); err != nil || p.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "name is required"})
			return
		}
		p.ID = c.Param("id")
		existing, err := products.Get(c.Request.Context(), p.ID)
		if err != nil {
			hc.Logger.Error("product get failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": msgServerError})
			return
		}
		if existing == nil {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": "product not found"})
			return
		}
		p.CreatedAt = existing.CreatedAt
		saveAndRespond(c, hc, func() (string, error) { return products.Save(c.Request.Context(), p) })
	})

	g.DELETE("/products/:id", func(c *gin.Context) {
		deleteAndRespond(c, hc, func() error { return products.Delete(c.Request.Context(), c.Param("id")) })
	})

	g.POST("/feedbacks", func(c *gin.Context) {
		var f catalog.Feedback
		if err := c.ShouldBindJSON(&f); err != nil || f.URL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "url is required"})
			return
		}
		saveAndRespond(c, hc, func() (string, error) { return feedbacks.Save(c.Request.Context(), f) })
	})

	g.GET("/feedbacks", func(c *gin.Context) {
		all, err := feedbacks.List(c.Request.Context())
		if err != nil {
			hc.Logger.Error("feedback list failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": msgServerError})
			return
		}
		if all == nil {
			all = []catalog.Feedback{}
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "items": all})
	})

	g.PUT("/feedbacks/:id", func(c *gin.Context) {
		var f catalog.Feedback
		if err := c.ShouldBindJSON(&f); err != nil || f.URL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "url is required"})
			return
		}
		f.ID = c.Param("id")
		existing, err := feedbacks.Get(c.Request.Context(), f.ID)
		if err != nil {
			hc.Logger.Error("feedback get failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": msgServerError})
			return
		}
		if existing == nil {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": "feedback not found"})
			return
		}
		f.CreatedAt = existing.CreatedAt
		saveAndRespond(c, hc, func() (string, error) { return feedbacks.Save(c.Request.Context(), f) })
	})

	g.DELETE("/feedbacks/:id", func(c *gin.Context) {
		deleteAndRespond(c, hc, func() error { return feedbacks.Delete(c.Request.Context(), c.Param("id")) })
	})

	g.POST("/images", func(c *gin.Context) {
		var img catalog.Image
		if err := c.ShouldBindJSON(&img); err != nil || img.URL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "url is required"})
			return
		}
		saveAndRespond(c, hc, func() (string, error) { return images.Save(c.Request.Context(), img) })
	})

	g.PUT("/images/:id", func(c *gin.Context) {
		var img catalog.Image
		if err := c.ShouldBindJSON(&img); err != nil || img.URL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "url is required"})
			return
		}
		img.ID = c.Param("id")
		existing, err := images.Get(c.Request.Context(), img.ID)
		if err != nil {
			hc.Logger.Error("image get failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": msgServerError})
			return
		}
		if existing == nil {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": "image not found"})
			return
		}
		img.CreatedAt = existing.CreatedAt
		saveAndRespond(c, hc, func() (string, error) { return images.Save(c.Request.Context(), img) })
	})

	g.DELETE("/images/:id", func(c *gin.Context) {
		deleteAndRespond(c, hc, func() error { return images.Delete(c.Request.Context(), c.Param("id")) })
	})
}

func productViewParams(c *gin.Context) catalog.ViewParams {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))
	return catalog.ViewParams{
		Search:      c.Query("search"),
		Category:    c.Query("category"),
		SubCategory: c.Query("subCategory"),
		Status:      c.Query("status"),
		SortKey:     c.Query("sort"),
		Desc:        parseBoolParam(c.Query("desc")),
		Page:        page,
		PageSize:    pageSize,
	}
}

func writeProductView(c *gin.Context, res catalog.ViewResult) {
	if res.Items == nil {
		res.Items = []catalog.Product{}
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":             true,
		"items":          res.Items,
		"total":          res.Total,
		"page":           res.Page,
		"totalPages":     res.TotalPages,
		"categoryCounts": res.CategoryCounts,
	})
}

func saveAndRespond(c *gin.Context, hc HandlerConfig, save func() (string, error)) {
	id, err := save()
	if err != nil {
		hc.Logger.Error("catalog save failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": msgServerError})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}

func deleteAndRespond(c *gin.Context, hc HandlerConfig, del func() error) {
	if err := del(); err != nil {
		hc.Logger.Error("catalog delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": msgServerError})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
