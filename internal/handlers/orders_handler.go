package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/depxinh/storefront-api/internal/aws"
	"github.com/depxinh/storefront-api/internal/metrics"
	"github.com/depxinh/storefront-api/internal/orders"
	"github.com/depxinh/storefront-api/internal/qr"
	"github.com/depxinh/storefront-api/internal/validation"
)

// RegisterOrdersRoutes registers the public order submission endpoint.
func RegisterOrdersRoutes(r *gin.Engine, hc HandlerConfig) {
	v := validation.New()
	store := orders.NewStore(hc.Dynamo, hc.Cfg.Tables.Orders)

	r.POST("/orders", func(c *gin.Context) {
		ctx := c.Request.Context()

		// Check-then-act: the counter and the write are not transactional,
		// which is fine for a best-effort limiter.
		if !hc.Limiter.Allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "message": msgRateLimited})
			return
		}

		var req validation.SubmitOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote the 400
			hc.Metrics.Count(ctx, metrics.OrdersRejected, 1)
			return
		}

		order := buildOrder(req)
		order.Pricing = orders.Recalculate(order.Items, req.Pricing.ShippingFee, req.Pricing.Discount)

		if req.Meta.QR != nil {
			verified, err := qr.Verify(hc.Cfg.QRSalt, req.Meta.QR.Checksum, req.Meta.QR.Canonical)
			if err != nil {
				hc.Metrics.Count(ctx, metrics.OrdersRejected, 1)
				c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": msgBadChecksum})
				return
			}
			if verified {
				t := true
				order.Meta.QRVerified = &t
			}
		}

		id, err := store.Create(ctx, order)
		if err != nil {
			hc.Logger.Error("order create failed", zap.String("aws_code", awsErrorCode(err)), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": msgServerError})
			return
		}

		// Notification and metrics are best-effort; the order is already in.
		if hc.Publisher != nil {
			msg := aws.OrderCreatedMessage{
				OrderID:      id,
				CustomerName: order.Customer.Name,
				Total:        order.Pricing.Total,
				Source:       order.Meta.Source,
			}
			attrs := map[string]string{"order_id": id, "correlation_id": c.GetHeader("X-Request-Id")}
			if err := hc.Publisher.PublishOrderCreated(ctx, msg, attrs); err != nil {
				hc.Logger.Warn("order notification failed", zap.String("order_id", id), zap.Error(err))
			}
		}
		hc.Metrics.Count(ctx, metrics.OrdersAccepted, 1)

		c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
	})
}

// buildOrder maps a validated submission onto the stored document shape.
// Pricing is filled by the caller from Recalculate, never from the request.
func buildOrder(req validation.SubmitOrderRequest) orders.Order {
	items := make([]orders.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, orders.Item{
			Name:        it.Name,
			Category:    it.Category,
			SubCategory: it.SubCategory,
			ImageURL:    it.ImageURL,
			Size:        it.Size,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	return orders.Order{
		Customer: orders.Customer{
			Name:    req.Customer.Name,
			Phone:   req.Customer.Phone,
			Email:   req.Customer.Email,
			Address: req.Customer.Address,
		},
		Items: items,
		Fulfillment: orders.Fulfillment{
			Method: req.Fulfillment.Method,
		},
		Payment: orders.Payment{
			Method:        req.Payment.Method,
			TransactionID: req.Payment.TransactionID,
		},
		Meta: orders.Meta{
			Source:      req.Meta.Source,
			ScanID:      req.Meta.ScanID,
			VoucherCode: req.Meta.VoucherCode,
			Note:        req.Meta.Note,
		},
	}
}
