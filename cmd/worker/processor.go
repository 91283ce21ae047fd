package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/depxinh/storefront-api/internal/aws"
	"github.com/depxinh/storefront-api/internal/metrics"
	"github.com/depxinh/storefront-api/internal/orders"
)

// Processor consumes order-created notifications from the queue. Today it
// verifies the order landed and emits a counter; the notification fan-out
// (Zalo, email) hangs off this point.
type Processor struct {
	orderStore *orders.Store
	metrics    *metrics.Emitter
	logger     *zap.Logger
}

func NewProcessor(clients *aws.AWSClients, ordersTable string, em *metrics.Emitter, logger *zap.Logger) *Processor {
	return &Processor{
		orderStore: orders.NewStore(clients.DynamoDB, ordersTable),
		metrics:    em,
		logger:     logger,
	}
}

// Handle receives an SQS batch event and processes each message. Returning an
// error makes the runtime retry the batch; repeated failures land in the DLQ.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) error {
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			p.logger.Error("worker error", zap.Error(err))
			return err
		}
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, rec events.SQSMessage) error {
	var msg aws.OrderCreatedMessage
	if err := json.Unmarshal([]byte(rec.Body), &msg); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}

	order, err := p.orderStore.Get(ctx, msg.OrderID)
	if err != nil {
		return fmt.Errorf("fetch order: %w", err)
	}
	if order == nil {
		return fmt.Errorf("order not found: %s", msg.OrderID)
	}

	p.logger.Info("order notification",
		zap.String("order_id", order.ID),
		zap.String("customer", order.Customer.Name),
		zap.Float64("total", order.Pricing.Total),
		zap.String("source", order.Meta.Source))

	p.metrics.Count(ctx, metrics.NotificationsProcessed, 1)
	return nil
}
