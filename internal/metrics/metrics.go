package metrics

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"

	"github.com/depxinh/storefront-api/internal/aws"
)

// Metric names emitted by the service.
const (
	OrdersAccepted         = "OrdersAccepted"
	OrdersRejected         = "OrdersRejected"
	NotificationsProcessed = "NotificationsProcessed"
)

// Emitter publishes business counters to CloudWatch. Emission is best-effort:
// failures are logged and never surface to the request path.
type Emitter struct {
	client    aws.CloudWatchAPI
	namespace string
	logger    *zap.Logger
}

func NewEmitter(client aws.CloudWatchAPI, namespace string, logger *zap.Logger) *Emitter {
	return &Emitter{client: client, namespace: namespace, logger: logger}
}

// Count adds value to the named counter.
func (e *Emitter) Count(ctx context.Context, name string, value float64) {
	if e == nil || e.client == nil {
		return
	}
	unit := cwtypes.StandardUnitCount
	_, err := e.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: &e.namespace,
		MetricData: []cwtypes.MetricDatum{
			{MetricName: &name, Value: &value, Unit: unit},
		},
	})
	if err != nil && e.logger != nil {
		e.logger.Warn("metric emission failed", zap.String("metric", name), zap.Error(err))
	}
}
