package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"go.uber.org/zap"

	"github.com/depxinh/storefront-api/internal/aws"
	"github.com/depxinh/storefront-api/internal/config"
	"github.com/depxinh/storefront-api/internal/handlers"
	"github.com/depxinh/storefront-api/internal/logging"
	"github.com/depxinh/storefront-api/internal/metrics"
	"github.com/depxinh/storefront-api/internal/ratelimit"
	"github.com/depxinh/storefront-api/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	clients, err := aws.NewAWSClients(context.Background())
	if err != nil {
		logger.Fatal("failed to init aws clients", zap.Error(err))
	}

	var publisher *aws.Publisher
	if cfg.OrdersQueueURL != "" {
		publisher = aws.NewPublisher(clients.SQS, cfg.OrdersQueueURL)
	}

	hc := handlers.HandlerConfig{
		Cfg:       cfg,
		Logger:    logger,
		Dynamo:    clients.DynamoDB,
		Publisher: publisher,
		Metrics:   metrics.NewEmitter(clients.CloudWatch, "StorefrontAPI", logger),
		Limiter:   ratelimit.NewLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window),
		Sessions:  session.NewManager(cfg.Admin.SessionSecret, cfg.Admin.SessionTTL),
	}

	r := handlers.SetupRouter(hc)

	// RUN_LOCAL=true runs a plain HTTP server for development.
	if os.Getenv("RUN_LOCAL") == "true" {
		addr := ":" + cfg.Port
		logger.Info("running local server", zap.String("addr", addr))
		if err := r.Run(addr); err != nil {
			logger.Fatal("failed to run local server", zap.Error(err))
		}
		return
	}

	adapter := ginadapter.New(r)
	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
