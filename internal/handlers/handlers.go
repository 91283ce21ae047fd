package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"github.com/depxinh/storefront-api/internal/aws"
	"github.com/depxinh/storefront-api/internal/config"
	"github.com/depxinh/storefront-api/internal/metrics"
	"github.com/depxinh/storefront-api/internal/ratelimit"
	"github.com/depxinh/storefront-api/internal/session"
)

// User-facing messages. The storefront displays these verbatim.
const (
	msgRateLimited = "Thử lại sau (rate limit)"
	msgBadChecksum = "Invalid QR checksum"
	msgServerError = "Có lỗi xảy ra, vui lòng thử lại"
)

// HandlerConfig groups dependencies for all route groups.
type HandlerConfig struct {
	Cfg       *config.Config
	Logger    *zap.Logger
	Dynamo    aws.DynamoDBAPI
	Publisher *aws.Publisher // nil when no queue is configured
	Metrics   *metrics.Emitter
	Limiter   *ratelimit.Limiter
	Sessions  *session.Manager
}

// parseTimeBound turns a query value into epoch millis. Accepts raw
// millisecond numbers, RFC3339, or plain dates; anything else means
// "no bound".
func parseTimeBound(s string) int64 {
	if s == "" {
		return 0
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil && ms > 0 {
		return ms
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli()
		}
	}
	return 0
}

func parseBoolParam(s string) bool {
	return s == "1" || s == "true"
}

// awsErrorCode extracts the service error code for log fields, "" for
// non-AWS errors.
func awsErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
