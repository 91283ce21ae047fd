package stats

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/depxinh/storefront-api/internal/orders"
)

// Summary is the sales overview shown on the admin dashboard.
type Summary struct {
	TotalOrders  int            `json:"totalOrders"`
	TotalRevenue float64        `json:"totalRevenue"`
	ByStatus     map[string]int `json:"byStatus"`
	Days         []DayBucket    `json:"days"`
}

// DayBucket aggregates one calendar day (UTC).
type DayBucket struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// Lister is the slice of the orders store the service needs.
type Lister interface {
	List(ctx context.Context, q orders.ListQuery) ([]orders.Order, *orders.Cursor, error)
	ScanAll(ctx context.Context) ([]orders.Order, error)
}

// Service computes sales summaries.
type Service struct {
	store  Lister
	logger *zap.Logger
}

func NewService(store Lister, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Summarize aggregates orders created in [start, end] (epoch millis, 0 for
// unbounded). It walks the indexed listing first; if that query fails (for
// example the index is missing) it falls back to an unindexed full fetch
// filtered in-process. The fallback is deliberate resilience for this one
// read-only view and is not a pattern the write paths share.
func (s *Service) Summarize(ctx context.Context, start, end int64) (*Summary, error) {
	collected, err := s.listIndexed(ctx, start, end)
	if err != nil {
		s.logger.Warn("indexed stats query failed, falling back to scan", zap.Error(err))
		all, scanErr := s.store.ScanAll(ctx)
		if scanErr != nil {
			return nil, scanErr
		}
		collected = collected[:0]
		for _, o := range all {
			if start > 0 && o.CreatedMs < start {
				continue
			}
			if end > 0 && o.CreatedMs > end {
				continue
			}
			collected = append(collected, o)
		}
	}
	return summarize(collected), nil
}

func (s *Service) listIndexed(ctx context.Context, start, end int64) ([]orders.Order, error) {
	var collected []orders.Order
	var cursor *orders.Cursor
	for {
		page, next, err := s.store.List(ctx, orders.ListQuery{
			Status:          "all",
			IncludeArchived: true,
			Start:           start,
			End:             end,
			Limit:           100,
			Cursor:          cursor,
		})
		if err != nil {
			return nil, err
		}
		collected = append(collected, page...)
		if next == nil {
			return collected, nil
		}
		cursor = next
	}
}

func summarize(all []orders.Order) *Summary {
	sum := &Summary{ByStatus: map[string]int{}}
	days := map[string]*DayBucket{}

	for _, o := range all {
		sum.TotalOrders++
		sum.ByStatus[o.Fulfillment.Status]++
		if o.Fulfillment.Status == orders.StatusCanceled {
			continue // canceled orders carry no revenue
		}
		sum.TotalRevenue += o.Pricing.Total

		day := time.UnixMilli(o.CreatedMs).UTC().Format("2006-01-02")
		b, ok := days[day]
		if !ok {
			b = &DayBucket{Date: day}
			days[day] = b
		}
		b.Orders++
		b.Revenue += o.Pricing.Total
	}

	for _, b := range days {
		sum.Days = append(sum.Days, *b)
	}
	sort.Slice(sum.Days, func(i, j int) bool { return sum.Days[i].Date < sum.Days[j].Date })
	return sum
}
