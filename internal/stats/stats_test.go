package stats

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/depxinh/storefront-api/internal/orders"
)

// fakeLister serves canned orders; listErr forces the scan fallback.
type fakeLister struct {
	all     []orders.Order
	listErr error
}

func (f *fakeLister) List(ctx context.Context, q orders.ListQuery) ([]orders.Order, *orders.Cursor, error) {
	if f.listErr != nil {
		return nil, nil, f.listErr
	}
	var out []orders.Order
	for _, o := range f.all {
		if q.Start > 0 && o.CreatedMs < q.Start {
			continue
		}
		if q.End > 0 && o.CreatedMs > q.End {
			continue
		}
		out = append(out, o)
	}
	return out, nil, nil
}

func (f *fakeLister) ScanAll(ctx context.Context) ([]orders.Order, error) {
	return f.all, nil
}

func sampleOrders() []orders.Order {
	day1 := int64(1700000000000) // 2023-11-14 UTC
	day2 := day1 + 86400000
	return []orders.Order{
		{ID: "a", CreatedMs: day1, Pricing: orders.Pricing{Total: 220000}, Fulfillment: orders.Fulfillment{Status: orders.StatusCompleted}},
		{ID: "b", CreatedMs: day1 + 1000, Pricing: orders.Pricing{Total: 100000}, Fulfillment: orders.Fulfillment{Status: orders.StatusPending}},
		{ID: "c", CreatedMs: day2, Pricing: orders.Pricing{Total: 999999}, Fulfillment: orders.Fulfillment{Status: orders.StatusCanceled}},
	}
}

func TestSummarize_Totals(t *testing.T) {
	svc := NewService(&fakeLister{all: sampleOrders()}, zap.NewNop())

	sum, err := svc.Summarize(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if sum.TotalOrders != 3 {
		t.Fatalf("total orders = %d, want 3", sum.TotalOrders)
	}
	if sum.TotalRevenue != 320000 {
		t.Fatalf("revenue = %v, want 320000 (canceled excluded)", sum.TotalRevenue)
	}
	if sum.ByStatus[orders.StatusCanceled] != 1 || sum.ByStatus[orders.StatusPending] != 1 {
		t.Fatalf("status counts wrong: %+v", sum.ByStatus)
	}
	if len(sum.Days) != 1 {
		t.Fatalf("expected 1 revenue day, got %d", len(sum.Days))
	}
	if sum.Days[0].Date != "2023-11-14" || sum.Days[0].Orders != 2 {
		t.Fatalf("day bucket wrong: %+v", sum.Days[0])
	}
}

func TestSummarize_FallbackOnQueryError(t *testing.T) {
	f := &fakeLister{all: sampleOrders(), listErr: errors.New("index not found")}
	svc := NewService(f, zap.NewNop())

	day1 := int64(1700000000000)
	sum, err := svc.Summarize(context.Background(), day1, day1+2000)
	if err != nil {
		t.Fatalf("fallback should succeed: %v", err)
	}
	if sum.TotalOrders != 2 {
		t.Fatalf("fallback filtering wrong: %d orders, want 2", sum.TotalOrders)
	}
}
