package orders

import "testing"

func TestRecalculate_Subtotal(t *testing.T) {
	items := []Item{
		{Name: "Dép A", Quantity: 2, Price: 100000},
		{Name: "Dép B", Quantity: 1, Price: 150000},
	}
	p := Recalculate(items, 20000, 0)

	if p.Subtotal != 350000 {
		t.Fatalf("subtotal = %v, want 350000", p.Subtotal)
	}
	if p.Total != 370000 {
		t.Fatalf("total = %v, want 370000", p.Total)
	}
	if p.Currency != "VND" {
		t.Fatalf("currency = %q, want VND", p.Currency)
	}
}

func TestRecalculate_DiscountApplied(t *testing.T) {
	items := []Item{{Name: "Dép A", Quantity: 1, Price: 100000}}
	p := Recalculate(items, 30000, 50000)

	if p.Total != 80000 {
		t.Fatalf("total = %v, want 80000", p.Total)
	}
	if p.Total != p.Subtotal+p.ShippingFee-p.Discount {
		t.Fatalf("pricing identity violated: %+v", p)
	}
}

func TestRecalculate_EmptyItems(t *testing.T) {
	p := Recalculate(nil, 0, 0)
	if p.Subtotal != 0 || p.Total != 0 {
		t.Fatalf("expected zero pricing, got %+v", p)
	}
}
