package validation

import "testing"

func validRequest() SubmitOrderRequest {
	return SubmitOrderRequest{
		Customer: CustomerInput{Name: "An", Phone: "0912345678"},
		Items: []ItemInput{
			{Name: "Dép A", Quantity: 2, Price: 100000},
		},
		Pricing: PricingInput{ShippingFee: 20000},
	}
}

func TestSubmitOrderRequest_Valid(t *testing.T) {
	v := New()
	req := validRequest()
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestPhone_Formats(t *testing.T) {
	v := New()
	cases := []struct {
		phone string
		ok    bool
	}{
		{"0912345678", true},
		{"+84912345678", true},
		{"12345", false},
		{"0912", false},
		{"+1912345678", false},
	}
	for _, tc := range cases {
		req := validRequest()
		req.Customer.Phone = tc.phone
		err := v.Struct(req)
		if tc.ok && err != nil {
			t.Errorf("phone %q should pass, got %v", tc.phone, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("phone %q should fail", tc.phone)
		}
	}
}

func TestRejects_EmptyItems(t *testing.T) {
	v := New()
	req := validRequest()
	req.Items = nil
	if err := v.Struct(req); err == nil {
		t.Fatal("expected error for empty items")
	}
}

func TestRejects_BadItemValues(t *testing.T) {
	v := New()

	req := validRequest()
	req.Items[0].Quantity = 0
	if err := v.Struct(req); err == nil {
		t.Fatal("expected error for quantity 0")
	}

	req = validRequest()
	req.Items[0].Price = -1
	if err := v.Struct(req); err == nil {
		t.Fatal("expected error for negative price")
	}

	req = validRequest()
	req.Items[0].Name = "   "
	if err := v.Struct(req); err == nil {
		t.Fatal("expected error for blank item name")
	}
}

func TestRejects_MissingCustomer(t *testing.T) {
	v := New()

	req := validRequest()
	req.Customer.Name = ""
	if err := v.Struct(req); err == nil {
		t.Fatal("expected error for missing name")
	}

	req = validRequest()
	req.Customer.Phone = ""
	if err := v.Struct(req); err == nil {
		t.Fatal("expected error for missing phone")
	}
}

func TestOptionalFields(t *testing.T) {
	v := New()

	req := validRequest()
	req.Customer.Email = "not-an-email"
	if err := v.Struct(req); err == nil {
		t.Fatal("expected error for malformed email")
	}

	req = validRequest()
	req.Customer.Email = "an@example.com"
	req.Items[0].ImageURL = "https://cdn.example.com/dep-a.jpg"
	if err := v.Struct(req); err != nil {
		t.Fatalf("valid optional fields rejected: %v", err)
	}

	req = validRequest()
	req.Items[0].ImageURL = "::not a url::"
	if err := v.Struct(req); err == nil {
		t.Fatal("expected error for malformed image url")
	}
}
