package validation

// CustomerInput is the buyer block of a submission.
type CustomerInput struct {
	Name    string `json:"name" validate:"required,notblank"`
	Phone   string `json:"phone" validate:"required,vnmobile"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
}

// ItemInput is one submitted line item.
type ItemInput struct {
	Name        string   `json:"name" validate:"required,notblank"`
	Category    string   `json:"category"`
	SubCategory string   `json:"subCategory"`
	ImageURL    string   `json:"imageUrl" validate:"omitempty,url"`
	Size        *float64 `json:"size"`
	Quantity    int      `json:"quantity" validate:"required,min=1"`
	Price       float64  `json:"price" validate:"min=0"`
}

// PricingInput carries the only two money fields the client may influence.
// Subtotal and Total are accepted in the payload but never trusted.
type PricingInput struct {
	Subtotal    float64 `json:"subtotal"`
	ShippingFee float64 `json:"shippingFee" validate:"min=0"`
	Discount    float64 `json:"discount" validate:"min=0"`
	Total       float64 `json:"total"`
}

type FulfillmentInput struct {
	Method string `json:"method"`
}

type PaymentInput struct {
	Method        string `json:"method"`
	TransactionID string `json:"transactionId"`
}

// QRInput is the optional scan integrity proof.
type QRInput struct {
	Checksum  string `json:"checksum"`
	Canonical string `json:"canonical"`
}

type MetaInput struct {
	Source      string   `json:"source"`
	ScanID      string   `json:"scanId"`
	VoucherCode string   `json:"voucherCode"`
	Note        string   `json:"note"`
	QR          *QRInput `json:"qr"`
}

// SubmitOrderRequest is the payload for POST /orders.
type SubmitOrderRequest struct {
	Customer    CustomerInput    `json:"customer" validate:"required"`
	Items       []ItemInput      `json:"items" validate:"required,min=1,dive"`
	Pricing     PricingInput     `json:"pricing"`
	Fulfillment FulfillmentInput `json:"fulfillment"`
	Payment     PaymentInput     `json:"payment"`
	Meta        MetaInput        `json:"meta"`
}
