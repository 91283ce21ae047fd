package orders

import "time"

// Customer is the buyer block of an order document.
type Customer struct {
	Name    string `dynamodbav:"name" json:"name"`
	Phone   string `dynamodbav:"phone" json:"phone"`
	Email   string `dynamodbav:"email,omitempty" json:"email,omitempty"`
	Address string `dynamodbav:"address,omitempty" json:"address,omitempty"`
}

// Item is one line of an order.
type Item struct {
	Name        string   `dynamodbav:"name" json:"name"`
	Category    string   `dynamodbav:"category" json:"category"`
	SubCategory string   `dynamodbav:"sub_category" json:"subCategory"`
	ImageURL    string   `dynamodbav:"image_url,omitempty" json:"imageUrl,omitempty"`
	Size        *float64 `dynamodbav:"size,omitempty" json:"size,omitempty"`
	Quantity    int      `dynamodbav:"quantity" json:"quantity"`
	Price       float64  `dynamodbav:"price" json:"price"`
}

// Pricing is always recomputed server-side; client-submitted totals are never stored.
type Pricing struct {
	Subtotal    float64 `dynamodbav:"subtotal" json:"subtotal"`
	ShippingFee float64 `dynamodbav:"shipping_fee" json:"shippingFee"`
	Discount    float64 `dynamodbav:"discount" json:"discount"`
	Total       float64 `dynamodbav:"total" json:"total"`
	Currency    string  `dynamodbav:"currency" json:"currency"`
}

type Fulfillment struct {
	Method string `dynamodbav:"method" json:"method"`
	Status string `dynamodbav:"status" json:"status"`
}

type Payment struct {
	Method        string `dynamodbav:"method" json:"method"`
	Status        string `dynamodbav:"status" json:"status"`
	TransactionID string `dynamodbav:"transaction_id,omitempty" json:"transactionId,omitempty"`
}

// HistoryEntry records one fulfillment status change.
type HistoryEntry struct {
	At   time.Time `dynamodbav:"at" json:"at"`
	From string    `dynamodbav:"from,omitempty" json:"from,omitempty"`
	To   string    `dynamodbav:"to" json:"to"`
}

// Meta is the free-form bag attached to an order.
type Meta struct {
	Source      string         `dynamodbav:"source,omitempty" json:"source,omitempty"`
	ScanID      string         `dynamodbav:"scan_id,omitempty" json:"scanId,omitempty"`
	VoucherCode string         `dynamodbav:"voucher_code,omitempty" json:"voucherCode,omitempty"`
	Note        string         `dynamodbav:"note,omitempty" json:"note,omitempty"`
	QRVerified  *bool          `dynamodbav:"qr_verified,omitempty" json:"qrVerified,omitempty"`
	History     []HistoryEntry `dynamodbav:"history,omitempty" json:"history,omitempty"`
}

// Order is the document stored in the orders table.
//
// The table key is order_id. Listing goes through the gsi_created index whose
// partition key gsi_pk holds the constant "ORDER" and whose sort key
// created_sort is "%013d#<order_id>" of the creation epoch-millis, so a
// descending query yields newest-first with identifier tie-break.
type Order struct {
	ID          string      `dynamodbav:"order_id" json:"id"` // PK
	GSIPK       string      `dynamodbav:"gsi_pk" json:"-"`
	CreatedSort string      `dynamodbav:"created_sort" json:"-"`
	CreatedMs   int64       `dynamodbav:"created_ms" json:"-"`
	Customer    Customer    `dynamodbav:"customer" json:"customer"`
	Items       []Item      `dynamodbav:"items" json:"items"`
	Pricing     Pricing     `dynamodbav:"pricing" json:"pricing"`
	Fulfillment Fulfillment `dynamodbav:"fulfillment" json:"fulfillment"`
	Payment     Payment     `dynamodbav:"payment" json:"payment"`
	Meta        Meta        `dynamodbav:"meta" json:"meta"`
	Archived    bool        `dynamodbav:"archived" json:"archived"`
	CreatedAt   time.Time   `dynamodbav:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `dynamodbav:"updated_at" json:"updatedAt"`
}
