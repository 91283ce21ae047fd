package catalog

import "time"

// Product statuses as shown in the storefront.
const (
	ProductStatusActive  = "active"
	ProductStatusHidden  = "hidden"
	ProductStatusSoldOut = "soldout"
)

// Product is a catalog entry.
type Product struct {
	ID          string    `dynamodbav:"product_id" json:"id"` // PK
	Name        string    `dynamodbav:"name" json:"name"`
	Description string    `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Price       float64   `dynamodbav:"price" json:"price"`
	Category    string    `dynamodbav:"category" json:"category"`
	SubCategory string    `dynamodbav:"sub_category" json:"subCategory"`
	ImageURL    string    `dynamodbav:"image_url,omitempty" json:"imageUrl,omitempty"`
	Status      string    `dynamodbav:"status" json:"status"`
	CreatedAt   time.Time `dynamodbav:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `dynamodbav:"updated_at" json:"updatedAt"`
}

// Feedback is one customer feedback gallery entry.
type Feedback struct {
	ID        string    `dynamodbav:"feedback_id" json:"id"` // PK
	URL       string    `dynamodbav:"url" json:"url"`
	Caption   string    `dynamodbav:"caption,omitempty" json:"caption,omitempty"`
	Active    bool      `dynamodbav:"active" json:"active"`
	CreatedAt time.Time `dynamodbav:"created_at" json:"createdAt"`
	UpdatedAt time.Time `dynamodbav:"updated_at" json:"updatedAt"`
}

// Image is a hosted image reference. Ref is an informal string pointer to the
// owning entity (e.g. a feedback id); nothing enforces it.
type Image struct {
	ID        string    `dynamodbav:"image_id" json:"id"` // PK
	URL       string    `dynamodbav:"url" json:"url"`
	Category  string    `dynamodbav:"category,omitempty" json:"category,omitempty"`
	Ref       string    `dynamodbav:"ref,omitempty" json:"ref,omitempty"`
	CreatedAt time.Time `dynamodbav:"created_at" json:"createdAt"`
	UpdatedAt time.Time `dynamodbav:"updated_at" json:"updatedAt"`
}
