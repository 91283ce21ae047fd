package orders

// Fulfillment statuses. Stored as free strings; the store does not reject
// unknown values or gate transitions, it only records them in meta.history.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPacked    = "packed"
	StatusShipped   = "shipped"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
)

// Defaults applied when the submission leaves the blocks empty.
const (
	DefaultFulfillmentMethod = "delivery"
	DefaultPaymentMethod     = "cod"
	DefaultPaymentStatus     = "unpaid"
	DefaultCurrency          = "VND"
)

// KnownStatus reports whether s is one of the meaningful status values.
func KnownStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPacked, StatusShipped, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}
