package orders

// Recalculate derives the authoritative pricing block from line items plus the
// client-chosen shipping fee and discount. Whatever subtotal/total the client
// submitted is discarded; this is the only place money totals come from.
func Recalculate(items []Item, shippingFee, discount float64) Pricing {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}
	return Pricing{
		Subtotal:    subtotal,
		ShippingFee: shippingFee,
		Discount:    discount,
		Total:       subtotal + shippingFee - discount,
		Currency:    DefaultCurrency,
	}
}
