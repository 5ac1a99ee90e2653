// Package pricing computes cart and order totals. All amounts are in
// minor currency units (int64); the tax rate is expressed in basis
// points so a 2% rate over integer money stays exact.
package pricing

type Config struct {
	TaxRateBP         int64  // basis points, 200 = 2%
	DeliveryFee       int64  // flat, minor units
	EstimatedDelivery string // display string, snapshotted onto orders
}

// Summary is the ephemeral pricing breakdown shown before checkout
// and frozen onto the order at checkout.
type Summary struct {
	Subtotal          int64  `json:"subtotal"`
	Tax               int64  `json:"tax"`
	DeliveryFee       int64  `json:"deliveryFee"`
	Total             int64  `json:"total"`
	EstimatedDelivery string `json:"estimatedDelivery"`
}

// LineTotal prices one cart line: (unit + Σ side deltas) × qty.
// Toppings contribute nothing; a priced topping would be passed as a
// side delta.
func LineTotal(unitPrice int64, sideDeltas []int64, qty int) int64 {
	unit := unitPrice
	for _, d := range sideDeltas {
		unit += d
	}
	return unit * int64(qty)
}

// UnitPrice is the per-unit price of a line including side deltas.
func UnitPrice(unitPrice int64, sideDeltas []int64) int64 {
	for _, d := range sideDeltas {
		unitPrice += d
	}
	return unitPrice
}

// Tax applies the configured rate to subtotal, rounding half up.
func (c Config) Tax(subtotal int64) int64 {
	return (subtotal*c.TaxRateBP + 5000) / 10000
}

// Summarize builds the full breakdown for a cart subtotal.
func (c Config) Summarize(subtotal int64) Summary {
	tax := c.Tax(subtotal)
	return Summary{
		Subtotal:          subtotal,
		Tax:               tax,
		DeliveryFee:       c.DeliveryFee,
		Total:             subtotal + tax + c.DeliveryFee,
		EstimatedDelivery: c.EstimatedDelivery,
	}
}
