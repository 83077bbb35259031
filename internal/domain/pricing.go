package domain

import "github.com/shopspring/decimal"

// Pricing holds the order pricing knobs. Values come from configuration, not
// from call sites.
type Pricing struct {
	FreeShippingThreshold int64
	FlatShippingFee       int64
	TaxRate               decimal.Decimal
}

// PriceSummary is derived from cart contents and must be recomputed whenever
// the cart changes; it is never stored independently of the cart it describes.
type PriceSummary struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// Summarize computes the order totals for a subtotal in whole currency units.
// Shipping is free strictly above the threshold. Tax rounds half away from
// zero, matching the storefront's displayed figures.
func (p Pricing) Summarize(subtotal int64) PriceSummary {
	var shipping int64
	if subtotal <= p.FreeShippingThreshold {
		shipping = p.FlatShippingFee
	}
	tax := decimal.NewFromInt(subtotal).Mul(p.TaxRate).Round(0).IntPart()
	return PriceSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
