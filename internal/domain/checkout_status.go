package domain

type CheckoutStatus string

const (
	CheckoutStatusShippingInfo CheckoutStatus = "SHIPPING_INFO"
	CheckoutStatusPayment      CheckoutStatus = "PAYMENT"
	CheckoutStatusPaymentError CheckoutStatus = "PAYMENT_ERROR"
	CheckoutStatusConfirmed    CheckoutStatus = "CONFIRMED"
)

func (s CheckoutStatus) IsTerminal() bool {
	return s == CheckoutStatusConfirmed
}

// String representation (for logging)
func (s CheckoutStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether the checkout flow allows moving from one
// status to another. PAYMENT_ERROR is not terminal: the shopper may retry
// payment or step back to shipping without losing entered data.
func CanTransitionTo(from, to CheckoutStatus) bool {
	switch from {
	case CheckoutStatusShippingInfo:
		return to == CheckoutStatusPayment
	case CheckoutStatusPayment:
		return to == CheckoutStatusConfirmed ||
			to == CheckoutStatusPaymentError ||
			to == CheckoutStatusShippingInfo
	case CheckoutStatusPaymentError:
		return to == CheckoutStatusPayment ||
			to == CheckoutStatusShippingInfo
	default:
		return false
	}
}
