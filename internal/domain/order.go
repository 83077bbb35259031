package domain

import "time"

type Customer struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// PaymentRecord describes how an order was paid. Verified is true only when a
// gateway signature check passed server-side; simulated methods (card, UPI,
// cash on delivery) carry Simulated=true instead and must not be treated as
// verified payments by anything downstream.
type PaymentRecord struct {
	Method            PaymentMethod `json:"method"`
	Amount            int64         `json:"amount"`
	Verified          bool          `json:"verified"`
	Simulated         bool          `json:"simulated,omitempty"`
	RazorpayOrderID   string        `json:"razorpayOrderId,omitempty"`
	RazorpayPaymentID string        `json:"razorpayPaymentId,omitempty"`
	RazorpaySignature string        `json:"razorpaySignature,omitempty"`
}

// Order is immutable once built. It exists only after payment verification
// succeeded or the simulated processing path completed.
type Order struct {
	ID        string          `json:"orderId"`
	Items     []CartItem      `json:"items"`
	Customer  Customer        `json:"customer"`
	Shipping  ShippingAddress `json:"shipping"`
	Payment   PaymentRecord   `json:"payment"`
	Summary   PriceSummary    `json:"summary"`
	OrderDate time.Time       `json:"orderDate"`
}
