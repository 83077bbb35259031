package domain

type PaymentMethod string

const (
	PaymentMethodRazorpay PaymentMethod = "razorpay"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodUPI      PaymentMethod = "upi"
	PaymentMethodCOD      PaymentMethod = "cod"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodRazorpay, PaymentMethodCard, PaymentMethodUPI, PaymentMethodCOD:
		return true
	}
	return false
}

// CheckoutForm carries everything the shopper types during checkout. Card
// sub-fields are mandatory only when the payment method is "card"; shipping
// fields are always mandatory before leaving the shipping step.
type CheckoutForm struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Phone     string `json:"phone"`

	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CardNumber    string        `json:"cardNumber,omitempty"`
	ExpiryDate    string        `json:"expiryDate,omitempty"`
	CVV           string        `json:"cvv,omitempty"`
	NameOnCard    string        `json:"nameOnCard,omitempty"`

	SameAsShipping bool   `json:"sameAsShipping"`
	BillingAddress string `json:"billingAddress,omitempty"`
	BillingCity    string `json:"billingCity,omitempty"`
	BillingState   string `json:"billingState,omitempty"`
	BillingZipCode string `json:"billingZipCode,omitempty"`
}

// ValidateShipping returns field-level errors for the shipping step. An empty
// map means the form may advance to payment.
func (f *CheckoutForm) ValidateShipping() map[string]string {
	errs := make(map[string]string)
	if f.Email == "" {
		errs["email"] = "Email is required"
	}
	if f.FirstName == "" {
		errs["firstName"] = "First name is required"
	}
	if f.LastName == "" {
		errs["lastName"] = "Last name is required"
	}
	if f.Address == "" {
		errs["address"] = "Address is required"
	}
	if f.City == "" {
		errs["city"] = "City is required"
	}
	if f.State == "" {
		errs["state"] = "State is required"
	}
	if f.ZipCode == "" {
		errs["zipCode"] = "ZIP code is required"
	}
	if f.Phone == "" {
		errs["phone"] = "Phone number is required"
	}
	return errs
}

// ValidatePayment returns field-level errors for the payment step. Only the
// card method has mandatory sub-fields.
func (f *CheckoutForm) ValidatePayment() map[string]string {
	errs := make(map[string]string)
	if !f.PaymentMethod.Valid() {
		errs["paymentMethod"] = "Payment method is required"
		return errs
	}
	if f.PaymentMethod == PaymentMethodCard {
		if f.CardNumber == "" {
			errs["cardNumber"] = "Card number is required"
		}
		if f.ExpiryDate == "" {
			errs["expiryDate"] = "Expiry date is required"
		}
		if f.CVV == "" {
			errs["cvv"] = "CVV is required"
		}
		if f.NameOnCard == "" {
			errs["nameOnCard"] = "Name on card is required"
		}
	}
	return errs
}
