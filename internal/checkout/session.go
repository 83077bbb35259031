package checkout

import (
	"time"

	"github.com/ram-fashion/storefront/internal/domain"
	"github.com/ram-fashion/storefront/internal/payment"
)

// Session is one shopper's in-progress checkout. A single logical actor
// drives each session; the store only guards its own map.
type Session struct {
	ID     string                `json:"sessionId"`
	Status domain.CheckoutStatus `json:"status"`

	Cart    domain.Cart         `json:"cart"`
	Form    domain.CheckoutForm `json:"form"`
	Summary domain.PriceSummary `json:"summary"`

	// FieldErrors holds validation errors for the step the shopper is on.
	// They are data, not faults: the session simply does not advance.
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`

	// PaymentError is the user-facing message while in PAYMENT_ERROR.
	PaymentError string `json:"paymentError,omitempty"`

	// GatewayOrder is set while a hosted gateway payment is pending. The
	// session stays in PAYMENT until the completion callback or a dismissal
	// arrives; no timeout is imposed here.
	GatewayOrder *payment.GatewayOrder `json:"gatewayOrder,omitempty"`

	// Order exists only after verification succeeded or the simulated
	// processing path completed.
	Order *domain.Order `json:"order,omitempty"`

	// CartCleared tells the caller to empty the shopper's cart. Set only on
	// confirmation, never on abort or failure.
	CartCleared bool `json:"cartCleared"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
