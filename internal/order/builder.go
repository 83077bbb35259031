package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ram-fashion/storefront/internal/domain"
)

var ErrEmptyCart = errors.New("cannot build an order from an empty cart")

// Builder assembles immutable order records. The caller is responsible for
// emitting the order_placed notification exactly once per built order.
type Builder struct {
	prefix string
	now    func() time.Time
}

func NewBuilder(prefix string) *Builder {
	return &Builder{prefix: prefix, now: time.Now}
}

// Build snapshots the cart and combines it with the validated form data and
// the payment result. Building from an empty cart is a caller error.
func (b *Builder) Build(cart *domain.Cart, form domain.CheckoutForm, pay domain.PaymentRecord, summary domain.PriceSummary) (*domain.Order, error) {
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	return &domain.Order{
		ID:    b.newOrderID(),
		Items: cart.Snapshot(),
		Customer: domain.Customer{
			Email:     form.Email,
			FirstName: form.FirstName,
			LastName:  form.LastName,
			Phone:     form.Phone,
		},
		Shipping: domain.ShippingAddress{
			Address: form.Address,
			City:    form.City,
			State:   form.State,
			ZipCode: form.ZipCode,
		},
		Payment:   pay,
		Summary:   summary,
		OrderDate: b.now(),
	}, nil
}

// newOrderID combines the millisecond timestamp with a random suffix so two
// orders built within the same clock tick still get distinct ids.
func (b *Builder) newOrderID() string {
	return fmt.Sprintf("%s%d-%s", b.prefix, b.now().UnixMilli(), uuid.New().String()[:6])
}
