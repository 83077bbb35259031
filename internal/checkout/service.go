package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ram-fashion/storefront/internal/domain"
	"github.com/ram-fashion/storefront/internal/order"
	"github.com/ram-fashion/storefront/internal/payment"
)

// Notifier is the slice of the dispatcher the checkout flow needs: one
// order_placed event per confirmed order.
type Notifier interface {
	Add(ctx context.Context, n domain.Notification) (domain.Notification, bool, error)
}

// PaymentSelection carries the shopper's payment-step input.
type PaymentSelection struct {
	Method     domain.PaymentMethod
	CardNumber string
	ExpiryDate string
	CVV        string
	NameOnCard string
}

// Service drives checkout sessions through shipping → payment → confirmed.
// The order builder is invoked only after verification returned true or the
// simulated processing path completed; no partial order ever exists.
type Service struct {
	store    SessionStore
	gateway  payment.GatewayClient
	verifier *payment.Verifier
	builder  *order.Builder
	notifier Notifier
	pricing  domain.Pricing

	processingDelay time.Duration
	logger          *zap.Logger
}

func NewService(store SessionStore, gateway payment.GatewayClient, verifier *payment.Verifier,
	builder *order.Builder, notifier Notifier, pricing domain.Pricing,
	processingDelay time.Duration, logger *zap.Logger) *Service {
	return &Service{
		store:           store,
		gateway:         gateway,
		verifier:        verifier,
		builder:         builder,
		notifier:        notifier,
		pricing:         pricing,
		processingDelay: processingDelay,
		logger:          logger,
	}
}

// Start opens a session from a cart snapshot. An empty cart is a caller
// error, not an empty checkout.
func (s *Service) Start(ctx context.Context, cart domain.Cart) (*Session, error) {
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	now := time.Now()
	session := &Session{
		ID:        uuid.New().String(),
		Status:    domain.CheckoutStatusShippingInfo,
		Cart:      cart,
		Summary:   s.pricing.Summarize(cart.Subtotal()),
		CreatedAt: now,
		UpdatedAt: now,
	}
	session.Form.PaymentMethod = domain.PaymentMethodRazorpay
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	return s.store.Get(ctx, id)
}

// Abort discards the session and all in-progress form state. The cart is
// never cleared on abort.
func (s *Service) Abort(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// SubmitShipping validates the shipping fields. On validation failure the
// session stays in SHIPPING_INFO with field-level errors set; on success it
// advances to PAYMENT.
func (s *Service) SubmitShipping(ctx context.Context, id string, form domain.CheckoutForm) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.CheckoutStatusShippingInfo {
		return nil, ErrIllegalTransition
	}

	method := session.Form.PaymentMethod
	session.Form = form
	if session.Form.PaymentMethod == "" {
		session.Form.PaymentMethod = method
	}

	if errs := form.ValidateShipping(); len(errs) > 0 {
		session.FieldErrors = errs
		session.UpdatedAt = time.Now()
		if err := s.store.Save(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}

	session.FieldErrors = nil
	session.Status = domain.CheckoutStatusPayment
	session.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back steps from the payment step to shipping without clearing anything the
// shopper already typed.
func (s *Service) Back(ctx context.Context, id string) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransitionTo(session.Status, domain.CheckoutStatusShippingInfo) {
		return nil, ErrIllegalTransition
	}

	session.Status = domain.CheckoutStatusShippingInfo
	session.PaymentError = ""
	session.GatewayOrder = nil
	session.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitPayment handles the payment step. For the hosted gateway method it
// creates a gateway order and leaves the session in PAYMENT until the hosted
// flow reports back; for card/UPI/COD it simulates processing and confirms.
func (s *Service) SubmitPayment(ctx context.Context, id string, selection PaymentSelection) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.CheckoutStatusPayment && session.Status != domain.CheckoutStatusPaymentError {
		return nil, ErrIllegalTransition
	}

	// A retry from PAYMENT_ERROR re-enters the payment step first.
	if session.Status == domain.CheckoutStatusPaymentError {
		session.Status = domain.CheckoutStatusPayment
		session.PaymentError = ""
	}

	session.Form.PaymentMethod = selection.Method
	session.Form.CardNumber = selection.CardNumber
	session.Form.ExpiryDate = selection.ExpiryDate
	session.Form.CVV = selection.CVV
	session.Form.NameOnCard = selection.NameOnCard

	if errs := session.Form.ValidatePayment(); len(errs) > 0 {
		session.FieldErrors = errs
		session.UpdatedAt = time.Now()
		if err := s.store.Save(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}
	session.FieldErrors = nil

	if selection.Method == domain.PaymentMethodRazorpay {
		return s.initiateGatewayPayment(ctx, session)
	}
	return s.processSimulatedPayment(ctx, session)
}

func (s *Service) initiateGatewayPayment(ctx context.Context, session *Session) (*Session, error) {
	amountPaise := session.Summary.Total * 100
	gwOrder, err := s.gateway.CreateOrder(ctx, amountPaise, "INR")
	if err != nil {
		s.logger.Warn("gateway order creation failed",
			zap.String("session_id", session.ID), zap.Error(err))
		session.Status = domain.CheckoutStatusPaymentError
		session.PaymentError = MsgGatewayUnreachable
		session.UpdatedAt = time.Now()
		if saveErr := s.store.Save(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return session, nil
	}

	session.GatewayOrder = gwOrder
	session.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) processSimulatedPayment(ctx context.Context, session *Session) (*Session, error) {
	// Non-gateway methods do no real verification: processing succeeds by
	// construction after a fixed delay. Not a policy for real payment rails.
	select {
	case <-time.After(s.processingDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	pay := domain.PaymentRecord{
		Method:    session.Form.PaymentMethod,
		Amount:    session.Summary.Total,
		Verified:  false,
		Simulated: true,
	}
	return s.confirm(ctx, session, pay)
}

// CompleteGatewayPayment handles the hosted flow's completion callback. The
// signature is verified server-side; only an authentic callback builds the
// order and confirms the session.
func (s *Service) CompleteGatewayPayment(ctx context.Context, id, gatewayOrderID, gatewayPaymentID, signature string) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.CheckoutStatusPayment {
		return nil, ErrIllegalTransition
	}
	if session.GatewayOrder == nil {
		return nil, ErrNoPendingGatewayPay
	}

	if !s.verifier.Verify(gatewayOrderID, gatewayPaymentID, signature) {
		// Distinguish the causes for operators; the shopper sees one message.
		if gatewayOrderID == "" || gatewayPaymentID == "" || signature == "" {
			s.logger.Warn("payment verification failed: missing callback fields",
				zap.String("session_id", session.ID))
		} else {
			s.logger.Warn("payment verification failed: signature mismatch",
				zap.String("session_id", session.ID),
				zap.String("gateway_order_id", gatewayOrderID),
				zap.String("gateway_payment_id", gatewayPaymentID))
		}
		session.Status = domain.CheckoutStatusPaymentError
		session.PaymentError = MsgVerificationFailed
		session.UpdatedAt = time.Now()
		if err := s.store.Save(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}

	pay := domain.PaymentRecord{
		Method:            domain.PaymentMethodRazorpay,
		Amount:            session.Summary.Total,
		Verified:          true,
		RazorpayOrderID:   gatewayOrderID,
		RazorpayPaymentID: gatewayPaymentID,
		RazorpaySignature: signature,
	}
	return s.confirm(ctx, session, pay)
}

// CancelGatewayPayment handles dismissal of the hosted payment flow. It lands
// deterministically in PAYMENT_ERROR; the shopper may retry.
func (s *Service) CancelGatewayPayment(ctx context.Context, id string) (*Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.CheckoutStatusPayment {
		return nil, ErrIllegalTransition
	}
	if session.GatewayOrder == nil {
		return nil, ErrNoPendingGatewayPay
	}

	session.Status = domain.CheckoutStatusPaymentError
	session.PaymentError = MsgPaymentCancelled
	session.GatewayOrder = nil
	session.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// confirm builds the order, emits order_placed exactly once, and moves the
// session to CONFIRMED. The cart is cleared only here.
func (s *Service) confirm(ctx context.Context, session *Session, pay domain.PaymentRecord) (*Session, error) {
	if !domain.CanTransitionTo(session.Status, domain.CheckoutStatusConfirmed) {
		return nil, ErrIllegalTransition
	}

	built, err := s.builder.Build(&session.Cart, session.Form, pay, session.Summary)
	if err != nil {
		if errors.Is(err, order.ErrEmptyCart) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}

	session.Order = built
	session.Status = domain.CheckoutStatusConfirmed
	session.PaymentError = ""
	session.GatewayOrder = nil
	session.CartCleared = true
	session.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	if _, _, err := s.notifier.Add(ctx, domain.Notification{
		Type:       domain.NotificationOrderPlaced,
		Message:    fmt.Sprintf("New order placed - ₹%d/-", session.Summary.Total),
		UserEmail:  session.Form.Email,
		OrderValue: session.Summary.Total,
	}); err != nil {
		// The order is already confirmed; a notification failure must not
		// roll it back.
		s.logger.Warn("failed to emit order notification",
			zap.String("order_id", built.ID), zap.Error(err))
	}

	s.logger.Info("order confirmed",
		zap.String("session_id", session.ID),
		zap.String("order_id", built.ID),
		zap.String("method", string(pay.Method)),
		zap.Int64("total", session.Summary.Total),
		zap.Bool("verified", pay.Verified))

	return session, nil
}
