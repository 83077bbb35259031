package checkout

import "errors"

var (
	ErrSessionNotFound     = errors.New("checkout session not found")
	ErrEmptyCart           = errors.New("cart is empty, nothing to checkout")
	ErrIllegalTransition   = errors.New("illegal transition of checkout status")
	ErrNoPendingGatewayPay = errors.New("no gateway payment is pending for this session")
)

// User-facing payment error messages. The cause behind a verification failure
// (forged vs corrupted) is logged for operators but never shown to shoppers.
const (
	MsgVerificationFailed = "Payment verification failed. Please contact support."
	MsgPaymentCancelled   = "Payment was cancelled. Please try again."
	MsgGatewayUnreachable = "Payment failed. Please try again."
)
