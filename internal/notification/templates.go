package notification

import (
	"fmt"
	"time"

	"github.com/ram-fashion/storefront/internal/domain"
)

// smsBody renders the admin-facing SMS for a notification. Unknown types get
// an empty body and are skipped by the dispatcher.
func smsBody(n domain.Notification, at time.Time) string {
	user := n.UserEmail
	if user == "" {
		user = "Guest"
	}
	stamp := at.Format("02/01/2006, 15:04:05")

	switch n.Type {
	case domain.NotificationCartAdd:
		return fmt.Sprintf("🛒 New item added to cart!\nProduct: %s\nUser: %s\nTime: %s",
			n.ProductName, user, stamp)
	case domain.NotificationOrderPlaced:
		return fmt.Sprintf("🎉 NEW ORDER RECEIVED!\nOrder Value: ₹%d/-\nCustomer: %s\nTime: %s\n\nCheck your dashboard for details!",
			n.OrderValue, n.UserEmail, stamp)
	case domain.NotificationUserSignup:
		return fmt.Sprintf("👤 New user registered!\nEmail: %s\nTime: %s", n.UserEmail, stamp)
	case domain.NotificationWishlistAdd:
		return fmt.Sprintf("❤️ Item added to wishlist!\nProduct: %s\nUser: %s\nTime: %s",
			n.ProductName, user, stamp)
	}
	return ""
}
