package domain

import "time"

type NotificationType string

const (
	NotificationCartAdd     NotificationType = "cart_add"
	NotificationOrderPlaced NotificationType = "order_placed"
	NotificationUserSignup  NotificationType = "user_signup"
	NotificationWishlistAdd NotificationType = "wishlist_add"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationCartAdd, NotificationOrderPlaced, NotificationUserSignup, NotificationWishlistAdd:
		return true
	}
	return false
}

// Notification is an internal event record feeding the admin dashboard and the
// optional SMS channel. The optional fields carry whatever is relevant to the
// event type; OrderValue is set only for order_placed.
type Notification struct {
	ID          string           `json:"id"`
	Type        NotificationType `json:"type"`
	Message     string           `json:"message"`
	Timestamp   time.Time        `json:"timestamp"`
	UserID      string           `json:"userId,omitempty"`
	UserEmail   string           `json:"userEmail,omitempty"`
	ProductName string           `json:"productName,omitempty"`
	OrderValue  int64            `json:"orderValue,omitempty"`
}
