package notification

import (
	"context"
	"errors"

	"github.com/ram-fashion/storefront/internal/domain"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Store is the capped, append-only notification log. Insert prepends and
// truncates to the cap atomically; List returns newest first.
type Store interface {
	// Insert prepends the notification and drops the oldest entries beyond
	// the cap.
	Insert(ctx context.Context, n domain.Notification) error

	// List returns all retained notifications, newest first.
	List(ctx context.Context) ([]domain.Notification, error)

	// Remove deletes the notification with the given id.
	Remove(ctx context.Context, id string) error

	// Clear empties the log.
	Clear(ctx context.Context) error
}
