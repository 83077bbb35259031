// Package toast holds the transient on-screen confirmation queue: at most a
// handful of toasts visible at once, each self-expiring. It is purely
// presentational state and independent of the persisted notification log.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ram-fashion/storefront/internal/domain"
)

type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
)

// FromNotification maps a notification type onto a toast type.
func FromNotification(t domain.NotificationType) Type {
	return Type(t)
}

type Toast struct {
	ID      string `json:"id"`
	Type    Type   `json:"type"`
	Message string `json:"message"`
}

// Queue keeps the newest toasts visible, capped, each dismissed automatically
// after the TTL. Showing a sixth toast evicts the oldest visible one.
type Queue struct {
	mu     sync.Mutex
	max    int
	ttl    time.Duration
	toasts []Toast
	timers map[string]*time.Timer
}

func NewQueue(max int, ttl time.Duration) *Queue {
	return &Queue{
		max:    max,
		ttl:    ttl,
		timers: make(map[string]*time.Timer),
	}
}

func (q *Queue) Show(typ Type, message string) Toast {
	t := Toast{ID: uuid.New().String(), Type: typ, Message: message}

	q.mu.Lock()
	q.toasts = append([]Toast{t}, q.toasts...)
	for len(q.toasts) > q.max {
		evicted := q.toasts[len(q.toasts)-1]
		q.toasts = q.toasts[:len(q.toasts)-1]
		if timer, ok := q.timers[evicted.ID]; ok {
			timer.Stop()
			delete(q.timers, evicted.ID)
		}
	}
	q.timers[t.ID] = time.AfterFunc(q.ttl, func() {
		q.Dismiss(t.ID)
	})
	q.mu.Unlock()

	return t
}

func (q *Queue) Dismiss(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}
	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return
		}
	}
}

// Visible returns the currently displayed toasts, newest first.
func (q *Queue) Visible() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}

// Close stops all pending expiry timers.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
	q.toasts = nil
}
