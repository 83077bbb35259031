package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ram-fashion/storefront/internal/domain"
	"github.com/ram-fashion/storefront/internal/sms"
)

const forwardTimeout = 10 * time.Second

// AdminSink is the admin aggregator's ingestion boundary. Forwarding to it is
// fire-and-forget: errors are logged, never surfaced to the caller.
type AdminSink interface {
	Ingest(ctx context.Context, n domain.Notification) error
}

// Dispatcher fans semantic storefront events out to the capped log, the admin
// sink, and (for eligible types) the SMS channel. Insertion into the log is
// serialized; everything past the log is asynchronous and best-effort.
type Dispatcher struct {
	store       Store
	sink        AdminSink
	sender      sms.Sender
	smsEligible map[domain.NotificationType]bool
	adminPhone  string
	recentTTL   time.Duration
	logger      *zap.Logger

	mu     sync.Mutex
	recent []domain.Notification
}

func NewDispatcher(store Store, sink AdminSink, sender sms.Sender,
	smsEligible map[domain.NotificationType]bool, adminPhone string,
	recentTTL time.Duration, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		store:       store,
		sink:        sink,
		sender:      sender,
		smsEligible: smsEligible,
		adminPhone:  adminPhone,
		recentTTL:   recentTTL,
		logger:      logger,
	}
}

// Add assigns an id and timestamp, appends to the log, and schedules the
// asynchronous fan-out. The returned bool reports whether the event type is
// SMS-eligible; actual delivery is best-effort and not awaited.
func (d *Dispatcher) Add(ctx context.Context, n domain.Notification) (domain.Notification, bool, error) {
	n.ID = uuid.New().String()
	n.Timestamp = time.Now()

	if err := d.store.Insert(ctx, n); err != nil {
		return domain.Notification{}, false, err
	}

	d.addRecent(n)

	go d.forwardAdmin(n)

	eligible := d.smsEligible[n.Type]
	if eligible {
		go d.forwardSMS(n)
	}
	return n, eligible, nil
}

// List returns the retained log, newest first.
func (d *Dispatcher) List(ctx context.Context) ([]domain.Notification, error) {
	return d.store.List(ctx)
}

func (d *Dispatcher) Remove(ctx context.Context, id string) error {
	return d.store.Remove(ctx, id)
}

func (d *Dispatcher) Clear(ctx context.Context) error {
	d.mu.Lock()
	d.recent = nil
	d.mu.Unlock()
	return d.store.Clear(ctx)
}

// Recent is the transient display list: entries drop out after the recent-view
// TTL without affecting the persistent log.
func (d *Dispatcher) Recent() []domain.Notification {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]domain.Notification, len(d.recent))
	copy(out, d.recent)
	return out
}

func (d *Dispatcher) addRecent(n domain.Notification) {
	d.mu.Lock()
	d.recent = append([]domain.Notification{n}, d.recent...)
	d.mu.Unlock()

	time.AfterFunc(d.recentTTL, func() {
		d.removeRecent(n.ID)
	})
}

func (d *Dispatcher) removeRecent(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, n := range d.recent {
		if n.ID == id {
			d.recent = append(d.recent[:i], d.recent[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) forwardAdmin(n domain.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), forwardTimeout)
	defer cancel()

	if err := d.sink.Ingest(ctx, n); err != nil {
		d.logger.Warn("failed to forward notification to admin",
			zap.String("notification_id", n.ID),
			zap.String("type", string(n.Type)),
			zap.Error(err))
	}
}

func (d *Dispatcher) forwardSMS(n domain.Notification) {
	body := smsBody(n, n.Timestamp)
	if body == "" || d.adminPhone == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), forwardTimeout)
	defer cancel()

	if _, err := d.sender.Send(ctx, sms.Message{To: d.adminPhone, Body: body, Type: n.Type}); err != nil {
		d.logger.Warn("failed to send admin sms",
			zap.String("notification_id", n.ID),
			zap.String("type", string(n.Type)),
			zap.Error(err))
	}
}
