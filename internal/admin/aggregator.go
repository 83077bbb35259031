package admin

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/ram-fashion/storefront/internal/domain"
	"github.com/ram-fashion/storefront/internal/notification"
)

// Stats is the dashboard summary derived from the notification log.
type Stats struct {
	TotalOrders   int   `json:"totalOrders"`
	TotalRevenue  int64 `json:"totalRevenue"`
	TotalUsers    int   `json:"totalUsers"`
	CartAdditions int   `json:"cartAdditions"`
}

// Aggregator derives stats from the notification log. It keeps only a cached
// snapshot: Ingest bumps a generation counter and the next read recomputes, so
// the stats can never drift from the log. Concurrent recomputes collapse into
// one via singleflight.
type Aggregator struct {
	store  notification.Store
	logger *zap.Logger

	gen atomic.Int64
	sfg singleflight.Group

	mu        sync.RWMutex
	cached    Stats
	cachedGen int64
	hasCache  bool
}

func NewAggregator(store notification.Store, logger *zap.Logger) *Aggregator {
	return &Aggregator{store: store, logger: logger}
}

// Ingest is the dispatcher-facing ingestion boundary: it marks the cached
// snapshot stale. It never blocks on the log itself.
func (a *Aggregator) Ingest(_ context.Context, n domain.Notification) error {
	a.gen.Add(1)
	a.logger.Debug("notification ingested",
		zap.String("notification_id", n.ID),
		zap.String("type", string(n.Type)))
	return nil
}

// Invalidate forces a recompute on the next read. Used when the log is
// mutated outside the dispatch path (remove, clear).
func (a *Aggregator) Invalidate() {
	a.gen.Add(1)
}

// Stats returns the current summary, recomputing from the log if anything was
// ingested since the cached snapshot.
func (a *Aggregator) Stats(ctx context.Context) (Stats, error) {
	gen := a.gen.Load()

	a.mu.RLock()
	if a.hasCache && a.cachedGen == gen {
		cached := a.cached
		a.mu.RUnlock()
		return cached, nil
	}
	a.mu.RUnlock()

	v, err, _ := a.sfg.Do("stats", func() (interface{}, error) {
		items, err := a.store.List(ctx)
		if err != nil {
			return Stats{}, err
		}
		stats := derive(items)

		a.mu.Lock()
		a.cached = stats
		a.cachedGen = gen
		a.hasCache = true
		a.mu.Unlock()

		return stats, nil
	})
	if err != nil {
		return Stats{}, err
	}
	return v.(Stats), nil
}

func derive(items []domain.Notification) Stats {
	var stats Stats
	for _, n := range items {
		switch n.Type {
		case domain.NotificationOrderPlaced:
			stats.TotalOrders++
			stats.TotalRevenue += n.OrderValue
		case domain.NotificationUserSignup:
			stats.TotalUsers++
		case domain.NotificationCartAdd:
			stats.CartAdditions++
		}
	}
	return stats
}
