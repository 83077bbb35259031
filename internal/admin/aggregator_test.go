package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ram-fashion/storefront/internal/domain"
	"github.com/ram-fashion/storefront/internal/notification"
)

func seededAggregator(t *testing.T, items ...domain.Notification) (*Aggregator, notification.Store) {
	t.Helper()
	store := notification.NewMemoryStore(50)
	agg := NewAggregator(store, zap.NewNop())
	ctx := context.Background()
	for i, n := range items {
		if n.ID == "" {
			n.ID = string(rune('a' + i))
		}
		require.NoError(t, store.Insert(ctx, n))
		require.NoError(t, agg.Ingest(ctx, n))
	}
	return agg, store
}

func TestStats_RevenueAndOrderCount(t *testing.T) {
	agg, _ := seededAggregator(t,
		domain.Notification{Type: domain.NotificationOrderPlaced, OrderValue: 500},
		domain.Notification{Type: domain.NotificationOrderPlaced, OrderValue: 1200},
		domain.Notification{Type: domain.NotificationOrderPlaced, OrderValue: 300},
		domain.Notification{Type: domain.NotificationCartAdd},
	)

	stats, err := agg.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, int64(2000), stats.TotalRevenue)
	assert.Equal(t, 1, stats.CartAdditions)
	assert.Equal(t, 0, stats.TotalUsers)
}

func TestStats_MissingOrderValueCountsAsZero(t *testing.T) {
	agg, _ := seededAggregator(t,
		domain.Notification{Type: domain.NotificationOrderPlaced, OrderValue: 900},
		domain.Notification{Type: domain.NotificationOrderPlaced},
	)

	stats, err := agg.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, int64(900), stats.TotalRevenue)
}

func TestStats_RecomputesAfterIngest(t *testing.T) {
	agg, store := seededAggregator(t,
		domain.Notification{Type: domain.NotificationUserSignup},
	)
	ctx := context.Background()

	stats, err := agg.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalUsers)

	n := domain.Notification{ID: "later", Type: domain.NotificationUserSignup}
	require.NoError(t, store.Insert(ctx, n))
	require.NoError(t, agg.Ingest(ctx, n))

	stats, err = agg.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUsers)
}

func TestStats_InvalidateAfterClear(t *testing.T) {
	agg, store := seededAggregator(t,
		domain.Notification{Type: domain.NotificationOrderPlaced, OrderValue: 100},
	)
	ctx := context.Background()

	stats, _ := agg.Stats(ctx)
	assert.Equal(t, 1, stats.TotalOrders)

	require.NoError(t, store.Clear(ctx))
	agg.Invalidate()

	stats, err := agg.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalOrders)
	assert.Equal(t, int64(0), stats.TotalRevenue)
}
