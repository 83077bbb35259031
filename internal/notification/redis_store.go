package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ram-fashion/storefront/internal/domain"
)

// RedisStore keeps the notification log in a Redis list so multiple server
// processes share one log. LPUSH + LTRIM gives the same prepend-and-cap
// semantics as the memory store, atomically within a pipeline.
type RedisStore struct {
	client *redis.Client
	key    string
	cap    int
}

func NewRedisStore(client *redis.Client, key string, cap int) *RedisStore {
	return &RedisStore{client: client, key: key, cap: cap}
}

func (s *RedisStore) Insert(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, s.key, payload)
	pipe.LTrim(ctx, s.key, 0, int64(s.cap-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]domain.Notification, error) {
	raw, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	out := make([]domain.Notification, 0, len(raw))
	for _, entry := range raw {
		var n domain.Notification
		if err := json.Unmarshal([]byte(entry), &n); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification: %w", err)
		}
		out = append(out, n)
	}
	return out, nil
}

func (s *RedisStore) Remove(ctx context.Context, id string) error {
	items, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	found := false
	for _, n := range items {
		if n.ID == id {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return ErrNotificationNotFound
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key)
	// RPUSH in list order keeps newest first.
	for _, n := range kept {
		payload, err := json.Marshal(n)
		if err != nil {
			return fmt.Errorf("failed to marshal notification: %w", err)
		}
		pipe.RPush(ctx, s.key, payload)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to rewrite notification log: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}
	return nil
}
