package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/phrazzld/creatortune-gateway/internal/config"
)

// DefaultKey is the Redis list holding the audit history.
const DefaultKey = "creatortune:audit_history"

// maxSaveAttempts bounds optimistic-lock retries when two saves race.
const maxSaveAttempts = 5

// NewRedisClient opens a client for the configured Redis server.
func NewRedisClient(cfg config.HistoryConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		DB:           cfg.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})
}

// RedisStore keeps history in a single Redis list, newest item at the head.
type RedisStore struct {
	client   redis.UniversalClient
	key      string
	maxItems int
	now      func() time.Time
}

// NewRedisStore creates a store on client. A non-positive maxItems means
// DefaultMaxItems.
func NewRedisStore(client redis.UniversalClient, maxItems int) *RedisStore {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	return &RedisStore{
		client:   client,
		key:      DefaultKey,
		maxItems: maxItems,
		now:      time.Now,
	}
}

// Ping checks the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, url string, data json.RawMessage) (Item, error) {
	item := NewItem(url, data, s.now())
	encoded, err := json.Marshal(item)
	if err != nil {
		return Item{}, fmt.Errorf("failed to encode history item: %w", err)
	}

	// The list is rewritten under WATCH so a concurrent save cannot
	// resurrect a duplicate URL.
	txf := func(tx *redis.Tx) error {
		existing, err := tx.LRange(ctx, s.key, 0, -1).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		keep := make([]interface{}, 0, s.maxItems)
		keep = append(keep, encoded)
		for _, raw := range existing {
			if len(keep) == s.maxItems {
				break
			}
			var old Item
			if err := json.Unmarshal([]byte(raw), &old); err != nil {
				continue
			}
			if sameURL(old.URL, item.URL) {
				continue
			}
			keep = append(keep, raw)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, s.key)
			pipe.RPush(ctx, s.key, keep...)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		err = s.client.Watch(ctx, txf, s.key)
		if err == nil {
			return item, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return Item{}, fmt.Errorf("failed to save history item: %w", err)
		}
	}
	return Item{}, fmt.Errorf("failed to save history item: %w", err)
}

// List implements Store.
func (s *RedisStore) List(ctx context.Context) ([]Item, error) {
	raw, err := s.client.LRange(ctx, s.key, 0, int64(s.maxItems-1)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		var item Item
		if err := json.Unmarshal([]byte(r), &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// Clear implements Store.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
