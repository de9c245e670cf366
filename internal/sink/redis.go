package sink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces the pending-review lists.
const DefaultKeyPrefix = "jobboard:pending:"

// RedisSink appends each submission to a Redis list per kind, for an
// approval worker to pop. Lists are named prefix + kind.
type RedisSink struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisClient creates and verifies a Redis client connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}

// NewRedisSink wraps an existing client. An empty prefix uses DefaultKeyPrefix.
func NewRedisSink(rdb *redis.Client, prefix string) *RedisSink {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisSink{rdb: rdb, prefix: prefix}
}

// Key returns the list a kind is queued on.
func (s *RedisSink) Key(kind Kind) string {
	return s.prefix + string(kind)
}

// Submit pushes the JSON-encoded record onto its list.
func (s *RedisSink) Submit(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", rec.Kind, err)
	}
	if err := s.rdb.RPush(ctx, s.Key(rec.Kind), data).Err(); err != nil {
		return fmt.Errorf("failed to queue %s %s: %w", rec.Kind, rec.ID, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *RedisSink) Close() error {
	return s.rdb.Close()
}
