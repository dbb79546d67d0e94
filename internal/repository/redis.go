package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each collection in a single Redis hash with JSON-encoded
// record values. Field writes are atomic per key, which is all the Store
// contract requires.
type RedisStore[T any] struct {
	client *redis.Client
	key    string
}

// NewRedisStore builds a store over the given hash key.
func NewRedisStore[T any](client *redis.Client, collection string) *RedisStore[T] {
	return &RedisStore[T]{client: client, key: "helpdesk:" + collection}
}

func (s *RedisStore[T]) Get(ctx context.Context, id string) (T, error) {
	var record T
	raw, err := s.client.HGet(ctx, s.key, id).Result()
	if err == redis.Nil {
		return record, ErrNotFound
	}
	if err != nil {
		return record, fmt.Errorf("redis get %s/%s: %w", s.key, id, err)
	}
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return record, fmt.Errorf("decode %s/%s: %w", s.key, id, err)
	}
	return record, nil
}

func (s *RedisStore[T]) Put(ctx context.Context, id string, record T) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", s.key, id, err)
	}
	if err := s.client.HSet(ctx, s.key, id, raw).Err(); err != nil {
		return fmt.Errorf("redis put %s/%s: %w", s.key, id, err)
	}
	return nil
}

func (s *RedisStore[T]) ListAll(ctx context.Context) ([]T, error) {
	raw, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis list %s: %w", s.key, err)
	}
	result := make([]T, 0, len(raw))
	for id, value := range raw {
		var record T
		if err := json.Unmarshal([]byte(value), &record); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", s.key, id, err)
		}
		result = append(result, record)
	}
	return result, nil
}
