package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Store = (*RedisStore)(nil)

const keyPrefix = "chat:"

// RedisStore keeps each session as a Redis list of JSON messages. The
// list TTL is refreshed on every append, so an idle session expires as
// a whole.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing client. A ttl of zero disables
// expiry.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Append(ctx context.Context, id string, msgs ...Message) error {
	if len(msgs) == 0 {
		return nil
	}
	values := make([]any, 0, len(msgs))
	for _, m := range msgs {
		data, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("marshal message: %w", err)
		}
		values = append(values, data)
	}

	pipe := s.client.Pipeline()
	pipe.RPush(ctx, keyPrefix+id, values...)
	if s.ttl > 0 {
		pipe.Expire(ctx, keyPrefix+id, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append session %s: %w", id, err)
	}
	return nil
}

func (s *RedisStore) History(ctx context.Context, id string) ([]Message, error) {
	items, err := s.client.LRange(ctx, keyPrefix+id, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	msgs := make([]Message, 0, len(items))
	for _, item := range items {
		var m Message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			return nil, fmt.Errorf("decode session %s message: %w", id, err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func (s *RedisStore) Clear(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("clear session %s: %w", id, err)
	}
	return nil
}
