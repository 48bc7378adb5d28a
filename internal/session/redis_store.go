package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/danipardo/petclinic/internal/auth"
)

type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed session store. Expiry relies
// entirely on Redis' native TTL mechanism; there is no sweeper.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "session:",
	}
}

func (r *RedisStore) key(token string) string {
	return r.prefix + token
}

func (r *RedisStore) Put(ctx context.Context, token string, identity auth.Identity, ttl time.Duration) error {
	if token == "" || identity.ID == "" {
		return fmt.Errorf("session: missing token or identity")
	}
	if ttl <= 0 {
		return fmt.Errorf("session: ttl must be positive")
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("session: failed to marshal: %w", err)
	}

	if err := r.client.Set(ctx, r.key(token), data, ttl).Err(); err != nil {
		return fmt.Errorf("session: store write: %w", err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, token string) (*auth.Identity, error) {
	val, err := r.client.Get(ctx, r.key(token)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session: store read: %w", err)
	}

	var identity auth.Identity
	if err := json.Unmarshal([]byte(val), &identity); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if identity.ID == "" {
		return nil, fmt.Errorf("%w: missing identity id", ErrMalformed)
	}

	return &identity, nil
}

func (r *RedisStore) Touch(ctx context.Context, token string, ttl time.Duration) error {
	ok, err := r.client.Expire(ctx, r.key(token), ttl).Result()
	if err != nil {
		return fmt.Errorf("session: store expire: %w", err)
	}
	if !ok {
		// the session is already gone; nothing to refresh
		return ErrNotFound
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, r.key(token)).Err(); err != nil {
		return fmt.Errorf("session: store delete: %w", err)
	}
	return nil
}
