package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/seimoney/seimoney-go/core"
	"github.com/seimoney/seimoney-go/ports"
)

// RedisStore is a Redis implementation of the TokenStore interface, keyed
// per wallet owner so multiple sessions can share one Redis.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a new Redis token store scoped to an owner key
func NewRedisStore(client *redis.Client, owner string) ports.TokenStore {
	return &RedisStore{
		client: client,
		key:    "seimoney:token:" + owner,
	}
}

// SetToken stores the bearer token in Redis. The token carries its own
// expiry claim, so no Redis TTL is set here.
func (s *RedisStore) SetToken(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, 0).Err(); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}

	return nil
}

// Token returns the stored bearer token
func (s *RedisStore) Token(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", core.ErrTokenNotFound
		}
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	return token, nil
}

// DeleteToken removes the stored bearer token
func (s *RedisStore) DeleteToken(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}

	return nil
}
