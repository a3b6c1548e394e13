package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/book-inventory/pkg/apperrors"
)

const revokedKeyPrefix = "revoked_token:"

// RedisTokenStore tracks revoked token ids in redis. Entries expire with
// the token itself, so the set stays bounded without cleanup jobs.
type RedisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore creates a new redis token store
func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		// Already expired, nothing to revoke.
		return nil
	}
	if err := s.client.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err(); err != nil {
		return apperrors.Wrap(err, "failed to revoke token")
	}
	return nil
}

func (s *RedisTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check token revocation")
	}
	return n > 0, nil
}
