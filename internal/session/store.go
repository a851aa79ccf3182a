package session

import (
	"FileHub/utils"
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "auth_"

// Store owns the session token lifecycle on top of Redis. Expiry is a
// contract of the backend: entries vanish when their TTL elapses, no
// sweep runs here.
type Store struct {
	rdb *redis.Client
}

// NewStore creates a session store over a Redis client.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Create issues a fresh random token mapped to userID for ttl.
func (s *Store) Create(ctx context.Context, userID uint64, ttl time.Duration) (string, error) {
	token := utils.GetToken()
	value := strconv.FormatUint(userID, 10)
	if err := s.rdb.Set(ctx, keyPrefix+token, value, ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve maps a token back to a user ID. Absent means never issued,
// revoked, or expired; callers must not tell these apart.
func (s *Store) Resolve(ctx context.Context, token string) (uint64, bool) {
	value, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		return 0, false
	}
	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return userID, true
}

// Revoke deletes a token. Revoking an unknown token is a no-op.
func (s *Store) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}

// Alive reports whether the backing store answers.
func (s *Store) Alive(ctx context.Context) bool {
	return s.rdb.Ping(ctx).Err() == nil
}
