package otp

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/campusgate/internal/server/models"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "campusgate:otp:"

// consumeScript deletes the key only when it holds the supplied code, so a
// correct code can win exactly once.
var consumeScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	redis.call("DEL", KEYS[1])
	return 1
end
return 0
`)

// RedisStore keeps codes in Redis with a TTL, so pending signups survive a
// server restart.
type RedisStore struct {
	client   redis.UniversalClient
	validity time.Duration
	prefix   string
	generate CodeGenerator
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client redis.UniversalClient, validity time.Duration) *RedisStore {
	if validity <= 0 {
		validity = DefaultValidity
	}
	return &RedisStore{
		client:   client,
		validity: validity,
		prefix:   defaultKeyPrefix,
		generate: GenerateCode,
	}
}

// NewRedisStoreFromURL parses a redis:// URL and checks the connection.
func NewRedisStoreFromURL(ctx context.Context, url string, validity time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisStore(client, validity), nil
}

func (s *RedisStore) key(email string) string {
	return s.prefix + models.NormalizeEmail(email)
}

func (s *RedisStore) Issue(ctx context.Context, email string) (string, error) {
	code, err := s.generate()
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, s.key(email), code, s.validity).Err(); err != nil {
		return "", fmt.Errorf("redis set: %w", err)
	}
	return code, nil
}

func (s *RedisStore) Consume(ctx context.Context, email, code string) (bool, error) {
	n, err := consumeScript.Run(ctx, s.client, []string{s.key(email)}, code).Int()
	if err != nil {
		return false, fmt.Errorf("redis consume: %w", err)
	}
	return n == 1, nil
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
