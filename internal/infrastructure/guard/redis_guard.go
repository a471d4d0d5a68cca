package guard

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"ofair/internal/usecase/interfaces"
)

const (
	guardKeyPrefix  = "ofair:lifecycle:"
	defaultGuardTTL = 30 * time.Second
)

// releaseScript deletes the guard key only when the caller still owns it, so
// a slow operation whose key expired cannot release a successor's guard.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisOperationGuard is the per-request single-flight lock taken around
// accept/reject. SETNX with a TTL: the TTL bounds how long a crashed worker
// can block the request's lifecycle.

type RedisOperationGuard struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.IOperationGuard = (*RedisOperationGuard)(nil)

func NewRedisOperationGuard(client *redis.Client, ttl time.Duration) *RedisOperationGuard {
	if ttl <= 0 {
		ttl = defaultGuardTTL
	}
	return &RedisOperationGuard{client: client, ttl: ttl}
}

func (g *RedisOperationGuard) Acquire(ctx context.Context, requestID string) (string, error) {
	token := uuid.NewString()
	ok, err := g.client.SetNX(ctx, guardKeyPrefix+requestID, token, g.ttl).Result()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", interfaces.ErrOperationInFlight
	}
	return token, nil
}

func (g *RedisOperationGuard) Release(ctx context.Context, requestID, token string) error {
	err := releaseScript.Run(ctx, g.client, []string{guardKeyPrefix + requestID}, token).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		log.Printf("[guard] release failed request_id=%s err=%v", requestID, err)
		return err
	}
	return nil
}
