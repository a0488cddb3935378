package lock

import (
	"context"
	"log/slog"
	"time"

	"frame-pricing/internal/pkg/errs"
	"frame-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a single-node SET NX PX lock. The TTL bounds how long a
// crashed holder can block other instances.
type RedisLocker struct {
	client redis.UniversalClient
	ttl    time.Duration
}

var _ shared.SweepLocker = (*RedisLocker)(nil)

func NewRedisLocker(client redis.UniversalClient, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisLocker{client: client, ttl: ttl}
}

func (l *RedisLocker) TryLock(ctx context.Context, key string) (func(context.Context), bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, errs.Wrapf(err, "redis SETNX %s", key)
	}
	if !ok {
		return nil, false, nil
	}

	release := func(ctx context.Context) {
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			slog.Warn("failed to release sweep lock", "key", key, "error", err)
		}
	}
	return release, true, nil
}

// NoopLocker always grants the lock. Used when no Redis is configured and the
// process is the only sweeper.
type NoopLocker struct{}

var _ shared.SweepLocker = NoopLocker{}

func (NoopLocker) TryLock(context.Context, string) (func(context.Context), bool, error) {
	return func(context.Context) {}, true, nil
}
