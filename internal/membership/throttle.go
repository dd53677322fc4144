package membership

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"syndicate/pkg/domain"
	dErrors "syndicate/pkg/domain-errors"
)

// Throttle limits claim attempts per caller. Any authenticated address may
// hit the claim endpoint, so it gets its own brake.
type Throttle interface {
	Allow(ctx context.Context, actor domain.Address) error
}

// NoopThrottle admits everything. Used when Redis is not configured.
type NoopThrottle struct{}

func (NoopThrottle) Allow(context.Context, domain.Address) error { return nil }

// RedisThrottle counts attempts per actor in a fixed window. Fails open:
// a Redis outage must not take the claim path down with it.
type RedisThrottle struct {
	client *goredis.Client
	limit  int64
	window time.Duration
	logger *slog.Logger
}

func NewRedisThrottle(client *goredis.Client, limit int64, window time.Duration, logger *slog.Logger) *RedisThrottle {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisThrottle{client: client, limit: limit, window: window, logger: logger}
}

func (t *RedisThrottle) Allow(ctx context.Context, actor domain.Address) error {
	key := fmt.Sprintf("syndicate:claim-throttle:%s", actor)

	pipe := t.client.TxPipeline()
	count := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, t.window)
	if _, err := pipe.Exec(ctx); err != nil {
		t.logger.WarnContext(ctx, "claim throttle unavailable, admitting", "error", err)
		return nil
	}

	if count.Val() > t.limit {
		return dErrors.Newf(dErrors.CodeRateLimited, "too many claim attempts, retry after %s", t.window)
	}
	return nil
}
