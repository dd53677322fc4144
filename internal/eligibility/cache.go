package eligibility

import (
	"context"
	"errors"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"syndicate/pkg/domain"
)

const (
	cacheKey = "syndicate:eligibility:root"
	cacheTTL = 5 * time.Minute
)

// CachedStore fronts a Store with a Redis read-through cache for the hot
// verify path. Replace writes through and refreshes the cache so a rotation
// takes effect immediately on this node; other nodes converge within the
// TTL. Cache failures degrade to the inner store, never to an error.
type CachedStore struct {
	inner  Store
	client *goredis.Client
	logger *slog.Logger
}

func NewCachedStore(inner Store, client *goredis.Client, logger *slog.Logger) *CachedStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedStore{inner: inner, client: client, logger: logger}
}

func (s *CachedStore) Current(ctx context.Context) (domain.Digest, error) {
	val, err := s.client.Get(ctx, cacheKey).Result()
	if err == nil {
		if root, perr := domain.ParseDigest(val); perr == nil {
			return root, nil
		}
	} else if !errors.Is(err, goredis.Nil) {
		s.logger.WarnContext(ctx, "commitment cache read failed", "error", err)
	}

	root, err := s.inner.Current(ctx)
	if err != nil {
		return domain.Digest{}, err
	}
	if serr := s.client.Set(ctx, cacheKey, root.String(), cacheTTL).Err(); serr != nil {
		s.logger.WarnContext(ctx, "commitment cache fill failed", "error", serr)
	}
	return root, nil
}

func (s *CachedStore) Replace(ctx context.Context, root domain.Digest) error {
	if err := s.inner.Replace(ctx, root); err != nil {
		return err
	}
	if err := s.client.Set(ctx, cacheKey, root.String(), cacheTTL).Err(); err != nil {
		s.logger.WarnContext(ctx, "commitment cache refresh failed", "error", err)
	}
	return nil
}
