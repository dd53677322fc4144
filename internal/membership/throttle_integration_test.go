//go:build integration

package membership

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "syndicate/pkg/domain-errors"
	"syndicate/pkg/testutil/containers"
)

func TestRedisThrottle_LimitsPerActor(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()
	t.Cleanup(func() { _ = rc.FlushAll(ctx) })

	throttle := NewRedisThrottle(rc.Client, 2, time.Minute, nil)
	actor := addr("1b")

	require.NoError(t, throttle.Allow(ctx, actor))
	require.NoError(t, throttle.Allow(ctx, actor))

	err := throttle.Allow(ctx, actor)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeRateLimited))

	// Other actors keep their own window.
	assert.NoError(t, throttle.Allow(ctx, addr("2c")))
}
