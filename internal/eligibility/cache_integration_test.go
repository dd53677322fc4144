//go:build integration

package eligibility

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syndicate/pkg/testutil/containers"
)

func TestCachedStore_ReadThroughAndRotation(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()
	t.Cleanup(func() { _ = rc.FlushAll(ctx) })

	inner := NewInMemory()
	cached := NewCachedStore(inner, rc.Client, nil)

	first := Leaf(addr("1a"))
	require.NoError(t, cached.Replace(ctx, first))

	got, err := cached.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	// The cached value serves even if the inner store moves on behind this
	// node's back; rotation through the cache refreshes it immediately.
	second := Leaf(addr("2b"))
	require.NoError(t, inner.Replace(ctx, second))
	got, err = cached.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got, "read-through should serve the cached root until TTL or rotation")

	require.NoError(t, cached.Replace(ctx, second))
	got, err = cached.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestCachedStore_FillsFromInner(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()
	t.Cleanup(func() { _ = rc.FlushAll(ctx) })

	inner := NewInMemory()
	root := Leaf(addr("3c"))
	require.NoError(t, inner.Replace(ctx, root))

	cached := NewCachedStore(inner, rc.Client, nil)
	got, err := cached.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, root, got)

	val, err := rc.Client.Get(ctx, "syndicate:eligibility:root").Result()
	require.NoError(t, err)
	assert.Equal(t, root.String(), val, "miss should fill the cache")
}
