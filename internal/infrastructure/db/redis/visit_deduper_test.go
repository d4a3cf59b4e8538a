package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeduper(t *testing.T, window time.Duration) (*VisitDeduper, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewVisitDeduper(client, window), mr
}

func TestVisitDeduper_FirstVisitThenRepeat(t *testing.T) {
	d, _ := newTestDeduper(t, time.Hour)
	ctx := context.Background()

	first, err := d.FirstVisit(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := d.FirstVisit(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, again)

	other, err := d.FirstVisit(ctx, "198.51.100.2")
	require.NoError(t, err)
	assert.True(t, other)
}

func TestVisitDeduper_WindowExpires(t *testing.T) {
	d, mr := newTestDeduper(t, 30*time.Minute)
	ctx := context.Background()

	_, err := d.FirstVisit(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, mr.TTL("visit:203.0.113.7"))

	mr.FastForward(31 * time.Minute)

	first, err := d.FirstVisit(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, first)
}

func TestVisitDeduper_Unavailable(t *testing.T) {
	d, mr := newTestDeduper(t, time.Hour)
	mr.Close()

	_, err := d.FirstVisit(context.Background(), "203.0.113.7")
	assert.Error(t, err)
	assert.Error(t, d.Ping(context.Background()))
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.True(t, Config{Addr: mr.Addr()}.Enabled())
	assert.False(t, Config{}.Enabled())
}
