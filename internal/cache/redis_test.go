package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miraarastudios/miraara-backend/internal/domain"
)

// setupTestRedis creates a miniredis server and returns a RedisCache instance
func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	c := NewRedisCache(client, time.Hour)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return c, mr, cleanup
}

func TestRedisCache_PutGet(t *testing.T) {
	c, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	order := &domain.Order{
		OrderID:  "order_abc",
		Amount:   2500,
		Currency: "INR",
		Items: []domain.CartItem{
			{Image: "https://x/1.jpg", Price: 10, Quantity: 2},
			{Image: "https://x/2.jpg", Price: 5, Quantity: 1},
		},
	}

	require.NoError(t, c.Put(ctx, order))

	got, err := c.Get(ctx, "order_abc")
	require.NoError(t, err)
	assert.Equal(t, order.Amount, got.Amount)
	assert.Len(t, got.Items, 2)
	assert.Equal(t, "https://x/1.jpg", got.Items[0].Image)
}

func TestRedisCache_Miss(t *testing.T) {
	c, _, cleanup := setupTestRedis(t)
	defer cleanup()

	_, err := c.Get(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_InvalidJSON(t *testing.T) {
	c, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	require.NoError(t, mr.Set(cacheKey("order_abc"), "{broken"))

	_, err := c.Get(context.Background(), "order_abc")
	require.ErrorContains(t, err, "unmarshal order failed")
}

func TestRedisCache_TTLSet(t *testing.T) {
	c, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	require.NoError(t, c.Put(context.Background(), &domain.Order{OrderID: "order_abc"}))

	ttl := mr.TTL(cacheKey("order_abc"))
	assert.True(t, ttl >= time.Hour, "TTL should be at least base TTL")
	assert.True(t, ttl <= time.Hour+5*time.Minute, "TTL should be base + max jitter")
}

func TestCacheKey_Format(t *testing.T) {
	assert.Equal(t, "order:abc123", cacheKey("abc123"))
}
