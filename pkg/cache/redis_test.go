package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func closedRedis(t *testing.T, prefix string) *RedisCache {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0", MaxRetries: -1})
	c := NewRedisCacheFromClient(client, prefix)
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return c
}

func TestRedisCacheKeys(t *testing.T) {
	c := closedRedis(t, "")
	if got := c.key("artifact:abc"); got != "badgeicon:artifact:abc" {
		t.Errorf("key = %s", got)
	}

	c = closedRedis(t, "staging:")
	if got := c.key("artifact:abc"); got != "staging:artifact:abc" {
		t.Errorf("key = %s", got)
	}
}

func TestRedisCacheClosedClient(t *testing.T) {
	ctx := context.Background()
	c := closedRedis(t, "")

	if _, hit, err := c.Get(ctx, "k"); err == nil || hit {
		t.Errorf("Get on closed client: hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err == nil {
		t.Error("Set on closed client should fail")
	}
	if err := c.Delete(ctx, "k"); err == nil {
		t.Error("Delete on closed client should fail")
	}
}

func TestNewRedisCacheRequiresAddr(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), RedisOptions{}); err == nil {
		t.Error("NewRedisCache without address should fail")
	}
}
