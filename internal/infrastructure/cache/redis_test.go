package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestOpenRedis_Success(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	c, err := OpenRedis(s.Addr(), 2)
	if err != nil {
		t.Fatalf("OpenRedis returned error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if got := c.Options().DB; got != 2 {
		t.Fatalf("client DB = %d, want 2", got)
	}
}

func TestOpenRedis_Failure(t *testing.T) {
	// Unresolvable host: Ping should fail, not hang.
	if _, err := OpenRedis("not-a-real-host:6379", 0); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestStore_RoundTrip(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	c := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = c.Close() })
	store := NewStore(c)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := store.Set(ctx, "session:7", "token", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := store.Get(ctx, "session:7")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != "token" {
		t.Fatalf("Get = %q, want %q", v, "token")
	}

	if err := store.Expire(ctx, "session:7", time.Second); err != nil {
		t.Fatalf("Expire: %v", err)
	}
	s.FastForward(2 * time.Second)
	if _, err := store.Get(ctx, "session:7"); err != redis.Nil {
		t.Fatalf("Get after expiry = %v, want redis.Nil", err)
	}

	if err := store.Set(ctx, "gone", "x", 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Delete(ctx, "gone"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "gone"); err != redis.Nil {
		t.Fatalf("Get after delete = %v, want redis.Nil", err)
	}
}
