package cache

import (
	"context"
	"os"
	"testing"
	"time"

	errs "github.com/matzehuels/tidytree/pkg/errors"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("None", func(t *testing.T) {
		c, err := Open(ctx, BackendNone, "")
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		defer c.Close()
		if _, ok := c.(NullCache); !ok {
			t.Errorf("Open(none) = %T, want NullCache", c)
		}
	})

	for _, backend := range []string{"", BackendFile} {
		t.Run("File"+backend, func(t *testing.T) {
			c, err := Open(ctx, backend, t.TempDir())
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer c.Close()
			if _, ok := c.(*FileCache); !ok {
				t.Errorf("Open(%q) = %T, want *FileCache", backend, c)
			}
		})
	}

	t.Run("Unknown", func(t *testing.T) {
		_, err := Open(ctx, "memcached", "")
		if !errs.Is(err, errs.ErrCodeInvalidInput) {
			t.Errorf("Open(memcached) error = %v, want INVALID_INPUT", err)
		}
	})

	t.Run("BadRedisURL", func(t *testing.T) {
		if _, err := Open(ctx, BackendRedis, "http://not-redis"); err == nil {
			t.Error("expected error for non-redis URL")
		}
	})
}

// exercise runs the shared Cache contract against a live backend.
func exercise(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()
	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
		t.Errorf("Get(missing) = %v, %v", hit, err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "v" {
		t.Errorf("Get(k) = %q, %v, %v", data, hit, err)
	}
	if err := c.Set(ctx, "k", []byte("w"), time.Minute); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if data, _, _ := c.Get(ctx, "k"); string(data) != "w" {
		t.Errorf("Get after overwrite = %q, want w", data)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("entry survived Delete")
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), time.Minute); err != nil {
			t.Fatalf("Set(%s): %v", k, err)
		}
	}
	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if _, hit, _ := c.Get(ctx, k); hit {
			t.Errorf("%s survived Clear", k)
		}
	}
}

func TestRedisCache(t *testing.T) {
	url := os.Getenv("TIDYTREE_REDIS_URL")
	if url == "" {
		t.Skip("TIDYTREE_REDIS_URL not set")
	}
	c, err := DialRedis(context.Background(), url, "tidytree-test:")
	if err != nil {
		t.Fatalf("DialRedis: %v", err)
	}
	defer c.Close()
	exercise(t, c)
}

func TestMongoCache(t *testing.T) {
	uri := os.Getenv("TIDYTREE_MONGO_URI")
	if uri == "" {
		t.Skip("TIDYTREE_MONGO_URI not set")
	}
	c, err := DialMongo(context.Background(), uri, "tidytree_test", "cache")
	if err != nil {
		t.Fatalf("DialMongo: %v", err)
	}
	defer c.Close()
	exercise(t, c)

	t.Run("Expired", func(t *testing.T) {
		ctx := context.Background()
		if err := c.Set(ctx, "old", []byte("x"), time.Minute); err != nil {
			t.Fatalf("Set: %v", err)
		}
		c.now = func() time.Time { return time.Now().Add(time.Hour) }
		defer func() { c.now = time.Now }()
		if _, hit, _ := c.Get(ctx, "old"); hit {
			t.Error("expired entry returned")
		}
	})
}
