package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client), mr
}

// TestCreateResolve tests the token round trip.
func TestCreateResolve(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, 42, time.Hour)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if token == "" {
		t.Fatal("token should not be empty")
	}

	userID, ok := store.Resolve(ctx, token)
	if !ok {
		t.Fatal("token should resolve")
	}
	if userID != 42 {
		t.Fatalf("expect user 42, got %d", userID)
	}
}

// TestTokensAreUnique tests that two logins never share a token.
func TestTokensAreUnique(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first, err := store.Create(ctx, 1, time.Hour)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, err := store.Create(ctx, 1, time.Hour)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if first == second {
		t.Fatal("two sessions should never share a token")
	}

	// Both remain valid at once.
	if _, ok := store.Resolve(ctx, first); !ok {
		t.Fatal("first token should still resolve")
	}
	if _, ok := store.Resolve(ctx, second); !ok {
		t.Fatal("second token should still resolve")
	}
}

// TestRevoke tests explicit sign-out.
func TestRevoke(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, 7, time.Hour)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Revoke(ctx, token); err != nil {
		t.Fatalf("Revoke failed: %v", err)
	}
	if _, ok := store.Resolve(ctx, token); ok {
		t.Fatal("revoked token should not resolve")
	}

	// Revoking again is a no-op.
	if err := store.Revoke(ctx, token); err != nil {
		t.Fatalf("second Revoke failed: %v", err)
	}
}

// TestExpiry tests TTL-driven eviction without any sweep.
func TestExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, 9, 24*time.Hour)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	mr.FastForward(23 * time.Hour)
	if _, ok := store.Resolve(ctx, token); !ok {
		t.Fatal("token should survive until the TTL elapses")
	}

	mr.FastForward(2 * time.Hour)
	if _, ok := store.Resolve(ctx, token); ok {
		t.Fatal("expired token should not resolve")
	}
}

// TestResolveUnknown tests the uniform absent outcome.
func TestResolveUnknown(t *testing.T) {
	store, _ := newTestStore(t)

	if _, ok := store.Resolve(context.Background(), "never-issued"); ok {
		t.Fatal("unknown token should not resolve")
	}
}
