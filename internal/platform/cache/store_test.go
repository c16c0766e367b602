package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStore_GetSet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)

	if _, ok := store.Get(ctx, "dna:arsenal"); ok {
		t.Fatal("expected miss on empty store")
	}

	store.Set(ctx, "dna:arsenal", 42)
	got, ok := store.Get(ctx, "dna:arsenal")
	if !ok || got != 42 {
		t.Fatalf("unexpected value: got=%v ok=%v", got, ok)
	}

	store.Reset(ctx)
	if _, ok := store.Get(ctx, "dna:arsenal"); ok {
		t.Fatal("expected miss after reset")
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Millisecond)
	store.Set(ctx, "k", "v")

	time.Sleep(5 * time.Millisecond)
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestStore_GetOrLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)

	loads := 0
	loader := func(context.Context) (any, error) {
		loads++
		return "built", nil
	}

	for i := 0; i < 3; i++ {
		got, err := store.GetOrLoad(ctx, "dna:leeds", loader)
		if err != nil {
			t.Fatalf("GetOrLoad: %v", err)
		}
		if got != "built" {
			t.Fatalf("unexpected value: %v", got)
		}
	}
	if loads != 1 {
		t.Fatalf("expected one load, got %d", loads)
	}

	wantErr := errors.New("source unavailable")
	_, err := store.GetOrLoad(ctx, "dna:missing", func(context.Context) (any, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, ok := store.Get(ctx, "dna:missing"); ok {
		t.Fatal("failed load must not be cached")
	}
}
