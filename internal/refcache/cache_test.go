package refcache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGetOrLoadLoadsOncePerMiss(t *testing.T) {
	cache := New(NewMemoryStore(), 0)

	var loads int32
	load := func(ctx context.Context) ([]byte, error) {
		atomic.AddInt32(&loads, 1)
		return []byte(`{"name":"Carlos"}`), nil
	}

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		b, err := cache.GetOrLoad(ctx, "ref:barber:1", load)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(b) != `{"name":"Carlos"}` {
			t.Fatalf("unexpected value: %s", b)
		}
	}

	if n := atomic.LoadInt32(&loads); n != 1 {
		t.Errorf("expected exactly one load, got %d", n)
	}
}

func TestGetOrLoadPropagatesLoadError(t *testing.T) {
	cache := New(NewMemoryStore(), 0)

	wantErr := errors.New("db down")
	_, err := cache.GetOrLoad(context.Background(), "ref:service:1", func(ctx context.Context) ([]byte, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected load error to surface, got %v", err)
	}

	// El error no se cachea: el siguiente intento vuelve a cargar
	b, err := cache.GetOrLoad(context.Background(), "ref:service:1", func(ctx context.Context) ([]byte, error) {
		return []byte("ok"), nil
	})
	if err != nil || string(b) != "ok" {
		t.Errorf("expected fresh load after error, got %s, %v", b, err)
	}
}

func TestGetOrLoadConcurrentMissesCollapse(t *testing.T) {
	cache := New(NewMemoryStore(), 0)

	var loads int32
	load := func(ctx context.Context) ([]byte, error) {
		atomic.AddInt32(&loads, 1)
		time.Sleep(10 * time.Millisecond)
		return []byte("v"), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.GetOrLoad(context.Background(), "ref:barber:7", load); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if n := atomic.LoadInt32(&loads); n != 1 {
		t.Errorf("concurrent misses should collapse to one load, got %d", n)
	}
}

func TestInvalidateForcesReload(t *testing.T) {
	cache := New(NewMemoryStore(), 0)
	ctx := context.Background()

	var loads int32
	load := func(ctx context.Context) ([]byte, error) {
		atomic.AddInt32(&loads, 1)
		return []byte("v"), nil
	}

	if _, err := cache.GetOrLoad(ctx, "ref:service:3", load); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cache.Invalidate(ctx, "ref:service:3")
	if _, err := cache.GetOrLoad(ctx, "ref:service:3", load); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := atomic.LoadInt32(&loads); n != 2 {
		t.Errorf("expected reload after invalidation, got %d loads", n)
	}
}

func TestMemoryStoreTTL(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, "k", []byte("v"), 20*time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, "k"); err != nil {
		t.Fatalf("entry should be live before TTL: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	if _, err := store.Get(ctx, "k"); !errors.Is(err, ErrMiss) {
		t.Errorf("expected miss after TTL, got %v", err)
	}
}

// TTL cero: la entrada vive lo que el proceso
func TestMemoryStoreNoTTL(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, "k"); err != nil {
		t.Errorf("entry without TTL should not expire: %v", err)
	}
}
