package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStoreSetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)

	if _, ok := store.Get(ctx, "team:t1"); ok {
		t.Fatal("expected miss for unset key")
	}

	store.Set(ctx, "team:t1", "v1")
	value, ok := store.Get(ctx, "team:t1")
	if !ok || value != "v1" {
		t.Fatalf("unexpected value: %v ok=%v", value, ok)
	}

	store.Delete(ctx, "team:t1")
	if _, ok := store.Get(ctx, "team:t1"); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestStoreDeletePrefix(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)

	store.Set(ctx, "players:t1:p1", 1)
	store.Set(ctx, "players:t1:p2", 2)
	store.Set(ctx, "players:t2:p3", 3)

	store.DeletePrefix(ctx, "players:t1:")

	if _, ok := store.Get(ctx, "players:t1:p1"); ok {
		t.Fatal("expected prefix-matched key to be evicted")
	}
	if _, ok := store.Get(ctx, "players:t2:p3"); !ok {
		t.Fatal("expected other prefix to survive")
	}
}

func TestStoreGetOrLoadCollapsesConcurrentMisses(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)

	var loads atomic.Int32
	release := make(chan struct{})
	loader := func(context.Context) (any, error) {
		loads.Add(1)
		<-release
		return "loaded", nil
	}

	var wg sync.WaitGroup
	results := make([]any, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value, err := store.GetOrLoad(ctx, "match:m1", loader)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			results[i] = value
		}(i)
	}

	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := loads.Load(); got != 1 {
		t.Fatalf("expected a single loader call, got %d", got)
	}
	for _, value := range results {
		if value != "loaded" {
			t.Fatalf("unexpected value: %v", value)
		}
	}
}

func TestStoreNegativeTTLDisablesStorage(t *testing.T) {
	ctx := context.Background()
	store := NewStore(-1)

	var loads atomic.Int32
	loader := func(context.Context) (any, error) {
		loads.Add(1)
		return "loaded", nil
	}

	for i := 0; i < 2; i++ {
		value, err := store.GetOrLoad(ctx, "team:t1", loader)
		if err != nil || value != "loaded" {
			t.Fatalf("unexpected result: %v %v", value, err)
		}
	}

	if got := loads.Load(); got != 2 {
		t.Fatalf("expected loader on every call, got %d", got)
	}
}

func TestStoreGetOrLoadDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)

	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		if calls == 1 {
			return nil, fmt.Errorf("boom")
		}
		return "ok", nil
	}

	if _, err := store.GetOrLoad(ctx, "k", loader); err == nil {
		t.Fatal("expected first load to fail")
	}
	value, err := store.GetOrLoad(ctx, "k", loader)
	if err != nil || value != "ok" {
		t.Fatalf("unexpected retry result: %v %v", value, err)
	}
}
