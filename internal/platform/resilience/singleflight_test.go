package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlightSharesResult(t *testing.T) {
	var g SingleFlight
	var calls atomic.Int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	shared := make([]bool, 6)
	for i := range shared {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value, err, wasShared := g.Do("key", func() (any, error) {
				calls.Add(1)
				<-release
				return 42, nil
			})
			if err != nil || value != 42 {
				t.Errorf("unexpected result: %v %v", value, err)
			}
			shared[i] = wasShared
		}(i)
	}

	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected one call, got %d", got)
	}

	sharedCount := 0
	for _, s := range shared {
		if s {
			sharedCount++
		}
	}
	if sharedCount != len(shared)-1 {
		t.Fatalf("expected %d shared results, got %d", len(shared)-1, sharedCount)
	}
}

func TestSingleFlightSeparateKeys(t *testing.T) {
	var g SingleFlight

	a, _, _ := g.Do("a", func() (any, error) { return "a", nil })
	b, _, _ := g.Do("b", func() (any, error) { return "b", nil })

	if a != "a" || b != "b" {
		t.Fatalf("unexpected results: %v %v", a, b)
	}
}
