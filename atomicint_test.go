package critsec

import (
	"sync"
	"testing"
)

// TestAtomicBasics checks the single-goroutine contract of each operation.
func TestAtomicBasics(t *testing.T) {
	var loc int64

	if got := AtomicGet(&loc); got != 0 {
		t.Errorf("AtomicGet = %d, want 0", got)
	}
	if prev := AtomicSet(&loc, 42); prev != 0 {
		t.Errorf("AtomicSet returned %d, want previous value 0", prev)
	}
	if prev := AtomicSet(&loc, 7); prev != 42 {
		t.Errorf("AtomicSet returned %d, want previous value 42", prev)
	}
	if got := AtomicIncrement(&loc); got != 8 {
		t.Errorf("AtomicIncrement = %d, want 8", got)
	}
	if got := AtomicDecrement(&loc); got != 7 {
		t.Errorf("AtomicDecrement = %d, want 7", got)
	}
	if got := AtomicGet(&loc); got != 7 {
		t.Errorf("AtomicGet = %d, want 7", got)
	}
}

// TestAtomicIncrementContention checks that no increments are lost under
// contention, on both the build-selected path and the lock-guarded path.
func TestAtomicIncrementContention(t *testing.T) {
	numGoroutines := 50
	numOps := 1000
	if testing.Short() {
		numGoroutines = 10
		numOps = 100
	}
	want := int64(numGoroutines * numOps)

	paths := map[string]func(*int64) int64{
		"Default": AtomicIncrement,
		"Locked":  lockedIncrement,
	}

	for name, increment := range paths {
		t.Run(name, func(t *testing.T) {
			var loc int64
			var wg sync.WaitGroup
			for i := 0; i < numGoroutines; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < numOps; j++ {
						increment(&loc)
					}
				}()
			}
			wg.Wait()

			if got := AtomicGet(&loc); got != want {
				t.Errorf("Expected %d after %d increments, got %d", want, want, got)
			}
		})
	}
}

// TestAtomicDecrementContention mirrors the increment test downward.
func TestAtomicDecrementContention(t *testing.T) {
	numGoroutines := 10
	numOps := 500
	if testing.Short() {
		numGoroutines = 5
		numOps = 100
	}

	paths := map[string]func(*int64) int64{
		"Default": AtomicDecrement,
		"Locked":  lockedDecrement,
	}

	for name, decrement := range paths {
		t.Run(name, func(t *testing.T) {
			loc := int64(numGoroutines * numOps)
			var wg sync.WaitGroup
			for i := 0; i < numGoroutines; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < numOps; j++ {
						decrement(&loc)
					}
				}()
			}
			wg.Wait()

			if got := AtomicGet(&loc); got != 0 {
				t.Errorf("Expected 0 after matching decrements, got %d", got)
			}
		})
	}
}

// TestAtomicSetConcurrentExchange checks that concurrent exchanges never
// return a torn or invented value: every value installed by some call is
// observed exactly once, either as another call's return or as the final
// value of the location.
func TestAtomicSetConcurrentExchange(t *testing.T) {
	paths := map[string]func(*int64, int64) int64{
		"Default": AtomicSet,
		"Locked":  lockedSet,
	}

	for name, set := range paths {
		t.Run(name, func(t *testing.T) {
			const numGoroutines = 64

			var loc int64
			returns := make(chan int64, numGoroutines)
			var wg sync.WaitGroup
			for v := int64(1); v <= numGoroutines; v++ {
				wg.Add(1)
				go func(v int64) {
					defer wg.Done()
					returns <- set(&loc, v)
				}(v)
			}
			wg.Wait()
			close(returns)

			seen := make(map[int64]bool)
			for v := range returns {
				if seen[v] {
					t.Fatalf("Value %d returned by two different exchanges", v)
				}
				seen[v] = true
			}

			final := AtomicGet(&loc)
			if seen[final] {
				t.Fatalf("Final value %d was also returned by an exchange", final)
			}
			seen[final] = true

			// The exchanges form a chain: {0, 1, ..., numGoroutines} must
			// each appear exactly once across returns plus the final value.
			for v := int64(0); v <= numGoroutines; v++ {
				if !seen[v] {
					t.Errorf("Value %d was lost in the exchange chain", v)
				}
			}
		})
	}
}

// TestLockedGet checks the lock-guarded read path directly.
func TestLockedGet(t *testing.T) {
	loc := int64(99)
	if got := lockedGet(&loc); got != 99 {
		t.Errorf("lockedGet = %d, want 99", got)
	}
}

// TestFallbackLockSingleton checks that every caller sees the same
// process-wide fallback lock.
func TestFallbackLockSingleton(t *testing.T) {
	first := FallbackLock()
	if first == nil {
		t.Fatal("FallbackLock returned nil")
	}

	results := make(chan *CriticalSection, 10)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- FallbackLock()
		}()
	}
	wg.Wait()
	close(results)

	for got := range results {
		if got != first {
			t.Error("FallbackLock returned different instances")
		}
	}
}

// TestFallbackLockUsable checks the fallback lock behaves as a lock: the
// lock-guarded ops must block each other through it.
func TestFallbackLockUsable(t *testing.T) {
	l := FallbackLock()

	l.Acquire()
	if tryFromOtherGoroutine(l) {
		t.Error("Fallback lock acquired elsewhere while held")
	}
	l.Release()

	if !tryFromOtherGoroutine(l) {
		t.Error("Fallback lock still held after Release")
	}
}
