package critsec

import "sync"

var (
	fallbackOnce sync.Once
	fallbackLock *CriticalSection
)

// FallbackLock returns the process-wide CriticalSection that serializes the
// lock-guarded atomic operations (builds made with -tags
// critsec_lockedatomics). It is created on first use and lives for the rest
// of the process; there is nothing to tear down since it guards only
// in-process memory.
//
// This is a single global serialization point: every lock-guarded atomic
// call in the process contends on it, regardless of which memory location
// it touches. Callers must not expect fine-grained concurrency from the
// lock-guarded path; it exists for correctness on targets without usable
// intrinsics, on the assumption that call frequency is low.
func FallbackLock() *CriticalSection {
	fallbackOnce.Do(func() {
		fallbackLock = New()
	})
	return fallbackLock
}

// Lock-guarded forms of the atomic operations. These are compiled into
// every build so the default build's tests can exercise them; the public
// Atomic* functions only bind to them under critsec_lockedatomics.

func lockedGet(loc *int64) int64 {
	l := FallbackLock()
	l.Acquire()
	defer l.Release()
	return *loc
}

func lockedSet(loc *int64, v int64) int64 {
	l := FallbackLock()
	l.Acquire()
	defer l.Release()
	prev := *loc
	*loc = v
	return prev
}

func lockedIncrement(loc *int64) int64 {
	l := FallbackLock()
	l.Acquire()
	defer l.Release()
	*loc++
	return *loc
}

func lockedDecrement(loc *int64) int64 {
	l := FallbackLock()
	l.Acquire()
	defer l.Release()
	*loc--
	return *loc
}
