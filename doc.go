// Package critsec provides a recursive mutual-exclusion lock and a small set
// of atomic integer operations, so that code protecting shared mutable state
// never talks to the operating system's threading API directly.
//
// # CriticalSection
//
// CriticalSection is a recursive lock: the goroutine that owns it may
// acquire it again without deadlocking, and must release it once per
// acquisition. Beyond Acquire/Release it offers a non-blocking TryAcquire
// and, in tracked builds, an ownership query for assertions:
//
//	cs := critsec.New()
//	defer cs.Close()
//
//	cs.Acquire()
//	// critical region
//	cs.Release()
//
//	if cs.TryAcquire() {
//	    defer cs.Release()
//	    // got it without blocking
//	}
//
// For regions that fit in a closure, Do and DoErr release on every exit
// path, including panics:
//
//	cs.Do(func() {
//	    // critical region
//	})
//
//	err := cs.DoErr(func() error {
//	    return updateSharedState()
//	})
//
// A *CriticalSection also satisfies sync.Locker, so defer-based unlocking
// works too.
//
// # Platform Backends
//
// Blocking is implemented by a backend chosen at build time:
//   - Linux: futex wait/wake on the lock word
//   - Windows: an auto-reset kernel event object
//   - everywhere else: a buffered-channel token
//
// All backends provide the same contract: exclusive ownership, no fairness
// guarantee beyond the platform's, and no timeout or cancellation on
// Acquire.
//
// # Owner Tracking
//
// By default the lock records its owning goroutine and panics when Release
// is called from a goroutine that does not hold it. Building with
// -tags critsec_notrack compiles the validation out; the OwnerTracking
// constant reports which build this is, and HeldByCurrentGoroutine answers
// "unknown" rather than guessing:
//
//	if held, known := cs.HeldByCurrentGoroutine(); known && !held {
//	    panic("caller must hold cs")
//	}
//
// # Atomic Integers
//
// AtomicGet, AtomicSet, AtomicIncrement, and AtomicDecrement operate on an
// *int64 location. AtomicSet is an exchange, returning the prior value; the
// increment and decrement forms return the new one:
//
//	var refs int64
//	critsec.AtomicIncrement(&refs)
//	if critsec.AtomicDecrement(&refs) == 0 {
//	    teardown()
//	}
//
// The default build maps these directly onto sync/atomic. Building with
// -tags critsec_lockedatomics routes every operation through a single
// process-wide CriticalSection instead (see FallbackLock); that path
// serializes all atomic calls in the process against each other and is
// meant for targets without usable intrinsics, not for performance.
package critsec
