package critsec

import (
	"errors"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// ErrHeld is returned by Close when the lock is still held by some goroutine.
var ErrHeld = errors.New("critsec: cannot close a held lock")

// CriticalSection is a recursive mutual-exclusion lock. A goroutine that
// already owns the lock may acquire it again without deadlocking; it must
// then call Release once per acquisition before the lock becomes free.
//
// The zero value is not usable; create instances with New. A CriticalSection
// must not be copied after first use.
//
// Blocking and wakeup are delegated to a per-platform backend selected at
// build time (futex on Linux, a kernel event object on Windows, a channel
// token elsewhere). Wakeup order among blocked acquirers is whatever the
// platform provides; no FIFO fairness is guaranteed.
//
// Acquire has no timeout and no cancellation point. Callers that need either
// must build it above this primitive, for example with TryAcquire in a
// backoff loop.
type CriticalSection struct {
	// owner is the goroutine ID of the current holder, 0 when unheld.
	// Goroutine IDs start at 1, so 0 is never a valid owner.
	owner atomic.Int64

	// depth is the recursive hold count. It is only read or written by the
	// goroutine that owns the lock, so plain accesses are safe: they are
	// ordered by the backend's lock and unlock.
	depth int

	be backend
}

// New creates an unlocked CriticalSection.
func New() *CriticalSection {
	return &CriticalSection{be: newBackend()}
}

// Acquire blocks the calling goroutine until it has exclusive ownership.
// If the caller already owns the lock, Acquire returns immediately and
// increments the hold count.
//
// Acquire cannot fail: a failure of the underlying OS primitive is treated
// as fatal and panics, since there is no safe degraded mode for a broken
// mutual-exclusion primitive.
func (cs *CriticalSection) Acquire() {
	me := goid.Get()
	if cs.owner.Load() == me {
		cs.depth++
		return
	}
	cs.be.lock()
	cs.owner.Store(me)
	cs.depth = 1
}

// TryAcquire attempts to take ownership without blocking. It returns true
// when the lock was free or already owned by the caller, false otherwise.
// A false return leaves ownership untouched.
func (cs *CriticalSection) TryAcquire() bool {
	me := goid.Get()
	if cs.owner.Load() == me {
		cs.depth++
		return true
	}
	if !cs.be.tryLock() {
		return false
	}
	cs.owner.Store(me)
	cs.depth = 1
	return true
}

// Release undoes one Acquire or successful TryAcquire. When the hold count
// reaches zero it relinquishes ownership, waking at most one blocked
// acquirer.
//
// Release must only be called by the goroutine that owns the lock. In
// builds with owner tracking enabled (the default) a violation panics;
// with the critsec_notrack tag the behavior is undefined.
func (cs *CriticalSection) Release() {
	if OwnerTracking && cs.owner.Load() != goid.Get() {
		panic("critsec: release of a lock not held by this goroutine")
	}
	cs.depth--
	if cs.depth > 0 {
		return
	}
	cs.owner.Store(0)
	cs.be.unlock()
}

// HeldByCurrentGoroutine reports whether the calling goroutine owns the
// lock. When owner tracking is disabled (critsec_notrack build tag), known
// is false and held carries no information.
//
// The result is only stable for the caller itself: asking about the lock
// and then acting on the answer is inherently racy for any other goroutine.
// Intended for assertions, not control flow.
func (cs *CriticalSection) HeldByCurrentGoroutine() (held, known bool) {
	if !OwnerTracking {
		return false, false
	}
	return cs.owner.Load() == goid.Get(), true
}

// Close releases any OS resources owned by the lock's backend. It returns
// ErrHeld if the lock is currently held. Any use of the CriticalSection
// after a successful Close is undefined.
func (cs *CriticalSection) Close() error {
	if cs.owner.Load() != 0 {
		return ErrHeld
	}
	return cs.be.close()
}

// Lock is an alias for Acquire so that *CriticalSection satisfies
// sync.Locker and works with defer-based unlocking.
func (cs *CriticalSection) Lock() { cs.Acquire() }

// Unlock is an alias for Release.
func (cs *CriticalSection) Unlock() { cs.Release() }

// TryLock is an alias for TryAcquire.
func (cs *CriticalSection) TryLock() bool { return cs.TryAcquire() }
