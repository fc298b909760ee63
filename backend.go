package critsec

// backend is the non-recursive platform lock under a CriticalSection. The
// recursion and ownership bookkeeping live above it; a backend only needs
// to park and wake OS threads.
//
// One implementation exists per target class, selected by build constraint:
//
//   - Linux: futex-based (backend_linux.go)
//   - Windows: kernel event object (backend_windows.go)
//   - everything else: buffered-channel token (backend_portable.go)
//
// Each build sees exactly one newBackend.
type backend interface {
	// lock blocks until the backend lock is held.
	lock()

	// tryLock takes the lock if it is free and reports whether it did.
	// It never blocks.
	tryLock() bool

	// unlock releases the lock, waking at most one parked thread.
	unlock()

	// close frees OS resources, if the backend holds any. Callers must
	// ensure the lock is not held.
	close() error
}

// Lock word states shared by the futex and event backends. A lock is taken
// by moving unlocked -> locked; a waiter that finds it taken moves it to
// contended so the holder knows to issue a wake on unlock.
const (
	lockUnlocked  = 0
	lockLocked    = 1
	lockContended = 2
)
