//go:build critsec_lockedatomics

package critsec

// LockedAtomics reports whether the Atomic* functions run under
// FallbackLock instead of hardware intrinsics in this build.
//
// This build was made with the critsec_lockedatomics tag: every Atomic*
// call takes the process-wide FallbackLock, so unrelated locations contend
// with each other. See FallbackLock for the cost.
const LockedAtomics = true

// AtomicGet reads *loc under FallbackLock.
func AtomicGet(loc *int64) int64 {
	return lockedGet(loc)
}

// AtomicSet stores v into *loc under FallbackLock and returns the value
// that was there immediately before.
func AtomicSet(loc *int64, v int64) int64 {
	return lockedSet(loc, v)
}

// AtomicIncrement adds one to *loc under FallbackLock and returns the new
// value.
func AtomicIncrement(loc *int64) int64 {
	return lockedIncrement(loc)
}

// AtomicDecrement subtracts one from *loc under FallbackLock and returns
// the new value.
func AtomicDecrement(loc *int64) int64 {
	return lockedDecrement(loc)
}
