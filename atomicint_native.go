//go:build !critsec_lockedatomics

package critsec

import "sync/atomic"

// LockedAtomics reports whether the Atomic* functions run under
// FallbackLock instead of hardware intrinsics in this build.
const LockedAtomics = false

// AtomicGet atomically reads *loc.
//
// On 32-bit targets loc must be 64-bit aligned, the same contract as
// sync/atomic.
func AtomicGet(loc *int64) int64 {
	return atomic.LoadInt64(loc)
}

// AtomicSet atomically stores v into *loc and returns the value that was
// there immediately before: an atomic exchange.
func AtomicSet(loc *int64, v int64) int64 {
	return atomic.SwapInt64(loc, v)
}

// AtomicIncrement atomically adds one to *loc and returns the new value.
func AtomicIncrement(loc *int64) int64 {
	return atomic.AddInt64(loc, 1)
}

// AtomicDecrement atomically subtracts one from *loc and returns the new
// value.
func AtomicDecrement(loc *int64) int64 {
	return atomic.AddInt64(loc, -1)
}
