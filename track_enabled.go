//go:build !critsec_notrack

package critsec

// OwnerTracking reports whether this build carries owner tracking.
//
// When true (the default), HeldByCurrentGoroutine returns real data and
// releasing a lock from a goroutine that does not own it panics. Build with
// -tags critsec_notrack to compile the checks out.
const OwnerTracking = true
