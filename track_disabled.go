//go:build critsec_notrack

package critsec

// OwnerTracking reports whether this build carries owner tracking.
//
// This build was made with the critsec_notrack tag: HeldByCurrentGoroutine
// always reports unknown, and misuse of Release is undefined behavior
// rather than a panic.
const OwnerTracking = false
