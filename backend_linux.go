//go:build linux

package critsec

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Futex operation codes, from <linux/futex.h>. x/sys/unix exports the
// syscall number but not the operations, so they are defined here. The
// private flag restricts queue matching to this process, which saves the
// kernel a page lookup.
const (
	futexWaitPrivate = 0 | futexPrivateFlag
	futexWakePrivate = 1 | futexPrivateFlag

	futexPrivateFlag = 128
)

// futexBackend parks waiters directly on the lock word with the futex
// syscall. The word holds lockUnlocked, lockLocked, or lockContended;
// unlock only enters the kernel when a waiter may be parked.
type futexBackend struct {
	state uint32
}

func newBackend() backend {
	return &futexBackend{}
}

func (b *futexBackend) lock() {
	// Fast path: uncontended.
	if atomic.CompareAndSwapUint32(&b.state, lockUnlocked, lockLocked) {
		return
	}

	// Mark the lock contended and park until the holder hands it over.
	// Swap rather than CAS: if the previous value was unlocked we now own
	// the lock (in the contended state, which at worst costs the next
	// unlock a spurious wake).
	for atomic.SwapUint32(&b.state, lockContended) != lockUnlocked {
		b.wait(lockContended)
	}
}

func (b *futexBackend) tryLock() bool {
	return atomic.CompareAndSwapUint32(&b.state, lockUnlocked, lockLocked)
}

func (b *futexBackend) unlock() {
	if atomic.SwapUint32(&b.state, lockUnlocked) == lockContended {
		b.wake()
	}
}

func (b *futexBackend) close() error {
	// The futex has no kernel-side object to free.
	return nil
}

// wait parks the calling thread until the lock word changes from val or the
// kernel wakes it. Spurious returns are fine; the caller loops.
func (b *futexBackend) wait(val uint32) {
	_, _, errno := unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(&b.state)),
		futexWaitPrivate,
		uintptr(val),
		0, 0, 0,
	)
	switch errno {
	case 0, unix.EAGAIN, unix.EINTR:
		// EAGAIN: the word already changed. EINTR: signal; retry.
	default:
		panic(fmt.Sprintf("critsec: futex wait failed: %v", errno))
	}
}

// wake releases one parked thread, if any.
func (b *futexBackend) wake() {
	_, _, errno := unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(&b.state)),
		futexWakePrivate,
		1,
		0, 0, 0,
	)
	if errno != 0 {
		panic(fmt.Sprintf("critsec: futex wake failed: %v", errno))
	}
}
