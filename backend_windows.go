//go:build windows

package critsec

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sys/windows"
)

// eventBackend uses the same three-state lock word as the futex backend but
// parks waiters on an auto-reset kernel event. SetEvent releases exactly one
// waiter, and a signal delivered before the wait begins is not lost: the
// event stays signaled until some wait consumes it.
type eventBackend struct {
	state uint32
	ev    windows.Handle
}

func newBackend() backend {
	ev, err := windows.CreateEvent(nil, 0, 0, nil)
	if err != nil {
		panic(fmt.Sprintf("critsec: CreateEvent failed: %v", err))
	}
	return &eventBackend{ev: ev}
}

func (b *eventBackend) lock() {
	if atomic.CompareAndSwapUint32(&b.state, lockUnlocked, lockLocked) {
		return
	}
	for atomic.SwapUint32(&b.state, lockContended) != lockUnlocked {
		ret, err := windows.WaitForSingleObject(b.ev, windows.INFINITE)
		if err != nil || ret != windows.WAIT_OBJECT_0 {
			panic(fmt.Sprintf("critsec: WaitForSingleObject failed: ret=%#x err=%v", ret, err))
		}
	}
}

func (b *eventBackend) tryLock() bool {
	return atomic.CompareAndSwapUint32(&b.state, lockUnlocked, lockLocked)
}

func (b *eventBackend) unlock() {
	if atomic.SwapUint32(&b.state, lockUnlocked) == lockContended {
		if err := windows.SetEvent(b.ev); err != nil {
			panic(fmt.Sprintf("critsec: SetEvent failed: %v", err))
		}
	}
}

func (b *eventBackend) close() error {
	return windows.CloseHandle(b.ev)
}
