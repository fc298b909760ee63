//go:build !linux && !windows

package critsec

// chanBackend is the portable lock: a single token in a buffered channel.
// Holding the token is holding the lock. The Go runtime's channel wakeup
// order stands in for the kernel's, which is all the fairness the lock
// promises anywhere.
type chanBackend struct {
	tok chan struct{}
}

func newBackend() backend {
	b := &chanBackend{tok: make(chan struct{}, 1)}
	b.tok <- struct{}{}
	return b
}

func (b *chanBackend) lock() {
	<-b.tok
}

func (b *chanBackend) tryLock() bool {
	select {
	case <-b.tok:
		return true
	default:
		return false
	}
}

func (b *chanBackend) unlock() {
	b.tok <- struct{}{}
}

func (b *chanBackend) close() error {
	return nil
}
