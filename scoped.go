package critsec

// Do runs fn while holding the lock. The lock is released on every exit
// path: normal return, early return inside fn, or a panic propagating out
// of fn. It is the scoped-acquisition form of Acquire/Release and should be
// preferred wherever the critical region fits in a closure.
func (cs *CriticalSection) Do(fn func()) {
	cs.Acquire()
	defer cs.Release()
	fn()
}

// DoErr runs fn while holding the lock and returns fn's error. As with Do,
// the lock is released exactly once regardless of how fn exits.
func (cs *CriticalSection) DoErr(fn func() error) error {
	cs.Acquire()
	defer cs.Release()
	return fn()
}
