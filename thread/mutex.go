package thread

import "sync"

// Mutex is a mutual-exclusion lock that records its current owner.
// The owner field is best-effort diagnostic state updated only
// adjacent to successful lock and unlock operations; the underlying
// lock, not the bookkeeping, provides the exclusion.
//
// Mutex is not reentrant. Locking a mutex the caller already holds
// deadlocks, per the underlying primitive's contract.
type Mutex struct {
	name string
	impl sync.Mutex

	// owner is written only while impl is held.
	owner *Thread
}

// NewMutex returns a mutex carrying name for diagnostics. The zero
// value of the underlying primitive needs no initialization, so
// creation cannot fail.
func NewMutex(name string) *Mutex {
	return &Mutex{name: name}
}

// Name returns the diagnostic name.
func (m *Mutex) Name() string { return m.name }

// Lock blocks until the lock is acquired and records the calling
// thread as owner.
func (m *Mutex) Lock() {
	m.impl.Lock()
	m.owner = Current()
}

// TryLock attempts non-blocking acquisition. It returns false without
// blocking if the lock is held by another party.
func (m *Mutex) TryLock() bool {
	if !m.impl.TryLock() {
		return false
	}
	m.owner = Current()
	return true
}

// Unlock releases the lock. The calling thread must be the recorded
// owner; a violation is a fatal correctness assertion, not a
// recoverable error.
func (m *Mutex) Unlock() {
	if cur := Current(); m.owner != cur {
		fatalf("mutex %q: unlock by %v, owner is %v", m.name, cur, m.owner)
	}
	m.owner = nil
	m.impl.Unlock()
}

// Owner returns the recorded owner. Meaningful only to the holder;
// other readers see a stale snapshot.
func (m *Mutex) Owner() *Thread { return m.owner }
