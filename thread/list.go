package thread

// List is the process-wide registry of live threads, guarded by one
// owning mutex for its entire lifetime. Startup and shutdown code
// register and unregister each thread exactly once, in that order.
type List struct {
	lock    *Mutex
	threads []*Thread
}

// NewList creates an empty registry.
func NewList() *List {
	return &List{lock: NewMutex("thread list lock")}
}

// Register inserts t. A thread must never appear twice; a duplicate is
// fatal.
func (l *List) Register(t *Thread) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.index(t) >= 0 {
		fatalf("thread list: %v registered twice", t)
	}
	l.threads = append(l.threads, t)
}

// Unregister removes t. Removing a thread that was never registered is
// fatal.
func (l *List) Unregister(t *Thread) {
	l.lock.Lock()
	defer l.lock.Unlock()
	i := l.index(t)
	if i < 0 {
		fatalf("thread list: unregister of unknown thread %v", t)
	}
	l.threads = append(l.threads[:i], l.threads[i+1:]...)
}

// Len returns the number of registered threads.
func (l *List) Len() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return len(l.threads)
}

// Snapshot returns the registered threads for diagnostic readers. The
// returned slice is a copy; the registry may change immediately after.
func (l *List) Snapshot() []*Thread {
	l.lock.Lock()
	defer l.lock.Unlock()
	out := make([]*Thread, len(l.threads))
	copy(out, l.threads)
	return out
}

// Shutdown tears the registry down. By this point every thread other
// than the caller must have unregistered and exited; the registry does
// not wait for stragglers, it asserts their absence. At most the
// calling thread may remain registered.
func (l *List) Shutdown() {
	l.lock.Lock()
	defer l.lock.Unlock()
	if n := len(l.threads); n > 1 {
		fatalf("thread list: shutdown with %d threads still registered", n)
	}
	if len(l.threads) == 1 && l.threads[0] != Current() {
		fatalf("thread list: shutdown while %v is still registered", l.threads[0])
	}
	l.threads = nil
}

// index returns t's position, or -1. Callers hold l.lock.
func (l *List) index(t *Thread) int {
	for i, existing := range l.threads {
		if existing == t {
			return i
		}
	}
	return -1
}
