package thread

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/ternvm/tern/errors"
)

// The current-thread lookup stands in for a per-thread TLS slot: a
// process-wide map from native (goroutine) id to Thread, written
// exactly once at create/attach time and read by the owning thread
// through Current.
type lookupMap struct {
	mu      sync.RWMutex
	threads map[uint64]*Thread
}

var lookup atomic.Pointer[lookupMap]

// Init establishes the current-thread lookup. It must run exactly once,
// before any thread is created or attached. This is the one recoverable
// failure in the core: it happens before any thread depends on the
// slot, so bring-up can still be aborted cleanly.
func Init() error {
	m := &lookupMap{threads: make(map[uint64]*Thread)}

	// Double-check that the initializing context has no slot yet.
	if _, occupied := m.threads[goid()]; occupied {
		Logger().Warn("newly-created lookup slot is not empty")
		return errors.InvalidInput(errors.PhaseInit, "lookup slot not empty")
	}

	if !lookup.CompareAndSwap(nil, m) {
		Logger().Warn("current-thread lookup initialized twice")
		return errors.AlreadyInitialized("current-thread lookup")
	}
	return nil
}

func mustLookup() *lookupMap {
	m := lookup.Load()
	if m == nil {
		fatalf("current-thread lookup used before Init")
	}
	return m
}

// Current returns the calling context's Thread, or nil if the caller
// was never attached. Only "who am I" queries are supported; reading
// another thread's slot is not.
func Current() *Thread {
	m := mustLookup()
	m.mu.RLock()
	t := m.threads[goid()]
	m.mu.RUnlock()
	return t
}

// setCurrent publishes t under its native id. A thread that believes
// it is attached must never find its slot stale or occupied, so any
// collision is fatal.
func setCurrent(t *Thread) {
	m := mustLookup()
	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, occupied := m.threads[t.gid]; occupied {
		fatalf("lookup slot for native id %d already holds %v", t.gid, prev)
	}
	m.threads[t.gid] = t
}

// clearCurrent removes t's slot on the way out. The log line is the
// exit hook: it records every context leaving the runtime, expected or
// not.
func clearCurrent(t *Thread) {
	m := mustLookup()
	m.mu.Lock()
	delete(m.threads, t.gid)
	m.mu.Unlock()
	Logger().Debug("thread exit",
		zap.Uint64("id", t.id),
		zap.Uint64("tid", t.gid),
		zap.Stringer("state", t.State()))
}

// goid recovers the calling goroutine's id from the runtime.Stack
// header ("goroutine N [...").
func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := strings.Fields(strings.TrimPrefix(string(buf[:n]), "goroutine "))
	if len(fields) == 0 {
		return 0
	}
	id, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0
	}
	return id
}
