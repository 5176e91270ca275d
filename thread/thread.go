package thread

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/ternvm/tern"
)

var nextID atomic.Uint64

// Thread is a runtime-level execution context bound to exactly one
// native context for its entire lifetime. A Thread must never outlive
// its native context and must never be registered twice.
type Thread struct {
	id  uint64 // stable logical id
	gid uint64 // native id, diagnostic

	state    atomic.Int32
	stack    *Stack
	env      *Env
	pending  tern.Object
	attached bool
}

// Create spawns a fresh native context running entry and returns its
// Thread. The context is detached: nothing joins it, its resources are
// reclaimed on exit. Stack reservation or spawn failure is fatal.
//
// Create returns once the new thread has published its identity, so
// the returned Thread already answers Current on its own context.
func Create(rt *tern.Runtime, entry func(*Thread)) *Thread {
	stack := newStack(rt.Config.StackSize)

	t := &Thread{
		id:    nextID.Add(1),
		stack: stack,
	}
	t.state.Store(int32(StateNew))
	if rt.InitCPU != nil {
		rt.InitCPU(stack.Base(), stack.Limit())
	}

	started := make(chan struct{})
	go t.run(rt, entry, started)
	<-started
	return t
}

// run is the post-spawn initialization entry point: it binds the
// context to its OS thread, publishes identity, and drives the
// New -> Runnable -> Terminated transitions around entry.
func (t *Thread) run(rt *tern.Runtime, entry func(*Thread), started chan struct{}) {
	runtime.LockOSThread()
	t.gid = goid()
	setCurrent(t)
	t.env = newEnv(t, rt)
	t.state.Store(int32(StateRunnable))

	defer func() {
		t.state.Store(int32(StateTerminated))
		t.env = nil
		clearCurrent(t)
	}()
	close(started)

	if entry != nil {
		entry(t)
	}
}

// Attach wraps the native context the caller is already running on
// (e.g. an embedder entering the runtime from outside) and returns its
// Thread, immediately Runnable. Attaching a context that already has a
// slot is fatal.
func Attach(rt *tern.Runtime) *Thread {
	t := &Thread{
		id:       nextID.Add(1),
		attached: true,
	}

	base, limit := attachStackBounds(rt.Config.StackSize)
	t.stack = &Stack{base: base, limit: limit}
	if rt.InitCPU != nil {
		rt.InitCPU(base, limit)
	}

	t.gid = goid()
	t.state.Store(int32(StateRunnable))
	setCurrent(t)
	t.env = newEnv(t, rt)

	Logger().Debug("thread attached",
		zap.Uint64("id", t.id),
		zap.Uint64("tid", t.gid))
	return t
}

// Detach unbinds an attached thread: the env is destroyed and the
// lookup slot cleared. Only the thread itself may detach, and only if
// it arrived via Attach; spawned threads detach on exit.
func (t *Thread) Detach() {
	if !t.attached {
		fatalf("detach of spawned thread %v", t)
	}
	if cur := Current(); cur != t {
		fatalf("detach of %v from wrong context (current is %v)", t, cur)
	}
	t.state.Store(int32(StateTerminated))
	t.env = nil
	clearCurrent(t)
}

// ID returns the stable logical id.
func (t *Thread) ID() uint64 { return t.id }

// NativeID returns the diagnostic native id.
func (t *Thread) NativeID() uint64 { return t.gid }

// State returns the current scheduling state.
func (t *Thread) State() State {
	return State(t.state.Load())
}

// SetState records a state transition. Callers must be the thread
// itself or a subsystem holding appropriate synchronization.
func (t *Thread) SetState(s State) {
	t.state.Store(int32(s))
}

// Stack returns the thread's stack region.
func (t *Thread) Stack() *Stack { return t.stack }

// Env returns the per-thread native-interface context, or nil once the
// thread has terminated.
func (t *Thread) Env() *Env { return t.env }

// PendingException returns the exception attached to this thread, or
// nil.
func (t *Thread) PendingException() tern.Object { return t.pending }

// SetPendingException attaches an exception object. An outstanding
// exception should be consumed before the next is attached; replacing
// one is logged rather than rejected.
func (t *Thread) SetPendingException(o tern.Object) {
	if t.pending != nil && o != nil {
		Logger().Warn("replacing pending exception", zap.Uint64("id", t.id))
	}
	t.pending = o
}

// ClearPendingException removes the pending exception. Called by the
// consuming subsystem once the exception has been dispatched.
func (t *Thread) ClearPendingException() {
	t.pending = nil
}

func (t *Thread) String() string {
	if t == nil {
		return "Thread[nil]"
	}
	return fmt.Sprintf("Thread[id=%d,tid=%d,state=%s]", t.id, t.gid, t.State())
}
