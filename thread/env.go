package thread

import (
	"context"

	"github.com/ternvm/tern"
	"github.com/ternvm/tern/engine"
	"github.com/ternvm/tern/errors"
)

// Env is the per-thread native-interface context: the handle host code
// running on a thread uses to call into managed code. It is created at
// create/attach time and destroyed with the thread. Env is owned by
// its thread and must only be used from that thread's context.
type Env struct {
	thread *Thread
	strict bool
	exec   *engine.Engine
}

func newEnv(t *Thread, rt *tern.Runtime) *Env {
	return &Env{
		thread: t,
		strict: rt.Config.StrictChecks,
		exec:   rt.Exec,
	}
}

// Thread returns the owning thread.
func (e *Env) Thread() *Thread { return e.thread }

// Strict reports whether per-call validation is enabled.
func (e *Env) Strict() bool { return e.strict }

// Call executes an exported function of a loaded module on this
// thread. The thread is Runnable for the duration of the managed call
// and returns to its previous state afterwards.
//
// With strict checking enabled, using an Env from a context other than
// its owning thread is a fatal violation.
func (e *Env) Call(ctx context.Context, mod *engine.Module, fn string, args ...uint64) ([]uint64, error) {
	if e.strict {
		if cur := Current(); cur != e.thread {
			fatalf("env of %v used from wrong context (current is %v)", e.thread, cur)
		}
	}
	if e.exec == nil {
		return nil, errors.NotInitialized(errors.PhaseExec, "execution engine")
	}
	if mod == nil {
		return nil, errors.InvalidInput(errors.PhaseExec, "nil module")
	}

	prev := e.thread.State()
	e.thread.SetState(StateRunnable)
	defer e.thread.SetState(prev)

	return mod.Call(ctx, fn, args...)
}
