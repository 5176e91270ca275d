package tern

import (
	"github.com/ternvm/tern/engine"
)

// DefaultStackSize is the stack reservation for spawned threads when
// the embedder does not configure one.
const DefaultStackSize = 1 << 20

// Config holds process-wide runtime configuration consumed by the
// thread core.
type Config struct {
	// StackSize is the stack reservation, in bytes, for each spawned
	// thread. Rounded up to a whole number of pages.
	StackSize int

	// StrictChecks enables per-call validation in the native-interface
	// context handed to attached threads.
	StrictChecks bool
}

// CPUInit is the per-architecture thread-context initialization hook.
// The thread core invokes it with the new thread's stack bounds before
// the thread runs any managed code. Its internals are opaque to this
// library.
type CPUInit func(stackBase, stackLimit uintptr)

// Object is an opaque reference to a managed heap object. Its layout
// and lifetime belong to the object model.
type Object interface{}

// Method identifies a resolved managed method. Invocation is the
// interpreter's concern, not this library's.
type Method interface {
	Name() string
	Signature() string
}

// Class is a resolved managed class.
type Class interface {
	// Descriptor returns the class descriptor, e.g. "Ljava/lang/Error;".
	Descriptor() string

	// NewInstance allocates an uninitialized instance of the class.
	NewInstance() (Object, error)

	// FindConstructor locates a constructor by signature.
	FindConstructor(signature string) (Method, bool)
}

// ObjectModel is the collaborator surface the thread core uses to
// materialize managed exception objects.
type ObjectModel interface {
	// FindClass resolves a class by name.
	FindClass(name string) (Class, error)

	// AllocString materializes s as a managed string object.
	AllocString(s string) (Object, error)
}

// Runtime carries the process-wide collaborators the thread core
// depends on. Exactly one Runtime exists per embedding process.
type Runtime struct {
	Config Config

	// Objects resolves classes and allocates objects for the exception
	// attachment path. Required only if exceptions are thrown.
	Objects ObjectModel

	// Exec executes managed code for threads. Optional; threads of a
	// runtime without an engine cannot call into managed code.
	Exec *engine.Engine

	// InitCPU is the opaque per-architecture initialization hook, run
	// once per thread at create/attach time. Optional.
	InitCPU CPUInit
}

// NewRuntime returns a Runtime with defaults applied to cfg.
func NewRuntime(cfg Config) *Runtime {
	if cfg.StackSize <= 0 {
		cfg.StackSize = DefaultStackSize
	}
	return &Runtime{Config: cfg}
}
