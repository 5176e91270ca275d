// Package thread implements the thread-management core of the runtime.
//
// A Thread is a runtime-level execution context bound to exactly one
// native execution context for its entire lifetime. Threads are
// produced either by Create, which spawns a fresh context on its own
// OS thread, or by Attach, which wraps the context the caller is
// already running on (an embedder entering the runtime from outside).
//
// The package also provides the two synchronization pieces the rest of
// the runtime builds on: Mutex, a mutual-exclusion lock with explicit
// owner bookkeeping, and List, the process-wide registry of live
// threads with shutdown invariants.
//
// Init must run exactly once before any thread is created or attached;
// it establishes the current-thread lookup that backs Current.
package thread
