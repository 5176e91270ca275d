// Package tern provides the thread-management core of a managed-code
// execution runtime.
//
// This library owns the mapping between native execution contexts and
// runtime-level threads, the owner-tracking mutex used to guard shared
// runtime state, and the process-wide registry of live threads.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	tern/            Root package with Runtime, Config and collaborator interfaces
//	├── thread/      Thread creation/attachment, stacks, mutexes, registry
//	├── engine/      wazero-backed managed-code execution engine
//	├── errors/      Structured error types for the recoverable paths
//	├── monitor/     Prometheus collector over a thread registry
//	└── cmd/threads  Diagnostic tool: spawn threads, watch the registry live
//
// # Quick Start
//
// Bring up the thread core and attach the calling thread:
//
//	if err := thread.Init(); err != nil {
//	    log.Fatal(err)
//	}
//
//	rt := tern.NewRuntime(tern.Config{})
//	list := thread.NewList()
//
//	self := thread.Attach(rt)
//	list.Register(self)
//	defer func() {
//	    list.Unregister(self)
//	    list.Shutdown()
//	    self.Detach()
//	}()
//
// Spawn a runtime-managed thread:
//
//	t := thread.Create(rt, func(t *thread.Thread) {
//	    list.Register(t)
//	    defer list.Unregister(t)
//	    // run managed code via t.Env()
//	})
//
// # Failure Model
//
// Invariant violations (double registration, unlock by a non-owner,
// teardown with live threads) and unrecoverable resource failures are
// fatal: they log and panic, never propagate as values. The only
// recoverable bring-up failure is thread.Init, which returns an error
// so embedders can abort cleanly before any thread exists.
//
// # Thread Safety
//
// The thread registry is safe for concurrent use; every mutation runs
// under its owning mutex. A Thread's state may be sampled by
// diagnostic readers at any time, but is otherwise mutated only by the
// thread itself or a cooperating subsystem.
package tern
