// Package errors provides structured error types for the tern runtime core.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). Most of the thread core treats failure as fatal and
// panics; this package covers the paths that report errors as values:
// lookup initialization, engine loading/execution, and object-model
// collaborator calls.
//
//	err := errors.NotFound(errors.PhaseExec, "function", "main")
//	err := errors.Load("instantiate module", cause)
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
