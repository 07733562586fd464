// Package errors provides structured error reporting for the Ripple core.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindBoundary indicates a violation of the handle contract at the
	// foreign-function boundary (stale token, double release).
	KindBoundary
	// KindWatcher indicates a failure inside a watcher callback.
	KindWatcher
	// KindRecompute indicates a failure while evaluating a computation.
	KindRecompute
	// KindConfig indicates a configuration error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindBoundary:
		return "boundary"
	case KindWatcher:
		return "watcher"
	case KindRecompute:
		return "recompute"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// RippleError represents a structured error in the Ripple core.
type RippleError struct {
	// Op is the operation that failed (e.g., "boundary.BindingRelease").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Handle is the boundary token involved, if applicable.
	Handle uint64
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RippleError) Error() string {
	if e.Handle != 0 {
		return fmt.Sprintf("%s [%s] handle=%#x: %v", e.Op, e.Kind, e.Handle, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RippleError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "reactive.Binding.Set").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// StaleHandleError reports a boundary operation on a released or never-issued
// handle token. It is only produced in debug mode; in release mode stale
// tokens are a documented precondition violation.
type StaleHandleError struct {
	// Op is the boundary operation that received the token.
	Op string
	// Handle is the offending token.
	Handle uint64
	// HandleKind is the expected handle kind name (e.g., "binding.bool").
	HandleKind string
}

func (e *StaleHandleError) Error() string {
	return fmt.Sprintf("%s: stale or foreign %s handle %#x", e.Op, e.HandleKind, e.Handle)
}

// ErrorHandler receives errors reported by the Ripple core.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *RippleError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
