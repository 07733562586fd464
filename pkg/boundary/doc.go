// Package boundary is the foreign-function surface of the Ripple core.
//
// Every object that crosses to a host (views, bindings, computed values,
// guards, actions, environments, owned text) is addressed by an opaque
// 64-bit Handle: a slot index and generation counter into an internal
// arena, never a raw address. Exactly one release operation per handle
// kind reclaims it and must be called exactly once; read, write, and watch
// operations borrow the handle and never free it.
//
// # Contract violations
//
// Operating on a released or never-issued handle, extracting a view as the
// wrong kind, or slicing text off a UTF-8 boundary are contract violations,
// not recoverable errors. The boundary favors zero-cost dispatch, so there
// is no checked error channel; callers enforce preconditions themselves.
// The generation counter makes stale tokens detectable: a violating call
// panics, and in debug mode it is first reported through pkg/errors with a
// captured stack.
//
// A few degenerate cases are defined instead of violating: TextRefCount on
// the nil handle returns -1, and TextContains involving a nil handle
// returns false.
//
// # Watchers
//
// Watcher registration passes a triple of opaque context, invoke function,
// and context release function. The registry owns the context from
// registration until cancellation, at which point the release function
// runs exactly once. Registration returns a guard Handle; GuardRelease
// cancels idempotently, so a host that resends a stale guard cannot
// double-free the context.
package boundary
