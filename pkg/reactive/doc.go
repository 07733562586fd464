// Package reactive provides the observable value model of the Ripple core.
//
// This package defines the foundational reactive types: Binding, Computed,
// Watcher, and Guard. Host renderers read values, subscribe to changes, and
// hold Guards to keep subscriptions alive.
//
// # Bindings
//
// Binding is a mutable, observable slot holding one value:
//
//	count := reactive.NewBinding(0)
//	guard := count.Watch(reactive.Watcher[int]{
//	    Notify: func(v int, c reactive.Change) { fmt.Println("now", v) },
//	})
//	count.Set(1) // watcher runs before Set returns
//	guard.Release()
//
// Set replaces the value and then synchronously invokes every registered
// watcher, in registration order, with the new value and the call's Change
// metadata. Watchers are never invoked with the current value at
// registration time; only future changes fire.
//
// # Computed values
//
// Computed exposes the same read/subscribe contract but has no Set. It wraps
// a constant, a pure function, or a derivation over other observable values:
//
//	label := reactive.Map(count, func(n int) string {
//	    return fmt.Sprintf("%d items", n)
//	})
//
// A Computed's watchers fire only when a recomputation yields a value that
// differs from the last observed one, so writing a binding back to its
// current value does not cascade.
//
// # Guards
//
// Every Watch call returns a Guard. Holding the Guard is the sole mechanism
// keeping the subscription active; releasing it cancels the watcher exactly
// once. Release is idempotent, so boundary callers that resend a stale
// handle cannot double-free the watcher's context.
//
// # Threading
//
// All operations are safe to call from any goroutine. A value is never
// observed mid-mutation: watchers see only the fully written new value. The
// internal lock is not held while watcher callbacks run, so a watcher may
// re-enter Set on the same binding without deadlocking.
package reactive
