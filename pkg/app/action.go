package app

import (
	"sync/atomic"

	"github.com/go-ripple/ripple/pkg/errors"
)

// Action is an owned, opaque invocable fired by host interaction (a button
// tap, a link activation). Calling it may trigger arbitrary side effects,
// including binding writes that synchronously fan out to watchers; no value
// is returned across the boundary.
//
// An action is destroyed exactly once via Release. Release is idempotent;
// Call after Release is a no-op.
type Action struct {
	fn       func(Environment)
	released atomic.Bool
}

// NewAction wraps fn as an owned action.
func NewAction(fn func(Environment)) *Action {
	return &Action{fn: fn}
}

// Call invokes the action with a borrowed reference to env. A panic inside
// the action is reported and then re-raised: internal failures are fatal
// rather than delivered across the boundary as values.
func (a *Action) Call(env Environment) {
	if a == nil || a.released.Load() || a.fn == nil {
		return
	}
	defer errors.RecoverFatal("app.Action.Call")
	a.fn(env)
}

// Release destroys the action. Further calls to Call or Release do nothing.
func (a *Action) Release() {
	if a == nil {
		return
	}
	if a.released.CompareAndSwap(false, true) {
		a.fn = nil
	}
}
