package boundary

import "github.com/go-ripple/ripple/pkg/app"

var (
	actions = newArena[*app.Action]("action")
	envs    = newArena[app.Environment]("environment")
)

// NewEnvironment creates an empty environment and issues its handle.
func NewEnvironment() Handle {
	return envs.put(app.NewEnvironment())
}

// ExportEnvironment issues a handle for a native-side environment,
// transferring that reference to the boundary.
func ExportEnvironment(env app.Environment) Handle {
	return envs.put(env)
}

// EnvironmentClone issues a new handle sharing the same underlying state.
func EnvironmentClone(h Handle) Handle {
	return envs.put(mustGet(envs, "boundary.EnvironmentClone", h).Clone())
}

// EnvironmentRelease drops the handle's reference. The shared state lives
// until the last clone is released. Must be called exactly once per handle.
func EnvironmentRelease(h Handle) {
	mustTake(envs, "boundary.EnvironmentRelease", h).Release()
}

// ExportAction issues a handle for a native-side action, transferring
// ownership to the boundary caller.
func ExportAction(a *app.Action) Handle {
	if a == nil {
		return NilHandle
	}
	return actions.put(a)
}

// ActionCall invokes the action with a borrowed reference to the
// environment. No value is returned; effects are observed only through
// subsequent reads or watcher notifications.
func ActionCall(action, env Handle) {
	a := mustGet(actions, "boundary.ActionCall", action)
	e := mustGet(envs, "boundary.ActionCall", env)
	a.Call(e)
}

// ActionRelease destroys the action. Must be called exactly once.
func ActionRelease(h Handle) {
	mustTake(actions, "boundary.ActionRelease", h).Release()
}
