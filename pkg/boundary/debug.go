package boundary

// DebugMode controls whether contract violations at the boundary are
// reported with stack traces before trapping. When false, a violating call
// still panics but nothing is logged.
var DebugMode = true

// SetDebugMode enables or disables debug mode for the boundary.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

// LiveHandles returns the number of live handles per handle kind, for leak
// diagnostics. Hosts can snapshot it around a scene teardown to verify
// every issued handle was released.
func LiveHandles() map[string]int {
	return map[string]int{
		boolBindings.kind:    boolBindings.live(),
		numberBindings.kind:  numberBindings.live(),
		textBindings.kind:    textBindings.live(),
		boolComputeds.kind:   boolComputeds.live(),
		numberComputeds.kind: numberComputeds.live(),
		textComputeds.kind:   textComputeds.live(),
		guards.kind:          guards.live(),
		views.kind:           views.live(),
		actions.kind:         actions.live(),
		envs.kind:            envs.live(),
		texts.kind:           texts.live(),
	}
}
