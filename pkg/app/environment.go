// Package app provides the ambient Environment and the Action invocable
// used to dispatch host-triggered side effects through the core.
package app

import (
	"sync"
	"sync/atomic"
)

// Environment is a shareable ambient context threaded into action
// invocation. Clone returns a handle to the same underlying state, not a
// deep copy; the state lives until the last clone is released.
type Environment struct {
	state *envState
}

type envState struct {
	mu     sync.RWMutex
	values map[string]any
	refs   atomic.Int64
}

// NewEnvironment creates an empty environment with one reference.
func NewEnvironment() Environment {
	s := &envState{values: make(map[string]any)}
	s.refs.Store(1)
	return Environment{state: s}
}

// Clone returns a new handle sharing the same underlying state.
func (e Environment) Clone() Environment {
	if e.state != nil {
		e.state.refs.Add(1)
	}
	return e
}

// Release drops one reference. The environment's state is reclaimed when
// the count reaches zero; using any clone afterwards is a contract
// violation.
func (e Environment) Release() {
	if e.state != nil {
		e.state.refs.Add(-1)
	}
}

// Refs returns the current reference count, for diagnostics. A zero
// Environment reports 0.
func (e Environment) Refs() int64 {
	if e.state == nil {
		return 0
	}
	return e.state.refs.Load()
}

// Key names one typed slot in an Environment.
type Key[T any] struct {
	name string
}

// NewKey creates a key under the given name. Two keys with the same name
// address the same slot.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// Set stores value under key, visible to every clone of env.
func Set[T any](env Environment, key Key[T], value T) {
	env.state.mu.Lock()
	defer env.state.mu.Unlock()
	env.state.values[key.name] = value
}

// Get returns the value stored under key, or the zero value and false if
// the slot is unset or holds a different type.
func Get[T any](env Environment, key Key[T]) (T, bool) {
	env.state.mu.RLock()
	defer env.state.mu.RUnlock()
	v, ok := env.state.values[key.name].(T)
	return v, ok
}
