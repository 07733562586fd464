package reactive

import (
	"reflect"
	"sync"
)

// Computed is a read-only, possibly derived observable value.
//
// Read evaluates the wrapped function against the current state of its
// dependencies, so a result is never staler than the latest Set on any
// binding it reads. Watchers fire only when a recomputation yields a value
// that differs from the last observed one, which keeps writes of an
// unchanged value from cascading through derivation chains.
//
// There is no Set; Computed values change only through their dependencies.
type Computed[T any] struct {
	compute func() T
	equal   func(a, b T) bool
	deps    []Observable

	mu       sync.Mutex
	last     T
	hasLast  bool
	watching bool
	depGuard []*Guard

	watchers watcherList[T]
}

// NewComputed creates a computed value over the given compute function.
// deps lists the observable values the function reads; change notification
// is driven by them. Values are compared with reflect.DeepEqual; use
// NewComputedEqual for a custom comparison.
func NewComputed[T any](compute func() T, deps ...Observable) *Computed[T] {
	return NewComputedEqual(compute, func(a, b T) bool {
		return reflect.DeepEqual(a, b)
	}, deps...)
}

// NewComputedEqual is NewComputed with an explicit equality function.
func NewComputedEqual[T any](compute func() T, equal func(a, b T) bool, deps ...Observable) *Computed[T] {
	return &Computed[T]{compute: compute, equal: equal, deps: deps}
}

// Constant wraps a fixed value in the Computed contract. Its watchers
// never fire.
func Constant[T any](value T) *Computed[T] {
	return NewComputed(func() T { return value })
}

// Map derives a computed value from one observable source.
func Map[A, B any](src Value[A], f func(A) B) *Computed[B] {
	return NewComputed(func() B { return f(src.Read()) }, src)
}

// Map2 derives a computed value from two observable sources.
func Map2[A, B, C any](a Value[A], b Value[B], f func(A, B) C) *Computed[C] {
	return NewComputed(func() C { return f(a.Read(), b.Read()) }, a, b)
}

// Read evaluates and returns the current value.
func (c *Computed[T]) Read() T {
	return c.compute()
}

// Watch registers a watcher fired whenever a recomputation produces a value
// different from the last observed one.
func (c *Computed[T]) Watch(w Watcher[T]) *Guard {
	c.ensureWatching()
	return c.watchers.add(w)
}

// OnChange registers a plain notify function, ignoring change metadata.
func (c *Computed[T]) OnChange(fn func(T)) *Guard {
	return c.Watch(Watcher[T]{Notify: func(v T, _ Change) { fn(v) }})
}

// WatcherCount returns the number of active registrations, for diagnostics.
func (c *Computed[T]) WatcherCount() int {
	return c.watchers.count()
}

// Dispose unsubscribes from all dependencies and tears down the watcher
// registry, running each registered watcher's release exactly once.
func (c *Computed[T]) Dispose() {
	c.mu.Lock()
	guards := c.depGuard
	c.depGuard = nil
	c.watching = false
	c.mu.Unlock()

	for _, g := range guards {
		g.Release()
	}
	c.watchers.teardown()
}

func (c *Computed[T]) subscribe(onChange func(Change)) *Guard {
	return c.Watch(Watcher[T]{Notify: func(_ T, ch Change) { onChange(ch) }})
}

// ensureWatching subscribes to the dependencies on first Watch and primes
// the last-observed baseline so a later write of the same value is not
// reported as a change.
func (c *Computed[T]) ensureWatching() {
	c.mu.Lock()
	if c.watching || len(c.deps) == 0 {
		c.mu.Unlock()
		return
	}
	c.watching = true
	c.mu.Unlock()

	baseline := c.compute()
	c.mu.Lock()
	c.last = baseline
	c.hasLast = true
	c.mu.Unlock()

	for _, dep := range c.deps {
		g := dep.subscribe(c.depChanged)
		c.mu.Lock()
		c.depGuard = append(c.depGuard, g)
		c.mu.Unlock()
	}
}

// depChanged recomputes after a dependency change and fans out only when
// the result differs from the last observed value. The lock is dropped
// before notification so watchers may re-enter freely.
func (c *Computed[T]) depChanged(change Change) {
	value := c.compute()

	c.mu.Lock()
	if c.hasLast && c.equal(c.last, value) {
		c.mu.Unlock()
		return
	}
	c.last = value
	c.hasLast = true
	c.mu.Unlock()

	c.watchers.notify(value, change)
}
