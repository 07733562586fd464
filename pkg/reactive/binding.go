package reactive

import "sync"

// Observable is the type-erased subscription surface of a Binding or
// Computed, used to declare the dependencies of a derived computation.
type Observable interface {
	subscribe(onChange func(Change)) *Guard
}

// Value is the read/subscribe contract shared by Binding and Computed.
type Value[T any] interface {
	Observable

	// Read returns the current value. Safe from any goroutine.
	Read() T
	// Watch registers a watcher and returns its cancellation Guard.
	// The watcher is not invoked with the current value; only future
	// changes fire it.
	Watch(w Watcher[T]) *Guard
}

// Binding is a mutable, observable slot holding one value of type T.
//
// Set is the sole mutation path: it replaces the stored value and then
// synchronously fans out to every registered watcher before returning.
// Concurrent Sets from different goroutines are last-write-wins; each
// individual Set delivers its own fully written value, never a torn one.
//
// The owner that created the binding disposes it with Dispose; disposal
// tears down any still-registered watchers.
type Binding[T any] struct {
	mu       sync.Mutex
	value    T
	watchers watcherList[T]
}

// NewBinding creates a binding holding initial.
func NewBinding[T any](initial T) *Binding[T] {
	return &Binding[T]{value: initial}
}

// Read returns the current value.
func (b *Binding[T]) Read() T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// Set replaces the value and synchronously notifies all watchers with a
// zero Change.
func (b *Binding[T]) Set(value T) {
	b.SetWith(value, Change{})
}

// SetWith replaces the value and synchronously notifies all watchers with
// the given change metadata, in registration order. It returns only after
// every watcher has run.
//
// The value lock is dropped before fan-out, so a watcher may re-enter Set
// on this binding without deadlocking.
func (b *Binding[T]) SetWith(value T, change Change) {
	b.mu.Lock()
	b.value = value
	b.mu.Unlock()
	b.watchers.notify(value, change)
}

// Watch registers a watcher for future changes and returns its Guard.
func (b *Binding[T]) Watch(w Watcher[T]) *Guard {
	return b.watchers.add(w)
}

// OnChange registers a plain notify function, ignoring change metadata.
func (b *Binding[T]) OnChange(fn func(T)) *Guard {
	return b.Watch(Watcher[T]{Notify: func(v T, _ Change) { fn(v) }})
}

// WatcherCount returns the number of active registrations, for diagnostics.
func (b *Binding[T]) WatcherCount() int {
	return b.watchers.count()
}

// Dispose tears down the binding's watcher registry, running each
// registered watcher's release function exactly once. Guards released
// afterwards are no-ops. Reading or setting a disposed binding is a
// contract violation.
func (b *Binding[T]) Dispose() {
	b.watchers.teardown()
}

func (b *Binding[T]) subscribe(onChange func(Change)) *Guard {
	return b.Watch(Watcher[T]{Notify: func(_ T, c Change) { onChange(c) }})
}
