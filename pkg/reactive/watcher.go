package reactive

import (
	"sync"
	"sync/atomic"
)

// Change carries call-scoped metadata delivered to watchers with each
// new value.
type Change struct {
	// Animated marks the change as one the renderer should animate.
	Animated bool
	// AnimationDisabled suppresses animation even when Animated is set.
	AnimationDisabled bool
}

// Watcher receives value-change notifications from a Binding or Computed.
//
// Ownership of anything captured by the watcher passes to the registry on
// Watch; Release is invoked exactly once, on Guard release or on registry
// teardown, and frees those captures.
type Watcher[T any] struct {
	// Notify is invoked with each new value and the change metadata.
	Notify func(value T, change Change)
	// Release frees resources captured by the watcher. Optional.
	Release func()
}

// Guard is the owning cancellation handle for one watcher registration.
// Releasing it deregisters the watcher; the zero-value released flag makes
// double release a no-op rather than a double free.
type Guard struct {
	released atomic.Bool
	cancel   func()
}

// Release cancels the guarded watcher registration. The first call runs the
// watcher's release function; subsequent calls do nothing. Safe on nil.
func (g *Guard) Release() {
	if g == nil {
		return
	}
	if !g.released.CompareAndSwap(false, true) {
		return
	}
	if g.cancel != nil {
		g.cancel()
	}
}

// Released reports whether the guard has been released.
func (g *Guard) Released() bool {
	return g == nil || g.released.Load()
}

// watcherEntry is one registration in a watcherList. The done flag is the
// one-shot consumption guard: the watcher's Release runs exactly once no
// matter how cancellation and teardown race.
type watcherEntry[T any] struct {
	id   uint64
	w    Watcher[T]
	done atomic.Bool
}

// cancel marks the entry consumed and runs its release function.
// Returns false if the entry was already consumed.
func (e *watcherEntry[T]) cancel() bool {
	if !e.done.CompareAndSwap(false, true) {
		return false
	}
	if e.w.Release != nil {
		e.w.Release()
	}
	return true
}

// watcherList is the insertion-ordered registration table shared by Binding
// and Computed. The mutex serializes add/remove/teardown against snapshot,
// but is never held while callbacks run.
type watcherList[T any] struct {
	mu      sync.Mutex
	entries []*watcherEntry[T]
	nextID  uint64
	torn    bool
}

// add registers a watcher and returns its Guard.
// After teardown the watcher's release runs immediately and the returned
// Guard is already spent.
func (l *watcherList[T]) add(w Watcher[T]) *Guard {
	l.mu.Lock()
	if l.torn {
		l.mu.Unlock()
		e := &watcherEntry[T]{w: w}
		e.cancel()
		g := &Guard{}
		g.released.Store(true)
		return g
	}
	l.nextID++
	e := &watcherEntry[T]{id: l.nextID, w: w}
	l.entries = append(l.entries, e)
	l.mu.Unlock()

	return &Guard{cancel: func() {
		if e.cancel() {
			l.remove(e.id)
		}
	}}
}

// remove drops the entry with the given id from the table.
func (l *watcherList[T]) remove(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// snapshot returns the current registrations in registration order.
func (l *watcherList[T]) snapshot() []*watcherEntry[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*watcherEntry[T], len(l.entries))
	copy(out, l.entries)
	return out
}

// notify invokes every currently registered watcher with value and change,
// in registration order. Entries cancelled before their turn are skipped.
func (l *watcherList[T]) notify(value T, change Change) {
	for _, e := range l.snapshot() {
		if e.done.Load() {
			continue
		}
		if e.w.Notify != nil {
			e.w.Notify(value, change)
		}
	}
}

// teardown cancels every registration and runs each release exactly once.
// Guards released afterwards become no-ops.
func (l *watcherList[T]) teardown() {
	l.mu.Lock()
	if l.torn {
		l.mu.Unlock()
		return
	}
	l.torn = true
	entries := l.entries
	l.entries = nil
	l.mu.Unlock()

	for _, e := range entries {
		e.cancel()
	}
}

// count returns the number of active registrations.
func (l *watcherList[T]) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
