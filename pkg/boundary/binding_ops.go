package boundary

import (
	"github.com/go-ripple/ripple/pkg/reactive"
	"github.com/go-ripple/ripple/pkg/text"
)

// Watcher is the boundary watcher triple: an opaque context, an invocation
// function, and a release function for the context. Ownership of Context
// passes to the registry on registration; Release runs exactly once, on
// guard release or cell teardown.
type Watcher[T any] struct {
	Context any
	Invoke  func(context any, value T, animated, animationDisabled bool)
	Release func(context any)
}

// adapt lowers a boundary watcher triple onto the native watcher contract.
func adapt[T any](w Watcher[T]) reactive.Watcher[T] {
	return reactive.Watcher[T]{
		Notify: func(v T, c reactive.Change) {
			if w.Invoke != nil {
				w.Invoke(w.Context, v, c.Animated, c.AnimationDisabled)
			}
		},
		Release: func() {
			if w.Release != nil {
				w.Release(w.Context)
			}
		},
	}
}

// Arenas for the binding, computed, and guard handle kinds. Bindings cross
// the boundary per concrete instantiation: bool, number (float64), text.
var (
	boolBindings   = newArena[*reactive.Binding[bool]]("binding.bool")
	numberBindings = newArena[*reactive.Binding[float64]]("binding.number")
	textBindings   = newArena[*reactive.Binding[text.Value]]("binding.text")

	boolComputeds   = newArena[*reactive.Computed[bool]]("computed.bool")
	numberComputeds = newArena[*reactive.Computed[float64]]("computed.number")
	textComputeds   = newArena[*reactive.Computed[text.Value]]("computed.text")

	guards = newArena[*reactive.Guard]("guard")
)

func bindingRead[T any](a *arena[*reactive.Binding[T]], op string, h Handle) T {
	return mustGet(a, op, h).Read()
}

func bindingSet[T any](a *arena[*reactive.Binding[T]], op string, h Handle, v T, animated, animationDisabled bool) {
	mustGet(a, op, h).SetWith(v, reactive.Change{Animated: animated, AnimationDisabled: animationDisabled})
}

func bindingWatch[T any](a *arena[*reactive.Binding[T]], op string, h Handle, w Watcher[T]) Handle {
	return guards.put(mustGet(a, op, h).Watch(adapt(w)))
}

func bindingRelease[T any](a *arena[*reactive.Binding[T]], op string, h Handle) {
	mustTake(a, op, h).Dispose()
}

func computedRead[T any](a *arena[*reactive.Computed[T]], op string, h Handle) T {
	return mustGet(a, op, h).Read()
}

func computedWatch[T any](a *arena[*reactive.Computed[T]], op string, h Handle, w Watcher[T]) Handle {
	return guards.put(mustGet(a, op, h).Watch(adapt(w)))
}

func computedRelease[T any](a *arena[*reactive.Computed[T]], op string, h Handle) {
	mustTake(a, op, h).Dispose()
}

// NewBindingBool creates a boolean cell and issues its handle.
func NewBindingBool(initial bool) Handle {
	return boolBindings.put(reactive.NewBinding(initial))
}

// BindingBoolRead returns the current value. Borrows the handle.
func BindingBoolRead(h Handle) bool {
	return bindingRead(boolBindings, "boundary.BindingBoolRead", h)
}

// BindingBoolSet replaces the value and synchronously fans out to all
// registered watchers before returning.
func BindingBoolSet(h Handle, v bool, animated, animationDisabled bool) {
	bindingSet(boolBindings, "boundary.BindingBoolSet", h, v, animated, animationDisabled)
}

// BindingBoolWatch registers a watcher triple and returns its guard handle.
func BindingBoolWatch(h Handle, w Watcher[bool]) Handle {
	return bindingWatch(boolBindings, "boundary.BindingBoolWatch", h, w)
}

// BindingBoolRelease destroys the cell, tearing down any still-registered
// watchers. Must be called exactly once.
func BindingBoolRelease(h Handle) {
	bindingRelease(boolBindings, "boundary.BindingBoolRelease", h)
}

// NewBindingNumber creates a numeric cell and issues its handle.
func NewBindingNumber(initial float64) Handle {
	return numberBindings.put(reactive.NewBinding(initial))
}

// BindingNumberRead returns the current value. Borrows the handle.
func BindingNumberRead(h Handle) float64 {
	return bindingRead(numberBindings, "boundary.BindingNumberRead", h)
}

// BindingNumberSet replaces the value and synchronously fans out to all
// registered watchers before returning.
func BindingNumberSet(h Handle, v float64, animated, animationDisabled bool) {
	bindingSet(numberBindings, "boundary.BindingNumberSet", h, v, animated, animationDisabled)
}

// BindingNumberWatch registers a watcher triple and returns its guard handle.
func BindingNumberWatch(h Handle, w Watcher[float64]) Handle {
	return bindingWatch(numberBindings, "boundary.BindingNumberWatch", h, w)
}

// BindingNumberRelease destroys the cell. Must be called exactly once.
func BindingNumberRelease(h Handle) {
	bindingRelease(numberBindings, "boundary.BindingNumberRelease", h)
}

// NewBindingText creates a text cell and issues its handle. Ownership of
// initial passes to the cell.
func NewBindingText(initial text.Value) Handle {
	return textBindings.put(reactive.NewBinding(initial))
}

// BindingTextRead returns the current value as a borrowed text value.
func BindingTextRead(h Handle) text.Value {
	return bindingRead(textBindings, "boundary.BindingTextRead", h)
}

// BindingTextSet replaces the value, taking ownership of v, and
// synchronously fans out to all registered watchers before returning.
func BindingTextSet(h Handle, v text.Value, animated, animationDisabled bool) {
	bindingSet(textBindings, "boundary.BindingTextSet", h, v, animated, animationDisabled)
}

// BindingTextWatch registers a watcher triple and returns its guard handle.
func BindingTextWatch(h Handle, w Watcher[text.Value]) Handle {
	return bindingWatch(textBindings, "boundary.BindingTextWatch", h, w)
}

// BindingTextRelease destroys the cell. Must be called exactly once.
func BindingTextRelease(h Handle) {
	bindingRelease(textBindings, "boundary.BindingTextRelease", h)
}

// ExportBindingBool issues a boundary handle for a native-side cell,
// typically while extracting a view payload.
func ExportBindingBool(b *reactive.Binding[bool]) Handle {
	if b == nil {
		return NilHandle
	}
	return boolBindings.put(b)
}

// ExportBindingNumber issues a boundary handle for a native-side cell.
func ExportBindingNumber(b *reactive.Binding[float64]) Handle {
	if b == nil {
		return NilHandle
	}
	return numberBindings.put(b)
}

// ExportBindingText issues a boundary handle for a native-side cell.
func ExportBindingText(b *reactive.Binding[text.Value]) Handle {
	if b == nil {
		return NilHandle
	}
	return textBindings.put(b)
}

// ExportComputedBool issues a boundary handle for a native-side computation.
func ExportComputedBool(c *reactive.Computed[bool]) Handle {
	if c == nil {
		return NilHandle
	}
	return boolComputeds.put(c)
}

// ExportComputedNumber issues a boundary handle for a native-side computation.
func ExportComputedNumber(c *reactive.Computed[float64]) Handle {
	if c == nil {
		return NilHandle
	}
	return numberComputeds.put(c)
}

// ExportComputedText issues a boundary handle for a native-side computation.
func ExportComputedText(c *reactive.Computed[text.Value]) Handle {
	if c == nil {
		return NilHandle
	}
	return textComputeds.put(c)
}

// ComputedBoolRead evaluates and returns the current value.
func ComputedBoolRead(h Handle) bool {
	return computedRead(boolComputeds, "boundary.ComputedBoolRead", h)
}

// ComputedBoolWatch registers a watcher fired when the recomputed value
// changes; returns its guard handle.
func ComputedBoolWatch(h Handle, w Watcher[bool]) Handle {
	return computedWatch(boolComputeds, "boundary.ComputedBoolWatch", h, w)
}

// ComputedBoolRelease destroys the computation. Must be called exactly once.
func ComputedBoolRelease(h Handle) {
	computedRelease(boolComputeds, "boundary.ComputedBoolRelease", h)
}

// ComputedNumberRead evaluates and returns the current value.
func ComputedNumberRead(h Handle) float64 {
	return computedRead(numberComputeds, "boundary.ComputedNumberRead", h)
}

// ComputedNumberWatch registers a watcher fired when the recomputed value
// changes; returns its guard handle.
func ComputedNumberWatch(h Handle, w Watcher[float64]) Handle {
	return computedWatch(numberComputeds, "boundary.ComputedNumberWatch", h, w)
}

// ComputedNumberRelease destroys the computation. Must be called exactly once.
func ComputedNumberRelease(h Handle) {
	computedRelease(numberComputeds, "boundary.ComputedNumberRelease", h)
}

// ComputedTextRead evaluates and returns the current value as a borrowed
// text value.
func ComputedTextRead(h Handle) text.Value {
	return computedRead(textComputeds, "boundary.ComputedTextRead", h)
}

// ComputedTextWatch registers a watcher fired when the recomputed value
// changes; returns its guard handle.
func ComputedTextWatch(h Handle, w Watcher[text.Value]) Handle {
	return computedWatch(textComputeds, "boundary.ComputedTextWatch", h, w)
}

// ComputedTextRelease destroys the computation. Must be called exactly once.
func ComputedTextRelease(h Handle) {
	computedRelease(textComputeds, "boundary.ComputedTextRelease", h)
}

// GuardRelease cancels the watcher registration behind h. Unlike every
// other release operation, it is defined on stale handles as a no-op: the
// boundary cannot trust callers not to resend a spent guard, and the
// contract promises that a double release never double-frees the context.
func GuardRelease(h Handle) {
	if g, ok := guards.take(h); ok {
		g.Release()
	}
}
