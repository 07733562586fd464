package boundary

import (
	"sync"

	rippleerrors "github.com/go-ripple/ripple/pkg/errors"
)

// Handle is an opaque token addressing one boundary-owned object. The low
// 32 bits hold the arena slot plus one, the high 32 bits the slot's
// generation at issue time, so a handle outlives neither its object nor a
// reuse of its slot.
type Handle uint64

// NilHandle is the zero token; it addresses nothing.
const NilHandle Handle = 0

type arenaSlot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// arena is a generation-checked slot table for one handle kind. All
// boundary objects live in arenas so that use-after-release shows up as a
// generation mismatch instead of a dangling pointer.
type arena[T any] struct {
	mu    sync.Mutex
	slots []arenaSlot[T]
	free  []uint32
	kind  string
}

func newArena[T any](kind string) *arena[T] {
	return &arena[T]{kind: kind}
}

// put stores value and issues its handle.
func (a *arena[T]) put(value T) Handle {
	a.mu.Lock()
	defer a.mu.Unlock()

	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx].value = value
		a.slots[idx].live = true
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, arenaSlot[T]{value: value, live: true})
	}
	return Handle(uint64(a.slots[idx].gen)<<32 | uint64(idx+1))
}

// get borrows the value behind h.
func (a *arena[T]) get(h Handle) (T, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx, _, ok := a.decode(h)
	if !ok {
		var zero T
		return zero, false
	}
	return a.slots[idx].value, true
}

// take removes the value behind h, retiring the slot's generation.
func (a *arena[T]) take(h Handle) (T, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx, gen, ok := a.decode(h)
	if !ok {
		var zero T
		return zero, false
	}
	value := a.slots[idx].value
	var zero T
	a.slots[idx].value = zero
	a.slots[idx].live = false
	a.slots[idx].gen = gen + 1
	a.free = append(a.free, idx)
	return value, true
}

// decode validates h against the live slots. Callers hold a.mu.
func (a *arena[T]) decode(h Handle) (idx, gen uint32, ok bool) {
	if h == NilHandle {
		return 0, 0, false
	}
	low := uint32(h)
	gen = uint32(h >> 32)
	if low == 0 || int(low-1) >= len(a.slots) {
		return 0, 0, false
	}
	idx = low - 1
	if !a.slots[idx].live || a.slots[idx].gen != gen {
		return 0, 0, false
	}
	return idx, gen, true
}

// live returns the number of live slots, for diagnostics and leak tests.
func (a *arena[T]) live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for i := range a.slots {
		if a.slots[i].live {
			n++
		}
	}
	return n
}

// mustGet borrows the value behind h or traps on a stale token.
func mustGet[T any](a *arena[T], op string, h Handle) T {
	v, ok := a.get(h)
	if !ok {
		trap(op, a.kind, h)
	}
	return v
}

// mustTake removes the value behind h or traps on a stale token.
func mustTake[T any](a *arena[T], op string, h Handle) T {
	v, ok := a.take(h)
	if !ok {
		trap(op, a.kind, h)
	}
	return v
}

// trap reports a boundary contract violation (in debug mode) and panics.
// There is no recoverable-error channel across the boundary; a stale
// handle is a caller bug, not a condition the core can handle.
func trap(op, kind string, h Handle) {
	err := &rippleerrors.StaleHandleError{Op: op, Handle: uint64(h), HandleKind: kind}
	if DebugMode {
		rippleerrors.Report(&rippleerrors.RippleError{
			Op:         op,
			Kind:       rippleerrors.KindBoundary,
			Handle:     uint64(h),
			Err:        err,
			StackTrace: rippleerrors.CaptureStack(),
		})
	}
	panic(err)
}
