package boundary

import "github.com/go-ripple/ripple/pkg/text"

var texts = newArena[text.Value]("text")

// TextNew copies the given UTF-8 bytes into a new owned text value and
// issues its handle. The caller keeps ownership of b and guarantees it is
// valid UTF-8; no validation is performed.
func TextNew(b []byte) Handle {
	return texts.put(text.FromBytes(append([]byte(nil), b...)))
}

// ExportText issues a handle for a native-side text value, transferring
// ownership of that reference to the boundary.
func ExportText(v text.Value) Handle {
	return texts.put(v)
}

// TextClone issues a new owned handle sharing the same bytes.
func TextClone(h Handle) Handle {
	return texts.put(mustGet(texts, "boundary.TextClone", h).Clone())
}

// TextRelease destroys the handle's reference. Must be called exactly once
// per owned handle.
func TextRelease(h Handle) {
	mustTake(texts, "boundary.TextRelease", h).Release()
}

// TextLen returns the length in bytes.
func TextLen(h Handle) int {
	return mustGet(texts, "boundary.TextLen", h).Len()
}

// TextIsEmpty reports whether the value has no bytes.
func TextIsEmpty(h Handle) bool {
	return mustGet(texts, "boundary.TextIsEmpty", h).IsEmpty()
}

// TextBytes returns a borrowed view of the underlying bytes. The caller
// must not free or retain it past the handle's release.
func TextBytes(h Handle) []byte {
	return mustGet(texts, "boundary.TextBytes", h).Bytes()
}

// TextConcat returns a new owned handle holding a followed by b. Both
// inputs are borrowed.
func TextConcat(a, b Handle) Handle {
	av := mustGet(texts, "boundary.TextConcat", a)
	bv := mustGet(texts, "boundary.TextConcat", b)
	return texts.put(av.Concat(bv))
}

// TextCompare orders two values lexicographically by byte: -1, 0, or +1.
func TextCompare(a, b Handle) int {
	av := mustGet(texts, "boundary.TextCompare", a)
	bv := mustGet(texts, "boundary.TextCompare", b)
	return av.Compare(bv)
}

// TextEquals reports whether two values hold the same bytes.
func TextEquals(a, b Handle) bool {
	av := mustGet(texts, "boundary.TextEquals", a)
	bv := mustGet(texts, "boundary.TextEquals", b)
	return av.Equal(bv)
}

// TextContains reports whether sub occurs within h. Unset input is a
// defined degenerate case: if either handle is nil or stale the result is
// false rather than a trap.
func TextContains(h, sub Handle) bool {
	hv, ok := texts.get(h)
	if !ok {
		return false
	}
	sv, ok := texts.get(sub)
	if !ok {
		return false
	}
	return hv.Contains(sv)
}

// TextSubstring returns a new owned handle over the byte range [i, j).
// The caller guarantees the offsets lie on UTF-8 boundaries.
func TextSubstring(h Handle, i, j int) Handle {
	return texts.put(mustGet(texts, "boundary.TextSubstring", h).Substring(i, j))
}

// TextRefCount returns the value's shared reference count for diagnostics,
// 0 for static values. The nil or stale handle is a defined degenerate
// case returning the sentinel -1.
func TextRefCount(h Handle) int64 {
	v, ok := texts.get(h)
	if !ok {
		return -1
	}
	return v.RefCount()
}
