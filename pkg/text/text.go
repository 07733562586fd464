// Package text provides the immutable, cheaply shareable string value used
// by view payloads and the boundary.
//
// A Value is a sequence of UTF-8 bytes in one of two interchangeable
// representations: a static view over a Go string literal, or an owned,
// reference-counted byte buffer. Every operation behaves identically on
// both; the representation only affects what Clone and Release do.
//
// Construction from raw bytes and slicing by byte offsets skip UTF-8
// validation. Supplying offsets that split a multi-byte sequence is a
// contract violation, not a recoverable error.
package text

import (
	"bytes"
	"sync/atomic"
)

// Value is an immutable UTF-8 string value.
//
// The zero Value is the empty static string.
type Value struct {
	data []byte
	rc   *atomic.Int64 // nil for the static representation
}

// Static wraps a string constant as a non-owned view. Clone and Release are
// no-ops on the result.
func Static(s string) Value {
	return Value{data: []byte(s)}
}

// New allocates an owned value holding a copy of s, with a reference count
// of one.
func New(s string) Value {
	return FromBytes([]byte(s))
}

// FromBytes takes ownership of b as an owned value. The caller guarantees b
// is valid UTF-8 and does not mutate it afterwards; no validation is
// performed.
func FromBytes(b []byte) Value {
	rc := &atomic.Int64{}
	rc.Store(1)
	return Value{data: b, rc: rc}
}

// Clone returns a value sharing the same bytes. For owned values this
// increments the shared reference count; for static values it is free.
func (v Value) Clone() Value {
	if v.rc != nil {
		v.rc.Add(1)
	}
	return v
}

// Release drops one reference to an owned value. Static values ignore it.
// Releasing more times than Clone plus construction granted is a contract
// violation.
func (v Value) Release() {
	if v.rc != nil {
		v.rc.Add(-1)
	}
}

// RefCount returns the current shared reference count for diagnostics.
// Static values report 0, since they are not reference counted.
func (v Value) RefCount() int64 {
	if v.rc == nil {
		return 0
	}
	return v.rc.Load()
}

// Len returns the length in bytes.
func (v Value) Len() int {
	return len(v.data)
}

// IsEmpty reports whether the value has no bytes.
func (v Value) IsEmpty() bool {
	return len(v.data) == 0
}

// Bytes returns a borrowed view of the underlying bytes. The caller must
// not mutate or retain it past the value's lifetime.
func (v Value) Bytes() []byte {
	return v.data
}

// String returns the value as a Go string, copying the bytes.
func (v Value) String() string {
	return string(v.data)
}

// Concat returns a new owned value holding v followed by other.
func (v Value) Concat(other Value) Value {
	joined := make([]byte, 0, len(v.data)+len(other.data))
	joined = append(joined, v.data...)
	joined = append(joined, other.data...)
	return FromBytes(joined)
}

// Compare orders two values lexicographically by byte: -1 if v < other,
// 0 if equal, +1 if v > other.
func (v Value) Compare(other Value) int {
	return bytes.Compare(v.data, other.data)
}

// Equal reports whether two values hold the same bytes.
func (v Value) Equal(other Value) bool {
	return bytes.Equal(v.data, other.data)
}

// Contains reports whether sub occurs within v.
func (v Value) Contains(sub Value) bool {
	return bytes.Contains(v.data, sub.data)
}

// Substring slices the byte range [i, j). The result shares the underlying
// buffer (and, for owned values, the reference count) with v. The caller
// guarantees i and j lie on UTF-8 boundaries; no validation is performed.
func (v Value) Substring(i, j int) Value {
	out := v.Clone()
	out.data = out.data[i:j]
	return out
}
