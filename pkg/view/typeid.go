package view

import "fmt"

// TypeID is the stable 128-bit identifier of one concrete view payload kind.
//
// IDs are compile-time constants assigned from a generator (the MD5 digest
// of the qualified kind name) and are never recomputed or reused within a
// process run. They cross the boundary as an opaque 16-byte blob compared
// only for equality; no ordering or structure is defined.
type TypeID struct {
	hi, lo uint64
}

// Bytes returns the identifier as a fixed 16-byte big-endian blob, the form
// in which it crosses the boundary.
func (id TypeID) Bytes() [16]byte {
	var b [16]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(id.hi >> (56 - 8*i))
		b[8+i] = byte(id.lo >> (56 - 8*i))
	}
	return b
}

// TypeIDFromBytes reconstructs an identifier from its 16-byte blob form.
func TypeIDFromBytes(b [16]byte) TypeID {
	var id TypeID
	for i := 0; i < 8; i++ {
		id.hi = id.hi<<8 | uint64(b[i])
		id.lo = id.lo<<8 | uint64(b[8+i])
	}
	return id
}

// IsZero reports whether id is the zero identifier, which names no kind.
func (id TypeID) IsZero() bool {
	return id.hi == 0 && id.lo == 0
}

func (id TypeID) String() string {
	return fmt.Sprintf("%016x%016x", id.hi, id.lo)
}

// Kind identifiers, one constant per payload kind. Generated once from the
// qualified kind names; never renumber or reuse a retired value.
var (
	KindContainer = TypeID{0x4cd39bdd0b3e6b14, 0xfaf9ad866257f1a9}
	KindStack     = TypeID{0x4780184c35a5268a, 0x015916691d753f44}
	KindGrid      = TypeID{0x50c2e27f6aed17e6, 0xe2ee98cb4f442719}
	KindScroll    = TypeID{0x6cbb3230591a3c3f, 0xc895988031290739}
	KindOverlay   = TypeID{0x81c680456af68a07, 0x295aa1ee819e78d7}
	KindButton    = TypeID{0xdf17118c4691b36d, 0x2557c2870aa4488f}
	KindLink      = TypeID{0x3f4b87791291a0d1, 0xf293ba6ff15e5121}
	KindText      = TypeID{0xa36121ba35edeadb, 0xa5551dd35bc50bcd}
	KindTextField = TypeID{0xa7ed3a435a2e0c66, 0x813f9c56869a85f9}
	KindToggle    = TypeID{0x1ba5e1861d1f4703, 0x310a06fcfff12aaf}
	KindSlider    = TypeID{0x436c6bde2e275d8f, 0xf3665c27a028e31e}
	KindStepper   = TypeID{0xe41e670dd0e07846, 0xe60b816795655966}
	KindPhoto     = TypeID{0x96f6e06a03ba1888, 0x3d6b206e5c159aa0}
	KindVideo     = TypeID{0x9024d7307f5d44cb, 0xe12cfa8ffc06e6eb}
	KindLivePhoto = TypeID{0xc08ec26e70bcc65f, 0xefb1c26cda51f95f}
	KindSpacer    = TypeID{0x94bc46566313ed85, 0xa4219d26c3ce2781}
	KindDivider   = TypeID{0x11f3c067ac888e9f, 0x326e2940bc0ae518}
	KindEmpty     = TypeID{0xe2028a18fd1a8d1e, 0x5700998fb9d9034d}
)
