package text

import "testing"

func TestRoundTrip(t *testing.T) {
	cases := []string{"", "foo", "héllo wörld", "日本語", "a\x00b"}
	for _, s := range cases {
		v := FromBytes([]byte(s))
		if got := v.String(); got != s {
			t.Errorf("FromBytes(%q).String() = %q", s, got)
		}
		if got := string(v.Bytes()); got != s {
			t.Errorf("FromBytes(%q).Bytes() = %q", s, got)
		}
	}
}

func TestStaticAndOwnedBehaveIdentically(t *testing.T) {
	static := Static("hello")
	owned := New("hello")

	if static.Len() != owned.Len() {
		t.Errorf("Len: static %d, owned %d", static.Len(), owned.Len())
	}
	if static.Compare(owned) != 0 {
		t.Error("static and owned copies of the same string should compare equal")
	}
	if !static.Equal(owned) {
		t.Error("Equal should not depend on representation")
	}
}

func TestConcat(t *testing.T) {
	a := New("foo")
	b := Static("bar")
	joined := a.Concat(b)

	if got := joined.String(); got != "foobar" {
		t.Errorf("Concat = %q, want %q", got, "foobar")
	}
	if got := joined.Len(); got != a.Len()+b.Len() {
		t.Errorf("Concat len = %d, want %d", got, a.Len()+b.Len())
	}
}

func TestCompare(t *testing.T) {
	foo := New("foo")
	bar := New("bar")

	if got := bar.Compare(foo); got >= 0 {
		t.Errorf(`Compare("bar", "foo") = %d, want negative`, got)
	}
	if got := foo.Compare(bar); got <= 0 {
		t.Errorf(`Compare("foo", "bar") = %d, want positive`, got)
	}
	if got := foo.Compare(New("foo")); got != 0 {
		t.Errorf(`Compare("foo", "foo") = %d, want 0`, got)
	}
}

func TestContains(t *testing.T) {
	haystack := New("foo").Concat(New("bar"))
	if !haystack.Contains(New("oob")) {
		t.Error(`contains("foobar", "oob") should be true`)
	}
	if haystack.Contains(New("xyz")) {
		t.Error(`contains("foobar", "xyz") should be false`)
	}
	if !haystack.Contains(Static("")) {
		t.Error("every value contains the empty value")
	}
}

func TestSubstring(t *testing.T) {
	v := New("foobar")
	sub := v.Substring(1, 4)

	if got := sub.String(); got != "oob" {
		t.Errorf("Substring(1, 4) = %q, want %q", got, "oob")
	}
	if got := sub.Len(); got != 3 {
		t.Errorf("Substring len = %d, want 3", got)
	}

	whole := v.Substring(0, v.Len())
	if !whole.Equal(v) {
		t.Error("Substring(0, len) should equal the original")
	}
	empty := v.Substring(2, 2)
	if !empty.IsEmpty() {
		t.Error("Substring(i, i) should be empty")
	}
}

func TestIsEmpty(t *testing.T) {
	if !Static("").IsEmpty() {
		t.Error("empty static value should be empty")
	}
	if !(Value{}).IsEmpty() {
		t.Error("zero Value should be empty")
	}
	if New("x").IsEmpty() {
		t.Error("non-empty value should not be empty")
	}
}

func TestRefCount(t *testing.T) {
	v := New("shared")
	if got := v.RefCount(); got != 1 {
		t.Fatalf("fresh owned RefCount = %d, want 1", got)
	}

	c := v.Clone()
	if got := v.RefCount(); got != 2 {
		t.Errorf("RefCount after Clone = %d, want 2", got)
	}
	c.Release()
	if got := v.RefCount(); got != 1 {
		t.Errorf("RefCount after Release = %d, want 1", got)
	}
}

func TestStaticRefCount(t *testing.T) {
	v := Static("lit")
	if got := v.RefCount(); got != 0 {
		t.Errorf("static RefCount = %d, want 0 (not reference counted)", got)
	}
	c := v.Clone()
	c.Release() // both no-ops
	if got := c.String(); got != "lit" {
		t.Errorf("static clone = %q, want %q", got, "lit")
	}
}

func TestSubstringSharesRefCount(t *testing.T) {
	v := New("slicing")
	sub := v.Substring(0, 5)
	if got := v.RefCount(); got != 2 {
		t.Errorf("RefCount after Substring = %d, want 2 (shared buffer)", got)
	}
	sub.Release()
	if got := v.RefCount(); got != 1 {
		t.Errorf("RefCount after releasing substring = %d, want 1", got)
	}
}
