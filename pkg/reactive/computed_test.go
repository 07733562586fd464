package reactive

import (
	"fmt"
	"testing"
)

func TestComputedConstant(t *testing.T) {
	c := Constant("fixed")
	if got := c.Read(); got != "fixed" {
		t.Errorf("Read() = %q, want %q", got, "fixed")
	}
	fired := false
	c.OnChange(func(string) { fired = true })
	if fired {
		t.Error("constant computed must never fire watchers")
	}
}

func TestComputedReadNeverStale(t *testing.T) {
	x := NewBinding(1)
	double := Map(x, func(v int) int { return v * 2 })

	if got := double.Read(); got != 2 {
		t.Errorf("Read() = %d, want 2", got)
	}
	x.Set(5)
	if got := double.Read(); got != 10 {
		t.Errorf("Read() after dependency Set = %d, want 10", got)
	}
}

func TestComputedWatchFiresOnChange(t *testing.T) {
	x := NewBinding(1)
	double := Map(x, func(v int) int { return v * 2 })

	var received []int
	double.OnChange(func(v int) { received = append(received, v) })

	x.Set(3)
	if len(received) != 1 || received[0] != 6 {
		t.Fatalf("received = %v, want [6]", received)
	}
}

func TestComputedNoNotifyOnSameValue(t *testing.T) {
	x := NewBinding(4)
	double := Map(x, func(v int) int { return v * 2 })

	count := 0
	double.OnChange(func(int) { count++ })

	x.Set(4) // same value, same derived result
	if count != 0 {
		t.Errorf("watcher fired %d times on recompute-to-same-value, want 0", count)
	}

	x.Set(5)
	if count != 1 {
		t.Errorf("watcher fired %d times after a real change, want 1", count)
	}
}

func TestComputedCollapsesDistinctInputsToSameResult(t *testing.T) {
	x := NewBinding(1)
	parity := Map(x, func(v int) bool { return v%2 == 0 })

	count := 0
	parity.OnChange(func(bool) { count++ })

	x.Set(3) // parity still odd
	if count != 0 {
		t.Errorf("watcher fired %d times though the derived value is unchanged, want 0", count)
	}
	x.Set(2)
	if count != 1 {
		t.Errorf("watcher fired %d times after parity flip, want 1", count)
	}
}

func TestComputedMap2(t *testing.T) {
	first := NewBinding("foo")
	second := NewBinding("bar")
	joined := Map2(first, second, func(a, b string) string { return a + b })

	if got := joined.Read(); got != "foobar" {
		t.Errorf("Read() = %q, want %q", got, "foobar")
	}

	var received []string
	joined.OnChange(func(v string) { received = append(received, v) })

	second.Set("baz")
	if len(received) != 1 || received[0] != "foobaz" {
		t.Fatalf("received = %v, want [foobaz]", received)
	}
}

func TestComputedChain(t *testing.T) {
	x := NewBinding(2)
	squared := Map(x, func(v int) int { return v * v })
	label := Map[int, string](squared, func(v int) string { return fmt.Sprintf("=%d", v) })

	var received []string
	label.OnChange(func(v string) { received = append(received, v) })

	x.Set(3)
	if len(received) != 1 || received[0] != "=9" {
		t.Fatalf("received = %v, want [=9]", received)
	}
	if got := label.Read(); got != "=9" {
		t.Errorf("Read() = %q, want %q", got, "=9")
	}
}

func TestComputedGuardRelease(t *testing.T) {
	x := NewBinding(1)
	double := Map(x, func(v int) int { return v * 2 })

	count := 0
	g := double.OnChange(func(int) { count++ })
	x.Set(2)
	g.Release()
	x.Set(3)

	if count != 1 {
		t.Errorf("watcher fired %d times, want 1 (released before second change)", count)
	}
}

func TestComputedChangeMetadataPropagates(t *testing.T) {
	x := NewBinding(0)
	inc := Map(x, func(v int) int { return v + 1 })

	var got Change
	inc.Watch(Watcher[int]{Notify: func(_ int, c Change) { got = c }})

	x.SetWith(1, Change{Animated: true})
	if !got.Animated {
		t.Errorf("change = %+v, want animation metadata forwarded through derivation", got)
	}
}

func TestComputedEqualCustom(t *testing.T) {
	x := NewBinding(1.0)
	// Treat values within 0.5 of each other as equal.
	coarse := NewComputedEqual(
		func() float64 { return x.Read() },
		func(a, b float64) bool { d := a - b; return d < 0.5 && d > -0.5 },
		x,
	)

	count := 0
	coarse.OnChange(func(float64) { count++ })

	x.Set(1.2)
	if count != 0 {
		t.Errorf("watcher fired %d times within the equality tolerance, want 0", count)
	}
	x.Set(2.0)
	if count != 1 {
		t.Errorf("watcher fired %d times after crossing tolerance, want 1", count)
	}
}

func TestComputedDispose(t *testing.T) {
	x := NewBinding(1)
	double := Map(x, func(v int) int { return v * 2 })

	releases := 0
	double.Watch(Watcher[int]{
		Notify:  func(int, Change) { t.Error("watcher must not fire after dispose") },
		Release: func() { releases++ },
	})

	double.Dispose()
	if releases != 1 {
		t.Fatalf("release ran %d times, want 1", releases)
	}
	if got := x.WatcherCount(); got != 0 {
		t.Errorf("dependency still has %d watchers after dispose, want 0", got)
	}

	x.Set(2) // must not reach the disposed computed's watchers
}
