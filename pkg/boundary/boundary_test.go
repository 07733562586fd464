package boundary

import (
	"testing"

	"github.com/go-ripple/ripple/pkg/app"
	rippleerrors "github.com/go-ripple/ripple/pkg/errors"
	"github.com/go-ripple/ripple/pkg/reactive"
	"github.com/go-ripple/ripple/pkg/text"
	"github.com/go-ripple/ripple/pkg/view"
)

func TestBindingBoolLifecycle(t *testing.T) {
	h := NewBindingBool(false)

	var recorded []bool
	g := BindingBoolWatch(h, Watcher[bool]{
		Invoke: func(_ any, v bool, _, _ bool) { recorded = append(recorded, v) },
	})

	BindingBoolSet(h, true, false, false)
	if len(recorded) != 1 || recorded[0] != true {
		t.Fatalf("recorded = %v, want [true]", recorded)
	}
	if !BindingBoolRead(h) {
		t.Error("Read should observe the set value")
	}

	GuardRelease(g)
	BindingBoolSet(h, false, false, false)
	if len(recorded) != 1 {
		t.Errorf("recorded = %v after guard release, want still [true]", recorded)
	}

	BindingBoolRelease(h)
}

func TestWatcherTripleOwnership(t *testing.T) {
	type ctx struct{ released int }
	c := &ctx{}

	h := NewBindingNumber(0)
	var got float64
	var gotCtx any
	g := BindingNumberWatch(h, Watcher[float64]{
		Context: c,
		Invoke: func(context any, v float64, _, _ bool) {
			gotCtx = context
			got = v
		},
		Release: func(context any) { context.(*ctx).released++ },
	})

	BindingNumberSet(h, 2.5, false, false)
	if got != 2.5 {
		t.Errorf("watcher observed %v, want 2.5", got)
	}
	if gotCtx != c {
		t.Error("invoke should receive the registered context")
	}

	GuardRelease(g)
	GuardRelease(g) // stale resend must be a no-op
	if c.released != 1 {
		t.Errorf("context release ran %d times, want exactly 1", c.released)
	}

	BindingNumberRelease(h)
}

func TestBindingReleaseTearsDownWatchers(t *testing.T) {
	h := NewBindingBool(false)
	released := 0
	g := BindingBoolWatch(h, Watcher[bool]{
		Invoke:  func(any, bool, bool, bool) {},
		Release: func(any) { released++ },
	})

	BindingBoolRelease(h)
	if released != 1 {
		t.Fatalf("context release ran %d times on cell teardown, want 1", released)
	}

	GuardRelease(g) // stale guard after teardown
	if released != 1 {
		t.Errorf("context release ran %d times after stale guard, want 1", released)
	}
}

func TestChangeMetadataCrossesBoundary(t *testing.T) {
	h := NewBindingNumber(0)
	var animated, disabled bool
	BindingNumberWatch(h, Watcher[float64]{
		Invoke: func(_ any, _ float64, a, d bool) { animated, disabled = a, d },
	})

	BindingNumberSet(h, 1, true, false)
	if !animated || disabled {
		t.Errorf("metadata = (%v, %v), want (true, false)", animated, disabled)
	}
	BindingNumberSet(h, 2, true, true)
	if !disabled {
		t.Error("animation-disabled flag should cross the boundary")
	}
	BindingNumberRelease(h)
}

func TestStaleHandleTraps(t *testing.T) {
	old := DebugMode
	SetDebugMode(false)
	defer SetDebugMode(old)

	h := NewBindingBool(true)
	BindingBoolRelease(h)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("read through a released handle should trap")
		}
		if _, ok := r.(*rippleerrors.StaleHandleError); !ok {
			t.Errorf("trap value = %T, want *StaleHandleError", r)
		}
	}()
	BindingBoolRead(h)
}

func TestStaleHandleReportedInDebugMode(t *testing.T) {
	old := DebugMode
	SetDebugMode(true)
	defer SetDebugMode(old)

	var reported *rippleerrors.RippleError
	oldHandler := rippleerrors.DefaultHandler
	rippleerrors.SetHandler(&captureHandler{onError: func(e *rippleerrors.RippleError) { reported = e }})
	defer rippleerrors.SetHandler(oldHandler)

	h := NewBindingNumber(0)
	BindingNumberRelease(h)

	func() {
		defer func() { recover() }()
		BindingNumberRead(h)
	}()

	if reported == nil {
		t.Fatal("debug mode should report the violation before trapping")
	}
	if reported.Kind != rippleerrors.KindBoundary {
		t.Errorf("reported kind = %v, want KindBoundary", reported.Kind)
	}
	if reported.Handle != uint64(h) {
		t.Errorf("reported handle = %#x, want %#x", reported.Handle, uint64(h))
	}
	if reported.StackTrace == "" {
		t.Error("debug report should carry a stack trace")
	}
}

func TestSlotReuseInvalidatesOldGeneration(t *testing.T) {
	old := DebugMode
	SetDebugMode(false)
	defer SetDebugMode(old)

	h1 := NewBindingBool(true)
	BindingBoolRelease(h1)
	h2 := NewBindingBool(false)

	// Whether or not h2 reused h1's slot, the retired token must not
	// resolve to the new object.
	func() {
		defer func() {
			if recover() == nil {
				t.Error("retired handle should trap even after slot reuse")
			}
		}()
		BindingBoolRead(h1)
	}()

	if BindingBoolRead(h2) {
		t.Error("fresh handle should read its own cell")
	}
	BindingBoolRelease(h2)
}

func TestTextOps(t *testing.T) {
	foo := TextNew([]byte("foo"))
	bar := TextNew([]byte("bar"))

	if got := TextCompare(bar, foo); got >= 0 {
		t.Errorf(`TextCompare("bar", "foo") = %d, want negative`, got)
	}

	joined := TextConcat(foo, bar)
	if got := string(TextBytes(joined)); got != "foobar" {
		t.Errorf("concat = %q, want %q", got, "foobar")
	}
	if got := TextLen(joined); got != TextLen(foo)+TextLen(bar) {
		t.Errorf("concat len = %d, want %d", got, TextLen(foo)+TextLen(bar))
	}

	oob := TextSubstring(joined, 1, 4)
	if got := string(TextBytes(oob)); got != "oob" {
		t.Errorf("substring = %q, want %q", got, "oob")
	}
	if got := TextLen(oob); got != 3 {
		t.Errorf("substring len = %d, want 3", got)
	}
	if !TextContains(joined, oob) {
		t.Error(`contains("foobar", "oob") should be true`)
	}

	for _, h := range []Handle{foo, bar, joined, oob} {
		TextRelease(h)
	}
}

func TestTextSentinels(t *testing.T) {
	if got := TextRefCount(NilHandle); got != -1 {
		t.Errorf("TextRefCount(nil) = %d, want sentinel -1", got)
	}
	if TextContains(NilHandle, NilHandle) {
		t.Error("TextContains on unset input should return false, not trap")
	}

	h := TextNew([]byte("x"))
	if TextContains(h, NilHandle) {
		t.Error("TextContains with unset needle should return false")
	}
	if got := TextRefCount(h); got != 1 {
		t.Errorf("TextRefCount = %d, want 1", got)
	}
	TextRelease(h)
	if got := TextRefCount(h); got != -1 {
		t.Errorf("TextRefCount on released handle = %d, want sentinel -1", got)
	}
}

func TestTextCloneSharesCount(t *testing.T) {
	h := TextNew([]byte("shared"))
	c := TextClone(h)
	if got := TextRefCount(h); got != 2 {
		t.Errorf("RefCount after clone = %d, want 2", got)
	}
	TextRelease(c)
	if got := TextRefCount(h); got != 1 {
		t.Errorf("RefCount after clone release = %d, want 1", got)
	}
	TextRelease(h)
}

func TestViewKindQueryAndForce(t *testing.T) {
	isOn := reactive.NewBinding(true)
	label := view.NewAnyView(view.Text{Content: reactive.Constant(text.Static("Wi-Fi"))})
	h := ExportView(view.NewAnyView(view.Toggle{IsOn: isOn, Label: label}))

	toggleID, ok := KindID("Toggle")
	if !ok {
		t.Fatal("registry should know the Toggle kind")
	}
	if got := ViewKindID(h); got != toggleID {
		t.Fatalf("ViewKindID = %x, want the Toggle constant", got)
	}

	p := ViewForceToggle(h)

	// The extracted binding handle must address the constructed cell.
	if !BindingBoolRead(p.IsOn) {
		t.Error("extracted binding should read the constructed value")
	}
	isOn.Set(false)
	if BindingBoolRead(p.IsOn) {
		t.Error("extracted handle and native cell should be the same object")
	}

	// The nested label is now caller-owned.
	textID, _ := KindID("Text")
	if got := ViewKindID(p.Label); got != textID {
		t.Errorf("nested label kind = %x, want Text", got)
	}
	labelPayload := ViewForceText(p.Label)
	if got := ComputedTextRead(labelPayload.Content).String(); got != "Wi-Fi" {
		t.Errorf("label content = %q, want %q", got, "Wi-Fi")
	}

	ComputedTextRelease(labelPayload.Content)
	BindingBoolRelease(p.IsOn)
}

func TestViewForceTransfersActionOwnership(t *testing.T) {
	calls := 0
	action := app.NewAction(func(app.Environment) { calls++ })
	h := ExportView(view.NewAnyView(view.Button{
		Action: action,
		Role:   view.RoleCancel,
	}))

	p := ViewForceButton(h)
	if p.Role != int32(view.RoleCancel) {
		t.Errorf("role = %d, want %d unchanged from construction", p.Role, view.RoleCancel)
	}
	if p.Label != NilHandle {
		t.Error("absent label should cross as the nil handle")
	}

	env := NewEnvironment()
	ActionCall(p.Action, env)
	if calls != 1 {
		t.Errorf("action ran %d times through the boundary, want 1", calls)
	}

	ActionRelease(p.Action)
	EnvironmentRelease(env)
}

func TestViewForceStackChildren(t *testing.T) {
	h := ExportView(view.NewAnyView(view.Stack{
		Axis:    view.AxisHorizontal,
		Spacing: 8,
		Children: []*view.AnyView{
			view.NewAnyView(view.Spacer{MinLength: 4}),
			view.NewAnyView(view.Divider{}),
		},
	}))

	p := ViewForceStack(h)
	if p.Axis != int32(view.AxisHorizontal) || p.Spacing != 8 {
		t.Errorf("stack payload = %+v, fields changed from construction", p)
	}
	if len(p.Children) != 2 {
		t.Fatalf("children = %d handles, want 2", len(p.Children))
	}

	sp := ViewForceSpacer(p.Children[0])
	if sp.MinLength != 4 {
		t.Errorf("spacer MinLength = %v, want 4", sp.MinLength)
	}
	ViewForceDivider(p.Children[1])
}

func TestEnvironmentCloneAcrossBoundary(t *testing.T) {
	native := app.NewEnvironment()
	key := app.NewKey[string]("locale")
	app.Set(native, key, "en")

	h := ExportEnvironment(native)
	c := EnvironmentClone(h)

	var seen string
	a := ExportAction(app.NewAction(func(e app.Environment) {
		seen, _ = app.Get(e, key)
	}))
	ActionCall(a, c)
	if seen != "en" {
		t.Errorf("action observed locale %q through cloned env, want %q", seen, "en")
	}

	ActionRelease(a)
	EnvironmentRelease(c)
	EnvironmentRelease(h)
}

func TestComputedAcrossBoundary(t *testing.T) {
	celsius := reactive.NewBinding(0.0)
	fahrenheit := reactive.Map(celsius, func(c float64) float64 { return c*9/5 + 32 })
	h := ExportComputedNumber(fahrenheit)

	if got := ComputedNumberRead(h); got != 32 {
		t.Errorf("read = %v, want 32", got)
	}

	var notified []float64
	g := ComputedNumberWatch(h, Watcher[float64]{
		Invoke: func(_ any, v float64, _, _ bool) { notified = append(notified, v) },
	})

	celsius.Set(100)
	if got := ComputedNumberRead(h); got != 212 {
		t.Errorf("read after dependency set = %v, want 212", got)
	}
	if len(notified) != 1 || notified[0] != 212 {
		t.Errorf("notified = %v, want [212]", notified)
	}

	celsius.Set(100) // same value, no notification
	if len(notified) != 1 {
		t.Errorf("notified = %v after same-value set, want no additions", notified)
	}

	GuardRelease(g)
	ComputedNumberRelease(h)
}

func TestLiveHandlesAccounting(t *testing.T) {
	before := LiveHandles()["binding.bool"]

	h := NewBindingBool(false)
	if got := LiveHandles()["binding.bool"]; got != before+1 {
		t.Errorf("live bool bindings = %d, want %d", got, before+1)
	}

	BindingBoolRelease(h)
	if got := LiveHandles()["binding.bool"]; got != before {
		t.Errorf("live bool bindings after release = %d, want %d", got, before)
	}
}

type captureHandler struct {
	onError func(*rippleerrors.RippleError)
}

func (h *captureHandler) HandleError(err *rippleerrors.RippleError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *captureHandler) HandlePanic(*rippleerrors.PanicError) {}
