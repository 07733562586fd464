package view

import "fmt"

// Payload is implemented by exactly the closed set of concrete view payload
// kinds declared in this package. Each payload is a plain aggregate of
// nested AnyView handles, reactive handles, and plain value fields.
type Payload interface {
	// KindID returns the kind's stable identifier. It is a pure constant
	// per kind: every instance of one kind returns the same TypeID.
	KindID() TypeID

	isPayload()
}

// AnyView is an owned, type-erased handle to one instance of exactly one
// concrete payload kind.
//
// A host walks a tree of AnyViews by querying each instance's KindID,
// branching on it, and extracting the matching payload with ForceAs. The
// safe entry point is Visit; ForceAs is the unchecked veneer the boundary
// uses for zero-overhead dispatch.
//
// An AnyView is destroyed exactly once via Release; ForceAs also consumes
// it, transferring ownership of all nested handles to the caller.
type AnyView struct {
	payload Payload
}

// NewAnyView erases payload into an owned AnyView.
func NewAnyView(payload Payload) *AnyView {
	return &AnyView{payload: payload}
}

// KindID returns the identifier of the kind this instance actually holds.
// Callers must compare it against the desired kind's constant before
// extracting the payload.
func (v *AnyView) KindID() TypeID {
	return v.payload.KindID()
}

// Release destroys the view and everything it still owns. Must be called
// exactly once, and only if the payload was not extracted with ForceAs.
func (v *AnyView) Release() {
	v.payload = nil
}

// Visit dispatches to the visitor method matching the held payload kind.
// This is the safe internal match over the closed kind set; the unchecked
// force extractors are a veneer over the same variant access.
func (v *AnyView) Visit(vis Visitor) {
	switch p := v.payload.(type) {
	case Container:
		vis.VisitContainer(p)
	case Stack:
		vis.VisitStack(p)
	case Grid:
		vis.VisitGrid(p)
	case Scroll:
		vis.VisitScroll(p)
	case Overlay:
		vis.VisitOverlay(p)
	case Button:
		vis.VisitButton(p)
	case Link:
		vis.VisitLink(p)
	case Text:
		vis.VisitText(p)
	case TextField:
		vis.VisitTextField(p)
	case Toggle:
		vis.VisitToggle(p)
	case Slider:
		vis.VisitSlider(p)
	case Stepper:
		vis.VisitStepper(p)
	case Photo:
		vis.VisitPhoto(p)
	case Video:
		vis.VisitVideo(p)
	case LivePhoto:
		vis.VisitLivePhoto(p)
	case Spacer:
		vis.VisitSpacer(p)
	case Divider:
		vis.VisitDivider(p)
	case Empty:
		vis.VisitEmpty(p)
	default:
		panic(fmt.Sprintf("view: AnyView holds unknown or released payload %T", v.payload))
	}
}

// Visitor receives exactly one callback from AnyView.Visit, matching the
// held payload kind.
type Visitor interface {
	VisitContainer(Container)
	VisitStack(Stack)
	VisitGrid(Grid)
	VisitScroll(Scroll)
	VisitOverlay(Overlay)
	VisitButton(Button)
	VisitLink(Link)
	VisitText(Text)
	VisitTextField(TextField)
	VisitToggle(Toggle)
	VisitSlider(Slider)
	VisitStepper(Stepper)
	VisitPhoto(Photo)
	VisitVideo(Video)
	VisitLivePhoto(LivePhoto)
	VisitSpacer(Spacer)
	VisitDivider(Divider)
	VisitEmpty(Empty)
}

// ForceAs consumes v and returns its payload as the concrete kind P,
// transferring ownership of all nested handles to the caller.
//
// Calling ForceAs with the wrong kind is a contract violation, not a
// recoverable error: the caller must query KindID and branch first. The
// original design trades this safety margin for zero-overhead dispatch
// across the boundary, and wrong-kind extraction is a known source of
// host-side memory corruption — this implementation preserves the contract
// rather than adding a checked path that would change its performance
// characteristics. (In Go the violation surfaces as a type-assertion
// panic instead of silent corruption.)
func ForceAs[P Payload](v *AnyView) P {
	p := v.payload.(P)
	v.payload = nil
	return p
}
