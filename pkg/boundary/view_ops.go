package boundary

import "github.com/go-ripple/ripple/pkg/view"

var views = newArena[*view.AnyView]("view")

// ExportView issues a handle for a native-side view, transferring
// ownership to the boundary caller. This is how a view-tree producer hands
// its root (and, during extraction, every nested sub-view) to the host.
func ExportView(v *view.AnyView) Handle {
	if v == nil {
		return NilHandle
	}
	return views.put(v)
}

// ViewKindID returns the identifier of the kind this instance holds, as
// its 16-byte blob. The host compares it against the per-kind constants
// before choosing a force extractor.
func ViewKindID(h Handle) [16]byte {
	return mustGet(views, "boundary.ViewKindID", h).KindID().Bytes()
}

// ViewRelease destroys the view and everything it still owns. Must be
// called exactly once, and only on views whose payload was not extracted.
func ViewRelease(h Handle) {
	mustTake(views, "boundary.ViewRelease", h).Release()
}

// KindID returns the 16-byte identifier blob for a kind constant, for
// hosts that index the registry by name instead of linking the constants.
func KindID(name string) ([16]byte, bool) {
	id, ok := view.LookupKind(name)
	if !ok {
		return [16]byte{}, false
	}
	return id.Bytes(), true
}

func exportViews(vs []*view.AnyView) []Handle {
	out := make([]Handle, len(vs))
	for i, v := range vs {
		out[i] = ExportView(v)
	}
	return out
}

// Payload mirrors. Each force extractor consumes the view handle and
// returns the payload's fields by value, with every nested owned object
// re-issued as a handle the caller now owns. Calling a force extractor
// whose kind does not match the instance is a contract violation: callers
// must branch on ViewKindID first. See the package comment.

// ContainerPayload mirrors view.Container across the boundary.
type ContainerPayload struct {
	Content Handle
}

// ViewForceContainer consumes h and extracts its Container payload.
func ViewForceContainer(h Handle) ContainerPayload {
	p := view.ForceAs[view.Container](mustTake(views, "boundary.ViewForceContainer", h))
	return ContainerPayload{Content: ExportView(p.Content)}
}

// StackPayload mirrors view.Stack across the boundary.
type StackPayload struct {
	Axis     int32
	Spacing  float64
	Children []Handle
}

// ViewForceStack consumes h and extracts its Stack payload.
func ViewForceStack(h Handle) StackPayload {
	p := view.ForceAs[view.Stack](mustTake(views, "boundary.ViewForceStack", h))
	return StackPayload{
		Axis:     int32(p.Axis),
		Spacing:  p.Spacing,
		Children: exportViews(p.Children),
	}
}

// GridPayload mirrors view.Grid across the boundary.
type GridPayload struct {
	Columns  int32
	Spacing  float64
	Children []Handle
}

// ViewForceGrid consumes h and extracts its Grid payload.
func ViewForceGrid(h Handle) GridPayload {
	p := view.ForceAs[view.Grid](mustTake(views, "boundary.ViewForceGrid", h))
	return GridPayload{
		Columns:  int32(p.Columns),
		Spacing:  p.Spacing,
		Children: exportViews(p.Children),
	}
}

// ScrollPayload mirrors view.Scroll across the boundary.
type ScrollPayload struct {
	Axis    int32
	Content Handle
}

// ViewForceScroll consumes h and extracts its Scroll payload.
func ViewForceScroll(h Handle) ScrollPayload {
	p := view.ForceAs[view.Scroll](mustTake(views, "boundary.ViewForceScroll", h))
	return ScrollPayload{Axis: int32(p.Axis), Content: ExportView(p.Content)}
}

// OverlayPayload mirrors view.Overlay across the boundary.
type OverlayPayload struct {
	Base      Handle
	Layers    []Handle
	Alignment int32
}

// ViewForceOverlay consumes h and extracts its Overlay payload.
func ViewForceOverlay(h Handle) OverlayPayload {
	p := view.ForceAs[view.Overlay](mustTake(views, "boundary.ViewForceOverlay", h))
	return OverlayPayload{
		Base:      ExportView(p.Base),
		Layers:    exportViews(p.Layers),
		Alignment: int32(p.Alignment),
	}
}

// ButtonPayload mirrors view.Button across the boundary.
type ButtonPayload struct {
	Label  Handle
	Action Handle
	Role   int32
}

// ViewForceButton consumes h and extracts its Button payload.
func ViewForceButton(h Handle) ButtonPayload {
	p := view.ForceAs[view.Button](mustTake(views, "boundary.ViewForceButton", h))
	return ButtonPayload{
		Label:  ExportView(p.Label),
		Action: ExportAction(p.Action),
		Role:   int32(p.Role),
	}
}

// LinkPayload mirrors view.Link across the boundary.
type LinkPayload struct {
	Label Handle
	URL   Handle
}

// ViewForceLink consumes h and extracts its Link payload.
func ViewForceLink(h Handle) LinkPayload {
	p := view.ForceAs[view.Link](mustTake(views, "boundary.ViewForceLink", h))
	return LinkPayload{Label: ExportView(p.Label), URL: ExportText(p.URL)}
}

// TextPayload mirrors view.Text across the boundary.
type TextPayload struct {
	Content Handle
}

// ViewForceText consumes h and extracts its Text payload.
func ViewForceText(h Handle) TextPayload {
	p := view.ForceAs[view.Text](mustTake(views, "boundary.ViewForceText", h))
	return TextPayload{Content: ExportComputedText(p.Content)}
}

// TextFieldPayload mirrors view.TextField across the boundary.
type TextFieldPayload struct {
	Value  Handle
	Prompt Handle
	Secure bool
}

// ViewForceTextField consumes h and extracts its TextField payload.
func ViewForceTextField(h Handle) TextFieldPayload {
	p := view.ForceAs[view.TextField](mustTake(views, "boundary.ViewForceTextField", h))
	return TextFieldPayload{
		Value:  ExportBindingText(p.Value),
		Prompt: ExportText(p.Prompt),
		Secure: p.Secure,
	}
}

// TogglePayload mirrors view.Toggle across the boundary.
type TogglePayload struct {
	IsOn  Handle
	Label Handle
}

// ViewForceToggle consumes h and extracts its Toggle payload.
func ViewForceToggle(h Handle) TogglePayload {
	p := view.ForceAs[view.Toggle](mustTake(views, "boundary.ViewForceToggle", h))
	return TogglePayload{IsOn: ExportBindingBool(p.IsOn), Label: ExportView(p.Label)}
}

// SliderPayload mirrors view.Slider across the boundary.
type SliderPayload struct {
	Value          Handle
	Min, Max, Step float64
	Label          Handle
}

// ViewForceSlider consumes h and extracts its Slider payload.
func ViewForceSlider(h Handle) SliderPayload {
	p := view.ForceAs[view.Slider](mustTake(views, "boundary.ViewForceSlider", h))
	return SliderPayload{
		Value: ExportBindingNumber(p.Value),
		Min:   p.Min,
		Max:   p.Max,
		Step:  p.Step,
		Label: ExportView(p.Label),
	}
}

// StepperPayload mirrors view.Stepper across the boundary.
type StepperPayload struct {
	Value          Handle
	Min, Max, Step float64
	Label          Handle
}

// ViewForceStepper consumes h and extracts its Stepper payload.
func ViewForceStepper(h Handle) StepperPayload {
	p := view.ForceAs[view.Stepper](mustTake(views, "boundary.ViewForceStepper", h))
	return StepperPayload{
		Value: ExportBindingNumber(p.Value),
		Min:   p.Min,
		Max:   p.Max,
		Step:  p.Step,
		Label: ExportView(p.Label),
	}
}

// PhotoPayload mirrors view.Photo across the boundary.
type PhotoPayload struct {
	Source      Handle
	Placeholder Handle
	Mode        int32
}

// ViewForcePhoto consumes h and extracts its Photo payload.
func ViewForcePhoto(h Handle) PhotoPayload {
	p := view.ForceAs[view.Photo](mustTake(views, "boundary.ViewForcePhoto", h))
	return PhotoPayload{
		Source:      ExportText(p.Source),
		Placeholder: ExportView(p.Placeholder),
		Mode:        int32(p.Mode),
	}
}

// VideoPayload mirrors view.Video across the boundary.
type VideoPayload struct {
	Source   Handle
	AutoPlay bool
	Muted    Handle
}

// ViewForceVideo consumes h and extracts its Video payload.
func ViewForceVideo(h Handle) VideoPayload {
	p := view.ForceAs[view.Video](mustTake(views, "boundary.ViewForceVideo", h))
	return VideoPayload{
		Source:   ExportText(p.Source),
		AutoPlay: p.AutoPlay,
		Muted:    ExportBindingBool(p.Muted),
	}
}

// LivePhotoPayload mirrors view.LivePhoto across the boundary.
type LivePhotoPayload struct {
	Source Handle
	Muted  bool
}

// ViewForceLivePhoto consumes h and extracts its LivePhoto payload.
func ViewForceLivePhoto(h Handle) LivePhotoPayload {
	p := view.ForceAs[view.LivePhoto](mustTake(views, "boundary.ViewForceLivePhoto", h))
	return LivePhotoPayload{Source: ExportText(p.Source), Muted: p.Muted}
}

// SpacerPayload mirrors view.Spacer across the boundary.
type SpacerPayload struct {
	MinLength float64
}

// ViewForceSpacer consumes h and extracts its Spacer payload.
func ViewForceSpacer(h Handle) SpacerPayload {
	p := view.ForceAs[view.Spacer](mustTake(views, "boundary.ViewForceSpacer", h))
	return SpacerPayload{MinLength: p.MinLength}
}

// ViewForceDivider consumes h, discarding the empty Divider payload.
func ViewForceDivider(h Handle) {
	view.ForceAs[view.Divider](mustTake(views, "boundary.ViewForceDivider", h))
}

// ViewForceEmpty consumes h, discarding the empty payload.
func ViewForceEmpty(h Handle) {
	view.ForceAs[view.Empty](mustTake(views, "boundary.ViewForceEmpty", h))
}
