package view

import (
	"github.com/go-ripple/ripple/pkg/app"
	"github.com/go-ripple/ripple/pkg/reactive"
	"github.com/go-ripple/ripple/pkg/text"
)

// ButtonRole hints at the semantic weight of a button.
type ButtonRole int

const (
	// RoleDefault is an ordinary button.
	RoleDefault ButtonRole = iota
	// RoleCancel dismisses the surrounding context.
	RoleCancel
	// RoleDestructive performs an irreversible action.
	RoleDestructive
)

// Button is a tappable control that fires an action.
type Button struct {
	// Label is the owned label view.
	Label *AnyView
	// Action is the owned action fired on tap.
	Action *app.Action
	// Role is the button's semantic role.
	Role ButtonRole
}

func (Button) KindID() TypeID { return KindButton }
func (Button) isPayload()     {}

// Link opens a destination URL when activated.
type Link struct {
	// Label is the owned label view.
	Label *AnyView
	// URL is the destination.
	URL text.Value
}

func (Link) KindID() TypeID { return KindLink }
func (Link) isPayload()     {}

// Text displays a read-only, possibly derived string.
type Text struct {
	// Content is the owned observable string.
	Content *reactive.Computed[text.Value]
}

func (Text) KindID() TypeID { return KindText }
func (Text) isPayload()     {}

// TextField is an editable single-line text input bound to a string cell.
type TextField struct {
	// Value is the owned binding the field edits.
	Value *reactive.Binding[text.Value]
	// Prompt is the placeholder shown while the field is empty.
	Prompt text.Value
	// Secure masks the entered text.
	Secure bool
}

func (TextField) KindID() TypeID { return KindTextField }
func (TextField) isPayload()     {}

// Toggle is an on/off switch bound to a boolean cell.
type Toggle struct {
	// IsOn is the owned binding the toggle flips.
	IsOn *reactive.Binding[bool]
	// Label is the owned label view.
	Label *AnyView
}

func (Toggle) KindID() TypeID { return KindToggle }
func (Toggle) isPayload()     {}

// Slider selects a continuous value from a closed range.
type Slider struct {
	// Value is the owned binding the slider drives.
	Value *reactive.Binding[float64]
	// Min and Max bound the selectable range.
	Min, Max float64
	// Step is the increment granularity; 0 means continuous.
	Step float64
	// Label is the owned label view.
	Label *AnyView
}

func (Slider) KindID() TypeID { return KindSlider }
func (Slider) isPayload()     {}

// Stepper increments or decrements a value by a fixed step.
type Stepper struct {
	// Value is the owned binding the stepper drives.
	Value *reactive.Binding[float64]
	// Min and Max bound the selectable range.
	Min, Max float64
	// Step is the per-tap increment.
	Step float64
	// Label is the owned label view.
	Label *AnyView
}

func (Stepper) KindID() TypeID { return KindStepper }
func (Stepper) isPayload()     {}
