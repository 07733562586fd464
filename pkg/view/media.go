package view

import (
	"fmt"

	"github.com/go-ripple/ripple/pkg/reactive"
	"github.com/go-ripple/ripple/pkg/text"
)

// ContentMode controls how media fits its bounds.
type ContentMode int

const (
	// FitContain scales the media to fit entirely within the bounds.
	FitContain ContentMode = iota
	// FitCover scales the media to fill the bounds, cropping overflow.
	FitCover
	// FitStretch distorts the media to exactly match the bounds.
	FitStretch
)

func (m ContentMode) String() string {
	switch m {
	case FitContain:
		return "contain"
	case FitCover:
		return "cover"
	case FitStretch:
		return "stretch"
	default:
		return fmt.Sprintf("ContentMode(%d)", int(m))
	}
}

// Photo displays a still image.
type Photo struct {
	// Source locates the image (URL or asset path).
	Source text.Value
	// Placeholder is the owned view shown while the image loads; may be nil.
	Placeholder *AnyView
	// Mode controls how the image fits its bounds.
	Mode ContentMode
}

func (Photo) KindID() TypeID { return KindPhoto }
func (Photo) isPayload()     {}

// Video plays a video stream.
type Video struct {
	// Source locates the stream.
	Source text.Value
	// AutoPlay starts playback as soon as the video is ready.
	AutoPlay bool
	// Muted is the owned binding controlling the mute state.
	Muted *reactive.Binding[bool]
}

func (Video) KindID() TypeID { return KindVideo }
func (Video) isPayload()     {}

// LivePhoto displays a live photo (still plus motion clip).
type LivePhoto struct {
	// Source locates the live photo bundle.
	Source text.Value
	// Muted silences the motion clip's audio.
	Muted bool
}

func (LivePhoto) KindID() TypeID { return KindLivePhoto }
func (LivePhoto) isPayload()     {}

// Spacer is a structural leaf that absorbs free space in a Stack.
type Spacer struct {
	// MinLength is the minimum space to claim, in points.
	MinLength float64
}

func (Spacer) KindID() TypeID { return KindSpacer }
func (Spacer) isPayload()     {}

// Divider is a structural leaf drawing a separation rule.
type Divider struct{}

func (Divider) KindID() TypeID { return KindDivider }
func (Divider) isPayload()     {}

// Empty is a structural leaf that renders nothing.
type Empty struct{}

func (Empty) KindID() TypeID { return KindEmpty }
func (Empty) isPayload()     {}
