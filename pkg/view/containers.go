package view

import "fmt"

// Axis selects the main direction of a Stack or Scroll.
type Axis int

const (
	// AxisVertical lays children out top to bottom.
	AxisVertical Axis = iota
	// AxisHorizontal lays children out leading to trailing.
	AxisHorizontal
	// AxisDepth stacks children back to front.
	AxisDepth
)

func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	case AxisDepth:
		return "depth"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Alignment positions overlay layers relative to the base view.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignTop
	AlignBottom
	AlignLeading
	AlignTrailing
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	case AlignLeading:
		return "leading"
	case AlignTrailing:
		return "trailing"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// Container wraps a single child view.
type Container struct {
	// Content is the owned child view.
	Content *AnyView
}

func (Container) KindID() TypeID { return KindContainer }
func (Container) isPayload()     {}

// Stack lays out its children along one axis.
type Stack struct {
	// Axis is the layout direction.
	Axis Axis
	// Spacing is the gap between adjacent children, in points.
	Spacing float64
	// Children are the owned child views, in layout order.
	Children []*AnyView
}

func (Stack) KindID() TypeID { return KindStack }
func (Stack) isPayload()     {}

// Grid lays out its children in rows of a fixed column count.
type Grid struct {
	// Columns is the number of columns per row.
	Columns int
	// Spacing is the gap between cells, in points.
	Spacing float64
	// Children are the owned cell views, in row-major order.
	Children []*AnyView
}

func (Grid) KindID() TypeID { return KindGrid }
func (Grid) isPayload()     {}

// Scroll makes its content scrollable along one axis.
type Scroll struct {
	// Axis is the scroll direction.
	Axis Axis
	// Content is the owned scrollable view.
	Content *AnyView
}

func (Scroll) KindID() TypeID { return KindScroll }
func (Scroll) isPayload()     {}

// Overlay places layers on top of a base view.
type Overlay struct {
	// Base is the owned view the layers sit on.
	Base *AnyView
	// Layers are the owned overlay views, back to front.
	Layers []*AnyView
	// Alignment positions the layers relative to the base.
	Alignment Alignment
}

func (Overlay) KindID() TypeID { return KindOverlay }
func (Overlay) isPayload()     {}
