// Package flex computes CSS-flexbox-style layout over an abstract item
// collection. The engine knows nothing about any particular widget toolkit:
// each item carries a Content capability through which the engine measures,
// queries visibility and baselines, and commits final geometry.
//
// One call to Container.Layout runs the whole pipeline (reorder, line
// breaking, main-size resolution, cross-size resolution, positioning) and
// places every visible item exactly once.
package flex

import "fmt"

// Direction is the direction in which items are laid out along the main axis.
type Direction int

const (
	Row Direction = iota
	RowReverse
	Column
	ColumnReverse
)

func (d Direction) valid() bool {
	return d >= Row && d <= ColumnReverse
}

// horizontal reports whether the main axis runs horizontally.
func (d Direction) horizontal() bool {
	return d == Row || d == RowReverse
}

func (d Direction) String() string {
	switch d {
	case Row:
		return "row"
	case RowReverse:
		return "row-reverse"
	case Column:
		return "column"
	case ColumnReverse:
		return "column-reverse"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// LayoutDirection is the writing direction of the host, which mirrors the
// main axis for row containers and the cross axis for column containers.
type LayoutDirection int

const (
	LTR LayoutDirection = iota
	RTL
)

func (ld LayoutDirection) valid() bool {
	return ld == LTR || ld == RTL
}

func (ld LayoutDirection) String() string {
	if ld == RTL {
		return "rtl"
	}
	return "ltr"
}

// FlexWrap controls whether the container is single- or multi-line, and the
// direction in which the lines stack along the cross axis.
type FlexWrap int

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

func (w FlexWrap) valid() bool {
	return w >= NoWrap && w <= WrapReverse
}

func (w FlexWrap) String() string {
	switch w {
	case NoWrap:
		return "nowrap"
	case Wrap:
		return "wrap"
	case WrapReverse:
		return "wrap-reverse"
	}
	return fmt.Sprintf("wrap(%d)", int(w))
}

// Justify distributes items and free space along the main axis of a line.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

func (j Justify) valid() bool {
	return j >= JustifyStart && j <= JustifySpaceEvenly
}

func (j Justify) String() string {
	switch j {
	case JustifyStart:
		return "flex-start"
	case JustifyEnd:
		return "flex-end"
	case JustifyCenter:
		return "center"
	case JustifySpaceBetween:
		return "space-between"
	case JustifySpaceAround:
		return "space-around"
	case JustifySpaceEvenly:
		return "space-evenly"
	}
	return fmt.Sprintf("justify(%d)", int(j))
}

// AlignItems aligns items along the cross axis within their line.
type AlignItems int

const (
	AlignItemsStart AlignItems = iota
	AlignItemsEnd
	AlignItemsCenter
	AlignItemsBaseline
	AlignItemsStretch
)

func (a AlignItems) valid() bool {
	return a >= AlignItemsStart && a <= AlignItemsStretch
}

func (a AlignItems) String() string {
	switch a {
	case AlignItemsStart:
		return "flex-start"
	case AlignItemsEnd:
		return "flex-end"
	case AlignItemsCenter:
		return "center"
	case AlignItemsBaseline:
		return "baseline"
	case AlignItemsStretch:
		return "stretch"
	}
	return fmt.Sprintf("align-items(%d)", int(a))
}

// AlignSelf overrides the container's AlignItems for a single item.
// AlignSelfAuto inherits the container value.
type AlignSelf int

const (
	AlignSelfAuto AlignSelf = iota - 1
	AlignSelfStart
	AlignSelfEnd
	AlignSelfCenter
	AlignSelfBaseline
	AlignSelfStretch
)

func (a AlignSelf) valid() bool {
	return a >= AlignSelfAuto && a <= AlignSelfStretch
}

func (a AlignSelf) String() string {
	if a == AlignSelfAuto {
		return "auto"
	}
	return AlignItems(a).String()
}

// resolve returns the effective alignment for an item under the given
// container-level AlignItems.
func (a AlignSelf) resolve(containerAlign AlignItems) AlignItems {
	if a == AlignSelfAuto {
		return containerAlign
	}
	return AlignItems(a)
}

// AlignContent distributes lines and free space along the cross axis.
type AlignContent int

const (
	AlignContentStart AlignContent = iota
	AlignContentEnd
	AlignContentCenter
	AlignContentSpaceBetween
	AlignContentSpaceAround
	AlignContentStretch
)

func (a AlignContent) valid() bool {
	return a >= AlignContentStart && a <= AlignContentStretch
}

func (a AlignContent) String() string {
	switch a {
	case AlignContentStart:
		return "flex-start"
	case AlignContentEnd:
		return "flex-end"
	case AlignContentCenter:
		return "center"
	case AlignContentSpaceBetween:
		return "space-between"
	case AlignContentSpaceAround:
		return "space-around"
	case AlignContentStretch:
		return "stretch"
	}
	return fmt.Sprintf("align-content(%d)", int(a))
}

// DividerFlags selects where dividers appear along one axis. Any combination
// of the three positions may be enabled.
type DividerFlags struct {
	Beginning bool // before the first visible item (or line)
	Middle    bool // between consecutive visible items (or lines)
	End       bool // after the last visible item (or line)
}

// None reports whether no divider position is enabled.
func (f DividerFlags) None() bool {
	return !f.Beginning && !f.Middle && !f.End
}
