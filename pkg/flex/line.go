package flex

import "math"

// Line is one wrapped run of items. A line owns the contiguous range of
// reordered item positions [FirstIndex, FirstIndex+ItemCount). Lines are
// created fresh by each layout pass; the resolvers mutate MainSize,
// CrossSize and the flex totals in place.
//
// A line whose every item is hidden is a "dummy" line: it exists only so
// align-content spacing has somewhere to live, and is filtered out of
// Container.Lines.
type Line struct {
	// FirstIndex is the reordered position of the line's first item.
	FirstIndex int
	// ItemCount counts all items on the line, hidden ones included.
	ItemCount int

	// MainSize is the line's extent along the main axis including item
	// margins, divider lengths and container padding.
	MainSize int
	// CrossSize is the line's extent along the cross axis.
	CrossSize int

	// DividerLengthInMainSize is the portion of MainSize consumed by
	// dividers; it is excluded from grow/shrink distribution.
	DividerLengthInMainSize int

	// TotalGrow and TotalShrink are the sums of the line's items'
	// coefficients. The main-size resolver decrements them as items freeze
	// at a min/max bound.
	TotalGrow   float64
	TotalShrink float64

	// MaxBaseline is the largest baseline offset among the line's
	// baseline-aligned items, measured from the line's cross start (or from
	// the cross end under wrap-reverse).
	MaxBaseline int

	goneCount int

	// Placed bounds, valid after positioning. Decorations (margins and
	// dividers adjacent to the line's items) are included.
	left, top, right, bottom int
}

// VisibleCount returns the number of items on the line that are not hidden.
func (l *Line) VisibleCount() int {
	return l.ItemCount - l.goneCount
}

// Bounds returns the rectangle the line's items and their decorations
// occupy. It is meaningful only after a layout pass has positioned the line
// and the line has at least one visible item.
func (l *Line) Bounds() Rect {
	if l.left > l.right || l.top > l.bottom {
		return Rect{}
	}
	return Rect{X: l.left, Y: l.top, W: l.right - l.left, H: l.bottom - l.top}
}

func newLine(firstIndex, mainSize int) *Line {
	return &Line{
		FirstIndex: firstIndex,
		MainSize:   mainSize,
		left:       math.MaxInt32,
		top:        math.MaxInt32,
		right:      math.MinInt32,
		bottom:     math.MinInt32,
	}
}

// expandBounds grows the line's placed bounds to cover an item rectangle
// plus its surrounding decoration lengths.
func (l *Line) expandBounds(r Rect, m Insets, leftDec, topDec, rightDec, bottomDec int) {
	l.left = minInt(l.left, r.X-m.Left-leftDec)
	l.top = minInt(l.top, r.Y-m.Top-topDec)
	l.right = maxInt(l.right, r.Right()+m.Right+rightDec)
	l.bottom = maxInt(l.bottom, r.Bottom()+m.Bottom+bottomDec)
}
