package flex

// Requested dimension sentinels for Item.Width and Item.Height.
const (
	// SizeFill requests the full extent of the container on that axis.
	SizeFill = -1
	// SizeFit requests the item's natural measured size.
	SizeFit = -2
)

// Defaults for item flex properties.
const (
	OrderDefault      = 1
	GrowDefault       = 0.0
	ShrinkDefault     = 1.0
	BasisPercentUnset = -1.0

	// MaxSizeDefault is the unset sentinel for MaxWidth/MaxHeight.
	MaxSizeDefault = 1<<24 - 1
)

// Content is the capability an item's host must provide. The engine depends
// only on this interface, never on a concrete widget type.
//
// Measure asks the content for its natural size under the given per-axis
// constraints. It is called once per item per layout pass, plus at most once
// more when the item is a grow/shrink or stretch target and its constraint
// changed. Baseline is consulted only when the item's effective alignment is
// baseline. Place commits final geometry and is called exactly once per
// visible item per pass.
type Content interface {
	Measure(horizontal, vertical Constraint) Size
	Hidden() bool
	Baseline() int
	Place(r Rect)
}

// Item is the per-item flex configuration. The zero value is not useful;
// construct items with NewItem so defaults match the CSS initial values
// (order 1, grow 0, shrink 1, basis unset, align-self auto, fit-content on
// both axes).
type Item struct {
	Content Content

	// Order groups items for layout; lower orders lay out first. Items with
	// equal order keep their insertion order.
	Order int

	// Grow is the flex-grow coefficient. Zero means the item never grows.
	Grow float64

	// Shrink is the flex-shrink coefficient. Zero means the item never
	// shrinks below its measured size.
	Shrink float64

	// BasisPercent, when in [0, 1], overrides the measured main size with
	// the given fraction of the container's main size, provided the
	// container's main constraint is exact. Negative means unset.
	BasisPercent float64

	AlignSelf AlignSelf

	MinWidth, MinHeight int
	MaxWidth, MaxHeight int

	// WrapBefore forces this item onto a new line when wrapping is enabled.
	WrapBefore bool

	// Width and Height are the requested dimensions: nonnegative pixels,
	// SizeFill, or SizeFit.
	Width, Height int

	Margin Insets
}

// NewItem returns an Item with the default flex properties wrapping the
// given content.
func NewItem(content Content) *Item {
	return &Item{
		Content:      content,
		Order:        OrderDefault,
		Grow:         GrowDefault,
		Shrink:       ShrinkDefault,
		BasisPercent: BasisPercentUnset,
		AlignSelf:    AlignSelfAuto,
		MaxWidth:     MaxSizeDefault,
		MaxHeight:    MaxSizeDefault,
		Width:        SizeFit,
		Height:       SizeFit,
	}
}

// hidden reports whether the item is skipped for measurement, positioning
// and divider adjacency. An item without content behaves as hidden.
func (it *Item) hidden() bool {
	return it.Content == nil || it.Content.Hidden()
}
