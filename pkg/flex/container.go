package flex

import "log"

// Container holds the flex configuration and the ordered item collection,
// and runs layout passes over them. It is not safe for concurrent use: the
// host must not mutate the item collection while Layout is running.
type Container struct {
	direction    Direction
	layoutDir    LayoutDirection
	wrap         FlexWrap
	justify      Justify
	alignItems   AlignItems
	alignContent AlignContent

	// maxLines caps the number of lines the breaker may create; zero or
	// negative means no cap. Items past the cap are forced onto the last
	// line, a defined overflow, not an error.
	maxLines int

	padding Insets

	// itemDividers are placed between items along the main axis and consume
	// itemDividerLength of main-axis space each. lineDividers are placed
	// between lines along the cross axis.
	itemDividers      DividerFlags
	itemDividerLength int
	lineDividers      DividerFlags
	lineDividerLength int

	items []*Item

	// reordered is the Order permutation; orderCache detects stale
	// permutations between passes.
	reordered  []int
	orderCache []int

	// lines is the result of the last completed pass, dummy lines included.
	lines []*Line

	logger *log.Logger
}

// New returns a container with the CSS initial values: row direction, LTR,
// no wrapping, flex-start packing and alignment.
func New() *Container {
	return &Container{}
}

// SetLogger sets the destination for constraint-violation diagnostics.
// A nil logger silences them.
func (c *Container) SetLogger(l *log.Logger) { c.logger = l }

func (c *Container) logf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

// SetDirection sets the main-axis direction.
func (c *Container) SetDirection(d Direction) error {
	if !d.valid() {
		return configErr("direction", d)
	}
	c.direction = d
	return nil
}

// Direction returns the main-axis direction.
func (c *Container) Direction() Direction { return c.direction }

// SetLayoutDirection sets the writing direction (LTR or RTL).
func (c *Container) SetLayoutDirection(ld LayoutDirection) error {
	if !ld.valid() {
		return configErr("layout direction", ld)
	}
	c.layoutDir = ld
	return nil
}

// LayoutDirection returns the writing direction.
func (c *Container) LayoutDirection() LayoutDirection { return c.layoutDir }

// SetWrap sets the line wrapping mode.
func (c *Container) SetWrap(w FlexWrap) error {
	if !w.valid() {
		return configErr("flex-wrap", w)
	}
	c.wrap = w
	return nil
}

// Wrap returns the line wrapping mode.
func (c *Container) Wrap() FlexWrap { return c.wrap }

// SetJustifyContent sets the main-axis packing mode.
func (c *Container) SetJustifyContent(j Justify) error {
	if !j.valid() {
		return configErr("justify-content", j)
	}
	c.justify = j
	return nil
}

// JustifyContent returns the main-axis packing mode.
func (c *Container) JustifyContent() Justify { return c.justify }

// SetAlignItems sets the default cross-axis alignment for items.
func (c *Container) SetAlignItems(a AlignItems) error {
	if !a.valid() {
		return configErr("align-items", a)
	}
	c.alignItems = a
	return nil
}

// AlignItems returns the default cross-axis alignment for items.
func (c *Container) AlignItems() AlignItems { return c.alignItems }

// SetAlignContent sets the cross-axis distribution of lines.
func (c *Container) SetAlignContent(a AlignContent) error {
	if !a.valid() {
		return configErr("align-content", a)
	}
	c.alignContent = a
	return nil
}

// AlignContent returns the cross-axis distribution of lines.
func (c *Container) AlignContent() AlignContent { return c.alignContent }

// SetMaxLines caps the number of flex lines. Values below one remove the
// cap.
func (c *Container) SetMaxLines(n int) {
	if n < 1 {
		n = 0
	}
	c.maxLines = n
}

// MaxLines returns the line cap, or zero when unlimited.
func (c *Container) MaxLines() int { return c.maxLines }

// SetPadding sets the container's inner padding.
func (c *Container) SetPadding(p Insets) { c.padding = p }

// Padding returns the container's inner padding.
func (c *Container) Padding() Insets { return c.padding }

// SetItemDividers configures dividers between items along the main axis.
// length is the main-axis space each divider consumes.
func (c *Container) SetItemDividers(f DividerFlags, length int) {
	c.itemDividers = f
	c.itemDividerLength = maxInt(0, length)
}

// ItemDividers returns the main-axis divider flags and length.
func (c *Container) ItemDividers() (DividerFlags, int) {
	return c.itemDividers, c.itemDividerLength
}

// SetLineDividers configures dividers between lines along the cross axis.
// length is the cross-axis space each divider consumes.
func (c *Container) SetLineDividers(f DividerFlags, length int) {
	c.lineDividers = f
	c.lineDividerLength = maxInt(0, length)
}

// LineDividers returns the cross-axis divider flags and length.
func (c *Container) LineDividers() (DividerFlags, int) {
	return c.lineDividers, c.lineDividerLength
}

// Len returns the number of items, hidden ones included.
func (c *Container) Len() int { return len(c.items) }

// ItemAt returns the item at the given absolute index, or nil when out of
// range.
func (c *Container) ItemAt(i int) *Item {
	if i < 0 || i >= len(c.items) {
		return nil
	}
	return c.items[i]
}

// ReorderedItemAt returns the item at the given reordered position, or nil
// when out of range or before the first pass computed the permutation.
func (c *Container) ReorderedItemAt(pos int) *Item {
	if pos < 0 || pos >= len(c.reordered) {
		return nil
	}
	return c.items[c.reordered[pos]]
}

// Add appends an item to the collection.
func (c *Container) Add(it *Item) {
	c.items = append(c.items, it)
	c.reordered = nil
}

// Insert places an item at the given absolute index, shifting later items.
// Out-of-range indices append.
func (c *Container) Insert(i int, it *Item) {
	if i < 0 || i >= len(c.items) {
		c.Add(it)
		return
	}
	c.items = append(c.items[:i], append([]*Item{it}, c.items[i:]...)...)
	c.reordered = nil
}

// RemoveAt removes the item at the given absolute index.
func (c *Container) RemoveAt(i int) {
	if i < 0 || i >= len(c.items) {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.reordered = nil
}

// RemoveAll empties the item collection.
func (c *Container) RemoveAll() {
	c.items = nil
	c.reordered = nil
}

// Lines returns a snapshot of the last pass's flex lines, excluding dummy
// lines. Mutating the returned slice does not affect the container.
func (c *Container) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, l := range c.lines {
		if l.VisibleCount() == 0 {
			continue
		}
		out = append(out, *l)
	}
	return out
}

// LargestMainSize returns the largest main size among the last pass's
// lines, container padding and dividers included.
func (c *Container) LargestMainSize() int {
	largest := 0
	for _, l := range c.lines {
		largest = maxInt(largest, l.MainSize)
	}
	return largest
}

// SumOfCrossSize returns the sum of the last pass's line cross sizes plus
// the cross-axis divider lengths they imply.
func (c *Container) SumOfCrossSize() int {
	sum := 0
	for i, l := range c.lines {
		if c.dividerBeforeLine(i) {
			sum += c.lineDividerLength
		}
		if c.endDividerAfterLine(i) {
			sum += c.lineDividerLength
		}
		sum += l.CrossSize
	}
	return sum
}

// dividerBeforeLine reports whether a cross-axis divider is owed before the
// line at the given index of the last pass.
func (c *Container) dividerBeforeLine(i int) bool {
	return dividerBeforeLine(c.lines, i, c.lineDividers)
}

// endDividerAfterLine reports whether the trailing cross-axis divider is
// owed after the line at the given index of the last pass.
func (c *Container) endDividerAfterLine(i int) bool {
	return endDividerAfterLine(c.lines, i, c.lineDividers)
}

// dividerBeforeLine is the line analogue of the divider-before-item rule:
// a divider is owed before line i when every earlier line is dummy and the
// beginning flag is set, or some earlier line is visible and the middle
// flag is set.
func dividerBeforeLine(lines []*Line, i int, f DividerFlags) bool {
	if i < 0 || i >= len(lines) {
		return false
	}
	for _, l := range lines[:i] {
		if l.VisibleCount() > 0 {
			return f.Middle
		}
	}
	return f.Beginning
}

// endDividerAfterLine reports whether the trailing cross-axis divider is
// owed after line i: true only for the last line with visible items, and
// only when the end flag is set.
func endDividerAfterLine(lines []*Line, i int, f DividerFlags) bool {
	if i < 0 || i >= len(lines) || !f.End {
		return false
	}
	for _, l := range lines[i+1:] {
		if l.VisibleCount() > 0 {
			return false
		}
	}
	return true
}

// Layout runs one full pass under the given per-axis constraints and
// returns the container's resolved size. Every visible item's content is
// measured and then placed exactly once. Re-running with unchanged inputs
// produces identical output.
func (c *Container) Layout(width, height Constraint) Size {
	if c.reordered == nil || ordersChanged(c.items, c.orderCache) {
		c.reordered = reorderedIndices(c.items)
		c.orderCache = make([]int, len(c.items))
		for i, it := range c.items {
			c.orderCache[i] = it.Order
		}
	}

	p := newPass(c, width, height)
	p.breakLines()
	p.resolveMainSizes()
	p.resolveCrossSizes()
	p.stretchItems()
	p.resolveContainerSize()
	p.position()

	c.lines = p.lines
	return Size{W: p.containerW, H: p.containerH}
}
