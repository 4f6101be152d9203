package flex

// itemState holds an item's sanitized flex coefficients and bounds for one
// pass. Sanitization applies the constraint-violation policy: negative
// coefficients clamp to zero and inverted min/max pairs are reordered, with
// a diagnostic, and layout continues.
type itemState struct {
	grow, shrink           float64
	minW, minH, maxW, maxH int
}

// pass is the working state of one layout pass. A fresh pass is built per
// Layout call; nothing in it survives into the next pass.
type pass struct {
	c *Container

	widthC, heightC Constraint

	// Per reordered position.
	measured []Size
	state    []itemState
	hidden   []bool
	frozen   []bool
	basis    []int

	lines []*Line

	// containerMain is the main-size distribution target resolved from the
	// main constraint and the broken lines.
	containerMain int

	// crossOffset shifts the whole block of lines along the cross axis for
	// align-content end/center.
	crossOffset int

	containerW, containerH int
}

func newPass(c *Container, width, height Constraint) *pass {
	n := len(c.items)
	p := &pass{
		c:        c,
		widthC:   width,
		heightC:  height,
		measured: make([]Size, n),
		state:    make([]itemState, n),
		hidden:   make([]bool, n),
		frozen:   make([]bool, n),
		basis:    make([]int, n),
	}
	for pos := 0; pos < n; pos++ {
		it := p.item(pos)
		p.hidden[pos] = it.hidden()
		p.state[pos] = p.sanitize(pos, it)
	}
	return p
}

// item returns the item at a reordered position.
func (p *pass) item(pos int) *Item {
	return p.c.items[p.c.reordered[pos]]
}

func (p *pass) sanitize(pos int, it *Item) itemState {
	s := itemState{
		grow:   it.Grow,
		shrink: it.Shrink,
		minW:   it.MinWidth,
		minH:   it.MinHeight,
		maxW:   it.MaxWidth,
		maxH:   it.MaxHeight,
	}
	if s.grow < 0 {
		p.c.logf("flex: item %d: negative flex-grow %v clamped to 0", p.c.reordered[pos], s.grow)
		s.grow = 0
	}
	if s.shrink < 0 {
		p.c.logf("flex: item %d: negative flex-shrink %v clamped to 0", p.c.reordered[pos], s.shrink)
		s.shrink = 0
	}
	if s.minW > s.maxW {
		p.c.logf("flex: item %d: min width %d exceeds max width %d, bounds swapped", p.c.reordered[pos], s.minW, s.maxW)
		s.minW, s.maxW = s.maxW, s.minW
	}
	if s.minH > s.maxH {
		p.c.logf("flex: item %d: min height %d exceeds max height %d, bounds swapped", p.c.reordered[pos], s.minH, s.maxH)
		s.minH, s.maxH = s.maxH, s.minH
	}
	return s
}

// Axis helpers. "Main" and "cross" resolve against the container direction
// so the breaker and resolvers are written once for both orientations.

func (p *pass) horizontal() bool { return p.c.direction.horizontal() }

func (p *pass) mainConstraint() Constraint {
	if p.horizontal() {
		return p.widthC
	}
	return p.heightC
}

func (p *pass) crossConstraint() Constraint {
	if p.horizontal() {
		return p.heightC
	}
	return p.widthC
}

func (p *pass) padMain() int {
	if p.horizontal() {
		return p.c.padding.Horizontal()
	}
	return p.c.padding.Vertical()
}

func (p *pass) padCross() int {
	if p.horizontal() {
		return p.c.padding.Vertical()
	}
	return p.c.padding.Horizontal()
}

func (p *pass) mainOf(s Size) int {
	if p.horizontal() {
		return s.W
	}
	return s.H
}

func (p *pass) crossOf(s Size) int {
	if p.horizontal() {
		return s.H
	}
	return s.W
}

func (p *pass) marginsMain(it *Item) int {
	if p.horizontal() {
		return it.Margin.Horizontal()
	}
	return it.Margin.Vertical()
}

func (p *pass) marginsCross(it *Item) int {
	if p.horizontal() {
		return it.Margin.Vertical()
	}
	return it.Margin.Horizontal()
}

func (p *pass) requestedMain(it *Item) int {
	if p.horizontal() {
		return it.Width
	}
	return it.Height
}

func (p *pass) requestedCross(it *Item) int {
	if p.horizontal() {
		return it.Height
	}
	return it.Width
}

func (p *pass) minMain(pos int) int {
	if p.horizontal() {
		return p.state[pos].minW
	}
	return p.state[pos].minH
}

func (p *pass) maxMain(pos int) int {
	if p.horizontal() {
		return p.state[pos].maxW
	}
	return p.state[pos].maxH
}

func (p *pass) minCross(pos int) int {
	if p.horizontal() {
		return p.state[pos].minH
	}
	return p.state[pos].minW
}

func (p *pass) maxCross(pos int) int {
	if p.horizontal() {
		return p.state[pos].maxH
	}
	return p.state[pos].maxW
}

func (p *pass) sizeFromAxes(main, cross int) Size {
	if p.horizontal() {
		return Size{W: main, H: cross}
	}
	return Size{W: cross, H: main}
}

// measureItem performs the initial measurement of an item: derive the child
// constraints from the container's, ask the content, then clamp to the
// item's min/max bounds. mainDim is the requested main dimension after any
// basis-percent override (pixels, SizeFill or SizeFit). A clamp triggers
// the one permitted re-measure with exact sizes so the content's last-seen
// constraints match what will be placed.
func (p *pass) measureItem(pos int, it *Item, mainDim int) Size {
	consumedMain := p.padMain() + p.marginsMain(it)
	consumedCross := p.padCross() + p.marginsCross(it)

	mainC := childConstraint(p.mainConstraint(), consumedMain, mainDim)
	crossC := childConstraint(p.crossConstraint(), consumedCross, p.requestedCross(it))

	var sz Size
	if p.horizontal() {
		sz = it.Content.Measure(mainC, crossC)
	} else {
		sz = it.Content.Measure(crossC, mainC)
	}
	return p.clampMeasured(pos, it, sz)
}

// clampMeasured applies the item's min/max bounds to a measured size,
// re-measuring with exact constraints when a bound changed the outcome.
func (p *pass) clampMeasured(pos int, it *Item, sz Size) Size {
	s := p.state[pos]
	w := clampInt(sz.W, s.minW, s.maxW)
	h := clampInt(sz.H, s.minH, s.maxH)
	if w != sz.W || h != sz.H {
		it.Content.Measure(Exact(w), Exact(h))
	}
	return Size{W: w, H: h}
}

// remeasureMain fixes an item's main size after grow/shrink distribution,
// letting the content recompute its cross size under the new constraint.
func (p *pass) remeasureMain(pos int, it *Item, newMain int) {
	consumedCross := p.padCross() + p.marginsCross(it)
	crossC := childConstraint(p.crossConstraint(), consumedCross, p.requestedCross(it))

	var sz Size
	if p.horizontal() {
		sz = it.Content.Measure(Exact(newMain), crossC)
	} else {
		sz = it.Content.Measure(crossC, Exact(newMain))
	}
	cross := clampInt(p.crossOf(sz), p.minCross(pos), p.maxCross(pos))
	p.measured[pos] = p.sizeFromAxes(newMain, cross)
}

// remeasureCross fixes an item's cross size for stretching.
func (p *pass) remeasureCross(pos int, it *Item, newCross int) {
	main := p.mainOf(p.measured[pos])
	if p.horizontal() {
		it.Content.Measure(Exact(main), Exact(newCross))
	} else {
		it.Content.Measure(Exact(newCross), Exact(main))
	}
	p.measured[pos] = p.sizeFromAxes(main, newCross)
}

// usesBaseline reports whether the item's effective alignment is baseline.
// Baseline alignment only applies when the main axis is horizontal.
func (p *pass) usesBaseline(it *Item) bool {
	return p.horizontal() && it.AlignSelf.resolve(p.c.alignItems) == AlignItemsBaseline
}

// dividerBeforeItem reports whether a main-axis divider is owed before the
// item at reordered position pos, which sits at indexInLine within line.
// Hidden items are transparent: an item preceded only by hidden items
// counts as the line's first.
func (p *pass) dividerBeforeItem(pos, indexInLine int) bool {
	for i := 1; i <= indexInLine; i++ {
		if !p.hidden[pos-i] {
			return p.c.itemDividers.Middle
		}
	}
	return p.c.itemDividers.Beginning
}

func (p *pass) largestMainSize() int {
	largest := 0
	for _, l := range p.lines {
		largest = maxInt(largest, l.MainSize)
	}
	return largest
}

func (p *pass) sumCrossSize() int {
	sum := 0
	for i, l := range p.lines {
		if dividerBeforeLine(p.lines, i, p.c.lineDividers) {
			sum += p.c.lineDividerLength
		}
		if endDividerAfterLine(p.lines, i, p.c.lineDividers) {
			sum += p.c.lineDividerLength
		}
		sum += l.CrossSize
	}
	return sum
}

// resolveContainerSize reconciles the computed lines with the constraints
// imposed on the container itself.
func (p *pass) resolveContainerSize() {
	// Line main sizes already include the main-axis padding; an empty
	// container still reports its padding as content.
	calculatedMain := maxInt(p.largestMainSize(), p.padMain())
	calculatedCross := p.sumCrossSize() + p.padCross()
	if p.horizontal() {
		p.containerW = resolveSize(calculatedMain, p.widthC)
		p.containerH = resolveSize(calculatedCross, p.heightC)
	} else {
		p.containerW = resolveSize(calculatedCross, p.widthC)
		p.containerH = resolveSize(calculatedMain, p.heightC)
	}
}
