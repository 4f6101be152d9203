package flex

import "math"

// resolveCrossSizes fixes each line's cross size and applies the
// align-content distribution across lines.
//
// Baseline-aligned lines are enlarged first: an item sitting below the
// line's max baseline needs room for its off-baseline overhang, so the
// line's cross size becomes the largest item extent after shifting every
// baseline-aligned item onto the common baseline.
//
// With an exact cross constraint, a single line simply fills the container;
// multiple lines distribute the free space per align-content. Stretch
// grows every line's cross size by an equal share (rounding error carried
// line to line); space-between and space-around materialize the gaps as
// dummy spacing lines, which keeps the divider and positioning walks
// oblivious to them; end and center are realized as a block offset
// consumed by the positioner, leaving line sizes untouched.
func (p *pass) resolveCrossSizes() {
	if p.c.alignItems == AlignItemsBaseline && p.horizontal() {
		p.applyBaselineCrossSizes()
	}

	crossC := p.crossConstraint()
	if crossC.Mode != ModeExact || len(p.lines) == 0 {
		return
	}
	size := crossC.Size

	if len(p.lines) == 1 {
		p.lines[0].CrossSize = size - p.padCross()
		return
	}

	total := p.sumCrossSize() + p.padCross()
	free := size - total
	switch p.c.alignContent {
	case AlignContentStretch:
		if free > 0 {
			p.stretchLines(free)
		}
	case AlignContentSpaceBetween:
		if free > 0 && len(p.lines) >= 2 {
			p.insertSpacingBetween(free)
		}
	case AlignContentSpaceAround:
		if free > 0 {
			p.insertSpacingAround(free)
		} else {
			p.crossOffset = free / 2
		}
	case AlignContentCenter:
		p.crossOffset = free / 2
	case AlignContentEnd:
		p.crossOffset = free
	}
}

// applyBaselineCrossSizes recomputes line cross sizes for container-level
// baseline alignment. Under wrap-reverse the baseline is anchored to the
// cross end, so the roles of the top and bottom margins swap.
func (p *pass) applyBaselineCrossSizes() {
	for _, line := range p.lines {
		largest := 0
		for j := 0; j < line.ItemCount; j++ {
			pos := line.FirstIndex + j
			if p.hidden[pos] {
				continue
			}
			it := p.item(pos)
			sz := p.measured[pos]
			if p.c.wrap != WrapReverse {
				shift := maxInt(line.MaxBaseline-it.Content.Baseline(), it.Margin.Top)
				largest = maxInt(largest, sz.H+shift+it.Margin.Bottom)
			} else {
				shift := maxInt(line.MaxBaseline-sz.H+it.Content.Baseline(), it.Margin.Bottom)
				largest = maxInt(largest, sz.H+it.Margin.Top+shift)
			}
		}
		line.CrossSize = largest
	}
}

// stretchLines grows every line by an equal share of the free space.
func (p *pass) stretchLines(free int) {
	share := float64(free) / float64(len(p.lines))
	acc := 0.0
	for _, line := range p.lines {
		raw := float64(line.CrossSize) + share + acc
		rounded := int(math.Round(raw))
		acc = raw - float64(rounded)
		line.CrossSize = rounded
	}
}

// insertSpacingBetween rebuilds the line list with a dummy spacing line
// between each pair of real lines.
func (p *pass) insertSpacingBetween(free int) {
	space := float64(free) / float64(len(p.lines)-1)
	acc := 0.0
	out := make([]*Line, 0, 2*len(p.lines)-1)
	for i, line := range p.lines {
		if i > 0 {
			raw := space + acc
			gap := int(math.Round(raw))
			acc = raw - float64(gap)
			dummy := newLine(line.FirstIndex, 0)
			dummy.CrossSize = gap
			out = append(out, dummy)
		}
		out = append(out, line)
	}
	p.lines = out
}

// insertSpacingAround rebuilds the line list with a dummy spacing line
// before and after every real line, giving each line an equal share of the
// free space split across its two sides.
func (p *pass) insertSpacingAround(free int) {
	half := free / (len(p.lines) * 2)
	out := make([]*Line, 0, 3*len(p.lines))
	for _, line := range p.lines {
		before := newLine(line.FirstIndex, 0)
		before.CrossSize = half
		after := newLine(line.FirstIndex, 0)
		after.CrossSize = half
		out = append(out, before, line, after)
	}
	p.lines = out
}

// stretchItems re-measures every stretch-aligned item to exactly fill its
// line's cross size minus the item's margins, clamped to the item's cross
// bounds. This is the second permitted measurement for those items.
func (p *pass) stretchItems() {
	for _, line := range p.lines {
		for j := 0; j < line.ItemCount; j++ {
			pos := line.FirstIndex + j
			if p.hidden[pos] {
				continue
			}
			it := p.item(pos)
			if it.AlignSelf.resolve(p.c.alignItems) != AlignItemsStretch {
				continue
			}
			newCross := line.CrossSize - p.marginsCross(it)
			newCross = clampInt(newCross, p.minCross(pos), p.maxCross(pos))
			if newCross != p.crossOf(p.measured[pos]) && newCross >= 0 {
				p.remeasureCross(pos, it, newCross)
			}
		}
	}
}
