package flex

import "math"

// breakLines partitions the reordered items into flex lines. Items
// accumulate onto the current line until a wrap is required, either by an
// item's WrapBefore flag or by the container's main-axis limit. Hidden
// items occupy their slot on a line but contribute nothing and never
// trigger a wrap. Once the line cap is reached, every remaining item is
// forced onto the last line.
func (p *pass) breakLines() {
	n := len(p.c.items)
	p.lines = nil
	if n == 0 {
		return
	}

	mainC := p.mainConstraint()
	line := newLine(0, p.padMain())

	for pos := 0; pos < n; pos++ {
		it := p.item(pos)
		if p.hidden[pos] {
			line.ItemCount++
			line.goneCount++
			continue
		}

		mainDim := p.requestedMain(it)
		if it.BasisPercent >= 0 && mainC.Mode == ModeExact {
			mainDim = int(math.Round(float64(mainC.Size) * it.BasisPercent))
		}

		sz := p.measureItem(pos, it, mainDim)
		p.measured[pos] = sz
		p.basis[pos] = p.mainOf(sz)

		// The slot offset counts hidden items too, so the divider rule
		// here agrees with the positioner's walk.
		dividerBefore := 0
		if p.dividerBeforeItem(pos, pos-line.FirstIndex) {
			dividerBefore = p.c.itemDividerLength
		}

		required := p.mainOf(sz) + p.marginsMain(it) + dividerBefore
		if p.wrapRequired(mainC, line, required, it) {
			p.addLine(line)
			line = newLine(pos, p.padMain())
			dividerBefore = 0
			if p.c.itemDividers.Beginning {
				dividerBefore = p.c.itemDividerLength
			}
			required = p.mainOf(sz) + p.marginsMain(it) + dividerBefore
		}

		line.ItemCount++
		line.MainSize += required
		line.DividerLengthInMainSize += dividerBefore
		line.TotalGrow += p.state[pos].grow
		line.TotalShrink += p.state[pos].shrink
		line.CrossSize = maxInt(line.CrossSize, p.crossOf(sz)+p.marginsCross(it))

		if p.usesBaseline(it) {
			if p.c.wrap != WrapReverse {
				line.MaxBaseline = maxInt(line.MaxBaseline,
					it.Content.Baseline()+it.Margin.Top)
			} else {
				line.MaxBaseline = maxInt(line.MaxBaseline,
					sz.H-it.Content.Baseline()+it.Margin.Bottom)
			}
		}
	}

	if line.ItemCount > 0 {
		p.addLine(line)
	}
}

// wrapRequired decides whether the next item starts a new line. A line
// never breaks while it has no visible item, under NoWrap, or once the
// line cap is reached.
func (p *pass) wrapRequired(mainC Constraint, line *Line, required int, it *Item) bool {
	if p.c.wrap == NoWrap || line.VisibleCount() == 0 {
		return false
	}
	if p.c.maxLines > 0 && len(p.lines)+1 >= p.c.maxLines {
		return false
	}
	if it.WrapBefore {
		return true
	}
	if mainC.Mode == ModeUnspecified {
		return false
	}
	return mainC.Size < line.MainSize+required
}

// addLine closes out a line, charging the trailing end divider once per
// line when configured.
func (p *pass) addLine(line *Line) {
	if p.c.itemDividers.End {
		line.MainSize += p.c.itemDividerLength
		line.DividerLengthInMainSize += p.c.itemDividerLength
	}
	p.lines = append(p.lines, line)
}
