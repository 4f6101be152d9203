package flex

import "math"

// resolveMainSizes distributes each line's slack or overflow across its
// items. The distribution target is the container's resolved main size:
// the exact constraint when one is given, otherwise the largest line main
// size capped by an at-most constraint.
func (p *pass) resolveMainSizes() {
	mainC := p.mainConstraint()
	switch mainC.Mode {
	case ModeExact:
		p.containerMain = mainC.Size
	case ModeAtMost:
		p.containerMain = minInt(p.largestMainSize(), mainC.Size)
	default:
		p.containerMain = p.largestMainSize()
	}

	for _, line := range p.lines {
		switch {
		case line.MainSize < p.containerMain && line.TotalGrow > 0:
			p.growLine(line, p.containerMain)
		case line.MainSize > p.containerMain && line.TotalShrink > 0:
			p.shrinkLine(line, p.containerMain)
		}
	}
}

// growLine distributes target-MainSize across the line's growable items in
// proportion to their grow coefficients. Items that hit their max bound
// freeze there and drop out of the distribution; the loop repeats with the
// residual slack until no item newly freezes (each round freezes at least
// one item, so the iteration is bounded by the line's item count).
//
// Rounding error from the fractional shares accumulates across the walk:
// whenever it exceeds one pixel it is paid back immediately, and whatever
// remains lands on the line's last item, so an unclamped line's sizes sum
// exactly to the target.
func (p *pass) growLine(line *Line, target int) {
	for {
		sizeBefore := line.MainSize
		free := target - line.MainSize
		if free <= 0 || line.TotalGrow <= 0 {
			return
		}
		unit := float64(free) / line.TotalGrow

		line.MainSize = p.padMain() + line.DividerLengthInMainSize
		line.CrossSize = 0
		roundErr := 0.0
		froze := false

		for j := 0; j < line.ItemCount; j++ {
			pos := line.FirstIndex + j
			if p.hidden[pos] {
				continue
			}
			it := p.item(pos)
			st := p.state[pos]
			cur := p.mainOf(p.measured[pos])

			if !p.frozen[pos] && st.grow > 0 {
				raw := float64(cur) + unit*st.grow
				if j == line.ItemCount-1 {
					raw += roundErr
					roundErr = 0
				}
				newSize := int(math.Round(raw))
				if newSize > p.maxMain(pos) {
					newSize = p.maxMain(pos)
					p.frozen[pos] = true
					line.TotalGrow -= st.grow
					froze = true
				} else {
					roundErr += raw - float64(newSize)
					if roundErr > 1 {
						newSize++
						roundErr--
					} else if roundErr < -1 {
						newSize--
						roundErr++
					}
				}
				if newSize != cur {
					p.remeasureMain(pos, it, newSize)
				}
			}

			line.MainSize += p.mainOf(p.measured[pos]) + p.marginsMain(it)
			line.CrossSize = maxInt(line.CrossSize,
				p.crossOf(p.measured[pos])+p.marginsCross(it))
		}

		if !froze || sizeBefore == line.MainSize {
			return
		}
	}
}

// shrinkLine distributes MainSize-target as negative space across the line's
// shrinkable items, weighted by shrink coefficient times the item's basis
// (its pre-distribution main size), so larger items give up more. Items
// that hit their min bound freeze there; min wins when the bounds collide.
// The same residual-redistribution and rounding rules as growLine apply.
func (p *pass) shrinkLine(line *Line, target int) {
	for {
		sizeBefore := line.MainSize
		overflow := line.MainSize - target
		if overflow <= 0 || line.TotalShrink <= 0 {
			return
		}
		sumWeight := 0.0
		for j := 0; j < line.ItemCount; j++ {
			pos := line.FirstIndex + j
			if p.hidden[pos] || p.frozen[pos] {
				continue
			}
			sumWeight += p.state[pos].shrink * float64(p.basis[pos])
		}
		if sumWeight <= 0 {
			return
		}
		unit := float64(overflow) / sumWeight

		line.MainSize = p.padMain() + line.DividerLengthInMainSize
		line.CrossSize = 0
		roundErr := 0.0
		froze := false

		for j := 0; j < line.ItemCount; j++ {
			pos := line.FirstIndex + j
			if p.hidden[pos] {
				continue
			}
			it := p.item(pos)
			st := p.state[pos]
			cur := p.mainOf(p.measured[pos])

			if !p.frozen[pos] && st.shrink > 0 {
				raw := float64(cur) - unit*st.shrink*float64(p.basis[pos])
				if j == line.ItemCount-1 {
					raw += roundErr
					roundErr = 0
				}
				newSize := int(math.Round(raw))
				if newSize < p.minMain(pos) {
					newSize = p.minMain(pos)
					p.frozen[pos] = true
					line.TotalShrink -= st.shrink
					froze = true
				} else {
					roundErr += raw - float64(newSize)
					if roundErr > 1 {
						newSize++
						roundErr--
					} else if roundErr < -1 {
						newSize--
						roundErr++
					}
				}
				if newSize != cur {
					p.remeasureMain(pos, it, newSize)
				}
			}

			line.MainSize += p.mainOf(p.measured[pos]) + p.marginsMain(it)
			line.CrossSize = maxInt(line.CrossSize,
				p.crossOf(p.measured[pos])+p.marginsCross(it))
		}

		if !froze || sizeBefore == line.MainSize {
			return
		}
	}
}
