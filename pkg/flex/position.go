package flex

import "math"

// position walks the resolved lines and converts sizes into absolute
// rectangles, committing each visible item through Content.Place.
//
// The main-axis cursor is tracked as a float from both edges at once (the
// leading cursor serves LTR walks, the trailing cursor RTL walks) so the
// fractional gaps of space-between/around/evenly never accumulate into a
// one-pixel drift. The cross axis is likewise tracked from both the top
// and the bottom, which makes wrap-reverse a cursor choice rather than a
// second pass.
func (p *pass) position() {
	if p.horizontal() {
		p.positionHorizontal()
	} else {
		p.positionVertical()
	}
}

func (p *pass) positionHorizontal() {
	c := p.c
	pad := c.padding
	width := p.containerW
	height := p.containerH

	// RTL and row-reverse each mirror the main axis; together they cancel.
	rtl := (c.layoutDir == RTL) != (c.direction == RowReverse)
	wrapRev := c.wrap == WrapReverse

	childTop := pad.Top + p.crossOffset
	childBottom := height - pad.Bottom - p.crossOffset

	for i, line := range p.lines {
		if dividerBeforeLine(p.lines, i, c.lineDividers) {
			childTop += c.lineDividerLength
			childBottom -= c.lineDividerLength
		}
		childLeft, childRight, spacing := p.mainCursors(line, width, pad.Left, pad.Right)
		lastVisible := p.lastVisibleInLine(line)

		for j := 0; j < line.ItemCount; j++ {
			pos := line.FirstIndex + j
			if p.hidden[pos] {
				continue
			}
			it := p.item(pos)
			sz := p.measured[pos]

			childLeft += float64(it.Margin.Left)
			childRight -= float64(it.Margin.Right)
			beforeDiv := 0
			if p.dividerBeforeItem(pos, j) {
				beforeDiv = c.itemDividerLength
				childLeft += float64(beforeDiv)
				childRight -= float64(beforeDiv)
			}
			endDiv := 0
			if j == lastVisible && c.itemDividers.End {
				endDiv = c.itemDividerLength
			}

			var x int
			if rtl {
				x = int(math.Round(childRight)) - sz.W
			} else {
				x = int(math.Round(childLeft))
			}
			yBase := childTop
			if wrapRev {
				yBase = childBottom - sz.H
			}
			y := p.alignCrossHorizontal(line, it, yBase, sz.H, wrapRev)

			r := Rect{X: x, Y: y, W: sz.W, H: sz.H}
			it.Content.Place(r)

			childLeft += float64(sz.W) + spacing + float64(it.Margin.Right)
			childRight -= float64(sz.W) + spacing + float64(it.Margin.Left)

			if rtl {
				line.expandBounds(r, it.Margin, endDiv, 0, beforeDiv, 0)
			} else {
				line.expandBounds(r, it.Margin, beforeDiv, 0, endDiv, 0)
			}
		}

		childTop += line.CrossSize
		childBottom -= line.CrossSize
	}
}

func (p *pass) positionVertical() {
	c := p.c
	pad := c.padding
	width := p.containerW
	height := p.containerH

	fromBottom := c.direction == ColumnReverse
	// For columns the cross axis is horizontal: RTL and wrap-reverse each
	// mirror it, and together they cancel.
	mirror := (c.layoutDir == RTL) != (c.wrap == WrapReverse)

	childLeft := pad.Left + p.crossOffset
	childRight := width - pad.Right - p.crossOffset

	for i, line := range p.lines {
		if dividerBeforeLine(p.lines, i, c.lineDividers) {
			childLeft += c.lineDividerLength
			childRight -= c.lineDividerLength
		}
		childTop, childBottom, spacing := p.mainCursors(line, height, pad.Top, pad.Bottom)
		lastVisible := p.lastVisibleInLine(line)

		for j := 0; j < line.ItemCount; j++ {
			pos := line.FirstIndex + j
			if p.hidden[pos] {
				continue
			}
			it := p.item(pos)
			sz := p.measured[pos]

			childTop += float64(it.Margin.Top)
			childBottom -= float64(it.Margin.Bottom)
			beforeDiv := 0
			if p.dividerBeforeItem(pos, j) {
				beforeDiv = c.itemDividerLength
				childTop += float64(beforeDiv)
				childBottom -= float64(beforeDiv)
			}
			endDiv := 0
			if j == lastVisible && c.itemDividers.End {
				endDiv = c.itemDividerLength
			}

			var y int
			if fromBottom {
				y = int(math.Round(childBottom)) - sz.H
			} else {
				y = int(math.Round(childTop))
			}
			xBase := childLeft
			if mirror {
				xBase = childRight - sz.W
			}
			x := p.alignCrossVertical(line, it, xBase, sz.W, mirror)

			r := Rect{X: x, Y: y, W: sz.W, H: sz.H}
			it.Content.Place(r)

			childTop += float64(sz.H) + spacing + float64(it.Margin.Bottom)
			childBottom -= float64(sz.H) + spacing + float64(it.Margin.Top)

			if fromBottom {
				line.expandBounds(r, it.Margin, 0, endDiv, 0, beforeDiv)
			} else {
				line.expandBounds(r, it.Margin, 0, beforeDiv, 0, endDiv)
			}
		}

		childLeft += line.CrossSize
		childRight -= line.CrossSize
	}
}

// mainCursors computes a line's leading and trailing main-axis cursors and
// the per-gap spacing for the container's justify-content. extent is the
// container's resolved main extent. A line with a single visible item
// degenerates to flex-start packing under space-between.
func (p *pass) mainCursors(line *Line, extent, padLead, padTrail int) (lead, trail, spacing float64) {
	free := float64(extent - line.MainSize)
	visible := line.VisibleCount()
	switch p.c.justify {
	case JustifyEnd:
		lead = float64(extent - line.MainSize + padTrail)
		trail = float64(line.MainSize - padLead)
	case JustifyCenter:
		lead = float64(padLead) + free/2
		trail = float64(extent-padTrail) - free/2
	case JustifySpaceAround:
		if visible != 0 {
			spacing = free / float64(visible)
		}
		lead = float64(padLead) + spacing/2
		trail = float64(extent-padTrail) - spacing/2
	case JustifySpaceBetween:
		denom := 1.0
		if visible > 1 {
			denom = float64(visible - 1)
		}
		spacing = free / denom
		lead = float64(padLead)
		trail = float64(extent - padTrail)
	case JustifySpaceEvenly:
		if visible != 0 {
			spacing = free / float64(visible+1)
		}
		lead = float64(padLead) + spacing
		trail = float64(extent-padTrail) - spacing
	default: // JustifyStart
		lead = float64(padLead)
		trail = float64(extent - padTrail)
	}
	spacing = math.Max(spacing, 0)
	return lead, trail, spacing
}

func (p *pass) lastVisibleInLine(line *Line) int {
	for j := line.ItemCount - 1; j >= 0; j-- {
		if !p.hidden[line.FirstIndex+j] {
			return j
		}
	}
	return -1
}

// alignCrossHorizontal resolves an item's vertical offset within its line.
// yBase is the line's top edge, or under wrap-reverse the item's top if it
// sat flush with the line's bottom edge; wrap-reverse mirrors every
// adjustment, with the top and bottom margins swapping roles.
func (p *pass) alignCrossHorizontal(line *Line, it *Item, yBase, h int, wrapRev bool) int {
	m := it.Margin
	switch it.AlignSelf.resolve(p.c.alignItems) {
	case AlignItemsBaseline:
		if !wrapRev {
			return yBase + maxInt(line.MaxBaseline-it.Content.Baseline(), m.Top)
		}
		return yBase - maxInt(line.MaxBaseline-h+it.Content.Baseline(), m.Bottom)
	case AlignItemsEnd:
		if !wrapRev {
			return yBase + line.CrossSize - h - m.Bottom
		}
		return yBase - line.CrossSize + h + m.Top
	case AlignItemsCenter:
		off := (line.CrossSize - h + m.Top - m.Bottom) / 2
		if !wrapRev {
			return yBase + off
		}
		return yBase - off
	default: // start, stretch
		if !wrapRev {
			return yBase + m.Top
		}
		return yBase - m.Bottom
	}
}

// alignCrossVertical resolves an item's horizontal offset within its line.
// Baseline alignment has no meaning on a vertical main axis and falls back
// to flex-start.
func (p *pass) alignCrossVertical(line *Line, it *Item, xBase, w int, mirror bool) int {
	m := it.Margin
	switch it.AlignSelf.resolve(p.c.alignItems) {
	case AlignItemsEnd:
		if !mirror {
			return xBase + line.CrossSize - w - m.Right
		}
		return xBase - line.CrossSize + w + m.Left
	case AlignItemsCenter:
		off := (line.CrossSize - w + m.Left - m.Right) / 2
		if !mirror {
			return xBase + off
		}
		return xBase - off
	default: // start, stretch, baseline
		if !mirror {
			return xBase + m.Left
		}
		return xBase - m.Right
	}
}
