// Package render rasterizes the geometry committed by a flex container
// into an image, for debugging layouts and for the flexshow tool.
package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"flexkit/pkg/flex"
)

// Box is a rectangular flex content with a fixed natural size. It records
// the rectangle committed by the container so the renderer can paint it.
type Box struct {
	Natural flex.Size
	// BaselineOffset is the distance from the box top to its baseline.
	// Zero means the baseline sits on the bottom edge.
	BaselineOffset int
	Invisible      bool
	Label          string
	// Fill color, 0xRRGGBB. Zero picks from the renderer's palette.
	Color uint32

	rect   flex.Rect
	placed bool
}

func (b *Box) Measure(hc, vc flex.Constraint) flex.Size {
	return flex.Size{
		W: measureAxis(hc, b.Natural.W),
		H: measureAxis(vc, b.Natural.H),
	}
}

func measureAxis(c flex.Constraint, natural int) int {
	switch c.Mode {
	case flex.ModeExact:
		return c.Size
	case flex.ModeAtMost:
		if natural > c.Size {
			return c.Size
		}
		return natural
	default:
		return natural
	}
}

func (b *Box) Hidden() bool { return b.Invisible }

func (b *Box) Baseline() int {
	if b.BaselineOffset > 0 {
		return b.BaselineOffset
	}
	return b.Natural.H
}

func (b *Box) Place(r flex.Rect) {
	b.rect = r
	b.placed = true
}

// Rect returns the rectangle from the most recent layout pass.
func (b *Box) Rect() flex.Rect { return b.rect }

// palette cycles through fills for boxes that do not set their own color.
var palette = []uint32{
	0x4e79a7, 0xf28e2b, 0xe15759, 0x76b7b2,
	0x59a14f, 0xedc948, 0xb07aa1, 0xff9da7,
}

type Renderer struct {
	context *gg.Context
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height)}
}

// Render lays out the container at the renderer's size and paints the
// result: container padding, item boxes with labels, and the divider bars
// the container's flags call for.
func (r *Renderer) Render(c *flex.Container) {
	w, h := r.context.Width(), r.context.Height()
	c.Layout(flex.Exact(w), flex.Exact(h))

	r.context.SetRGB(1, 1, 1)
	r.context.Clear()

	r.drawPadding(c, w, h)
	r.drawBoxes(c)
	r.drawDividers(c)
}

func (r *Renderer) drawPadding(c *flex.Container, w, h int) {
	pad := c.Padding()
	if pad == (flex.Insets{}) {
		return
	}
	r.context.SetRGB(0.96, 0.96, 0.96)
	r.context.DrawRectangle(0, 0, float64(w), float64(h))
	r.context.Fill()
	r.context.SetRGB(1, 1, 1)
	r.context.DrawRectangle(
		float64(pad.Left), float64(pad.Top),
		float64(w-pad.Horizontal()), float64(h-pad.Vertical()))
	r.context.Fill()
}

func (r *Renderer) drawBoxes(c *flex.Container) {
	n := 0
	for i := 0; i < c.Len(); i++ {
		box, ok := c.ReorderedItemAt(i).Content.(*Box)
		if !ok || box.Invisible || !box.placed {
			continue
		}
		fill := box.Color
		if fill == 0 {
			fill = palette[n%len(palette)]
		}
		n++
		rect := box.rect
		x, y := float64(rect.X), float64(rect.Y)
		bw, bh := float64(rect.W), float64(rect.H)

		r.setHex(fill, 1)
		r.context.DrawRectangle(x, y, bw, bh)
		r.context.Fill()
		r.context.SetRGBA(0, 0, 0, 0.35)
		r.context.SetLineWidth(1)
		r.context.DrawRectangle(x+0.5, y+0.5, bw-1, bh-1)
		r.context.Stroke()

		label := box.Label
		if label == "" {
			label = fmt.Sprintf("%dx%d", rect.W, rect.H)
		}
		r.context.SetRGB(1, 1, 1)
		r.context.DrawStringAnchored(label, x+bw/2, y+bh/2, 0.5, 0.5)
	}
}

// drawDividers paints the divider bars between lines and between items,
// following the same before/middle/end rules the layout pass charged
// space for.
func (r *Renderer) drawDividers(c *flex.Container) {
	lines := c.Lines()
	if len(lines) == 0 {
		return
	}
	r.context.SetRGBA(0.2, 0.2, 0.2, 0.6)

	lineFlags, lineLen := c.LineDividers()
	itemFlags, itemLen := c.ItemDividers()
	horizontal := c.Direction() == flex.Row || c.Direction() == flex.RowReverse

	for i, line := range lines {
		b := line.Bounds()
		if lineLen > 0 && !lineFlags.None() {
			if (i == 0 && lineFlags.Beginning) || (i > 0 && lineFlags.Middle) {
				r.fillCrossBar(b, lineLen, horizontal, true)
			}
			if i == len(lines)-1 && lineFlags.End {
				r.fillCrossBar(b, lineLen, horizontal, false)
			}
		}
		if itemLen > 0 && !itemFlags.None() {
			r.drawItemDividers(c, line, b, itemFlags, itemLen, horizontal)
		}
	}
}

func (r *Renderer) drawItemDividers(c *flex.Container, line flex.Line, b flex.Rect, flags flex.DividerFlags, length int, horizontal bool) {
	first := true
	for j := 0; j < line.ItemCount; j++ {
		it := c.ReorderedItemAt(line.FirstIndex + j)
		box, ok := it.Content.(*Box)
		if !ok || box.Invisible {
			continue
		}
		rect := box.rect
		if (first && flags.Beginning) || (!first && flags.Middle) {
			if horizontal {
				r.fillRect(rect.X-it.Margin.Left-length, b.Y, length, b.H)
			} else {
				r.fillRect(b.X, rect.Y-it.Margin.Top-length, b.W, length)
			}
		}
		if flags.End && j == lastVisible(c, line) {
			if horizontal {
				r.fillRect(rect.Right()+it.Margin.Right, b.Y, length, b.H)
			} else {
				r.fillRect(b.X, rect.Bottom()+it.Margin.Bottom, b.W, length)
			}
		}
		first = false
	}
}

func lastVisible(c *flex.Container, line flex.Line) int {
	for j := line.ItemCount - 1; j >= 0; j-- {
		it := c.ReorderedItemAt(line.FirstIndex + j)
		if box, ok := it.Content.(*Box); ok && !box.Invisible {
			return j
		}
	}
	return -1
}

func (r *Renderer) fillCrossBar(b flex.Rect, length int, horizontal, before bool) {
	if horizontal {
		y := b.Y - length
		if !before {
			y = b.Bottom()
		}
		r.fillRect(b.X, y, b.W, length)
		return
	}
	x := b.X - length
	if !before {
		x = b.Right()
	}
	r.fillRect(x, b.Y, length, b.H)
}

func (r *Renderer) fillRect(x, y, w, h int) {
	r.context.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	r.context.Fill()
}

func (r *Renderer) setHex(rgb uint32, alpha float64) {
	r.context.SetRGBA(
		float64(rgb>>16&0xff)/255,
		float64(rgb>>8&0xff)/255,
		float64(rgb&0xff)/255,
		alpha)
}

// Image returns the rendered frame.
func (r *Renderer) Image() image.Image { return r.context.Image() }

// SavePNG writes the rendered frame to path.
func (r *Renderer) SavePNG(path string) error { return r.context.SavePNG(path) }
