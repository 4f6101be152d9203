// Package flexfyne adapts the flex engine to fyne's layout interface, so
// a fyne container can arrange its objects as wrapped flex lines.
package flexfyne

import (
	"math"

	"fyne.io/fyne/v2"

	"flexkit/pkg/flex"
)

// Flexbox implements fyne.Layout on top of a flex.Container. Container
// properties (direction, wrap, justify, alignment, dividers) are set on
// the embedded engine via Engine(); per-object properties (grow, shrink,
// order, margins) via Item().
type Flexbox struct {
	engine *flex.Container
	items  map[fyne.CanvasObject]*flex.Item
}

// New returns a Flexbox with row direction and no wrapping.
func New() *Flexbox {
	return &Flexbox{
		engine: flex.New(),
		items:  make(map[fyne.CanvasObject]*flex.Item),
	}
}

// NewWrapped returns a Flexbox that wraps onto new lines.
func NewWrapped() *Flexbox {
	f := New()
	f.engine.SetWrap(flex.Wrap)
	return f
}

// Engine exposes the underlying container for configuration. Mutating it
// takes effect on the next layout pass.
func (f *Flexbox) Engine() *flex.Container { return f.engine }

// Item returns the flex properties for obj, creating defaults on first
// use. Callers mutate the returned item and refresh the fyne container.
func (f *Flexbox) Item(obj fyne.CanvasObject) *flex.Item {
	it, ok := f.items[obj]
	if !ok {
		it = flex.NewItem(nil)
		f.items[obj] = it
	}
	return it
}

// Forget drops the stored flex properties for obj. Call it when an object
// is removed from the fyne container for good.
func (f *Flexbox) Forget(obj fyne.CanvasObject) { delete(f.items, obj) }

// Layout implements fyne.Layout.
func (f *Flexbox) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	f.engine.RemoveAll()
	for _, obj := range objects {
		it := f.Item(obj)
		it.Content = &objectContent{obj: obj}
		f.engine.Add(it)
	}
	f.engine.Layout(flex.Exact(px(size.Width)), flex.Exact(px(size.Height)))
}

// MinSize implements fyne.Layout. It reports the single-line minimum, the
// same convention fyne's box layouts use; wrapping containers shrink below
// this along the cross axis once lines break.
func (f *Flexbox) MinSize(objects []fyne.CanvasObject) fyne.Size {
	horizontal := f.engine.Direction() == flex.Row || f.engine.Direction() == flex.RowReverse
	var main, cross float32
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		min := obj.MinSize()
		m := f.Item(obj).Margin
		mw := min.Width + float32(m.Horizontal())
		mh := min.Height + float32(m.Vertical())
		if horizontal {
			main += mw
			cross = fyne.Max(cross, mh)
		} else {
			main += mh
			cross = fyne.Max(cross, mw)
		}
	}
	pad := f.engine.Padding()
	if horizontal {
		return fyne.NewSize(
			main+float32(pad.Horizontal()),
			cross+float32(pad.Vertical()))
	}
	return fyne.NewSize(
		cross+float32(pad.Horizontal()),
		main+float32(pad.Vertical()))
}

// objectContent bridges one fyne object into the engine's content
// capability for the duration of a pass.
type objectContent struct {
	obj fyne.CanvasObject
}

func (o *objectContent) Measure(hc, vc flex.Constraint) flex.Size {
	min := o.obj.MinSize()
	return flex.Size{
		W: measureAxis(hc, px(min.Width)),
		H: measureAxis(vc, px(min.Height)),
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

func (o *objectContent) Hidden() bool { return !o.obj.Visible() }

// Baseline reports the object's bottom edge; fyne objects do not expose a
// text baseline.
func (o *objectContent) Baseline() int { return px(o.obj.MinSize().Height) }

func (o *objectContent) Place(r flex.Rect) {
	o.obj.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
	o.obj.Resize(fyne.NewSize(float32(r.W), float32(r.H)))
}

func px(v float32) int { return int(math.Round(float64(v))) }
