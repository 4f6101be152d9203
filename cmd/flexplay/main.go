// flexplay is an interactive playground: a fyne window with a flex
// container of colored boxes and controls for the container properties.
package main

import (
	"fmt"
	"image/color"
	"math/rand"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"flexkit/pkg/flex"
	"flexkit/pkg/flexfyne"
)

var boxColors = []color.NRGBA{
	{R: 0x4e, G: 0x79, B: 0xa7, A: 0xff},
	{R: 0xf2, G: 0x8e, B: 0x2b, A: 0xff},
	{R: 0xe1, G: 0x57, B: 0x59, A: 0xff},
	{R: 0x76, G: 0xb7, B: 0xb2, A: 0xff},
	{R: 0x59, G: 0xa1, B: 0x4f, A: 0xff},
	{R: 0xed, G: 0xc9, B: 0x48, A: 0xff},
}

var directions = map[string]flex.Direction{
	"row":            flex.Row,
	"row-reverse":    flex.RowReverse,
	"column":         flex.Column,
	"column-reverse": flex.ColumnReverse,
}

var wraps = map[string]flex.FlexWrap{
	"nowrap":       flex.NoWrap,
	"wrap":         flex.Wrap,
	"wrap-reverse": flex.WrapReverse,
}

var justifies = map[string]flex.Justify{
	"start":         flex.JustifyStart,
	"end":           flex.JustifyEnd,
	"center":        flex.JustifyCenter,
	"space-between": flex.JustifySpaceBetween,
	"space-around":  flex.JustifySpaceAround,
	"space-evenly":  flex.JustifySpaceEvenly,
}

var alignments = map[string]flex.AlignItems{
	"start":   flex.AlignItemsStart,
	"end":     flex.AlignItemsEnd,
	"center":  flex.AlignItemsCenter,
	"stretch": flex.AlignItemsStretch,
}

var alignContents = map[string]flex.AlignContent{
	"start":         flex.AlignContentStart,
	"end":           flex.AlignContentEnd,
	"center":        flex.AlignContentCenter,
	"space-between": flex.AlignContentSpaceBetween,
	"space-around":  flex.AlignContentSpaceAround,
	"stretch":       flex.AlignContentStretch,
}

func main() {
	a := app.New()
	w := a.NewWindow("flexkit playground")
	w.Resize(fyne.NewSize(900, 600))

	layout := flexfyne.NewWrapped()
	layout.Engine().SetPadding(flex.Insets{Left: 8, Top: 8, Right: 8, Bottom: 8})
	stage := container.New(layout)

	nextBox := 0
	addBox := func() {
		wpx := float32(60 + rand.Intn(80))
		hpx := float32(40 + rand.Intn(60))
		r := canvas.NewRectangle(boxColors[nextBox%len(boxColors)])
		r.SetMinSize(fyne.NewSize(wpx, hpx))
		nextBox++
		layout.Item(r).Margin = flex.Insets{Left: 4, Top: 4, Right: 4, Bottom: 4}
		stage.Add(r)
		stage.Refresh()
	}
	removeBox := func() {
		objs := stage.Objects
		if len(objs) == 0 {
			return
		}
		last := objs[len(objs)-1]
		layout.Forget(last)
		stage.Remove(last)
		stage.Refresh()
	}
	for i := 0; i < 6; i++ {
		addBox()
	}

	status := widget.NewLabel("")
	refresh := func() {
		stage.Refresh()
		status.SetText(fmt.Sprintf("%d boxes", len(stage.Objects)))
	}

	directionSel := newEnumSelect("row", []string{"row", "row-reverse", "column", "column-reverse"},
		func(name string) {
			layout.Engine().SetDirection(directions[name])
			refresh()
		})
	wrapSel := newEnumSelect("wrap", []string{"nowrap", "wrap", "wrap-reverse"},
		func(name string) {
			layout.Engine().SetWrap(wraps[name])
			refresh()
		})
	justifySel := newEnumSelect("start", []string{"start", "end", "center", "space-between", "space-around", "space-evenly"},
		func(name string) {
			layout.Engine().SetJustifyContent(justifies[name])
			refresh()
		})
	alignSel := newEnumSelect("start", []string{"start", "end", "center", "stretch"},
		func(name string) {
			layout.Engine().SetAlignItems(alignments[name])
			refresh()
		})
	alignContentSel := newEnumSelect("start", []string{"start", "end", "center", "space-between", "space-around", "stretch"},
		func(name string) {
			layout.Engine().SetAlignContent(alignContents[name])
			refresh()
		})
	rtlCheck := widget.NewCheck("RTL", func(on bool) {
		ld := flex.LTR
		if on {
			ld = flex.RTL
		}
		layout.Engine().SetLayoutDirection(ld)
		refresh()
	})

	controls := container.NewVBox(
		widget.NewLabel("direction"), directionSel,
		widget.NewLabel("wrap"), wrapSel,
		widget.NewLabel("justify-content"), justifySel,
		widget.NewLabel("align-items"), alignSel,
		widget.NewLabel("align-content"), alignContentSel,
		rtlCheck,
		widget.NewButton("Add box", func() { addBox(); refresh() }),
		widget.NewButton("Remove box", func() { removeBox(); refresh() }),
	)

	refresh()
	w.SetContent(container.NewBorder(nil, status, controls, nil, stage))
	w.ShowAndRun()
}

func newEnumSelect(initial string, options []string, onChange func(string)) *widget.Select {
	sel := widget.NewSelect(options, onChange)
	sel.SetSelected(initial)
	return sel
}
