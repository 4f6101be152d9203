// flexshow renders a JSON layout description to a PNG, for eyeballing
// flex configurations without a UI toolkit.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"flexkit/pkg/flex"
	"flexkit/pkg/render"
)

type layoutSpec struct {
	Direction    string       `json:"direction"`
	Wrap         string       `json:"wrap"`
	Justify      string       `json:"justify"`
	AlignItems   string       `json:"alignItems"`
	AlignContent string       `json:"alignContent"`
	RTL          bool         `json:"rtl"`
	MaxLines     int          `json:"maxLines"`
	Padding      insetsSpec   `json:"padding"`
	ItemDividers *dividerSpec `json:"itemDividers"`
	LineDividers *dividerSpec `json:"lineDividers"`
	Items        []itemSpec   `json:"items"`
}

type insetsSpec struct {
	Left, Top, Right, Bottom int
}

type dividerSpec struct {
	Beginning bool `json:"beginning"`
	Middle    bool `json:"middle"`
	End       bool `json:"end"`
	Length    int  `json:"length"`
}

type itemSpec struct {
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Grow         float64    `json:"grow"`
	Shrink       *float64   `json:"shrink"`
	Order        *int       `json:"order"`
	BasisPercent *float64   `json:"basisPercent"`
	AlignSelf    string     `json:"alignSelf"`
	MinWidth     int        `json:"minWidth"`
	MinHeight    int        `json:"minHeight"`
	MaxWidth     int        `json:"maxWidth"`
	MaxHeight    int        `json:"maxHeight"`
	WrapBefore   bool       `json:"wrapBefore"`
	Hidden       bool       `json:"hidden"`
	Margin       insetsSpec `json:"margin"`
	Label        string     `json:"label"`
	Color        string     `json:"color"`
}

func main() {
	width := flag.Int("w", 800, "canvas width in pixels")
	height := flag.Int("h", 600, "canvas height in pixels")
	output := flag.String("o", "layout.png", "output PNG file path")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: flexshow [flags] <layout.json>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	data, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	var spec layoutSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing JSON: %v\n", err)
		os.Exit(1)
	}

	c, err := buildContainer(&spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Rendering %d items at %dx%d...\n", len(spec.Items), *width, *height)
	r := render.NewRenderer(*width, *height)
	r.Render(c)
	if err := r.SavePNG(*output); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Saved to %s\n", *output)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func buildContainer(spec *layoutSpec) (*flex.Container, error) {
	c := flex.New()
	if spec.Direction != "" {
		d, err := parseDirection(spec.Direction)
		if err != nil {
			return nil, err
		}
		if err := c.SetDirection(d); err != nil {
			return nil, err
		}
	}
	if spec.RTL {
		if err := c.SetLayoutDirection(flex.RTL); err != nil {
			return nil, err
		}
	}
	if spec.Wrap != "" {
		w, err := parseWrap(spec.Wrap)
		if err != nil {
			return nil, err
		}
		if err := c.SetWrap(w); err != nil {
			return nil, err
		}
	}
	if spec.Justify != "" {
		j, err := parseJustify(spec.Justify)
		if err != nil {
			return nil, err
		}
		if err := c.SetJustifyContent(j); err != nil {
			return nil, err
		}
	}
	if spec.AlignItems != "" {
		a, err := parseAlignItems(spec.AlignItems)
		if err != nil {
			return nil, err
		}
		if err := c.SetAlignItems(a); err != nil {
			return nil, err
		}
	}
	if spec.AlignContent != "" {
		a, err := parseAlignContent(spec.AlignContent)
		if err != nil {
			return nil, err
		}
		if err := c.SetAlignContent(a); err != nil {
			return nil, err
		}
	}
	c.SetMaxLines(spec.MaxLines)
	c.SetPadding(flex.Insets{
		Left: spec.Padding.Left, Top: spec.Padding.Top,
		Right: spec.Padding.Right, Bottom: spec.Padding.Bottom,
	})
	if d := spec.ItemDividers; d != nil {
		c.SetItemDividers(flex.DividerFlags{Beginning: d.Beginning, Middle: d.Middle, End: d.End}, d.Length)
	}
	if d := spec.LineDividers; d != nil {
		c.SetLineDividers(flex.DividerFlags{Beginning: d.Beginning, Middle: d.Middle, End: d.End}, d.Length)
	}

	for i, is := range spec.Items {
		it, err := buildItem(&is)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		c.Add(it)
	}
	return c, nil
}

func buildItem(is *itemSpec) (*flex.Item, error) {
	box := &render.Box{
		Natural:   flex.Size{W: is.Width, H: is.Height},
		Invisible: is.Hidden,
		Label:     is.Label,
	}
	if is.Color != "" {
		c, err := parseColor(is.Color)
		if err != nil {
			return nil, err
		}
		box.Color = c
	}

	it := flex.NewItem(box)
	if is.Width > 0 {
		it.Width = is.Width
	}
	if is.Height > 0 {
		it.Height = is.Height
	}
	it.Grow = is.Grow
	if is.Shrink != nil {
		it.Shrink = *is.Shrink
	}
	if is.Order != nil {
		it.Order = *is.Order
	}
	if is.BasisPercent != nil {
		it.BasisPercent = *is.BasisPercent
	}
	if is.AlignSelf != "" {
		a, err := parseAlignSelf(is.AlignSelf)
		if err != nil {
			return nil, err
		}
		it.AlignSelf = a
	}
	it.MinWidth = is.MinWidth
	it.MinHeight = is.MinHeight
	if is.MaxWidth > 0 {
		it.MaxWidth = is.MaxWidth
	}
	if is.MaxHeight > 0 {
		it.MaxHeight = is.MaxHeight
	}
	it.WrapBefore = is.WrapBefore
	it.Margin = flex.Insets{
		Left: is.Margin.Left, Top: is.Margin.Top,
		Right: is.Margin.Right, Bottom: is.Margin.Bottom,
	}
	return it, nil
}

func parseDirection(s string) (flex.Direction, error) {
	switch norm(s) {
	case "row":
		return flex.Row, nil
	case "rowreverse":
		return flex.RowReverse, nil
	case "column":
		return flex.Column, nil
	case "columnreverse":
		return flex.ColumnReverse, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func parseWrap(s string) (flex.FlexWrap, error) {
	switch norm(s) {
	case "nowrap":
		return flex.NoWrap, nil
	case "wrap":
		return flex.Wrap, nil
	case "wrapreverse":
		return flex.WrapReverse, nil
	}
	return 0, fmt.Errorf("unknown wrap %q", s)
}

func parseJustify(s string) (flex.Justify, error) {
	switch norm(s) {
	case "start", "flexstart":
		return flex.JustifyStart, nil
	case "end", "flexend":
		return flex.JustifyEnd, nil
	case "center":
		return flex.JustifyCenter, nil
	case "spacebetween":
		return flex.JustifySpaceBetween, nil
	case "spacearound":
		return flex.JustifySpaceAround, nil
	case "spaceevenly":
		return flex.JustifySpaceEvenly, nil
	}
	return 0, fmt.Errorf("unknown justify-content %q", s)
}

func parseAlignItems(s string) (flex.AlignItems, error) {
	switch norm(s) {
	case "start", "flexstart":
		return flex.AlignItemsStart, nil
	case "end", "flexend":
		return flex.AlignItemsEnd, nil
	case "center":
		return flex.AlignItemsCenter, nil
	case "baseline":
		return flex.AlignItemsBaseline, nil
	case "stretch":
		return flex.AlignItemsStretch, nil
	}
	return 0, fmt.Errorf("unknown align-items %q", s)
}

func parseAlignContent(s string) (flex.AlignContent, error) {
	switch norm(s) {
	case "start", "flexstart":
		return flex.AlignContentStart, nil
	case "end", "flexend":
		return flex.AlignContentEnd, nil
	case "center":
		return flex.AlignContentCenter, nil
	case "spacebetween":
		return flex.AlignContentSpaceBetween, nil
	case "spacearound":
		return flex.AlignContentSpaceAround, nil
	case "stretch":
		return flex.AlignContentStretch, nil
	}
	return 0, fmt.Errorf("unknown align-content %q", s)
}

func parseAlignSelf(s string) (flex.AlignSelf, error) {
	if norm(s) == "auto" {
		return flex.AlignSelfAuto, nil
	}
	a, err := parseAlignItems(s)
	if err != nil {
		return 0, fmt.Errorf("unknown align-self %q", s)
	}
	return flex.AlignSelf(a), nil
}

func parseColor(s string) (uint32, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %v", s, err)
	}
	return uint32(v), nil
}

func norm(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}
