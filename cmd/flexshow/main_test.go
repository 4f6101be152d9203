package main

import (
	"encoding/json"
	"testing"

	"flexkit/pkg/flex"
)

func TestBuildContainerFromJSON(t *testing.T) {
	blob := `{
		"direction": "row-reverse",
		"wrap": "wrap",
		"justify": "space-between",
		"alignItems": "center",
		"rtl": true,
		"maxLines": 3,
		"padding": {"left": 4, "top": 4, "right": 4, "bottom": 4},
		"itemDividers": {"middle": true, "length": 6},
		"items": [
			{"width": 100, "height": 40, "grow": 1, "label": "a"},
			{"width": 80, "height": 40, "order": 0, "color": "#336699"},
			{"width": 80, "height": 40, "hidden": true}
		]
	}`
	var spec layoutSpec
	if err := json.Unmarshal([]byte(blob), &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	c, err := buildContainer(&spec)
	if err != nil {
		t.Fatalf("buildContainer: %v", err)
	}
	if c.Direction() != flex.RowReverse {
		t.Errorf("direction = %v, want row-reverse", c.Direction())
	}
	if c.LayoutDirection() != flex.RTL {
		t.Error("rtl flag not applied")
	}
	if c.Wrap() != flex.Wrap {
		t.Errorf("wrap = %v, want wrap", c.Wrap())
	}
	if c.JustifyContent() != flex.JustifySpaceBetween {
		t.Errorf("justify = %v, want space-between", c.JustifyContent())
	}
	if c.MaxLines() != 3 {
		t.Errorf("maxLines = %d, want 3", c.MaxLines())
	}
	if flags, length := c.ItemDividers(); !flags.Middle || length != 6 {
		t.Errorf("item dividers = %+v length %d, want middle length 6", flags, length)
	}
	if c.Len() != 3 {
		t.Fatalf("item count = %d, want 3", c.Len())
	}
	if got := c.ItemAt(0).Grow; got != 1 {
		t.Errorf("item 0 grow = %v, want 1", got)
	}
	if got := c.ItemAt(1).Order; got != 0 {
		t.Errorf("item 1 order = %d, want 0", got)
	}
	// Defaults survive omission.
	if got := c.ItemAt(0).Shrink; got != flex.ShrinkDefault {
		t.Errorf("item 0 shrink = %v, want default", got)
	}
}

func TestBuildContainerRejectsBadEnums(t *testing.T) {
	for _, spec := range []layoutSpec{
		{Direction: "diagonal"},
		{Wrap: "sometimes"},
		{Justify: "justified"},
		{AlignItems: "middle"},
		{AlignContent: "left"},
	} {
		if _, err := buildContainer(&spec); err == nil {
			t.Errorf("spec %+v accepted, want error", spec)
		}
	}
}

func TestParseColor(t *testing.T) {
	if v, err := parseColor("#ff8000"); err != nil || v != 0xff8000 {
		t.Errorf("parseColor(#ff8000) = %x, %v", v, err)
	}
	if _, err := parseColor("red"); err == nil {
		t.Error("named color accepted, want error")
	}
}

func TestParseAlignSelf(t *testing.T) {
	a, err := parseAlignSelf("auto")
	if err != nil || a != flex.AlignSelfAuto {
		t.Errorf("auto = %v, %v", a, err)
	}
	a, err = parseAlignSelf("flex-end")
	if err != nil || a != flex.AlignSelfEnd {
		t.Errorf("flex-end = %v, %v", a, err)
	}
}
