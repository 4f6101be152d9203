package flex

import "testing"

func justifyXs(t *testing.T, j Justify) []int {
	t.Helper()
	c := New()
	if err := c.SetJustifyContent(j); err != nil {
		t.Fatalf("SetJustifyContent: %v", err)
	}
	stubs := []*stubContent{addBox(c, 50, 40), addBox(c, 50, 40), addBox(c, 50, 40)}
	c.Layout(Exact(300), AtMost(100))
	xs := make([]int, len(stubs))
	for i, s := range stubs {
		xs[i] = s.rect.X
	}
	return xs
}

func TestJustifyContent(t *testing.T) {
	cases := []struct {
		name string
		j    Justify
		want []int
	}{
		{"start", JustifyStart, []int{0, 50, 100}},
		{"end", JustifyEnd, []int{150, 200, 250}},
		{"center", JustifyCenter, []int{75, 125, 175}},
		{"space-between", JustifySpaceBetween, []int{0, 125, 250}},
		{"space-around", JustifySpaceAround, []int{25, 125, 225}},
		{"space-evenly", JustifySpaceEvenly, []int{38, 125, 213}},
	}
	for _, tc := range cases {
		got := justifyXs(t, tc.j)
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("%s: xs = %v, want %v", tc.name, got, tc.want)
				break
			}
		}
	}
}

func TestSpaceBetweenSingleItemActsAsStart(t *testing.T) {
	for _, j := range []Justify{JustifyStart, JustifySpaceBetween} {
		c := New()
		c.SetJustifyContent(j)
		s := addBox(c, 50, 40)
		c.Layout(Exact(300), AtMost(100))
		if s.rect.X != 0 {
			t.Errorf("justify=%v: x = %d, want 0", j, s.rect.X)
		}
	}
}

func TestRowReverseReversesTraversal(t *testing.T) {
	c := New()
	c.SetDirection(RowReverse)
	a := addBox(c, 50, 40)
	b := addBox(c, 60, 40)

	c.Layout(Exact(300), AtMost(100))
	// First item packs against the right edge, second to its left.
	if a.rect.X != 250 {
		t.Errorf("first item x = %d, want 250", a.rect.X)
	}
	if b.rect.X != 190 {
		t.Errorf("second item x = %d, want 190", b.rect.X)
	}
}

func TestRTLMirrorsRow(t *testing.T) {
	c := New()
	c.SetLayoutDirection(RTL)
	a := addBox(c, 50, 40)
	b := addBox(c, 60, 40)

	c.Layout(Exact(300), AtMost(100))
	if a.rect.X != 250 {
		t.Errorf("first item x = %d, want 250", a.rect.X)
	}
	if b.rect.X != 190 {
		t.Errorf("second item x = %d, want 190", b.rect.X)
	}
}

func TestRTLRowReverseCancelsOut(t *testing.T) {
	c := New()
	c.SetDirection(RowReverse)
	c.SetLayoutDirection(RTL)
	a := addBox(c, 50, 40)
	b := addBox(c, 60, 40)

	c.Layout(Exact(300), AtMost(100))
	// The two mirrors compose to plain left-to-right packing.
	if a.rect.X != 0 {
		t.Errorf("first item x = %d, want 0", a.rect.X)
	}
	if b.rect.X != 50 {
		t.Errorf("second item x = %d, want 50", b.rect.X)
	}
}

func TestWrapReverseFlipsLineStacking(t *testing.T) {
	c := New()
	c.SetWrap(WrapReverse)
	a := addBox(c, 200, 50)
	b := addBox(c, 200, 60)

	c.Layout(Exact(300), AtMost(500))
	// First line sits at the bottom, second above it.
	if a.rect.Y != 60 {
		t.Errorf("first line item y = %d, want 60", a.rect.Y)
	}
	if b.rect.Y != 0 {
		t.Errorf("second line item y = %d, want 0", b.rect.Y)
	}
}

func TestAllThreeMirrorsCompose(t *testing.T) {
	c := New()
	c.SetDirection(RowReverse)
	c.SetLayoutDirection(RTL)
	c.SetWrap(WrapReverse)
	a := addBox(c, 200, 50)
	addBox(c, 200, 50)

	c.Layout(Exact(300), Exact(200))
	// RTL and row-reverse cancel on the main axis; wrap-reverse puts
	// line 0 at the bottom. Item 0 lands in the bottom-left corner.
	if a.rect.X != 0 {
		t.Errorf("item 0 x = %d, want 0", a.rect.X)
	}
	if a.rect.Y+a.rect.H != 200 {
		t.Errorf("item 0 bottom = %d, want flush with 200", a.rect.Y+a.rect.H)
	}
}

func TestColumnReversePacksFromBottom(t *testing.T) {
	c := New()
	c.SetDirection(ColumnReverse)
	a := addBox(c, 40, 50)
	b := addBox(c, 40, 60)

	c.Layout(AtMost(100), Exact(300))
	if a.rect.Y != 250 {
		t.Errorf("first item y = %d, want 250", a.rect.Y)
	}
	if b.rect.Y != 190 {
		t.Errorf("second item y = %d, want 190", b.rect.Y)
	}
}

func TestMainDividersOffsetItems(t *testing.T) {
	c := New()
	c.SetItemDividers(DividerFlags{Middle: true}, 10)
	a := addBox(c, 50, 40)
	b := addBox(c, 50, 40)
	d := addBox(c, 50, 40)

	c.Layout(Exact(300), AtMost(100))
	if a.rect.X != 0 {
		t.Errorf("item 0 x = %d, want 0 (no beginning divider)", a.rect.X)
	}
	if b.rect.X != 60 {
		t.Errorf("item 1 x = %d, want 60", b.rect.X)
	}
	if d.rect.X != 120 {
		t.Errorf("item 2 x = %d, want 120", d.rect.X)
	}
}

func TestBeginningDividerOffsetsFirstItem(t *testing.T) {
	c := New()
	c.SetItemDividers(DividerFlags{Beginning: true}, 10)
	a := addBox(c, 50, 40)
	b := addBox(c, 50, 40)

	c.Layout(Exact(300), AtMost(100))
	if a.rect.X != 10 {
		t.Errorf("item 0 x = %d, want 10", a.rect.X)
	}
	if b.rect.X != 60 {
		t.Errorf("item 1 x = %d, want 60 (no middle divider)", b.rect.X)
	}
}

func TestEndDividerChargedOncePerLine(t *testing.T) {
	c := New()
	c.SetItemDividers(DividerFlags{End: true}, 10)
	addBox(c, 50, 40)
	addBox(c, 50, 40)

	c.Layout(Exact(300), AtMost(100))
	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].MainSize != 110 {
		t.Errorf("line main size = %d, want 110 (100 + one end divider)", lines[0].MainSize)
	}
}

func TestHiddenFirstItemMovesBeginningDivider(t *testing.T) {
	c := New()
	c.SetItemDividers(DividerFlags{Beginning: true, Middle: true}, 10)
	hidden := &stubContent{w: 50, h: 40, hide: true}
	c.Add(NewItem(hidden))
	a := addBox(c, 50, 40)
	b := addBox(c, 50, 40)

	c.Layout(Exact(300), AtMost(100))
	// The first visible item takes the beginning divider, not a
	// middle one owed to the hidden slot.
	if a.rect.X != 10 {
		t.Errorf("first visible item x = %d, want 10", a.rect.X)
	}
	if b.rect.X != 70 {
		t.Errorf("second visible item x = %d, want 70", b.rect.X)
	}
}

func TestHiddenItemBetweenVisibleKeepsMiddleDivider(t *testing.T) {
	c := New()
	c.SetItemDividers(DividerFlags{Middle: true}, 10)
	a := addBox(c, 50, 40)
	hidden := &stubContent{w: 50, h: 40, hide: true}
	c.Add(NewItem(hidden))
	b := addBox(c, 50, 40)

	c.Layout(Exact(300), AtMost(100))
	if b.rect.X != 60 {
		t.Errorf("item after hidden sibling x = %d, want 60", b.rect.X)
	}
	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	// The breaker charges the same divider the positioner applies.
	if lines[0].MainSize != 110 {
		t.Errorf("line main size = %d, want 110 (100 + one middle divider)", lines[0].MainSize)
	}
	if lines[0].DividerLengthInMainSize != 10 {
		t.Errorf("divider length = %d, want 10", lines[0].DividerLengthInMainSize)
	}

	// End packing keeps the line inside the container.
	c.SetJustifyContent(JustifyEnd)
	c.Layout(Exact(300), AtMost(100))
	if a.rect.X != 190 {
		t.Errorf("first item x = %d, want 190", a.rect.X)
	}
	if got := b.rect.X + b.rect.W; got != 300 {
		t.Errorf("last item right edge = %d, want flush with 300", got)
	}
}

func TestLineDividersOffsetLines(t *testing.T) {
	c := New()
	c.SetWrap(Wrap)
	c.SetLineDividers(DividerFlags{Middle: true}, 8)
	a := addBox(c, 200, 50)
	b := addBox(c, 200, 50)

	c.Layout(Exact(300), AtMost(500))
	if a.rect.Y != 0 {
		t.Errorf("line 0 item y = %d, want 0", a.rect.Y)
	}
	if b.rect.Y != 58 {
		t.Errorf("line 1 item y = %d, want 58", b.rect.Y)
	}
}

func TestPaddingInsetsItems(t *testing.T) {
	c := New()
	c.SetPadding(Insets{Left: 12, Top: 7, Right: 3, Bottom: 4})
	s := addBox(c, 50, 40)

	c.Layout(Exact(300), AtMost(100))
	if s.rect.X != 12 || s.rect.Y != 7 {
		t.Errorf("item at (%d,%d), want (12,7)", s.rect.X, s.rect.Y)
	}
}

func TestMarginsOffsetPlacement(t *testing.T) {
	c := New()
	s := &stubContent{w: 50, h: 40}
	it := NewItem(s)
	it.Width = 50
	it.Height = 40
	it.Margin = Insets{Left: 15, Top: 9}
	c.Add(it)
	after := addBox(c, 50, 40)

	c.Layout(Exact(300), AtMost(100))
	if s.rect.X != 15 || s.rect.Y != 9 {
		t.Errorf("item at (%d,%d), want (15,9)", s.rect.X, s.rect.Y)
	}
	if after.rect.X != 65 {
		t.Errorf("next item x = %d, want 65", after.rect.X)
	}
}
