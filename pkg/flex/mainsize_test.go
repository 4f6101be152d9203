package flex

import "testing"

func addFlexBox(c *Container, w, h int, grow, shrink float64) *stubContent {
	s := &stubContent{w: w, h: h}
	it := NewItem(s)
	it.Width = w
	it.Height = h
	it.Grow = grow
	it.Shrink = shrink
	c.Add(it)
	return s
}

func TestGrowSplitsFreeSpaceEvenly(t *testing.T) {
	c := New()
	a := addFlexBox(c, 50, 40, 1, 1)
	b := addFlexBox(c, 50, 40, 1, 1)

	c.Layout(Exact(300), AtMost(100))
	if a.rect.W != 150 || b.rect.W != 150 {
		t.Errorf("widths = %d, %d, want 150 each", a.rect.W, b.rect.W)
	}
	if a.rect.X != 0 || b.rect.X != 150 {
		t.Errorf("positions = %d, %d, want 0 and 150", a.rect.X, b.rect.X)
	}
}

func TestGrowProportionalToFactor(t *testing.T) {
	c := New()
	a := addFlexBox(c, 0, 40, 1, 1)
	b := addFlexBox(c, 0, 40, 3, 1)

	c.Layout(Exact(400), AtMost(100))
	if a.rect.W != 100 {
		t.Errorf("grow=1 width = %d, want 100", a.rect.W)
	}
	if b.rect.W != 300 {
		t.Errorf("grow=3 width = %d, want 300", b.rect.W)
	}
}

func TestGrowRoundingSumsToTarget(t *testing.T) {
	c := New()
	var stubs []*stubContent
	for i := 0; i < 7; i++ {
		stubs = append(stubs, addFlexBox(c, 0, 40, 1, 1))
	}

	c.Layout(Exact(300), AtMost(100))
	sum := 0
	for i, s := range stubs {
		sum += s.rect.W
		if s.rect.W < 42 || s.rect.W > 43 {
			t.Errorf("item %d width = %d, want 42 or 43", i, s.rect.W)
		}
	}
	if sum != 300 {
		t.Errorf("widths sum to %d, want exactly 300", sum)
	}
	// Items tile the line with no gaps despite fractional shares.
	x := 0
	for i, s := range stubs {
		if s.rect.X != x {
			t.Errorf("item %d x = %d, want %d", i, s.rect.X, x)
		}
		x += s.rect.W
	}
}

func TestGrowRespectsMaxThenRedistributes(t *testing.T) {
	c := New()
	a := &stubContent{w: 50, h: 40}
	it := NewItem(a)
	it.Width = 50
	it.Height = 40
	it.Grow = 1
	it.MaxWidth = 100
	c.Add(it)
	b := addFlexBox(c, 50, 40, 1, 1)

	c.Layout(Exact(300), AtMost(100))
	if a.rect.W != 100 {
		t.Errorf("capped item width = %d, want 100", a.rect.W)
	}
	if b.rect.W != 200 {
		t.Errorf("uncapped item width = %d, want 200 after redistribution", b.rect.W)
	}
}

func TestShrinkSplitsOverflowByWeight(t *testing.T) {
	c := New()
	a := addFlexBox(c, 200, 40, 0, 1)
	b := addFlexBox(c, 200, 40, 0, 1)

	c.Layout(Exact(300), AtMost(100))
	if a.rect.W != 150 || b.rect.W != 150 {
		t.Errorf("widths = %d, %d, want 150 each", a.rect.W, b.rect.W)
	}
}

func TestShrinkWeightScalesWithBasis(t *testing.T) {
	c := New()
	// Same shrink factor but three times the basis absorbs three
	// times the overflow.
	a := addFlexBox(c, 100, 40, 0, 1)
	b := addFlexBox(c, 300, 40, 0, 1)

	c.Layout(Exact(300), AtMost(100))
	if a.rect.W != 75 {
		t.Errorf("small item width = %d, want 75", a.rect.W)
	}
	if b.rect.W != 225 {
		t.Errorf("large item width = %d, want 225", b.rect.W)
	}
}

func TestShrinkRespectsMinThenRedistributes(t *testing.T) {
	c := New()
	a := &stubContent{w: 200, h: 40}
	it := NewItem(a)
	it.Width = 200
	it.Height = 40
	it.MinWidth = 180
	c.Add(it)
	b := addFlexBox(c, 200, 40, 0, 1)

	c.Layout(Exact(300), AtMost(100))
	if a.rect.W != 180 {
		t.Errorf("floored item width = %d, want 180", a.rect.W)
	}
	if b.rect.W != 120 {
		t.Errorf("other item width = %d, want 120 after redistribution", b.rect.W)
	}
}

func TestZeroShrinkOverflowsLine(t *testing.T) {
	c := New()
	a := addFlexBox(c, 200, 40, 0, 0)
	b := addFlexBox(c, 200, 40, 0, 0)

	c.Layout(Exact(300), AtMost(100))
	if a.rect.W != 200 || b.rect.W != 200 {
		t.Errorf("widths = %d, %d, want 200 each (no shrinking)", a.rect.W, b.rect.W)
	}
}

func TestNegativeFactorsTreatedAsZero(t *testing.T) {
	c := New()
	a := addFlexBox(c, 200, 40, -2, -1)
	b := addFlexBox(c, 200, 40, 0, 1)

	c.Layout(Exact(300), AtMost(100))
	if a.rect.W != 200 {
		t.Errorf("negative-shrink item width = %d, want untouched 200", a.rect.W)
	}
	if b.rect.W != 100 {
		t.Errorf("shrinking item width = %d, want 100", b.rect.W)
	}
}

func TestColumnGrowUsesHeight(t *testing.T) {
	c := New()
	c.SetDirection(Column)
	a := addFlexBox(c, 40, 50, 1, 1)
	b := addFlexBox(c, 40, 50, 1, 1)

	c.Layout(AtMost(100), Exact(300))
	if a.rect.H != 150 || b.rect.H != 150 {
		t.Errorf("heights = %d, %d, want 150 each", a.rect.H, b.rect.H)
	}
	if a.rect.Y != 0 || b.rect.Y != 150 {
		t.Errorf("y positions = %d, %d, want 0 and 150", a.rect.Y, b.rect.Y)
	}
}
