package flex

// Size is a width/height pair in pixels.
type Size struct {
	W, H int
}

// Rect is an absolute rectangle in container coordinates.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Insets are per-edge lengths used for container padding and item margins.
type Insets struct {
	Left, Top, Right, Bottom int
}

// Horizontal returns the sum of the left and right edges.
func (in Insets) Horizontal() int { return in.Left + in.Right }

// Vertical returns the sum of the top and bottom edges.
func (in Insets) Vertical() int { return in.Top + in.Bottom }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		// Inconsistent bounds are sanitized before layout; if one slips
		// through, the lower bound wins.
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
