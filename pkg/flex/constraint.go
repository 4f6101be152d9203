package flex

import "fmt"

// Mode qualifies a Constraint's size.
type Mode uint8

const (
	// ModeUnspecified places no limit on the measured size.
	ModeUnspecified Mode = iota
	// ModeExact requires exactly the given size.
	ModeExact
	// ModeAtMost allows any size up to the given limit.
	ModeAtMost
)

func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "exact"
	case ModeAtMost:
		return "at-most"
	}
	return "unspecified"
}

// Constraint is a one-axis measurement requirement passed to Content.Measure.
type Constraint struct {
	Mode Mode
	Size int
}

// Exact returns a constraint requiring exactly size pixels.
func Exact(size int) Constraint { return Constraint{ModeExact, size} }

// AtMost returns a constraint allowing up to size pixels.
func AtMost(size int) Constraint { return Constraint{ModeAtMost, size} }

// Unconstrained returns a constraint that places no limit on the axis.
func Unconstrained() Constraint { return Constraint{} }

func (c Constraint) String() string {
	if c.Mode == ModeUnspecified {
		return "unspecified"
	}
	return fmt.Sprintf("%s(%d)", c.Mode, c.Size)
}

// childConstraint derives the measurement constraint for one axis of a child
// from the parent's constraint on that axis, the space already consumed by
// the parent's padding and the child's margins, and the child's requested
// dimension (pixels, SizeFill or SizeFit).
func childConstraint(parent Constraint, consumed, dim int) Constraint {
	avail := maxInt(0, parent.Size-consumed)
	switch parent.Mode {
	case ModeExact:
		switch {
		case dim >= 0:
			return Exact(dim)
		case dim == SizeFill:
			return Exact(avail)
		default: // SizeFit
			return AtMost(avail)
		}
	case ModeAtMost:
		if dim >= 0 {
			return Exact(dim)
		}
		return AtMost(avail)
	default:
		if dim >= 0 {
			return Exact(dim)
		}
		return Unconstrained()
	}
}

// resolveSize reconciles a calculated size with the constraint imposed on the
// container itself.
func resolveSize(calculated int, c Constraint) int {
	switch c.Mode {
	case ModeExact:
		return c.Size
	case ModeAtMost:
		return minInt(calculated, c.Size)
	default:
		return calculated
	}
}
