// Package ice implements the ice-block sliding engine: a grid of fixed
// objects (walls, gaps, rotators, reflectors, push-pop gates, goals) and
// ice blocks carrying oriented symbols.
package ice

import (
	"fmt"

	"github.com/vovakirdan/tui-syzygy/internal/core"
)

// Transform is an element of the dihedral group of order 8: an optional
// horizontal mirror followed by 0-3 clockwise quarter turns.
// The zero value is the identity.
type Transform struct {
	rot  uint8 // quarter turns clockwise, 0..3
	flip bool  // mirror across the vertical axis, applied before rotating
}

// Identity returns the transform that leaves symbols unchanged.
func Identity() Transform {
	return Transform{}
}

// RotatedCW returns this transform followed by a 90 degree clockwise turn.
func (t Transform) RotatedCW() Transform {
	return Transform{rot: (t.rot + 1) % 4, flip: t.flip}
}

// FlippedHorz returns this transform followed by a left-right mirror.
func (t Transform) FlippedHorz() Transform {
	return Transform{rot: (4 - t.rot) % 4, flip: !t.flip}
}

// FlippedVert returns this transform followed by a top-bottom mirror.
func (t Transform) FlippedVert() Transform {
	return Transform{rot: (6 - t.rot) % 4, flip: !t.flip}
}

// Inverse returns the transform that undoes t.
func (t Transform) Inverse() Transform {
	if t.flip {
		return t
	}
	return Transform{rot: (4 - t.rot) % 4}
}

// Compose returns the transform equivalent to applying t and then other.
func (t Transform) Compose(other Transform) Transform {
	if !other.flip {
		return Transform{rot: (other.rot + t.rot) % 4, flip: t.flip}
	}
	return Transform{rot: (other.rot + 4 - t.rot) % 4, flip: !t.flip}
}

// IsIdentity reports whether t is the identity.
func (t Transform) IsIdentity() bool {
	return t == Transform{}
}

// Apply maps a screen-space vector (x right, y down) through the transform.
func (t Transform) Apply(p core.Point) core.Point {
	if t.flip {
		p = core.Pt(-p.Col, p.Row)
	}
	for i := uint8(0); i < t.rot; i++ {
		p = core.Pt(-p.Row, p.Col)
	}
	return p
}

// Index returns a stable number 0..7 for the transform.
func (t Transform) Index() int {
	n := int(t.rot)
	if t.flip {
		n += 4
	}
	return n
}

// TransformFromIndex is the inverse of Index. Out-of-range values fail.
func TransformFromIndex(n int) (Transform, bool) {
	if n < 0 || n > 7 {
		return Transform{}, false
	}
	return Transform{rot: uint8(n % 4), flip: n >= 4}, true
}

// AllTransforms lists the eight group elements in Index order.
func AllTransforms() []Transform {
	all := make([]Transform, 8)
	for i := range all {
		all[i], _ = TransformFromIndex(i)
	}
	return all
}

// String returns a compact code such as "r0" or "f2".
func (t Transform) String() string {
	if t.flip {
		return fmt.Sprintf("f%d", t.rot)
	}
	return fmt.Sprintf("r%d", t.rot)
}

// ParseTransform converts a code produced by String back to a Transform.
func ParseTransform(s string) (Transform, bool) {
	if len(s) != 2 || s[1] < '0' || s[1] > '3' {
		return Transform{}, false
	}
	rot := s[1] - '0'
	switch s[0] {
	case 'r':
		return Transform{rot: rot}, true
	case 'f':
		return Transform{rot: rot, flip: true}, true
	}
	return Transform{}, false
}
