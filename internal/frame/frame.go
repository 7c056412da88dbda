// Package frame resolves the reference frame that render-space
// positions and trajectories are expressed in.
package frame

import (
	"errors"

	"github.com/san-kum/orbitview/internal/body"
	"github.com/san-kum/orbitview/internal/vec"
)

// ErrBodyIndex indicates a body-relative selector pointing outside the
// current body list. Resolving such a selector is a caller error; the
// tick should be rejected.
var ErrBodyIndex = errors.New("frame: body index out of range")

type Kind int

const (
	// Fixed keeps the origin at world zero.
	Fixed Kind = iota
	// Barycentric follows the system barycenter.
	Barycentric
	// BodyRelative follows one body by index into the body list.
	BodyRelative
)

// Selector picks the coordinate origin for rendering. The zero value
// is the fixed frame; body-relative selectors can only be built with a
// constructor, so a selector never carries a meaningless index.
type Selector struct {
	kind Kind
	idx  int
}

func FixedFrame() Selector       { return Selector{kind: Fixed} }
func BarycentricFrame() Selector { return Selector{kind: Barycentric} }
func BodyFrame(index int) Selector {
	return Selector{kind: BodyRelative, idx: index}
}

func (s Selector) Kind() Kind { return s.kind }

// BodyIndex returns the target index of a body-relative selector.
func (s Selector) BodyIndex() int { return s.idx }

// Basis is the per-tick origin subtracted from every body before
// rendering. Trail is nil for the fixed frame: historical samples then
// need no subtraction. It is recomputed fresh each tick and never
// cached across ticks.
type Basis struct {
	Position vec.Vec3
	Trail    *body.Trajectory
}

// Resolve produces the basis for the current tick. Projections and
// ribbon updates within one tick must share the snapshot it returns.
func Resolve(sel Selector, bodies []*body.Body, bc *body.Body) (Basis, error) {
	switch sel.kind {
	case Barycentric:
		return Basis{Position: bc.Position, Trail: bc.Trail}, nil
	case BodyRelative:
		if sel.idx < 0 || sel.idx >= len(bodies) {
			return Basis{}, ErrBodyIndex
		}
		b := bodies[sel.idx]
		return Basis{Position: b.Position, Trail: b.Trail}, nil
	default:
		return Basis{}, nil
	}
}

// Label returns the display name of the frame: "fixed", "barycenter",
// or the id of the tracked body.
func Label(sel Selector, bodies []*body.Body) (string, error) {
	switch sel.kind {
	case Barycentric:
		return "barycenter", nil
	case BodyRelative:
		if sel.idx < 0 || sel.idx >= len(bodies) {
			return "", ErrBodyIndex
		}
		return bodies[sel.idx].ID, nil
	default:
		return "fixed", nil
	}
}
