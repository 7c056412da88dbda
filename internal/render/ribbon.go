package render

import (
	"github.com/san-kum/orbitview/internal/body"
	"github.com/san-kum/orbitview/internal/frame"
	"github.com/san-kum/orbitview/internal/vec"
)

// markerUp is the canonical axis marker geometry points along before
// any rotation is applied.
var markerUp = vec.Vec3{Y: 1}

// UpdateRibbon walks one entity's trail oldest-to-newest, writing the
// frame-relative scaled position and a travel-direction orientation
// into the marker at each sample index.
//
// The basis trail sample at index k is subtracted from the entity's
// sample at the same k, never a different one: both buffers are
// appended in lockstep, so equal indices refer to the same physical
// tick. Markers face backward along the path: the orientation rotates
// the canonical up axis onto the negated, normalized direction from the
// previous marker (world origin for k == 0) to this one. A zero-length
// segment leaves the marker's previous orientation in place.
func UpdateRibbon(trail *body.Trajectory, basis frame.Basis, scale float64, markers []Object) {
	prev := vec.Vec3{}
	for k := 0; k < trail.Len(); k++ {
		pos := trail.At(k)
		if basis.Trail != nil {
			pos = pos.Sub(basis.Trail.At(k))
		}
		pos = pos.Scale(scale)

		m := markers[k]
		m.SetPosition(pos)

		if facing := prev.Sub(pos).Normalize(); !facing.IsZero() {
			m.SetRotation(vec.FromUnitVectors(markerUp, facing))
		}
		prev = pos
	}
}
