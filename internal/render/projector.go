package render

import (
	"github.com/san-kum/orbitview/internal/body"
	"github.com/san-kum/orbitview/internal/frame"
)

// ProjectBody writes a body's current frame-relative, scaled position
// into its scene object. The basis must be the snapshot resolved for
// this tick; mixing bases across one tick breaks frame consistency
// between spheres and ribbons.
func ProjectBody(b *body.Body, basis frame.Basis, scale float64, target Object) {
	target.SetPosition(b.Position.Sub(basis.Position).Scale(scale))
}
