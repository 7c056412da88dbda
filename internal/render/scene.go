// Package render projects physical body state into scaled render-space
// coordinates. It owns the per-tick transform pipeline: frame
// resolution, sphere projection, trajectory ribbon orientation, and the
// camera-relative overlay recurrence. Scene objects themselves belong
// to a front end; the engine only mutates them through the Object
// interface.
package render

import "github.com/san-kum/orbitview/internal/vec"

// Object is a mutable scene-graph node. Front ends pre-allocate one per
// body sphere, one per (entity, sample) trail marker, and one per
// overlay axis; the engine writes each object's fields at most once per
// tick.
type Object interface {
	Position() vec.Vec3
	SetPosition(p vec.Vec3)
	SetRotation(q vec.Quat)
	// ScaleGeometry multiplies the object's intrinsic size by factor,
	// relative to its current size.
	ScaleGeometry(factor float64)
}
