package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orbitview/internal/vec"
)

// sphereNode is a drawable sphere the render engine positions each tick.
// Rotation is accepted but ignored, spheres have no visible orientation.
type sphereNode struct {
	pos    vec.Vec3
	radius float64
	color  rl.Color
}

func newSphereNode(radius float64, color rl.Color) *sphereNode {
	return &sphereNode{radius: radius, color: color}
}

func (s *sphereNode) Position() vec.Vec3      { return s.pos }
func (s *sphereNode) SetPosition(p vec.Vec3)  { s.pos = p }
func (s *sphereNode) SetRotation(q vec.Quat)  {}
func (s *sphereNode) ScaleGeometry(f float64) { s.radius *= f }

func (s *sphereNode) draw() {
	rl.DrawSphere(toVector3(s.pos), float32(s.radius), s.color)
}

// markerNode is a flat trail chevron. The engine rotates it so it faces
// backward along the direction of travel.
type markerNode struct {
	pos   vec.Vec3
	rot   vec.Quat
	size  float64
	color rl.Color
}

func newMarkerNode(size float64, color rl.Color) *markerNode {
	return &markerNode{rot: vec.Identity(), size: size, color: color}
}

func (m *markerNode) Position() vec.Vec3      { return m.pos }
func (m *markerNode) SetPosition(p vec.Vec3)  { m.pos = p }
func (m *markerNode) SetRotation(q vec.Quat)  { m.rot = q }
func (m *markerNode) ScaleGeometry(f float64) { m.size *= f }

func (m *markerNode) draw() {
	// Triangle in the marker's local XY plane, apex along +Y.
	apex := m.rot.Rotate(vec.Vec3{Y: m.size})
	left := m.rot.Rotate(vec.Vec3{X: -m.size * 0.4, Y: -m.size * 0.5})
	right := m.rot.Rotate(vec.Vec3{X: m.size * 0.4, Y: -m.size * 0.5})
	rl.DrawTriangle3D(
		toVector3(m.pos.Add(apex)),
		toVector3(m.pos.Add(left)),
		toVector3(m.pos.Add(right)),
		m.color,
	)
}

// axisNode is one arm of the origin overlay. The overlay scaler grows
// and shrinks it to stay a constant apparent size on screen.
type axisNode struct {
	pos   vec.Vec3
	size  float64
	color rl.Color
}

func newAxisNode(dir vec.Vec3, color rl.Color) *axisNode {
	return &axisNode{pos: dir, size: 1, color: color}
}

func (a *axisNode) Position() vec.Vec3      { return a.pos }
func (a *axisNode) SetPosition(p vec.Vec3)  { a.pos = p }
func (a *axisNode) SetRotation(q vec.Quat)  {}
func (a *axisNode) ScaleGeometry(f float64) { a.size *= f }

func (a *axisNode) draw() {
	rl.DrawLine3D(rl.NewVector3(0, 0, 0), toVector3(a.pos), a.color)
	rl.DrawSphere(toVector3(a.pos), float32(a.size)*0.04, a.color)
}

func toVector3(v vec.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}
