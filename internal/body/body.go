// Package body defines the simulated point masses and their position
// history. Bodies are owned by the integrator; the render engine only
// reads them.
package body

import "github.com/san-kum/orbitview/internal/vec"

// Body is a point mass with its trajectory history. The Trail of every
// body in a system shares the same capacity and sample cadence: index k
// in one trail corresponds to the same simulation sample as index k in
// any other.
type Body struct {
	ID       string
	Mass     float64
	Position vec.Vec3
	Velocity vec.Vec3
	Trail    *Trajectory
}

// New creates a body with an empty trail of the given capacity.
func New(id string, mass float64, pos, vel vec.Vec3, trailCap int) *Body {
	return &Body{
		ID:       id,
		Mass:     mass,
		Position: pos,
		Velocity: vel,
		Trail:    NewTrajectory(trailCap),
	}
}

// Sample appends the current position to the trail.
func (b *Body) Sample() { b.Trail.Push(b.Position) }

// NewBarycenter creates the synthetic aggregate body. Its mass is the
// system total but carries no meaning for rendering.
func NewBarycenter(bodies []*Body, trailCap int) *Body {
	bc := New("barycenter", 0, vec.Vec3{}, vec.Vec3{}, trailCap)
	bc.Recenter(bodies)
	return bc
}

// Recenter recomputes the mass-weighted aggregate position and velocity
// from the current body states.
func (b *Body) Recenter(bodies []*Body) {
	var pos, vel vec.Vec3
	total := 0.0
	for _, o := range bodies {
		pos = pos.Add(o.Position.Scale(o.Mass))
		vel = vel.Add(o.Velocity.Scale(o.Mass))
		total += o.Mass
	}
	if total == 0 {
		return
	}
	b.Mass = total
	b.Position = pos.Scale(1 / total)
	b.Velocity = vel.Scale(1 / total)
}

// Momentum returns the total momentum of the given bodies.
func Momentum(bodies []*Body) vec.Vec3 {
	var p vec.Vec3
	for _, b := range bodies {
		p = p.Add(b.Velocity.Scale(b.Mass))
	}
	return p
}
