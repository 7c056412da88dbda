// Package physics advances the gravitational N-body system. The render
// engine treats it as an external collaborator: it only reads the body
// state the steppers produce.
package physics

import (
	"errors"
	"math"

	"github.com/san-kum/orbitview/internal/body"
	"github.com/san-kum/orbitview/internal/vec"
)

// ErrDiverged indicates a body state went NaN or Inf during stepping.
var ErrDiverged = errors.New("physics: body state diverged")

// System holds the bodies, their synthetic barycenter, and the force
// law parameters.
type System struct {
	Bodies    []*body.Body
	Bary      *body.Body
	G         float64
	Softening float64
}

// NewSystem builds a system around the given bodies and seeds every
// trail with the initial positions so sample index 0 lines up across
// all entities from the first tick.
func NewSystem(bodies []*body.Body, g, softening float64, trailCap int) *System {
	s := &System{
		Bodies:    bodies,
		Bary:      body.NewBarycenter(bodies, trailCap),
		G:         g,
		Softening: softening,
	}
	s.sample()
	return s
}

// Accelerations computes the softened pairwise gravitational
// acceleration on every body into dst.
func (s *System) Accelerations(dst []vec.Vec3) {
	for i := range dst {
		dst[i] = vec.Vec3{}
	}
	eps2 := s.Softening * s.Softening

	for i := 0; i < len(s.Bodies); i++ {
		pi := s.Bodies[i].Position
		for j := i + 1; j < len(s.Bodies); j++ {
			r := s.Bodies[j].Position.Sub(pi)
			r2 := r.Dot(r) + eps2
			r3inv := 1 / (r2 * math.Sqrt(r2))

			dst[i] = dst[i].Add(r.Scale(s.G * s.Bodies[j].Mass * r3inv))
			dst[j] = dst[j].Sub(r.Scale(s.G * s.Bodies[i].Mass * r3inv))
		}
	}
}

// Advance runs samples integrator substeps covering speed seconds of
// physical time, appending one trail sample per substep for every body
// and the barycenter in lockstep.
func (s *System) Advance(integ Integrator, speed float64, samples int) error {
	dt := speed / float64(samples)
	for k := 0; k < samples; k++ {
		integ.Step(s, dt)
		for _, b := range s.Bodies {
			if !b.Position.IsValid() || !b.Velocity.IsValid() {
				return ErrDiverged
			}
		}
		s.Bary.Recenter(s.Bodies)
		s.sample()
	}
	return nil
}

func (s *System) sample() {
	for _, b := range s.Bodies {
		b.Sample()
	}
	s.Bary.Sample()
}

// Energy returns total kinetic plus potential energy.
func (s *System) Energy() float64 {
	ke, pe := 0.0, 0.0
	eps2 := s.Softening * s.Softening

	for i, b := range s.Bodies {
		ke += 0.5 * b.Mass * b.Velocity.Dot(b.Velocity)
		for j := i + 1; j < len(s.Bodies); j++ {
			r := s.Bodies[j].Position.Sub(b.Position)
			pe -= s.G * b.Mass * s.Bodies[j].Mass / math.Sqrt(r.Dot(r)+eps2)
		}
	}
	return ke + pe
}

// Momentum returns the total momentum vector.
func (s *System) Momentum() vec.Vec3 { return body.Momentum(s.Bodies) }
