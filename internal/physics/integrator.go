package physics

import "github.com/san-kum/orbitview/internal/vec"

// Integrator advances the system state by one substep.
type Integrator interface {
	Step(s *System, dt float64)
}

// Leapfrog is a kick-drift-kick symplectic stepper. It bounds energy
// drift over long runs, which keeps closed orbits closed on screen.
type Leapfrog struct {
	acc []vec.Vec3
}

func NewLeapfrog() *Leapfrog { return &Leapfrog{} }

func (l *Leapfrog) ensureScratch(n int) {
	if len(l.acc) != n {
		l.acc = make([]vec.Vec3, n)
	}
}

func (l *Leapfrog) Step(s *System, dt float64) {
	n := len(s.Bodies)
	l.ensureScratch(n)
	half := 0.5 * dt

	s.Accelerations(l.acc)
	for i, b := range s.Bodies {
		b.Velocity = b.Velocity.Add(l.acc[i].Scale(half))
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
	}

	s.Accelerations(l.acc)
	for i, b := range s.Bodies {
		b.Velocity = b.Velocity.Add(l.acc[i].Scale(half))
	}
}

// RK4 is a classical fourth-order Runge-Kutta stepper. Not symplectic,
// but useful when comparing against the leapfrog baseline.
type RK4 struct {
	p0, v0     []vec.Vec3
	kp, kv     []vec.Vec3
	sumP, sumV []vec.Vec3
	scratch    []vec.Vec3
}

func NewRK4() *RK4 { return &RK4{} }

func (r *RK4) ensureScratch(n int) {
	if len(r.p0) != n {
		r.p0 = make([]vec.Vec3, n)
		r.v0 = make([]vec.Vec3, n)
		r.kp = make([]vec.Vec3, n)
		r.kv = make([]vec.Vec3, n)
		r.sumP = make([]vec.Vec3, n)
		r.sumV = make([]vec.Vec3, n)
		r.scratch = make([]vec.Vec3, n)
	}
}

func (r *RK4) Step(s *System, dt float64) {
	n := len(s.Bodies)
	r.ensureScratch(n)

	for i, b := range s.Bodies {
		r.p0[i] = b.Position
		r.v0[i] = b.Velocity
		r.sumP[i] = vec.Vec3{}
		r.sumV[i] = vec.Vec3{}
	}

	// Stage weights 1, 2, 2, 1 with midpoint offsets 0, h/2, h/2, h.
	offsets := [4]float64{0, 0.5, 0.5, 1}
	weights := [4]float64{1, 2, 2, 1}

	for stage := 0; stage < 4; stage++ {
		if stage > 0 {
			h := offsets[stage] * dt
			for i, b := range s.Bodies {
				b.Position = r.p0[i].Add(r.kp[i].Scale(h))
				b.Velocity = r.v0[i].Add(r.kv[i].Scale(h))
			}
		}
		s.Accelerations(r.scratch)
		for i, b := range s.Bodies {
			r.kp[i] = b.Velocity
			r.kv[i] = r.scratch[i]
			r.sumP[i] = r.sumP[i].Add(r.kp[i].Scale(weights[stage]))
			r.sumV[i] = r.sumV[i].Add(r.kv[i].Scale(weights[stage]))
		}
	}

	dt6 := dt / 6
	for i, b := range s.Bodies {
		b.Position = r.p0[i].Add(r.sumP[i].Scale(dt6))
		b.Velocity = r.v0[i].Add(r.sumV[i].Scale(dt6))
	}
}

// NewIntegrator maps a config name to a stepper, defaulting to
// leapfrog for unknown names.
func NewIntegrator(name string) Integrator {
	if name == "rk4" {
		return NewRK4()
	}
	return NewLeapfrog()
}
