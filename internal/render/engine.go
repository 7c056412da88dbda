package render

import (
	"errors"

	"github.com/san-kum/orbitview/internal/frame"
	"github.com/san-kum/orbitview/internal/physics"
)

// ErrSettings indicates non-positive scale, speed, or sample count.
// The offending tick is rejected and prior render state is preserved.
var ErrSettings = errors.New("render: settings must be positive")

// Settings is the externally owned, mutable per-tick configuration.
// The engine reads it fresh every tick.
type Settings struct {
	// Scale converts physical units to render units.
	Scale float64
	// Speed is seconds of physical time advanced per tick.
	Speed float64
	// Samples is the number of integration substeps (and trail
	// samples) per tick.
	Samples int
	// Frame selects the rendering origin.
	Frame frame.Selector
}

// Engine drives the per-tick transform pipeline. Entity order is fixed
// for the session: barycenter first, then bodies in list order —
// Spheres[0] and Markers[0] belong to the barycenter, Spheres[1+i] and
// Markers[1+i] to body i. Each marker slice is as long as the trail
// capacity; only retained samples are written.
type Engine struct {
	Sys      *physics.System
	Integ    physics.Integrator
	Settings *Settings

	Spheres []Object
	Markers [][]Object

	// Elapsed is accumulated simulated time in seconds.
	Elapsed float64
}

// NewEngine wires the engine to its collaborators. The scene slices
// must already be allocated by the front end.
func NewEngine(sys *physics.System, integ physics.Integrator, settings *Settings, spheres []Object, markers [][]Object) *Engine {
	return &Engine{
		Sys:      sys,
		Integ:    integ,
		Settings: settings,
		Spheres:  spheres,
		Markers:  markers,
	}
}

// Tick advances the simulation and rewrites every scene object. The
// ordering is fixed: physical state advances first, then the frame
// basis is resolved once, and all projections and ribbon updates share
// that single snapshot. On error no scene object has been touched.
func (e *Engine) Tick() error {
	if e.Settings.Scale <= 0 || e.Settings.Speed <= 0 || e.Settings.Samples <= 0 {
		return ErrSettings
	}

	// Validate the selector before advancing so a bad index rejects
	// the whole tick, not just the render half.
	if _, err := frame.Resolve(e.Settings.Frame, e.Sys.Bodies, e.Sys.Bary); err != nil {
		return err
	}

	if err := e.Sys.Advance(e.Integ, e.Settings.Speed, e.Settings.Samples); err != nil {
		return err
	}

	// The basis snapshot is resolved once per tick, after the advance;
	// every projection and ribbon update below shares it.
	basis, err := frame.Resolve(e.Settings.Frame, e.Sys.Bodies, e.Sys.Bary)
	if err != nil {
		return err
	}

	scale := e.Settings.Scale
	ProjectBody(e.Sys.Bary, basis, scale, e.Spheres[0])
	for i, b := range e.Sys.Bodies {
		ProjectBody(b, basis, scale, e.Spheres[1+i])
	}

	UpdateRibbon(e.Sys.Bary.Trail, basis, scale, e.Markers[0])
	for i, b := range e.Sys.Bodies {
		UpdateRibbon(b.Trail, basis, scale, e.Markers[1+i])
	}

	e.Elapsed += e.Settings.Speed
	return nil
}

// FrameLabel returns the display name of the active frame.
func (e *Engine) FrameLabel() string {
	label, err := frame.Label(e.Settings.Frame, e.Sys.Bodies)
	if err != nil {
		return "invalid"
	}
	return label
}
