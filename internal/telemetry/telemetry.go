// Package telemetry assembles the human-readable readout shown by the
// front ends. It is pure formatting over engine state; presentation
// (layout, refresh cadence) belongs to the consumer.
package telemetry

import (
	"fmt"

	"github.com/san-kum/orbitview/internal/render"
	"github.com/san-kum/orbitview/internal/units"
)

// scaleBarUnits is the render-space span the scale readout describes.
const scaleBarUnits = 200.0

// Stats is one tick's formatted readout.
type Stats struct {
	Frame    string
	Samples  string
	StepSize string
	Elapsed  string
	Momentum string
	ScaleBar string
}

// Collect formats the current engine state.
func Collect(e *render.Engine) Stats {
	s := e.Settings
	return Format(
		e.FrameLabel(),
		s.Samples,
		s.Speed/float64(s.Samples),
		e.Elapsed,
		e.Sys.Momentum().Length(),
		s.Scale,
	)
}

// Format renders the raw readings. step and elapsed are seconds,
// momentum is kg*m/s, scale is the render-units-per-meter multiplier.
func Format(frameLabel string, samples int, step, elapsed, momentum, scale float64) Stats {
	return Stats{
		Frame:    frameLabel,
		Samples:  fmt.Sprintf("%d", samples),
		StepSize: units.FormatDuration(step),
		Elapsed:  units.FormatDuration(elapsed),
		Momentum: fmt.Sprintf("%.2f kg*m/s", momentum),
		ScaleBar: units.Humanize(scaleBarUnits / scale).Format("m"),
	}
}

// Lines returns the stats as labeled display lines in a stable order.
func (s Stats) Lines() []string {
	return []string{
		"frame: " + s.Frame,
		"samples/tick: " + s.Samples,
		"step: " + s.StepSize,
		"elapsed: " + s.Elapsed,
		"momentum: " + s.Momentum,
		"200 units = " + s.ScaleBar,
	}
}
