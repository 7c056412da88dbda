package config

import "sort"

// Presets are the built-in systems. "figure8" and "binary" use
// normalized units (G = 1); "inner" uses SI values for the Sun and the
// inner planets, scaled down to render units and sped up to days per
// tick.
var presets = map[string]*Config{
	"figure8": {
		Name: "figure8", Integrator: "leapfrog",
		Scale: 1.0, Speed: 0.02, Samples: 4, Trail: 120,
		Frame: "fixed", G: 1.0, Softening: 0.001,
		Bodies: []BodyConfig{
			{ID: "alpha", Mass: 1, Position: [3]float64{-0.97000436, 0.24308753, 0}, Velocity: [3]float64{0.4662036850, 0.4323657300, 0}},
			{ID: "beta", Mass: 1, Position: [3]float64{0.97000436, -0.24308753, 0}, Velocity: [3]float64{0.4662036850, 0.4323657300, 0}},
			{ID: "gamma", Mass: 1, Position: [3]float64{0, 0, 0}, Velocity: [3]float64{-0.93240737, -0.86473146, 0}},
		},
	},
	"binary": {
		Name: "binary", Integrator: "leapfrog",
		Scale: 1.0, Speed: 0.02, Samples: 4, Trail: 160,
		Frame: "barycenter", G: 1.0, Softening: 0.001,
		Bodies: []BodyConfig{
			{ID: "primary", Mass: 2, Position: [3]float64{-0.5, 0, 0}, Velocity: [3]float64{0, -0.4, 0}},
			{ID: "secondary", Mass: 2, Position: [3]float64{0.5, 0, 0}, Velocity: [3]float64{0, 0.4, 0}},
			{ID: "probe", Mass: 0.001, Position: [3]float64{0, 2.5, 0}, Velocity: [3]float64{1.1, 0, 0.1}},
		},
	},
	"inner": {
		Name: "inner", Integrator: "leapfrog",
		Scale: 1e-10, Speed: 86400 * 2, Samples: 8, Trail: 200,
		Frame: "sun", G: 6.674e-11, Softening: 1e6,
		Bodies: []BodyConfig{
			{ID: "sun", Mass: 1.989e30},
			{ID: "mercury", Mass: 3.301e23, Position: [3]float64{5.791e10, 0, 0}, Velocity: [3]float64{0, 4.74e4, 0}},
			{ID: "venus", Mass: 4.867e24, Position: [3]float64{0, 1.082e11, 0}, Velocity: [3]float64{-3.50e4, 0, 0}},
			{ID: "earth", Mass: 5.972e24, Position: [3]float64{-1.496e11, 0, 0}, Velocity: [3]float64{0, -2.978e4, 0}},
			{ID: "mars", Mass: 6.417e23, Position: [3]float64{0, -2.279e11, 0}, Velocity: [3]float64{2.41e4, 0, 0}},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
// Callers own the copy and may mutate it freely.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cp := *p
	cp.Bodies = append([]BodyConfig(nil), p.Bodies...)
	return &cp
}

// ListPresets returns the preset names sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
