package storage

import (
	"math"
	"testing"

	"github.com/san-kum/orbitview/internal/vec"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	result := &Result{
		Times: []float64{0, 0.5},
		Positions: [][]vec.Vec3{
			{{X: 1, Y: 2, Z: 3}, {X: -1}},
			{{X: 1.5e11, Y: 2}, {Z: 0.25}},
		},
		Metrics: map[string]float64{"energy_drift": 1e-6},
	}

	runID, err := st.Save("binary", "leapfrog", 0.02, 4, 2, []string{"primary", "secondary"}, result)
	if err != nil {
		t.Fatal(err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.System != "binary" || meta.Integrator != "leapfrog" || meta.Ticks != 2 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if len(meta.Bodies) != 2 || meta.Bodies[0] != "primary" {
		t.Errorf("bodies lost: %v", meta.Bodies)
	}

	times, positions, err := st.LoadPositions(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(times) != 2 || len(positions) != 2 {
		t.Fatalf("expected 2 rows, got %d/%d", len(times), len(positions))
	}
	if math.Abs(positions[1][0].X-1.5e11) > 1 {
		t.Errorf("position lost precision: %g", positions[1][0].X)
	}
	if math.Abs(positions[1][1].Z-0.25) > 1e-9 {
		t.Errorf("position z = %g, want 0.25", positions[1][1].Z)
	}
}

func TestListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/missing")
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	result := &Result{
		Times:     []float64{0},
		Positions: [][]vec.Vec3{{{X: 1}}},
	}
	if _, err := st.Save("figure8", "rk4", 0.02, 4, 1, []string{"alpha"}, result); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].System != "figure8" {
		t.Errorf("unexpected list: %+v", runs)
	}
}
