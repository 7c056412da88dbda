package body

import (
	"math"
	"testing"

	"github.com/san-kum/orbitview/internal/vec"
)

func TestTrajectoryOrder(t *testing.T) {
	tr := NewTrajectory(3)

	if tr.Len() != 0 || tr.Cap() != 3 {
		t.Fatalf("fresh trajectory: len %d cap %d", tr.Len(), tr.Cap())
	}

	tr.Push(vec.Vec3{X: 1})
	tr.Push(vec.Vec3{X: 2})
	if tr.At(0).X != 1 || tr.At(1).X != 2 {
		t.Errorf("partial fill out of order: %v %v", tr.At(0), tr.At(1))
	}

	tr.Push(vec.Vec3{X: 3})
	tr.Push(vec.Vec3{X: 4}) // evicts 1
	tr.Push(vec.Vec3{X: 5}) // evicts 2

	want := []float64{3, 4, 5}
	for k, w := range want {
		if got := tr.At(k).X; got != w {
			t.Errorf("At(%d) = %g, want %g", k, got, w)
		}
	}
	if tr.Len() != 3 {
		t.Errorf("len after wrap = %d, want 3", tr.Len())
	}
}

func TestBarycenterEqualMasses(t *testing.T) {
	bodies := []*Body{
		New("a", 1, vec.Vec3{X: 3}, vec.Vec3{Y: 1}, 8),
		New("b", 1, vec.Vec3{X: -1}, vec.Vec3{Y: -1}, 8),
		New("c", 1, vec.Vec3{X: 1, Z: 6}, vec.Vec3{}, 8),
	}

	bc := NewBarycenter(bodies, 8)

	if math.Abs(bc.Position.X-1) > 1e-12 || math.Abs(bc.Position.Z-2) > 1e-12 {
		t.Errorf("barycenter position %+v, want {1 0 2}", bc.Position)
	}
	if bc.Mass != 3 {
		t.Errorf("barycenter mass %g, want 3", bc.Mass)
	}
}

func TestBarycenterMassWeighted(t *testing.T) {
	bodies := []*Body{
		New("heavy", 3, vec.Vec3{}, vec.Vec3{}, 4),
		New("light", 1, vec.Vec3{X: 4}, vec.Vec3{X: 4}, 4),
	}

	bc := NewBarycenter(bodies, 4)

	if math.Abs(bc.Position.X-1) > 1e-12 {
		t.Errorf("weighted position %g, want 1", bc.Position.X)
	}
	if math.Abs(bc.Velocity.X-1) > 1e-12 {
		t.Errorf("weighted velocity %g, want 1", bc.Velocity.X)
	}
}

func TestMomentum(t *testing.T) {
	bodies := []*Body{
		New("a", 2, vec.Vec3{}, vec.Vec3{X: 1}, 4),
		New("b", 1, vec.Vec3{}, vec.Vec3{X: -2}, 4),
	}

	p := Momentum(bodies)
	if p.Length() > 1e-12 {
		t.Errorf("expected zero net momentum, got %+v", p)
	}
}
