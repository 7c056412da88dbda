package frame

import (
	"errors"
	"testing"

	"github.com/san-kum/orbitview/internal/body"
	"github.com/san-kum/orbitview/internal/vec"
)

func testSystem() ([]*body.Body, *body.Body) {
	bodies := []*body.Body{
		body.New("sun", 10, vec.Vec3{X: 1, Y: 2, Z: 3}, vec.Vec3{}, 4),
		body.New("earth", 1, vec.Vec3{X: -5}, vec.Vec3{}, 4),
	}
	return bodies, body.NewBarycenter(bodies, 4)
}

func TestResolveFixed(t *testing.T) {
	bodies, bc := testSystem()

	basis, err := Resolve(FixedFrame(), bodies, bc)
	if err != nil {
		t.Fatal(err)
	}
	if !basis.Position.IsZero() {
		t.Errorf("fixed basis position %+v, want zero", basis.Position)
	}
	if basis.Trail != nil {
		t.Error("fixed basis trail should be nil")
	}
}

func TestResolveBarycentric(t *testing.T) {
	bodies, bc := testSystem()

	basis, err := Resolve(BarycentricFrame(), bodies, bc)
	if err != nil {
		t.Fatal(err)
	}
	if basis.Position != bc.Position {
		t.Errorf("basis position %+v, want %+v", basis.Position, bc.Position)
	}
	if basis.Trail != bc.Trail {
		t.Error("basis trail should be the barycenter's")
	}
}

func TestResolveBodyRelative(t *testing.T) {
	bodies, bc := testSystem()

	basis, err := Resolve(BodyFrame(0), bodies, bc)
	if err != nil {
		t.Fatal(err)
	}
	if basis.Position != bodies[0].Position {
		t.Errorf("basis position %+v, want %+v", basis.Position, bodies[0].Position)
	}

	// A body rendered relative to itself sits at the render origin.
	if rel := bodies[0].Position.Sub(basis.Position); !rel.IsZero() {
		t.Errorf("self-relative position %+v, want zero", rel)
	}
}

func TestResolveBadIndex(t *testing.T) {
	bodies, bc := testSystem()

	for _, idx := range []int{-1, 2, 99} {
		if _, err := Resolve(BodyFrame(idx), bodies, bc); !errors.Is(err, ErrBodyIndex) {
			t.Errorf("index %d: expected ErrBodyIndex, got %v", idx, err)
		}
	}
}

func TestLabel(t *testing.T) {
	bodies, _ := testSystem()

	tests := []struct {
		sel  Selector
		want string
	}{
		{FixedFrame(), "fixed"},
		{BarycentricFrame(), "barycenter"},
		{BodyFrame(1), "earth"},
	}

	for _, tt := range tests {
		got, err := Label(tt.sel, bodies)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Label = %q, want %q", got, tt.want)
		}
	}

	if _, err := Label(BodyFrame(7), bodies); !errors.Is(err, ErrBodyIndex) {
		t.Errorf("expected ErrBodyIndex, got %v", err)
	}
}
