package vec

import (
	"math"
	"testing"
)

func approxVec(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestNormalize(t *testing.T) {
	v := Vec3{3, 4, 0}.Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("expected unit length, got %f", v.Length())
	}

	z := Vec3{}.Normalize()
	if !z.IsZero() {
		t.Errorf("expected zero vector, got %+v", z)
	}
}

func TestCrossOrthogonal(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-2, 0.5, 4}
	c := a.Cross(b)

	if math.Abs(c.Dot(a)) > 1e-12 || math.Abs(c.Dot(b)) > 1e-12 {
		t.Errorf("cross product not orthogonal: %+v", c)
	}
}

func TestFromUnitVectors(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec3
	}{
		{"y_to_x", Vec3{Y: 1}, Vec3{X: 1}},
		{"y_to_diagonal", Vec3{Y: 1}, Vec3{1, 1, 1}.Normalize()},
		{"identity", Vec3{Y: 1}, Vec3{Y: 1}},
		{"antiparallel", Vec3{Y: 1}, Vec3{Y: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := FromUnitVectors(tt.from, tt.to)
			got := q.Rotate(tt.from)
			if !approxVec(got, tt.to, 1e-9) {
				t.Errorf("rotated %+v, want %+v", got, tt.to)
			}
		})
	}
}

func TestAxisAngle(t *testing.T) {
	q := FromUnitVectors(Vec3{Y: 1}, Vec3{X: 1})
	axis, angle := q.AxisAngle()

	if math.Abs(angle-math.Pi/2) > 1e-9 {
		t.Errorf("expected quarter turn, got %f", angle)
	}
	if !approxVec(axis, Vec3{Z: -1}, 1e-9) {
		t.Errorf("expected -z axis, got %+v", axis)
	}

	_, zero := Identity().AxisAngle()
	if zero != 0 {
		t.Errorf("identity should have zero angle, got %f", zero)
	}
}
