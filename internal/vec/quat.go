package vec

import "math"

// Quat is a rotation quaternion.
type Quat struct {
	X, Y, Z, W float64
}

// Identity returns the identity rotation.
func Identity() Quat { return Quat{W: 1} }

func (q Quat) Length() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns the unit quaternion, or the identity when q is zero.
func (q Quat) Normalize() Quat {
	l := q.Length()
	if l == 0 {
		return Identity()
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// FromUnitVectors returns the shortest-arc rotation taking unit vector
// from onto unit vector to. Antiparallel inputs rotate half a turn about
// an axis perpendicular to from.
func FromUnitVectors(from, to Vec3) Quat {
	const eps = 1e-6

	var axis Vec3
	r := from.Dot(to) + 1
	if r < eps {
		r = 0
		if math.Abs(from.X) > math.Abs(from.Z) {
			axis = Vec3{-from.Y, from.X, 0}
		} else {
			axis = Vec3{0, -from.Z, from.Y}
		}
	} else {
		axis = from.Cross(to)
	}

	return Quat{axis.X, axis.Y, axis.Z, r}.Normalize()
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	s := q.W
	return u.Scale(2 * u.Dot(v)).
		Add(v.Scale(s*s - u.Dot(u))).
		Add(u.Cross(v).Scale(2 * s))
}

// AxisAngle decomposes the rotation into an axis and an angle in radians.
// The identity rotation reports the +Y axis with zero angle.
func (q Quat) AxisAngle() (Vec3, float64) {
	n := q.Normalize()
	angle := 2 * math.Acos(math.Max(-1, math.Min(1, n.W)))
	s := math.Sqrt(1 - n.W*n.W)
	if s < 1e-9 {
		return Vec3{Y: 1}, 0
	}
	return Vec3{n.X / s, n.Y / s, n.Z / s}, angle
}
