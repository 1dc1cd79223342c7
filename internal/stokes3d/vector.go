package stokes3d

import "math"

// Vector3 represents a direction (not a position) in 3D space.
type Vector3 struct {
	X, Y, Z Real
}

// Vector functions
func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector3) Mul(s Real) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product between two 3D vectors.
func (a Vector3) Dot(b Vector3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a × b.
func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the Euclidean length of the vector.
func (v Vector3) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
func (v Vector3) Norm() Vector3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// coordinateSystem completes a unit direction n into an orthonormal frame
// (s, t, n). Branch-free construction after Duff et al., so two calls with
// the same n always produce the same frame. This determinism is what allows
// reference bases to be recomputed on demand instead of stored.
func coordinateSystem(n Vector3) (Vector3, Vector3) {
	sign := math.Copysign(1, n.Z)
	a := -1 / (sign + n.Z)
	b := n.X * n.Y * a
	s := Vector3{1 + sign*n.X*n.X*a, sign * b, -sign * n.X}
	t := Vector3{b, sign + n.Y*n.Y*a, -n.Y}
	return s, t
}

// unitAngle returns the angle between two unit vectors. Unlike acos of the
// dot product it stays accurate near 0 and π.
func unitAngle(a, b Vector3) Real {
	if a.Dot(b) >= 0 {
		return 2 * math.Asin(0.5*b.Sub(a).Len())
	}
	return math.Pi - 2*math.Asin(0.5*b.Add(a).Len())
}
