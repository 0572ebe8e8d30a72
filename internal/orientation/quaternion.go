// Package orientation composes vehicle heading/pitch/roll telemetry into
// normalized global-frame unit quaternions.
package orientation

import "math"

// Quaternion is a rotation in x/y/z/w component order, matching the order
// CZML unitQuaternion arrays use.
type Quaternion struct {
	X, Y, Z, W float64
}

// Identity returns the no-rotation quaternion.
func Identity() Quaternion {
	return Quaternion{X: 0, Y: 0, Z: 0, W: 1}
}

// Norm returns the quaternion's magnitude.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize scales q to unit magnitude. Degenerate input (non-positive
// magnitude) yields the identity quaternion and ok=false.
func (q Quaternion) Normalize() (Quaternion, bool) {
	n := q.Norm()
	if n <= 0 || math.IsNaN(n) {
		return Identity(), false
	}
	inv := 1 / n
	return Quaternion{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}, true
}

// Mul returns the Hamilton product q ⊗ r: the rotation r followed by the
// rotation q. Composing a local-frame rotation into a global frame puts the
// frame rotation on the left.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// Rotate applies the rotation to a 3-vector.
func (q Quaternion) Rotate(x, y, z float64) (float64, float64, float64) {
	v := Quaternion{X: x, Y: y, Z: z, W: 0}
	r := q.Mul(v).Mul(q.conjugate())
	return r.X, r.Y, r.Z
}

func (q Quaternion) conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}
