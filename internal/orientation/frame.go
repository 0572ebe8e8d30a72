package orientation

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// TangentFrame returns the 3x3 rotation matrix whose columns are the local
// east, north, and up unit vectors at the geodetic point, expressed in the
// geocentric frame. It maps local tangent-plane vectors into global
// coordinates. Degenerate near the poles, which is outside the supported
// operating envelope.
func TangentFrame(lonDeg, latDeg float64) *mat.Dense {
	lon := lonDeg * math.Pi / 180
	lat := latDeg * math.Pi / 180
	sinLon := math.Sin(lon)
	cosLon := math.Cos(lon)
	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)

	return mat.NewDense(3, 3, []float64{
		// east            north              up
		-sinLon, -sinLat * cosLon, cosLat * cosLon,
		cosLon, -sinLat * sinLon, cosLat * sinLon,
		0, cosLat, sinLat,
	})
}

// FromRotationMatrix converts a rotation matrix to a quaternion using the
// trace method, branching on the dominant diagonal term so the divisor is
// never near zero.
func FromRotationMatrix(m mat.Matrix) Quaternion {
	m00, m01, m02 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	m10, m11, m12 := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	m20, m21, m22 := m.At(2, 0), m.At(2, 1), m.At(2, 2)

	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := 2 * math.Sqrt(trace+1)
		return Quaternion{
			W: s / 4,
			X: (m21 - m12) / s,
			Y: (m02 - m20) / s,
			Z: (m10 - m01) / s,
		}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1 + m00 - m11 - m22)
		return Quaternion{
			W: (m21 - m12) / s,
			X: s / 4,
			Y: (m01 + m10) / s,
			Z: (m02 + m20) / s,
		}
	case m11 > m22:
		s := 2 * math.Sqrt(1 + m11 - m00 - m22)
		return Quaternion{
			W: (m02 - m20) / s,
			X: (m01 + m10) / s,
			Y: s / 4,
			Z: (m12 + m21) / s,
		}
	default:
		s := 2 * math.Sqrt(1 + m22 - m00 - m11)
		return Quaternion{
			W: (m10 - m01) / s,
			X: (m02 + m20) / s,
			Y: (m12 + m21) / s,
			Z: s / 4,
		}
	}
}

// FrameQuaternion is the tangent-frame rotation at the geodetic point as a
// quaternion, ready to compose with a local-frame attitude.
func FrameQuaternion(lonDeg, latDeg float64) Quaternion {
	return FromRotationMatrix(TangentFrame(lonDeg, latDeg))
}
