package orientation

import "math"

// HeadingConvention selects how a navigational heading (degrees clockwise
// from north) maps to a tangent-plane yaw angle. Different vehicle exports
// disagree on this; the conversion must stay selectable rather than fixed.
type HeadingConvention string

const (
	// HeadingMath90 maps heading to yaw = 90 - heading. This is the
	// canonical convention: heading 0 (north) becomes yaw 90, pointing
	// the body axis along local north.
	HeadingMath90 HeadingConvention = "math90"
	// HeadingPlus180 maps heading to yaw = heading + 180.
	HeadingPlus180 HeadingConvention = "plus180"
	// HeadingRaw uses the heading angle as the yaw directly.
	HeadingRaw HeadingConvention = "raw"
)

// Valid reports whether c is a known convention.
func (c HeadingConvention) Valid() bool {
	switch c {
	case HeadingMath90, HeadingPlus180, HeadingRaw:
		return true
	}
	return false
}

// YawDegrees converts a heading in degrees to a yaw angle in [0, 360)
// under the convention. Normalization is modular, so heading 0 and 360
// produce the same yaw exactly.
func (c HeadingConvention) YawDegrees(headingDeg float64) float64 {
	var yaw float64
	switch c {
	case HeadingPlus180:
		yaw = headingDeg + 180
	case HeadingRaw:
		yaw = headingDeg
	default:
		yaw = 90 - headingDeg
	}
	yaw = math.Mod(yaw, 360)
	if yaw < 0 {
		yaw += 360
	}
	return yaw
}

// HeadingDelta returns the shorter-arc angular distance between two
// headings in degrees, in [0, 180].
func HeadingDelta(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	return math.Min(d, 360-d)
}

// FromYawPitchRoll builds a quaternion from tangent-plane Euler angles in
// degrees, composing yaw about the local vertical, then pitch, then roll,
// by half-angle construction. Pitch is nose-up positive; rotation about the
// pitch axis is nose-down for an x-forward frame, so its sign flips here.
func FromYawPitchRoll(yawDeg, pitchDeg, rollDeg float64) Quaternion {
	yaw := yawDeg * math.Pi / 360 // half angles
	pitch := -pitchDeg * math.Pi / 360
	roll := rollDeg * math.Pi / 360

	cy := math.Cos(yaw)
	sy := math.Sin(yaw)
	cp := math.Cos(pitch)
	sp := math.Sin(pitch)
	cr := math.Cos(roll)
	sr := math.Sin(roll)

	return Quaternion{
		W: cy*cp*cr + sy*sp*sr,
		X: cy*cp*sr - sy*sp*cr,
		Y: cy*sp*cr + sy*cp*sr,
		Z: sy*cp*cr - cy*sp*sr,
	}
}

// YawOnly builds the reduced single-axis rotation about the vertical, used
// in direct-geodetic mode where pitch and roll are ignored.
func YawOnly(yawDeg float64) Quaternion {
	half := yawDeg * math.Pi / 360
	return Quaternion{X: 0, Y: 0, Z: math.Sin(half), W: math.Cos(half)}
}
