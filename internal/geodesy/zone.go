// Package geodesy maps vehicle positions between projected planar
// coordinates, geodetic degrees, and the geocentric Cartesian frame, on the
// WGS-84 ellipsoid.
package geodesy

import "math"

// Hemisphere selects the northing origin of a projected zone.
type Hemisphere string

const (
	North Hemisphere = "N"
	South Hemisphere = "S"
)

// Zone is a UTM-style projection zone.
type Zone struct {
	Number     int
	Hemisphere Hemisphere
}

// ZoneFor returns the projection zone containing the geodetic point.
//
// Standard 6-degree longitudinal banding, with the two regional overrides:
// the band 56-64N, 3-12E collapses into zone 32 (southwest Norway), and
// 72-84N splits longitude 0-42E into the four wide zones 31/33/35/37
// (Svalbard). Hemisphere follows the sign of latitude.
func ZoneFor(lonDeg, latDeg float64) Zone {
	hemi := North
	if latDeg < 0 {
		hemi = South
	}

	if latDeg >= 56 && latDeg < 64 && lonDeg >= 3 && lonDeg < 12 {
		return Zone{Number: 32, Hemisphere: hemi}
	}
	if latDeg >= 72 && latDeg < 84 {
		switch {
		case lonDeg >= 0 && lonDeg < 9:
			return Zone{Number: 31, Hemisphere: hemi}
		case lonDeg >= 9 && lonDeg < 21:
			return Zone{Number: 33, Hemisphere: hemi}
		case lonDeg >= 21 && lonDeg < 33:
			return Zone{Number: 35, Hemisphere: hemi}
		case lonDeg >= 33 && lonDeg < 42:
			return Zone{Number: 37, Hemisphere: hemi}
		}
	}

	n := int(math.Floor((lonDeg+180)/6)) + 1
	if n < 1 {
		n = 1
	}
	if n > 60 {
		n = 60
	}
	return Zone{Number: n, Hemisphere: hemi}
}

// CentralMeridian returns the zone's central meridian in degrees.
func (z Zone) CentralMeridian() float64 {
	return float64(z.Number-1)*6 - 180 + 3
}
