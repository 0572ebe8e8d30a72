package geodesy

import "math"

// ECEF is a geocentric Cartesian position in metres.
type ECEF struct {
	X, Y, Z float64
}

// ToECEF converts a geodetic point (degrees, metres above the ellipsoid)
// to the geocentric Cartesian frame.
func ToECEF(lonDeg, latDeg, heightM float64) ECEF {
	lat := latDeg * rad
	lon := lonDeg * rad
	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)

	// Radius of curvature in the prime vertical.
	n := semiMajorAxis / math.Sqrt(1-e2*sinLat*sinLat)

	return ECEF{
		X: (n + heightM) * cosLat * math.Cos(lon),
		Y: (n + heightM) * cosLat * math.Sin(lon),
		Z: (n*(1-e2) + heightM) * sinLat,
	}
}
