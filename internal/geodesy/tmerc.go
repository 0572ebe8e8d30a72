package geodesy

import "math"

// WGS-84 ellipsoid.
const (
	semiMajorAxis = 6378137.0
	flattening    = 1.0 / 298.257223563

	e2   = flattening * (2 - flattening) // first eccentricity squared
	ep2  = e2 / (1 - e2)                 // second eccentricity squared
	rad  = math.Pi / 180
	deg  = 180 / math.Pi
	tmK0 = 0.9996 // transverse Mercator scale factor on the central meridian

	falseEasting  = 500000.0
	falseNorthing = 10000000.0 // southern hemisphere only
)

// Meridional arc series coefficients.
var (
	m1 = 1 - e2/4 - 3*e2*e2/64 - 5*e2*e2*e2/256
	m2 = 3*e2/8 + 3*e2*e2/32 + 45*e2*e2*e2/1024
	m3 = 15*e2*e2/256 + 45*e2*e2*e2/1024
	m4 = 35 * e2 * e2 * e2 / 3072
)

// Rectifying-latitude series coefficients for the inverse projection.
var (
	ei  = (1 - math.Sqrt(1-e2)) / (1 + math.Sqrt(1-e2))
	ei2 = ei * ei
	ei3 = ei2 * ei
	ei4 = ei3 * ei

	p2 = 3*ei/2 - 27*ei3/32
	p3 = 21*ei2/16 - 55*ei4/32
	p4 = 151 * ei3 / 96
	p5 = 1097 * ei4 / 512
)

// Forward projects a geodetic point into the zone's planar easting/northing
// in metres.
func (z Zone) Forward(lonDeg, latDeg float64) (easting, northing float64) {
	lat := latDeg * rad
	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	tanLat := sinLat / cosLat
	t2 := tanLat * tanLat
	t4 := t2 * t2

	n := semiMajorAxis / math.Sqrt(1-e2*sinLat*sinLat)
	c := ep2 * cosLat * cosLat

	a := cosLat * wrapRadians((lonDeg-z.CentralMeridian())*rad)
	a2 := a * a
	a3 := a2 * a
	a4 := a3 * a
	a5 := a4 * a
	a6 := a5 * a

	m := semiMajorAxis * (m1*lat - m2*math.Sin(2*lat) + m3*math.Sin(4*lat) - m4*math.Sin(6*lat))

	easting = tmK0*n*(a+
		a3/6*(1-t2+c)+
		a5/120*(5-18*t2+t4+72*c-58*ep2)) + falseEasting
	northing = tmK0 * (m + n*tanLat*(a2/2+
		a4/24*(5-t2+9*c+4*c*c)+
		a6/720*(61-58*t2+t4+600*c-330*ep2)))
	if z.Hemisphere == South {
		northing += falseNorthing
	}
	return easting, northing
}

// Inverse unprojects planar easting/northing (metres) in the zone back to
// geodetic longitude/latitude in degrees. This is the map the orientation
// engine uses to anchor local tangent frames.
func (z Zone) Inverse(easting, northing float64) (lonDeg, latDeg float64) {
	x := easting - falseEasting
	y := northing
	if z.Hemisphere == South {
		y -= falseNorthing
	}

	mu := y / tmK0 / (semiMajorAxis * m1)
	phi := mu +
		p2*math.Sin(2*mu) +
		p3*math.Sin(4*mu) +
		p4*math.Sin(6*mu) +
		p5*math.Sin(8*mu)

	sinPhi := math.Sin(phi)
	sin2 := sinPhi * sinPhi
	cosPhi := math.Cos(phi)
	tanPhi := sinPhi / cosPhi
	t2 := tanPhi * tanPhi
	t4 := t2 * t2

	es := 1 - e2*sin2
	n := semiMajorAxis / math.Sqrt(es)
	r := (1 - e2) / es
	c := ep2 * cosPhi * cosPhi
	c2 := c * c

	d := x / (n * tmK0)
	d2 := d * d
	d3 := d2 * d
	d4 := d3 * d
	d5 := d4 * d
	d6 := d5 * d

	lat := phi - tanPhi/r*(d2/2-
		d4/24*(5+3*t2+10*c-4*c2-9*ep2)+
		d6/720*(61+90*t2+298*c+45*t4-252*ep2-3*c2))
	lon := (d -
		d3/6*(1+2*t2+c) +
		d5/120*(5-2*c+28*t2-3*c2+8*ep2+24*t4)) / cosPhi

	return wrapDegrees(lon*deg + z.CentralMeridian()), lat * deg
}

// wrapRadians normalizes an angle to (-pi, pi].
func wrapRadians(a float64) float64 {
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// wrapDegrees normalizes a longitude to (-180, 180].
func wrapDegrees(a float64) float64 {
	for a <= -180 {
		a += 360
	}
	for a > 180 {
		a -= 360
	}
	return a
}
