// Package telemetry turns raw tabular vehicle-telemetry rows into a
// validated, time-ordered series of typed records.
package telemetry

import "time"

// PositionKind declares how a record's horizontal position is expressed.
type PositionKind string

const (
	// PositionGeodetic means the horizontal position is geodetic
	// longitude/latitude in degrees.
	PositionGeodetic PositionKind = "geodetic"
	// PositionProjected means the horizontal position is a locally
	// projected planar easting/northing in metres.
	PositionProjected PositionKind = "projected"
)

// Record is one normalized telemetry sample. Optional numeric fields are
// pointers: nil means the value was absent or unparsable in the source row,
// which is distinct from zero.
type Record struct {
	Timestamp time.Time

	// Horizontal position, one representation per series.
	Longitude *float64 // degrees, geodetic mode
	Latitude  *float64 // degrees, geodetic mode
	Easting   *float64 // metres, projected mode
	Northing  *float64 // metres, projected mode

	// Depth below the local vertical datum, stored as a negative magnitude.
	Depth *float64

	Heading *float64 // degrees clockwise from north
	Pitch   *float64 // degrees, nose-up positive
	Roll    *float64 // degrees, right-side-down positive

	// Sensors holds the declared named numeric fields that parsed cleanly.
	Sensors map[string]float64

	// Event descriptor. An event is considered present when Category is
	// non-empty; markers additionally require an Image reference.
	EventCategory string
	EventText     string
	EventImage    string
}

// HasGeodetic reports whether the record carries a usable lon/lat pair.
func (r *Record) HasGeodetic() bool {
	return r.Longitude != nil && r.Latitude != nil
}

// HasProjected reports whether the record carries a usable easting/northing pair.
func (r *Record) HasProjected() bool {
	return r.Easting != nil && r.Northing != nil
}

// HasFix reports whether the record carries the mandatory position triple
// for the given representation: a horizontal pair plus a vertical value.
func (r *Record) HasFix(kind PositionKind) bool {
	if r.Depth == nil {
		return false
	}
	if kind == PositionProjected {
		return r.HasProjected()
	}
	return r.HasGeodetic()
}

// Sensor returns the named sensor reading, if present.
func (r *Record) Sensor(name string) (float64, bool) {
	v, ok := r.Sensors[name]
	return v, ok
}
