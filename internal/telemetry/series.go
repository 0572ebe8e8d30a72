package telemetry

import (
	"strconv"
	"strings"
	"time"

	"github.com/nautilus-data/dive.report/internal/timeutil"
)

// FieldMap names the source columns a telemetry export uses. The defaults
// match the Nautilus vehicle-data export format.
type FieldMap struct {
	Timestamp string
	Longitude string
	Latitude  string
	Easting   string
	Northing  string
	Depth     string
	Heading   string
	Pitch     string
	Roll      string

	// Sensors lists the named numeric sensor columns to coerce.
	Sensors []string

	EventCategory string
	EventText     string
	EventImage    string
}

// DefaultFieldMap returns the column names of the standard vehicle-data export.
func DefaultFieldMap() FieldMap {
	return FieldMap{
		Timestamp:     "Timestamp",
		Longitude:     "Longitude",
		Latitude:      "Latitude",
		Easting:       "Easting",
		Northing:      "Northing",
		Depth:         "Depth",
		Heading:       "Heading",
		Pitch:         "Pitch",
		Roll:          "Roll",
		Sensors:       []string{"O2_Concentration", "Temperature", "Salinity", "Pressure"},
		EventCategory: "event_value",
		EventText:     "event_free_text",
		EventImage:    "vehicleRealtimeDualHDGrabData.filename_2_value",
	}
}

// Series is the validated, time-ordered record sequence for one conversion
// run. It is built once by Normalize and not mutated afterwards.
type Series struct {
	Kind    PositionKind
	Records []Record
	// Epoch is the first record's timestamp; Offsets holds each record's
	// time offset from it in seconds.
	Epoch   time.Time
	Offsets []float64
}

// Empty reports whether the series holds no records.
func (s *Series) Empty() bool { return len(s.Records) == 0 }

// Start returns the series start time (the epoch).
func (s *Series) Start() time.Time { return s.Epoch }

// End returns the last record's timestamp.
func (s *Series) End() time.Time {
	if s.Empty() {
		return s.Epoch
	}
	return s.Records[len(s.Records)-1].Timestamp
}

// PoseEligible reports whether record i carries the mandatory fields for
// pose computation under the series' position representation.
func (s *Series) PoseEligible(i int) bool {
	return s.Records[i].HasFix(s.Kind)
}

// Normalize validates and coerces raw rows into a Series.
//
// Field-level failures (unparsable numerics) drop the field with a warning
// and keep the record. Records missing the mandatory position triple are
// kept, flagged by PoseEligible, so sensor and event packets can still be
// derived from them. Records with an unusable timestamp, or whose timestamp
// regresses, are dropped entirely: they cannot be placed on the series
// timeline.
func Normalize(rows []map[string]string, fields FieldMap, kind PositionKind, diags *Collector) *Series {
	s := &Series{Kind: kind}

	for i, row := range rows {
		raw, ok := row[fields.Timestamp]
		if !ok || strings.TrimSpace(raw) == "" {
			diags.Warnf(i, "missing timestamp, record dropped")
			continue
		}
		ts, err := timeutil.Parse(raw)
		if err != nil {
			diags.Warnf(i, "unparsable timestamp %q, record dropped", raw)
			continue
		}
		if n := len(s.Records); n > 0 && ts.Before(s.Records[n-1].Timestamp) {
			diags.Warnf(i, "timestamp %s regresses, record dropped", raw)
			continue
		}

		rec := Record{Timestamp: ts}
		rec.Longitude = coerce(row, fields.Longitude, i, diags)
		rec.Latitude = coerce(row, fields.Latitude, i, diags)
		rec.Easting = coerce(row, fields.Easting, i, diags)
		rec.Northing = coerce(row, fields.Northing, i, diags)
		rec.Depth = coerce(row, fields.Depth, i, diags)
		rec.Heading = coerce(row, fields.Heading, i, diags)
		rec.Pitch = coerce(row, fields.Pitch, i, diags)
		rec.Roll = coerce(row, fields.Roll, i, diags)

		for _, name := range fields.Sensors {
			if v := coerce(row, name, i, diags); v != nil {
				if rec.Sensors == nil {
					rec.Sensors = make(map[string]float64, len(fields.Sensors))
				}
				rec.Sensors[name] = *v
			}
		}

		rec.EventCategory = strings.TrimSpace(row[fields.EventCategory])
		rec.EventText = strings.TrimSpace(row[fields.EventText])
		rec.EventImage = strings.TrimSpace(row[fields.EventImage])

		if !rec.HasFix(kind) {
			diags.Warnf(i, "missing mandatory position fields, excluded from pose computation")
		}

		s.Records = append(s.Records, rec)
	}

	if s.Empty() {
		return s
	}

	s.Epoch = s.Records[0].Timestamp
	s.Offsets = make([]float64, len(s.Records))
	for i := range s.Records {
		s.Offsets[i] = timeutil.SecondsBetween(s.Epoch, s.Records[i].Timestamp)
	}
	return s
}

// coerce parses the named column as a float. Empty or absent values return
// nil silently; present but unparsable values return nil with a warning.
func coerce(row map[string]string, name string, idx int, diags *Collector) *float64 {
	if name == "" {
		return nil
	}
	raw, ok := row[name]
	if !ok {
		return nil
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		diags.Warnf(idx, "unparsable value %q in field %s, dropped", raw, name)
		return nil
	}
	return &v
}
