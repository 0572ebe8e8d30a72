package scene

import (
	"github.com/nautilus-data/dive.report/internal/geodesy"
	"github.com/nautilus-data/dive.report/internal/orientation"
	"github.com/nautilus-data/dive.report/internal/telemetry"
)

// GlobalPose is one sample of the vehicle's pose on the series timeline.
// Position holds (lon, lat, height) degrees/metres in direct-geodetic mode
// and geocentric Cartesian metres in projected mode. Rotation is a unit
// quaternion when HasRotation is set.
type GlobalPose struct {
	Offset      float64 // seconds from the series epoch
	Position    [3]float64
	Rotation    orientation.Quaternion
	HasRotation bool
}

// headingJumpDeg is the shorter-arc heading change between consecutive
// samples that gets flagged as noteworthy.
const headingJumpDeg = 30.0

// resolveZone picks the projection zone from the first record carrying a
// valid geodetic reference point, falling back to the configured default.
func resolveZone(series *telemetry.Series, cfg *Config, diags *telemetry.Collector) geodesy.Zone {
	for i := range series.Records {
		rec := &series.Records[i]
		if rec.HasGeodetic() {
			z := geodesy.ZoneFor(*rec.Longitude, *rec.Latitude)
			diags.Infof(i, "projection zone %d%s anchored on geodetic reference point",
				z.Number, z.Hemisphere)
			return z
		}
	}
	z := cfg.GetDefaultZone()
	diags.Warnf(-1, "no geodetic reference point in series, falling back to default zone %d%s",
		z.Number, z.Hemisphere)
	return z
}

// computePoses derives a GlobalPose for every pose-eligible record. The
// returned slice is indexed by record; entries stay nil for records missing
// mandatory fields.
func computePoses(series *telemetry.Series, cfg *Config, diags *telemetry.Collector) []*GlobalPose {
	poses := make([]*GlobalPose, len(series.Records))
	if series.Empty() {
		return poses
	}

	projected := cfg.GetPositionMode() == telemetry.PositionProjected
	var zone geodesy.Zone
	if projected {
		zone = resolveZone(series, cfg, diags)
	}

	conv := cfg.GetHeadingConvention()
	fullOrientation := cfg.GetOrientationMode() == OrientationFull
	var prevHeading *float64

	for i := range series.Records {
		rec := &series.Records[i]
		if !series.PoseEligible(i) {
			continue
		}

		pose := &GlobalPose{Offset: series.Offsets[i]}

		var lonDeg, latDeg float64
		if projected {
			lonDeg, latDeg = zone.Inverse(*rec.Easting, *rec.Northing)
			height := *rec.Depth + cfg.GetDatumOffset()
			p := geodesy.ToECEF(lonDeg, latDeg, height)
			pose.Position = [3]float64{p.X, p.Y, p.Z}
		} else {
			// Direct-geodetic mode passes degrees through; the depth is
			// taken as height relative to the ellipsoid.
			lonDeg, latDeg = *rec.Longitude, *rec.Latitude
			pose.Position = [3]float64{lonDeg, latDeg, *rec.Depth}
		}

		if rec.Heading != nil {
			if prevHeading != nil {
				if d := orientation.HeadingDelta(*prevHeading, *rec.Heading); d > headingJumpDeg {
					diags.Infof(i, "heading change %.1f° (%.1f° -> %.1f°)",
						d, *prevHeading, *rec.Heading)
				}
			}
			prevHeading = rec.Heading

			yaw := conv.YawDegrees(*rec.Heading)
			var q orientation.Quaternion
			if fullOrientation {
				pitch, roll := 0.0, 0.0
				if rec.Pitch != nil {
					pitch = *rec.Pitch
				}
				if rec.Roll != nil {
					roll = *rec.Roll
				}
				local := orientation.FromYawPitchRoll(yaw, pitch, roll)
				q = orientation.FrameQuaternion(lonDeg, latDeg).Mul(local)
			} else {
				q = orientation.YawOnly(yaw)
			}

			unit, ok := q.Normalize()
			if !ok {
				diags.Warnf(i, "degenerate orientation, substituting identity quaternion")
			}
			pose.Rotation = unit
			pose.HasRotation = true
		}

		poses[i] = pose
	}
	return poses
}
