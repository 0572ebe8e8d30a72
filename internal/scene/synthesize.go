// Package scene synthesizes the CZML packet hierarchy for one telemetry
// series: a document packet, the primary vehicle entity, and sensor-label
// and event-marker child packets.
package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nautilus-data/dive.report/internal/czml"
	"github.com/nautilus-data/dive.report/internal/telemetry"
	"github.com/nautilus-data/dive.report/internal/timeutil"
	"github.com/nautilus-data/dive.report/internal/units"
)

// ErrNoData reports an empty input series. The accompanying Result still
// carries a document-only packet list, so callers can treat the condition
// as recoverable.
var ErrNoData = errors.New("no telemetry data")

// Result is the output of one conversion run.
type Result struct {
	Packets     []czml.Packet
	Poses       []*GlobalPose
	Diagnostics []telemetry.Diagnostic
}

// Convert runs the full pipeline over a normalized series: pose
// computation, then packet synthesis. It is a pure function of
// (series, cfg); running it twice on identical input yields an identical
// packet sequence.
func Convert(series *telemetry.Series, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var diags telemetry.Collector

	if series == nil || series.Empty() {
		res := &Result{
			Packets: []czml.Packet{{
				ID:      "document",
				Name:    cfg.GetMissionName(),
				Version: "1.0",
			}},
		}
		diags.Warnf(-1, "empty input series, document-only output")
		res.Diagnostics = diags.Diagnostics()
		return res, ErrNoData
	}

	poses := computePoses(series, cfg, &diags)

	packets := make([]czml.Packet, 0, len(series.Records)/cfg.GetStride()+2)
	packets = append(packets, documentPacket(series, cfg))
	packets = append(packets, entityPacket(series, poses, cfg, &diags))
	packets = append(packets, childPackets(series, cfg)...)

	return &Result{
		Packets:     packets,
		Poses:       poses,
		Diagnostics: diags.Diagnostics(),
	}, nil
}

func documentPacket(series *telemetry.Series, cfg *Config) czml.Packet {
	start := timeutil.Format(series.Start())
	return czml.Packet{
		ID:      "document",
		Name:    cfg.GetMissionName(),
		Version: "1.0",
		Clock: &czml.Clock{
			Interval:    timeutil.Interval(series.Start(), series.End()),
			CurrentTime: start,
			Multiplier:  cfg.GetClockMultiplier(),
			Range:       cfg.GetClockRange(),
			Step:        "SYSTEM_CLOCK_MULTIPLIER",
		},
	}
}

func entityPacket(series *telemetry.Series, poses []*GlobalPose, cfg *Config, diags *telemetry.Collector) czml.Packet {
	pkt := czml.Packet{
		ID:           cfg.GetVehicleID(),
		Name:         cfg.GetVehicleName(),
		Description:  cfg.GetDescription(),
		Availability: timeutil.Interval(series.Start(), series.End()),
		Path: &czml.Path{
			Width: 2,
			Material: &czml.Material{
				SolidColor: czml.SolidColor{Color: czml.Color{RGBA: [4]int{255, 255, 255, 255}}},
			},
			Resolution: 2,
			LeadTime:   999999999,
			TrailTime:  999999999,
		},
		Point: &czml.Point{
			Color:        &czml.Color{RGBA: [4]int{0, 255, 255, 255}},
			PixelSize:    8,
			OutlineColor: &czml.Color{RGBA: [4]int{0, 0, 0, 255}},
			OutlineWidth: 1,
		},
	}

	// Interleaved time-tagged samples: [offset, coords...] per pose, all
	// against the one series epoch.
	var positions []float64
	var quaternions []float64
	for _, pose := range poses {
		if pose == nil {
			continue
		}
		positions = append(positions, pose.Offset,
			pose.Position[0], pose.Position[1], pose.Position[2])
		if pose.HasRotation {
			quaternions = append(quaternions, pose.Offset,
				pose.Rotation.X, pose.Rotation.Y, pose.Rotation.Z, pose.Rotation.W)
		}
	}

	epoch := timeutil.Format(series.Epoch)
	if len(positions) > 0 {
		pkt.Position = &czml.Position{
			Epoch:                  epoch,
			InterpolationAlgorithm: "LAGRANGE",
			InterpolationDegree:    1,
		}
		if cfg.GetPositionMode() == telemetry.PositionProjected {
			pkt.Position.Cartesian = positions
		} else {
			pkt.Position.CartographicDegrees = positions
		}
	} else {
		diags.Warnf(-1, "no valid position data, entity emitted without a track")
	}
	if len(quaternions) > 0 {
		pkt.Orientation = &czml.Orientation{
			Epoch:          epoch,
			UnitQuaternion: quaternions,
		}
	}
	if uri := cfg.GetModelURI(); uri != "" {
		pkt.Model = &czml.Model{
			Gltf:             uri,
			Show:             true,
			Scale:            1.0,
			MinimumPixelSize: 128,
		}
	}
	return pkt
}

// childPackets emits sensor-label and event-marker packets in record
// order. Records excluded from the pose arrays still participate: children
// locate themselves by logical reference to the parent's position, not by
// a coincident sample.
func childPackets(series *telemetry.Series, cfg *Config) []czml.Packet {
	var packets []czml.Packet
	parent := cfg.GetVehicleID()
	positionRef := parent + "#position"
	stride := cfg.GetStride()
	fields := cfg.GetSensorFields()

	for i := range series.Records {
		rec := &series.Records[i]

		if i%stride == 0 {
			if a, ok := rec.Sensor(fields[0]); ok {
				if b, ok := rec.Sensor(fields[1]); ok {
					end := rec.Timestamp.Add(cfg.GetSensorDuration())
					packets = append(packets, czml.Packet{
						ID:           fmt.Sprintf("Sensor_%d", i),
						Parent:       parent,
						Availability: timeutil.Interval(rec.Timestamp, end),
						Position:     &czml.Position{Reference: positionRef},
						Label: &czml.Label{
							Text: units.FormatReading(fields[0], a) + "\n" +
								units.FormatReading(fields[1], b),
							Show:             true,
							Font:             "12pt sans-serif",
							FillColor:        &czml.Color{RGBA: [4]int{255, 255, 255, 255}},
							OutlineColor:     &czml.Color{RGBA: [4]int{0, 0, 0, 255}},
							OutlineWidth:     2,
							PixelOffset:      &czml.PixelOffset{Cartesian2: [2]float64{0, -30}},
							HorizontalOrigin: "CENTER",
							VerticalOrigin:   "BOTTOM",
						},
					})
				}
			}
		}

		if rec.EventCategory != "" && rec.EventImage != "" {
			style := cfg.GetEventStyle(rec.EventCategory)
			end := rec.Timestamp.Add(cfg.GetEventDuration())
			packets = append(packets, czml.Packet{
				ID:           eventID(rec),
				Parent:       parent,
				Availability: timeutil.Interval(rec.Timestamp, end),
				Position:     &czml.Position{Reference: positionRef},
				Billboard: &czml.Billboard{
					Image:            rec.EventImage,
					Show:             true,
					Scale:            style.Scale,
					Color:            &czml.Color{RGBA: style.RGBA},
					PixelOffset:      &czml.PixelOffset{Cartesian2: [2]float64{0, 0}},
					HorizontalOrigin: "CENTER",
					VerticalOrigin:   "BOTTOM",
				},
				Label: &czml.Label{
					Text:             rec.EventText,
					Show:             true,
					Font:             "14pt sans-serif",
					FillColor:        &czml.Color{RGBA: [4]int{255, 255, 255, 255}},
					OutlineColor:     &czml.Color{RGBA: [4]int{0, 0, 0, 255}},
					OutlineWidth:     2,
					PixelOffset:      &czml.PixelOffset{Cartesian2: [2]float64{0, -50}},
					HorizontalOrigin: "CENTER",
					VerticalOrigin:   "BOTTOM",
				},
			})
		}
	}
	return packets
}

// eventID derives a deterministic packet id from the event category and the
// record timestamp with separator characters stripped. Two events sharing
// category and timestamp collide; that is a documented limitation of the
// scheme, not silently repaired here.
func eventID(rec *telemetry.Record) string {
	return "Event_" + strings.TrimSpace(rec.EventCategory) + "_" + timeutil.CompactID(rec.Timestamp)
}
