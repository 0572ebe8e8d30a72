package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nautilus-data/dive.report/internal/geodesy"
	"github.com/nautilus-data/dive.report/internal/orientation"
	"github.com/nautilus-data/dive.report/internal/telemetry"
)

// EventStyle is the billboard styling for one event category.
type EventStyle struct {
	RGBA  [4]int  `json:"rgba"`
	Scale float64 `json:"scale"`
}

// Config holds every tunable of a conversion run. Fields are pointers so a
// partial JSON file overrides only what it names; the Get* accessors supply
// defaults for the rest. No hidden global state: one Config is passed into
// Convert and never mutated.
type Config struct {
	// Packet synthesis params
	Stride            *int                  `json:"stride,omitempty"`          // emit a sensor label every Nth record
	SensorDuration    *string               `json:"sensor_duration,omitempty"` // duration string like "2s"
	EventDuration     *string               `json:"event_duration,omitempty"`  // duration string like "2s"
	SensorFields      []string              `json:"sensor_fields,omitempty"`   // both must be present for a label
	EventStyles       map[string]EventStyle `json:"event_styles,omitempty"`
	DefaultEventStyle *EventStyle           `json:"default_event_style,omitempty"`

	// Clock params
	ClockMultiplier *float64 `json:"clock_multiplier,omitempty"`
	ClockRange      *string  `json:"clock_range,omitempty"`

	// Position params
	PositionMode      *string  `json:"position_mode,omitempty"`      // "geodetic" or "projected"
	DatumOffset       *float64 `json:"datum_offset,omitempty"`       // metres, local datum to ellipsoid
	DefaultZone       *int     `json:"default_zone,omitempty"`       // fallback projection zone
	DefaultHemisphere *string  `json:"default_hemisphere,omitempty"` // "N" or "S"

	// Orientation params
	OrientationMode   *string `json:"orientation_mode,omitempty"`   // "full" or "yaw_only"
	HeadingConvention *string `json:"heading_convention,omitempty"` // "math90", "plus180", "raw"

	// Entity identity and styling
	VehicleID   *string `json:"vehicle_id,omitempty"`
	VehicleName *string `json:"vehicle_name,omitempty"`
	MissionName *string `json:"mission_name,omitempty"`
	Description *string `json:"description,omitempty"`
	ModelURI    *string `json:"model_uri,omitempty"` // optional hosted glTF reference
}

// OrientationMode values.
const (
	OrientationFull    = "full"
	OrientationYawOnly = "yaw_only"
)

// LoadConfig loads a Config from a JSON file. Fields omitted from the file
// retain their defaults, so partial configs are safe.
func LoadConfig(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Stride != nil && *c.Stride < 1 {
		return fmt.Errorf("stride must be positive, got %d", *c.Stride)
	}
	for name, v := range map[string]*string{
		"sensor_duration": c.SensorDuration,
		"event_duration":  c.EventDuration,
	} {
		if v != nil && *v != "" {
			if _, err := time.ParseDuration(*v); err != nil {
				return fmt.Errorf("invalid %s '%s': %w", name, *v, err)
			}
		}
	}
	if c.PositionMode != nil {
		switch telemetry.PositionKind(*c.PositionMode) {
		case telemetry.PositionGeodetic, telemetry.PositionProjected:
		default:
			return fmt.Errorf("position_mode must be %q or %q, got %q",
				telemetry.PositionGeodetic, telemetry.PositionProjected, *c.PositionMode)
		}
	}
	if c.OrientationMode != nil {
		switch *c.OrientationMode {
		case OrientationFull, OrientationYawOnly:
		default:
			return fmt.Errorf("orientation_mode must be %q or %q, got %q",
				OrientationFull, OrientationYawOnly, *c.OrientationMode)
		}
	}
	if c.HeadingConvention != nil && !orientation.HeadingConvention(*c.HeadingConvention).Valid() {
		return fmt.Errorf("unknown heading_convention %q", *c.HeadingConvention)
	}
	if c.DefaultHemisphere != nil {
		switch geodesy.Hemisphere(*c.DefaultHemisphere) {
		case geodesy.North, geodesy.South:
		default:
			return fmt.Errorf("default_hemisphere must be N or S, got %q", *c.DefaultHemisphere)
		}
	}
	if c.DefaultZone != nil && (*c.DefaultZone < 1 || *c.DefaultZone > 60) {
		return fmt.Errorf("default_zone must be in 1..60, got %d", *c.DefaultZone)
	}
	if len(c.SensorFields) != 0 && len(c.SensorFields) != 2 {
		return fmt.Errorf("sensor_fields must name exactly two fields, got %d", len(c.SensorFields))
	}
	return nil
}

// GetStride returns the sub-sample stride or the default of 5.
func (c *Config) GetStride() int {
	if c.Stride == nil {
		return 5
	}
	return *c.Stride
}

// GetSensorDuration returns the sensor-label display duration (default 2s).
func (c *Config) GetSensorDuration() time.Duration {
	return parseDuration(c.SensorDuration, 2*time.Second)
}

// GetEventDuration returns the event-marker display duration (default 2s).
func (c *Config) GetEventDuration() time.Duration {
	return parseDuration(c.EventDuration, 2*time.Second)
}

// GetSensorFields returns the two designated sensor fields a label requires.
func (c *Config) GetSensorFields() []string {
	if len(c.SensorFields) == 2 {
		return c.SensorFields
	}
	return []string{"O2_Concentration", "Temperature"}
}

// GetEventStyle returns the style for an event category, falling back to
// the default entry for unrecognized categories.
func (c *Config) GetEventStyle(category string) EventStyle {
	if s, ok := c.EventStyles[category]; ok {
		return s
	}
	if len(c.EventStyles) == 0 {
		if s, ok := defaultEventStyles[category]; ok {
			return s
		}
	}
	if c.DefaultEventStyle != nil {
		return *c.DefaultEventStyle
	}
	return EventStyle{RGBA: [4]int{255, 255, 255, 179}, Scale: 0.5}
}

var defaultEventStyles = map[string]EventStyle{
	"FREE_FORM": {RGBA: [4]int{0, 100, 0, 179}, Scale: 0.5},
	"HIGHLIGHT": {RGBA: [4]int{184, 134, 11, 179}, Scale: 0.6},
}

// GetClockMultiplier returns the playback multiplier or the default of 10.
func (c *Config) GetClockMultiplier() float64 {
	if c.ClockMultiplier == nil {
		return 10
	}
	return *c.ClockMultiplier
}

// GetClockRange returns the clock loop mode (default LOOP_STOP).
func (c *Config) GetClockRange() string {
	if c.ClockRange == nil || *c.ClockRange == "" {
		return "LOOP_STOP"
	}
	return *c.ClockRange
}

// GetPositionMode returns the declared position representation.
func (c *Config) GetPositionMode() telemetry.PositionKind {
	if c.PositionMode == nil || *c.PositionMode == "" {
		return telemetry.PositionGeodetic
	}
	return telemetry.PositionKind(*c.PositionMode)
}

// GetOrientationMode returns the orientation strategy. The default depends
// on the position mode: projected input gets the full tangent-frame
// composition, direct-geodetic input the reduced yaw-only form.
func (c *Config) GetOrientationMode() string {
	if c.OrientationMode != nil && *c.OrientationMode != "" {
		return *c.OrientationMode
	}
	if c.GetPositionMode() == telemetry.PositionProjected {
		return OrientationFull
	}
	return OrientationYawOnly
}

// GetHeadingConvention returns the heading-to-yaw convention (default math90).
func (c *Config) GetHeadingConvention() orientation.HeadingConvention {
	if c.HeadingConvention == nil || *c.HeadingConvention == "" {
		return orientation.HeadingMath90
	}
	return orientation.HeadingConvention(*c.HeadingConvention)
}

// GetDatumOffset returns the datum-to-ellipsoid correction in metres
// (default 0: depths taken as ellipsoidal directly).
func (c *Config) GetDatumOffset() float64 {
	if c.DatumOffset == nil {
		return 0
	}
	return *c.DatumOffset
}

// GetDefaultZone returns the fallback projection zone used when no record
// carries a geodetic reference point.
func (c *Config) GetDefaultZone() geodesy.Zone {
	z := geodesy.Zone{Number: 32, Hemisphere: geodesy.North}
	if c.DefaultZone != nil {
		z.Number = *c.DefaultZone
	}
	if c.DefaultHemisphere != nil {
		z.Hemisphere = geodesy.Hemisphere(*c.DefaultHemisphere)
	}
	return z
}

// GetVehicleID returns the primary entity packet id.
func (c *Config) GetVehicleID() string {
	if c.VehicleID == nil || *c.VehicleID == "" {
		return "Hercules"
	}
	return *c.VehicleID
}

// GetVehicleName returns the display name of the primary entity.
func (c *Config) GetVehicleName() string {
	if c.VehicleName == nil || *c.VehicleName == "" {
		return c.GetVehicleID()
	}
	return *c.VehicleName
}

// GetMissionName returns the document packet name.
func (c *Config) GetMissionName() string {
	if c.MissionName == nil || *c.MissionName == "" {
		return c.GetVehicleName() + " Mission"
	}
	return *c.MissionName
}

// GetDescription returns the entity description text.
func (c *Config) GetDescription() string {
	if c.Description == nil {
		return c.GetVehicleName() + " tracking data"
	}
	return *c.Description
}

// GetModelURI returns the hosted glTF reference, empty when no model is
// attached.
func (c *Config) GetModelURI() string {
	if c.ModelURI == nil {
		return ""
	}
	return *c.ModelURI
}

func parseDuration(v *string, fallback time.Duration) time.Duration {
	if v == nil || *v == "" {
		return fallback
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return fallback
	}
	return d
}
