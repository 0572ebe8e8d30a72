package scene

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nautilus-data/dive.report/internal/geodesy"
	"github.com/nautilus-data/dive.report/internal/orientation"
	"github.com/nautilus-data/dive.report/internal/telemetry"
)

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 5, cfg.GetStride())
	assert.Equal(t, 2*time.Second, cfg.GetSensorDuration())
	assert.Equal(t, 2*time.Second, cfg.GetEventDuration())
	assert.Equal(t, []string{"O2_Concentration", "Temperature"}, cfg.GetSensorFields())
	assert.Equal(t, 10.0, cfg.GetClockMultiplier())
	assert.Equal(t, "LOOP_STOP", cfg.GetClockRange())
	assert.Equal(t, telemetry.PositionGeodetic, cfg.GetPositionMode())
	assert.Equal(t, OrientationYawOnly, cfg.GetOrientationMode())
	assert.Equal(t, orientation.HeadingMath90, cfg.GetHeadingConvention())
	assert.Equal(t, 0.0, cfg.GetDatumOffset())
	assert.Equal(t, geodesy.Zone{Number: 32, Hemisphere: geodesy.North}, cfg.GetDefaultZone())
	assert.Equal(t, "Hercules", cfg.GetVehicleID())
	assert.Equal(t, "Hercules Mission", cfg.GetMissionName())
	assert.Equal(t, "", cfg.GetModelURI())
}

func TestOrientationModeFollowsPositionMode(t *testing.T) {
	t.Parallel()

	projected := string(telemetry.PositionProjected)
	cfg := &Config{PositionMode: &projected}
	assert.Equal(t, OrientationFull, cfg.GetOrientationMode())

	yawOnly := OrientationYawOnly
	cfg.OrientationMode = &yawOnly
	assert.Equal(t, OrientationYawOnly, cfg.GetOrientationMode())
}

func TestConfigValidateRejects(t *testing.T) {
	t.Parallel()

	bad := []Config{
		{Stride: ptrInt(0)},
		{SensorDuration: ptrString("two seconds")},
		{EventDuration: ptrString("2 parsecs")},
		{PositionMode: ptrString("polar")},
		{OrientationMode: ptrString("gimbal")},
		{HeadingConvention: ptrString("bearing")},
		{DefaultHemisphere: ptrString("E")},
		{DefaultZone: ptrInt(61)},
		{SensorFields: []string{"O2_Concentration"}},
	}
	for i := range bad {
		assert.Error(t, bad[i].Validate(), "case %d", i)
	}
}

func TestGetEventStyle(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	assert.Equal(t, EventStyle{RGBA: [4]int{0, 100, 0, 179}, Scale: 0.5}, cfg.GetEventStyle("FREE_FORM"))
	assert.Equal(t, EventStyle{RGBA: [4]int{184, 134, 11, 179}, Scale: 0.6}, cfg.GetEventStyle("HIGHLIGHT"))
	assert.Equal(t, EventStyle{RGBA: [4]int{255, 255, 255, 179}, Scale: 0.5}, cfg.GetEventStyle("SOMETHING_ELSE"))

	// A user style table replaces the built-ins entirely.
	cfg.EventStyles = map[string]EventStyle{"BIOLOGY": {RGBA: [4]int{0, 0, 255, 200}, Scale: 1}}
	cfg.DefaultEventStyle = &EventStyle{RGBA: [4]int{10, 10, 10, 10}, Scale: 0.1}
	assert.Equal(t, EventStyle{RGBA: [4]int{0, 0, 255, 200}, Scale: 1}, cfg.GetEventStyle("BIOLOGY"))
	assert.Equal(t, EventStyle{RGBA: [4]int{10, 10, 10, 10}, Scale: 0.1}, cfg.GetEventStyle("FREE_FORM"))
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "convert.json")
	body := `{
		"stride": 3,
		"sensor_duration": "4s",
		"position_mode": "projected",
		"datum_offset": 28.5,
		"vehicle_id": "Atalanta",
		"event_styles": {"BIOLOGY": {"rgba": [0, 0, 255, 200], "scale": 1}}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.GetStride())
	assert.Equal(t, 4*time.Second, cfg.GetSensorDuration())
	assert.Equal(t, 2*time.Second, cfg.GetEventDuration(), "omitted field keeps its default")
	assert.Equal(t, telemetry.PositionProjected, cfg.GetPositionMode())
	assert.Equal(t, 28.5, cfg.GetDatumOffset())
	assert.Equal(t, "Atalanta", cfg.GetVehicleID())
	assert.Equal(t, 1.0, cfg.GetEventStyle("BIOLOGY").Scale)
}

func TestLoadConfigRejectsNonJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "convert.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stride: 3"), 0o644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func ptrInt(v int) *int          { return &v }
func ptrString(v string) *string { return &v }
func ptrFloat64(v float64) *float64 { return &v }
