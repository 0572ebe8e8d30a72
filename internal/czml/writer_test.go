package czml

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePackets() []Packet {
	return []Packet{
		{
			ID:      "document",
			Name:    "Dive H2021",
			Version: "1.0",
			Clock: &Clock{
				Interval:    "2023-11-01T21:47:50Z/2023-11-01T21:48:00Z",
				CurrentTime: "2023-11-01T21:47:50Z",
				Multiplier:  10,
				Range:       "LOOP_STOP",
				Step:        "SYSTEM_CLOCK_MULTIPLIER",
			},
		},
		{
			ID:           "Hercules",
			Name:         "Hercules",
			Availability: "2023-11-01T21:47:50Z/2023-11-01T21:48:00Z",
			Position: &Position{
				Epoch:               "2023-11-01T21:47:50Z",
				CartographicDegrees: []float64{0, 10, 60, -1500, 5, 10.001, 60.001, -1501},
			},
			Point: &Point{
				Color:     &Color{RGBA: [4]int{0, 255, 255, 255}},
				PixelSize: 8,
			},
		},
		{
			ID:           "Sensor_0",
			Parent:       "Hercules",
			Availability: "2023-11-01T21:47:50Z/2023-11-01T21:47:52Z",
			Position:     &Position{Reference: "Hercules#position"},
			Label:        &Label{Text: "O2: 6.52 mg/L", Show: true},
		},
	}
}

func TestEncodeShape(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, samplePackets()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)

	assert.Equal(t, "document", decoded[0]["id"])
	assert.Equal(t, "1.0", decoded[0]["version"])

	// Unset properties must not appear at all.
	_, hasBillboard := decoded[1]["billboard"]
	assert.False(t, hasBillboard)
	_, hasOrientation := decoded[1]["orientation"]
	assert.False(t, hasOrientation)

	pos := decoded[1]["position"].(map[string]any)
	assert.Len(t, pos["cartographicDegrees"], 8)
	_, hasReference := pos["reference"]
	assert.False(t, hasReference)

	child := decoded[2]
	assert.Equal(t, "Hercules", child["parent"])
	childPos := child["position"].(map[string]any)
	assert.Equal(t, "Hercules#position", childPos["reference"])
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "nested", "dive.czml")
	require.NoError(t, WriteFile(path, samplePackets()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded, 3)
}
