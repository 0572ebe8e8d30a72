package telemetry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvFixture = `Timestamp,Longitude,Latitude,Depth,Heading,O2_Concentration
2023-11-01T21:47:50Z,10.0,60.0,-1500.5,182.4,6.52
2023-11-01T21:47:55Z,10.001,60.001,-1501.0,183.0
`

func TestReadCSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dive.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvFixture), 0o644))

	rows, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "10.0", rows[0]["Longitude"])
	assert.Equal(t, "6.52", rows[0]["O2_Concentration"])

	// Second row is short one column; it must still map every header.
	assert.Equal(t, "", rows[1]["O2_Concentration"])
	assert.Equal(t, "183.0", rows[1]["Heading"])
}

func TestReadCSVMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestReadCSVEmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	rows, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
