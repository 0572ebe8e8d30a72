package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dive.czml", replaceExt("dive.csv", ".czml"))
	assert.Equal(t, "data/dive.czml", replaceExt("data/dive.csv", ".czml"))
	assert.Equal(t, "dive.czml", replaceExt("dive", ".czml"))
	assert.Equal(t, "data.v2/dive.czml", replaceExt("data.v2/dive", ".czml"))
}

func TestSubset(t *testing.T) {
	t.Parallel()

	rows := []map[string]string{
		{"n": "0"}, {"n": "1"}, {"n": "2"}, {"n": "3"},
	}

	assert.Len(t, subset(rows, 0, 0), 4)
	assert.Equal(t, "1", subset(rows, 1, 0)[0]["n"])
	assert.Len(t, subset(rows, 1, 2), 2)
	assert.Empty(t, subset(rows, 10, 0))
	assert.Len(t, subset(rows, 0, 100), 4)
}

func TestMergeSensors(t *testing.T) {
	t.Parallel()

	merged := mergeSensors(
		[]string{"O2_Concentration", "Temperature"},
		[]string{"Temperature", "Salinity"},
	)
	assert.Equal(t, []string{"O2_Concentration", "Temperature", "Salinity"}, merged)
}
