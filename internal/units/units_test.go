package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertDepth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100.0, ConvertDepth(100, Meters))
	assert.InDelta(t, 328.084, ConvertDepth(100, Feet), 1e-9)
	assert.Equal(t, 42.0, ConvertDepth(42, "fathoms"), "unknown unit passes through as metres")
}

func TestCelsiusToFahrenheit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 32.0, CelsiusToFahrenheit(0))
	assert.Equal(t, 212.0, CelsiusToFahrenheit(100))
}

func TestFormatReading(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "O2: 6.52 mg/L", FormatReading("O2_Concentration", 6.52))
	assert.Equal(t, "Temp: 3.10°C", FormatReading("Temperature", 3.1))
	assert.Equal(t, "Salinity: 34.90 PSU", FormatReading("Salinity", 34.9))
	assert.Equal(t, "Turbidity: 0.40", FormatReading("Turbidity", 0.4))
}
