// Package units provides shared constants and display formatting for
// telemetry readings.
package units

import "fmt"

// Depth display unit constants.
const (
	Meters = "m"
	Feet   = "ft"
)

// ConvertDepth converts a depth magnitude from metres to the target unit.
// Telemetry stores depths in metres.
func ConvertDepth(depthM float64, targetUnit string) float64 {
	switch targetUnit {
	case Feet:
		return depthM * 3.28084
	default:
		return depthM
	}
}

// CelsiusToFahrenheit converts a temperature reading.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// reading describes how one named sensor field is displayed.
type reading struct {
	label string
	unit  string
}

var knownReadings = map[string]reading{
	"O2_Concentration": {label: "O2", unit: "mg/L"},
	"Temperature":      {label: "Temp", unit: "°C"},
	"Salinity":         {label: "Salinity", unit: "PSU"},
	"Pressure":         {label: "Pressure", unit: "dbar"},
	"Depth":            {label: "Depth", unit: "m"},
}

// FormatReading renders a sensor value as a display line, for example
// "O2: 6.52 mg/L". Unknown fields fall back to the raw field name with no
// unit suffix.
func FormatReading(field string, value float64) string {
	r, ok := knownReadings[field]
	if !ok {
		return fmt.Sprintf("%s: %.2f", field, value)
	}
	if r.unit == "°C" {
		// Degree units attach directly to the number.
		return fmt.Sprintf("%s: %.2f%s", r.label, value, r.unit)
	}
	return fmt.Sprintf("%s: %.2f %s", r.label, value, r.unit)
}
