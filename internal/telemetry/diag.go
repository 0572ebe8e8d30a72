package telemetry

import "fmt"

// Severity classifies a diagnostic emitted during conversion.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Diagnostic is a structured note about a condition encountered while
// processing a record. Diagnostics are collected and returned with the
// result rather than printed inline, so conversion stays a pure function
// of its inputs.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	// Record is the zero-based index of the record the diagnostic applies
	// to, or -1 for series-level conditions.
	Record int `json:"record"`
}

func (d Diagnostic) String() string {
	if d.Record < 0 {
		return fmt.Sprintf("[%s] %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("[%s] record %d: %s", d.Severity, d.Record, d.Message)
}

// Collector accumulates diagnostics in emission order.
type Collector struct {
	diags []Diagnostic
}

// Infof records an informational diagnostic for record idx (-1 for series-level).
func (c *Collector) Infof(idx int, format string, args ...any) {
	c.append(SeverityInfo, idx, format, args...)
}

// Warnf records a warning diagnostic for record idx (-1 for series-level).
func (c *Collector) Warnf(idx int, format string, args ...any) {
	c.append(SeverityWarning, idx, format, args...)
}

// Errorf records an error diagnostic for record idx (-1 for series-level).
func (c *Collector) Errorf(idx int, format string, args ...any) {
	c.append(SeverityError, idx, format, args...)
}

func (c *Collector) append(sev Severity, idx int, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
		Record:   idx,
	})
}

// Diagnostics returns the collected diagnostics in emission order.
func (c *Collector) Diagnostics() []Diagnostic {
	return c.diags
}
