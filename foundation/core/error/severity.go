// File: severity.go
// Title: Error Severity
// Description: Severity levels let loggers and the fatal reporter pick an
//              output level without inspecting codes.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-12 v0.2.0: Severity mapping for registry codes
// - 2026-10-16 v0.3.0: Severity taken from the code table, text marshaling

package error

// Severity orders errors by impact
type Severity int

const (
	// SeverityLow is an ordinary outcome the caller branches on, such as a
	// lookup miss
	SeverityLow Severity = iota

	// SeverityMedium affects the current operation only
	SeverityMedium

	// SeverityHigh is a configuration or input problem that stops a command
	SeverityHigh

	// SeverityCritical cannot be continued past
	SeverityCritical
)

var severityNames = [...]string{
	SeverityLow:      "low",
	SeverityMedium:   "medium",
	SeverityHigh:     "high",
	SeverityCritical: "critical",
}

func (s Severity) String() string {
	if s < SeverityLow || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// MarshalText implements encoding.TextMarshaler
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ShouldAlert reports whether the operator has to see the error
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode returns the default severity of code. Undeclared codes
// are medium.
func GetSeverityFromCode(code Code) Severity {
	if info, ok := codeTable[code]; ok {
		return info.severity
	}
	return SeverityMedium
}
