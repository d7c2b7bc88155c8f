// File: severity_test.go
// Title: Severity Tests
// Description: Tests for severity naming and the code to severity mapping.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive severity tests
// - 2026-10-12 v0.2.0: Registry code mapping
// - 2026-10-16 v0.3.0: Undeclared codes and text marshaling

package error

import (
	"testing"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeverityShouldAlert(t *testing.T) {
	tests := []struct {
		severity Severity
		want     bool
	}{
		{SeverityLow, false},
		{SeverityMedium, false},
		{SeverityHigh, true},
		{SeverityCritical, true},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			if got := tt.severity.ShouldAlert(); got != tt.want {
				t.Errorf("Severity.ShouldAlert() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeNotFound, SeverityLow},
		{CodeDuplicateEntry, SeverityLow},
		{CodeCapacityExceeded, SeverityLow},
		{CodeInvalidConfig, SeverityHigh},
		{CodeBufferOverflow, SeverityCritical},
		{CodeUninitialized, SeverityCritical},
		{CodeUnknown, SeverityMedium},
		{Code("UNDECLARED"), SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := GetSeverityFromCode(tt.code); got != tt.want {
				t.Errorf("GetSeverityFromCode(%v) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestSeverityMarshalText(t *testing.T) {
	text, err := SeverityHigh.MarshalText()
	if err != nil || string(text) != "high" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}
}
