// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     version
// Description: Central version management for exfc components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants for all exfc components
const (
	// Platform version
	Platform = "1.0.0"

	// Component versions
	Registry = "1.0.0"
	Catalog  = "1.0.0"
	Script   = "1.0.0"
	CLI      = "1.0.0"
)

// Build information, set via -ldflags
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "registry":
		return Registry
	case "catalog":
		return Catalog
	case "script":
		return Script
	case "cli", "exfc":
		return CLI
	default:
		return Platform
	}
}

// String returns a one-line build description
func String() string {
	return fmt.Sprintf("exfc %s (commit %s, built %s)", Platform, GitCommit, BuildDate)
}
